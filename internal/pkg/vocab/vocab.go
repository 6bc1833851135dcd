package vocab

// Fixed vocabularies handed to the model. The interpreter instructs the model
// to select only from these lists; anything outside them is discarded during
// parsing, so additions here are safe and removals are not.

var Moods = []string{
	"Neutral",
	"Content",
	"Happy",
	"Excited",
	"Focused",
	"Calm",
	"Melancholic",
	"Anxious",
	"Sad",
	"Tired",
}

// Mood buckets drive the static reflection fallback when a space has no notes.
var (
	NegativeMoods = []string{"Anxious", "Sad", "Melancholic", "Tired"}
	PositiveMoods = []string{"Happy", "Excited", "Content"}
	NeutralMoods  = []string{"Neutral", "Focused", "Calm"}
)

var EmotionKeywords = []string{
	"calm", "peaceful", "cozy", "dreamy", "energetic", "hopeful",
	"lonely", "melancholic", "nostalgic", "playful", "romantic",
	"serene", "tense", "warm", "wistful",
}

var DescriptorKeywords = []string{
	"ambient", "relax", "focus", "lofi", "rain", "night", "forest",
	"ocean", "city", "cafe", "winter", "autumn", "sunset", "study",
	"sleep", "jazz", "piano", "synth", "retro", "minimal",
}

// Three independent quote banks; the interpreter asks for exactly one quote
// from each, translated into the prompt language.
var QuoteBanks = [3][]string{
	{
		"The quieter you become, the more you can hear.",
		"Almost everything will work again if you unplug it for a few minutes.",
		"Rest is not idleness.",
		"Slow is smooth, smooth is fast.",
	},
	{
		"Every moment is a fresh beginning.",
		"What you seek is seeking you.",
		"The obstacle is the way.",
		"Stars can't shine without darkness.",
	},
	{
		"Breathe in, breathe out, begin again.",
		"Small steps every day.",
		"Be where your feet are.",
		"This too shall pass.",
	},
}

func MoodBucket(mood string) string {
	for _, m := range NegativeMoods {
		if m == mood {
			return "negative"
		}
	}
	for _, m := range PositiveMoods {
		if m == mood {
			return "positive"
		}
	}
	return "neutral"
}
