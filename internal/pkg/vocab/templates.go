package vocab

import "strings"

// TemplateBankVersion is bumped whenever the bank below changes so stored
// template ids stay attributable to the wording they were produced from.
const TemplateBankVersion = "v1"

// AnchorPlaceholder is substituted with the extracted anchor phrase.
const AnchorPlaceholder = "{anchor}"

// DefaultAnchor is used when the model cannot extract a phrase from the notes.
const DefaultAnchor = "this session"

// ReflectionTemplate is one selectable question template. Sentiment is one of
// "negative", "positive", "neutral".
type ReflectionTemplate struct {
	ID        string
	Sentiment string
	Text      string
}

var ReflectionTemplates = []ReflectionTemplate{
	{ID: "NEG_01", Sentiment: "negative", Text: "It sounds like " + AnchorPlaceholder + " weighed on you. What would make it feel lighter next time?"},
	{ID: "NEG_02", Sentiment: "negative", Text: "What about " + AnchorPlaceholder + " was hardest, and what small part of it went okay anyway?"},
	{ID: "NEG_03", Sentiment: "negative", Text: "If " + AnchorPlaceholder + " happens again, what is one thing you could do differently?"},
	{ID: "POS_01", Sentiment: "positive", Text: "You seemed energized by " + AnchorPlaceholder + ". What made it click for you?"},
	{ID: "POS_02", Sentiment: "positive", Text: "How could you bring more of " + AnchorPlaceholder + " into your next session?"},
	{ID: "POS_03", Sentiment: "positive", Text: "What did " + AnchorPlaceholder + " teach you about how you work best?"},
	{ID: "NEU_01", Sentiment: "neutral", Text: "Looking back at " + AnchorPlaceholder + ", what stands out the most?"},
	{ID: "NEU_02", Sentiment: "neutral", Text: "What is one thing about " + AnchorPlaceholder + " you want to remember tomorrow?"},
	{ID: "NEU_03", Sentiment: "neutral", Text: "If you described " + AnchorPlaceholder + " in one sentence, what would it be?"},
}

// Static fallbacks keyed by mood bucket, used when a space has no notes or
// when the model reply cannot be parsed. These never require an LLM call.
var FallbackReflections = map[string]ReflectionTemplate{
	"negative": {ID: "NEG_01_FALLBACK", Sentiment: "negative", Text: "This session felt heavy. What is one small thing that could make the next one gentler?"},
	"positive": {ID: "POS_01_FALLBACK", Sentiment: "positive", Text: "That felt like a good session. What do you want to carry forward from it?"},
	"neutral":  {ID: "NEU_01_FALLBACK", Sentiment: "neutral", Text: "Take a breath. What will you remember about this session?"},
}

// TemplatesForPrompt renders the bank as the model-facing listing, one
// "id: text" line per template grouped by sentiment.
func TemplatesForPrompt() string {
	var b strings.Builder
	for _, t := range ReflectionTemplates {
		b.WriteString(t.Sentiment)
		b.WriteString(" | ")
		b.WriteString(t.ID)
		b.WriteString(": ")
		b.WriteString(t.Text)
		b.WriteString("\n")
	}
	return b.String()
}

// TemplateByID returns the template with the given id from the bank.
func TemplateByID(id string) (ReflectionTemplate, bool) {
	for _, t := range ReflectionTemplates {
		if t.ID == id {
			return t, true
		}
	}
	return ReflectionTemplate{}, false
}
