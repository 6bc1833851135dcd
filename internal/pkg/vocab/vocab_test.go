package vocab

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoodBucket(t *testing.T) {
	assert.Equal(t, "negative", MoodBucket("Anxious"))
	assert.Equal(t, "negative", MoodBucket("Tired"))
	assert.Equal(t, "positive", MoodBucket("Happy"))
	assert.Equal(t, "neutral", MoodBucket("Focused"))
	assert.Equal(t, "neutral", MoodBucket("SomethingUnknown"))
}

func TestEveryMoodIsBucketed(t *testing.T) {
	covered := map[string]bool{}
	for _, m := range NegativeMoods {
		covered[m] = true
	}
	for _, m := range PositiveMoods {
		covered[m] = true
	}
	for _, m := range NeutralMoods {
		covered[m] = true
	}
	for _, m := range Moods {
		assert.True(t, covered[m], "mood %q missing from bucket lists", m)
	}
}

func TestFallbackReflectionsCoverEveryBucket(t *testing.T) {
	for _, bucket := range []string{"negative", "positive", "neutral"} {
		tmpl, ok := FallbackReflections[bucket]
		assert.True(t, ok)
		assert.Equal(t, bucket, tmpl.Sentiment)
		assert.NotContains(t, tmpl.Text, AnchorPlaceholder, "fallbacks must be usable without substitution")
	}
}

func TestTemplateBankShape(t *testing.T) {
	perSentiment := map[string]int{}
	for _, tmpl := range ReflectionTemplates {
		perSentiment[tmpl.Sentiment]++
		assert.Contains(t, tmpl.Text, AnchorPlaceholder, "template %s must carry the anchor placeholder", tmpl.ID)
	}
	assert.Equal(t, 3, perSentiment["negative"])
	assert.Equal(t, 3, perSentiment["positive"])
	assert.Equal(t, 3, perSentiment["neutral"])
}

func TestTemplateByID(t *testing.T) {
	tmpl, ok := TemplateByID("NEU_02")
	assert.True(t, ok)
	assert.Equal(t, "neutral", tmpl.Sentiment)

	_, ok = TemplateByID("NEU_99")
	assert.False(t, ok)
}

func TestTemplatesForPromptListsEveryID(t *testing.T) {
	listing := TemplatesForPrompt()
	for _, tmpl := range ReflectionTemplates {
		assert.True(t, strings.Contains(listing, tmpl.ID))
	}
}
