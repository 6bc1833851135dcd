package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/moodscape-io/moodscape/internal/infra/llm"
	"github.com/moodscape-io/moodscape/internal/pkg/vocab"
	"go.uber.org/zap"
)

// Completer is the slice of the LLM gateway the engine depends on.
type Completer interface {
	Complete(ctx context.Context, messages []llm.Message, opts llm.Options) (string, error)
}

// AttributeRecord is the structured interpretation of a free-text mood
// prompt. Emotions carries 2-4 entries, Tags 3-6; fonts and mood are names
// from the live catalog vocabularies.
type AttributeRecord struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Mood        string   `json:"mood"`
	ClockFont   string   `json:"clock_font"`
	TextFont    string   `json:"text_font"`
	Emotions    []string `json:"emotions"`
	Tags        []string `json:"tags"`
	IntroLine1  string   `json:"intro_line_1"`
	IntroLine2  string   `json:"intro_line_2"`
	IntroLine3  string   `json:"intro_line_3"`
}

type InterpreterService interface {
	Interpret(ctx context.Context, prompt string) (*AttributeRecord, error)
}

type interpreterService struct {
	gateway Completer
	catalog CatalogService
	log     *zap.Logger
}

func NewInterpreterService(gateway Completer, catalog CatalogService, log *zap.Logger) InterpreterService {
	return &interpreterService{gateway: gateway, catalog: catalog, log: log}
}

// Default selections used both for padding short model replies and for the
// deterministic fallback record.
var (
	defaultEmotions = []string{"calm", "peaceful"}
	defaultTags     = []string{"ambient", "relax", "focus"}
)

// Interpret turns a mood prompt into an attribute record. Gateway errors
// (auth, rate limit, timeout) propagate to the caller; a reply that cannot
// be parsed never blocks space creation and yields the fallback record
// instead.
func (s *interpreterService) Interpret(ctx context.Context, prompt string) (*AttributeRecord, error) {
	clockFonts, textFonts, err := s.fontNames(ctx)
	if err != nil {
		return nil, err
	}

	system := buildInterpreterPrompt(clockFonts, textFonts)
	raw, err := s.gateway.Complete(ctx, []llm.Message{
		{Role: "system", Content: system},
		{Role: "user", Content: prompt},
	}, llm.Options{})
	if err != nil {
		return nil, err
	}

	rec, ok := parseAttributeRecord(raw, clockFonts, textFonts)
	if !ok {
		s.log.Sugar().Warnw("unparsable interpreter reply, using fallback", "prompt", prompt)
		return FallbackRecord(prompt, clockFonts, textFonts), nil
	}
	return rec, nil
}

func (s *interpreterService) fontNames(ctx context.Context) (clock []string, text []string, err error) {
	clockFonts, err := s.catalog.ClockFonts(ctx)
	if err != nil {
		return nil, nil, err
	}
	textFonts, err := s.catalog.TextFonts(ctx)
	if err != nil {
		return nil, nil, err
	}
	for _, f := range clockFonts {
		clock = append(clock, f.Name)
	}
	for _, f := range textFonts {
		text = append(text, f.Name)
	}
	return clock, text, nil
}

// buildInterpreterPrompt enumerates every allowed value so the model never
// has to (and is told not to) invent vocabulary.
func buildInterpreterPrompt(clockFonts, textFonts []string) string {
	var b strings.Builder
	b.WriteString("You interpret a user's mood prompt into a personalized space configuration.\n")
	b.WriteString("Rules:\n")
	b.WriteString("1. Detect the language of the prompt and write name, description and intro lines in that language.\n")
	b.WriteString("2. Select values ONLY from the vocabularies below. Never invent new moods, emotions, tags or fonts.\n")
	b.WriteString("3. Pick exactly one quote from each of the three quote banks and translate it into the detected language.\n")
	b.WriteString("4. Reply with a single JSON object and nothing else: no prose, no markdown fences.\n\n")

	b.WriteString("Allowed moods: " + strings.Join(vocab.Moods, ", ") + "\n")
	b.WriteString("Allowed emotions (choose 2-4): " + strings.Join(vocab.EmotionKeywords, ", ") + "\n")
	b.WriteString("Allowed tags (choose 3-6): " + strings.Join(vocab.DescriptorKeywords, ", ") + "\n")
	b.WriteString("Allowed clock fonts: " + strings.Join(clockFonts, ", ") + "\n")
	b.WriteString("Allowed text fonts: " + strings.Join(textFonts, ", ") + "\n\n")

	for i, bank := range vocab.QuoteBanks {
		b.WriteString(fmt.Sprintf("Quote bank %d:\n", i+1))
		for _, q := range bank {
			b.WriteString("- " + q + "\n")
		}
	}

	b.WriteString("\nJSON keys: name, description, mood, clock_font, text_font, emotions, tags, intro_line_1, intro_line_2, intro_line_3.\n")
	b.WriteString("intro_line_1..3 are the translated quotes from banks 1..3.\n")
	return b.String()
}

// parseAttributeRecord tolerantly decodes the model reply. Shape problems in
// individual fields are coerced; only a completely undecodable reply reports
// ok=false.
func parseAttributeRecord(raw string, clockFonts, textFonts []string) (*AttributeRecord, bool) {
	cleaned := stripCodeFences(raw)

	var decoded map[string]any
	if err := sonic.Unmarshal([]byte(cleaned), &decoded); err != nil || decoded == nil {
		return nil, false
	}

	rec := &AttributeRecord{
		Name:        stringField(decoded, "name"),
		Description: stringField(decoded, "description"),
		Mood:        stringField(decoded, "mood"),
		ClockFont:   stringField(decoded, "clock_font"),
		TextFont:    stringField(decoded, "text_font"),
		Emotions:    stringSliceField(decoded, "emotions"),
		Tags:        stringSliceField(decoded, "tags"),
		IntroLine1:  stringField(decoded, "intro_line_1"),
		IntroLine2:  stringField(decoded, "intro_line_2"),
		IntroLine3:  stringField(decoded, "intro_line_3"),
	}

	if rec.Name == "" {
		rec.Name = "AI Generated Space"
	}
	if !contains(vocab.Moods, rec.Mood) {
		rec.Mood = vocab.Moods[0]
	}
	if !contains(clockFonts, rec.ClockFont) {
		rec.ClockFont = firstOrEmpty(clockFonts)
	}
	if !contains(textFonts, rec.TextFont) {
		rec.TextFont = firstOrEmpty(textFonts)
	}

	rec.Emotions = clampSelection(rec.Emotions, vocab.EmotionKeywords, defaultEmotions, 2, 4)
	rec.Tags = clampSelection(rec.Tags, vocab.DescriptorKeywords, defaultTags, 3, 6)

	return rec, true
}

// FallbackRecord is the deterministic record returned when the model reply
// cannot be parsed at all. It is built from the first catalog entries so
// space creation never blocks on an LLM formatting error.
func FallbackRecord(prompt string, clockFonts, textFonts []string) *AttributeRecord {
	desc := "A space generated for you"
	if prompt != "" {
		desc = "A space generated from your prompt: " + prompt
	}
	return &AttributeRecord{
		Name:        "AI Generated Space",
		Description: desc,
		Mood:        vocab.Moods[0],
		ClockFont:   firstOrEmpty(clockFonts),
		TextFont:    firstOrEmpty(textFonts),
		Emotions:    append([]string(nil), defaultEmotions...),
		Tags:        append([]string(nil), defaultTags...),
		IntroLine1:  vocab.QuoteBanks[0][0],
		IntroLine2:  vocab.QuoteBanks[1][0],
		IntroLine3:  vocab.QuoteBanks[2][0],
	}
}

// stripCodeFences removes leading/trailing markdown fence markers the model
// sometimes wraps its JSON in despite instructions.
func stripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		if idx := strings.IndexByte(s, '\n'); idx >= 0 {
			s = s[idx+1:]
		} else {
			s = strings.TrimPrefix(s, "```")
		}
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// clampSelection keeps only allowed values and pads/truncates the result
// into [min, max].
func clampSelection(selected, allowed, defaults []string, min, max int) []string {
	out := make([]string, 0, max)
	seen := map[string]bool{}
	for _, v := range selected {
		if contains(allowed, v) && !seen[v] {
			out = append(out, v)
			seen[v] = true
		}
		if len(out) == max {
			return out
		}
	}
	for _, v := range defaults {
		if len(out) >= min {
			break
		}
		if !seen[v] {
			out = append(out, v)
			seen[v] = true
		}
	}
	return out
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}

// stringSliceField coerces a missing or non-array value to an empty slice
// rather than failing the whole parse.
func stringSliceField(m map[string]any, key string) []string {
	arr, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func firstOrEmpty(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[0]
}
