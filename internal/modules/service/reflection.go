package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/moodscape-io/moodscape/internal/infra/llm"
	"github.com/moodscape-io/moodscape/internal/infra/queue"
	"github.com/moodscape-io/moodscape/internal/modules/repo"
	"github.com/moodscape-io/moodscape/internal/pkg/vocab"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Reflection is the post-session question synthesized at checkout.
type Reflection struct {
	Sentiment           string   `json:"sentiment"`
	Anchor              string   `json:"anchor"`
	TemplateID          string   `json:"selected_template_id"`
	Question            string   `json:"reflection_question"`
	Tags                []string `json:"tags"`
	TemplateBankVersion string   `json:"template_bank_version"`
}

type ReflectionService interface {
	// Checkout synthesizes a reflection for the session. The duration is
	// read-only prompt context; persisting it is the caller's separate
	// FinalizeDuration call, so an abandoned checkout leaves the space
	// untouched.
	Checkout(ctx context.Context, spaceID uuid.UUID, durationSec int) (*Reflection, error)
}

type reflectionService struct {
	spaces  repo.SpaceRepo
	gateway Completer
	events  *queue.Publisher
	log     *zap.Logger
}

func NewReflectionService(spaces repo.SpaceRepo, gateway Completer, events *queue.Publisher, log *zap.Logger) ReflectionService {
	return &reflectionService{spaces: spaces, gateway: gateway, events: events, log: log}
}

const maxAnchorWords = 5

func (s *reflectionService) Checkout(ctx context.Context, spaceID uuid.UUID, durationSec int) (*Reflection, error) {
	space, err := s.spaces.Get(ctx, spaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpaceNotFound
		}
		return nil, err
	}

	notes, err := s.spaces.ListNotes(ctx, spaceID)
	if err != nil {
		return nil, err
	}

	var ref *Reflection
	if len(notes) == 0 {
		// Static path: no notes means nothing to anchor on, so the mood
		// bucket picks a canned question and the model is never called.
		ref = fallbackReflection(vocab.MoodBucket(space.Mood))
	} else {
		contents := make([]string, 0, len(notes))
		for _, n := range notes {
			contents = append(contents, n.Content)
		}
		ref = s.synthesize(ctx, space.Mood, contents, durationSec)
	}

	if s.events != nil {
		payload := map[string]any{"space_id": spaceID, "template_id": ref.TemplateID, "sentiment": ref.Sentiment}
		if perr := s.events.PublishJSON(ctx, "reflection.checked_out", payload); perr != nil {
			s.log.Sugar().Warnw("event publish failed", "routing_key", "reflection.checked_out", "err", perr)
		}
	}
	return ref, nil
}

// synthesize runs the LLM path. Checkout must always produce a usable
// reflection, so gateway failures and unparsable replies both degrade to
// the static fallback instead of propagating.
func (s *reflectionService) synthesize(ctx context.Context, mood string, notes []string, durationSec int) *Reflection {
	system := buildReflectionPrompt()
	user := fmt.Sprintf("Mood: %s\nSession duration: %d seconds\nSession notes:\n%s",
		mood, durationSec, strings.Join(notes, "\n"))

	raw, err := s.gateway.Complete(ctx, []llm.Message{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	}, llm.Options{})
	if err != nil {
		s.log.Sugar().Warnw("reflection completion failed, using fallback", "err", err)
		return fallbackReflection(vocab.MoodBucket(mood))
	}

	ref, ok := parseReflection(raw)
	if !ok {
		s.log.Sugar().Warnw("unparsable reflection reply, using neutral fallback")
		return fallbackReflection("neutral")
	}
	return ref
}

func buildReflectionPrompt() string {
	var b strings.Builder
	b.WriteString("You turn a study/relax session's notes into one reflection question.\n")
	b.WriteString("Steps:\n")
	b.WriteString("1. Classify the overall sentiment of the notes: negative, positive or neutral.\n")
	b.WriteString("2. Extract an anchor phrase of at most ")
	b.WriteString(fmt.Sprintf("%d", maxAnchorWords))
	b.WriteString(" words capturing the dominant topic; use \"" + vocab.DefaultAnchor + "\" if none stands out.\n")
	b.WriteString("3. Pick exactly one template id from the bank below, matching the sentiment.\n")
	b.WriteString("4. Fill the " + vocab.AnchorPlaceholder + " placeholder with the anchor.\n")
	b.WriteString("5. Suggest three hashtags for the session.\n")
	b.WriteString("Reply with a single JSON object with keys: sentiment, anchor, selected_template_id, reflection_question, tags. No prose, no fences.\n\n")
	b.WriteString("Template bank (version " + vocab.TemplateBankVersion + "):\n")
	b.WriteString(vocab.TemplatesForPrompt())
	return b.String()
}

// parseReflection requires at minimum reflection_question and
// selected_template_id; everything else is coerced with defaults.
func parseReflection(raw string) (*Reflection, bool) {
	cleaned := stripCodeFences(raw)

	var decoded map[string]any
	if err := sonic.Unmarshal([]byte(cleaned), &decoded); err != nil || decoded == nil {
		return nil, false
	}

	question := stringField(decoded, "reflection_question")
	templateID := stringField(decoded, "selected_template_id")
	if question == "" || templateID == "" {
		return nil, false
	}

	tmpl, known := vocab.TemplateByID(templateID)
	if !known {
		return nil, false
	}

	anchor := stringField(decoded, "anchor")
	if anchor == "" {
		anchor = vocab.DefaultAnchor
	}
	if words := strings.Fields(anchor); len(words) > maxAnchorWords {
		anchor = strings.Join(words[:maxAnchorWords], " ")
	}

	sentiment := stringField(decoded, "sentiment")
	if sentiment != "negative" && sentiment != "positive" && sentiment != "neutral" {
		sentiment = tmpl.Sentiment
	}

	return &Reflection{
		Sentiment:           sentiment,
		Anchor:              anchor,
		TemplateID:          templateID,
		Question:            question,
		Tags:                stringSliceField(decoded, "tags"),
		TemplateBankVersion: vocab.TemplateBankVersion,
	}, true
}

func fallbackReflection(bucket string) *Reflection {
	tmpl, ok := vocab.FallbackReflections[bucket]
	if !ok {
		tmpl = vocab.FallbackReflections["neutral"]
	}
	return &Reflection{
		Sentiment:           tmpl.Sentiment,
		Anchor:              vocab.DefaultAnchor,
		TemplateID:          tmpl.ID,
		Question:            tmpl.Text,
		Tags:                []string{},
		TemplateBankVersion: vocab.TemplateBankVersion,
	}
}
