package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/moodscape-io/moodscape/internal/infra/queue"
	"github.com/moodscape-io/moodscape/internal/modules/model"
	"github.com/moodscape-io/moodscape/internal/modules/repo"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GenerateOutput is the interpreted-and-matched bundle for one prompt,
// returned to the caller without persisting anything.
type GenerateOutput struct {
	Attributes *AttributeRecord `json:"attributes"`
	Background *model.Background `json:"background"`
	Tracks     []model.Track    `json:"tracks"`
}

// CreateSpaceInput is the persist request. The AI path fills it from a
// GenerateOutput, carrying the interpreter's font names; the manual path
// supplies catalog ids directly. Ids win over names when both are set,
// and either form is validated against the live catalog.
type CreateSpaceInput struct {
	OwnerID            uuid.UUID
	Name               string
	Description        *string
	Mood               string
	PersonalityEssence *string
	BackgroundID       *uuid.UUID
	ClockFontID        *uuid.UUID
	TextFontID         *uuid.UUID
	ClockFontName      *string
	TextFontName       *string
	TagNames           []string
	TrackIDs           []uuid.UUID
	PlaylistName       string
	Notes              []string
	Prompt             *string
	DurationSec        int
}

// SpaceMetadataPatch updates scalar space columns; nil fields are untouched.
type SpaceMetadataPatch struct {
	Name               *string
	Description        *string
	Mood               *string
	PersonalityEssence *string
	DurationSec        *int
}

// SpaceAppearancePatch swaps catalog references; each id is validated
// against the live catalog before any write happens.
type SpaceAppearancePatch struct {
	BackgroundID *uuid.UUID
	ClockFontID  *uuid.UUID
	TextFontID   *uuid.UUID
}

// PlaylistLinksPatch moves playlist ownership. Add re-parents playlists to
// this space; Remove nulls their space pointer. Content is never touched.
type PlaylistLinksPatch struct {
	Add    []uuid.UUID
	Remove []uuid.UUID
}

type WidgetInput struct {
	WidgetID string
	X        float64
	Y        float64
	Metadata map[string]any
}

// UpdateSpaceInput is the partial update: every section is independently
// optional, and collection-valued sections replace rather than merge.
type UpdateSpaceInput struct {
	Metadata      *SpaceMetadataPatch
	Appearance    *SpaceAppearancePatch
	Tags          []string
	PlaylistLinks *PlaylistLinksPatch
	Widgets       []WidgetInput
}

func (in *UpdateSpaceInput) empty() bool {
	return in.Metadata == nil &&
		in.Appearance == nil &&
		in.Tags == nil &&
		in.PlaylistLinks == nil &&
		in.Widgets == nil
}

type ListSpacesInput struct {
	OwnerID        uuid.UUID
	Limit          int
	AfterCreatedAt time.Time
	AfterID        uuid.UUID
	TimeDesc       bool
}

type SpaceService interface {
	Generate(ctx context.Context, ownerID uuid.UUID, prompt string) (*GenerateOutput, error)
	Create(ctx context.Context, in CreateSpaceInput) (*model.Space, error)
	GetByID(ctx context.Context, spaceID uuid.UUID) (*model.Space, error)
	List(ctx context.Context, in ListSpacesInput) ([]model.Space, error)
	Update(ctx context.Context, spaceID uuid.UUID, in UpdateSpaceInput) (*model.Space, error)
	Delete(ctx context.Context, spaceID uuid.UUID) error
	FinalizeDuration(ctx context.Context, spaceID uuid.UUID, seconds int) error
}

type spaceService struct {
	spaces      repo.SpaceRepo
	catalog     repo.CatalogRepo
	interpreter InterpreterService
	matcher     MatcherService
	events      *queue.Publisher
	log         *zap.Logger
}

func NewSpaceService(spaces repo.SpaceRepo, catalog repo.CatalogRepo, interpreter InterpreterService, matcher MatcherService, events *queue.Publisher, log *zap.Logger) SpaceService {
	return &spaceService{
		spaces:      spaces,
		catalog:     catalog,
		interpreter: interpreter,
		matcher:     matcher,
		events:      events,
		log:         log,
	}
}

const defaultPlaylistSize = 5

// Generate runs the interpret-then-match pipeline without persisting.
// Gateway errors bubble to the caller; parse failures inside the
// interpreter already degraded to the fallback record.
func (s *spaceService) Generate(ctx context.Context, ownerID uuid.UUID, prompt string) (*GenerateOutput, error) {
	attrs, err := s.interpreter.Interpret(ctx, prompt)
	if err != nil {
		return nil, err
	}

	background, err := s.matcher.MatchBackground(ctx, attrs.Emotions, attrs.Tags)
	if err != nil {
		return nil, err
	}
	tracks, err := s.matcher.MatchTracks(ctx, attrs.Emotions, attrs.Tags, defaultPlaylistSize)
	if err != nil {
		return nil, err
	}

	return &GenerateOutput{Attributes: attrs, Background: background, Tracks: tracks}, nil
}

// Create validates every reference, resolves tags lazily, and persists the
// whole graph in one transaction. A reference mismatch fails the entire
// operation with no partial writes visible.
func (s *spaceService) Create(ctx context.Context, in CreateSpaceInput) (*model.Space, error) {
	if len(in.TagNames) == 0 {
		return nil, ErrNoTags
	}
	if in.Name == "" {
		return nil, errors.New("space name is required")
	}

	if err := s.resolveFontNames(ctx, &in); err != nil {
		return nil, err
	}
	if err := s.validateRefs(ctx, in.BackgroundID, in.ClockFontID, in.TextFontID); err != nil {
		return nil, err
	}
	for _, trackID := range in.TrackIDs {
		if _, err := s.catalog.GetTrack(ctx, trackID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &UnknownRefError{Kind: "track", Ref: trackID.String()}
			}
			return nil, err
		}
	}

	// Tags are global and never rolled back: resolving them outside the
	// graph transaction keeps the upsert idempotent across retries.
	tagIDs := make([]uuid.UUID, 0, len(in.TagNames))
	for _, name := range in.TagNames {
		tag, err := s.catalog.FindOrCreateTag(ctx, name)
		if err != nil {
			return nil, err
		}
		tagIDs = append(tagIDs, tag.ID)
	}

	space := &model.Space{
		OwnerID:            in.OwnerID,
		Name:               in.Name,
		Description:        in.Description,
		Mood:               in.Mood,
		PersonalityEssence: in.PersonalityEssence,
		BackgroundID:       in.BackgroundID,
		ClockFontID:        in.ClockFontID,
		TextFontID:         in.TextFontID,
		DurationSec:        in.DurationSec,
	}

	graph := &repo.CreateGraphInput{
		Space:        space,
		TagIDs:       tagIDs,
		TrackIDs:     in.TrackIDs,
		PlaylistName: in.PlaylistName,
		Notes:        in.Notes,
		Prompt:       in.Prompt,
		Snapshot:     buildSnapshot(in),
		Mood:         &in.Mood,
	}
	if err := s.spaces.CreateGraph(ctx, graph); err != nil {
		return nil, err
	}

	s.publish(ctx, "space.created", map[string]any{"space_id": space.ID, "owner_id": in.OwnerID})

	return s.spaces.Get(ctx, space.ID)
}

func (s *spaceService) GetByID(ctx context.Context, spaceID uuid.UUID) (*model.Space, error) {
	sp, err := s.spaces.Get(ctx, spaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpaceNotFound
		}
		return nil, err
	}
	return sp, nil
}

func (s *spaceService) List(ctx context.Context, in ListSpacesInput) ([]model.Space, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = 20
	}
	return s.spaces.ListByOwner(ctx, in.OwnerID, in.AfterCreatedAt, in.AfterID, limit, in.TimeDesc)
}

// Update applies the present sections atomically. Validation of every
// referenced id happens before any write; an update without a single
// recognized section never reaches storage.
func (s *spaceService) Update(ctx context.Context, spaceID uuid.UUID, in UpdateSpaceInput) (*model.Space, error) {
	if in.empty() {
		return nil, ErrEmptyPatch
	}
	if in.Tags != nil && len(in.Tags) == 0 {
		return nil, ErrNoTags
	}

	patch := &repo.Patch{Columns: map[string]any{}}

	if m := in.Metadata; m != nil {
		if m.Name != nil {
			patch.Columns["name"] = *m.Name
		}
		if m.Description != nil {
			patch.Columns["description"] = *m.Description
		}
		if m.Mood != nil {
			patch.Columns["mood"] = *m.Mood
		}
		if m.PersonalityEssence != nil {
			patch.Columns["personality_essence"] = *m.PersonalityEssence
		}
		if m.DurationSec != nil {
			patch.Columns["duration_sec"] = *m.DurationSec
		}
	}

	if a := in.Appearance; a != nil {
		if err := s.validateRefs(ctx, a.BackgroundID, a.ClockFontID, a.TextFontID); err != nil {
			return nil, err
		}
		if a.BackgroundID != nil {
			patch.Columns["background_id"] = *a.BackgroundID
		}
		if a.ClockFontID != nil {
			patch.Columns["clock_font_id"] = *a.ClockFontID
		}
		if a.TextFontID != nil {
			patch.Columns["text_font_id"] = *a.TextFontID
		}
	}

	if in.Tags != nil {
		tagIDs := make([]uuid.UUID, 0, len(in.Tags))
		for _, name := range in.Tags {
			tag, err := s.catalog.FindOrCreateTag(ctx, name)
			if err != nil {
				return nil, err
			}
			tagIDs = append(tagIDs, tag.ID)
		}
		patch.ReplaceTagIDs = tagIDs
	}

	if pl := in.PlaylistLinks; pl != nil {
		for _, id := range append(append([]uuid.UUID{}, pl.Add...), pl.Remove...) {
			if _, err := s.spaces.GetPlaylist(ctx, id); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, &UnknownRefError{Kind: "playlist", Ref: id.String()}
				}
				return nil, err
			}
		}
		patch.AttachPlaylists = pl.Add
		patch.DetachPlaylists = pl.Remove
	}

	if in.Widgets != nil {
		rows := make([]model.WidgetPosition, 0, len(in.Widgets))
		for _, w := range in.Widgets {
			rows = append(rows, model.WidgetPosition{
				WidgetID: w.WidgetID,
				X:        w.X,
				Y:        w.Y,
				Metadata: datatypes.JSONMap(w.Metadata),
			})
		}
		patch.ReplaceWidgets = rows
	}

	if err := s.spaces.ApplyPatch(ctx, spaceID, patch); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpaceNotFound
		}
		return nil, err
	}

	return s.spaces.Get(ctx, spaceID)
}

// Delete soft-deletes the space and cascades per the relation policy table.
// Deleting an already-deleted space reports not-found without re-running
// the cascade.
func (s *spaceService) Delete(ctx context.Context, spaceID uuid.UUID) error {
	if err := s.spaces.SoftDelete(ctx, spaceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSpaceNotFound
		}
		return err
	}
	s.publish(ctx, "space.deleted", map[string]any{"space_id": spaceID})
	return nil
}

// FinalizeDuration is the explicit duration persist invoked after a
// checkout completes; checkout itself never writes the duration.
func (s *spaceService) FinalizeDuration(ctx context.Context, spaceID uuid.UUID, seconds int) error {
	if err := s.spaces.UpdateDuration(ctx, spaceID, seconds); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSpaceNotFound
		}
		return err
	}
	return nil
}

// resolveFontNames turns the interpreter's font names into catalog ids so
// the AI path can hand a GenerateOutput straight to Create. An explicit id
// takes precedence over a name.
func (s *spaceService) resolveFontNames(ctx context.Context, in *CreateSpaceInput) error {
	if in.ClockFontID == nil && in.ClockFontName != nil && *in.ClockFontName != "" {
		font, err := s.catalog.FindClockFontByName(ctx, *in.ClockFontName)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &UnknownRefError{Kind: "clock font", Ref: *in.ClockFontName}
			}
			return err
		}
		in.ClockFontID = &font.ID
	}
	if in.TextFontID == nil && in.TextFontName != nil && *in.TextFontName != "" {
		font, err := s.catalog.FindTextFontByName(ctx, *in.TextFontName)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &UnknownRefError{Kind: "text font", Ref: *in.TextFontName}
			}
			return err
		}
		in.TextFontID = &font.ID
	}
	return nil
}

func (s *spaceService) validateRefs(ctx context.Context, backgroundID, clockFontID, textFontID *uuid.UUID) error {
	if backgroundID != nil {
		if _, err := s.catalog.GetBackground(ctx, *backgroundID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &UnknownRefError{Kind: "background", Ref: backgroundID.String()}
			}
			return err
		}
	}
	if clockFontID != nil {
		if _, err := s.catalog.GetClockFont(ctx, *clockFontID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &UnknownRefError{Kind: "clock font", Ref: clockFontID.String()}
			}
			return err
		}
	}
	if textFontID != nil {
		if _, err := s.catalog.GetTextFont(ctx, *textFontID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &UnknownRefError{Kind: "text font", Ref: textFontID.String()}
			}
			return err
		}
	}
	return nil
}

// buildSnapshot captures every resolved field for the audit record.
func buildSnapshot(in CreateSpaceInput) datatypes.JSONMap {
	snap := datatypes.JSONMap{
		"name":         in.Name,
		"mood":         in.Mood,
		"tags":         in.TagNames,
		"duration_sec": in.DurationSec,
		"track_count":  len(in.TrackIDs),
		"note_count":   len(in.Notes),
	}
	if in.Description != nil {
		snap["description"] = *in.Description
	}
	if in.PersonalityEssence != nil {
		snap["personality_essence"] = *in.PersonalityEssence
	}
	if in.BackgroundID != nil {
		snap["background_id"] = in.BackgroundID.String()
	}
	if in.ClockFontID != nil {
		snap["clock_font_id"] = in.ClockFontID.String()
	}
	if in.TextFontID != nil {
		snap["text_font_id"] = in.TextFontID.String()
	}
	return snap
}

// publish emits a lifecycle event after commit; failures are logged, never
// surfaced, since events are advisory.
func (s *spaceService) publish(ctx context.Context, key string, payload map[string]any) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishJSON(ctx, key, payload); err != nil {
		s.log.Sugar().Warnw("event publish failed", "routing_key", key, "err", err)
	}
}
