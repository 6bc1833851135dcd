package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/moodscape-io/moodscape/internal/modules/model"
	"github.com/moodscape-io/moodscape/internal/modules/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newSpaceServiceForTest(spaces *MockSpaceRepo, catalog *MockCatalogRepo) SpaceService {
	return NewSpaceService(spaces, catalog, nil, nil, nil, zap.NewNop())
}

func strPtr(s string) *string { return &s }

func TestGenerate_RunsInterpretThenMatch(t *testing.T) {
	attrs := &AttributeRecord{
		Name:     "Den",
		Mood:     "Calm",
		Emotions: []string{"calm", "cozy"},
		Tags:     []string{"rain", "night", "focus"},
	}
	bg := &model.Background{ImageKey: "bg-rain"}

	interpreter := new(MockInterpreterService)
	interpreter.On("Interpret", mock.Anything, "rainy night").Return(attrs, nil)

	matcher := new(MockMatcherService)
	matcher.On("MatchBackground", mock.Anything, attrs.Emotions, attrs.Tags).Return(bg, nil)
	matcher.On("MatchTracks", mock.Anything, attrs.Emotions, attrs.Tags, defaultPlaylistSize).
		Return([]model.Track{{Name: "lofi beats"}}, nil)

	svc := NewSpaceService(new(MockSpaceRepo), new(MockCatalogRepo), interpreter, matcher, nil, zap.NewNop())
	out, err := svc.Generate(context.Background(), uuid.New(), "rainy night")

	assert.NoError(t, err)
	assert.Equal(t, attrs, out.Attributes)
	assert.Equal(t, "bg-rain", out.Background.ImageKey)
	assert.Len(t, out.Tracks, 1)
}

func TestGenerate_EmptyCatalogFailsHard(t *testing.T) {
	interpreter := new(MockInterpreterService)
	interpreter.On("Interpret", mock.Anything, mock.Anything).Return(&AttributeRecord{}, nil)

	matcher := new(MockMatcherService)
	matcher.On("MatchBackground", mock.Anything, mock.Anything, mock.Anything).Return(nil, ErrEmptyCatalog)

	svc := NewSpaceService(new(MockSpaceRepo), new(MockCatalogRepo), interpreter, matcher, nil, zap.NewNop())
	_, err := svc.Generate(context.Background(), uuid.New(), "x")

	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestCreate_ResolvesTagsAndPersistsGraph(t *testing.T) {
	ownerID := uuid.New()
	spaceID := uuid.New()
	tagFocus := &model.Tag{ID: uuid.New(), Name: "focus"}
	tagRain := &model.Tag{ID: uuid.New(), Name: "rain"}

	catalog := new(MockCatalogRepo)
	catalog.On("FindOrCreateTag", mock.Anything, "focus").Return(tagFocus, nil)
	catalog.On("FindOrCreateTag", mock.Anything, "rain").Return(tagRain, nil)

	spaces := new(MockSpaceRepo)
	spaces.On("CreateGraph", mock.Anything, mock.MatchedBy(func(in *repo.CreateGraphInput) bool {
		return len(in.TagIDs) == 2 &&
			in.TagIDs[0] == tagFocus.ID &&
			in.TagIDs[1] == tagRain.ID &&
			in.Space.Name == "Den" &&
			in.Snapshot["mood"] == "Calm"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*repo.CreateGraphInput).Space.ID = spaceID
	}).Return(nil)
	spaces.On("Get", mock.Anything, spaceID).Return(&model.Space{ID: spaceID, Name: "Den"}, nil)

	svc := newSpaceServiceForTest(spaces, catalog)
	got, err := svc.Create(context.Background(), CreateSpaceInput{
		OwnerID:  ownerID,
		Name:     "Den",
		Mood:     "Calm",
		TagNames: []string{"focus", "rain"},
	})

	assert.NoError(t, err)
	assert.Equal(t, spaceID, got.ID)
	spaces.AssertExpectations(t)
	catalog.AssertExpectations(t)
}

func TestCreate_RequiresAtLeastOneTag(t *testing.T) {
	svc := newSpaceServiceForTest(new(MockSpaceRepo), new(MockCatalogRepo))
	_, err := svc.Create(context.Background(), CreateSpaceInput{
		Name: "Den",
		Mood: "Calm",
	})
	assert.ErrorIs(t, err, ErrNoTags)
}

func TestCreate_UnknownBackgroundRejected(t *testing.T) {
	badID := uuid.New()
	catalog := new(MockCatalogRepo)
	catalog.On("GetBackground", mock.Anything, badID).Return(nil, gorm.ErrRecordNotFound)

	spaces := new(MockSpaceRepo)
	svc := newSpaceServiceForTest(spaces, catalog)

	_, err := svc.Create(context.Background(), CreateSpaceInput{
		Name:         "Den",
		Mood:         "Calm",
		TagNames:     []string{"focus"},
		BackgroundID: &badID,
	})

	var refErr *UnknownRefError
	assert.ErrorAs(t, err, &refErr)
	assert.Equal(t, "background", refErr.Kind)
	spaces.AssertNotCalled(t, "CreateGraph", mock.Anything, mock.Anything)
}

func TestCreate_ResolvesFontNamesToCatalogIDs(t *testing.T) {
	spaceID := uuid.New()
	clockFont := &model.ClockFontStyle{ID: uuid.New(), Name: "minimal"}
	textFont := &model.TextFont{ID: uuid.New(), Name: "Inter"}

	catalog := new(MockCatalogRepo)
	catalog.On("FindClockFontByName", mock.Anything, "minimal").Return(clockFont, nil)
	catalog.On("FindTextFontByName", mock.Anything, "Inter").Return(textFont, nil)
	catalog.On("GetClockFont", mock.Anything, clockFont.ID).Return(clockFont, nil)
	catalog.On("GetTextFont", mock.Anything, textFont.ID).Return(textFont, nil)
	catalog.On("FindOrCreateTag", mock.Anything, "focus").Return(&model.Tag{ID: uuid.New(), Name: "focus"}, nil)

	spaces := new(MockSpaceRepo)
	spaces.On("CreateGraph", mock.Anything, mock.MatchedBy(func(in *repo.CreateGraphInput) bool {
		return in.Space.ClockFontID != nil && *in.Space.ClockFontID == clockFont.ID &&
			in.Space.TextFontID != nil && *in.Space.TextFontID == textFont.ID
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*repo.CreateGraphInput).Space.ID = spaceID
	}).Return(nil)
	spaces.On("Get", mock.Anything, spaceID).Return(&model.Space{ID: spaceID}, nil)

	svc := newSpaceServiceForTest(spaces, catalog)
	_, err := svc.Create(context.Background(), CreateSpaceInput{
		Name:          "Den",
		Mood:          "Calm",
		TagNames:      []string{"focus"},
		ClockFontName: strPtr("minimal"),
		TextFontName:  strPtr("Inter"),
	})

	assert.NoError(t, err)
	spaces.AssertExpectations(t)
	catalog.AssertExpectations(t)
}

func TestCreate_UnknownFontNameRejected(t *testing.T) {
	catalog := new(MockCatalogRepo)
	catalog.On("FindClockFontByName", mock.Anything, "comic sans").Return(nil, gorm.ErrRecordNotFound)

	spaces := new(MockSpaceRepo)
	svc := newSpaceServiceForTest(spaces, catalog)

	_, err := svc.Create(context.Background(), CreateSpaceInput{
		Name:          "Den",
		Mood:          "Calm",
		TagNames:      []string{"focus"},
		ClockFontName: strPtr("comic sans"),
	})

	var refErr *UnknownRefError
	assert.ErrorAs(t, err, &refErr)
	assert.Equal(t, "clock font", refErr.Kind)
	assert.Equal(t, "comic sans", refErr.Ref)
	spaces.AssertNotCalled(t, "CreateGraph", mock.Anything, mock.Anything)
}

func TestUpdate_EmptyPatchRejected(t *testing.T) {
	spaces := new(MockSpaceRepo)
	svc := newSpaceServiceForTest(spaces, new(MockCatalogRepo))

	_, err := svc.Update(context.Background(), uuid.New(), UpdateSpaceInput{})

	assert.ErrorIs(t, err, ErrEmptyPatch)
	spaces.AssertNotCalled(t, "ApplyPatch", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_EmptyTagListRejected(t *testing.T) {
	svc := newSpaceServiceForTest(new(MockSpaceRepo), new(MockCatalogRepo))
	_, err := svc.Update(context.Background(), uuid.New(), UpdateSpaceInput{Tags: []string{}})
	assert.ErrorIs(t, err, ErrNoTags)
}

func TestUpdate_WidgetsOnlyLeavesOtherSectionsUntouched(t *testing.T) {
	spaceID := uuid.New()

	spaces := new(MockSpaceRepo)
	spaces.On("ApplyPatch", mock.Anything, spaceID, mock.MatchedBy(func(p *repo.Patch) bool {
		return len(p.Columns) == 0 &&
			p.ReplaceTagIDs == nil &&
			len(p.AttachPlaylists) == 0 &&
			len(p.DetachPlaylists) == 0 &&
			len(p.ReplaceWidgets) == 1 &&
			p.ReplaceWidgets[0].WidgetID == "clock"
	})).Return(nil)
	spaces.On("Get", mock.Anything, spaceID).Return(&model.Space{ID: spaceID}, nil)

	svc := newSpaceServiceForTest(spaces, new(MockCatalogRepo))
	_, err := svc.Update(context.Background(), spaceID, UpdateSpaceInput{
		Widgets: []WidgetInput{{WidgetID: "clock", X: 0.1, Y: 0.9}},
	})

	assert.NoError(t, err)
	spaces.AssertExpectations(t)
}

func TestUpdate_TagReplaceResolvesNames(t *testing.T) {
	spaceID := uuid.New()
	tag := &model.Tag{ID: uuid.New(), Name: "study"}

	catalog := new(MockCatalogRepo)
	catalog.On("FindOrCreateTag", mock.Anything, "study").Return(tag, nil)

	spaces := new(MockSpaceRepo)
	spaces.On("ApplyPatch", mock.Anything, spaceID, mock.MatchedBy(func(p *repo.Patch) bool {
		return len(p.ReplaceTagIDs) == 1 && p.ReplaceTagIDs[0] == tag.ID
	})).Return(nil)
	spaces.On("Get", mock.Anything, spaceID).Return(&model.Space{ID: spaceID}, nil)

	svc := newSpaceServiceForTest(spaces, catalog)
	_, err := svc.Update(context.Background(), spaceID, UpdateSpaceInput{Tags: []string{"study"}})

	assert.NoError(t, err)
	spaces.AssertExpectations(t)
}

func TestUpdate_UnknownPlaylistRejectedBeforeWrite(t *testing.T) {
	spaceID := uuid.New()
	badID := uuid.New()

	spaces := new(MockSpaceRepo)
	spaces.On("GetPlaylist", mock.Anything, badID).Return(nil, gorm.ErrRecordNotFound)

	svc := newSpaceServiceForTest(spaces, new(MockCatalogRepo))
	_, err := svc.Update(context.Background(), spaceID, UpdateSpaceInput{
		PlaylistLinks: &PlaylistLinksPatch{Add: []uuid.UUID{badID}},
	})

	var refErr *UnknownRefError
	assert.ErrorAs(t, err, &refErr)
	assert.Equal(t, "playlist", refErr.Kind)
	spaces.AssertNotCalled(t, "ApplyPatch", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_NotFoundMapped(t *testing.T) {
	spaceID := uuid.New()

	spaces := new(MockSpaceRepo)
	spaces.On("ApplyPatch", mock.Anything, spaceID, mock.Anything).Return(gorm.ErrRecordNotFound)

	svc := newSpaceServiceForTest(spaces, new(MockCatalogRepo))
	_, err := svc.Update(context.Background(), spaceID, UpdateSpaceInput{
		Metadata: &SpaceMetadataPatch{Name: strPtr("Renamed")},
	})

	assert.ErrorIs(t, err, ErrSpaceNotFound)
}

func TestDelete_SecondDeleteReportsNotFound(t *testing.T) {
	spaceID := uuid.New()

	spaces := new(MockSpaceRepo)
	spaces.On("SoftDelete", mock.Anything, spaceID).Return(nil).Once()
	spaces.On("SoftDelete", mock.Anything, spaceID).Return(gorm.ErrRecordNotFound).Once()

	svc := newSpaceServiceForTest(spaces, new(MockCatalogRepo))

	assert.NoError(t, svc.Delete(context.Background(), spaceID))
	assert.ErrorIs(t, svc.Delete(context.Background(), spaceID), ErrSpaceNotFound)
}

func TestFinalizeDuration_NotFoundMapped(t *testing.T) {
	spaceID := uuid.New()

	spaces := new(MockSpaceRepo)
	spaces.On("UpdateDuration", mock.Anything, spaceID, 900).Return(gorm.ErrRecordNotFound)

	svc := newSpaceServiceForTest(spaces, new(MockCatalogRepo))
	assert.ErrorIs(t, svc.FinalizeDuration(context.Background(), spaceID, 900), ErrSpaceNotFound)
}

func TestGetByID_NotFoundMapped(t *testing.T) {
	spaceID := uuid.New()

	spaces := new(MockSpaceRepo)
	spaces.On("Get", mock.Anything, spaceID).Return(nil, gorm.ErrRecordNotFound)

	svc := newSpaceServiceForTest(spaces, new(MockCatalogRepo))
	_, err := svc.GetByID(context.Background(), spaceID)
	assert.ErrorIs(t, err, ErrSpaceNotFound)
}
