package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/moodscape-io/moodscape/internal/infra/llm"
	"github.com/moodscape-io/moodscape/internal/modules/model"
	"github.com/moodscape-io/moodscape/internal/modules/repo"
	"github.com/stretchr/testify/mock"
)

// MockCompleter is a mock implementation of Completer
type MockCompleter struct {
	mock.Mock
}

func (m *MockCompleter) Complete(ctx context.Context, messages []llm.Message, opts llm.Options) (string, error) {
	args := m.Called(ctx, messages, opts)
	return args.String(0), args.Error(1)
}

// MockCatalogService is a mock implementation of CatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Backgrounds(ctx context.Context) ([]model.Background, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Background), args.Error(1)
}

func (m *MockCatalogService) Tracks(ctx context.Context) ([]model.Track, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Track), args.Error(1)
}

func (m *MockCatalogService) ClockFonts(ctx context.Context) ([]model.ClockFontStyle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ClockFontStyle), args.Error(1)
}

func (m *MockCatalogService) TextFonts(ctx context.Context) ([]model.TextFont, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TextFont), args.Error(1)
}

func (m *MockCatalogService) MediaURL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCatalogService) MediaUploadURL(ctx context.Context, key, contentType string) (string, error) {
	args := m.Called(ctx, key, contentType)
	return args.String(0), args.Error(1)
}

// MockInterpreterService is a mock implementation of InterpreterService
type MockInterpreterService struct {
	mock.Mock
}

func (m *MockInterpreterService) Interpret(ctx context.Context, prompt string) (*AttributeRecord, error) {
	args := m.Called(ctx, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*AttributeRecord), args.Error(1)
}

// MockMatcherService is a mock implementation of MatcherService
type MockMatcherService struct {
	mock.Mock
}

func (m *MockMatcherService) MatchBackground(ctx context.Context, emotions, tags []string) (*model.Background, error) {
	args := m.Called(ctx, emotions, tags)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Background), args.Error(1)
}

func (m *MockMatcherService) MatchTracks(ctx context.Context, emotions, tags []string, limit int) ([]model.Track, error) {
	args := m.Called(ctx, emotions, tags, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Track), args.Error(1)
}

// MockSpaceRepo is a mock implementation of repo.SpaceRepo
type MockSpaceRepo struct {
	mock.Mock
}

func (m *MockSpaceRepo) CreateGraph(ctx context.Context, in *repo.CreateGraphInput) error {
	args := m.Called(ctx, in)
	return args.Error(0)
}

func (m *MockSpaceRepo) Get(ctx context.Context, spaceID uuid.UUID) (*model.Space, error) {
	args := m.Called(ctx, spaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Space), args.Error(1)
}

func (m *MockSpaceRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, afterCreatedAt time.Time, afterID uuid.UUID, limit int, timeDesc bool) ([]model.Space, error) {
	args := m.Called(ctx, ownerID, afterCreatedAt, afterID, limit, timeDesc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Space), args.Error(1)
}

func (m *MockSpaceRepo) ApplyPatch(ctx context.Context, spaceID uuid.UUID, p *repo.Patch) error {
	args := m.Called(ctx, spaceID, p)
	return args.Error(0)
}

func (m *MockSpaceRepo) SoftDelete(ctx context.Context, spaceID uuid.UUID) error {
	args := m.Called(ctx, spaceID)
	return args.Error(0)
}

func (m *MockSpaceRepo) UpdateDuration(ctx context.Context, spaceID uuid.UUID, seconds int) error {
	args := m.Called(ctx, spaceID, seconds)
	return args.Error(0)
}

func (m *MockSpaceRepo) GetPlaylist(ctx context.Context, playlistID uuid.UUID) (*model.Playlist, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Playlist), args.Error(1)
}

func (m *MockSpaceRepo) ListNotes(ctx context.Context, spaceID uuid.UUID) ([]model.Note, error) {
	args := m.Called(ctx, spaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Note), args.Error(1)
}

// MockCatalogRepo is a mock implementation of repo.CatalogRepo
type MockCatalogRepo struct {
	mock.Mock
}

func (m *MockCatalogRepo) ListBackgrounds(ctx context.Context) ([]model.Background, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Background), args.Error(1)
}

func (m *MockCatalogRepo) ListTracks(ctx context.Context) ([]model.Track, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Track), args.Error(1)
}

func (m *MockCatalogRepo) ListClockFonts(ctx context.Context) ([]model.ClockFontStyle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ClockFontStyle), args.Error(1)
}

func (m *MockCatalogRepo) ListTextFonts(ctx context.Context) ([]model.TextFont, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TextFont), args.Error(1)
}

func (m *MockCatalogRepo) GetBackground(ctx context.Context, id uuid.UUID) (*model.Background, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Background), args.Error(1)
}

func (m *MockCatalogRepo) GetTrack(ctx context.Context, id uuid.UUID) (*model.Track, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Track), args.Error(1)
}

func (m *MockCatalogRepo) GetClockFont(ctx context.Context, id uuid.UUID) (*model.ClockFontStyle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ClockFontStyle), args.Error(1)
}

func (m *MockCatalogRepo) GetTextFont(ctx context.Context, id uuid.UUID) (*model.TextFont, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TextFont), args.Error(1)
}

func (m *MockCatalogRepo) FindClockFontByName(ctx context.Context, name string) (*model.ClockFontStyle, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ClockFontStyle), args.Error(1)
}

func (m *MockCatalogRepo) FindTextFontByName(ctx context.Context, name string) (*model.TextFont, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TextFont), args.Error(1)
}

func (m *MockCatalogRepo) FindOrCreateTag(ctx context.Context, name string) (*model.Tag, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tag), args.Error(1)
}
