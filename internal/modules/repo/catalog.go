package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/moodscape-io/moodscape/internal/modules/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CatalogRepo reads the pre-seeded resource catalog. Every lookup excludes
// soft-deleted rows; historical references resolve through the space graph
// preloads instead.
type CatalogRepo interface {
	ListBackgrounds(ctx context.Context) ([]model.Background, error)
	ListTracks(ctx context.Context) ([]model.Track, error)
	ListClockFonts(ctx context.Context) ([]model.ClockFontStyle, error)
	ListTextFonts(ctx context.Context) ([]model.TextFont, error)

	GetBackground(ctx context.Context, id uuid.UUID) (*model.Background, error)
	GetTrack(ctx context.Context, id uuid.UUID) (*model.Track, error)
	GetClockFont(ctx context.Context, id uuid.UUID) (*model.ClockFontStyle, error)
	GetTextFont(ctx context.Context, id uuid.UUID) (*model.TextFont, error)

	FindClockFontByName(ctx context.Context, name string) (*model.ClockFontStyle, error)
	FindTextFontByName(ctx context.Context, name string) (*model.TextFont, error)

	FindOrCreateTag(ctx context.Context, name string) (*model.Tag, error)
}

type catalogRepo struct{ db *gorm.DB }

func NewCatalogRepo(db *gorm.DB) CatalogRepo {
	return &catalogRepo{db: db}
}

func (r *catalogRepo) ListBackgrounds(ctx context.Context) ([]model.Background, error) {
	var items []model.Background
	return items, r.db.WithContext(ctx).Where("is_deleted = false").Find(&items).Error
}

func (r *catalogRepo) ListTracks(ctx context.Context) ([]model.Track, error) {
	var items []model.Track
	return items, r.db.WithContext(ctx).Where("is_deleted = false").Find(&items).Error
}

func (r *catalogRepo) ListClockFonts(ctx context.Context) ([]model.ClockFontStyle, error) {
	var items []model.ClockFontStyle
	return items, r.db.WithContext(ctx).Where("is_deleted = false").Order("created_at ASC").Find(&items).Error
}

func (r *catalogRepo) ListTextFonts(ctx context.Context) ([]model.TextFont, error) {
	var items []model.TextFont
	return items, r.db.WithContext(ctx).Where("is_deleted = false").Order("created_at ASC").Find(&items).Error
}

func (r *catalogRepo) GetBackground(ctx context.Context, id uuid.UUID) (*model.Background, error) {
	var item model.Background
	return &item, r.db.WithContext(ctx).Where("id = ? AND is_deleted = false", id).First(&item).Error
}

func (r *catalogRepo) GetTrack(ctx context.Context, id uuid.UUID) (*model.Track, error) {
	var item model.Track
	return &item, r.db.WithContext(ctx).Where("id = ? AND is_deleted = false", id).First(&item).Error
}

func (r *catalogRepo) GetClockFont(ctx context.Context, id uuid.UUID) (*model.ClockFontStyle, error) {
	var item model.ClockFontStyle
	return &item, r.db.WithContext(ctx).Where("id = ? AND is_deleted = false", id).First(&item).Error
}

func (r *catalogRepo) GetTextFont(ctx context.Context, id uuid.UUID) (*model.TextFont, error) {
	var item model.TextFont
	return &item, r.db.WithContext(ctx).Where("id = ? AND is_deleted = false", id).First(&item).Error
}

func (r *catalogRepo) FindClockFontByName(ctx context.Context, name string) (*model.ClockFontStyle, error) {
	var item model.ClockFontStyle
	return &item, r.db.WithContext(ctx).Where("name = ? AND is_deleted = false", name).First(&item).Error
}

func (r *catalogRepo) FindTextFontByName(ctx context.Context, name string) (*model.TextFont, error) {
	var item model.TextFont
	return &item, r.db.WithContext(ctx).Where("name = ? AND is_deleted = false", name).First(&item).Error
}

// FindOrCreateTag is an idempotent upsert keyed by the tag's natural identity
// (its name); on conflict the existing row is returned rather than an error.
func (r *catalogRepo) FindOrCreateTag(ctx context.Context, name string) (*model.Tag, error) {
	tag := model.Tag{Name: name}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&tag).Error
	if err != nil {
		return nil, err
	}
	// DoNothing skips returning the existing row; fetch it by name.
	if tag.ID == uuid.Nil {
		if err := r.db.WithContext(ctx).Where("name = ?", name).First(&tag).Error; err != nil {
			return nil, err
		}
	}
	return &tag, nil
}
