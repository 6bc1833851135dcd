package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/moodscape-io/moodscape/internal/modules/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateGraphInput is the fully resolved space graph handed to the assembler
// transaction. All references are validated by the service before this point.
type CreateGraphInput struct {
	Space        *model.Space
	TagIDs       []uuid.UUID
	TrackIDs     []uuid.UUID
	PlaylistName string
	Notes        []string
	Prompt       *string
	Snapshot     datatypes.JSONMap
	Mood         *string
}

// Patch carries the already-validated write set for a partial update.
// Nil collection fields mean "leave untouched"; non-nil means replace-all.
type Patch struct {
	Columns         map[string]any
	ReplaceTagIDs   []uuid.UUID
	AttachPlaylists []uuid.UUID
	DetachPlaylists []uuid.UUID
	ReplaceWidgets  []model.WidgetPosition
}

func (p *Patch) Empty() bool {
	return len(p.Columns) == 0 &&
		p.ReplaceTagIDs == nil &&
		len(p.AttachPlaylists) == 0 &&
		len(p.DetachPlaylists) == 0 &&
		p.ReplaceWidgets == nil
}

type SpaceRepo interface {
	CreateGraph(ctx context.Context, in *CreateGraphInput) error
	Get(ctx context.Context, spaceID uuid.UUID) (*model.Space, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, afterCreatedAt time.Time, afterID uuid.UUID, limit int, timeDesc bool) ([]model.Space, error)
	ApplyPatch(ctx context.Context, spaceID uuid.UUID, p *Patch) error
	SoftDelete(ctx context.Context, spaceID uuid.UUID) error
	UpdateDuration(ctx context.Context, spaceID uuid.UUID, seconds int) error
	GetPlaylist(ctx context.Context, playlistID uuid.UUID) (*model.Playlist, error)
	ListNotes(ctx context.Context, spaceID uuid.UUID) ([]model.Note, error)
}

type spaceRepo struct{ db *gorm.DB }

func NewSpaceRepo(db *gorm.DB) SpaceRepo {
	return &spaceRepo{db: db}
}

// CreateGraph persists the whole aggregate in one transaction: space row,
// tag joins, optional playlist with ordered tracks, notes in caller order,
// and the single audit record. Any failure rolls back everything.
func (r *spaceRepo) CreateGraph(ctx context.Context, in *CreateGraphInput) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(in.Space).Error; err != nil {
			return err
		}

		for _, tagID := range in.TagIDs {
			st := model.SpaceTag{SpaceID: in.Space.ID, TagID: tagID}
			if err := tx.Create(&st).Error; err != nil {
				return err
			}
		}

		if len(in.TrackIDs) > 0 {
			name := in.PlaylistName
			if name == "" {
				name = in.Space.Name
			}
			pl := model.Playlist{SpaceID: &in.Space.ID, Name: name}
			if err := tx.Create(&pl).Error; err != nil {
				return err
			}
			for i, trackID := range in.TrackIDs {
				pt := model.PlaylistTrack{PlaylistID: pl.ID, TrackID: trackID, SortOrder: i}
				if err := tx.Create(&pt).Error; err != nil {
					return err
				}
			}
		}

		for i, content := range in.Notes {
			n := model.Note{SpaceID: in.Space.ID, Content: content, SortOrder: i}
			if err := tx.Create(&n).Error; err != nil {
				return err
			}
		}

		audit := model.AiGeneratedContent{
			SpaceID:  in.Space.ID,
			Prompt:   in.Prompt,
			Snapshot: in.Snapshot,
			Mood:     in.Mood,
		}
		return tx.Create(&audit).Error
	})
}

// Get loads the active space with its live graph. Soft-deleted joins are
// filtered out of the preloads; a deleted space is a record-not-found.
func (r *spaceRepo) Get(ctx context.Context, spaceID uuid.UUID) (*model.Space, error) {
	var s model.Space
	err := r.db.WithContext(ctx).
		Preload("SpaceTags", "is_deleted = false").
		Preload("SpaceTags.Tag").
		Preload("Playlists", "is_deleted = false").
		Preload("Playlists.Tracks", "is_deleted = false", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Playlists.Tracks.Track").
		Preload("Notes", "is_deleted = false", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Widgets", "is_deleted = false").
		Preload("Background").
		Preload("ClockFont").
		Preload("TextFont").
		Preload("GeneratedContent").
		Where("id = ? AND is_deleted = false", spaceID).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *spaceRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, afterCreatedAt time.Time, afterID uuid.UUID, limit int, timeDesc bool) ([]model.Space, error) {
	q := r.db.WithContext(ctx).Where("owner_id = ? AND is_deleted = false", ownerID)

	// (created_at, id) composite cursor; empty cursor starts from the edge.
	if !afterCreatedAt.IsZero() && afterID != uuid.Nil {
		comparisonOp := ">"
		if timeDesc {
			comparisonOp = "<"
		}
		q = q.Where(
			"(created_at "+comparisonOp+" ?) OR (created_at = ? AND id "+comparisonOp+" ?)",
			afterCreatedAt, afterCreatedAt, afterID,
		)
	}

	orderBy := "created_at ASC, id ASC"
	if timeDesc {
		orderBy = "created_at DESC, id DESC"
	}

	var items []model.Space
	return items, q.Order(orderBy).Limit(limit).Find(&items).Error
}

// ApplyPatch runs every present section in one transaction so readers only
// ever see the pre-patch or post-patch graph.
func (r *spaceRepo) ApplyPatch(ctx context.Context, spaceID uuid.UUID, p *Patch) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var s model.Space
		if err := tx.Where("id = ? AND is_deleted = false", spaceID).First(&s).Error; err != nil {
			return err
		}

		if len(p.Columns) > 0 {
			if err := tx.Model(&s).Updates(p.Columns).Error; err != nil {
				return err
			}
		}

		if p.ReplaceTagIDs != nil {
			// Replace, not merge: prior joins are discarded wholesale.
			if err := tx.Model(&model.SpaceTag{}).
				Where("space_id = ? AND is_deleted = false", spaceID).
				Update("is_deleted", true).Error; err != nil {
				return err
			}
			for _, tagID := range p.ReplaceTagIDs {
				st := model.SpaceTag{SpaceID: spaceID, TagID: tagID}
				// A pair soft-deleted by an earlier replace may still hold
				// the unique index slot; revive it instead of conflicting.
				if err := tx.Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "space_id"}, {Name: "tag_id"}},
					DoUpdates: clause.Assignments(map[string]any{"is_deleted": false}),
				}).Create(&st).Error; err != nil {
					return err
				}
			}
		}

		if len(p.AttachPlaylists) > 0 {
			// Ownership move only: a foreign playlist is re-parented here,
			// its content is never touched.
			if err := tx.Model(&model.Playlist{}).
				Where("id IN ? AND is_deleted = false", p.AttachPlaylists).
				Update("space_id", spaceID).Error; err != nil {
				return err
			}
		}

		if len(p.DetachPlaylists) > 0 {
			if err := tx.Model(&model.Playlist{}).
				Where("id IN ? AND space_id = ?", p.DetachPlaylists, spaceID).
				Update("space_id", nil).Error; err != nil {
				return err
			}
		}

		if p.ReplaceWidgets != nil {
			if err := tx.Model(&model.WidgetPosition{}).
				Where("space_id = ? AND is_deleted = false", spaceID).
				Update("is_deleted", true).Error; err != nil {
				return err
			}
			for i := range p.ReplaceWidgets {
				w := p.ReplaceWidgets[i]
				w.SpaceID = spaceID
				if err := tx.Create(&w).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
}

// SoftDelete marks the space deleted and walks the per-relation policy
// table. Deleting an already-deleted space affects zero rows and reports
// record-not-found, so the cascade can never run twice.
func (r *spaceRepo) SoftDelete(ctx context.Context, spaceID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Space{}).
			Where("id = ? AND is_deleted = false", spaceID).
			Update("is_deleted", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		for relation, policy := range deletePolicies {
			if err := applyDeletePolicy(tx, spaceID, relation, policy); err != nil {
				return err
			}
		}
		return nil
	})
}

func applyDeletePolicy(tx *gorm.DB, spaceID uuid.UUID, relation Relation, policy DeletePolicy) error {
	switch policy {
	case PolicyCascadeSoftDelete:
		return tx.Table(string(relation)).
			Where("space_id = ? AND is_deleted = false", spaceID).
			Update("is_deleted", true).Error
	case PolicyDetach:
		return tx.Table(string(relation)).
			Where("space_id = ?", spaceID).
			Update("space_id", nil).Error
	case PolicyUntouched:
		return nil
	default:
		return nil
	}
}

func (r *spaceRepo) UpdateDuration(ctx context.Context, spaceID uuid.UUID, seconds int) error {
	res := r.db.WithContext(ctx).Model(&model.Space{}).
		Where("id = ? AND is_deleted = false", spaceID).
		Update("duration_sec", seconds)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *spaceRepo) GetPlaylist(ctx context.Context, playlistID uuid.UUID) (*model.Playlist, error) {
	var pl model.Playlist
	return &pl, r.db.WithContext(ctx).Where("id = ? AND is_deleted = false", playlistID).First(&pl).Error
}

func (r *spaceRepo) ListNotes(ctx context.Context, spaceID uuid.UUID) ([]model.Note, error) {
	var notes []model.Note
	return notes, r.db.WithContext(ctx).
		Where("space_id = ? AND is_deleted = false", spaceID).
		Order("sort_order ASC").
		Find(&notes).Error
}
