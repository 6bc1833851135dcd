package model

import (
	"time"

	"github.com/google/uuid"
)

// Note is freeform session text attached to a space, ordered by SortOrder.
type Note struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SpaceID   uuid.UUID `gorm:"type:uuid;not null;index" json:"space_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
	IsDeleted bool      `gorm:"not null;default:false;index" json:"is_deleted"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Note) TableName() string { return "notes" }
