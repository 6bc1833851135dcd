package model

import (
	"time"

	"github.com/google/uuid"
)

// Tag is globally unique by name and created lazily when a space references a
// name that does not exist yet. Deleting a space never deletes the tag itself.
type Tag struct {
	ID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name string    `gorm:"type:varchar(128);uniqueIndex;not null" json:"name"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Tag) TableName() string { return "tags" }

// SpaceTag joins spaces to tags and is soft-deleted together with its space.
type SpaceTag struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SpaceID   uuid.UUID `gorm:"type:uuid;not null;index:idx_space_tag,unique,priority:1" json:"space_id"`
	TagID     uuid.UUID `gorm:"type:uuid;not null;index:idx_space_tag,unique,priority:2" json:"tag_id"`
	IsDeleted bool      `gorm:"not null;default:false;index" json:"is_deleted"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// SpaceTag <-> Tag
	Tag *Tag `gorm:"foreignKey:TagID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"tag,omitempty"`
}

func (SpaceTag) TableName() string { return "space_tags" }
