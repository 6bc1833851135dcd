package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Catalog rows are pre-seeded and read-mostly. Matching only ever considers
// rows with is_deleted = false; soft-deleted rows stay resolvable for spaces
// that already reference them.

type Background struct {
	ID             uuid.UUID                    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ImageKey       string                       `gorm:"type:text;not null" json:"image_key"`
	EmotionTags    datatypes.JSONSlice[string]  `gorm:"type:jsonb;not null;default:'[]'" swaggertype:"array,string" json:"emotion_tags"`
	DescriptorTags datatypes.JSONSlice[string]  `gorm:"type:jsonb;not null;default:'[]'" swaggertype:"array,string" json:"descriptor_tags"`
	IsDeleted      bool                         `gorm:"not null;default:false;index" json:"is_deleted"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Background) TableName() string { return "backgrounds" }

type Track struct {
	ID             uuid.UUID                    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name           string                       `gorm:"type:varchar(255);not null" json:"name"`
	MediaKey       string                       `gorm:"type:text;not null" json:"media_key"`
	EmotionTags    datatypes.JSONSlice[string]  `gorm:"type:jsonb;not null;default:'[]'" swaggertype:"array,string" json:"emotion_tags"`
	DescriptorTags datatypes.JSONSlice[string]  `gorm:"type:jsonb;not null;default:'[]'" swaggertype:"array,string" json:"descriptor_tags"`
	IsDeleted      bool                         `gorm:"not null;default:false;index" json:"is_deleted"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Track) TableName() string { return "tracks" }

type ClockFontStyle struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(128);uniqueIndex;not null" json:"name"`
	IsDeleted bool      `gorm:"not null;default:false;index" json:"is_deleted"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ClockFontStyle) TableName() string { return "clock_font_styles" }

type TextFont struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(128);uniqueIndex;not null" json:"name"`
	IsDeleted bool      `gorm:"not null;default:false;index" json:"is_deleted"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TextFont) TableName() string { return "text_fonts" }
