package model

import (
	"time"

	"github.com/google/uuid"
)

// Space is the central aggregate. Catalog references are nullable but, when
// set, must point at rows that existed non-deleted at write time. An active
// space always has at least one SpaceTag row.
type Space struct {
	ID                 uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OwnerID            uuid.UUID  `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name               string     `gorm:"type:varchar(255);not null" json:"name"`
	Description        *string    `gorm:"type:text" json:"description"`
	Mood               string     `gorm:"type:varchar(64);not null" json:"mood"`
	PersonalityEssence *string    `gorm:"type:text" json:"personality_essence"`
	BackgroundID       *uuid.UUID `gorm:"type:uuid;index" json:"background_id"`
	ClockFontID        *uuid.UUID `gorm:"type:uuid" json:"clock_font_id"`
	TextFontID         *uuid.UUID `gorm:"type:uuid" json:"text_font_id"`
	DurationSec        int        `gorm:"not null;default:0" json:"duration_sec"`
	IsDeleted          bool       `gorm:"not null;default:false;index" json:"is_deleted"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Space <-> User
	Owner *User `gorm:"foreignKey:OwnerID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	// Space <-> catalog references
	Background *Background     `gorm:"foreignKey:BackgroundID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"background,omitempty"`
	ClockFont  *ClockFontStyle `gorm:"foreignKey:ClockFontID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"clock_font,omitempty"`
	TextFont   *TextFont       `gorm:"foreignKey:TextFontID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"text_font,omitempty"`

	// Space <-> SpaceTag / Playlist / Note / WidgetPosition
	SpaceTags []SpaceTag       `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"space_tags,omitempty"`
	Playlists []Playlist       `gorm:"constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"playlists,omitempty"`
	Notes     []Note           `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"notes,omitempty"`
	Widgets   []WidgetPosition `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"widgets,omitempty"`

	// Space <-> AiGeneratedContent (one audit row per space)
	GeneratedContent *AiGeneratedContent `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"generated_content,omitempty"`
}

func (Space) TableName() string { return "spaces" }
