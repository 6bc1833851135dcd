package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WidgetPosition is a full-replace collection: updating widgets soft-deletes
// every prior row for the space and inserts the new set.
type WidgetPosition struct {
	ID        uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SpaceID   uuid.UUID         `gorm:"type:uuid;not null;index" json:"space_id"`
	WidgetID  string            `gorm:"type:varchar(128);not null" json:"widget_id"`
	X         float64           `gorm:"not null;default:0" json:"x"`
	Y         float64           `gorm:"not null;default:0" json:"y"`
	Metadata  datatypes.JSONMap `gorm:"type:jsonb" swaggertype:"object" json:"metadata,omitempty"`
	IsDeleted bool              `gorm:"not null;default:false;index" json:"is_deleted"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WidgetPosition) TableName() string { return "widget_positions" }
