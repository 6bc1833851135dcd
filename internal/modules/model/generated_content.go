package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AiGeneratedContent is the audit record written once per space. Prompt is
// NULL for manually created spaces; Snapshot holds every resolved field of
// the assembled configuration at creation time.
type AiGeneratedContent struct {
	ID       uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SpaceID  uuid.UUID         `gorm:"type:uuid;uniqueIndex;not null" json:"space_id"`
	Prompt   *string           `gorm:"type:text" json:"prompt"`
	Snapshot datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'" swaggertype:"object" json:"snapshot"`
	Mood     *string           `gorm:"type:varchar(64)" json:"mood"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AiGeneratedContent) TableName() string { return "ai_generated_contents" }
