package model

import (
	"time"

	"github.com/google/uuid"
)

// Playlist is owned by at most one space. Deleting the owning space detaches
// the playlist (space_id set to NULL) instead of deleting it, so tracks and
// their historical memberships survive.
type Playlist struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SpaceID   *uuid.UUID `gorm:"type:uuid;index" json:"space_id"`
	Name      string     `gorm:"type:varchar(255);not null" json:"name"`
	IsDeleted bool       `gorm:"not null;default:false;index" json:"is_deleted"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Playlist <-> PlaylistTrack
	Tracks []PlaylistTrack `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"tracks,omitempty"`
}

func (Playlist) TableName() string { return "playlists" }

// PlaylistTrack is the ordered membership join, soft-deletable independently
// of the catalog track it references.
type PlaylistTrack struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PlaylistID uuid.UUID `gorm:"type:uuid;not null;index" json:"playlist_id"`
	TrackID    uuid.UUID `gorm:"type:uuid;not null;index" json:"track_id"`
	SortOrder  int       `gorm:"not null;default:0" json:"sort_order"`
	IsDeleted  bool      `gorm:"not null;default:false;index" json:"is_deleted"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// PlaylistTrack <-> Track
	Track *Track `gorm:"foreignKey:TrackID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"track,omitempty"`
}

func (PlaylistTrack) TableName() string { return "playlist_tracks" }
