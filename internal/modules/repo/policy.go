package repo

// Relation names the space-owned relations touched by a space delete.
type Relation string

const (
	RelationSpaceTag       Relation = "space_tags"
	RelationWidgetPosition Relation = "widget_positions"
	RelationPlaylist       Relation = "playlists"
	RelationPlaylistTrack  Relation = "playlist_tracks"
	RelationTrack          Relation = "tracks"
	RelationNote           Relation = "notes"
)

// DeletePolicy is what happens to a relation when its space is soft-deleted.
type DeletePolicy string

const (
	// PolicyCascadeSoftDelete marks the relation's rows is_deleted.
	PolicyCascadeSoftDelete DeletePolicy = "cascade-soft-delete"
	// PolicyDetach nulls the space pointer and keeps the row alive.
	PolicyDetach DeletePolicy = "detach"
	// PolicyUntouched leaves the rows exactly as they are.
	PolicyUntouched DeletePolicy = "untouched"
)

// deletePolicies is the single place the cascade behavior is defined.
// SoftDelete walks this table instead of encoding the rules call by call.
var deletePolicies = map[Relation]DeletePolicy{
	RelationSpaceTag:       PolicyCascadeSoftDelete,
	RelationWidgetPosition: PolicyCascadeSoftDelete,
	RelationPlaylist:       PolicyDetach,
	RelationPlaylistTrack:  PolicyUntouched,
	RelationTrack:          PolicyUntouched,
	RelationNote:           PolicyUntouched,
}

// PolicyFor exposes the table for tests and auditing.
func PolicyFor(r Relation) (DeletePolicy, bool) {
	p, ok := deletePolicies[r]
	return p, ok
}
