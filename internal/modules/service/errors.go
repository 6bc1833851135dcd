package service

import (
	"errors"
	"fmt"
)

var (
	// ErrSpaceNotFound covers unknown and already-soft-deleted spaces alike.
	ErrSpaceNotFound = errors.New("space not found")
	// ErrEmptyCatalog means the background catalog has no live rows; a space
	// cannot be assembled without one.
	ErrEmptyCatalog = errors.New("background catalog is empty")
	// ErrEmptyPatch rejects updates carrying no recognized section before
	// any storage is touched.
	ErrEmptyPatch = errors.New("update contains no recognized section")
	// ErrNoTags enforces the at-least-one-tag invariant.
	ErrNoTags = errors.New("space requires at least one tag")
)

// UnknownRefError reports a catalog reference that does not resolve to a
// live row. Ref is the offending id, or the font name when the caller
// referenced a font by name instead of id.
type UnknownRefError struct {
	Kind string
	Ref  string
}

func (e *UnknownRefError) Error() string {
	return fmt.Sprintf("unknown %s reference: %s", e.Kind, e.Ref)
}
