package repository

import "errors"

// Sentinel errors shared by all repository implementations. Services translate
// these into the API error taxonomy with entity-specific messages.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)
