package form

import "github.com/google/uuid"

// NewID returns a fresh opaque component id. Ids are never reused.
func NewID() string {
	return uuid.NewString()
}

// ShortID returns an 8-character id fragment, used for generated field
// names. Collisions are not resolved beyond the randomness of the source.
func ShortID() string {
	return uuid.NewString()[:8]
}
