// Package utils holds the small helpers shared by the catalogue, billing and
// HTTP layers: identifier generation and two-decimal money formatting.
//
// Go Learning Note — "pkg/" Directory Convention:
// pkg/ marks code other modules may import, while internal/ is private by
// compiler rule. Neither helper here knows about movies or customers, which
// is what lets them live outside internal/.
package utils

import (
	"github.com/google/uuid"
)

// GenerateID creates a new UUID v4 string for use as a movie, customer or
// request identifier.
//
// Go Learning Note — "github.com/google/uuid":
// This library generates RFC 4122 UUIDs. uuid.New() creates a v4 (random) UUID
// like "550e8400-e29b-41d4-a716-446655440000". Random IDs need no shared
// counter, so the catalogue and customer stores can mint them independently.
func GenerateID() string {
	return uuid.New().String()
}
