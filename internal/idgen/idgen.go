// Package idgen issues opaque identifiers for events and queue messages.
// NewFunc can be replaced in tests to get deterministic IDs.
package idgen

import "github.com/google/uuid"

var NewFunc = func() string { return uuid.New().String() }

// New returns a new identifier.
func New() string { return NewFunc() }
