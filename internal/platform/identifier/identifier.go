// Package identifier supplies the unique-id generators injected into the
// entity stores, replacing timestamp-derived ids that collide under rapid
// sequential creates.
package identifier

import (
	"strconv"

	"github.com/google/uuid"
)

// Generator produces a unique identifier per call.
type Generator func() string

// NewUUID returns a generator backed by random UUIDs.
func NewUUID() Generator {
	return uuid.NewString
}

// NewSequence returns a deterministic counting generator starting at start.
// Intended for tests.
func NewSequence(start int) Generator {
	next := start
	return func() string {
		id := strconv.Itoa(next)
		next++
		return id
	}
}
