// Package uuid provides a UUID-based article id generator.
package uuid

import (
	"github.com/fwojciec/readview"
	"github.com/google/uuid"
)

// Ensure Generator implements readview.IDGenerator at compile time.
var _ readview.IDGenerator = (*Generator)(nil)

// Generator produces random (version 4) UUIDs from crypto/rand.
// The legacy scheme used a weak base-36 random id; UUIDs make the
// collision probability negligible without a coordination point.
type Generator struct{}

// NewGenerator creates a new Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// NewID returns a new random UUID string.
func (g *Generator) NewID() string {
	return uuid.New().String()
}
