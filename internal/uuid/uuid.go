// Package uuid names actions that arrive without an id
package uuid

//go:generate mockgen -destination=mocks/mock_generator.go -package=mocks -source=uuid.go

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator hands out action ids. Ids must be unique for as long as the
// ledger remembers claims.
type Generator interface {
	New() string
}

// GoogleUUIDGenerator returns random version 4 UUIDs
type GoogleUUIDGenerator struct{}

func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

func (g *GoogleUUIDGenerator) New() string {
	return uuid.NewString()
}

// SequentialGenerator hands out prefix-1, prefix-2, ... so seeded
// simulations produce the same action ids on every run
type SequentialGenerator struct {
	prefix string
	next   atomic.Int64
}

// NewSequentialGenerator creates a SequentialGenerator
func NewSequentialGenerator(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// New returns the next id
func (g *SequentialGenerator) New() string {
	return fmt.Sprintf("%s-%d", g.prefix, g.next.Add(1))
}
