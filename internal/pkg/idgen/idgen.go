// Package idgen provides ID generation utilities
package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock/mock.go -package=idgenmock github.com/KirkDiggler/questline/internal/pkg/idgen Generator

// ID prefixes
const (
	PrefixSession   = "sess"
	PrefixCharacter = "char"
	PrefixBattle    = "battle"
	PrefixCard      = "card"
)

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// UUIDGenerator generates prefix_uuid identifiers
type UUIDGenerator struct {
	prefix string
}

// NewUUID creates a new UUID generator with optional prefix
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate creates a new UUID-based ID
func (g *UUIDGenerator) Generate() string {
	if g.prefix == "" {
		return uuid.NewString()
	}
	return g.prefix + "_" + uuid.NewString()
}

// SequentialGenerator generates predictable IDs for tests and simulations
type SequentialGenerator struct {
	prefix  string
	counter atomic.Uint64
}

// NewSequential creates a new sequential generator
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate returns prefix_1, prefix_2, ...
func (g *SequentialGenerator) Generate() string {
	n := g.counter.Add(1)
	if g.prefix == "" {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s_%d", g.prefix, n)
}
