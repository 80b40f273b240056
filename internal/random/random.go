// Package random draws inclusive random integers.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/roach88/getkit/internal/errs"
)

// Generator is a thin wrapper around a math/rand/v2 PCG source.
//
// A Generator is not safe for concurrent use.
type Generator struct {
	r    *rand.Rand
	seed int64
}

// New creates a Generator seeded from crypto/rand.
func New() (*Generator, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return NewSeeded(seed), nil
}

// NewSeeded creates a deterministic Generator.
func NewSeeded(seed int64) *Generator {
	return &Generator{r: rand.New(rand.NewPCG(uint64(seed), 0)), seed: seed}
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Seed returns the seed the Generator was created with.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Int returns a uniformly distributed integer in [min, max].
func (g *Generator) Int(min, max int64) (int64, error) {
	if min > max {
		return 0, errs.Invalid("random", "min %d is greater than max %d", min, max)
	}
	span := uint64(max) - uint64(min) + 1
	if span == 0 {
		// [MinInt64, MaxInt64]: every uint64 maps to a distinct value.
		return int64(g.r.Uint64()), nil
	}
	return int64(uint64(min) + g.r.Uint64N(span)), nil
}

// IntUpTo returns a uniformly distributed integer in [0, max].
func (g *Generator) IntUpTo(max int64) (int64, error) {
	return g.Int(0, max)
}
