// Package rng provides a seeded dice.Roller and helpers that turn die
// rolls into picks and fractions. Unseeded play uses dice.DefaultRoller.
package rng

import (
	"math/rand/v2"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/questline/internal/errors"
)

// fractionSides is the die used to draw a uniform fraction
const fractionSides = 1_000_000

// SeededRoller is a reproducible roller for simulations and tests
type SeededRoller struct {
	mu  sync.Mutex
	src *rand.Rand
}

// NewSeeded returns a roller whose sequence is fixed by seed
func NewSeeded(seed uint64) *SeededRoller {
	return &SeededRoller{src: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Roll rolls one die with the given number of sides
func (r *SeededRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive: %d", size)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.IntN(size) + 1, nil
}

// RollN rolls count dice with the given number of sides
func (r *SeededRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Index returns a uniform index in [0, n)
func Index(r dice.Roller, n int) (int, error) {
	if n <= 0 {
		return 0, errors.InvalidArgumentf("cannot pick from %d options", n)
	}
	if n == 1 {
		return 0, nil
	}
	v, err := r.Roll(n)
	if err != nil {
		return 0, err
	}
	return v - 1, nil
}

// Fraction returns a uniform value in [0, 1]
func Fraction(r dice.Roller) (float64, error) {
	v, err := r.Roll(fractionSides)
	if err != nil {
		return 0, err
	}
	return float64(v-1) / float64(fractionSides-1), nil
}

// Weighted picks an index with probability proportional to its weight
func Weighted(r dice.Roller, weights []int) (int, error) {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return 0, errors.InvalidArgument("weights must not all be zero")
	}
	v, err := r.Roll(total)
	if err != nil {
		return 0, err
	}
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if v <= w {
			return i, nil
		}
		v -= w
	}
	return len(weights) - 1, nil
}
