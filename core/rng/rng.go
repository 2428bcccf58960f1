// Package rng provides uniform scalar and vector sampling over a
// thread-shared source, following §4.2 of the simulation design: pure
// functions layered over a single shared generator so call sites read as
// "sample a double in this range" rather than juggling *rand.Rand values.
package rng

import (
	"math/rand/v2"
	"sync"

	"github.com/alexanderi96/go-nbody-sim/core/vector"
)

// Source is a uniform scalar source. *rand.Rand (math/rand/v2) satisfies
// this, as does any deterministic source seeded for tests.
type Source interface {
	Float64() float64
	IntN(n int) int
}

// current is the process-wide, not-required-to-be-reproducible source used by
// the default package-level helpers. It is safe for concurrent use: the
// system generators in simulation/generator are the only callers, and they
// run under the world's body lock, but math/rand/v2's top-level functions
// are independently goroutine-safe, so a mutex only needs to protect a
// custom deterministic Source swapped in by tests.
var (
	mu      sync.Mutex
	current Source = defaultSource{}
)

type defaultSource struct{}

func (defaultSource) Float64() float64 { return rand.Float64() }
func (defaultSource) IntN(n int) int   { return rand.IntN(n) }

// SetSource overrides the shared source, letting tests seed a deterministic
// generator. Passing nil restores the process-global default.
func SetSource(s Source) {
	mu.Lock()
	defer mu.Unlock()
	if s == nil {
		s = defaultSource{}
	}
	current = s
}

func source() Source {
	mu.Lock()
	defer mu.Unlock()
	return current
}

// Double samples uniformly in [0, max).
func Double(max float64) float64 {
	return source().Float64() * max
}

// DoubleRange samples uniformly in [lo, hi).
func DoubleRange(lo, hi float64) float64 {
	return lo + source().Float64()*(hi-lo)
}

// Int samples uniformly in [0, max] (inclusive upper bound, matching the
// donor convention of an inclusive die-roll-style range).
func Int(max int) int {
	if max <= 0 {
		return 0
	}
	return source().IntN(max + 1)
}

// Vector samples a vector whose components are independent uniforms in
// [-mag, +mag].
func Vector(mag float64) vector.Vector3 {
	return vector.New(
		DoubleRange(-mag, mag),
		DoubleRange(-mag, mag),
		DoubleRange(-mag, mag),
	)
}
