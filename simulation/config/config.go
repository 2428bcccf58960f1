// Package config builds the simulation's tunable constants into an explicit
// value passed into a world handle, per §9's design note: "For a clean
// port, pass an explicit simulation handle into commands and observers;
// keep G and C as fields on that handle, not globals." Generalized from the
// donor engine's simulation/config.SimulationBuilder, trimmed to the knobs
// this design actually exposes (§6) and with the donor's JSON
// SaveToFile/LoadFromFile dropped — see SPEC_FULL.md §10.3 for why.
package config

import "github.com/alexanderi96/go-nbody-sim/core/constants"

// Config holds every tunable named in §4.4 and §6.
type Config struct {
	G            float64 // gravitational constant
	C            float64 // speed ceiling
	Capacity     int     // body allocation capacity (N)
	Theta        float64 // Barnes-Hut multipole acceptance threshold
	Epsilon      float64 // softening length
	MinimumWidth float64 // octree subdivision floor
	TrailLength  int     // motion-trail ring capacity (0 disables trails)
	Workers      int     // parallel harness worker count (0 = DefaultWorkers)
}

// Default returns the reference defaults documented in §4.4 and §6.
func Default() Config {
	return Config{
		G:            constants.DefaultG,
		C:            constants.DefaultC,
		Capacity:     constants.DefaultCapacity,
		Theta:        constants.Theta,
		Epsilon:      constants.Epsilon,
		MinimumWidth: constants.MinimumWidth,
		TrailLength:  constants.DefaultTrailLength,
	}
}

// Builder assembles a Config fluently, following the donor's
// SimulationBuilder idiom.
type Builder struct {
	cfg Config
}

// NewBuilder starts from Default().
func NewBuilder() *Builder {
	return &Builder{cfg: Default()}
}

func (b *Builder) WithG(g float64) *Builder {
	b.cfg.G = g
	return b
}

func (b *Builder) WithC(c float64) *Builder {
	b.cfg.C = c
	return b
}

func (b *Builder) WithCapacity(n int) *Builder {
	b.cfg.Capacity = n
	return b
}

func (b *Builder) WithTheta(theta float64) *Builder {
	b.cfg.Theta = theta
	return b
}

func (b *Builder) WithEpsilon(epsilon float64) *Builder {
	b.cfg.Epsilon = epsilon
	return b
}

func (b *Builder) WithMinimumWidth(w float64) *Builder {
	b.cfg.MinimumWidth = w
	return b
}

func (b *Builder) WithTrailLength(n int) *Builder {
	b.cfg.TrailLength = n
	return b
}

func (b *Builder) WithWorkers(n int) *Builder {
	b.cfg.Workers = n
	return b
}

// Build returns the assembled Config.
func (b *Builder) Build() Config {
	return b.cfg
}
