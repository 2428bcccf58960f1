// Package body implements the per-particle state and integrator described
// in §3 (Data Model) and §4.3 (Body — integrator) of the simulation design:
// position, velocity, a pending acceleration accumulator reset every tick,
// mass, and an optional bounded history ring used for motion trails.
package body

import (
	"math"

	"github.com/alexanderi96/go-nbody-sim/core/ring"
	"github.com/alexanderi96/go-nbody-sim/core/vector"
	"github.com/google/uuid"
)

// Body is a point mass. Every Body is owned by exactly one slot in a
// world's body vector (§3); the zero value is not valid — construct with
// New.
type Body struct {
	id    uuid.UUID
	pos   vector.Vector3
	vel   vector.Vector3
	acc   vector.Vector3
	mass  float64
	trail *ring.Buffer[vector.Vector3]
}

// New creates a Body at pos with velocity vel and the given mass. Mass must
// be positive; trailLength is the capacity of the optional motion-trail ring
// (0 disables trails).
func New(pos, vel vector.Vector3, mass float64, trailLength int) *Body {
	if mass <= 0 {
		panic("body: mass must be positive")
	}
	return &Body{
		id:    uuid.New(),
		pos:   pos,
		vel:   vel,
		mass:  mass,
		trail: ring.NewBuffer[vector.Vector3](trailLength),
	}
}

func (b *Body) ID() uuid.UUID                { return b.id }
func (b *Body) Position() vector.Vector3     { return b.pos }
func (b *Body) Velocity() vector.Vector3     { return b.vel }
func (b *Body) Acceleration() vector.Vector3 { return b.acc }
func (b *Body) Mass() float64                { return b.mass }

func (b *Body) SetPosition(p vector.Vector3) { b.pos = p }
func (b *Body) SetVelocity(v vector.Vector3) { b.vel = v }
func (b *Body) SetMass(m float64) {
	if m <= 0 {
		panic("body: mass must be positive")
	}
	b.mass = m
}

// AddAcceleration accumulates into the pending acceleration. Only one
// goroutine may call this for a given Body within a tick (the parallel
// harness in engine/parallel partitions bodies by index so that holds).
func (b *Body) AddAcceleration(a vector.Vector3) {
	b.acc = b.acc.Add(a)
}

// ResetAcceleration zeros the pending acceleration without touching position
// or velocity. Used by §7's transient-anomaly quarantine policy.
func (b *Body) ResetAcceleration() {
	b.acc = vector.Zero()
}

// Radius is a derived, read-only visual size: R(m) = 10·(3m/4π)^(1/3) + 10.
// See SPEC_FULL.md §1 resolution 3 for why the "+10" variant (not "+1") was
// kept.
func (b *Body) Radius() float64 {
	return 10.0*math.Cbrt(3.0*b.mass/(4.0*math.Pi)) + 10.0
}

// Trail returns the motion-trail ring (nil-safe: callers may always iterate
// it with Each, even when trails are disabled and it holds zero entries).
func (b *Body) Trail() *ring.Buffer[vector.Vector3] {
	return b.trail
}

// Update advances the body by one tick under the speed ceiling c, following
// the ordered steps of §4.3:
//  1. record the current position into the trail, if enabled;
//  2. hard-clamp |v| to c;
//  3. integrate v against the pending acceleration — plain addition when
//     starting from rest, otherwise a relativistic velocity-composition
//     step — then clamp the result to c again so |v| never crosses c;
//  4. advance position by the new velocity (one tick, no sub-stepping);
//  5. reset the pending acceleration.
//
// Non-finite results (NaN/±Inf) are treated as a transient computation
// anomaly per §7: the body's acceleration is zeroed and position/velocity
// are left untouched for this tick, rather than propagating garbage state.
func (b *Body) Update(c float64) (quarantined bool) {
	b.trail.Push(b.pos)

	v := b.vel
	speed := v.Length()
	if speed > c {
		v = v.Scale(c / speed)
		speed = c
	}

	a := b.acc
	var newVel vector.Vector3
	if speed == 0 {
		newVel = v.Add(a)
	} else {
		aPar := vector.Projection(a, v)
		aPerp := a.Sub(aPar)
		alpha := math.Sqrt(math.Max(0, 1-(speed/c)*(speed/c)))
		denom := 1 + v.Dot(a)/(c*c)
		newVel = v.Add(aPar).Add(aPerp.Scale(alpha)).Div(denom)
	}
	if s := newVel.Length(); s > c {
		newVel = newVel.Scale(c / s)
	}

	newPos := b.pos.Add(newVel)

	if !newVel.IsFinite() || !newPos.IsFinite() {
		b.acc = vector.Zero()
		return true
	}

	b.vel = newVel
	b.pos = newPos
	b.acc = vector.Zero()
	return false
}

// Rotate rigidly rotates the body's position, velocity and acceleration
// about the line through base in direction axis by angle radians (§4.3).
// Velocity and acceleration are directions, not points in space, so per the
// donor's documented contract they are rotated by translating to the base
// frame, rotating, and translating back — mathematically a no-op on a pure
// direction under a linear rotation, but the translate/rotate/translate
// shape is kept because it is the contract callers depend on. Trail points,
// if any, are rotated as positions.
func (b *Body) Rotate(base, axis vector.Vector3, angle float64) {
	b.pos = vector.Rotate(b.pos, base, axis, angle)
	b.vel = vector.Rotate(b.vel.Add(base), base, axis, angle).Sub(base)
	b.acc = vector.Rotate(b.acc.Add(base), base, axis, angle).Sub(base)
	b.trail.Transform(func(p vector.Vector3) vector.Vector3 {
		return vector.Rotate(p, base, axis, angle)
	})
}
