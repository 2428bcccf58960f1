// Package generator implements the initial-condition presets of §4.7:
// particle clouds, central-mass orbits, binaries, and planetary systems
// with rings and moons. Generalized from the donor engine's
// simulation/celestial package (CreateStarSystem, CreateBinarySystem,
// CreateAsteroidField, GenerateMoon) down to the flat fixed-capacity body
// vector this design's World uses, instead of the donor's richer
// World/Material/ECS-handle model.
package generator

import (
	"math"

	"github.com/alexanderi96/go-nbody-sim/core/rng"
	"github.com/alexanderi96/go-nbody-sim/core/vector"
	"github.com/alexanderi96/go-nbody-sim/physics/body"
)

// SystemType enumerates the presets named in §4.7 and exposed to the UI
// layer via World.Generate (§6).
type SystemType int

const (
	None SystemType = iota
	SlowParticles
	FastParticles
	MassiveBody
	OrbitalSystem
	BinarySystem
	PlanetarySystem
	DistributionTest
)

func (s SystemType) String() string {
	switch s {
	case None:
		return "None"
	case SlowParticles:
		return "SlowParticles"
	case FastParticles:
		return "FastParticles"
	case MassiveBody:
		return "MassiveBody"
	case OrbitalSystem:
		return "OrbitalSystem"
	case BinarySystem:
		return "BinarySystem"
	case PlanetarySystem:
		return "PlanetarySystem"
	case DistributionTest:
		return "DistributionTest"
	}
	return "Unknown"
}

var up = vector.New(0, 1, 0)

// orbitalSpeed returns the circular-orbit speed of §4.7's reference formula,
// preserved verbatim (it reduces to the textbook √(G·M/d) only as m→0 — see
// SPEC_FULL.md §1 resolution 2; never mixed with the textbook form here).
func orbitalSpeed(g, primaryMass, orbiterMass, distance float64) float64 {
	return math.Sqrt(g * primaryMass * primaryMass / ((primaryMass + orbiterMass) * distance))
}

// orbitalVelocity returns the circular-orbit velocity vector for a body at
// relative position r from its primary, with the direction
// unit(cross(r, ŷ)) that §4.7 specifies.
func orbitalVelocity(speed float64, r vector.Vector3) vector.Vector3 {
	dir := r.Cross(up).Unit()
	return dir.Scale(speed)
}

// Generate builds a fresh body slice of length capacity (nullable entries
// where the preset uses fewer slots than the allocation). trailLength and g
// parameterize the constructed bodies and orbital mechanics respectively.
func Generate(kind SystemType, capacity, trailLength int, g float64) []*body.Body {
	bodies := make([]*body.Body, capacity)
	switch kind {
	case None:
		// all slots remain nil
	case SlowParticles:
		fillParticleCloud(bodies, trailLength, 5)
	case FastParticles:
		fillParticleCloud(bodies, trailLength, 5e3)
	case MassiveBody:
		fillMassiveBody(bodies, trailLength, g)
	case OrbitalSystem:
		fillOrbitalSystem(bodies, trailLength, g)
	case BinarySystem:
		fillBinarySystem(bodies, trailLength, g)
	case PlanetarySystem:
		fillPlanetarySystem(bodies, trailLength, g)
	case DistributionTest:
		fillDistributionTest(bodies, trailLength)
	}
	return bodies
}

// fillParticleCloud implements the SlowParticles/FastParticles presets: a
// disk of independent particles with uniform random position, mass, and
// velocity of the given half-range.
func fillParticleCloud(bodies []*body.Body, trailLength int, velocityHalfRange float64) {
	for i := range bodies {
		d := rng.Double(1e6)
		theta := rng.Double(2 * math.Pi)
		y := rng.DoubleRange(-2e5, 2e5)
		pos := vector.New(math.Cos(theta)*d, y, math.Sin(theta)*d)
		mass := rng.DoubleRange(3e4, 1e6+3e4)
		vel := rng.Vector(velocityHalfRange)
		bodies[i] = body.New(pos, vel, mass, trailLength)
	}
}

// fillMassiveBody implements the MassiveBody preset: a primary at the
// origin, a secondary orbiting it, a disk of bodies orbiting the secondary
// with small inclinations, then the whole disk (secondary included) tilted
// rigidly by π/10 about the axis (1,1,1) through the origin.
func fillMassiveBody(bodies []*body.Body, trailLength int, g float64) {
	if len(bodies) == 0 {
		return
	}
	origin := vector.Zero()
	primaryMass := 1e10
	bodies[0] = body.New(origin, vector.Zero(), primaryMass, trailLength)
	if len(bodies) == 1 {
		return
	}

	secondaryMass := rng.DoubleRange(1e8, 1e9)
	secondaryDistance := rng.DoubleRange(500, 2000)
	secondaryAngle := rng.Double(2 * math.Pi)
	secondaryPos := vector.New(math.Cos(secondaryAngle)*secondaryDistance, 0, math.Sin(secondaryAngle)*secondaryDistance)
	secondarySpeed := orbitalSpeed(g, primaryMass, secondaryMass, secondaryDistance)
	secondaryVel := orbitalVelocity(secondarySpeed, secondaryPos)
	bodies[1] = body.New(secondaryPos, secondaryVel, secondaryMass, trailLength)

	for i := 2; i < len(bodies); i++ {
		distance := rng.DoubleRange(50, 500)
		angle := rng.Double(2 * math.Pi)
		inclination := rng.DoubleRange(-20, 20)
		relPos := vector.New(math.Cos(angle)*distance, inclination, math.Sin(angle)*distance)
		mass := rng.DoubleRange(3e4, 1e6+3e4)
		speed := orbitalSpeed(g, secondaryMass, mass, distance)
		vel := secondaryVel.Add(orbitalVelocity(speed, relPos))
		bodies[i] = body.New(secondaryPos.Add(relPos), vel, mass, trailLength)
	}

	tiltAxis := vector.New(1, 1, 1)
	for _, b := range bodies {
		if b != nil {
			b.Rotate(origin, tiltAxis, math.Pi/10)
		}
	}
}

// fillOrbitalSystem implements the OrbitalSystem preset: a central mass at
// the origin with the remaining bodies as circular orbiters in a thick
// disk.
func fillOrbitalSystem(bodies []*body.Body, trailLength int, g float64) {
	if len(bodies) == 0 {
		return
	}
	primaryMass := 1e10
	bodies[0] = body.New(vector.Zero(), vector.Zero(), primaryMass, trailLength)
	for i := 1; i < len(bodies); i++ {
		bodies[i] = circularOrbiter(vector.Zero(), vector.Zero(), primaryMass, g, 200, 2e4, -5e3, 5e3, 3e4, 1e6+3e4, trailLength)
	}
}

// fillBinarySystem implements the BinarySystem preset: two massive bodies on
// a random line through the origin in the x-z plane, each on the circular
// orbit appropriate to the reduced two-body problem, surrounded by a disk
// corrected for the combined central mass.
func fillBinarySystem(bodies []*body.Body, trailLength int, g float64) {
	if len(bodies) < 2 {
		for i := range bodies {
			bodies[i] = body.New(vector.Zero(), vector.Zero(), rng.DoubleRange(1e9, 1e10), trailLength)
		}
		return
	}

	mass1 := rng.DoubleRange(1e9, 1e10)
	mass2 := rng.DoubleRange(1e9, 1e10)
	separation := rng.DoubleRange(1e3, 1e4)
	angle := rng.Double(2 * math.Pi)
	dir := vector.New(math.Cos(angle), 0, math.Sin(angle))

	pos1 := dir.Scale(-separation / 2)
	pos2 := dir.Scale(separation / 2)

	speed1 := orbitalSpeed(g, mass2, mass1, separation)
	speed2 := orbitalSpeed(g, mass1, mass2, separation)
	vel1 := orbitalVelocity(speed1, pos1.Negate())
	vel2 := orbitalVelocity(speed2, pos2.Negate())

	bodies[0] = body.New(pos1, vel1, mass1, trailLength)
	bodies[1] = body.New(pos2, vel2, mass2, trailLength)

	combinedMass := mass1 + mass2
	for i := 2; i < len(bodies); i++ {
		bodies[i] = circularOrbiter(vector.Zero(), vector.Zero(), combinedMass, g, separation*3, separation*20, -2e3, 2e3, 3e4, 1e6+3e4, trailLength)
	}
}

// fillPlanetarySystem implements the PlanetarySystem preset: a central mass,
// 5-14 planets on circular orbits, a ring of 100 coplanar particles around
// one planet, 0-3 moons on other planets, and an outer asteroid belt filling
// any remaining slots.
func fillPlanetarySystem(bodies []*body.Body, trailLength int, g float64) {
	if len(bodies) == 0 {
		return
	}
	origin := vector.Zero()
	primaryMass := 1e10
	bodies[0] = body.New(origin, vector.Zero(), primaryMass, trailLength)

	slot := 1
	planetCount := 5 + rng.Int(9) // 5..14
	type planet struct {
		pos  vector.Vector3
		vel  vector.Vector3
		mass float64
	}
	planets := make([]planet, 0, planetCount)

	ringPlanet := -1
	if planetCount > 0 {
		ringPlanet = rng.Int(planetCount - 1)
	}

	for p := 0; p < planetCount && slot < len(bodies); p++ {
		distance := 2e3 * math.Pow(1.4, float64(p))
		angle := rng.Double(2 * math.Pi)
		pos := vector.New(math.Cos(angle)*distance, 0, math.Sin(angle)*distance)
		mass := rng.DoubleRange(1e5, 1e7)
		speed := orbitalSpeed(g, primaryMass, mass, distance)
		vel := orbitalVelocity(speed, pos)
		bodies[slot] = body.New(pos, vel, mass, trailLength)
		planets = append(planets, planet{pos, vel, mass})
		slot++

		if p == ringPlanet {
			for r := 0; r < 100 && slot < len(bodies); r++ {
				ringRadius := rng.DoubleRange(30, 80)
				ringAngle := rng.Double(2 * math.Pi)
				relPos := vector.New(math.Cos(ringAngle)*ringRadius, 0, math.Sin(ringAngle)*ringRadius)
				ringMass := rng.DoubleRange(1, 100)
				speed := orbitalSpeed(g, mass, ringMass, ringRadius)
				relVel := orbitalVelocity(speed, relPos)
				bodies[slot] = body.New(pos.Add(relPos), vel.Add(relVel), ringMass, trailLength)
				slot++
			}
			continue
		}

		moonCount := rng.Int(3) // 0..3
		for m := 0; m < moonCount && slot < len(bodies); m++ {
			moonDistance := rng.DoubleRange(20, 60)
			moonAngle := rng.Double(2 * math.Pi)
			relPos := vector.New(math.Cos(moonAngle)*moonDistance, 0, math.Sin(moonAngle)*moonDistance)
			moonMass := rng.DoubleRange(1e2, 1e4)
			speed := orbitalSpeed(g, mass, moonMass, moonDistance)
			relVel := orbitalVelocity(speed, relPos)
			bodies[slot] = body.New(pos.Add(relPos), vel.Add(relVel), moonMass, trailLength)
			slot++
		}
	}

	// Remaining slots: an outer asteroid belt around the primary.
	for ; slot < len(bodies); slot++ {
		bodies[slot] = circularOrbiter(origin, vector.Zero(), primaryMass, g, 5e4, 8e4, -50, 50, 1, 1e3, trailLength)
	}
}

// fillDistributionTest implements the DistributionTest preset: a centered
// cubic lattice of side ⌊N^(1/3)⌋ at spacing 4e4, each body mass 5e6.
func fillDistributionTest(bodies []*body.Body, trailLength int) {
	n := len(bodies)
	if n == 0 {
		return
	}
	side := int(math.Cbrt(float64(n)))
	if side < 1 {
		side = 1
	}
	const spacing = 4e4
	half := float64(side-1) / 2

	slot := 0
	for x := 0; x < side && slot < n; x++ {
		for y := 0; y < side && slot < n; y++ {
			for z := 0; z < side && slot < n; z++ {
				pos := vector.New(
					(float64(x)-half)*spacing,
					(float64(y)-half)*spacing,
					(float64(z)-half)*spacing,
				)
				bodies[slot] = body.New(pos, vector.Zero(), 5e6, trailLength)
				slot++
			}
		}
	}
}

// circularOrbiter builds one body on a circular orbit of random distance in
// [minDist,maxDist) and random inclination in [minY,maxY) around a primary
// of the given mass, with mass sampled in [minMass,maxMass).
func circularOrbiter(center, centerVel vector.Vector3, primaryMass, g, minDist, maxDist, minY, maxY, minMass, maxMass float64, trailLength int) *body.Body {
	distance := rng.DoubleRange(minDist, maxDist)
	angle := rng.Double(2 * math.Pi)
	y := rng.DoubleRange(minY, maxY)
	relPos := vector.New(math.Cos(angle)*distance, y, math.Sin(angle)*distance)
	mass := rng.DoubleRange(minMass, maxMass)
	speed := orbitalSpeed(g, primaryMass, mass, distance)
	vel := centerVel.Add(orbitalVelocity(speed, relPos))
	return body.New(center.Add(relPos), vel, mass, trailLength)
}
