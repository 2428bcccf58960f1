package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoneLeavesEverySlotEmpty(t *testing.T) {
	bodies := Generate(None, 10, 0, 67)
	assert.Len(t, bodies, 10)
	for _, b := range bodies {
		assert.Nil(t, b)
	}
}

func TestSlowParticlesFillsEverySlot(t *testing.T) {
	bodies := Generate(SlowParticles, 50, 0, 67)
	assert.Len(t, bodies, 50)
	for _, b := range bodies {
		assert.NotNil(t, b)
		assert.Greater(t, b.Mass(), 0.0)
		assert.LessOrEqual(t, b.Velocity().Length(), 5.0*3)
	}
}

func TestFastParticlesHaveHigherVelocityCeiling(t *testing.T) {
	bodies := Generate(FastParticles, 50, 0, 67)
	for _, b := range bodies {
		assert.NotNil(t, b)
		assert.LessOrEqual(t, b.Velocity().X(), 5e3)
		assert.GreaterOrEqual(t, b.Velocity().X(), -5e3)
	}
}

func TestMassiveBodyPrimaryIsAtOrigin(t *testing.T) {
	bodies := Generate(MassiveBody, 20, 0, 67)
	assert.NotNil(t, bodies[0])
	assert.Equal(t, 1e10, bodies[0].Mass())
	assert.Equal(t, 0.0, bodies[0].Position().X())
	assert.Equal(t, 0.0, bodies[0].Position().Y())
	assert.Equal(t, 0.0, bodies[0].Position().Z())
	for i, b := range bodies {
		assert.NotNilf(t, b, "slot %d should be populated", i)
	}
}

func TestMassiveBodySingleSlotIsJustThePrimary(t *testing.T) {
	bodies := Generate(MassiveBody, 1, 0, 67)
	assert.NotNil(t, bodies[0])
	assert.Equal(t, 1e10, bodies[0].Mass())
}

func TestOrbitalSystemHasCentralMass(t *testing.T) {
	bodies := Generate(OrbitalSystem, 30, 0, 67)
	assert.NotNil(t, bodies[0])
	assert.Equal(t, 1e10, bodies[0].Mass())
	for _, b := range bodies[1:] {
		assert.NotNil(t, b)
	}
}

func TestBinarySystemHasTwoMassiveBodies(t *testing.T) {
	bodies := Generate(BinarySystem, 30, 0, 67)
	assert.NotNil(t, bodies[0])
	assert.NotNil(t, bodies[1])
	assert.GreaterOrEqual(t, bodies[0].Mass(), 1e9)
	assert.GreaterOrEqual(t, bodies[1].Mass(), 1e9)
	for _, b := range bodies[2:] {
		assert.NotNil(t, b)
	}
}

func TestPlanetarySystemHasCentralStarAndFillsSlots(t *testing.T) {
	bodies := Generate(PlanetarySystem, 200, 0, 67)
	assert.NotNil(t, bodies[0])
	assert.Equal(t, 1e10, bodies[0].Mass())
	filled := 0
	for _, b := range bodies {
		if b != nil {
			filled++
		}
	}
	assert.Equal(t, 200, filled)
}

func TestDistributionTestBuildsCenteredLattice(t *testing.T) {
	bodies := Generate(DistributionTest, 27, 0, 67) // 3x3x3
	for _, b := range bodies {
		assert.NotNil(t, b)
		assert.Equal(t, 5e6, b.Mass())
	}

	// The lattice is centered on the origin, so summed positions cancel.
	sumX, sumY, sumZ := 0.0, 0.0, 0.0
	for _, b := range bodies {
		sumX += b.Position().X()
		sumY += b.Position().Y()
		sumZ += b.Position().Z()
	}
	assert.InDelta(t, 0.0, sumX, 1e-6)
	assert.InDelta(t, 0.0, sumY, 1e-6)
	assert.InDelta(t, 0.0, sumZ, 1e-6)
}

func TestSystemTypeString(t *testing.T) {
	assert.Equal(t, "None", None.String())
	assert.Equal(t, "PlanetarySystem", PlanetarySystem.String())
	assert.Equal(t, "Unknown", SystemType(999).String())
}
