package octree

import (
	"math/rand/v2"
	"testing"

	"github.com/alexanderi96/go-nbody-sim/core/vector"
	"github.com/alexanderi96/go-nbody-sim/physics/body"
	"github.com/stretchr/testify/assert"
)

func testParams() Params {
	return Params{G: 1, Theta: 0.5, Epsilon: 0, MinimumWidth: 1e-3}
}

func TestInsertSingleBodyAggregates(t *testing.T) {
	o := New(vector.Zero(), 1000, testParams())
	b := body.New(vector.New(10, 0, 0), vector.Zero(), 5, 0)
	o.Insert(b)

	assert.Equal(t, 1, o.Count())
	assert.Equal(t, 5.0, o.Mass())
	assert.Equal(t, vector.New(10, 0, 0), o.CenterOfMass())
}

func TestInsertAggregatesCenterOfMass(t *testing.T) {
	o := New(vector.Zero(), 1000, testParams())
	a := body.New(vector.New(-10, 0, 0), vector.Zero(), 1, 0)
	b := body.New(vector.New(10, 0, 0), vector.Zero(), 1, 0)
	o.Insert(a)
	o.Insert(b)

	assert.Equal(t, 2, o.Count())
	assert.Equal(t, 2.0, o.Mass())
	assert.InDelta(t, 0.0, o.CenterOfMass().X(), 1e-9)
}

func TestNoSelfAcceleration(t *testing.T) {
	o := New(vector.Zero(), 1000, testParams())
	a := body.New(vector.New(100, 0, 0), vector.Zero(), 1e6, 0)
	o.Insert(a)

	o.Accelerate(a)
	assert.Equal(t, vector.Zero(), a.Acceleration())
}

func TestDistinctBodyAtSameLeafStillAccelerates(t *testing.T) {
	o := New(vector.Zero(), 1000, testParams())
	a := body.New(vector.New(100, 0, 0), vector.Zero(), 1e6, 0)
	other := body.New(vector.New(100, 0.001, 0), vector.Zero(), 1, 0)
	o.Insert(a)

	o.Accelerate(other)
	assert.NotEqual(t, vector.Zero(), other.Acceleration())
}

func TestTwoBodiesAttractEachOtherSymmetrically(t *testing.T) {
	o := New(vector.Zero(), 1000, testParams())
	a := body.New(vector.New(-50, 0, 0), vector.Zero(), 10, 0)
	b := body.New(vector.New(50, 0, 0), vector.Zero(), 10, 0)
	o.Insert(a)
	o.Insert(b)

	o.Accelerate(a)
	o.Accelerate(b)

	assert.Greater(t, a.Acceleration().X(), 0.0)
	assert.Less(t, b.Acceleration().X(), 0.0)
	assert.InDelta(t, a.Acceleration().X(), -b.Acceleration().X(), 1e-9)
}

func TestFarClusterIsApproximatedByMultipole(t *testing.T) {
	params := testParams()
	o := New(vector.Zero(), 1000000, params)
	probe := body.New(vector.New(-100000, 0, 0), vector.Zero(), 1, 0)

	// A tight cluster far from probe should satisfy the multipole
	// acceptance criterion and be applied as one point mass.
	c1 := body.New(vector.New(100000, 1, 0), vector.Zero(), 10, 0)
	c2 := body.New(vector.New(100000, 3, 0), vector.Zero(), 10, 0)
	o.Insert(c1)
	o.Insert(c2)

	o.Accelerate(probe)
	assert.Greater(t, probe.Acceleration().X(), 0.0)
}

func TestEmptyTreeAppliesNoAcceleration(t *testing.T) {
	o := New(vector.Zero(), 1000, testParams())
	b := body.New(vector.New(1, 2, 3), vector.Zero(), 1, 0)
	o.Accelerate(b)
	assert.Equal(t, vector.Zero(), b.Acceleration())
}

func TestMassConservationAcrossRandomInserts(t *testing.T) {
	o := New(vector.Zero(), 2e6, testParams())
	src := rand.New(rand.NewPCG(1, 2))
	var total float64
	for i := 0; i < 200; i++ {
		pos := vector.New(
			src.Float64()*2e6-1e6,
			src.Float64()*2e6-1e6,
			src.Float64()*2e6-1e6,
		)
		mass := 1 + src.Float64()*1e4
		total += mass
		o.Insert(body.New(pos, vector.Zero(), mass, 0))
	}
	assert.InDelta(t, total, o.Mass(), total*1e-9)
}

func directAccelerate(probe *body.Body, bodies []*body.Body, g float64) vector.Vector3 {
	var acc vector.Vector3
	for _, b := range bodies {
		if b == probe {
			continue
		}
		d := b.Position().Sub(probe.Position())
		r := d.Length()
		if r == 0 {
			continue
		}
		k := g * b.Mass() / (r * r * r)
		acc = acc.Add(d.Scale(k))
	}
	return acc
}

func TestTreeAgreesWithDirectSumAsThetaApproachesZero(t *testing.T) {
	params := Params{G: 1, Theta: 1e-6, Epsilon: 0, MinimumWidth: 1e-3}
	o := New(vector.Zero(), 1e6, params)
	src := rand.New(rand.NewPCG(7, 9))
	var bodies []*body.Body
	for i := 0; i < 40; i++ {
		pos := vector.New(
			src.Float64()*4e5-2e5,
			src.Float64()*4e5-2e5,
			src.Float64()*4e5-2e5,
		)
		mass := 1e3 + src.Float64()*1e5
		bodies = append(bodies, body.New(pos, vector.Zero(), mass, 0))
	}
	for _, b := range bodies {
		o.Insert(b)
	}

	probe := bodies[0]
	o.Accelerate(probe)
	direct := directAccelerate(probe, bodies, params.G)

	assert.InDelta(t, direct.X(), probe.Acceleration().X(), 1e-6*direct.Length()+1e-6)
	assert.InDelta(t, direct.Y(), probe.Acceleration().Y(), 1e-6*direct.Length()+1e-6)
	assert.InDelta(t, direct.Z(), probe.Acceleration().Z(), 1e-6*direct.Length()+1e-6)
}

func TestSubdivisionHaltsBelowMinimumWidth(t *testing.T) {
	params := Params{G: 1, Theta: 0.5, Epsilon: 0, MinimumWidth: 100}
	o := New(vector.Zero(), 10, params)
	a := body.New(vector.New(1, 1, 1), vector.Zero(), 1, 0)
	b := body.New(vector.New(-1, -1, -1), vector.Zero(), 1, 0)
	o.Insert(a)
	o.Insert(b)

	for _, c := range o.children {
		assert.Nil(t, c)
	}
	assert.Equal(t, 2, o.Count())
}
