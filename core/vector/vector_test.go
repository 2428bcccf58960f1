package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddSub(t *testing.T) {
	a := New(1, 2, 3)
	b := New(4, -1, 2)
	assert.Equal(t, New(5, 1, 5), a.Add(b))
	assert.Equal(t, New(-3, 3, 1), a.Sub(b))
}

func TestDotCross(t *testing.T) {
	a := New(1, 0, 0)
	b := New(0, 1, 0)
	assert.Equal(t, 0.0, a.Dot(b))
	assert.Equal(t, New(0, 0, 1), a.Cross(b))
}

func TestLengthAndUnit(t *testing.T) {
	v := New(3, 4, 0)
	assert.Equal(t, 25.0, v.LengthSquared())
	assert.Equal(t, 5.0, v.Length())
	u := v.Unit()
	assert.InDelta(t, 1.0, u.Length(), 1e-12)
}

func TestUnitOfZeroIsZero(t *testing.T) {
	assert.Equal(t, Zero(), Zero().Unit())
}

func TestProjectionAndRejection(t *testing.T) {
	a := New(3, 4, 0)
	b := New(1, 0, 0)
	proj := Projection(a, b)
	rej := Rejection(a, b)
	assert.Equal(t, New(3, 0, 0), proj)
	assert.Equal(t, New(0, 4, 0), rej)
	assert.Equal(t, a, proj.Add(rej))
}

func TestProjectionOntoZeroIsZero(t *testing.T) {
	assert.Equal(t, Zero(), Projection(New(1, 2, 3), Zero()))
}

func TestRotateQuarterTurnAboutZ(t *testing.T) {
	p := New(1, 0, 0)
	rotated := Rotate(p, Zero(), New(0, 0, 1), math.Pi/2)
	assert.InDelta(t, 0.0, rotated.X(), 1e-9)
	assert.InDelta(t, 1.0, rotated.Y(), 1e-9)
	assert.InDelta(t, 0.0, rotated.Z(), 1e-9)
}

func TestRotateAboutZeroAxisIsNoOp(t *testing.T) {
	p := New(5, -2, 7)
	assert.Equal(t, p, Rotate(p, Zero(), Zero(), math.Pi/3))
}

func TestRotateAboutOffsetBase(t *testing.T) {
	base := New(1, 1, 0)
	p := New(2, 1, 0)
	rotated := Rotate(p, base, New(0, 0, 1), math.Pi/2)
	assert.InDelta(t, 1.0, rotated.X(), 1e-9)
	assert.InDelta(t, 2.0, rotated.Y(), 1e-9)
}

func TestDistance(t *testing.T) {
	a := New(0, 0, 0)
	b := New(3, 4, 0)
	assert.Equal(t, 5.0, a.Distance(b))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, New(1, 2, 3).IsFinite())
	assert.False(t, New(math.NaN(), 0, 0).IsFinite())
	assert.False(t, New(math.Inf(1), 0, 0).IsFinite())
}

func TestMaxAbsComponent(t *testing.T) {
	assert.Equal(t, 7.0, New(-7, 2, 3).MaxAbsComponent())
	assert.Equal(t, 0.0, Zero().MaxAbsComponent())
}
