// Package vector provides a double-precision 3-D vector value type used
// throughout the simulation core.
package vector

import "math"

// Vector3 is an immutable 3-D vector. Every operation returns a new value;
// none mutate the receiver.
type Vector3 struct {
	x, y, z float64
}

// New creates a vector from its components.
func New(x, y, z float64) Vector3 {
	return Vector3{x, y, z}
}

// Zero is the additive identity.
func Zero() Vector3 {
	return Vector3{}
}

func (v Vector3) X() float64 { return v.x }
func (v Vector3) Y() float64 { return v.y }
func (v Vector3) Z() float64 { return v.z }

// Add returns v+other.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v.x + other.x, v.y + other.y, v.z + other.z}
}

// Sub returns v-other.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{v.x - other.x, v.y - other.y, v.z - other.z}
}

// Negate returns -v.
func (v Vector3) Negate() Vector3 {
	return Vector3{-v.x, -v.y, -v.z}
}

// Scale returns v*s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.x * s, v.y * s, v.z * s}
}

// Div returns v/s. Division by zero is the caller's problem (produces Inf/NaN
// like the underlying float64 division).
func (v Vector3) Div(s float64) Vector3 {
	return Vector3{v.x / s, v.y / s, v.z / s}
}

// Dot returns the scalar product v·other.
func (v Vector3) Dot(other Vector3) float64 {
	return v.x*other.x + v.y*other.y + v.z*other.z
}

// Cross returns v×other.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		v.y*other.z - v.z*other.y,
		v.z*other.x - v.x*other.z,
		v.x*other.y - v.y*other.x,
	}
}

// LengthSquared returns |v|².
func (v Vector3) LengthSquared() float64 {
	return v.Dot(v)
}

// Length returns |v|.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Unit returns v/|v|, or the zero vector if v is (numerically) zero.
func (v Vector3) Unit() Vector3 {
	length := v.Length()
	if length < 1e-12 {
		return Zero()
	}
	return v.Scale(1.0 / length)
}

// Projection returns the component of a lying along b: b·(a·b/|b|²).
// Returns the zero vector if b is (numerically) zero.
func Projection(a, b Vector3) Vector3 {
	denom := b.LengthSquared()
	if denom < 1e-24 {
		return Zero()
	}
	return b.Scale(a.Dot(b) / denom)
}

// Rejection returns the component of a orthogonal to b: a - Projection(a, b).
func Rejection(a, b Vector3) Vector3 {
	return a.Sub(Projection(a, b))
}

// Rotate rotates point p about the line through base in direction axis by
// angle radians (right-hand rule), using Rodrigues' rotation formula.
// A zero-length axis leaves p unchanged.
func Rotate(p, base, axis Vector3, angle float64) Vector3 {
	k := axis.Unit()
	if k == Zero() {
		return p
	}
	rel := p.Sub(base)
	cosT, sinT := math.Cos(angle), math.Sin(angle)
	rotated := rel.Scale(cosT).
		Add(k.Cross(rel).Scale(sinT)).
		Add(k.Scale(k.Dot(rel) * (1 - cosT)))
	return rotated.Add(base)
}

// DistanceSquared returns |v-other|².
func (v Vector3) DistanceSquared(other Vector3) float64 {
	return v.Sub(other).LengthSquared()
}

// Distance returns |v-other|.
func (v Vector3) Distance(other Vector3) float64 {
	return math.Sqrt(v.DistanceSquared(other))
}

// IsFinite reports whether every component is finite (not NaN or ±Inf).
func (v Vector3) IsFinite() bool {
	return !math.IsNaN(v.x) && !math.IsInf(v.x, 0) &&
		!math.IsNaN(v.y) && !math.IsInf(v.y, 0) &&
		!math.IsNaN(v.z) && !math.IsInf(v.z, 0)
}

// MaxAbsComponent returns max(|x|, |y|, |z|), used by World to size the
// octree's root cell.
func (v Vector3) MaxAbsComponent() float64 {
	return math.Max(math.Abs(v.x), math.Max(math.Abs(v.y), math.Abs(v.z)))
}
