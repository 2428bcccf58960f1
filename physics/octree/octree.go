// Package octree implements the Barnes-Hut spatial index described in §4.4
// of the simulation design: a recursive axis-aligned cubical decomposition
// that approximates distant clusters of bodies by their aggregate mass and
// center of mass, reducing the pairwise O(N²) gravity sum to O(N log N).
//
// One Octree is built fresh every tick (§3: "one octree is constructed and
// discarded every tick; nodes never outlive a tick") and is not safe for
// concurrent Insert calls — only Accelerate is called concurrently, and it
// only reads node state, never mutates it, so concurrent readers are safe
// once the build pass has completed.
package octree

import (
	"math"

	"github.com/alexanderi96/go-nbody-sim/core/vector"
	"github.com/alexanderi96/go-nbody-sim/physics/body"
)

// Params bundles the tunable constants of §4.4. Shared by value across every
// node of one tree (cheap: four float64s).
type Params struct {
	G            float64
	Theta        float64
	Epsilon      float64
	MinimumWidth float64
}

// DefaultParams returns the reference defaults: θ=0.5, ε=700, MinimumWidth=1.
func DefaultParams(g float64) Params {
	return Params{G: g, Theta: 0.5, Epsilon: 700, MinimumWidth: 1.0}
}

// Octree is one cubical node of the tree. The zero value is not useful;
// construct with New.
type Octree struct {
	center vector.Vector3
	width  float64
	params Params

	mass  float64
	com   vector.Vector3
	count int
	first *body.Body

	children [8]*Octree
}

// New creates an empty root cell centered at center with the given width.
func New(center vector.Vector3, width float64, params Params) *Octree {
	return &Octree{center: center, width: width, params: params}
}

// Center returns the node's cell center.
func (o *Octree) Center() vector.Vector3 { return o.center }

// Width returns the node's cell width.
func (o *Octree) Width() float64 { return o.width }

// Mass returns the node's aggregated mass (Σ body.mass over its subtree).
func (o *Octree) Mass() float64 { return o.mass }

// CenterOfMass returns the node's aggregated center of mass. Meaningless
// (zero) when Mass() == 0.
func (o *Octree) CenterOfMass() vector.Vector3 { return o.com }

// Count returns the number of bodies inserted into this subtree.
func (o *Octree) Count() int { return o.count }

// Insert adds b to the node, updating aggregate mass and center of mass and
// descending into child cells per §4.4. The caller (World) must ensure b's
// position lies within the root's cube before the first Insert; §4.4 treats
// an out-of-root insert as a precondition violation rather than something
// the tree itself guards against.
func (o *Octree) Insert(b *body.Body) {
	m := b.Mass()
	newMass := o.mass + m
	if newMass > 0 {
		o.com = o.com.Scale(o.mass).Add(b.Position().Scale(m)).Div(newMass)
	}
	o.mass = newMass
	o.count++

	switch o.count {
	case 1:
		o.first = b
		return
	case 2:
		o.descend(o.first)
	}
	o.descend(b)
}

// descend routes a body into the appropriate child cell, creating it lazily.
// Subdivision halts once the would-be child width falls below
// params.MinimumWidth; the body then contributes only to this node's
// already-updated aggregates.
func (o *Octree) descend(b *body.Body) {
	childWidth := o.width / 2
	if childWidth < o.params.MinimumWidth {
		return
	}

	idx, childCenter := o.childSlot(b.Position(), childWidth)
	if o.children[idx] == nil {
		o.children[idx] = New(childCenter, childWidth, o.params)
	}
	o.children[idx].Insert(b)
}

// childSlot determines which of the 8 child octants pos falls into and that
// child's center. A coordinate exactly equal to the node's center on a given
// axis routes to the positive child on that axis (the "≥ maps to positive"
// convention documented in SPEC_FULL.md §1).
func (o *Octree) childSlot(pos vector.Vector3, childWidth float64) (int, vector.Vector3) {
	offset := childWidth / 2
	xPos := pos.X() >= o.center.X()
	yPos := pos.Y() >= o.center.Y()
	zPos := pos.Z() >= o.center.Z()

	idx := 0
	dx, dy, dz := -offset, -offset, -offset
	if xPos {
		idx |= 1
		dx = offset
	}
	if yPos {
		idx |= 2
		dy = offset
	}
	if zPos {
		idx |= 4
		dz = offset
	}
	return idx, vector.New(o.center.X()+dx, o.center.Y()+dy, o.center.Z()+dz)
}

// Accelerate accumulates the gravitational acceleration this subtree imparts
// on b into b's pending acceleration (body.Body.AddAcceleration), per §4.4's
// leaf-miss rule, multipole-acceptance criterion, and softened point-mass
// approximation.
func (o *Octree) Accelerate(b *body.Body) {
	if o.count == 0 {
		return
	}

	if o.count == 1 {
		// Leaf-miss rule: a lone body is applied as a remote mass only when
		// b lies outside this cell, or is a genuinely different body that
		// happens to share the cell (the geometric test alone cannot tell
		// "this is the body itself" from "this is a different, coincident
		// body"; the UUID check disambiguates that degenerate case).
		pos := b.Position()
		half := o.width / 2
		outside := math.Abs(pos.X()-o.center.X()) > half ||
			math.Abs(pos.Y()-o.center.Y()) > half ||
			math.Abs(pos.Z()-o.center.Z()) > half
		isSelf := o.first != nil && o.first.ID() == b.ID()
		if outside || !isSelf {
			o.apply(b)
		}
		return
	}

	d := o.com.Sub(b.Position())
	distSquared := d.LengthSquared()

	if o.width*o.width < o.params.Theta*o.params.Theta*distSquared {
		o.apply(b)
		return
	}

	for _, child := range o.children {
		if child != nil {
			child.Accelerate(b)
		}
	}
}

// apply treats the node as a single softened point mass at its center of
// mass: r = √(D²+ε²), k = G·M/r³, a += k·d.
func (o *Octree) apply(b *body.Body) {
	d := o.com.Sub(b.Position())
	distSquared := d.LengthSquared()
	r := math.Sqrt(distSquared + o.params.Epsilon*o.params.Epsilon)
	if r == 0 {
		return
	}
	k := o.params.G * o.mass / (r * r * r)
	b.AddAcceleration(d.Scale(k))
}
