// Package render defines the boundary between the simulation core and the
// windowing/rendering surface that §1 of the simulation design places out
// of scope: "A 3D point-to-screen projector and a 2D filled-circle
// primitive are consumed as opaque services." Nothing in this package
// implements a concrete renderer (no window, no camera, no HUD) — it only
// names the two operations the core hands work to, generalized from the
// donor engine's render/adapter.Renderer interface down to the minimum
// surface this design actually needs.
package render

import "github.com/alexanderi96/go-nbody-sim/core/vector"

// ScreenPoint is a 2-D point in an opaque screen/viewport coordinate space;
// the simulation core never interprets its components.
type ScreenPoint struct {
	X, Y float64
}

// Projector maps a 3-D world point to a 2-D screen point. Implementations
// live entirely outside this module (a camera, a perspective matrix, a
// window).
type Projector interface {
	// Project returns the screen-space position of p, its view-space depth
	// (for painter's-algorithm ordering), and whether p is inside the view
	// frustum at all.
	Project(p vector.Vector3) (screen ScreenPoint, depth float64, visible bool)
}

// CircleFiller draws a filled circle of the given world-space radius,
// centered at a previously projected screen point.
type CircleFiller interface {
	FillCircle(center ScreenPoint, worldRadius float64)
}

// Surface is the opaque pair of services a renderer must provide; World.Render
// (simulation/world) drives both for every live body once per draw, never
// touching position data under the body lock (§5: "Readers that tolerate
// torn reads... must not rely on consistency across bodies").
type Surface interface {
	Projector
	CircleFiller
}
