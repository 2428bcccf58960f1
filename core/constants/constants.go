// Package constants collects the process-wide tunable defaults named in
// §4.4 and §6 of the simulation design. They are plain defaults, not
// globals: simulation/config builds a Config from the physics defaults
// (G, C, capacity, Theta, Epsilon, MinimumWidth, trail length), and
// components read those from that Config (per §9's "Global singleton
// world" design note). The housekeeping constants (RootSlack, frame pacing,
// FPS gauge, camera easing) are not part of Config; simulation/world reads
// them, and MinimumWidth for its empty-world root fallback, from this
// package directly.
package constants

const (
	// DefaultG is the default gravitational constant. Deliberately not the
	// SI value (6.674e-11): the reference simulation runs in an arbitrary
	// unit system tuned for on-screen scale, matching §6's documented
	// default of 67.
	DefaultG = 67.0

	// DefaultC is the default speed ceiling used by the relativistic
	// velocity clamp in §4.3.
	DefaultC = 1e4

	// DefaultCapacity is the default number of body slots.
	DefaultCapacity = 1000

	// Theta is the Barnes-Hut multipole acceptance criterion threshold
	// (cell width / distance).
	Theta = 0.5

	// Epsilon is the softening length used in the force denominator to
	// remove the r=0 singularity.
	Epsilon = 700.0

	// MinimumWidth halts octree subdivision once a child cell's width
	// would fall below this.
	MinimumWidth = 1.0

	// RootSlack is the factor applied to the measured half-width H when
	// sizing a tick's root cell (width 2.1·H); the 0.1 beyond 2 guarantees
	// strict containment despite floating-point drift.
	RootSlack = 2.1

	// FrameIntervalMillis is the nominal wall-clock duration of one
	// tick/frame, in milliseconds.
	FrameIntervalMillis = 33.0

	// FpsMax caps the smoothed FPS counter.
	FpsMax = 999.9

	// FpsSmoothing is the exponential smoothing factor applied to the FPS
	// counter each tick.
	FpsSmoothing = 0.2

	// CameraEasing damps camera Z velocity each tick.
	CameraEasing = 0.94

	// DefaultTrailLength is the default motion-trail ring capacity (0
	// disables trails).
	DefaultTrailLength = 0
)
