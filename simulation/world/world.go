// Package world implements the per-tick orchestrator of §4.6: a fixed
// capacity body vector, the Update→size-root→build-tree→Accelerate tick
// sequence, the commands exposed to the UI layer in §6, and a handful of
// read-only observers: fixed-capacity body storage under a single body lock,
// a frame counter and smoothed FPS gauge, and camera Z/velocity/easing, over
// this design's flat body model and Barnes-Hut tree.
package world

import (
	"log/slog"
	"sync"
	"time"

	"github.com/alexanderi96/go-nbody-sim/core/constants"
	"github.com/alexanderi96/go-nbody-sim/core/vector"
	"github.com/alexanderi96/go-nbody-sim/engine/parallel"
	"github.com/alexanderi96/go-nbody-sim/physics/body"
	"github.com/alexanderi96/go-nbody-sim/physics/octree"
	"github.com/alexanderi96/go-nbody-sim/render"
	"github.com/alexanderi96/go-nbody-sim/simulation/config"
	"github.com/alexanderi96/go-nbody-sim/simulation/generator"
)

// World is the single orchestrator of one simulation, per §9's "global
// singleton world" design note — callers construct their own explicit
// instance with New rather than reaching for a package-level global.
type World struct {
	cfg    config.Config
	logger *slog.Logger

	bodyMu sync.Mutex
	bodies []*body.Body

	metaMu   sync.Mutex
	active   bool
	frames   uint64
	fps      float64
	cameraZ  float64
	cameraVZ float64
}

// New creates a World with capacity and every slot empty (equivalent to
// Generate(generator.None)). A nil logger falls back to slog.Default(), per
// SPEC_FULL.md §10.1.
func New(cfg config.Config, logger *slog.Logger) *World {
	if cfg.Capacity <= 0 {
		panic("world: capacity must be positive")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &World{
		cfg:     cfg,
		logger:  logger,
		bodies:  make([]*body.Body, cfg.Capacity),
		cameraZ: 1,
	}
}

// Generate replaces the body vector with a fresh preset, per §4.7/§6.
// Running simulation state (frame counter, fps, camera) is left untouched;
// only the body vector changes.
func (w *World) Generate(kind generator.SystemType) {
	bodies := generator.Generate(kind, w.cfg.Capacity, w.cfg.TrailLength, w.cfg.G)
	w.bodyMu.Lock()
	w.bodies = bodies
	w.bodyMu.Unlock()
	w.logger.Info("generated system", "preset", kind.String(), "capacity", w.cfg.Capacity)
}

// SetActive sets whether Tick advances the physics.
func (w *World) SetActive(active bool) {
	w.metaMu.Lock()
	w.active = active
	w.metaMu.Unlock()
	w.logger.Info("active state changed", "active", active)
}

// ToggleActive flips the active flag and returns the new value.
func (w *World) ToggleActive() bool {
	w.metaMu.Lock()
	w.active = !w.active
	active := w.active
	w.metaMu.Unlock()
	w.logger.Info("active state toggled", "active", active)
	return active
}

// Active reports whether Tick currently advances the physics.
func (w *World) Active() bool {
	w.metaMu.Lock()
	defer w.metaMu.Unlock()
	return w.active
}

// Rotate rigidly rotates every live body about the line through base in
// direction axis by angle radians (§4.3, §6), under the body lock per
// §4.6's concurrency rule.
func (w *World) Rotate(base, axis vector.Vector3, angle float64) {
	w.bodyMu.Lock()
	defer w.bodyMu.Unlock()
	for _, b := range w.bodies {
		if b != nil {
			b.Rotate(base, axis, angle)
		}
	}
}

// MoveCamera nudges the camera's Z velocity; the eased position update
// happens once per tick in Tick's housekeeping step.
func (w *World) MoveCamera(delta float64) {
	w.metaMu.Lock()
	w.cameraVZ += delta
	w.metaMu.Unlock()
}

// ResetCamera restores the camera to its resting position.
func (w *World) ResetCamera() {
	w.metaMu.Lock()
	w.cameraZ = 1
	w.cameraVZ = 0
	w.metaMu.Unlock()
}

// CameraZ returns the camera's current Z position.
func (w *World) CameraZ() float64 {
	w.metaMu.Lock()
	defer w.metaMu.Unlock()
	return w.cameraZ
}

// BodyCount returns the number of non-empty slots.
func (w *World) BodyCount() int {
	w.bodyMu.Lock()
	defer w.bodyMu.Unlock()
	n := 0
	for _, b := range w.bodies {
		if b != nil {
			n++
		}
	}
	return n
}

// TotalMass returns the sum of every live body's mass.
func (w *World) TotalMass() float64 {
	w.bodyMu.Lock()
	defer w.bodyMu.Unlock()
	total := 0.0
	for _, b := range w.bodies {
		if b != nil {
			total += b.Mass()
		}
	}
	return total
}

// Frames returns the number of ticks in which at least one body was
// accelerated.
func (w *World) Frames() uint64 {
	w.metaMu.Lock()
	defer w.metaMu.Unlock()
	return w.frames
}

// Fps returns the exponentially smoothed frames-per-second gauge.
func (w *World) Fps() float64 {
	w.metaMu.Lock()
	defer w.metaMu.Unlock()
	return w.fps
}

// Render drives r over a snapshot of the live bodies taken under the body
// lock; each body's position and radius are read after the lock is released.
// No lock is held across the callback into r: §5 documents this path as
// tolerating torn reads, trading per-body consistency for a renderer that
// never blocks the simulation thread.
func (w *World) Render(r render.Surface) {
	w.bodyMu.Lock()
	snapshot := make([]*body.Body, 0, len(w.bodies))
	for _, b := range w.bodies {
		if b != nil {
			snapshot = append(snapshot, b)
		}
	}
	w.bodyMu.Unlock()

	for _, b := range snapshot {
		screen, _, visible := r.Project(b.Position())
		if !visible {
			continue
		}
		r.FillCircle(screen, b.Radius())
	}
}

// Tick advances the simulation by one step, following §4.6 exactly:
//  1. if inactive, skip straight to housekeeping;
//  2. under the body lock, integrate every live body (consuming the
//     acceleration accumulated by the previous tick's Accelerate pass) and
//     measure H, the largest component magnitude of any body's new
//     position;
//  3. allocate a fresh root cell of width 2.1·H;
//  4. insert every live body into it;
//  5. run Accelerate for every live body across the parallel harness,
//     populating the acceleration the *next* tick's Update will consume;
//  6. release the lock, then ease the camera and pace the frame to the
//     target interval;
//  7. bump the frame counter if any body was accelerated this tick.
//
// Steps 2 and 3-5 both touch body state; §9 documents this ordering (update
// before sizing the next root) as the fixed resolution of an otherwise
// immaterial ambiguity — see SPEC_FULL.md §1 resolution 4.
func (w *World) Tick() error {
	start := time.Now()

	w.metaMu.Lock()
	active := w.active
	w.metaMu.Unlock()

	var tickErr error
	accelerated := false
	if active {
		w.bodyMu.Lock()
		H := 0.0
		for i, b := range w.bodies {
			if b == nil {
				continue
			}
			if b.Update(w.cfg.C) {
				w.logger.Warn("quarantined non-finite body", "index", i, "id", b.ID())
			}
			if h := b.Position().MaxAbsComponent(); h > H {
				H = h
			}
		}

		width := constants.RootSlack * H
		if width <= 0 {
			width = constants.RootSlack * constants.MinimumWidth
		}
		root := octree.New(vector.Zero(), width, octree.Params{
			G:            w.cfg.G,
			Theta:        w.cfg.Theta,
			Epsilon:      w.cfg.Epsilon,
			MinimumWidth: w.cfg.MinimumWidth,
		})

		live := make([]*body.Body, 0, len(w.bodies))
		for _, b := range w.bodies {
			if b != nil {
				root.Insert(b)
				live = append(live, b)
			}
		}

		tickErr = parallel.Run(0, len(live), w.cfg.Workers, func(i int) error {
			root.Accelerate(live[i])
			return nil
		})
		if tickErr != nil {
			// §7: a worker panic/error must not leave partial acceleration
			// state visible — restore every live body to its pre-tick
			// (zero) acceleration rather than returning with some bodies
			// accelerated and others not.
			for _, b := range live {
				b.ResetAcceleration()
			}
		}
		accelerated = tickErr == nil && root.Count() > 0
		w.bodyMu.Unlock()
	}

	if tickErr != nil {
		w.logger.Error("tick failed", "error", tickErr)
		return tickErr
	}

	w.metaMu.Lock()
	if accelerated {
		w.frames++
	}
	w.cameraZ += w.cameraVZ * w.cameraZ
	if w.cameraZ < 1 {
		w.cameraZ = 1
	}
	w.cameraVZ *= constants.CameraEasing
	w.metaMu.Unlock()

	pace(start)
	w.updateFps(start)
	return nil
}

// pace sleeps off any remaining time in the nominal frame interval.
func pace(start time.Time) {
	target := time.Duration(constants.FrameIntervalMillis * float64(time.Millisecond))
	if elapsed := time.Since(start); elapsed < target {
		time.Sleep(target - elapsed)
	}
}

// updateFps folds the total wall-clock time of the tick (physics plus any
// pacing sleep) into the smoothed FPS gauge.
func (w *World) updateFps(start time.Time) {
	elapsed := time.Since(start).Seconds()
	if elapsed <= 0 {
		return
	}
	instant := 1 / elapsed
	if instant > constants.FpsMax {
		instant = constants.FpsMax
	}
	w.metaMu.Lock()
	w.fps += (instant - w.fps) * constants.FpsSmoothing
	w.metaMu.Unlock()
}
