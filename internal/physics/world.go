// Package physics adapts the Chipmunk2D engine (github.com/jakecoffman/cp)
// to the small surface the game needs: rectangular bodies bouncing inside a
// walled play field. Coordinates are screen cells with y growing downwards.
package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// BodyID identifies a body inside a World. IDs are never reused within a World.
type BodyID uint64

// Config holds the simulation parameters.
type Config struct {
	GravityX       float64 // Cells per second squared
	GravityY       float64 // Cells per second squared, positive is down
	Damping        float64 // Fraction of velocity kept after one second
	Elasticity     float64 // Bounciness of word bodies
	WallElasticity float64 // Bounciness of the boundary walls
	Friction       float64
	WallThickness  float64
	Density        float64 // Mass per square cell
	CornerRadius   float64
}

// DefaultConfig returns parameters tuned for a terminal-sized play field.
func DefaultConfig() Config {
	return Config{
		GravityY:       0.3,
		Damping:        0.94,
		Elasticity:     0.9,
		WallElasticity: 1.0,
		Friction:       0,
		WallThickness:  4,
		Density:        1,
		CornerRadius:   0.1,
	}
}

// BoxSpec describes a new rectangular body. X and Y are the center.
type BoxSpec struct {
	X, Y            float64
	W, H            float64
	VX, VY          float64
	AngularVelocity float64
}

// BodyState is a read-only view of a body.
type BodyState struct {
	X, Y   float64
	Angle  float64
	VX, VY float64
}

type entry struct {
	body   *cp.Body
	shapes []*cp.Shape
	w, h   float64
}

// World is a rigid-body simulation bounded by four walls.
// It is not safe for concurrent use; the owning game steps it from one goroutine.
type World struct {
	cfg     Config
	space   *cp.Space
	walls   []*cp.Shape
	bodies  map[BodyID]*entry
	nextID  BodyID
	width   float64
	height  float64
	running bool
}

// NewWorld creates an empty, stopped world. Call Reset before adding bodies.
func NewWorld(cfg Config) *World {
	return &World{
		cfg:    cfg,
		bodies: make(map[BodyID]*entry),
	}
}

// Reset discards every body, creates a fresh space with walls around the
// given rectangle and starts the simulation.
func (w *World) Reset(width, height float64) {
	w.space = cp.NewSpace()
	w.space.SetGravity(cp.Vector{X: w.cfg.GravityX, Y: w.cfg.GravityY})
	w.space.SetDamping(w.cfg.Damping)
	w.bodies = make(map[BodyID]*entry)
	w.walls = nil
	w.width = width
	w.height = height
	w.buildWalls()
	w.running = true
}

// SetBounds rebuilds the boundary walls for a new play-field rectangle.
// Bodies left outside the new rectangle are pulled back in.
func (w *World) SetBounds(width, height float64) {
	w.width = width
	w.height = height
	if w.space == nil {
		return
	}
	for _, s := range w.walls {
		w.space.RemoveShape(s)
	}
	w.walls = nil
	w.buildWalls()
	w.confine()
}

func (w *World) buildWalls() {
	t := w.cfg.WallThickness
	r := t / 2
	width, height := w.width, w.height

	// Segments sit just outside the rectangle so their radius ends at the edge.
	segments := [][2]cp.Vector{
		{{X: -t, Y: -r}, {X: width + t, Y: -r}},                // top
		{{X: -t, Y: height + r}, {X: width + t, Y: height + r}}, // bottom
		{{X: -r, Y: -t}, {X: -r, Y: height + t}},                // left
		{{X: width + r, Y: -t}, {X: width + r, Y: height + t}},  // right
	}
	for _, seg := range segments {
		shape := w.space.AddShape(cp.NewSegment(w.space.StaticBody, seg[0], seg[1], r))
		shape.SetElasticity(w.cfg.WallElasticity)
		shape.SetFriction(w.cfg.Friction)
		w.walls = append(w.walls, shape)
	}
}

// AddBox adds a dynamic rectangular body and returns its ID.
// Returns 0 if the world has not been Reset.
func (w *World) AddBox(spec BoxSpec) BodyID {
	if w.space == nil {
		return 0
	}

	mass := math.Max(w.cfg.Density*spec.W*spec.H, 0.01)
	body := w.space.AddBody(cp.NewBody(mass, cp.MomentForBox(mass, spec.W, spec.H)))
	body.SetPosition(cp.Vector{X: spec.X, Y: spec.Y})
	body.SetVelocity(spec.VX, spec.VY)
	body.SetAngularVelocity(spec.AngularVelocity)

	shape := w.space.AddShape(cp.NewBox(body, spec.W, spec.H, w.cfg.CornerRadius))
	shape.SetElasticity(w.cfg.Elasticity)
	shape.SetFriction(w.cfg.Friction)

	w.nextID++
	w.bodies[w.nextID] = &entry{
		body:   body,
		shapes: []*cp.Shape{shape},
		w:      spec.W,
		h:      spec.H,
	}
	return w.nextID
}

// Remove deletes a body. Returns false if the ID is unknown.
func (w *World) Remove(id BodyID) bool {
	e, ok := w.bodies[id]
	if !ok {
		return false
	}
	for _, s := range e.shapes {
		w.space.RemoveShape(s)
	}
	w.space.RemoveBody(e.body)
	delete(w.bodies, id)
	return true
}

// Body returns the current state of a body.
func (w *World) Body(id BodyID) (BodyState, bool) {
	e, ok := w.bodies[id]
	if !ok {
		return BodyState{}, false
	}
	pos := e.body.Position()
	vel := e.body.Velocity()
	return BodyState{
		X:     pos.X,
		Y:     pos.Y,
		Angle: e.body.Angle(),
		VX:    vel.X,
		VY:    vel.Y,
	}, true
}

// Count returns the number of dynamic bodies.
func (w *World) Count() int {
	return len(w.bodies)
}

// Step advances the simulation by dt seconds. Does nothing once stopped.
func (w *World) Step(dt float64) {
	if !w.running || w.space == nil || dt <= 0 {
		return
	}
	w.space.Step(dt)
	w.confine()
}

// Stop halts stepping. Returns false if the world was already stopped.
func (w *World) Stop() bool {
	if !w.running {
		return false
	}
	w.running = false
	return true
}

// Running reports whether Step advances the simulation.
func (w *World) Running() bool {
	return w.running
}

// Bounds returns the current play-field size.
func (w *World) Bounds() (width, height float64) {
	return w.width, w.height
}

// confine pulls bodies that tunnelled through a wall, or were stranded by a
// shrinking viewport, back inside and points their velocity inward.
func (w *World) confine() {
	for _, e := range w.bodies {
		pos := e.body.Position()
		vel := e.body.Velocity()
		x, vx := confineAxis(pos.X, vel.X, e.w/2, w.width)
		y, vy := confineAxis(pos.Y, vel.Y, e.h/2, w.height)
		if x != pos.X || y != pos.Y {
			e.body.SetPosition(cp.Vector{X: x, Y: y})
			e.body.SetVelocity(vx, vy)
		}
	}
}

func confineAxis(p, v, half, limit float64) (float64, float64) {
	lo, hi := half, limit-half
	if lo > hi {
		return limit / 2, v
	}
	switch {
	case p < lo:
		return lo, math.Abs(v)
	case p > hi:
		return hi, -math.Abs(v)
	}
	return p, v
}
