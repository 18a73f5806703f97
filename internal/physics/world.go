// Package physics owns the rigid-body space and the static terrain boundary
// built from a terrain skyline.
package physics

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
)

// Physics constants shared with the renderer's pixel space.
const (
	PixelsPerMeter = 100
	Gravity        = 9.81
	Iterations     = 8

	// chainRadius gives the boundary segments a little thickness so small
	// bodies do not tunnel through at frame-sized steps.
	chainRadius = 0.02
)

var (
	// ErrEmptyChain is returned when fewer than two points are supplied.
	ErrEmptyChain = errors.New("physics: a chain needs at least two points")
	// ErrNoWorld is returned when a nil world is used.
	ErrNoWorld = errors.New("physics: world is not initialized")
)

// Point is a physics-space coordinate in meters.
type Point struct {
	X, Y float64
}

// World wraps a chipmunk space stepped once per frame.
type World struct {
	space *cp.Space
}

// NewWorld creates a space with downward gravity.
func NewWorld() *World {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: 0, Y: -Gravity})
	space.Iterations = Iterations
	return &World{space: space}
}

// Step advances the simulation by dt seconds. Non-positive steps are ignored.
func (w *World) Step(dt float64) {
	if w == nil || dt <= 0 {
		return
	}
	w.space.Step(dt)
}

// Gravity returns the configured gravity vector.
func (w *World) Gravity() Point {
	g := w.space.Gravity()
	return Point{X: g.X, Y: g.Y}
}

// ChainHandle identifies a static chain created by CreateStaticChain.
type ChainHandle struct {
	body   *cp.Body
	shapes []*cp.Shape
	points []Point
}

// Points returns the chain's vertices in order.
func (h *ChainHandle) Points() []Point {
	if h == nil {
		return nil
	}
	return h.points
}

// CreateStaticChain adds an open polyline of segments anchored on a new static
// body at the origin.
func (w *World) CreateStaticChain(points []Point) (*ChainHandle, error) {
	if w == nil || w.space == nil {
		return nil, ErrNoWorld
	}
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrEmptyChain, len(points))
	}
	body := w.space.AddBody(cp.NewStaticBody())
	body.SetPosition(cp.Vector{})
	h := &ChainHandle{body: body, points: append([]Point(nil), points...)}
	for i := 0; i+1 < len(points); i++ {
		a := cp.Vector{X: points[i].X, Y: points[i].Y}
		b := cp.Vector{X: points[i+1].X, Y: points[i+1].Y}
		shape := w.space.AddShape(cp.NewSegment(body, a, b, chainRadius))
		shape.SetFriction(1)
		h.shapes = append(h.shapes, shape)
	}
	return h, nil
}

// DestroyChain removes a chain's shapes and body from the space.
func (w *World) DestroyChain(h *ChainHandle) {
	if w == nil || h == nil || h.body == nil {
		return
	}
	for _, s := range h.shapes {
		w.space.RemoveShape(s)
	}
	w.space.RemoveBody(h.body)
	h.shapes = nil
	h.body = nil
}

// ShapeCount reports the number of shapes in the space.
func (w *World) ShapeCount() int {
	n := 0
	w.space.EachShape(func(*cp.Shape) { n++ })
	return n
}

// DropProbe adds a dynamic circle at p (meters) and returns a function that
// reports its current position. It is used to check that the boundary holds.
func (w *World) DropProbe(p Point, radius float64) func() Point {
	mass := 1.0
	body := w.space.AddBody(cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{})))
	body.SetPosition(cp.Vector{X: p.X, Y: p.Y})
	shape := w.space.AddShape(cp.NewCircle(body, radius, cp.Vector{}))
	shape.SetFriction(0.7)
	return func() Point {
		pos := body.Position()
		return Point{X: pos.X, Y: pos.Y}
	}
}
