package physics

import (
	"errors"
	"fmt"

	"jelly-engine/internal/input"
	"jelly-engine/internal/maths"
)

// ErrInvalidGeometry is returned when a body cannot be built from the given points and edges.
var ErrInvalidGeometry = errors.New("invalid geometry")

// DefaultMask is the collision layer every new body starts on.
const DefaultMask uint32 = 0x01

var white = maths.Vec3{1, 1, 1}

// Edge is a distance constraint between two points of the same body, stored as indices
// into the body's point slice. Length is the rest length measured at construction.
type Edge struct {
	P1, P2 int
	Length float32
}

// AABB is an axis-aligned box {Min, Max}.
type AABB struct {
	Min, Max maths.Vec2
}

// Overlaps reports whether the boxes intersect; touching edges count as overlapping.
func (a AABB) Overlaps(b AABB) bool {
	return a.Min[0] <= b.Max[0] && a.Min[1] <= b.Max[1] &&
		a.Max[0] >= b.Min[0] && a.Max[1] >= b.Min[1]
}

// Width returns Max.X - Min.X.
func (a AABB) Width() float32 { return a.Max[0] - a.Min[0] }

// Height returns Max.Y - Min.Y.
func (a AABB) Height() float32 { return a.Max[1] - a.Min[1] }

type collisionEntry struct {
	other *Body
	hook  CollisionHook
}

// Body is a soft polygon: point masses with Verlet history, held together by edge constraints.
// A body exclusively owns its point buffers; edges only reference them by index.
type Body struct {
	points []maths.Vec2
	prev   []maths.Vec2
	colors []maths.Vec3
	edges  []Edge

	mass   float32
	center maths.Vec2
	bbox   AABB

	gravity   bool
	bounded   bool
	wireframe bool
	mask      uint32

	logic      StepHook
	collisions []collisionEntry
}

// NewBody builds a body from prototype geometry. The input slices are copied. colors may be nil
// (all points white); otherwise it must have one entry per point. Every edge must reference valid
// point indices. Mass is the area of the initial bounding box and is not recomputed afterwards.
func NewBody(points []maths.Vec2, colors []maths.Vec3, edges []maths.Vec2i) (*Body, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: body needs at least one point", ErrInvalidGeometry)
	}
	if len(edges) == 0 {
		return nil, fmt.Errorf("%w: body needs at least one edge", ErrInvalidGeometry)
	}
	if colors != nil && len(colors) != len(points) {
		return nil, fmt.Errorf("%w: %d colors for %d points", ErrInvalidGeometry, len(colors), len(points))
	}
	for i, p := range points {
		if !maths.Finite(p) {
			return nil, fmt.Errorf("%w: point %d is not finite", ErrInvalidGeometry, i)
		}
	}
	for i, e := range edges {
		if e[0] < 0 || e[0] >= len(points) || e[1] < 0 || e[1] >= len(points) {
			return nil, fmt.Errorf("%w: edge %d references point out of range [0,%d)", ErrInvalidGeometry, i, len(points))
		}
	}

	b := &Body{
		points:  append([]maths.Vec2(nil), points...),
		prev:    append([]maths.Vec2(nil), points...),
		colors:  make([]maths.Vec3, len(points)),
		edges:   make([]Edge, len(edges)),
		gravity: true,
		bounded: true,
		mask:    DefaultMask,
	}
	if colors != nil {
		copy(b.colors, colors)
	} else {
		for i := range b.colors {
			b.colors[i] = white
		}
	}
	for i, e := range edges {
		b.edges[i] = Edge{
			P1:     e[0],
			P2:     e[1],
			Length: b.points[e[0]].Sub(b.points[e[1]]).Len(),
		}
	}

	b.updateCenter()
	b.mass = b.bbox.Width() * b.bbox.Height()
	return b, nil
}

// Points returns the live current positions. Step hooks and collision hooks may write to it directly.
func (b *Body) Points() []maths.Vec2 { return b.points }

// PrevPoints returns the live previous-frame positions (the Verlet history).
func (b *Body) PrevPoints() []maths.Vec2 { return b.prev }

// Edges returns the body's edge constraints. Callers must not modify them.
func (b *Body) Edges() []Edge { return b.edges }

// Translate moves every point and its history by d, so the body keeps its current velocity.
func (b *Body) Translate(d maths.Vec2) {
	for i := range b.points {
		b.points[i] = b.points[i].Add(d)
		b.prev[i] = b.prev[i].Add(d)
	}
}

// Reset places the body at pts with zero velocity. pts must have one entry per point.
func (b *Body) Reset(pts []maths.Vec2) error {
	if len(pts) != len(b.points) {
		return fmt.Errorf("%w: reset with %d points, body has %d", ErrInvalidGeometry, len(pts), len(b.points))
	}
	copy(b.points, pts)
	copy(b.prev, pts)
	b.updateCenter()
	return nil
}

func (b *Body) Mass() float32 { return b.mass }

// SetMass overrides the construction mass (e.g. to make a body twice as heavy).
// Point movement never changes mass.
func (b *Body) SetMass(m float32) { b.mass = m }

// Center is the mean of the current points as of the last relaxation pass.
func (b *Body) Center() maths.Vec2 { return b.center }

// BBox is the bounding box as of the last relaxation pass.
func (b *Body) BBox() AABB { return b.bbox }

// Gravity reports whether the per-frame gravity impulse applies to this body.
func (b *Body) Gravity() bool { return b.gravity }

func (b *Body) SetGravity(on bool) { b.gravity = on }

// Bounded reports whether integration clamps this body into the world rectangle.
func (b *Body) Bounded() bool { return b.bounded }

func (b *Body) SetBounded(on bool) { b.bounded = on }

// Wireframe is a render hint only; physics ignores it.
func (b *Body) Wireframe() bool { return b.wireframe }

func (b *Body) SetWireframe(on bool) { b.wireframe = on }

// Mask is the collision layer bitmask. Two bodies are tested only if their masks share a bit.
func (b *Body) Mask() uint32 { return b.mask }

func (b *Body) SetMask(m uint32) { b.mask = m }

// SetLogic installs the per-frame step hook. Pass nil to remove it.
func (b *Body) SetLogic(h StepHook) { b.logic = h }

// OnCollision registers h to run whenever this body is resolved against other.
// Several hooks may be registered for the same other body; each fires. A nil hook is ignored.
func (b *Body) OnCollision(other *Body, h CollisionHook) {
	if h == nil {
		return
	}
	b.collisions = append(b.collisions, collisionEntry{other: other, hook: h})
}

// RenderData is what a renderer needs for one body. The slices alias the body's buffers and
// are only valid until the next Step; renderers must not modify them.
type RenderData struct {
	Points    []maths.Vec2
	Colors    []maths.Vec3
	Wireframe bool
}

// RenderData returns the body's current points and their colours.
func (b *Body) RenderData() RenderData {
	return RenderData{Points: b.points, Colors: b.colors, Wireframe: b.wireframe}
}

func (b *Body) step(dt float64, in input.State) {
	if b.logic != nil {
		b.logic.Step(b, dt, in)
	}
}

func (b *Body) dispatchCollisions(other *Body) {
	for _, c := range b.collisions {
		if c.other == other {
			c.hook.Collide(b, other)
		}
	}
}
