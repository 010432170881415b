package physics

import (
	"math"

	"github.com/chewxy/math32"

	"jelly-engine/internal/maths"
)

// parallelTolerance decides when two unit axes count as the same direction.
const parallelTolerance = 1e-4

// Contact is the result of one positive narrow-phase test. It is a plain value owned by the
// caller; nothing about it is shared between pairs.
type Contact struct {
	Depth float32
	// Normal is a unit vector pointing from EdgeBody towards VertexBody.
	Normal maths.Vec2

	EdgeBody *Body
	Edge     Edge

	VertexBody *Body
	Vertex     int
}

// project returns the [lo, hi] interval of b's points along axis.
func project(b *Body, axis maths.Vec2) (lo, hi float32) {
	lo = axis.Dot(b.points[0])
	hi = lo
	for _, p := range b.points[1:] {
		d := axis.Dot(p)
		lo = maths.Min(lo, d)
		hi = maths.Max(hi, d)
	}
	return lo, hi
}

// intervalDistance is the signed gap between two intervals; negative means they overlap.
func intervalDistance(lo1, hi1, lo2, hi2 float32) float32 {
	if lo1 < lo2 {
		return lo2 - hi1
	}
	return lo1 - hi2
}

// edgeAxis returns the unit perpendicular of e, or false for a zero-length edge.
func edgeAxis(b *Body, e Edge) (maths.Vec2, bool) {
	d := b.points[e.P1].Sub(b.points[e.P2])
	l := d.Len()
	if l == 0 {
		return maths.Vec2{}, false
	}
	return maths.Vec2{d[1], -d[0]}.Mul(1 / l), true
}

// Detect runs the separating-axis test between a and b using the perpendiculars of every edge
// of both bodies. It assumes centres are current. The returned contact carries the axis of least
// penetration over all axes tested.
func Detect(a, b *Body) (Contact, bool) {
	best := Contact{Depth: math.MaxFloat32}
	found := false

	for _, owner := range [2]*Body{a, b} {
		for _, e := range owner.edges {
			axis, ok := edgeAxis(owner, e)
			if !ok {
				continue
			}
			lo1, hi1 := project(a, axis)
			lo2, hi2 := project(b, axis)

			dist := intervalDistance(lo1, hi1, lo2, hi2)
			if dist > 0 {
				return Contact{}, false
			}
			if depth := math32.Abs(dist); depth < best.Depth {
				best = Contact{Depth: depth, Normal: axis, EdgeBody: owner, Edge: e}
				found = true
			}
		}
	}
	if !found {
		return Contact{}, false
	}

	other := b
	if best.EdgeBody == b {
		other = a
	}
	if other.center.Sub(best.EdgeBody.center).Dot(best.Normal) < 0 {
		best.Normal = best.Normal.Mul(-1)
	}
	best.Edge = facingEdge(best.EdgeBody, best.Edge, best.Normal)

	best.VertexBody = other
	smallest := float32(math.MaxFloat32)
	for i, p := range other.points {
		if d := best.Normal.Dot(p); d < smallest {
			smallest = d
			best.Vertex = i
		}
	}
	return best, true
}

// facingEdge picks, among the edges of b parallel to the winning axis, the one furthest along n.
func facingEdge(b *Body, chosen Edge, n maths.Vec2) Edge {
	mid := func(e Edge) float32 {
		return n.Dot(b.points[e.P1].Add(b.points[e.P2]))
	}
	best, bestMid := chosen, mid(chosen)
	for _, e := range b.edges {
		axis, ok := edgeAxis(b, e)
		if !ok || math32.Abs(axis.Dot(n)) < 1-parallelTolerance {
			continue
		}
		if m := mid(e); m > bestMid {
			best, bestMid = e, m
		}
	}
	return best
}

// Resolve pushes the contact vertex out along the normal and the incident edge the other way.
// The edge's share is split between its endpoints by where the vertex falls along the edge;
// the split between bodies is by mass, so the heavier body moves less.
func Resolve(c Contact) {
	eb, vb := c.EdgeBody, c.VertexBody
	p1 := eb.points[c.Edge.P1]
	p2 := eb.points[c.Edge.P2]
	v := vb.points[c.Vertex]
	push := c.Normal.Mul(c.Depth)

	// Interpolate along whichever axis the edge spans most.
	z := float32(0.5)
	dx, dy := p2[0]-p1[0], p2[1]-p1[1]
	if math32.Abs(dx) > math32.Abs(dy) {
		z = (v[0] - push[0] - p1[0]) / dx
	} else if dy != 0 {
		z = (v[1] - push[1] - p1[1]) / dy
	}
	z = maths.Clamp(z, 0, 1)
	lambda := 1 / (z*z + (1-z)*(1-z))

	edgeMass := z*eb.mass + (1-z)*eb.mass
	total := edgeMass + vb.mass
	edgeShare, vertexShare := float32(0.5), float32(0.5)
	if total > 0 {
		edgeShare = vb.mass / total
		vertexShare = edgeMass / total
	}

	eb.points[c.Edge.P1] = p1.Sub(push.Mul((1 - z) * edgeShare * lambda))
	eb.points[c.Edge.P2] = p2.Sub(push.Mul(z * edgeShare * lambda))
	vb.points[c.Vertex] = v.Add(push.Mul(vertexShare))
}
