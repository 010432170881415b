package physics

import "jelly-engine/internal/maths"

// integrate advances every point one Verlet step. gravity is subtracted from y once per frame,
// independent of dt.
func (b *Body) integrate(gravity float32, bounds AABB) {
	for i, cur := range b.points {
		next := cur.Add(cur).Sub(b.prev[i])
		if b.gravity {
			next[1] -= gravity
		}
		b.prev[i] = cur

		if b.bounded {
			next[0] = maths.Clamp(next[0], bounds.Min[0], bounds.Max[0])
			next[1] = maths.Clamp(next[1], bounds.Min[1], bounds.Max[1])
		}
		b.points[i] = next
	}
}

// relaxEdges applies one Gauss-Seidel pass over the edge constraints. Each edge moves both
// endpoints half way towards its rest length; a zero-length edge is left alone.
func (b *Body) relaxEdges() {
	for _, e := range b.edges {
		delta := b.points[e.P1].Sub(b.points[e.P2])
		d := delta.Len()

		var diff float32
		if d != 0 {
			diff = (e.Length - d) / d
		}
		t := delta.Mul(0.5 * diff)

		b.points[e.P1] = b.points[e.P1].Add(t)
		b.points[e.P2] = b.points[e.P2].Sub(t)
	}
}

// updateCenter recomputes the centre of mass (mean point) and the bounding box.
func (b *Body) updateCenter() {
	var sum maths.Vec2
	box := AABB{Min: b.points[0], Max: b.points[0]}
	for _, p := range b.points {
		sum = sum.Add(p)
		box.Min[0] = maths.Min(box.Min[0], p[0])
		box.Min[1] = maths.Min(box.Min[1], p[1])
		box.Max[0] = maths.Max(box.Max[0], p[0])
		box.Max[1] = maths.Max(box.Max[1], p[1])
	}
	b.center = sum.Mul(1 / float32(len(b.points)))
	b.bbox = box
}
