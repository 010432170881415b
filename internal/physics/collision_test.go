package physics

import (
	"testing"

	"jelly-engine/internal/maths"
)

func TestDetectSeparatedSquares(t *testing.T) {
	a := square(t, 0, 0, 10)
	b := square(t, 11, 0, 10)
	if _, ok := Detect(a, b); ok {
		t.Fatal("squares 1 unit apart reported as colliding")
	}
	if _, ok := Detect(b, a); ok {
		t.Fatal("detect is not symmetric for separated squares")
	}
}

func TestDetectOverlappingSquares(t *testing.T) {
	a := square(t, 0, 0, 10)
	b := square(t, 8, 0, 10)

	c, ok := Detect(a, b)
	if !ok {
		t.Fatal("squares overlapping by 2 not reported")
	}
	if !approx(c.Depth, 2) {
		t.Fatalf("depth = %v, want 2", c.Depth)
	}
	if !approx(c.Normal[0], 1) || !approx(c.Normal[1], 0) {
		t.Fatalf("normal = %v, want (1, 0) pointing from a to b", c.Normal)
	}
	if c.EdgeBody != a || c.VertexBody != b {
		t.Fatal("expected a to own the incident edge and b the vertex")
	}
	if got := a.Points()[c.Edge.P1][0]; got != 10 {
		t.Fatalf("incident edge at x=%v, want the facing side x=10", got)
	}
	if got := b.Points()[c.Vertex][0]; got != 8 {
		t.Fatalf("contact vertex x = %v, want the deepest point x=8", got)
	}
}

func TestDetectUsesSmallestPenetrationOverAllAxes(t *testing.T) {
	// Overlap is 0.5 on x and 0.2 on y; the y axis must win regardless of test order.
	a := square(t, 0, 0, 1)
	b := square(t, 0.5, 0.8, 1)

	for _, order := range [][2]*Body{{a, b}, {b, a}} {
		c, ok := Detect(order[0], order[1])
		if !ok {
			t.Fatal("expected collision")
		}
		if !approx(c.Depth, 0.2) {
			t.Fatalf("depth = %v, want 0.2", c.Depth)
		}
		if !approx(c.Normal[0], 0) || !approx(c.Normal[1]*c.Normal[1], 1) {
			t.Fatalf("normal = %v, want vertical", c.Normal)
		}
		toVertex := c.VertexBody.Center().Sub(c.EdgeBody.Center())
		if toVertex.Dot(c.Normal) < 0 {
			t.Fatalf("normal %v points away from the vertex body", c.Normal)
		}
	}
}

func TestResolveRemovesContactPenetration(t *testing.T) {
	a := square(t, 0, 0, 1)
	b := square(t, 0.5, 0.8, 1)

	c, ok := Detect(a, b)
	if !ok {
		t.Fatal("expected collision")
	}
	Resolve(c)

	p1 := c.EdgeBody.Points()[c.Edge.P1]
	p2 := c.EdgeBody.Points()[c.Edge.P2]
	v := c.VertexBody.Points()[c.Vertex]

	// The vertex must now sit on or outside the incident edge along the contact normal.
	edgeLevel := maths.Max(c.Normal.Dot(p1), c.Normal.Dot(p2))
	if pen := edgeLevel - c.Normal.Dot(v); pen > 1e-4 {
		t.Fatalf("vertex %v still penetrates edge %v-%v by %v", v, p1, p2, pen)
	}
}

func TestResolveHeavierBodyMovesLess(t *testing.T) {
	for _, ratio := range []float32{1.5, 2, 10} {
		for _, heavyIsVertex := range []bool{true, false} {
			a := square(t, 0, 0, 10)
			b := square(t, 8, 0, 10)
			if heavyIsVertex {
				b.SetMass(a.Mass() * ratio)
			} else {
				a.SetMass(b.Mass() * ratio)
			}
			aBefore := append([]maths.Vec2(nil), a.Points()...)
			bBefore := append([]maths.Vec2(nil), b.Points()...)

			c, ok := Detect(a, b)
			if !ok {
				t.Fatal("expected collision")
			}
			Resolve(c)

			aMove := maxDisplacement(aBefore, a.Points())
			bMove := maxDisplacement(bBefore, b.Points())
			heavy, light := aMove, bMove
			if heavyIsVertex {
				heavy, light = bMove, aMove
			}
			if heavy >= light {
				t.Fatalf("ratio %v (heavy vertex body=%v): heavy moved %v, light moved %v", ratio, heavyIsVertex, heavy, light)
			}
			if !approx(aMove+bMove, c.Depth) {
				t.Fatalf("ratio %v: total correction %v, want depth %v", ratio, aMove+bMove, c.Depth)
			}
		}
	}
}

func maxDisplacement(before, after []maths.Vec2) float32 {
	var m float32
	for i := range before {
		m = maths.Max(m, after[i].Sub(before[i]).Len())
	}
	return m
}

func TestDetectSkipsZeroLengthAxes(t *testing.T) {
	a, err := NewBody(
		[]maths.Vec2{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
		nil,
		[]maths.Vec2i{{0, 0}, {0, 1}, {1, 2}, {2, 3}, {3, 0}},
	)
	if err != nil {
		t.Fatalf("NewBody: %v", err)
	}
	b := square(t, 8, 0, 10)

	c, ok := Detect(a, b)
	if !ok {
		t.Fatal("expected collision")
	}
	if !maths.Finite(c.Normal) || !approx(c.Depth, 2) {
		t.Fatalf("contact = %+v, want finite normal and depth 2", c)
	}
}

func TestDetectWithOnlyDegenerateEdges(t *testing.T) {
	a := pairBody(t, maths.Vec2{5, 5}, maths.Vec2{5, 5})
	b := pairBody(t, maths.Vec2{5, 5}, maths.Vec2{5, 5})
	if _, ok := Detect(a, b); ok {
		t.Fatal("bodies without a usable axis must not report a contact")
	}
}

func TestResolveWithZeroMass(t *testing.T) {
	a := square(t, 0, 0, 10)
	b := square(t, 8, 0, 10)
	a.SetMass(0)
	b.SetMass(0)

	c, ok := Detect(a, b)
	if !ok {
		t.Fatal("expected collision")
	}
	Resolve(c)
	for _, body := range []*Body{a, b} {
		for i, p := range body.Points() {
			if !maths.Finite(p) {
				t.Fatalf("point %d = %v after zero-mass resolve", i, p)
			}
		}
	}
}

func TestAABBOverlaps(t *testing.T) {
	box := AABB{Min: maths.Vec2{0, 0}, Max: maths.Vec2{10, 10}}
	tests := []struct {
		name  string
		other AABB
		want  bool
	}{
		{"inside", AABB{Min: maths.Vec2{2, 2}, Max: maths.Vec2{4, 4}}, true},
		{"touching", AABB{Min: maths.Vec2{10, 0}, Max: maths.Vec2{20, 10}}, true},
		{"right", AABB{Min: maths.Vec2{11, 0}, Max: maths.Vec2{20, 10}}, false},
		{"above", AABB{Min: maths.Vec2{0, 10.5}, Max: maths.Vec2{10, 20}}, false},
	}
	for _, tt := range tests {
		if got := box.Overlaps(tt.other); got != tt.want {
			t.Errorf("%s: Overlaps = %v, want %v", tt.name, got, tt.want)
		}
	}
}
