package physics

import (
	"testing"

	"github.com/chewxy/math32"

	"jelly-engine/internal/input"
	"jelly-engine/internal/maths"
)

func pairBody(t *testing.T, a, b maths.Vec2) *Body {
	t.Helper()
	body, err := NewBody([]maths.Vec2{a, b}, nil, []maths.Vec2i{{0, 1}})
	if err != nil {
		t.Fatalf("NewBody: %v", err)
	}
	return body
}

func TestRelaxUnstressedEdgesIsNoOp(t *testing.T) {
	b, err := NewBody(
		[]maths.Vec2{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
		nil,
		[]maths.Vec2i{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}, {1, 3}},
	)
	if err != nil {
		t.Fatalf("NewBody: %v", err)
	}
	before := append([]maths.Vec2(nil), b.Points()...)
	for range 20 {
		b.relaxEdges()
	}
	for i := range before {
		if b.Points()[i] != before[i] {
			t.Fatalf("point %d moved from %v to %v", i, before[i], b.Points()[i])
		}
	}
}

func TestRelaxConvergesWithoutOvershoot(t *testing.T) {
	for _, stretch := range []float32{16, 25, 4, 0.5} {
		b := pairBody(t, maths.Vec2{0, 0}, maths.Vec2{10, 0})
		b.Points()[1] = maths.Vec2{stretch, 0}

		prevErr := math32.Abs(stretch - 10)
		for pass := range 3 {
			b.relaxEdges()
			d := b.Points()[0].Sub(b.Points()[1]).Len()
			errNow := math32.Abs(d - 10)
			if errNow > prevErr+1e-5 {
				t.Fatalf("stretch %v pass %d: error grew from %v to %v", stretch, pass, prevErr, errNow)
			}
			if errNow > 1e-4 {
				t.Fatalf("stretch %v pass %d: distance %v, want rest length 10", stretch, pass, d)
			}
			prevErr = errNow
		}
	}
}

func TestRelaxZeroLengthEdgeIsGuarded(t *testing.T) {
	b := pairBody(t, maths.Vec2{0, 0}, maths.Vec2{10, 0})
	b.Points()[1] = maths.Vec2{0, 0}

	b.relaxEdges()
	for i, p := range b.Points() {
		if !maths.Finite(p) {
			t.Fatalf("point %d became %v", i, p)
		}
	}
}

func TestIntegrateClampsBoundedBodies(t *testing.T) {
	cfg := DefaultConfig()

	b := pairBody(t, maths.Vec2{-50, 700}, maths.Vec2{900, -20})
	b.integrate(cfg.Gravity, cfg.Bounds)
	if got := b.Points()[0]; got != (maths.Vec2{0, 600}) {
		t.Fatalf("bounded point 0 = %v, want (0, 600)", got)
	}
	if got := b.Points()[1]; got != (maths.Vec2{800, 0}) {
		t.Fatalf("bounded point 1 = %v, want (800, 0)", got)
	}

	u := pairBody(t, maths.Vec2{-50, 700}, maths.Vec2{900, -20})
	u.SetBounded(false)
	u.integrate(cfg.Gravity, cfg.Bounds)
	if got := u.Points()[0]; got != (maths.Vec2{-50, 699.75}) {
		t.Fatalf("unbounded point 0 = %v, want (-50, 699.75)", got)
	}
}

func TestIntegrateCarriesVelocity(t *testing.T) {
	b := pairBody(t, maths.Vec2{1, 1}, maths.Vec2{5, 1})
	b.SetGravity(false)
	b.PrevPoints()[0] = maths.Vec2{0, 0}

	b.integrate(DefaultGravity, DefaultConfig().Bounds)
	if got := b.Points()[0]; got != (maths.Vec2{2, 2}) {
		t.Fatalf("point = %v, want (2, 2)", got)
	}
	if got := b.PrevPoints()[0]; got != (maths.Vec2{1, 1}) {
		t.Fatalf("previous = %v, want old current (1, 1)", got)
	}
	if got := b.Points()[1]; got != (maths.Vec2{5, 1}) {
		t.Fatalf("resting point without gravity moved to %v", got)
	}
}

func TestFallingBodyDescendsToFloor(t *testing.T) {
	w := NewWorld(DefaultConfig())
	b := pairBody(t, maths.Vec2{100, 100}, maths.Vec2{110, 100})
	w.Add(b)

	last := b.Points()[0][1]
	for step := range 60 {
		w.Step(1.0/60, input.State{})
		y := b.Points()[0][1]
		if y < 0 {
			t.Fatalf("step %d: y = %v fell through the floor", step, y)
		}
		if last > 0 && y >= last {
			t.Fatalf("step %d: y = %v did not decrease from %v", step, y, last)
		}
		if last == 0 && y != 0 {
			t.Fatalf("step %d: y = %v left the floor", step, y)
		}
		last = y
	}
	if last != 0 {
		t.Fatalf("after 60 steps y = %v, want resting on the floor", last)
	}
}
