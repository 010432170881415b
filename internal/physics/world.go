package physics

import (
	"fmt"

	"jelly-engine/internal/input"
	"jelly-engine/internal/maths"
)

const (
	// DefaultGravity is the downward displacement added to every gravity-enabled point each frame.
	DefaultGravity = 0.25
	// DefaultRelaxPasses is how many {edges, centres, collisions} passes run per frame.
	// Five was found empirically to keep the game's paddle and ball stable.
	DefaultRelaxPasses = 5
	DefaultWidth       = 800
	DefaultHeight      = 600
)

// Config holds the world-wide tuning. Bounds is the rectangle bounded bodies are clamped into.
type Config struct {
	Gravity     float32
	Bounds      AABB
	RelaxPasses int
}

// DefaultConfig returns gravity 0.25 per frame, an 800×600 world and five relaxation passes.
func DefaultConfig() Config {
	return Config{
		Gravity:     DefaultGravity,
		Bounds:      AABB{Max: maths.Vec2{DefaultWidth, DefaultHeight}},
		RelaxPasses: DefaultRelaxPasses,
	}
}

// Stats describes the collision work done during the most recent Step.
type Stats struct {
	Candidates int // ordered pairs sharing a collision layer
	Tests      int // of those, pairs whose boxes overlapped and reached the narrow phase
	Contacts   int // contacts found and resolved
}

// World holds the bodies and runs the per-frame fixed-point iteration.
// It is single-threaded; hooks run synchronously inside Step.
type World struct {
	cfg    Config
	bodies []*Body
	stats  Stats
	// ordered pairs whose collision hooks already fired during the current Step
	fired map[pair]struct{}
}

type pair struct{ a, b *Body }

// NewWorld returns an empty world. A non-positive RelaxPasses falls back to the default.
func NewWorld(cfg Config) *World {
	if cfg.RelaxPasses < 1 {
		cfg.RelaxPasses = DefaultRelaxPasses
	}
	return &World{cfg: cfg, fired: make(map[pair]struct{})}
}

// Add appends a body. Bodies are never removed; insertion order fixes the pair sweep order.
func (w *World) Add(b *Body) {
	w.bodies = append(w.bodies, b)
}

// Bodies returns the registered bodies in insertion order. Callers must not modify the slice.
func (w *World) Bodies() []*Body {
	return w.bodies
}

func (w *World) Len() int {
	return len(w.bodies)
}

func (w *World) Config() Config {
	return w.cfg
}

// SetGravity changes the per-frame gravity impulse.
func (w *World) SetGravity(g float32) {
	w.cfg.Gravity = g
}

// SetRelaxPasses changes the number of passes per frame. n must be at least 1.
func (w *World) SetRelaxPasses(n int) error {
	if n < 1 {
		return fmt.Errorf("relax passes must be >= 1, got %d", n)
	}
	w.cfg.RelaxPasses = n
	return nil
}

// Stats returns the collision counters for the last Step.
func (w *World) Stats() Stats {
	return w.stats
}

// Step advances one frame: step hooks, then Verlet integration, then RelaxPasses rounds of
// edge relaxation, centre/box refresh and the pairwise collision sweep. Every phase finishes
// for all bodies before the next begins.
func (w *World) Step(dt float64, in input.State) {
	w.stats = Stats{}
	clear(w.fired)

	for _, b := range w.bodies {
		b.step(dt, in)
	}
	for _, b := range w.bodies {
		b.integrate(w.cfg.Gravity, w.cfg.Bounds)
	}

	for range w.cfg.RelaxPasses {
		for _, b := range w.bodies {
			b.relaxEdges()
		}
		for _, b := range w.bodies {
			b.updateCenter()
		}
		w.collide()
	}
}

// collide tests every ordered pair once. The contact is resolved on every pass, but the first
// body's hooks registered for the second body fire only on the pair's first contact of the frame.
func (w *World) collide() {
	for _, a := range w.bodies {
		for _, b := range w.bodies {
			if a == b || a.mask&b.mask == 0 {
				continue
			}
			w.stats.Candidates++
			if !a.bbox.Overlaps(b.bbox) {
				continue
			}
			w.stats.Tests++
			c, ok := Detect(a, b)
			if !ok {
				continue
			}
			w.stats.Contacts++
			Resolve(c)
			if _, done := w.fired[pair{a, b}]; done {
				continue
			}
			w.fired[pair{a, b}] = struct{}{}
			a.dispatchCollisions(b)
		}
	}
}
