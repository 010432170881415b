package physics

import "jelly-engine/internal/input"

// StepHook is per-body game logic run once per frame, before integration.
// dt is the wall time since the previous frame in seconds.
type StepHook interface {
	Step(b *Body, dt float64, in input.State)
}

// StepFunc adapts a plain function to StepHook.
type StepFunc func(b *Body, dt float64, in input.State)

func (f StepFunc) Step(b *Body, dt float64, in input.State) { f(b, dt, in) }

// CollisionHook reacts to a resolved contact between self (the body it was registered on)
// and other. It may mutate either body.
type CollisionHook interface {
	Collide(self, other *Body)
}

// CollisionFunc adapts a plain function to CollisionHook.
type CollisionFunc func(self, other *Body)

func (f CollisionFunc) Collide(self, other *Body) { f(self, other) }
