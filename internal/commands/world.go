package commands

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"jelly-engine/internal/physics"
)

// WorldControl is the part of *physics.World the console can drive.
type WorldControl interface {
	Config() physics.Config
	SetGravity(g float32)
	SetRelaxPasses(n int) error
	Stats() physics.Stats
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// RegisterWorld adds the physics tuning commands:
//
//	cmd gravity [-value 0.25]   show or set the per-frame gravity impulse
//	cmd passes [-n 5]           show or set relaxation passes per frame
//	cmd stats                   collision counters from the last frame
//
// Output lines go to emit.
func RegisterWorld(r *Registry, w WorldControl, emit func(string)) {
	gravity := newFlagSet("gravity")
	value := gravity.Float64("value", -1, "gravity impulse per frame")
	r.Register("gravity", gravity, func() error {
		if *value >= 0 {
			w.SetGravity(float32(*value))
		}
		emit(fmt.Sprintf("gravity %v", w.Config().Gravity))
		*value = -1
		return nil
	})

	passes := newFlagSet("passes")
	n := passes.Int("n", 0, "relaxation passes per frame")
	r.Register("passes", passes, func() error {
		defer func() { *n = 0 }()
		if *n != 0 {
			if err := w.SetRelaxPasses(*n); err != nil {
				return err
			}
		}
		emit(fmt.Sprintf("passes %d", w.Config().RelaxPasses))
		return nil
	})

	stats := newFlagSet("stats")
	r.Register("stats", stats, func() error {
		s := w.Stats()
		emit(fmt.Sprintf("candidates %d tests %d contacts %d", s.Candidates, s.Tests, s.Contacts))
		return nil
	})
}

// RegisterToggle adds "cmd name" which flips *target, or sets it with -on=true/false.
func RegisterToggle(r *Registry, name string, target *bool, emit func(string)) {
	fs := newFlagSet(name)
	on := fs.String("on", "", "true or false; flips the setting when omitted")
	r.Register(name, fs, func() error {
		defer func() { *on = "" }()
		switch strings.ToLower(*on) {
		case "":
			*target = !*target
		case "true", "1":
			*target = true
		case "false", "0":
			*target = false
		default:
			return fmt.Errorf("%s: -on must be true or false, got %q", name, *on)
		}
		emit(fmt.Sprintf("%s %v", name, *target))
		return nil
	})
}

// RegisterHelp adds "cmd help", listing every registered command.
func RegisterHelp(r *Registry, emit func(string)) {
	r.Register("help", newFlagSet("help"), func() error {
		emit("commands: " + strings.Join(r.Names(), ", "))
		return nil
	})
}
