package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"jelly-engine/internal/input"
)

// DefaultHoldTimeout is how long a key counts as held after its last key event. Terminals only
// report presses and auto-repeats, never releases, so this has to outlast the repeat delay.
const DefaultHoldTimeout = 300 * time.Millisecond

// Keys turns a stream of terminal key events into held/pressed/released snapshots.
type Keys struct {
	timeout  time.Duration
	lastSeen [input.KeyCount]time.Time
	tracker  input.Tracker
}

func NewKeys(timeout time.Duration) *Keys {
	if timeout <= 0 {
		timeout = DefaultHoldTimeout
	}
	return &Keys{timeout: timeout}
}

// MapKey translates a tcell key event to a game key.
func MapKey(ev *tcell.EventKey) (input.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.KeyUp, true
	case tcell.KeyDown:
		return input.KeyDown, true
	case tcell.KeyLeft:
		return input.KeyLeft, true
	case tcell.KeyRight:
		return input.KeyRight, true
	case tcell.KeyEnter:
		return input.KeyEnter, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return input.KeySpace, true
		case 'w', 'k':
			return input.KeyUp, true
		case 's', 'j':
			return input.KeyDown, true
		case 'a', 'h':
			return input.KeyLeft, true
		case 'd', 'l':
			return input.KeyRight, true
		}
	}
	return 0, false
}

// Press records a key event at now. Auto-repeats of a held key only extend the hold.
func (k *Keys) Press(key input.Key, now time.Time) {
	if key >= input.KeyCount {
		return
	}
	if !k.held(key, now) {
		k.tracker.Down(key)
	}
	k.lastSeen[key] = now
}

func (k *Keys) held(key input.Key, now time.Time) bool {
	seen := k.lastSeen[key]
	return !seen.IsZero() && now.Sub(seen) <= k.timeout
}

// Snapshot releases keys whose hold timed out and returns the frame state.
func (k *Keys) Snapshot(now time.Time) input.State {
	for key := input.Key(0); key < input.KeyCount; key++ {
		if !k.lastSeen[key].IsZero() && !k.held(key, now) {
			k.tracker.Up(key)
			k.lastSeen[key] = time.Time{}
		}
	}
	return k.tracker.Snapshot()
}
