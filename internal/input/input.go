package input

// Key identifies a key the game layer cares about. Front-ends translate their own key codes into these.
type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEnter
	KeyCount
)

// State is a read-only snapshot of the keyboard for one frame. It is passed by value into step hooks,
// so logic can never mutate what the input collaborator owns.
type State struct {
	held     [KeyCount]bool
	pressed  [KeyCount]bool
	released [KeyCount]bool
}

// Held reports whether k is down this frame (including frames after the initial press).
func (s State) Held(k Key) bool {
	return k < KeyCount && s.held[k]
}

// Pressed reports whether k went down since the previous snapshot.
func (s State) Pressed(k Key) bool {
	return k < KeyCount && s.pressed[k]
}

// Released reports whether k went up since the previous snapshot.
func (s State) Released(k Key) bool {
	return k < KeyCount && s.released[k]
}

// Tracker accumulates raw down/up events between frames and hands out snapshots.
// Pressed and released edges last exactly one snapshot; held persists until Up.
type Tracker struct {
	cur State
}

// Down records a key press.
func (t *Tracker) Down(k Key) {
	if k >= KeyCount {
		return
	}
	t.cur.pressed[k] = true
	t.cur.held[k] = true
	t.cur.released[k] = false
}

// Up records a key release.
func (t *Tracker) Up(k Key) {
	if k >= KeyCount {
		return
	}
	t.cur.pressed[k] = false
	t.cur.held[k] = false
	t.cur.released[k] = true
}

// Snapshot returns the state for the frame about to run and clears the one-frame edges.
func (t *Tracker) Snapshot() State {
	s := t.cur
	t.cur.pressed = [KeyCount]bool{}
	t.cur.released = [KeyCount]bool{}
	return s
}

// FromHeld builds a snapshot directly from polled key states (for front-ends that can query
// press/release edges themselves, e.g. raylib).
func FromHeld(held, pressed, released func(Key) bool) State {
	var s State
	for k := Key(0); k < KeyCount; k++ {
		s.held[k] = held(k)
		s.pressed[k] = pressed(k)
		s.released[k] = released(k)
	}
	return s
}
