package core

import "sync"

// ControlEvent is a non-direction input event.
type ControlEvent int

const (
	ControlPause ControlEvent = iota + 1
	ControlQuit
	ControlConfirm
)

// String returns a human-readable name for the control event.
func (e ControlEvent) String() string {
	switch e {
	case ControlPause:
		return "pause"
	case ControlQuit:
		return "quit"
	case ControlConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}

// InputKind discriminates GameInput variants.
type InputKind int

const (
	InputDirection InputKind = iota
	InputControl
)

// GameInput is a normalized input event, regardless of whether a keyboard
// or a controller produced it. It is either a direction change or a
// control event.
type GameInput struct {
	Kind    InputKind
	Dir     Direction    // valid when Kind == InputDirection
	Control ControlEvent // valid when Kind == InputControl
}

// DirectionInput builds a direction-change input event.
func DirectionInput(d Direction) GameInput {
	return GameInput{Kind: InputDirection, Dir: d}
}

// ControlInput builds a control input event.
func ControlInput(e ControlEvent) GameInput {
	return GameInput{Kind: InputControl, Control: e}
}

// TickInput is the input committed for a single simulation tick: at most
// one direction and at most one control event.
type TickInput struct {
	Dir        Direction
	HasDir     bool
	Control    ControlEvent
	HasControl bool
}

// InputBuffer decouples asynchronous input arrival from the synchronous
// tick. It holds at most one pending direction and one pending control
// event; later events overwrite earlier ones in the same tick window
// (last-write-wins). Reversal checking is not done here - the buffer does
// not know snake state, so the snake filters illegal turns at commit time.
//
// Record may be called concurrently with Consume; a mutex-guarded slot is
// all the synchronization this needs.
type InputBuffer struct {
	mu      sync.Mutex
	dir     Direction
	hasDir  bool
	ctrl    ControlEvent
	hasCtrl bool
}

// NewInputBuffer creates an empty input buffer.
func NewInputBuffer() *InputBuffer {
	return &InputBuffer{}
}

// Record stores a normalized input event. Direction and control events
// occupy independent slots, each with last-write-wins semantics.
func (b *InputBuffer) Record(in GameInput) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch in.Kind {
	case InputDirection:
		b.dir = in.Dir
		b.hasDir = true
	case InputControl:
		b.ctrl = in.Control
		b.hasCtrl = true
	}
}

// Consume returns and clears both slots atomically with respect to Record.
// The engine loop calls this exactly once per tick; a second call without
// an intervening Record yields an empty TickInput.
func (b *InputBuffer) Consume() TickInput {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := TickInput{
		Dir:        b.dir,
		HasDir:     b.hasDir,
		Control:    b.ctrl,
		HasControl: b.hasCtrl,
	}
	b.hasDir = false
	b.hasCtrl = false
	return out
}
