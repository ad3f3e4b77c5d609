// Package engine drives the fixed-tick game loop. It owns the input
// buffer, consumes it exactly once per tick, advances the session, and
// publishes an immutable snapshot after each tick.
package engine

import (
	"context"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// Engine couples one session with one input buffer. Input sources call
// Buffer().Record from any goroutine; the tick driver calls Tick from a
// single goroutine.
type Engine struct {
	session *game.Session
	buffer  *core.InputBuffer
	latest  game.Snapshot
}

// New creates an engine around a fresh session.
func New(session *game.Session) *Engine {
	return &Engine{
		session: session,
		buffer:  core.NewInputBuffer(),
		latest:  session.Snapshot(),
	}
}

// Buffer returns the input buffer events are recorded into. Safe for
// concurrent use with Tick.
func (e *Engine) Buffer() *core.InputBuffer {
	return e.buffer
}

// Tick runs one simulation step: it consumes the buffered input and
// advances the session. External tick drivers (the TUI timer, the
// headless Run loop) call this once per tick interval.
func (e *Engine) Tick() game.Snapshot {
	e.latest = e.session.Advance(e.buffer.Consume())
	return e.latest
}

// Snapshot returns the most recent tick's snapshot without advancing.
func (e *Engine) Snapshot() game.Snapshot {
	return e.latest
}

// Run drives the loop itself: tick, publish, then sleep for the interval
// the snapshot reports, which shrinks as the speed level rises. It
// returns when a Quit event terminates the session or the context is
// cancelled. The sleep between ticks is the loop's only blocking point.
func (e *Engine) Run(ctx context.Context, publish func(game.Snapshot)) error {
	timer := time.NewTimer(e.latest.TickInterval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}

		snap := e.Tick()
		if publish != nil {
			publish(snap)
		}
		if snap.Quitting {
			return nil
		}

		timer.Reset(snap.TickInterval)
	}
}
