package engine

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

func fastRules() game.Rules {
	rules := game.DefaultRules()
	rules.Speed.BaseInterval = time.Millisecond
	rules.Speed.MinInterval = time.Millisecond
	return rules
}

func newTestEngine(seed int64) *Engine {
	session := game.NewSession(core.NewGrid(12, 12), fastRules(), rand.New(rand.NewSource(seed)))
	return New(session)
}

func TestEngineConsumesBufferOncePerTick(t *testing.T) {
	e := newTestEngine(1)

	e.Buffer().Record(core.ControlInput(core.ControlConfirm))
	snap := e.Tick()
	if snap.Status != game.StatusPlaying {
		t.Fatalf("status = %v after confirm tick, expected playing", snap.Status)
	}

	// Burst of direction events inside one tick window: only the last
	// one is committed, so the snake turns once.
	e.Buffer().Record(core.DirectionInput(core.DirUp))
	e.Buffer().Record(core.DirectionInput(core.DirDown))
	snap = e.Tick()
	if snap.Facing != core.DirDown {
		t.Errorf("facing = %v, expected down (last write wins)", snap.Facing)
	}

	// The next tick sees an empty buffer and keeps moving down.
	snap = e.Tick()
	if snap.Facing != core.DirDown {
		t.Errorf("facing = %v on empty-buffer tick, expected down", snap.Facing)
	}
}

func TestEngineReversalBurstDoesNotCollapseMoves(t *testing.T) {
	e := newTestEngine(2)
	e.Buffer().Record(core.ControlInput(core.ControlConfirm))
	e.Tick()

	// Facing right; a left+right burst within one tick commits only
	// right, so no 180-degree reversal can slip through.
	e.Buffer().Record(core.DirectionInput(core.DirLeft))
	e.Buffer().Record(core.DirectionInput(core.DirRight))
	snap := e.Tick()

	if snap.Status != game.StatusPlaying {
		t.Fatalf("status = %v, expected playing", snap.Status)
	}
	if snap.Facing != core.DirRight {
		t.Errorf("facing = %v, expected right", snap.Facing)
	}
}

func TestEngineSnapshotIsStable(t *testing.T) {
	e := newTestEngine(3)
	e.Buffer().Record(core.ControlInput(core.ControlConfirm))
	first := e.Tick()

	// Snapshot() does not advance the simulation.
	again := e.Snapshot()
	if first.Tick != again.Tick {
		t.Errorf("Snapshot() advanced the tick: %d vs %d", first.Tick, again.Tick)
	}

	// Mutating the returned body copy never leaks into the session.
	if len(first.Body) > 0 {
		first.Body[0] = core.Position{X: -1, Y: -1}
		if e.Snapshot().Body[0] == (core.Position{X: -1, Y: -1}) {
			t.Error("snapshot body aliases session state")
		}
	}
}

func TestEngineRunStopsOnQuit(t *testing.T) {
	e := newTestEngine(4)

	done := make(chan error, 1)
	ticks := make(chan game.Snapshot, 64)
	go func() {
		done <- e.Run(context.Background(), func(s game.Snapshot) {
			select {
			case ticks <- s:
			default:
			}
		})
	}()

	// Let a few ticks pass in the menu, then quit.
	select {
	case <-ticks:
	case <-time.After(time.Second):
		t.Fatal("engine produced no ticks")
	}
	e.Buffer().Record(core.ControlInput(core.ControlQuit))

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() = %v, expected nil after quit", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run() did not stop after quit")
	}
}

func TestEngineRunStopsOnContextCancel(t *testing.T) {
	e := newTestEngine(5)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- e.Run(ctx, nil)
	}()

	cancel()
	select {
	case err := <-done:
		if err != context.Canceled {
			t.Fatalf("Run() = %v, expected context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run() did not stop after cancellation")
	}
}
