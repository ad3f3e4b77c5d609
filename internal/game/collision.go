// Package game implements the deterministic snake simulation: the snake
// body model, food spawning, scoring, and the per-tick session state
// machine. It performs no I/O; randomness is injected so every session is
// reproducible from its seed.
package game

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// CollisionKind classifies why a move could not complete.
type CollisionKind int

const (
	// CollisionWall means the new head position left the grid.
	CollisionWall CollisionKind = iota
	// CollisionSelf means the new head position hit the snake's own body.
	CollisionSelf
	// CollisionNoSpace means the snake covers the whole grid and no food
	// can be placed. Treated as a win, not a defeat.
	CollisionNoSpace
)

// String returns a human-readable name for the collision kind.
func (k CollisionKind) String() string {
	switch k {
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	case CollisionNoSpace:
		return "no-space"
	default:
		return "unknown"
	}
}

// CollisionError reports a terminal game outcome. It is a game-logic
// result, not a program error: every collision ends the session.
type CollisionError struct {
	Kind CollisionKind
	At   core.Position
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("game: %s collision at (%d, %d)", e.Kind, e.At.X, e.At.Y)
}
