package game

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snapshot is the immutable view of one tick's outcome, handed to the
// renderer and the engine loop. It shares no mutable state with the
// session: the body slice is a copy taken after the tick's mutation
// completed, so rendering never races the next tick.
type Snapshot struct {
	Tick   uint64
	Status Status

	Grid          core.Grid
	Body          []core.Position // Head first; nil while in the menu
	Facing        core.Direction
	PendingGrowth int

	Food Food

	Score      int
	SpeedLevel int
	HighScore  int

	// TickInterval is the sleep the engine uses before the next tick,
	// derived from the current speed level.
	TickInterval time.Duration

	Won       bool
	Collision CollisionKind // Valid only when Collided
	Collided  bool
	Quitting  bool
}

// snapshot captures the post-tick state.
func (s *Session) snapshot() Snapshot {
	snap := Snapshot{
		Tick:         s.tick,
		Status:       s.status,
		Grid:         s.grid,
		Score:        s.score.Score,
		SpeedLevel:   s.score.SpeedLevel,
		HighScore:    s.highScore,
		TickInterval: s.rules.Speed.IntervalForLevel(s.score.SpeedLevel),
		Won:          s.won,
		Collision:    s.collision,
		Collided:     s.collided,
		Quitting:     s.quitting,
	}

	if s.snake != nil {
		snap.Body = s.snake.Body()
		snap.Facing = s.snake.Facing()
		snap.PendingGrowth = s.snake.PendingGrowth()
		snap.Food = s.food
	}

	return snap
}

// Snapshot returns the current state without advancing the simulation.
func (s *Session) Snapshot() Snapshot {
	return s.snapshot()
}
