package game

import (
	"errors"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Status is the session state machine position.
type Status int

const (
	StatusMenu Status = iota
	StatusPlaying
	StatusPaused
	StatusGameOver
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusMenu:
		return "menu"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Rules bundles every tunable parameter of the simulation. Built once by
// the configuration layer and immutable afterwards.
type Rules struct {
	StartLength int
	Food        FoodRules
	Speed       SpeedRules
}

// DefaultRules returns the classic ruleset.
func DefaultRules() Rules {
	return Rules{
		StartLength: 3,
		Food: FoodRules{
			NormalPoints:  1,
			BonusPoints:   5,
			BonusChance:   0.125,
			BonusLifetime: 30,
		},
		Speed: SpeedRules{
			BaseInterval:   200 * time.Millisecond,
			MinInterval:    60 * time.Millisecond,
			IntervalStep:   20 * time.Millisecond,
			PointsPerLevel: 5,
		},
	}
}

// Session owns the state of one game: snake, food, score, and status.
// It starts in the menu; Confirm begins play. All mutation happens inside
// Advance, exactly once per tick.
type Session struct {
	grid  core.Grid
	rules Rules
	rng   *rand.Rand

	tick      uint64
	status    Status
	snake     *Snake
	food      Food
	score     ScoreState
	won       bool
	quitting  bool
	collision CollisionKind
	collided  bool
	highScore int
}

// NewSession creates a session on the given grid. The rng is the only
// randomness source the simulation uses, so a seeded source makes the
// whole session reproducible.
func NewSession(grid core.Grid, rules Rules, rng *rand.Rand) *Session {
	return &Session{
		grid:   grid,
		rules:  rules,
		rng:    rng,
		status: StatusMenu,
	}
}

// SetHighScore supplies the persisted best score for HUD display.
// The session never writes it; persistence is the caller's concern.
func (s *Session) SetHighScore(score int) {
	s.highScore = score
}

// Status returns the current state machine position.
func (s *Session) Status() Status { return s.status }

// Quitting reports whether a Quit event terminated the session.
func (s *Session) Quitting() bool { return s.quitting }

// Advance applies one tick's committed input and, while playing, runs the
// tick transition: turn, move, collide or eat, then age bonus food.
// It returns the post-tick snapshot for the renderer.
func (s *Session) Advance(in core.TickInput) Snapshot {
	s.tick++

	if in.HasControl {
		s.handleControl(in.Control)
	}

	if s.status == StatusPlaying && !s.quitting {
		s.step(in)
	}

	return s.snapshot()
}

// handleControl applies a control event according to the state machine.
// Quit is valid from any state; Pause toggles Playing <-> Paused; Confirm
// starts a new game from the menu and returns to it from game over.
func (s *Session) handleControl(e core.ControlEvent) {
	switch e {
	case core.ControlQuit:
		s.quitting = true
	case core.ControlPause:
		switch s.status {
		case StatusPlaying:
			s.status = StatusPaused
		case StatusPaused:
			s.status = StatusPlaying
		}
	case core.ControlConfirm:
		switch s.status {
		case StatusMenu:
			s.start()
		case StatusGameOver:
			s.status = StatusMenu
		}
	}
}

// start begins a fresh game: new snake, new food, zeroed score.
func (s *Session) start() {
	head := core.Position{X: s.grid.Width() / 2, Y: s.grid.Height() / 2}
	s.snake = NewSnake(head, core.DirRight, s.rules.StartLength)
	s.score = ScoreState{}
	s.won = false
	s.collided = false

	food, err := SpawnFood(s.rng, s.grid, s.snake.Occupies, s.rules.Food, false)
	if err != nil {
		// A start-length snake covering the whole grid is a degenerate
		// configuration; treat it like the saturated-grid win.
		s.endGame(CollisionNoSpace)
		return
	}
	s.food = food
	s.status = StatusPlaying
}

// step runs the playing-state tick transition.
func (s *Session) step(in core.TickInput) {
	if in.HasDir {
		s.snake.Turn(in.Dir)
	}

	eats := s.snake.Head().Move(s.snake.Facing()) == s.food.Position
	grow := 0
	if eats {
		grow = s.food.Points(s.rules.Food)
	}

	if err := s.snake.Advance(s.grid, grow); err != nil {
		var cerr *CollisionError
		if errors.As(err, &cerr) {
			s.endGame(cerr.Kind)
		}
		return
	}

	if eats {
		s.score.Apply(s.food.Points(s.rules.Food), s.rules.Speed)
		food, err := SpawnFood(s.rng, s.grid, s.snake.Occupies, s.rules.Food, false)
		if err != nil {
			s.endGame(CollisionNoSpace)
			return
		}
		s.food = food
	}

	s.ageBonusFood()
}

// ageBonusFood decrements the bonus lifetime and, at zero, replaces the
// expired bonus with a normal food in the same tick.
func (s *Session) ageBonusFood() {
	if s.food.Kind != FoodBonus {
		return
	}

	s.food.TicksRemaining--
	if s.food.TicksRemaining > 0 {
		return
	}

	// The replacement never reappears on the just-expired cell.
	expired := s.food.Position
	occupied := func(p core.Position) bool {
		return p == expired || s.snake.Occupies(p)
	}
	food, err := SpawnFood(s.rng, s.grid, occupied, s.rules.Food, true)
	if err != nil {
		s.endGame(CollisionNoSpace)
		return
	}
	s.food = food
}

// endGame freezes the session. A saturated grid counts as a win; wall and
// self collisions end the game as a defeat.
func (s *Session) endGame(kind CollisionKind) {
	s.status = StatusGameOver
	s.collision = kind
	s.collided = true
	s.won = kind == CollisionNoSpace
	if s.score.Score > s.highScore {
		s.highScore = s.score.Score
	}
}
