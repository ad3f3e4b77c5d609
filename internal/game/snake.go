package game

import "github.com/vovakirdan/tui-snake/internal/core"

// Snake is the player body: an ordered sequence of grid cells with the
// head at index 0, a facing direction, and a counter of growth still owed
// from food already eaten.
type Snake struct {
	body          []core.Position
	facing        core.Direction
	pendingGrowth int
}

// NewSnake creates a snake of the given length with its head at head,
// facing dir. The body extends opposite the facing direction, so the
// first move is always safe.
func NewSnake(head core.Position, dir core.Direction, length int) *Snake {
	if length < 1 {
		length = 1
	}

	body := make([]core.Position, length)
	back := dir.Opposite()
	seg := head
	for i := range body {
		body[i] = seg
		seg = seg.Move(back)
	}

	return &Snake{body: body, facing: dir}
}

// Head returns the current head position.
func (s *Snake) Head() core.Position { return s.body[0] }

// Tail returns the current tail position.
func (s *Snake) Tail() core.Position { return s.body[len(s.body)-1] }

// Len returns the body length in cells.
func (s *Snake) Len() int { return len(s.body) }

// Facing returns the committed movement direction.
func (s *Snake) Facing() core.Direction { return s.facing }

// PendingGrowth returns the number of growth units still owed.
func (s *Snake) PendingGrowth() int { return s.pendingGrowth }

// Body returns a copy of the body cells, head first.
func (s *Snake) Body() []core.Position {
	out := make([]core.Position, len(s.body))
	copy(out, s.body)
	return out
}

// Occupies reports whether any body segment sits on p.
func (s *Snake) Occupies(p core.Position) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Turn updates the facing direction. This is the authoritative reversal
// guard: a turn to the exact opposite of the current facing is rejected
// as a no-op, regardless of how many raw events the input buffer saw.
// Returns whether the turn was accepted.
func (s *Snake) Turn(d core.Direction) bool {
	if d == s.facing.Opposite() {
		return false
	}
	s.facing = d
	return true
}

// Advance moves the snake one cell in its facing direction.
//
// When grow is positive the move ate food worth that many growth units:
// the tail is kept this tick and grow units are owed, spent one per
// subsequent tick. Moving into the cell the tail is vacating this
// same tick is legal.
//
// A failed move returns a *CollisionError and leaves the body unchanged.
func (s *Snake) Advance(grid core.Grid, grow int) error {
	newHead := s.body[0].Move(s.facing)

	if !grid.Contains(newHead) {
		return &CollisionError{Kind: CollisionWall, At: newHead}
	}

	// The tail vacates its cell this tick unless growth keeps it in place,
	// so exclude it from the self-collision check in that case.
	tailVacates := grow == 0 && s.pendingGrowth == 0
	checkLen := len(s.body)
	if tailVacates {
		checkLen--
	}
	for i := 0; i < checkLen; i++ {
		if s.body[i] == newHead {
			return &CollisionError{Kind: CollisionSelf, At: newHead}
		}
	}

	s.body = append([]core.Position{newHead}, s.body...)

	switch {
	case grow > 0:
		// Food eaten: keep the tail and owe the rest.
		s.pendingGrowth += grow
	case s.pendingGrowth > 0:
		// Spend one owed growth unit: keep the tail.
		s.pendingGrowth--
	default:
		s.body = s.body[:len(s.body)-1]
	}

	return nil
}
