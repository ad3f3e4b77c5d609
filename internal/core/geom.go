// Package core provides the fundamental types for the snake engine:
// grid geometry, directions, input events, and the input buffer.
// It contains no external dependencies (especially no Bubble Tea) to keep
// game logic pure and testable.
package core

// Position is a single logical grid cell coordinate.
type Position struct {
	X, Y int
}

// Direction represents one of the four snake movement directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Vector returns the unit offset for one move in this direction.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Move returns the adjacent position one step in the given direction.
func (p Position) Move(d Direction) Position {
	dx, dy := d.Vector()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Grid is the immutable logical coordinate space of one game session.
// All positions produced by the engine satisfy 0 <= x < width, 0 <= y < height.
type Grid struct {
	width  int
	height int
}

// NewGrid creates a grid with the given dimensions.
// Dimensions are validated by the configuration layer before reaching here.
func NewGrid(width, height int) Grid {
	return Grid{width: width, height: height}
}

// Width returns the grid width in cells.
func (g Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g Grid) Height() int { return g.height }

// TotalCells returns the number of cells on the grid.
func (g Grid) TotalCells() int { return g.width * g.height }

// Contains reports whether the position lies on the grid.
func (g Grid) Contains(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}
