package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// FoodKind distinguishes the two food variants.
type FoodKind int

const (
	// FoodNormal is the standard food item.
	FoodNormal FoodKind = iota
	// FoodBonus is a time-limited, higher-value variant that despawns if
	// not eaten within its lifetime.
	FoodBonus
)

// String returns a human-readable name for the food kind.
func (k FoodKind) String() string {
	if k == FoodBonus {
		return "bonus"
	}
	return "normal"
}

// Food is the item currently active on the board.
type Food struct {
	Position core.Position
	Kind     FoodKind
	// TicksRemaining counts down the lifetime of bonus food. Zero and
	// meaningless for normal food.
	TicksRemaining int
}

// FoodRules holds the tunable food parameters of one session.
type FoodRules struct {
	NormalPoints  int     // Score value of normal food
	BonusPoints   int     // Score value of bonus food
	BonusChance   float64 // Probability that a spawn produces bonus food
	BonusLifetime int     // Bonus food lifetime in ticks
}

// Points returns the score value granted when this food is eaten.
func (f Food) Points(rules FoodRules) int {
	if f.Kind == FoodBonus {
		return rules.BonusPoints
	}
	return rules.NormalPoints
}

// SpawnFood places a new food item on a uniformly random unoccupied cell.
// When forceNormal is set the spawn never produces bonus food (used when
// replacing an expired bonus).
//
// Fails with a CollisionNoSpace error when the occupied set covers the
// whole grid; callers treat that as a terminal win condition.
func SpawnFood(rng *rand.Rand, grid core.Grid, occupied func(core.Position) bool, rules FoodRules, forceNormal bool) (Food, error) {
	free := make([]core.Position, 0, grid.TotalCells())
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			p := core.Position{X: x, Y: y}
			if !occupied(p) {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		return Food{}, &CollisionError{Kind: CollisionNoSpace}
	}

	food := Food{Position: free[rng.Intn(len(free))]}
	if !forceNormal && rng.Float64() < rules.BonusChance {
		food.Kind = FoodBonus
		food.TicksRemaining = rules.BonusLifetime
	}
	return food, nil
}
