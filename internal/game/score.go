package game

import "time"

// ScoreState tracks the session score and the speed level derived from
// it. Both are monotonically non-decreasing within a session.
type ScoreState struct {
	Score      int
	SpeedLevel int
}

// SpeedRules maps score thresholds to tick intervals. Leveling up shortens
// the interval between ticks; nothing else changes with level.
type SpeedRules struct {
	BaseInterval   time.Duration // Interval at level 0
	MinInterval    time.Duration // Floor the interval never drops below
	IntervalStep   time.Duration // Reduction per speed level
	PointsPerLevel int           // Score needed per level increase
}

// MaxLevel returns the level at which the interval reaches its floor.
// Levels beyond it change nothing, so LevelForScore caps there.
func (r SpeedRules) MaxLevel() int {
	if r.IntervalStep <= 0 || r.BaseInterval <= r.MinInterval {
		return 0
	}
	return int((r.BaseInterval - r.MinInterval) / r.IntervalStep)
}

// LevelForScore returns the speed level for a score via the fixed
// threshold table: one level per PointsPerLevel points, capped at MaxLevel.
func (r SpeedRules) LevelForScore(score int) int {
	if r.PointsPerLevel <= 0 {
		return 0
	}
	level := score / r.PointsPerLevel
	if max := r.MaxLevel(); level > max {
		return max
	}
	return level
}

// IntervalForLevel returns the tick interval for a speed level, clamped
// to the configured floor.
func (r SpeedRules) IntervalForLevel(level int) time.Duration {
	interval := r.BaseInterval - time.Duration(level)*r.IntervalStep
	if interval < r.MinInterval {
		return r.MinInterval
	}
	return interval
}

// Apply adds points to the score and recomputes the speed level.
// The level only ever moves up because the score never decreases.
func (s *ScoreState) Apply(points int, rules SpeedRules) {
	s.Score += points
	if level := rules.LevelForScore(s.Score); level > s.SpeedLevel {
		s.SpeedLevel = level
	}
}
