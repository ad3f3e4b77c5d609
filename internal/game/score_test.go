package game

import (
	"testing"
	"time"
)

func TestSpeedRulesLevelTable(t *testing.T) {
	rules := DefaultRules().Speed

	tests := []struct {
		score    int
		expected int
	}{
		{0, 0},
		{4, 0},
		{5, 1},
		{9, 1},
		{10, 2},
		{34, 6},
		{35, 7},
		{1000, 7}, // capped once the interval floor is reached
	}

	for _, tc := range tests {
		if got := rules.LevelForScore(tc.score); got != tc.expected {
			t.Errorf("LevelForScore(%d) = %d, expected %d", tc.score, got, tc.expected)
		}
	}
}

func TestSpeedRulesIntervalMonotone(t *testing.T) {
	rules := DefaultRules().Speed

	prev := rules.IntervalForLevel(0)
	if prev != 200*time.Millisecond {
		t.Errorf("level 0 interval = %v, expected 200ms", prev)
	}
	for level := 1; level <= 10; level++ {
		cur := rules.IntervalForLevel(level)
		if cur > prev {
			t.Errorf("interval grew from %v to %v at level %d", prev, cur, level)
		}
		if cur < rules.MinInterval {
			t.Errorf("interval %v below floor %v at level %d", cur, rules.MinInterval, level)
		}
		prev = cur
	}
	if rules.IntervalForLevel(100) != rules.MinInterval {
		t.Errorf("deep level interval = %v, expected floor %v", rules.IntervalForLevel(100), rules.MinInterval)
	}
}

func TestScoreStateMonotonic(t *testing.T) {
	rules := DefaultRules().Speed
	var s ScoreState

	prevScore, prevLevel := 0, 0
	for i := 0; i < 50; i++ {
		s.Apply(1, rules)
		if s.Score < prevScore {
			t.Fatalf("score decreased from %d to %d", prevScore, s.Score)
		}
		if s.SpeedLevel < prevLevel {
			t.Fatalf("speed level decreased from %d to %d", prevLevel, s.SpeedLevel)
		}
		prevScore, prevLevel = s.Score, s.SpeedLevel
	}

	if s.Score != 50 {
		t.Errorf("Score = %d, expected 50", s.Score)
	}
	if s.SpeedLevel != rules.LevelForScore(50) {
		t.Errorf("SpeedLevel = %d, expected %d", s.SpeedLevel, rules.LevelForScore(50))
	}
}
