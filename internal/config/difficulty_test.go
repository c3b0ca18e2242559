package config

import (
	"testing"
	"time"
)

func TestDifficultyLevel(t *testing.T) {
	tests := []struct {
		name  string
		cfg   DifficultyConfig
		score int
		steps int
		want  float64
	}{
		{"disabled", DifficultyConfig{Enabled: false, InitialLevel: 0.7}, 1000, 0, 0},
		{"none keeps initial", DifficultyConfig{Enabled: true, InitialLevel: 0.3, Progression: ProgressionConfig{Type: "none"}}, 1000, 0, 0.3},
		{"score half", DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: "score", MaxAt: 100}}, 50, 0, 0.5},
		{"score capped", DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: "score", MaxAt: 100}}, 500, 0, 1},
		{"steps", DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: "steps", MaxAt: 10}}, 0, 5, 0.5},
		{"from initial", DifficultyConfig{Enabled: true, InitialLevel: 0.5, Progression: ProgressionConfig{Type: "score", MaxAt: 100}}, 50, 0, 0.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewDifficultyManager(tt.cfg).Level(tt.score, tt.steps)
			if got != tt.want {
				t.Errorf("Level() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDifficultyInterval(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 1000},
	})
	slow, fast := 500*time.Millisecond, 100*time.Millisecond

	if got := dm.Interval(slow, fast, 0, 0); got != slow {
		t.Errorf("Interval at level 0 = %v, want %v", got, slow)
	}
	if got := dm.Interval(slow, fast, 500, 0); got != 300*time.Millisecond {
		t.Errorf("Interval at level 0.5 = %v, want 300ms", got)
	}
	if got := dm.Interval(slow, fast, 5000, 0); got != fast {
		t.Errorf("Interval at level 1 = %v, want %v", got, fast)
	}

	off := NewDifficultyManager(DefaultTetrisConfig().Difficulty)
	if got := off.Interval(slow, fast, 5000, 0); got != slow {
		t.Errorf("disabled Interval = %v, want %v", got, slow)
	}
}
