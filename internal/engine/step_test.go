package engine

import (
	"testing"
	"time"
)

func TestAccumulatorAdvance(t *testing.T) {
	tests := []struct {
		name  string
		step  time.Duration
		dts   []time.Duration
		steps int
	}{
		{"below step", 100 * time.Millisecond, []time.Duration{99 * time.Millisecond}, 0},
		{"exact step", 100 * time.Millisecond, []time.Duration{100 * time.Millisecond}, 1},
		{"carry over", 100 * time.Millisecond, []time.Duration{60 * time.Millisecond, 60 * time.Millisecond}, 1},
		{"catch up", 100 * time.Millisecond, []time.Duration{350 * time.Millisecond}, 3},
		{"zero step", 0, []time.Duration{time.Second}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Accumulator{Step: tt.step}
			total := 0
			for _, dt := range tt.dts {
				total += a.Advance(dt, func() bool { return true })
			}
			if total != tt.steps {
				t.Errorf("steps = %d, want %d", total, tt.steps)
			}
		})
	}
}

func TestAccumulatorStopsWhenStepFails(t *testing.T) {
	a := Accumulator{Step: 10 * time.Millisecond}
	calls := 0
	n := a.Advance(100*time.Millisecond, func() bool {
		calls++
		return calls < 2
	})
	if n != 2 || calls != 2 {
		t.Errorf("n = %d calls = %d, want 2", n, calls)
	}
}

func TestAccumulatorReset(t *testing.T) {
	a := Accumulator{Step: 100 * time.Millisecond}
	a.Advance(90*time.Millisecond, func() bool { return true })
	a.Reset()
	if n := a.Advance(20*time.Millisecond, func() bool { return true }); n != 0 {
		t.Errorf("steps after Reset = %d, want 0", n)
	}
	a.SetStep(10 * time.Millisecond)
	if n := a.Advance(0, func() bool { return true }); n != 2 {
		t.Errorf("steps after SetStep = %d, want 2", n)
	}
}
