package engine

import "time"

// Accumulator turns variable frame times into a fixed number of discrete
// steps: elapsed time accumulates and one step runs per whole Step.
type Accumulator struct {
	Step time.Duration
	acc  time.Duration
}

// Reset drops any accumulated time.
func (a *Accumulator) Reset() {
	a.acc = 0
}

// SetStep changes the step length and keeps the accumulated time.
func (a *Accumulator) SetStep(step time.Duration) {
	a.Step = step
}

// Advance adds dt and runs step once per whole Step while step returns true.
// It returns the number of steps run.
func (a *Accumulator) Advance(dt time.Duration, step func() bool) int {
	if a.Step <= 0 {
		return 0
	}
	a.acc += dt
	n := 0
	for a.acc >= a.Step {
		a.acc -= a.Step
		n++
		if !step() {
			break
		}
	}
	return n
}
