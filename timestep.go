package voxphys

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// FixedTimestep turns variable frame time into a whole number of fixed ticks.
type FixedTimestep struct {
	Step        time.Duration
	accumulated time.Duration
}

func NewFixedTimestep(tickRate float64) *FixedTimestep {
	return &FixedTimestep{Step: time.Duration(float64(time.Second) / tickRate)}
}

// Accumulate adds elapsed time and returns how many ticks are due.
func (ts *FixedTimestep) Accumulate(elapsed time.Duration) int {
	if elapsed > 0 {
		ts.accumulated += elapsed
	}
	if ts.Step <= 0 {
		return 0
	}
	return int(ts.accumulated / ts.Step)
}

// Consume removes n ticks from the accumulator.
func (ts *FixedTimestep) Consume(n int) {
	ts.accumulated -= time.Duration(n) * ts.Step
	if ts.accumulated < 0 {
		ts.accumulated = 0
	}
}

// Discard drops everything but the current partial tick and returns the
// dropped time.
func (ts *FixedTimestep) Discard() time.Duration {
	if ts.Step <= 0 {
		return 0
	}
	keep := ts.accumulated % ts.Step
	dropped := ts.accumulated - keep
	ts.accumulated = keep
	return dropped
}

// Overstep is how far into the next tick the accumulator is, in [0,1).
func (ts *FixedTimestep) Overstep() float32 {
	if ts.Step <= 0 {
		return 0
	}
	return float32(float64(ts.accumulated%ts.Step) / float64(ts.Step))
}

// Interpolate blends two transforms for rendering between ticks.
func Interpolate(prev, cur Transform, alpha float32) Transform {
	return Transform{
		Position: prev.Position.Add(cur.Position.Sub(prev.Position).Mul(alpha)),
		Rotation: mgl32.QuatNlerp(prev.Rotation, cur.Rotation, alpha),
		Scale:    prev.Scale.Add(cur.Scale.Sub(prev.Scale).Mul(alpha)),
	}
}
