package seed

import (
	"fmt"

	"github.com/arnav-shukla/switchseed/internal/hybrid"
)

// LinearInterpolation seeds with a straight-line ramp from the caller's
// initial state to the state operating point, holding the input
// operating point constant. It emits samples+1 evenly spaced samples.
// A nil initial state degrades to a constant trajectory at the
// operating point.
type LinearInterpolation struct {
	Binding
	stateOP hybrid.State
	inputOP hybrid.Input
	samples int
}

// NewLinearInterpolation builds a ramp provider with the given number
// of segments (samples >= 1). The vectors are copied.
func NewLinearInterpolation(stateOP hybrid.State, inputOP hybrid.Input, samples int) (*LinearInterpolation, error) {
	if samples < 1 {
		return nil, fmt.Errorf("interpolation needs at least 1 segment, got %d", samples)
	}
	return &LinearInterpolation{
		stateOP: stateOP.Clone(),
		inputOP: inputOP.Clone(),
		samples: samples,
	}, nil
}

func (p *LinearInterpolation) Clone() Provider {
	return &LinearInterpolation{
		Binding: p.Binding,
		stateOP: p.stateOP.Clone(),
		inputOP: p.inputOP.Clone(),
		samples: p.samples,
	}
}

func (p *LinearInterpolation) OperatingTrajectories(initialState hybrid.State, startTime, finalTime float64, out *hybrid.Trajectory, concat bool) error {
	if err := checkInterval(startTime, finalTime); err != nil {
		return err
	}
	from := initialState
	if from == nil {
		from = p.stateOP
	}
	if len(from) != len(p.stateOP) {
		return fmt.Errorf("%w: initial state dim %d, operating point dim %d", hybrid.ErrDimensionMismatch, len(from), len(p.stateOP))
	}

	if !concat {
		out.Reset()
	}

	x := make(hybrid.State, len(p.stateOP))
	for j := 0; j <= p.samples; j++ {
		a := float64(j) / float64(p.samples)
		t := startTime + a*(finalTime-startTime)
		for i := range x {
			x[i] = from[i] + a*(p.stateOP[i]-from[i])
		}
		out.Append(t, x, p.inputOP)
	}
	return nil
}
