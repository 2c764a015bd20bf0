package seed

import (
	"github.com/arnav-shukla/switchseed/internal/hybrid"
)

// OperatingPoint is the simplest provider: a fixed state/input pair
// emitted as a two-sample bookend trajectory over any requested
// interval. It ignores the initial-state hint and never consults the
// mode lookup, even when the interval spans several modes; callers
// needing mode-aware seeding should use a different variant.
type OperatingPoint struct {
	Binding
	stateOP hybrid.State
	inputOP hybrid.Input
}

// NewOperatingPoint builds a provider around fixed operating values.
// The vectors are copied.
func NewOperatingPoint(stateOP hybrid.State, inputOP hybrid.Input) *OperatingPoint {
	return &OperatingPoint{
		stateOP: stateOP.Clone(),
		inputOP: inputOP.Clone(),
	}
}

// NewZeroOperatingPoint builds a provider with all-zero operating
// values of the given dimensions.
func NewZeroOperatingPoint(stateDim, inputDim int) *OperatingPoint {
	return NewOperatingPoint(hybrid.Zero(stateDim), hybrid.ZeroInput(inputDim))
}

// StatePoint returns a copy of the state operating point.
func (p *OperatingPoint) StatePoint() hybrid.State { return p.stateOP.Clone() }

// InputPoint returns a copy of the input operating point.
func (p *OperatingPoint) InputPoint() hybrid.Input { return p.inputOP.Clone() }

func (p *OperatingPoint) Clone() Provider {
	return &OperatingPoint{
		Binding: p.Binding,
		stateOP: p.stateOP.Clone(),
		inputOP: p.inputOP.Clone(),
	}
}

func (p *OperatingPoint) OperatingTrajectories(initialState hybrid.State, startTime, finalTime float64, out *hybrid.Trajectory, concat bool) error {
	if err := checkInterval(startTime, finalTime); err != nil {
		return err
	}
	if !concat {
		out.Reset()
	}
	out.Append(startTime, p.stateOP, p.inputOP)
	out.Append(finalTime, p.stateOP, p.inputOP)
	return nil
}
