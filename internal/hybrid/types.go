package hybrid

import "math"

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// Zero returns the all-zero state of dimension n.
func Zero(n int) State {
	return make(State, n)
}

type Input []float64

func (u Input) Clone() Input {
	c := make(Input, len(u))
	copy(c, u)
	return c
}

// ZeroInput returns the all-zero input of dimension n.
func ZeroInput(n int) Input {
	return make(Input, n)
}

// Trajectory holds aligned seed-trajectory samples. The three slices
// always have equal length and Times is non-decreasing; both invariants
// are maintained by Append. The caller owns the container and may reuse
// it across generation calls.
type Trajectory struct {
	Times  []float64
	States []State
	Inputs []Input
}

func (tr *Trajectory) Len() int { return len(tr.Times) }

// Reset empties the trajectory but keeps the backing arrays for reuse.
func (tr *Trajectory) Reset() {
	tr.Times = tr.Times[:0]
	tr.States = tr.States[:0]
	tr.Inputs = tr.Inputs[:0]
}

// Append adds one sample. The state and input are copied, so callers
// (and providers holding fixed operating values) may keep mutating
// their own vectors afterwards.
func (tr *Trajectory) Append(t float64, x State, u Input) {
	tr.Times = append(tr.Times, t)
	tr.States = append(tr.States, x.Clone())
	tr.Inputs = append(tr.Inputs, u.Clone())
}

// LastState returns the final state sample, or nil if empty.
func (tr *Trajectory) LastState() State {
	if len(tr.States) == 0 {
		return nil
	}
	return tr.States[len(tr.States)-1]
}

func (tr *Trajectory) Clone() *Trajectory {
	c := &Trajectory{
		Times:  make([]float64, len(tr.Times)),
		States: make([]State, 0, len(tr.States)),
		Inputs: make([]Input, 0, len(tr.Inputs)),
	}
	copy(c.Times, tr.Times)
	for _, x := range tr.States {
		c.States = append(c.States, x.Clone())
	}
	for _, u := range tr.Inputs {
		c.Inputs = append(c.Inputs, u.Clone())
	}
	return c
}
