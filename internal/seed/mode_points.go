package seed

import (
	"fmt"

	"github.com/arnav-shukla/switchseed/internal/hybrid"
)

// Point is a fixed state/input operating pair.
type Point struct {
	State hybrid.State
	Input hybrid.Input
}

func (pt Point) clone() Point {
	return Point{State: pt.State.Clone(), Input: pt.Input.Clone()}
}

// ModeOperatingPoints seeds with a different operating point per active
// subsystem. The active mode is sampled at the interval midpoint via
// the bound lookup; modes without an explicit entry fall back to the
// default point. Using an unbound instance is a fatal precondition
// failure, not a silent fallback.
type ModeOperatingPoints struct {
	Binding
	def    Point
	byMode map[int]Point
}

// NewModeOperatingPoints builds a mode-aware provider. All points are
// copied; byMode may be nil.
func NewModeOperatingPoints(def Point, byMode map[int]Point) *ModeOperatingPoints {
	p := &ModeOperatingPoints{
		def:    def.clone(),
		byMode: make(map[int]Point, len(byMode)),
	}
	for id, pt := range byMode {
		p.byMode[id] = pt.clone()
	}
	return p
}

func (p *ModeOperatingPoints) Clone() Provider {
	c := &ModeOperatingPoints{
		Binding: p.Binding,
		def:     p.def.clone(),
		byMode:  make(map[int]Point, len(p.byMode)),
	}
	for id, pt := range p.byMode {
		c.byMode[id] = pt.clone()
	}
	return c
}

// PointFor returns the operating point used for mode id.
func (p *ModeOperatingPoints) PointFor(id int) Point {
	if pt, ok := p.byMode[id]; ok {
		return pt.clone()
	}
	return p.def.clone()
}

func (p *ModeOperatingPoints) OperatingTrajectories(initialState hybrid.State, startTime, finalTime float64, out *hybrid.Trajectory, concat bool) error {
	if err := checkInterval(startTime, finalTime); err != nil {
		return err
	}
	if !p.Bound() {
		return fmt.Errorf("%w: mode-aware seeding for partition %d", hybrid.ErrUnbound, p.Partition())
	}

	mode := p.Lookup().ActiveMode(startTime + (finalTime-startTime)/2)
	pt, ok := p.byMode[mode]
	if !ok {
		pt = p.def
	}

	if !concat {
		out.Reset()
	}
	out.Append(startTime, pt.State, pt.Input)
	out.Append(finalTime, pt.State, pt.Input)
	return nil
}
