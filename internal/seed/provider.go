package seed

import (
	"github.com/arnav-shukla/switchseed/internal/hybrid"
	"github.com/arnav-shukla/switchseed/internal/modes"
)

// Provider generates initial-guess trajectories for iterative
// trajectory-optimization algorithms over switched systems. The
// optimizer binds a provider to the mode lookup of the current time
// partition, then requests seed trajectories for sub-intervals during
// its iterations.
//
// A bound provider must never be shared across concurrent execution
// contexts; Clone one per context first.
type Provider interface {
	// Bind associates the provider with the mode-switch lookup for
	// partition partitionIndex. The lookup is borrowed, never owned: it
	// must stay alive until the next Bind (or the provider is dropped).
	// Rebinding overwrites the previous association. The algorithm name
	// is a diagnostic hint and may be empty.
	Bind(lookup modes.Lookup, partitionIndex int, algorithm string)

	// Clone returns a new, independently owned provider with identical
	// configuration. Mutating or rebinding the clone must not affect
	// the source, and vice versa.
	Clone() Provider

	// OperatingTrajectories appends seed samples covering
	// [startTime, finalTime] to out. With concat false, out is reset
	// first; with concat true, samples accumulate, supporting
	// multi-segment assembly across adjacent sub-intervals.
	// initialState is a hint for heuristics that seed from the true
	// initial condition; variants may ignore it.
	// startTime > finalTime fails with hybrid.ErrReversedInterval.
	OperatingTrajectories(initialState hybrid.State, startTime, finalTime float64, out *hybrid.Trajectory, concat bool) error
}

// Binding supplies the default Bind behavior shared by all providers:
// it stores the borrowed lookup and partition index and nothing more.
// Embed it and override Bind only if binding has side effects.
type Binding struct {
	lookup    modes.Lookup
	partition int
	algorithm string
}

func (b *Binding) Bind(lookup modes.Lookup, partitionIndex int, algorithm string) {
	b.lookup = lookup
	b.partition = partitionIndex
	b.algorithm = algorithm
}

// Lookup returns the bound mode lookup, or nil before the first Bind.
func (b *Binding) Lookup() modes.Lookup { return b.lookup }

// Partition returns the partition index from the last Bind.
func (b *Binding) Partition() int { return b.partition }

// Algorithm returns the algorithm name hint from the last Bind.
func (b *Binding) Algorithm() string { return b.algorithm }

// Bound reports whether Bind has been called with a non-nil lookup.
func (b *Binding) Bound() bool { return b.lookup != nil }

// checkInterval enforces the startTime <= finalTime precondition.
func checkInterval(startTime, finalTime float64) error {
	if startTime > finalTime {
		return &hybrid.IntervalError{Start: startTime, Final: finalTime}
	}
	return nil
}
