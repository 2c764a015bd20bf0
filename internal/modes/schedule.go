// Package modes tracks which subsystem of a switched system is active
// at a given time. Providers hold a borrowed Lookup after binding; the
// lookup's lifetime is managed by whoever constructed it.
package modes

import (
	"fmt"
	"sort"

	"github.com/arnav-shukla/switchseed/internal/hybrid"
)

// Lookup maps a time to the identifier of the active subsystem.
// Implementations must be safe for concurrent readers.
type Lookup interface {
	ActiveMode(t float64) int
}

// Schedule is an event-time mode sequence: strictly increasing switch
// times t_1 < ... < t_k splitting the horizon into k+1 modes. Mode i is
// active on [t_i, t_{i+1}); at a switch instant the new mode is already
// active. Immutable after construction.
type Schedule struct {
	events []float64
	ids    []int
}

// New builds a schedule from switch times and mode identifiers.
// len(ids) must be len(events)+1 and events must be strictly increasing.
func New(events []float64, ids []int) (*Schedule, error) {
	if len(ids) != len(events)+1 {
		return nil, fmt.Errorf("%w: %d mode ids for %d switch times", hybrid.ErrBadSchedule, len(ids), len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i] <= events[i-1] {
			return nil, fmt.Errorf("%w: switch times not strictly increasing at index %d", hybrid.ErrBadSchedule, i)
		}
	}
	s := &Schedule{
		events: make([]float64, len(events)),
		ids:    make([]int, len(ids)),
	}
	copy(s.events, events)
	copy(s.ids, ids)
	return s, nil
}

// Single returns a schedule with no switches: mode id is active everywhere.
func Single(id int) *Schedule {
	return &Schedule{ids: []int{id}}
}

func (s *Schedule) ActiveMode(t float64) int {
	// Number of switch times <= t selects the active segment.
	i := sort.Search(len(s.events), func(i int) bool { return s.events[i] > t })
	return s.ids[i]
}

func (s *Schedule) NumModes() int { return len(s.ids) }

// SwitchTimes returns a copy of the switch instants.
func (s *Schedule) SwitchTimes() []float64 {
	c := make([]float64, len(s.events))
	copy(c, s.events)
	return c
}

// ModeIDs returns a copy of the mode identifier sequence.
func (s *Schedule) ModeIDs() []int {
	c := make([]int, len(s.ids))
	copy(c, s.ids)
	return c
}
