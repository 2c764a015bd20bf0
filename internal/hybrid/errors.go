package hybrid

import (
	"errors"
	"fmt"
)

// Domain errors for seed-trajectory generation.
var (
	// ErrReversedInterval indicates startTime > finalTime.
	ErrReversedInterval = errors.New("hybrid: reversed time interval")

	// ErrUnbound indicates a mode-aware provider was used before Bind.
	ErrUnbound = errors.New("hybrid: provider not bound to a mode lookup")

	// ErrDimensionMismatch indicates state/input vectors of incompatible dimension.
	ErrDimensionMismatch = errors.New("hybrid: dimension mismatch")

	// ErrBadSchedule indicates an invalid mode schedule definition.
	ErrBadSchedule = errors.New("hybrid: invalid mode schedule")

	// ErrBadPartition indicates invalid time-partition boundaries or a time
	// outside the partitioned horizon.
	ErrBadPartition = errors.New("hybrid: invalid time partition")
)

// IntervalError reports a reversed generation interval with its bounds.
type IntervalError struct {
	Start float64
	Final float64
}

func (e *IntervalError) Error() string {
	return fmt.Sprintf("reversed time interval [%g, %g]", e.Start, e.Final)
}

func (e *IntervalError) Unwrap() error {
	return ErrReversedInterval
}
