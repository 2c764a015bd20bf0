// Package partition splits the optimization time horizon into
// contiguous segments that are seeded (and later optimized)
// semi-independently, one execution context per segment.
package partition

import (
	"fmt"

	"github.com/arnav-shukla/switchseed/internal/hybrid"
)

// Times holds the ascending boundary times of a partitioned horizon.
// N boundaries define N-1 partitions. Immutable after construction.
type Times struct {
	bounds []float64
}

// New builds a partitioning from boundary times. At least two strictly
// increasing boundaries are required.
func New(bounds []float64) (*Times, error) {
	if len(bounds) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 boundaries, got %d", hybrid.ErrBadPartition, len(bounds))
	}
	for i := 1; i < len(bounds); i++ {
		if bounds[i] <= bounds[i-1] {
			return nil, fmt.Errorf("%w: boundaries not strictly increasing at index %d", hybrid.ErrBadPartition, i)
		}
	}
	p := &Times{bounds: make([]float64, len(bounds))}
	copy(p.bounds, bounds)
	return p, nil
}

// Uniform partitions [start, final] into n equal segments.
func Uniform(start, final float64, n int) (*Times, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: need at least 1 partition, got %d", hybrid.ErrBadPartition, n)
	}
	if final <= start {
		return nil, fmt.Errorf("%w: final time %g not after start time %g", hybrid.ErrBadPartition, final, start)
	}
	bounds := make([]float64, n+1)
	step := (final - start) / float64(n)
	for i := 0; i <= n; i++ {
		bounds[i] = start + float64(i)*step
	}
	bounds[n] = final
	return &Times{bounds: bounds}, nil
}

// Count returns the number of partitions.
func (p *Times) Count() int { return len(p.bounds) - 1 }

// Bounds returns the start and final time of partition i, 0 <= i < Count.
func (p *Times) Bounds(i int) (float64, float64) {
	return p.bounds[i], p.bounds[i+1]
}

// Horizon returns the overall start and final time.
func (p *Times) Horizon() (float64, float64) {
	return p.bounds[0], p.bounds[len(p.bounds)-1]
}

// ActiveIndex returns the partition containing t. Partitions are
// half-open [t_i, t_{i+1}) except the last, which includes its final time.
func (p *Times) ActiveIndex(t float64) (int, error) {
	if t < p.bounds[0] || t > p.bounds[len(p.bounds)-1] {
		return 0, fmt.Errorf("%w: time %g outside horizon [%g, %g]", hybrid.ErrBadPartition, t, p.bounds[0], p.bounds[len(p.bounds)-1])
	}
	for i := 0; i < p.Count(); i++ {
		if t < p.bounds[i+1] {
			return i, nil
		}
	}
	return p.Count() - 1, nil
}

// Boundaries returns a copy of the boundary times.
func (p *Times) Boundaries() []float64 {
	c := make([]float64, len(p.bounds))
	copy(c, p.bounds)
	return c
}
