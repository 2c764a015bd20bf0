// Package engine orchestrates seed-trajectory generation across a
// partitioned horizon, standing in for the optimizer's first-iteration
// setup: one provider clone per partition, seeded concurrently.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/arnav-shukla/switchseed/internal/hybrid"
	"github.com/arnav-shukla/switchseed/internal/modes"
	"github.com/arnav-shukla/switchseed/internal/partition"
	"github.com/arnav-shukla/switchseed/internal/seed"
)

// Engine seeds every partition of the horizon from a prototype
// provider. The prototype itself is never bound or invoked; each
// partition works on a private clone, so a single Engine value is safe
// to reuse across runs.
type Engine struct {
	prototype seed.Provider
	parts     *partition.Times
	lookup    modes.Lookup
	algorithm string
}

func New(prototype seed.Provider, parts *partition.Times, lookup modes.Lookup) *Engine {
	return &Engine{
		prototype: prototype,
		parts:     parts,
		lookup:    lookup,
		algorithm: "SLQ",
	}
}

// SetAlgorithm overrides the algorithm name hint passed to Bind.
func (e *Engine) SetAlgorithm(name string) { e.algorithm = name }

// Seed generates the full-horizon seed trajectory for initial state x0.
// Partitions are seeded concurrently, each on its own provider clone,
// then stitched together in partition order. Every partition receives
// x0 as its initial-state hint.
func (e *Engine) Seed(ctx context.Context, x0 hybrid.State) (*hybrid.Trajectory, error) {
	n := e.parts.Count()
	results := make([]*hybrid.Trajectory, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				errs[idx] = ctx.Err()
				return
			default:
			}

			p := e.prototype.Clone()
			p.Bind(e.lookup, idx, e.algorithm)

			startTime, finalTime := e.parts.Bounds(idx)
			tr := &hybrid.Trajectory{}
			if err := p.OperatingTrajectories(x0, startTime, finalTime, tr, false); err != nil {
				errs[idx] = fmt.Errorf("partition %d: %w", idx, err)
				return
			}
			results[idx] = tr
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	combined := &hybrid.Trajectory{}
	for _, tr := range results {
		for i := range tr.Times {
			combined.Append(tr.Times[i], tr.States[i], tr.Inputs[i])
		}
	}
	return combined, nil
}

// SeedPartition generates the seed trajectory for a single partition on
// a fresh clone of the prototype. Used for incremental re-seeding
// during iterative refinement.
func (e *Engine) SeedPartition(idx int, x0 hybrid.State, out *hybrid.Trajectory, concat bool) error {
	if idx < 0 || idx >= e.parts.Count() {
		return fmt.Errorf("%w: partition index %d of %d", hybrid.ErrBadPartition, idx, e.parts.Count())
	}
	p := e.prototype.Clone()
	p.Bind(e.lookup, idx, e.algorithm)
	startTime, finalTime := e.parts.Bounds(idx)
	return p.OperatingTrajectories(x0, startTime, finalTime, out, concat)
}
