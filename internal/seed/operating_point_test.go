package seed

import (
	"errors"
	"testing"

	"github.com/arnav-shukla/switchseed/internal/hybrid"
	"github.com/arnav-shukla/switchseed/internal/modes"
)

func assertBookends(t *testing.T, tr *hybrid.Trajectory, startTime, finalTime float64, x hybrid.State, u hybrid.Input) {
	t.Helper()

	if tr.Len() != 2 {
		t.Fatalf("expected 2 samples, got %d", tr.Len())
	}
	if tr.Times[0] != startTime || tr.Times[1] != finalTime {
		t.Errorf("expected times [%g, %g], got %v", startTime, finalTime, tr.Times)
	}
	for i := 0; i < 2; i++ {
		for j := range x {
			if tr.States[i][j] != x[j] {
				t.Errorf("state sample %d component %d: expected %g, got %g", i, j, x[j], tr.States[i][j])
			}
		}
		for j := range u {
			if tr.Inputs[i][j] != u[j] {
				t.Errorf("input sample %d component %d: expected %g, got %g", i, j, u[j], tr.Inputs[i][j])
			}
		}
	}
}

func TestOperatingPointBookends(t *testing.T) {
	// State dim 2, input dim 1, point ((1, -1), (0.5)) over [0, 2].
	p := NewOperatingPoint(hybrid.State{1.0, -1.0}, hybrid.Input{0.5})

	tr := &hybrid.Trajectory{}
	if err := p.OperatingTrajectories(hybrid.State{42.0, 42.0}, 0.0, 2.0, tr, false); err != nil {
		t.Fatalf("generation failed: %v", err)
	}

	assertBookends(t, tr, 0.0, 2.0, hybrid.State{1.0, -1.0}, hybrid.Input{0.5})
}

func TestOperatingPointIdempotent(t *testing.T) {
	p := NewOperatingPoint(hybrid.State{1.0, -1.0}, hybrid.Input{0.5})
	tr := &hybrid.Trajectory{}

	for call := 0; call < 2; call++ {
		if err := p.OperatingTrajectories(nil, -1.0, 4.0, tr, false); err != nil {
			t.Fatalf("call %d failed: %v", call, err)
		}
		assertBookends(t, tr, -1.0, 4.0, hybrid.State{1.0, -1.0}, hybrid.Input{0.5})
	}
}

func TestOperatingPointConcat(t *testing.T) {
	p := NewOperatingPoint(hybrid.State{2.0}, hybrid.Input{0.0})
	tr := &hybrid.Trajectory{}

	if err := p.OperatingTrajectories(nil, 0.0, 1.0, tr, false); err != nil {
		t.Fatalf("first segment failed: %v", err)
	}
	if err := p.OperatingTrajectories(nil, 1.0, 2.0, tr, true); err != nil {
		t.Fatalf("second segment failed: %v", err)
	}

	if tr.Len() != 4 {
		t.Fatalf("expected 4 samples after concat, got %d", tr.Len())
	}
	expected := []float64{0.0, 1.0, 1.0, 2.0}
	for i, et := range expected {
		if tr.Times[i] != et {
			t.Errorf("time %d: expected %g, got %g", i, et, tr.Times[i])
		}
	}
}

func TestOperatingPointDegenerateInterval(t *testing.T) {
	p := NewOperatingPoint(hybrid.State{1.0}, hybrid.Input{})
	tr := &hybrid.Trajectory{}

	if err := p.OperatingTrajectories(nil, 3.0, 3.0, tr, false); err != nil {
		t.Fatalf("degenerate interval failed: %v", err)
	}
	if tr.Len() != 2 || tr.Times[0] != 3.0 || tr.Times[1] != 3.0 {
		t.Errorf("expected two samples at t=3, got %v", tr.Times)
	}
}

func TestOperatingPointReversedInterval(t *testing.T) {
	p := NewOperatingPoint(hybrid.State{1.0}, hybrid.Input{})
	tr := &hybrid.Trajectory{}
	tr.Append(0.0, hybrid.State{5.0}, hybrid.Input{})

	err := p.OperatingTrajectories(nil, 2.0, 1.0, tr, false)
	if !errors.Is(err, hybrid.ErrReversedInterval) {
		t.Fatalf("expected ErrReversedInterval, got %v", err)
	}
	// A failed call must not have touched the output.
	if tr.Len() != 1 {
		t.Errorf("failed call modified output: len %d", tr.Len())
	}
}

func TestOperatingPointCloneIndependence(t *testing.T) {
	orig := NewOperatingPoint(hybrid.State{1.0, -1.0}, hybrid.Input{0.5})
	orig.Bind(modes.Single(0), 3, "SLQ")

	c := orig.Clone().(*OperatingPoint)
	c.Bind(modes.Single(9), 7, "ILQR")
	c.stateOP[0] = 100.0

	if orig.Partition() != 3 || orig.Algorithm() != "SLQ" {
		t.Errorf("rebinding clone changed original binding: partition=%d algorithm=%q", orig.Partition(), orig.Algorithm())
	}
	if orig.stateOP[0] != 1.0 {
		t.Errorf("mutating clone changed original operating point: %g", orig.stateOP[0])
	}

	tr := &hybrid.Trajectory{}
	if err := orig.OperatingTrajectories(nil, 0.0, 1.0, tr, false); err != nil {
		t.Fatalf("generation failed: %v", err)
	}
	assertBookends(t, tr, 0.0, 1.0, hybrid.State{1.0, -1.0}, hybrid.Input{0.5})
}

func TestZeroOperatingPointEquivalence(t *testing.T) {
	def := NewZeroOperatingPoint(2, 1)
	explicit := NewOperatingPoint(hybrid.State{0.0, 0.0}, hybrid.Input{0.0})

	trDef := &hybrid.Trajectory{}
	trExp := &hybrid.Trajectory{}
	if err := def.OperatingTrajectories(nil, 0.0, 5.0, trDef, false); err != nil {
		t.Fatalf("default generation failed: %v", err)
	}
	if err := explicit.OperatingTrajectories(nil, 0.0, 5.0, trExp, false); err != nil {
		t.Fatalf("explicit generation failed: %v", err)
	}

	if trDef.Len() != trExp.Len() {
		t.Fatalf("length mismatch: %d vs %d", trDef.Len(), trExp.Len())
	}
	for i := range trDef.Times {
		if trDef.Times[i] != trExp.Times[i] {
			t.Errorf("time %d differs: %g vs %g", i, trDef.Times[i], trExp.Times[i])
		}
		for j := range trDef.States[i] {
			if trDef.States[i][j] != trExp.States[i][j] {
				t.Errorf("state %d,%d differs: %g vs %g", i, j, trDef.States[i][j], trExp.States[i][j])
			}
		}
		for j := range trDef.Inputs[i] {
			if trDef.Inputs[i][j] != trExp.Inputs[i][j] {
				t.Errorf("input %d,%d differs: %g vs %g", i, j, trDef.Inputs[i][j], trExp.Inputs[i][j])
			}
		}
	}
}

func TestOperatingPointUnboundTolerated(t *testing.T) {
	// The constant variant never dereferences the lookup, so generating
	// without Bind is legal.
	p := NewOperatingPoint(hybrid.State{1.0}, hybrid.Input{})
	tr := &hybrid.Trajectory{}
	if err := p.OperatingTrajectories(nil, 0.0, 1.0, tr, false); err != nil {
		t.Fatalf("unbound constant provider should not fail: %v", err)
	}
}

func TestOperatingPointConstructorCopies(t *testing.T) {
	x := hybrid.State{1.0}
	u := hybrid.Input{0.5}
	p := NewOperatingPoint(x, u)

	x[0] = -9.0
	u[0] = -9.0

	tr := &hybrid.Trajectory{}
	if err := p.OperatingTrajectories(nil, 0.0, 1.0, tr, false); err != nil {
		t.Fatalf("generation failed: %v", err)
	}
	if tr.States[0][0] != 1.0 || tr.Inputs[0][0] != 0.5 {
		t.Error("constructor aliased caller vectors")
	}
}

func TestRebindOverwrites(t *testing.T) {
	p := NewZeroOperatingPoint(1, 1)
	p.Bind(modes.Single(0), 0, "SLQ")
	p.Bind(modes.Single(1), 5, "MPC")

	if p.Partition() != 5 {
		t.Errorf("expected partition 5 after rebind, got %d", p.Partition())
	}
	if p.Lookup().ActiveMode(0.0) != 1 {
		t.Error("rebind did not replace lookup")
	}
}
