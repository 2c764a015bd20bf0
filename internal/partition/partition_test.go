package partition

import (
	"errors"
	"math"
	"testing"

	"github.com/arnav-shukla/switchseed/internal/hybrid"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		bounds []float64
	}{
		{"too few boundaries", []float64{1.0}},
		{"empty", nil},
		{"not increasing", []float64{0.0, 2.0, 1.0}},
		{"duplicate", []float64{0.0, 1.0, 1.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.bounds)
			if !errors.Is(err, hybrid.ErrBadPartition) {
				t.Errorf("expected ErrBadPartition, got %v", err)
			}
		})
	}
}

func TestBoundsAndHorizon(t *testing.T) {
	p, err := New([]float64{0.0, 1.0, 3.0})
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}

	if p.Count() != 2 {
		t.Fatalf("expected 2 partitions, got %d", p.Count())
	}

	t0, t1 := p.Bounds(1)
	if t0 != 1.0 || t1 != 3.0 {
		t.Errorf("expected bounds [1, 3], got [%g, %g]", t0, t1)
	}

	start, final := p.Horizon()
	if start != 0.0 || final != 3.0 {
		t.Errorf("expected horizon [0, 3], got [%g, %g]", start, final)
	}
}

func TestUniform(t *testing.T) {
	p, err := Uniform(0.0, 2.0, 4)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	if p.Count() != 4 {
		t.Fatalf("expected 4 partitions, got %d", p.Count())
	}

	bounds := p.Boundaries()
	expected := []float64{0.0, 0.5, 1.0, 1.5, 2.0}
	for i, b := range expected {
		if math.Abs(bounds[i]-b) > 1e-12 {
			t.Errorf("boundary %d: expected %g, got %g", i, b, bounds[i])
		}
	}
}

func TestUniformValidation(t *testing.T) {
	if _, err := Uniform(0.0, 1.0, 0); !errors.Is(err, hybrid.ErrBadPartition) {
		t.Errorf("expected ErrBadPartition for n=0, got %v", err)
	}
	if _, err := Uniform(1.0, 1.0, 2); !errors.Is(err, hybrid.ErrBadPartition) {
		t.Errorf("expected ErrBadPartition for empty horizon, got %v", err)
	}
}

func TestActiveIndex(t *testing.T) {
	p, err := New([]float64{0.0, 1.0, 2.0})
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}

	tests := []struct {
		name string
		time float64
		idx  int
	}{
		{"start of horizon", 0.0, 0},
		{"interior first", 0.5, 0},
		{"boundary belongs to next", 1.0, 1},
		{"interior second", 1.5, 1},
		{"final time included", 2.0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, err := p.ActiveIndex(tt.time)
			if err != nil {
				t.Fatalf("ActiveIndex(%g) failed: %v", tt.time, err)
			}
			if idx != tt.idx {
				t.Errorf("ActiveIndex(%g): expected %d, got %d", tt.time, tt.idx, idx)
			}
		})
	}

	if _, err := p.ActiveIndex(-0.1); !errors.Is(err, hybrid.ErrBadPartition) {
		t.Errorf("expected ErrBadPartition before horizon, got %v", err)
	}
	if _, err := p.ActiveIndex(2.1); !errors.Is(err, hybrid.ErrBadPartition) {
		t.Errorf("expected ErrBadPartition after horizon, got %v", err)
	}
}
