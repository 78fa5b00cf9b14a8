package hilbert

import (
	"errors"
	"testing"
)

func TestNewShape(t *testing.T) {
	shape, err := NewShape(
		Subsystem{Name: "cavity", Kind: BosonicMode, Dim: 5},
		Subsystem{Name: "atom", Kind: TwoLevel, Dim: 2},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if shape.Len() != 2 {
		t.Errorf("expected 2 subsystems, got %d", shape.Len())
	}
	if shape.TotalDim() != 10 {
		t.Errorf("expected total dim 10, got %d", shape.TotalDim())
	}
	if dims := shape.Dims(); dims != [2]int{10, 10} {
		t.Errorf("expected (10,10), got %v", dims)
	}
}

func TestNewShape_Invalid(t *testing.T) {
	tests := []struct {
		name string
		subs []Subsystem
		want error
	}{
		{"empty", nil, ErrEmptyShape},
		{"zero dim", []Subsystem{{Name: "a", Kind: BosonicMode, Dim: 0}}, ErrBadDimension},
		{"negative dim", []Subsystem{{Name: "a", Kind: LatticeSite, Dim: -3}}, ErrBadDimension},
		{"two-level dim 1", []Subsystem{{Name: "a", Kind: TwoLevel, Dim: 1}}, ErrBadDimension},
		{"duplicate names", []Subsystem{
			{Name: "a", Kind: TwoLevel, Dim: 2},
			{Name: "a", Kind: TwoLevel, Dim: 2},
		}, ErrDuplicateSubsystem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewShape(tt.subs...)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestShape_CutoffOne(t *testing.T) {
	// Hard-core boson: 1-dimensional bosonic factor is legal.
	shape, err := NewShape(Subsystem{Name: "site-1", Kind: LatticeSite, Dim: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if shape.TotalDim() != 1 {
		t.Errorf("expected total dim 1, got %d", shape.TotalDim())
	}
}

func TestShape_IndexAndOrder(t *testing.T) {
	shape, err := NewShape(
		Subsystem{Name: "cavity", Kind: BosonicMode, Dim: 3},
		Subsystem{Name: "atom-1", Kind: TwoLevel, Dim: 2},
		Subsystem{Name: "atom-2", Kind: TwoLevel, Dim: 2},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	i, ok := shape.Index("atom-2")
	if !ok || i != 2 {
		t.Errorf("expected index 2 for atom-2, got %d (%v)", i, ok)
	}
	if _, ok := shape.Index("atom-9"); ok {
		t.Error("expected lookup miss for atom-9")
	}

	dims := shape.LocalDims()
	if len(dims) != 3 || dims[0] != 3 || dims[1] != 2 || dims[2] != 2 {
		t.Errorf("unexpected local dims: %v", dims)
	}
}

func TestShape_Equal(t *testing.T) {
	a, _ := NewShape(
		Subsystem{Name: "cavity", Kind: BosonicMode, Dim: 3},
		Subsystem{Name: "atom", Kind: TwoLevel, Dim: 2},
	)
	b, _ := NewShape(
		Subsystem{Name: "cavity", Kind: BosonicMode, Dim: 3},
		Subsystem{Name: "atom", Kind: TwoLevel, Dim: 2},
	)
	swapped, _ := NewShape(
		Subsystem{Name: "atom", Kind: TwoLevel, Dim: 2},
		Subsystem{Name: "cavity", Kind: BosonicMode, Dim: 3},
	)

	if !a.Equal(b) {
		t.Error("identical shapes should compare equal")
	}
	// Ordering is significant.
	if a.Equal(swapped) {
		t.Error("reordered shapes must not compare equal")
	}
}
