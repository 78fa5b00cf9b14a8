package hilbert

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors for shape construction.
var (
	// ErrBadDimension indicates a subsystem local dimension below its
	// kind's minimum (1 in general, 2 for two-level systems).
	ErrBadDimension = errors.New("hilbert: invalid subsystem dimension")

	// ErrDuplicateSubsystem indicates two subsystems sharing one name.
	ErrDuplicateSubsystem = errors.New("hilbert: duplicate subsystem name")

	// ErrEmptyShape indicates a shape with no subsystems.
	ErrEmptyShape = errors.New("hilbert: shape has no subsystems")
)

// Kind classifies a subsystem's physical degree of freedom.
type Kind int

const (
	BosonicMode Kind = iota
	TwoLevel
	Spin
	LatticeSite
)

func (k Kind) String() string {
	switch k {
	case BosonicMode:
		return "bosonic-mode"
	case TwoLevel:
		return "two-level"
	case Spin:
		return "spin"
	case LatticeSite:
		return "lattice-site"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Subsystem identifies one tensor factor of a composite Hilbert space.
type Subsystem struct {
	Name string
	Kind Kind
	Dim  int
}

// Shape is an ordered sequence of subsystems. Immutable after construction.
type Shape struct {
	subs []Subsystem
}

// NewShape validates and fixes the subsystem ordering. Each local dimension
// must be at least 1 (exactly-2 spaces are required for two-level systems)
// and names must be unique within the shape.
func NewShape(subs ...Subsystem) (Shape, error) {
	if len(subs) == 0 {
		return Shape{}, ErrEmptyShape
	}
	seen := make(map[string]bool, len(subs))
	for _, sub := range subs {
		min := 1
		if sub.Kind == TwoLevel {
			min = 2
		}
		if sub.Dim < min {
			return Shape{}, fmt.Errorf("%w: %s (%s) has dim %d", ErrBadDimension, sub.Name, sub.Kind, sub.Dim)
		}
		if seen[sub.Name] {
			return Shape{}, fmt.Errorf("%w: %s", ErrDuplicateSubsystem, sub.Name)
		}
		seen[sub.Name] = true
	}
	s := Shape{subs: make([]Subsystem, len(subs))}
	copy(s.subs, subs)
	return s, nil
}

// Len reports the number of tensor factors.
func (s Shape) Len() int { return len(s.subs) }

// At returns the i-th subsystem in composition order.
func (s Shape) At(i int) Subsystem { return s.subs[i] }

// Index locates a subsystem by name.
func (s Shape) Index(name string) (int, bool) {
	for i, sub := range s.subs {
		if sub.Name == name {
			return i, true
		}
	}
	return -1, false
}

// TotalDim is the product of all local dimensions.
func (s Shape) TotalDim() int {
	d := 1
	for _, sub := range s.subs {
		d *= sub.Dim
	}
	return d
}

// LocalDims returns the ordered list of local dimensions.
func (s Shape) LocalDims() []int {
	dims := make([]int, len(s.subs))
	for i, sub := range s.subs {
		dims[i] = sub.Dim
	}
	return dims
}

// Dims is the operator shape in the catalogue's two-number convention:
// operators on the space are square TotalDim x TotalDim matrices.
func (s Shape) Dims() [2]int {
	d := s.TotalDim()
	return [2]int{d, d}
}

// Equal reports whether both shapes have identical subsystems in
// identical order.
func (s Shape) Equal(other Shape) bool {
	if len(s.subs) != len(other.subs) {
		return false
	}
	for i := range s.subs {
		if s.subs[i] != other.subs[i] {
			return false
		}
	}
	return true
}

func (s Shape) String() string {
	parts := make([]string, len(s.subs))
	for i, sub := range s.subs {
		parts[i] = fmt.Sprintf("%s:%d", sub.Name, sub.Dim)
	}
	return fmt.Sprintf("(%s)=%d", strings.Join(parts, " "), s.TotalDim())
}
