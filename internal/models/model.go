package models

import (
	"errors"
	"fmt"
	"math"

	"github.com/hamforge/hamforge/internal/hilbert"
	"github.com/hamforge/hamforge/internal/metadata"
	"github.com/hamforge/hamforge/internal/operator"
)

// HermitianTol is the elementwise tolerance for the Hermiticity
// self-check. The catalogued Hamiltonians are Hermitian by construction;
// exceeding this indicates a term-construction bug, not a physical state.
const HermitianTol = 1e-9

// ErrInvalidParameter indicates a parameter outside its model's domain
// constraints. Surfaced before any term is built; the caller's fault.
var ErrInvalidParameter = errors.New("models: invalid parameter")

// Domain labels attached to exported metadata.
const (
	DomainQuantumOptics = "quantum-optics"
	DomainSpinSystems   = "spin-systems"
	DomainLatticeModels = "lattice-models"
)

// Model is the contract every catalogued Hamiltonian satisfies. Variants
// differ only in their subsystems, their term list as a function of the
// parameters, and their domain label; the orchestration in [Assemble] is
// shared.
type Model interface {
	// Tag is the stable registry key, e.g. "jaynes-cummings".
	Tag() string
	// Name is the display name, e.g. "Jaynes-Cummings".
	Name() string
	// Domain is the physics-domain label for exported metadata.
	Domain() string
	// Validate checks the parameter domain constraints, returning
	// ErrInvalidParameter on the first violation.
	Validate() error
	// HilbertSpace returns the composite space implied by the parameters.
	HilbertSpace() (hilbert.Shape, error)
	// Terms returns the ordered term list encoding the model's physical
	// Hamiltonian on the given shape.
	Terms(shape hilbert.Shape) ([]operator.Term, error)
	// Params exports the parameter set under the model's documented names.
	Params() map[string]float64
}

// Status is an instance's validation state.
type Status int

const (
	StatusUnchecked Status = iota
	StatusValid
	StatusInvalid
)

func (s Status) String() string {
	switch s {
	case StatusValid:
		return metadata.StatusValid
	case StatusInvalid:
		return metadata.StatusInvalid
	default:
		return metadata.StatusUnchecked
	}
}

// Instance is one assembled Hamiltonian: the model it came from, the
// shape and terms used, and the composite operator. Immutable except for
// the validation status, which moves once from unchecked to its terminal
// value.
type Instance struct {
	model  Model
	shape  hilbert.Shape
	terms  []operator.Term
	op     operator.Operator
	status Status
	reason string
}

// Assemble validates the model's parameters, resolves its Hilbert space,
// builds its terms, and combines them into the composite operator. There
// is no partial result: either a fully assembled instance is returned or
// the construction fails outright.
func Assemble(m Model) (*Instance, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	shape, err := m.HilbertSpace()
	if err != nil {
		return nil, err
	}
	terms, err := m.Terms(shape)
	if err != nil {
		return nil, err
	}
	op, err := operator.EmbedSum(terms, shape)
	if err != nil {
		return nil, err
	}
	return &Instance{model: m, shape: shape, terms: terms, op: op}, nil
}

// Model returns the model the instance was assembled from.
func (inst *Instance) Model() Model { return inst.model }

// Shape returns the Hilbert space the operator acts on.
func (inst *Instance) Shape() hilbert.Shape { return inst.shape }

// Operator returns the assembled composite operator.
func (inst *Instance) Operator() operator.Operator { return inst.op }

// Terms returns the term list the operator was assembled from.
func (inst *Instance) Terms() []operator.Term { return inst.terms }

// Status returns the validation state and, when invalid, its reason.
func (inst *Instance) Status() (Status, string) { return inst.status, inst.reason }

// Check runs the structural self-check and moves the instance to its
// terminal validation state:
//
//  1. the operator's dimension must equal the product of the shape's
//     local dimensions;
//  2. the operator must be Hermitian within [HermitianTol];
//  3. when the parameters equal the catalogue's reference set for this
//     model, the shape must match the catalogue's verified shape. This
//     is a regression check against the documented examples, not a
//     constraint on arbitrary parameters.
//
// An invalid result is recorded with its reason, never silently accepted.
func (inst *Instance) Check() Status {
	if inst.status != StatusUnchecked {
		return inst.status
	}
	if got, want := inst.op.Dim(), inst.shape.TotalDim(); got != want {
		return inst.fail(fmt.Sprintf("operator dimension %d does not match shape %s", got, inst.shape))
	}
	if !inst.op.IsHermitian(HermitianTol) {
		return inst.fail("operator is not Hermitian within tolerance")
	}
	if ref, ok := Reference(inst.model.Tag()); ok && paramsEqual(inst.model.Params(), ref.Params) {
		if inst.shape.Dims() != ref.Shape {
			return inst.fail(fmt.Sprintf("shape %v does not match verified reference %v",
				inst.shape.Dims(), ref.Shape))
		}
	}
	inst.status = StatusValid
	return inst.status
}

func (inst *Instance) fail(reason string) Status {
	inst.status = StatusInvalid
	inst.reason = reason
	return inst.status
}

// Export produces the portable metadata document for the instance. Pure
// read of instance state; callable before or after Check, with the
// status field reflecting whichever state it is called from.
func (inst *Instance) Export() metadata.Document {
	return metadata.Document{
		Model:             inst.model.Tag(),
		Domain:            inst.model.Domain(),
		HilbertSpaceShape: inst.shape.LocalDims(),
		Parameters:        inst.model.Params(),
		ValidationStatus:  inst.status.String(),
		Reason:            inst.reason,
	}
}

func paramsEqual(a, b map[string]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		w, ok := b[k]
		if !ok || v != w {
			return false
		}
	}
	return true
}

// finite rejects NaN and infinite parameter values.
func finite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidParameter, name, v)
	}
	return nil
}

// atLeast rejects integer parameters below their documented minimum.
func atLeast(name string, v, min int) error {
	if v < min {
		return fmt.Errorf("%w: %s must be >= %d, got %d", ErrInvalidParameter, name, min, v)
	}
	return nil
}

// ringSize validates a boundary condition: a periodic chain needs at
// least 3 sites, otherwise the single bond of a 2-site ring would be
// counted twice.
func ringSize(name string, n int, periodic bool) error {
	if periodic && n < 3 {
		return fmt.Errorf("%w: periodic boundary requires %s >= 3, got %d", ErrInvalidParameter, name, n)
	}
	return nil
}
