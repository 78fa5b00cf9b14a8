package operator

import (
	"fmt"

	"github.com/hamforge/hamforge/internal/hilbert"
)

// Term is one tensor-structured contribution to a Hamiltonian: a scalar
// coefficient times a product of local operators, one per named
// subsystem. Subsystems absent from Factors act as identity. A Term is
// owned by the model that built it and never shared.
type Term struct {
	Coeff   complex128
	Factors map[string]Operator
}

// Embed composes a term into the full operator on shape, taking factors
// strictly in the shape's declared order and the identity on every
// unassigned subsystem. The result has dimension shape.TotalDim().
func Embed(term Term, shape hilbert.Shape) (Operator, error) {
	for name := range term.Factors {
		if _, ok := shape.Index(name); !ok {
			return Operator{}, fmt.Errorf("%w: %q not in shape %s", ErrUnknownSubsystem, name, shape)
		}
	}

	full, err := Identity(1)
	if err != nil {
		return Operator{}, err
	}
	for i := 0; i < shape.Len(); i++ {
		sub := shape.At(i)
		local, ok := term.Factors[sub.Name]
		if !ok {
			local, err = Identity(sub.Dim)
			if err != nil {
				return Operator{}, err
			}
		} else if local.Dim() != sub.Dim {
			return Operator{}, fmt.Errorf("%w: factor on %q is %dx%d, subsystem dim is %d",
				ErrDimensionMismatch, sub.Name, local.Dim(), local.Dim(), sub.Dim)
		}
		full = Kron(full, local)
	}
	return Scale(term.Coeff, full), nil
}

// EmbedSum embeds every term on the shared shape and sums the results.
func EmbedSum(terms []Term, shape hilbert.Shape) (Operator, error) {
	ops := make([]Operator, 0, len(terms))
	for _, term := range terms {
		op, err := Embed(term, shape)
		if err != nil {
			return Operator{}, err
		}
		ops = append(ops, op)
	}
	return Sum(ops)
}
