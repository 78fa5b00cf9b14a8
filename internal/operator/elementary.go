package operator

import (
	"fmt"
	"math"

	"github.com/hamforge/hamforge/internal/hilbert"
)

// Role selects an elementary local operator within a subsystem kind.
type Role string

const (
	RoleIdentity   Role = "identity"
	RoleAnnihilate Role = "annihilate"
	RoleCreate     Role = "create"
	RoleNumber     Role = "number"
	RoleLower      Role = "lower"
	RoleRaise      Role = "raise"
	RolePauliX     Role = "pauli-x"
	RolePauliY     Role = "pauli-y"
	RolePauliZ     Role = "pauli-z"
	RoleSpinX      Role = "spin-x"
	RoleSpinY      Role = "spin-y"
	RoleSpinZ      Role = "spin-z"
)

// Elementary returns the elementary operator for role on a subsystem of
// the given kind and local dimension. Bosonic modes and lattice sites
// share the ladder/number set; two-level systems get the Pauli and
// raising/lowering set plus the excitation number; spin subsystems of
// dimension 2j+1 get the collective spin components. Identity is defined
// for every kind.
func Elementary(kind hilbert.Kind, dim int, role Role) (Operator, error) {
	min := 1
	if kind == hilbert.TwoLevel {
		min = 2
	}
	if dim < min {
		return Operator{}, fmt.Errorf("%w: %d for %s", ErrBadDimension, dim, kind)
	}
	if role == RoleIdentity {
		return Identity(dim)
	}

	switch kind {
	case hilbert.BosonicMode, hilbert.LatticeSite:
		switch role {
		case RoleAnnihilate:
			return annihilate(dim), nil
		case RoleCreate:
			return dagger(annihilate(dim)), nil
		case RoleNumber:
			return number(dim), nil
		}

	case hilbert.TwoLevel:
		switch role {
		case RoleLower, RoleAnnihilate:
			return annihilate(2), nil
		case RoleRaise, RoleCreate:
			return dagger(annihilate(2)), nil
		case RoleNumber:
			return number(2), nil
		case RolePauliX:
			return pauli(0, 1, 1, 0), nil
		case RolePauliY:
			return pauli(0, complex(0, -1), complex(0, 1), 0), nil
		case RolePauliZ:
			return pauli(1, 0, 0, -1), nil
		}

	case hilbert.Spin:
		switch role {
		case RoleSpinX:
			plus := spinRaise(dim)
			op, _ := Add(plus, dagger(plus))
			return Scale(0.5, op), nil
		case RoleSpinY:
			plus := spinRaise(dim)
			op, _ := Sub(plus, dagger(plus))
			return Scale(complex(0, -0.5), op), nil
		case RoleSpinZ:
			return spinZ(dim), nil
		case RoleRaise:
			return spinRaise(dim), nil
		case RoleLower:
			return dagger(spinRaise(dim)), nil
		}
	}
	return Operator{}, fmt.Errorf("%w: %s on %s", ErrUnsupportedRole, role, kind)
}

// annihilate is the truncated bosonic lowering operator: a|n> = sqrt(n)|n-1>.
// For dim 2 it coincides with the two-level sigma-minus.
func annihilate(dim int) Operator {
	op, _ := Zero(dim)
	for n := 1; n < dim; n++ {
		op.m.Set(n-1, n, complex(math.Sqrt(float64(n)), 0))
	}
	return op
}

// number is diag(0, 1, ..., dim-1).
func number(dim int) Operator {
	op, _ := Zero(dim)
	for n := 0; n < dim; n++ {
		op.m.Set(n, n, complex(float64(n), 0))
	}
	return op
}

func pauli(a, b, c, d complex128) Operator {
	op, _ := Zero(2)
	op.m.Set(0, 0, a)
	op.m.Set(0, 1, b)
	op.m.Set(1, 0, c)
	op.m.Set(1, 1, d)
	return op
}

// spinZ is diag(j, j-1, ..., -j) for j = (dim-1)/2; basis index 0 carries
// the highest magnetic quantum number.
func spinZ(dim int) Operator {
	j := float64(dim-1) / 2
	op, _ := Zero(dim)
	for i := 0; i < dim; i++ {
		op.m.Set(i, i, complex(j-float64(i), 0))
	}
	return op
}

// spinRaise is J+ with <m+1|J+|m> = sqrt(j(j+1) - m(m+1)).
func spinRaise(dim int) Operator {
	j := float64(dim-1) / 2
	op, _ := Zero(dim)
	for i := 1; i < dim; i++ {
		m := j - float64(i)
		op.m.Set(i-1, i, complex(math.Sqrt(j*(j+1)-m*(m+1)), 0))
	}
	return op
}

// dagger is the conjugate transpose.
func dagger(a Operator) Operator {
	n := a.Dim()
	out, _ := Zero(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := a.m.At(j, i)
			out.m.Set(i, j, complex(real(v), -imag(v)))
		}
	}
	return out
}
