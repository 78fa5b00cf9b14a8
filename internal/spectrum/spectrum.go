// Package spectrum computes energy levels of assembled Hamiltonians.
//
// The operators are Hermitian, so their spectra are real. Eigenvalues are
// obtained by embedding the complex Hermitian matrix H = X + iY into the
// real symmetric matrix
//
//	[ X -Y ]
//	[ Y  X ]
//
// whose spectrum is that of H with every eigenvalue doubled, and
// factorizing it with gonum's symmetric eigensolver.
package spectrum

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/hamforge/hamforge/internal/operator"
)

var (
	// ErrNoConvergence indicates the eigendecomposition failed.
	ErrNoConvergence = errors.New("spectrum: eigendecomposition did not converge")

	// ErrEmptyOperator indicates a zero-dimensional operator.
	ErrEmptyOperator = errors.New("spectrum: operator has dimension zero")
)

// Eigenvalues returns the energy levels of a Hermitian operator in
// ascending order.
func Eigenvalues(op operator.Operator) ([]float64, error) {
	n := op.Dim()
	if n == 0 {
		return nil, ErrEmptyOperator
	}

	data := make([]float64, 2*n*2*n)
	set := func(i, j int, v float64) { data[i*2*n+j] = v }
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x, y := real(op.At(i, j)), imag(op.At(i, j))
			set(i, j, x)
			set(n+i, n+j, x)
			set(i, n+j, -y)
			set(n+i, j, y)
		}
	}

	var es mat.EigenSym
	if !es.Factorize(mat.NewSymDense(2*n, data), false) {
		return nil, ErrNoConvergence
	}
	doubled := es.Values(nil)

	// Each level appears twice in the embedded spectrum; average the
	// pairs to cancel factorization noise.
	levels := make([]float64, n)
	for i := 0; i < n; i++ {
		levels[i] = (doubled[2*i] + doubled[2*i+1]) / 2
	}
	return levels, nil
}

// GroundState returns the lowest energy level.
func GroundState(op operator.Operator) (float64, error) {
	levels, err := Eigenvalues(op)
	if err != nil {
		return 0, err
	}
	return levels[0], nil
}
