package operator

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Operator is a square complex matrix acting on a (possibly composite)
// Hilbert space. The zero value is not usable; construct via [Zero],
// [Identity], [Elementary] or [Embed]. Operators are never mutated after
// they are returned to a caller.
type Operator struct {
	m *mat.CDense
}

// Zero returns the dim x dim zero operator.
func Zero(dim int) (Operator, error) {
	if dim < 1 {
		return Operator{}, fmt.Errorf("%w: %d", ErrBadDimension, dim)
	}
	return Operator{m: mat.NewCDense(dim, dim, nil)}, nil
}

// Identity returns the dim x dim identity operator.
func Identity(dim int) (Operator, error) {
	op, err := Zero(dim)
	if err != nil {
		return Operator{}, err
	}
	for i := 0; i < dim; i++ {
		op.m.Set(i, i, 1)
	}
	return op, nil
}

// Dim reports the operator's (square) dimension. Zero for the zero value.
func (o Operator) Dim() int {
	if o.m == nil {
		return 0
	}
	r, _ := o.m.Dims()
	return r
}

// At returns the matrix element at row i, column j.
func (o Operator) At(i, j int) complex128 { return o.m.At(i, j) }

// Add returns a + b.
func Add(a, b Operator) (Operator, error) {
	n := a.Dim()
	if n != b.Dim() {
		return Operator{}, fmt.Errorf("%w: %d vs %d", ErrShapeMismatch, n, b.Dim())
	}
	out, err := Zero(n)
	if err != nil {
		return Operator{}, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.m.Set(i, j, a.m.At(i, j)+b.m.At(i, j))
		}
	}
	return out, nil
}

// Sub returns a - b.
func Sub(a, b Operator) (Operator, error) {
	neg := Scale(-1, b)
	return Add(a, neg)
}

// Scale returns c * a.
func Scale(c complex128, a Operator) Operator {
	n := a.Dim()
	out, _ := Zero(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.m.Set(i, j, c*a.m.At(i, j))
		}
	}
	return out
}

// Mul returns the matrix product a * b of two same-shaped operators.
func Mul(a, b Operator) (Operator, error) {
	n := a.Dim()
	if n != b.Dim() {
		return Operator{}, fmt.Errorf("%w: %d vs %d", ErrShapeMismatch, n, b.Dim())
	}
	out, err := Zero(n)
	if err != nil {
		return Operator{}, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var acc complex128
			for k := 0; k < n; k++ {
				acc += a.m.At(i, k) * b.m.At(k, j)
			}
			out.m.Set(i, j, acc)
		}
	}
	return out, nil
}

// Sum returns the elementwise sum of all operators. All operands must
// share one dimension.
func Sum(ops []Operator) (Operator, error) {
	if len(ops) == 0 {
		return Operator{}, ErrEmptySum
	}
	n := ops[0].Dim()
	out, err := Zero(n)
	if err != nil {
		return Operator{}, err
	}
	for _, op := range ops {
		if op.Dim() != n {
			return Operator{}, fmt.Errorf("%w: %d vs %d", ErrShapeMismatch, n, op.Dim())
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				out.m.Set(i, j, out.m.At(i, j)+op.m.At(i, j))
			}
		}
	}
	return out, nil
}

// Kron returns the Kronecker product a (x) b; the left operand varies
// slowest, matching the shape's left-to-right composition order.
func Kron(a, b Operator) Operator {
	na, nb := a.Dim(), b.Dim()
	out, _ := Zero(na * nb)
	for ia := 0; ia < na; ia++ {
		for ja := 0; ja < na; ja++ {
			v := a.m.At(ia, ja)
			if v == 0 {
				continue
			}
			for ib := 0; ib < nb; ib++ {
				for jb := 0; jb < nb; jb++ {
					out.m.Set(ia*nb+ib, ja*nb+jb, v*b.m.At(ib, jb))
				}
			}
		}
	}
	return out
}

// IsHermitian reports whether o equals its own conjugate transpose within
// the elementwise tolerance tol.
func (o Operator) IsHermitian(tol float64) bool {
	n := o.Dim()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if cmplx.Abs(o.m.At(i, j)-cmplx.Conj(o.m.At(j, i))) > tol {
				return false
			}
		}
	}
	return true
}

// EqualWithin reports elementwise equality of a and b within tol.
func EqualWithin(a, b Operator, tol float64) bool {
	n := a.Dim()
	if n != b.Dim() {
		return false
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if cmplx.Abs(a.m.At(i, j)-b.m.At(i, j)) > tol {
				return false
			}
		}
	}
	return true
}
