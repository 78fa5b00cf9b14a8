// Package operator is the algebra layer between the Hamiltonian models
// and the numerical engine.
//
// It supplies elementary local operators (ladder, number, Pauli, spin-j,
// identity) sized to a requested local dimension, embeds partially
// specified terms into a full composite space by Kronecker composition in
// the shape's declared order, and combines same-shaped operators by
// scalar-weighted summation.
//
// Matrices are stored in gonum's complex dense format but the engine type
// never crosses this package's boundary; callers see only [Operator].
// All functions are pure and safe for concurrent use.
package operator
