// Package models implements the Hamiltonian catalogue: six physics models
// behind one contract.
//
// Each model is a struct holding its typed, range-documented parameters:
//
//   - [JaynesCummings]: cavity + two-level atom under the rotating-wave
//     approximation
//   - [QuantumRabi]: the same system without the approximation
//   - [TavisCummings]: one cavity coupled to N individual atoms (RWA)
//   - [Dicke]: one cavity coupled to a collective spin j = N/2, no RWA
//   - [HeisenbergChain]: nearest-neighbor XYZ spin chain
//   - [BoseHubbard]: truncated bosons hopping on a 1D lattice
//
// A model declares its Hilbert space and its term list; [Assemble] turns
// those into a composite operator via the operator package and returns an
// immutable [Instance]. Re-parameterization means constructing a new
// model, never mutating an instance.
package models
