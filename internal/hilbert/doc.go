// Package hilbert describes composite Hilbert spaces as ordered products
// of subsystem factors.
//
// A [Shape] fixes both the tensor-factor ordering and the total dimension
// of a model's state space. The ordering is significant: every operator
// acting on the space must compose its local factors in exactly this
// order, so two shapes with the same subsystems in different orders are
// not interchangeable.
package hilbert
