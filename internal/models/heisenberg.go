package models

import (
	"fmt"

	"github.com/hamforge/hamforge/internal/hilbert"
	"github.com/hamforge/hamforge/internal/operator"
)

// HeisenbergChain is a 1D chain of N spins with anisotropic
// nearest-neighbor exchange:
//
//	H = Σ_<nm> Jx σx_n σx_m + Jy σy_n σy_m + Jz σz_n σz_m
//
// The bond sum runs over (n, n+1) for an open chain; a periodic chain
// adds the wrap-around bond (N-1, 0) and requires at least three spins.
type HeisenbergChain struct {
	Spins    int // N_spins, >= 1 (>= 3 when periodic)
	Jx       float64
	Jy       float64
	Jz       float64
	Periodic bool
}

// NewHeisenbergChain returns the model at its catalogue reference
// parameters (the isotropic open 3-spin chain).
func NewHeisenbergChain() *HeisenbergChain {
	return &HeisenbergChain{Spins: 3, Jx: 1.0, Jy: 1.0, Jz: 1.0}
}

func (m *HeisenbergChain) Tag() string    { return "heisenberg-chain" }
func (m *HeisenbergChain) Name() string   { return "Heisenberg-Chain" }
func (m *HeisenbergChain) Domain() string { return DomainSpinSystems }

func (m *HeisenbergChain) Validate() error {
	if err := atLeast("N_spins", m.Spins, 1); err != nil {
		return err
	}
	if err := ringSize("N_spins", m.Spins, m.Periodic); err != nil {
		return err
	}
	if err := finite("Jx", m.Jx); err != nil {
		return err
	}
	if err := finite("Jy", m.Jy); err != nil {
		return err
	}
	return finite("Jz", m.Jz)
}

func (m *HeisenbergChain) HilbertSpace() (hilbert.Shape, error) {
	subs := make([]hilbert.Subsystem, m.Spins)
	for i := range subs {
		subs[i] = hilbert.Subsystem{Name: spinName(i), Kind: hilbert.TwoLevel, Dim: 2}
	}
	return hilbert.NewShape(subs...)
}

func (m *HeisenbergChain) Terms(shape hilbert.Shape) ([]operator.Term, error) {
	sx, err := operator.Elementary(hilbert.TwoLevel, 2, operator.RolePauliX)
	if err != nil {
		return nil, err
	}
	sy, err := operator.Elementary(hilbert.TwoLevel, 2, operator.RolePauliY)
	if err != nil {
		return nil, err
	}
	sz, err := operator.Elementary(hilbert.TwoLevel, 2, operator.RolePauliZ)
	if err != nil {
		return nil, err
	}

	var terms []operator.Term
	for _, bond := range chainBonds(m.Spins, m.Periodic) {
		n, p := spinName(bond[0]), spinName(bond[1])
		terms = append(terms,
			operator.Term{Coeff: complex(m.Jx, 0), Factors: map[string]operator.Operator{n: sx, p: sx}},
			operator.Term{Coeff: complex(m.Jy, 0), Factors: map[string]operator.Operator{n: sy, p: sy}},
			operator.Term{Coeff: complex(m.Jz, 0), Factors: map[string]operator.Operator{n: sz, p: sz}},
		)
	}
	if len(terms) == 0 {
		// Single free spin: the Hamiltonian is identically zero.
		terms = append(terms, operator.Term{Coeff: 0})
	}
	return terms, nil
}

func (m *HeisenbergChain) Params() map[string]float64 {
	periodic := 0.0
	if m.Periodic {
		periodic = 1.0
	}
	return map[string]float64{
		"N_spins":  float64(m.Spins),
		"Jx":       m.Jx,
		"Jy":       m.Jy,
		"Jz":       m.Jz,
		"periodic": periodic,
	}
}

// chainBonds enumerates nearest-neighbor pairs along a 1D chain.
func chainBonds(n int, periodic bool) [][2]int {
	var bonds [][2]int
	for i := 0; i+1 < n; i++ {
		bonds = append(bonds, [2]int{i, i + 1})
	}
	if periodic && n >= 3 {
		bonds = append(bonds, [2]int{n - 1, 0})
	}
	return bonds
}

func spinName(i int) string { return fmt.Sprintf("spin-%d", i+1) }
