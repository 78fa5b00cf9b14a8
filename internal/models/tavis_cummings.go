package models

import (
	"fmt"

	"github.com/hamforge/hamforge/internal/hilbert"
	"github.com/hamforge/hamforge/internal/operator"
)

// TavisCummings couples one cavity mode to N individual two-level atoms
// under the rotating-wave approximation:
//
//	H = wc a†a + (wa/2) Σ σz_i + g Σ (a†σ-_i + aσ+_i)
//
// With a single atom the term structure reduces to Jaynes-Cummings: one
// cavity number term, one atomic energy term, one RWA coupling pair.
type TavisCummings struct {
	Atoms      int     // N_atoms, >= 1
	Cutoff     int     // cavity truncation N_cavity, >= 1
	CavityFreq float64 // wc
	AtomFreq   float64 // wa
	Coupling   float64 // g
}

// NewTavisCummings returns the model at its catalogue reference
// parameters.
func NewTavisCummings() *TavisCummings {
	return &TavisCummings{Atoms: 2, Cutoff: 3, CavityFreq: 1.0, AtomFreq: 1.0, Coupling: 0.1}
}

func (m *TavisCummings) Tag() string    { return "tavis-cummings" }
func (m *TavisCummings) Name() string   { return "Tavis-Cummings" }
func (m *TavisCummings) Domain() string { return DomainQuantumOptics }

func (m *TavisCummings) Validate() error {
	if err := atLeast("N_atoms", m.Atoms, 1); err != nil {
		return err
	}
	if err := atLeast("N_cavity", m.Cutoff, 1); err != nil {
		return err
	}
	if err := finite("wc", m.CavityFreq); err != nil {
		return err
	}
	if err := finite("wa", m.AtomFreq); err != nil {
		return err
	}
	return finite("g", m.Coupling)
}

func (m *TavisCummings) HilbertSpace() (hilbert.Shape, error) {
	subs := make([]hilbert.Subsystem, 0, m.Atoms+1)
	subs = append(subs, hilbert.Subsystem{Name: "cavity", Kind: hilbert.BosonicMode, Dim: m.Cutoff})
	for i := 0; i < m.Atoms; i++ {
		subs = append(subs, hilbert.Subsystem{Name: atomName(i), Kind: hilbert.TwoLevel, Dim: 2})
	}
	return hilbert.NewShape(subs...)
}

func (m *TavisCummings) Terms(shape hilbert.Shape) ([]operator.Term, error) {
	nCav, err := operator.Elementary(hilbert.BosonicMode, m.Cutoff, operator.RoleNumber)
	if err != nil {
		return nil, err
	}
	sz, err := operator.Elementary(hilbert.TwoLevel, 2, operator.RolePauliZ)
	if err != nil {
		return nil, err
	}
	create, err := operator.Elementary(hilbert.BosonicMode, m.Cutoff, operator.RoleCreate)
	if err != nil {
		return nil, err
	}
	annihilate, err := operator.Elementary(hilbert.BosonicMode, m.Cutoff, operator.RoleAnnihilate)
	if err != nil {
		return nil, err
	}
	raise, err := operator.Elementary(hilbert.TwoLevel, 2, operator.RoleRaise)
	if err != nil {
		return nil, err
	}
	lower, err := operator.Elementary(hilbert.TwoLevel, 2, operator.RoleLower)
	if err != nil {
		return nil, err
	}

	g := complex(m.Coupling, 0)
	terms := []operator.Term{
		{Coeff: complex(m.CavityFreq, 0), Factors: map[string]operator.Operator{"cavity": nCav}},
	}
	for i := 0; i < m.Atoms; i++ {
		terms = append(terms, operator.Term{
			Coeff:   complex(0.5*m.AtomFreq, 0),
			Factors: map[string]operator.Operator{atomName(i): sz},
		})
	}
	for i := 0; i < m.Atoms; i++ {
		terms = append(terms,
			operator.Term{Coeff: g, Factors: map[string]operator.Operator{"cavity": create, atomName(i): lower}},
			operator.Term{Coeff: g, Factors: map[string]operator.Operator{"cavity": annihilate, atomName(i): raise}},
		)
	}
	return terms, nil
}

func (m *TavisCummings) Params() map[string]float64 {
	return map[string]float64{
		"N_atoms":  float64(m.Atoms),
		"N_cavity": float64(m.Cutoff),
		"wc":       m.CavityFreq,
		"wa":       m.AtomFreq,
		"g":        m.Coupling,
	}
}

func atomName(i int) string { return fmt.Sprintf("atom-%d", i+1) }
