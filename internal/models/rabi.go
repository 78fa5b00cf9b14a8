package models

import (
	"github.com/hamforge/hamforge/internal/hilbert"
	"github.com/hamforge/hamforge/internal/operator"
)

// QuantumRabi is the full light-matter interaction without the
// rotating-wave approximation:
//
//	H = wc a†a + (wa/2) σz + g (a† + a) σx
//
// Expanding (a† + a)σx yields both the co-rotating pieces of
// Jaynes-Cummings and the counter-rotating a†σ+ + aσ- pieces; at g = 0
// the two models share their coupling content (none).
type QuantumRabi struct {
	Cutoff     int     // cavity truncation N, >= 1
	CavityFreq float64 // wc
	AtomFreq   float64 // wa
	Coupling   float64 // g
}

// NewQuantumRabi returns the model at its catalogue reference parameters.
func NewQuantumRabi() *QuantumRabi {
	return &QuantumRabi{Cutoff: 5, CavityFreq: 1.0, AtomFreq: 1.0, Coupling: 0.1}
}

func (m *QuantumRabi) Tag() string    { return "quantum-rabi" }
func (m *QuantumRabi) Name() string   { return "Quantum-Rabi" }
func (m *QuantumRabi) Domain() string { return DomainQuantumOptics }

func (m *QuantumRabi) Validate() error {
	if err := atLeast("N", m.Cutoff, 1); err != nil {
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

func (m *QuantumRabi) HilbertSpace() (hilbert.Shape, error) {
	return hilbert.NewShape(
		hilbert.Subsystem{Name: "cavity", Kind: hilbert.BosonicMode, Dim: m.Cutoff},
		hilbert.Subsystem{Name: "atom", Kind: hilbert.TwoLevel, Dim: 2},
	)
}

func (m *QuantumRabi) Terms(shape hilbert.Shape) ([]operator.Term, error) {
	nCav, err := operator.Elementary(hilbert.BosonicMode, m.Cutoff, operator.RoleNumber)
	if err != nil {
		return nil, err
	}
	sz, err := operator.Elementary(hilbert.TwoLevel, 2, operator.RolePauliZ)
	if err != nil {
		return nil, err
	}
	sx, err := operator.Elementary(hilbert.TwoLevel, 2, operator.RolePauliX)
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

	g := complex(m.Coupling, 0)
	return []operator.Term{
		{Coeff: complex(m.CavityFreq, 0), Factors: map[string]operator.Operator{"cavity": nCav}},
		{Coeff: complex(0.5*m.AtomFreq, 0), Factors: map[string]operator.Operator{"atom": sz}},
		// Full coupling (a† + a)σx: co- and counter-rotating pieces.
		{Coeff: g, Factors: map[string]operator.Operator{"cavity": create, "atom": sx}},
		{Coeff: g, Factors: map[string]operator.Operator{"cavity": annihilate, "atom": sx}},
	}, nil
}

func (m *QuantumRabi) Params() map[string]float64 {
	return map[string]float64{
		"N":  float64(m.Cutoff),
		"wc": m.CavityFreq,
		"wa": m.AtomFreq,
		"g":  m.Coupling,
	}
}
