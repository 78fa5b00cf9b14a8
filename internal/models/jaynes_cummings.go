package models

import (
	"github.com/hamforge/hamforge/internal/hilbert"
	"github.com/hamforge/hamforge/internal/operator"
)

// JaynesCummings is a single cavity mode coupled to a two-level atom
// under the rotating-wave approximation:
//
//	H = wc a†a + (wa/2) σz + g (a†σ- + aσ+)
//
// At zero coupling this coincides with [QuantumRabi], whose
// counter-rotating terms vanish with g.
type JaynesCummings struct {
	Cutoff     int     // cavity truncation N, >= 1
	CavityFreq float64 // wc
	AtomFreq   float64 // wa
	Coupling   float64 // g
}

// NewJaynesCummings returns the model at its catalogue reference
// parameters.
func NewJaynesCummings() *JaynesCummings {
	return &JaynesCummings{Cutoff: 5, CavityFreq: 1.0, AtomFreq: 1.0, Coupling: 0.1}
}

func (m *JaynesCummings) Tag() string    { return "jaynes-cummings" }
func (m *JaynesCummings) Name() string   { return "Jaynes-Cummings" }
func (m *JaynesCummings) Domain() string { return DomainQuantumOptics }

func (m *JaynesCummings) Validate() error {
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

func (m *JaynesCummings) HilbertSpace() (hilbert.Shape, error) {
	return hilbert.NewShape(
		hilbert.Subsystem{Name: "cavity", Kind: hilbert.BosonicMode, Dim: m.Cutoff},
		hilbert.Subsystem{Name: "atom", Kind: hilbert.TwoLevel, Dim: 2},
	)
}

func (m *JaynesCummings) Terms(shape hilbert.Shape) ([]operator.Term, error) {
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
	return []operator.Term{
		{Coeff: complex(m.CavityFreq, 0), Factors: map[string]operator.Operator{"cavity": nCav}},
		{Coeff: complex(0.5*m.AtomFreq, 0), Factors: map[string]operator.Operator{"atom": sz}},
		// RWA coupling: a†σ- + aσ+, co-rotating pieces only.
		{Coeff: g, Factors: map[string]operator.Operator{"cavity": create, "atom": lower}},
		{Coeff: g, Factors: map[string]operator.Operator{"cavity": annihilate, "atom": raise}},
	}, nil
}

func (m *JaynesCummings) Params() map[string]float64 {
	return map[string]float64{
		"N":  float64(m.Cutoff),
		"wc": m.CavityFreq,
		"wa": m.AtomFreq,
		"g":  m.Coupling,
	}
}
