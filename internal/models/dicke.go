package models

import (
	"math"

	"github.com/hamforge/hamforge/internal/hilbert"
	"github.com/hamforge/hamforge/internal/operator"
)

// Dicke couples one cavity mode to N atoms treated as a single collective
// spin j = N/2 living in a (2j+1)-dimensional subsystem:
//
//	H = wc a†a + wa Jz + (g/√N) (a† + a) Jx
//
// No rotating-wave approximation is made; the 1/√N scaling keeps the
// coupling extensive in the thermodynamic limit.
type Dicke struct {
	Atoms      int     // N_atoms, >= 1; collective spin dim is N_atoms+1
	Cutoff     int     // cavity truncation N_cavity, >= 1
	CavityFreq float64 // wc
	AtomFreq   float64 // wa
	Coupling   float64 // g
}

// NewDicke returns the model at its catalogue reference parameters.
func NewDicke() *Dicke {
	return &Dicke{Atoms: 4, Cutoff: 5, CavityFreq: 1.0, AtomFreq: 1.0, Coupling: 0.5}
}

func (m *Dicke) Tag() string    { return "dicke" }
func (m *Dicke) Name() string   { return "Dicke-Collective" }
func (m *Dicke) Domain() string { return DomainQuantumOptics }

func (m *Dicke) Validate() error {
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

// spinDim is 2j+1 for j = Atoms/2.
func (m *Dicke) spinDim() int { return m.Atoms + 1 }

func (m *Dicke) HilbertSpace() (hilbert.Shape, error) {
	return hilbert.NewShape(
		hilbert.Subsystem{Name: "cavity", Kind: hilbert.BosonicMode, Dim: m.Cutoff},
		hilbert.Subsystem{Name: "spin", Kind: hilbert.Spin, Dim: m.spinDim()},
	)
}

func (m *Dicke) Terms(shape hilbert.Shape) ([]operator.Term, error) {
	nCav, err := operator.Elementary(hilbert.BosonicMode, m.Cutoff, operator.RoleNumber)
	if err != nil {
		return nil, err
	}
	jz, err := operator.Elementary(hilbert.Spin, m.spinDim(), operator.RoleSpinZ)
	if err != nil {
		return nil, err
	}
	jx, err := operator.Elementary(hilbert.Spin, m.spinDim(), operator.RoleSpinX)
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

	g := complex(m.Coupling/math.Sqrt(float64(m.Atoms)), 0)
	return []operator.Term{
		{Coeff: complex(m.CavityFreq, 0), Factors: map[string]operator.Operator{"cavity": nCav}},
		{Coeff: complex(m.AtomFreq, 0), Factors: map[string]operator.Operator{"spin": jz}},
		{Coeff: g, Factors: map[string]operator.Operator{"cavity": create, "spin": jx}},
		{Coeff: g, Factors: map[string]operator.Operator{"cavity": annihilate, "spin": jx}},
	}, nil
}

func (m *Dicke) Params() map[string]float64 {
	return map[string]float64{
		"N_atoms":  float64(m.Atoms),
		"N_cavity": float64(m.Cutoff),
		"wc":       m.CavityFreq,
		"wa":       m.AtomFreq,
		"g":        m.Coupling,
	}
}
