package models

import (
	"fmt"

	"github.com/hamforge/hamforge/internal/hilbert"
	"github.com/hamforge/hamforge/internal/operator"
)

// BoseHubbard is a 1D lattice of truncated bosonic modes with
// nearest-neighbor hopping and on-site interaction:
//
//	H = -t Σ_<ij> (a†_i a_j + a†_j a_i) + (U/2) Σ_i n_i (n_i - 1)
//
// Each site keeps Cutoff excitation levels; a cutoff of 1 leaves a
// one-dimensional local factor (hard-core bosons frozen at zero
// occupation), which is valid and yields the zero operator.
type BoseHubbard struct {
	Sites       int     // N_sites, >= 1 (>= 3 when periodic)
	Cutoff      int     // local truncation N_levels, >= 1
	Hopping     float64 // t
	Interaction float64 // U
	Periodic    bool
}

// NewBoseHubbard returns the model at its catalogue reference parameters.
func NewBoseHubbard() *BoseHubbard {
	return &BoseHubbard{Sites: 3, Cutoff: 2, Hopping: 1.0, Interaction: 2.0}
}

func (m *BoseHubbard) Tag() string    { return "bose-hubbard" }
func (m *BoseHubbard) Name() string   { return "Bose-Hubbard" }
func (m *BoseHubbard) Domain() string { return DomainLatticeModels }

func (m *BoseHubbard) Validate() error {
	if err := atLeast("N_sites", m.Sites, 1); err != nil {
		return err
	}
	if err := ringSize("N_sites", m.Sites, m.Periodic); err != nil {
		return err
	}
	if err := atLeast("N_levels", m.Cutoff, 1); err != nil {
		return err
	}
	if err := finite("t", m.Hopping); err != nil {
		return err
	}
	return finite("U", m.Interaction)
}

func (m *BoseHubbard) HilbertSpace() (hilbert.Shape, error) {
	subs := make([]hilbert.Subsystem, m.Sites)
	for i := range subs {
		subs[i] = hilbert.Subsystem{Name: siteName(i), Kind: hilbert.LatticeSite, Dim: m.Cutoff}
	}
	return hilbert.NewShape(subs...)
}

func (m *BoseHubbard) Terms(shape hilbert.Shape) ([]operator.Term, error) {
	create, err := operator.Elementary(hilbert.LatticeSite, m.Cutoff, operator.RoleCreate)
	if err != nil {
		return nil, err
	}
	annihilate, err := operator.Elementary(hilbert.LatticeSite, m.Cutoff, operator.RoleAnnihilate)
	if err != nil {
		return nil, err
	}
	num, err := operator.Elementary(hilbert.LatticeSite, m.Cutoff, operator.RoleNumber)
	if err != nil {
		return nil, err
	}
	// On-site n(n-1), the a†a†aa normal-ordered pair interaction.
	nn, err := operator.Mul(num, num)
	if err != nil {
		return nil, err
	}
	pair, err := operator.Sub(nn, num)
	if err != nil {
		return nil, err
	}

	t := complex(-m.Hopping, 0)
	var terms []operator.Term
	for _, bond := range chainBonds(m.Sites, m.Periodic) {
		i, j := siteName(bond[0]), siteName(bond[1])
		terms = append(terms,
			operator.Term{Coeff: t, Factors: map[string]operator.Operator{i: create, j: annihilate}},
			operator.Term{Coeff: t, Factors: map[string]operator.Operator{i: annihilate, j: create}},
		)
	}
	for i := 0; i < m.Sites; i++ {
		terms = append(terms, operator.Term{
			Coeff:   complex(0.5*m.Interaction, 0),
			Factors: map[string]operator.Operator{siteName(i): pair},
		})
	}
	return terms, nil
}

func (m *BoseHubbard) Params() map[string]float64 {
	periodic := 0.0
	if m.Periodic {
		periodic = 1.0
	}
	return map[string]float64{
		"N_sites":  float64(m.Sites),
		"N_levels": float64(m.Cutoff),
		"t":        m.Hopping,
		"U":        m.Interaction,
		"periodic": periodic,
	}
}

func siteName(i int) string { return fmt.Sprintf("site-%d", i+1) }
