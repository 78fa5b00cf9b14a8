// Package catalog maps stable model tags to constructors and exposes the
// documented reference data for each catalogued Hamiltonian. It is the
// boundary where untyped parameter maps (CLI flags, config files,
// re-loaded metadata documents) become the typed model structs.
package catalog

import (
	"errors"
	"fmt"
	"math"

	"github.com/hamforge/hamforge/internal/hilbert"
	"github.com/hamforge/hamforge/internal/metadata"
	"github.com/hamforge/hamforge/internal/models"
)

// ErrUnknownModel indicates a tag outside the six-model catalogue.
var ErrUnknownModel = errors.New("catalog: unknown model")

// Tags lists the catalogued model tags in documented order.
func Tags() []string { return models.Tags() }

// Default constructs a model at its catalogue reference parameters.
func Default(tag string) (models.Model, error) {
	return New(tag, nil)
}

// New constructs a model from a tag and a parameter map using the
// model's documented parameter names. Missing keys fall back to the
// reference value; the returned model has not been validated yet.
func New(tag string, params map[string]float64) (models.Model, error) {
	ref, ok := models.Reference(tag)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, tag)
	}
	get := func(name string) float64 {
		if v, ok := params[name]; ok {
			return v
		}
		return ref.Params[name]
	}
	asInt := func(name string) int {
		v := get(name)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return -1
		}
		return int(v)
	}

	switch tag {
	case "jaynes-cummings":
		return &models.JaynesCummings{
			Cutoff:     asInt("N"),
			CavityFreq: get("wc"),
			AtomFreq:   get("wa"),
			Coupling:   get("g"),
		}, nil
	case "quantum-rabi":
		return &models.QuantumRabi{
			Cutoff:     asInt("N"),
			CavityFreq: get("wc"),
			AtomFreq:   get("wa"),
			Coupling:   get("g"),
		}, nil
	case "tavis-cummings":
		return &models.TavisCummings{
			Atoms:      asInt("N_atoms"),
			Cutoff:     asInt("N_cavity"),
			CavityFreq: get("wc"),
			AtomFreq:   get("wa"),
			Coupling:   get("g"),
		}, nil
	case "dicke":
		return &models.Dicke{
			Atoms:      asInt("N_atoms"),
			Cutoff:     asInt("N_cavity"),
			CavityFreq: get("wc"),
			AtomFreq:   get("wa"),
			Coupling:   get("g"),
		}, nil
	case "heisenberg-chain":
		return &models.HeisenbergChain{
			Spins:    asInt("N_spins"),
			Jx:       get("Jx"),
			Jy:       get("Jy"),
			Jz:       get("Jz"),
			Periodic: get("periodic") != 0,
		}, nil
	case "bose-hubbard":
		return &models.BoseHubbard{
			Sites:       asInt("N_sites"),
			Cutoff:      asInt("N_levels"),
			Hopping:     get("t"),
			Interaction: get("U"),
			Periodic:    get("periodic") != 0,
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownModel, tag)
}

// Rederive rebuilds the Hilbert space implied by a document's parameters.
// A round-trippable document reproduces its own hilbert_space_shape field
// exactly.
func Rederive(doc metadata.Document) (hilbert.Shape, error) {
	m, err := New(doc.Model, doc.Parameters)
	if err != nil {
		return hilbert.Shape{}, err
	}
	if err := m.Validate(); err != nil {
		return hilbert.Shape{}, err
	}
	return m.HilbertSpace()
}
