package models

// ReferenceEntry is a catalogued model's documented reference parameter
// set and the Hilbert-space shape verified for it.
type ReferenceEntry struct {
	Params map[string]float64
	Shape  [2]int
}

// references is process-wide read-only catalogue data; initialized once,
// never mutated.
var references = map[string]ReferenceEntry{
	"jaynes-cummings": {
		Params: map[string]float64{"N": 5, "wc": 1.0, "wa": 1.0, "g": 0.1},
		Shape:  [2]int{10, 10},
	},
	"quantum-rabi": {
		Params: map[string]float64{"N": 5, "wc": 1.0, "wa": 1.0, "g": 0.1},
		Shape:  [2]int{10, 10},
	},
	"tavis-cummings": {
		Params: map[string]float64{"N_atoms": 2, "N_cavity": 3, "wc": 1.0, "wa": 1.0, "g": 0.1},
		Shape:  [2]int{12, 12},
	},
	"dicke": {
		Params: map[string]float64{"N_atoms": 4, "N_cavity": 5, "wc": 1.0, "wa": 1.0, "g": 0.5},
		Shape:  [2]int{25, 25},
	},
	"heisenberg-chain": {
		Params: map[string]float64{"N_spins": 3, "Jx": 1.0, "Jy": 1.0, "Jz": 1.0, "periodic": 0},
		Shape:  [2]int{8, 8},
	},
	"bose-hubbard": {
		Params: map[string]float64{"N_sites": 3, "N_levels": 2, "t": 1.0, "U": 2.0, "periodic": 0},
		Shape:  [2]int{8, 8},
	},
}

// Reference looks up the documented reference entry for a model tag. The
// returned parameter map is a copy; catalogue data cannot be mutated.
func Reference(tag string) (ReferenceEntry, bool) {
	ref, ok := references[tag]
	if !ok {
		return ReferenceEntry{}, false
	}
	params := make(map[string]float64, len(ref.Params))
	for k, v := range ref.Params {
		params[k] = v
	}
	return ReferenceEntry{Params: params, Shape: ref.Shape}, true
}

// Tags lists the catalogued model tags in their documented order.
func Tags() []string {
	return []string{
		"jaynes-cummings",
		"quantum-rabi",
		"tavis-cummings",
		"dicke",
		"heisenberg-chain",
		"bose-hubbard",
	}
}
