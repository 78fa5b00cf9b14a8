package config

// Presets are named parameter sets per model. "reference" is the
// documented catalogue set each model also defaults to; the others are
// commonly studied regimes.
var Presets = map[string]map[string]map[string]float64{
	"jaynes-cummings": {
		"reference": {"N": 5, "wc": 1.0, "wa": 1.0, "g": 0.1},
		"detuned":   {"N": 5, "wc": 1.0, "wa": 1.5, "g": 0.1},
		"strong":    {"N": 10, "wc": 1.0, "wa": 1.0, "g": 0.5},
	},
	"quantum-rabi": {
		"reference":     {"N": 5, "wc": 1.0, "wa": 1.0, "g": 0.1},
		"ultrastrong":   {"N": 10, "wc": 1.0, "wa": 1.0, "g": 0.3},
		"deep-strong":   {"N": 20, "wc": 1.0, "wa": 1.0, "g": 1.5},
		"zero-coupling": {"N": 5, "wc": 1.0, "wa": 1.0, "g": 0.0},
	},
	"tavis-cummings": {
		"reference": {"N_atoms": 2, "N_cavity": 3, "wc": 1.0, "wa": 1.0, "g": 0.1},
		"triplet":   {"N_atoms": 3, "N_cavity": 4, "wc": 1.0, "wa": 1.0, "g": 0.1},
	},
	"dicke": {
		"reference":   {"N_atoms": 4, "N_cavity": 5, "wc": 1.0, "wa": 1.0, "g": 0.5},
		"subcritical": {"N_atoms": 4, "N_cavity": 5, "wc": 1.0, "wa": 1.0, "g": 0.3},
		"critical":    {"N_atoms": 4, "N_cavity": 5, "wc": 1.0, "wa": 1.0, "g": 1.0},
	},
	"heisenberg-chain": {
		"reference": {"N_spins": 3, "Jx": 1.0, "Jy": 1.0, "Jz": 1.0, "periodic": 0},
		"xxz":       {"N_spins": 4, "Jx": 1.0, "Jy": 1.0, "Jz": 0.5, "periodic": 0},
		"ising":     {"N_spins": 4, "Jx": 0.0, "Jy": 0.0, "Jz": 1.0, "periodic": 0},
		"ring":      {"N_spins": 4, "Jx": 1.0, "Jy": 1.0, "Jz": 1.0, "periodic": 1},
	},
	"bose-hubbard": {
		"reference": {"N_sites": 3, "N_levels": 2, "t": 1.0, "U": 2.0, "periodic": 0},
		"hardcore":  {"N_sites": 4, "N_levels": 2, "t": 1.0, "U": 0.0, "periodic": 0},
		"mott":      {"N_sites": 3, "N_levels": 3, "t": 0.1, "U": 5.0, "periodic": 0},
	},
}

// GetPreset returns a copy of a named preset, or nil when the model or
// preset is unknown.
func GetPreset(model, preset string) map[string]float64 {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	params, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	out := make(map[string]float64, len(params))
	for k, v := range params {
		out[k] = v
	}
	return out
}

// ListPresets names the presets available for a model, or nil for an
// unknown model.
func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	return names
}
