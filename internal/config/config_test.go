package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hamforge/hamforge/internal/catalog"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Model != DefaultModel {
		t.Errorf("default model %q, want %q", cfg.Model, DefaultModel)
	}
	if cfg.DataDir != DefaultDataDir {
		t.Errorf("default data dir %q, want %q", cfg.DataDir, DefaultDataDir)
	}
	if cfg.Params == nil {
		t.Error("default params map should be initialized")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := &Config{
		Model:  "dicke",
		Preset: "critical",
		Params: map[string]float64{"g": 0.8},
	}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Model != "dicke" || loaded.Preset != "critical" {
		t.Errorf("round trip changed selection: %+v", loaded)
	}
	if loaded.Params["g"] != 0.8 {
		t.Errorf("round trip lost params: %v", loaded.Params)
	}
	// Fields absent from the file fall back to defaults.
	if loaded.DataDir != DefaultDataDir {
		t.Errorf("expected default data dir, got %q", loaded.DataDir)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("model: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestMerged_PresetWithOverrides(t *testing.T) {
	cfg := &Config{
		Model:  "heisenberg-chain",
		Preset: "xxz",
		Params: map[string]float64{"Jz": 0.25},
	}
	merged := cfg.Merged()
	if merged["N_spins"] != 4 {
		t.Errorf("preset value lost: %v", merged)
	}
	if merged["Jz"] != 0.25 {
		t.Errorf("explicit param should win over preset: %v", merged)
	}
}

func TestMerged_NoPreset(t *testing.T) {
	cfg := &Config{Model: "jaynes-cummings", Params: map[string]float64{"g": 0.2}}
	merged := cfg.Merged()
	if len(merged) != 1 || merged["g"] != 0.2 {
		t.Errorf("unexpected merge without preset: %v", merged)
	}
}

func TestPresets_CoverCatalogue(t *testing.T) {
	// Every catalogue model carries at least the reference preset, and
	// every preset constructs a valid model.
	for _, tag := range catalog.Tags() {
		names := ListPresets(tag)
		if len(names) == 0 {
			t.Errorf("%s: no presets", tag)
			continue
		}
		found := false
		for _, name := range names {
			if name == "reference" {
				found = true
			}
			params := GetPreset(tag, name)
			if params == nil {
				t.Errorf("%s/%s: listed but not retrievable", tag, name)
				continue
			}
			m, err := catalog.New(tag, params)
			if err != nil {
				t.Errorf("%s/%s: %v", tag, name, err)
				continue
			}
			if err := m.Validate(); err != nil {
				t.Errorf("%s/%s: preset does not validate: %v", tag, name, err)
			}
		}
		if !found {
			t.Errorf("%s: missing reference preset", tag)
		}
	}
}

func TestGetPreset_Copies(t *testing.T) {
	first := GetPreset("dicke", "reference")
	first["g"] = 42
	second := GetPreset("dicke", "reference")
	if second["g"] == 42 {
		t.Error("mutating a returned preset leaked into the table")
	}
}

func TestGetPreset_Unknown(t *testing.T) {
	if GetPreset("jaynes-cummings", "nope") != nil {
		t.Error("unknown preset should return nil")
	}
	if GetPreset("nope", "reference") != nil {
		t.Error("unknown model should return nil")
	}
	if ListPresets("nope") != nil {
		t.Error("unknown model should list nil")
	}
}
