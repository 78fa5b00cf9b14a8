package models

import (
	"errors"
	"math"
	"testing"

	"github.com/hamforge/hamforge/internal/operator"
)

func catalogueModels() []Model {
	return []Model{
		NewJaynesCummings(),
		NewQuantumRabi(),
		NewTavisCummings(),
		NewDicke(),
		NewHeisenbergChain(),
		NewBoseHubbard(),
	}
}

func mustAssemble(t *testing.T, m Model) *Instance {
	t.Helper()
	inst, err := Assemble(m)
	if err != nil {
		t.Fatalf("%s: assemble failed: %v", m.Tag(), err)
	}
	return inst
}

func TestAssemble_DimensionMatchesShape(t *testing.T) {
	for _, m := range catalogueModels() {
		inst := mustAssemble(t, m)
		if got, want := inst.Operator().Dim(), inst.Shape().TotalDim(); got != want {
			t.Errorf("%s: operator dim %d, shape product %d", m.Tag(), got, want)
		}
	}
}

func TestAssemble_Hermitian(t *testing.T) {
	for _, m := range catalogueModels() {
		inst := mustAssemble(t, m)
		if !inst.Operator().IsHermitian(HermitianTol) {
			t.Errorf("%s: assembled operator is not Hermitian", m.Tag())
		}
	}
}

func TestReferenceShapes(t *testing.T) {
	want := map[string][2]int{
		"jaynes-cummings":  {10, 10},
		"quantum-rabi":     {10, 10},
		"tavis-cummings":   {12, 12},
		"dicke":            {25, 25},
		"heisenberg-chain": {8, 8},
		"bose-hubbard":     {8, 8},
	}
	for _, m := range catalogueModels() {
		inst := mustAssemble(t, m)
		if dims := inst.Shape().Dims(); dims != want[m.Tag()] {
			t.Errorf("%s: shape %v, want %v", m.Tag(), dims, want[m.Tag()])
		}
		if status := inst.Check(); status != StatusValid {
			_, reason := inst.Status()
			t.Errorf("%s: validation failed: %s", m.Tag(), reason)
		}
	}
}

func TestCheck_ReferenceShapeRegression(t *testing.T) {
	// Off-reference parameters legitimately change the shape and must
	// still validate; the catalogue comparison only binds the reference
	// parameter set.
	m := NewJaynesCummings()
	m.Cutoff = 7
	inst := mustAssemble(t, m)
	if status := inst.Check(); status != StatusValid {
		_, reason := inst.Status()
		t.Errorf("off-reference cutoff should validate, got: %s", reason)
	}
	if dims := inst.Shape().Dims(); dims != [2]int{14, 14} {
		t.Errorf("expected (14,14), got %v", dims)
	}
}

func TestValidate_InvalidParameters(t *testing.T) {
	tests := []struct {
		name  string
		model Model
	}{
		{"tavis-cummings zero atoms", &TavisCummings{Atoms: 0, Cutoff: 3, CavityFreq: 1, AtomFreq: 1, Coupling: 0.1}},
		{"dicke negative atoms", &Dicke{Atoms: -1, Cutoff: 5, CavityFreq: 1, AtomFreq: 1, Coupling: 0.5}},
		{"jc zero cutoff", &JaynesCummings{Cutoff: 0, CavityFreq: 1, AtomFreq: 1, Coupling: 0.1}},
		{"jc NaN coupling", &JaynesCummings{Cutoff: 5, CavityFreq: 1, AtomFreq: 1, Coupling: math.NaN()}},
		{"rabi infinite coupling", &QuantumRabi{Cutoff: 5, CavityFreq: 1, AtomFreq: 1, Coupling: math.Inf(1)}},
		{"bose-hubbard zero sites", &BoseHubbard{Sites: 0, Cutoff: 2, Hopping: 1, Interaction: 2}},
		{"heisenberg periodic pair", &HeisenbergChain{Spins: 2, Jx: 1, Jy: 1, Jz: 1, Periodic: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Assemble(tt.model)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestRabiEqualsJaynesCummingsAtZeroCoupling(t *testing.T) {
	// The counter-rotating terms carry a factor g; at g = 0 the two
	// models are the same free Hamiltonian.
	jc := NewJaynesCummings()
	jc.Coupling = 0
	rabi := NewQuantumRabi()
	rabi.Coupling = 0

	jcInst := mustAssemble(t, jc)
	rabiInst := mustAssemble(t, rabi)

	if !operator.EqualWithin(jcInst.Operator(), rabiInst.Operator(), 1e-12) {
		t.Error("JC and Rabi operators should coincide at zero coupling")
	}
}

func TestTavisCummingsSingleAtomReducesToJC(t *testing.T) {
	tc := &TavisCummings{Atoms: 1, Cutoff: 5, CavityFreq: 1.0, AtomFreq: 1.0, Coupling: 0.1}
	inst := mustAssemble(t, tc)

	// Same space as Jaynes-Cummings at the same cutoff.
	if got := inst.Shape().Dims(); got != [2]int{10, 10} {
		t.Errorf("expected (10,10), got %v", got)
	}
	// Same term families: cavity number, one atomic energy term, one RWA
	// coupling pair.
	if got := len(inst.Terms()); got != 4 {
		t.Errorf("expected 4 terms, got %d", got)
	}

	// Numerically identical to JC at the same parameters: both use the
	// (wa/2) sigma-z atomic energy convention.
	jc := &JaynesCummings{Cutoff: 5, CavityFreq: 1.0, AtomFreq: 1.0, Coupling: 0.1}
	a := inst.Operator()
	b := mustAssemble(t, jc).Operator()
	if !operator.EqualWithin(a, b, 1e-12) {
		t.Error("single-atom Tavis-Cummings differs from Jaynes-Cummings")
	}
}

func TestBoseHubbard_HardCoreCutoff(t *testing.T) {
	m := &BoseHubbard{Sites: 3, Cutoff: 1, Hopping: 1.0, Interaction: 2.0}
	inst := mustAssemble(t, m)

	if got := inst.Shape().TotalDim(); got != 1 {
		t.Errorf("expected total dim 1 with cutoff 1, got %d", got)
	}
	if status := inst.Check(); status != StatusValid {
		_, reason := inst.Status()
		t.Errorf("hard-core lattice should validate: %s", reason)
	}
}

func TestHeisenberg_PeriodicAddsBond(t *testing.T) {
	open := &HeisenbergChain{Spins: 4, Jx: 1, Jy: 1, Jz: 1}
	ring := &HeisenbergChain{Spins: 4, Jx: 1, Jy: 1, Jz: 1, Periodic: true}

	openTerms := mustAssemble(t, open).Terms()
	ringTerms := mustAssemble(t, ring).Terms()

	// 3 bonds open, 4 bonds periodic, 3 spin components each.
	if len(openTerms) != 9 {
		t.Errorf("open chain: expected 9 terms, got %d", len(openTerms))
	}
	if len(ringTerms) != 12 {
		t.Errorf("ring: expected 12 terms, got %d", len(ringTerms))
	}
}

func TestInstance_StateMachine(t *testing.T) {
	inst := mustAssemble(t, NewJaynesCummings())

	status, _ := inst.Status()
	if status != StatusUnchecked {
		t.Errorf("expected unchecked before Check, got %v", status)
	}

	doc := inst.Export()
	if doc.ValidationStatus != "unchecked" {
		t.Errorf("export before check should carry unchecked, got %q", doc.ValidationStatus)
	}

	if got := inst.Check(); got != StatusValid {
		t.Errorf("expected valid, got %v", got)
	}
	// Check is terminal and idempotent.
	if got := inst.Check(); got != StatusValid {
		t.Errorf("repeated Check changed status to %v", got)
	}

	doc = inst.Export()
	if doc.ValidationStatus != "valid" {
		t.Errorf("export after check should carry valid, got %q", doc.ValidationStatus)
	}
}

func TestExport_Idempotent(t *testing.T) {
	inst := mustAssemble(t, NewDicke())
	inst.Check()

	first, err := inst.Export().EncodeJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := inst.Export().EncodeJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(first) != string(second) {
		t.Error("repeated export is not byte-identical")
	}
}

func TestExport_Fields(t *testing.T) {
	inst := mustAssemble(t, NewBoseHubbard())
	inst.Check()
	doc := inst.Export()

	if doc.Model != "bose-hubbard" {
		t.Errorf("unexpected model tag %q", doc.Model)
	}
	if doc.Domain != DomainLatticeModels {
		t.Errorf("unexpected domain %q", doc.Domain)
	}
	wantDims := []int{2, 2, 2}
	if len(doc.HilbertSpaceShape) != len(wantDims) {
		t.Fatalf("unexpected shape %v", doc.HilbertSpaceShape)
	}
	for i, d := range wantDims {
		if doc.HilbertSpaceShape[i] != d {
			t.Errorf("shape[%d] = %d, want %d", i, doc.HilbertSpaceShape[i], d)
		}
	}
	if doc.Parameters["t"] != 1.0 || doc.Parameters["U"] != 2.0 {
		t.Errorf("unexpected parameters %v", doc.Parameters)
	}
}

func TestReferenceTableImmutable(t *testing.T) {
	ref, ok := Reference("dicke")
	if !ok {
		t.Fatal("dicke missing from reference table")
	}
	ref.Params["g"] = 99

	again, _ := Reference("dicke")
	if again.Params["g"] == 99 {
		t.Error("mutating a returned reference leaked into the catalogue table")
	}
}
