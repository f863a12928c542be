package core

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPeptideMass(t *testing.T) {
	tests := []struct {
		name      string
		sequence  string
		massType  MassType
		mods      []ModSite
		wantMass  float64
		tolerance float64
	}{
		{
			name:      "simple tripeptide mono",
			sequence:  "AAA",
			massType:  MassMono,
			wantMass:  231.12190603948,
			tolerance: 1e-9,
		},
		{
			name:      "simple tripeptide avg",
			sequence:  "AAA",
			massType:  MassAvg,
			wantMass:  231.24,
			tolerance: 0.01,
		},
		{
			name:     "N-terminal modification",
			sequence: "AAA",
			mods: []ModSite{
				{Mass: 304.20536, Site: SiteNTerm, Name: "iTRAQ8plex"},
			},
			wantMass:  535.33,
			tolerance: 0.01,
		},
		{
			name:     "C-terminal modification",
			sequence: "AAA",
			mods: []ModSite{
				{Mass: 21.981943, Site: SiteCTerm, Name: "Cation:Na"},
			},
			wantMass:  253.10,
			tolerance: 0.01,
		},
		{
			name:     "multiple modifications",
			sequence: "AYHGMLPWK",
			mods: []ModSite{
				{Mass: 304.20536, Site: SiteNTerm, Name: "iTRAQ8plex"},
				{Mass: 44.985078, Site: 2, Name: "Nitro"},
				{Mass: 15.994915, Site: 5, Name: "Oxidation"},
				{Mass: 15.994915, Site: 7, Name: "Oxidation"},
				{Mass: 31.989829, Site: 8, Name: "Dioxidation"},
				{Mass: 21.981943, Site: SiteCTerm, Name: "Cation:Na"},
			},
			wantMass:  1536.70,
			tolerance: 0.01,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Peptide{Sequence: tt.sequence, Charge: 2, Mods: tt.mods, MassType: tt.massType}
			got, err := p.Mass()
			if err != nil {
				t.Fatalf("Mass() error = %v", err)
			}
			if math.Abs(got-tt.wantMass) > tt.tolerance {
				t.Errorf("Mass() = %.9f, want %.9f (within %g)", got, tt.wantMass, tt.tolerance)
			}
		})
	}
}

func TestPeptideInvalidResidue(t *testing.T) {
	p := &Peptide{Sequence: "AUA", Charge: 2}

	_, err := p.Mass()
	if err == nil {
		t.Fatal("Mass() expected error for invalid residue")
	}
	if !strings.Contains(err.Error(), "invalid residue detected: U") {
		t.Errorf("Mass() error = %q, want mention of residue U", err)
	}
}

func TestResidueMasses(t *testing.T) {
	p := &Peptide{
		Sequence: "AMYK",
		Charge:   2,
		Mods: []ModSite{
			{Mass: 304.20536, Site: SiteNTerm, Name: "iTRAQ8plex"},
			{Mass: 15.994915, Site: 2, Name: "Oxidation"},
			{Mass: 21.981943, Site: SiteCTerm, Name: "Cation:Na"},
		},
	}

	got, err := p.ResidueMasses()
	if err != nil {
		t.Fatalf("ResidueMasses() error = %v", err)
	}

	want := []float64{
		304.20536,                   // N-term slot
		71.03711378515,              // A
		131.04048508847 + 15.994915, // M + Oxidation
		163.06332853364,             // Y
		128.09496301519,             // K
		21.981943,                   // C-term slot
	}

	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("ResidueMasses() mismatch (-want +got):\n%s", diff)
	}
}

func TestIonSeries(t *testing.T) {
	p := &Peptide{Sequence: "AMYK", Charge: 2}

	prefix, suffix, err := p.IonSeries()
	if err != nil {
		t.Fatalf("IonSeries() error = %v", err)
	}

	wantPrefix := []float64{
		71.03711378515,
		202.07759887362,
		365.14092740726,
		493.23589042245,
	}
	wantSuffix := []float64{
		146.10552769922,
		309.16885623286,
		440.20934132133,
		511.24645510648,
	}

	if diff := cmp.Diff(wantPrefix, prefix, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("prefix series mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantSuffix, suffix, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("suffix series mismatch (-want +got):\n%s", diff)
	}

	// The trailing prefix entry plus water must equal the whole peptide mass.
	mass, err := p.Mass()
	if err != nil {
		t.Fatalf("Mass() error = %v", err)
	}
	if math.Abs(prefix[len(prefix)-1]+MassH2O-mass) > 1e-9 {
		t.Errorf("trailing prefix entry %.9f + H2O != peptide mass %.9f",
			prefix[len(prefix)-1], mass)
	}
}

func TestIonSeriesCTermModSeed(t *testing.T) {
	// A C-terminal modification seeds the suffix series in place of water.
	p := &Peptide{
		Sequence: "AMYK",
		Charge:   2,
		Mods: []ModSite{
			{Mass: 21.981943, Site: SiteCTerm, Name: "Cation:Na"},
		},
	}

	_, suffix, err := p.IonSeries()
	if err != nil {
		t.Fatalf("IonSeries() error = %v", err)
	}

	want := 21.981943 + 128.09496301519 // C-term slot + K
	if math.Abs(suffix[0]-want) > 1e-9 {
		t.Errorf("suffix[0] = %.9f, want %.9f", suffix[0], want)
	}
}

func TestSeqMasses(t *testing.T) {
	p := &Peptide{Sequence: "GW", Charge: 1}

	got, err := p.SeqMasses()
	if err != nil {
		t.Fatalf("SeqMasses() error = %v", err)
	}

	want := []float64{57.02146372069, 186.07931295073}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("SeqMasses() mismatch (-want +got):\n%s", diff)
	}
}

func TestPeptideValidate(t *testing.T) {
	tests := []struct {
		name    string
		peptide Peptide
		wantErr bool
	}{
		{
			name:    "valid",
			peptide: Peptide{Sequence: "PEPTIDE", Charge: 2},
			wantErr: false,
		},
		{
			name:    "empty sequence",
			peptide: Peptide{Charge: 2},
			wantErr: true,
		},
		{
			name:    "zero charge",
			peptide: Peptide{Sequence: "PEPTIDE"},
			wantErr: true,
		},
		{
			name: "mod site out of range",
			peptide: Peptide{
				Sequence: "AAA",
				Charge:   1,
				Mods:     []ModSite{{Mass: 15.994915, Site: 7, Name: "Oxidation"}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.peptide.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestModString(t *testing.T) {
	p := &Peptide{
		Sequence: "AMYK",
		Charge:   2,
		Mods: []ModSite{
			{Mass: 304.20536, Site: SiteNTerm, Name: "iTRAQ8plex"},
			{Mass: 15.994915, Site: 2, Name: "Oxidation"},
			{Mass: 21.981943, Site: SiteCTerm, Name: "Cation:Na"},
		},
	}

	want := "iTRAQ8plex@nterm;Oxidation@2;Cation:Na@cterm"
	if got := p.ModString(); got != want {
		t.Errorf("ModString() = %q, want %q", got, want)
	}

	empty := &Peptide{Sequence: "AAA", Charge: 1}
	if got := empty.ModString(); got != "" {
		t.Errorf("ModString() = %q, want empty", got)
	}
}

func TestPeptideName(t *testing.T) {
	p := &Peptide{Sequence: "AMYK", Charge: 2}
	if got := p.Name(); got != "AMYK/2" {
		t.Errorf("Name() = %q, want %q", got, "AMYK/2")
	}
}
