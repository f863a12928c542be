package core

import (
	"math"
	"testing"
)

func TestMZ(t *testing.T) {
	tests := []struct {
		name        string
		neutralMass float64
		charge      int
		wantMZ      float64
		tolerance   float64
	}{
		{
			name:        "charge 1",
			neutralMass: 1000.0,
			charge:      1,
			wantMZ:      1001.007276466879,
			tolerance:   1e-9,
		},
		{
			name:        "charge 2",
			neutralMass: 1000.0,
			charge:      2,
			wantMZ:      501.007276466879,
			tolerance:   1e-9,
		},
		{
			name:        "charge 3",
			neutralMass: 1536.70,
			charge:      3,
			wantMZ:      513.240609800212,
			tolerance:   1e-6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MZ(tt.neutralMass, tt.charge)
			if math.Abs(got-tt.wantMZ) > tt.tolerance {
				t.Errorf("MZ() = %.9f, want %.9f (within %g)", got, tt.wantMZ, tt.tolerance)
			}
		})
	}
}

func TestResidueMassSelection(t *testing.T) {
	ala := AminoAcidMasses['A']

	if got := ala.Mass(MassMono); got != 71.03711378515 {
		t.Errorf("Mass(MassMono) = %v, want 71.03711378515", got)
	}
	if got := ala.Mass(MassAvg); got != 71.078019596249 {
		t.Errorf("Mass(MassAvg) = %v, want 71.078019596249", got)
	}
}

func TestLeucineIsoleucineIsobaric(t *testing.T) {
	if AminoAcidMasses['L'] != AminoAcidMasses['I'] {
		t.Error("L and I residues should share the same mass")
	}
}

func TestRoundFloat(t *testing.T) {
	tests := []struct {
		name      string
		val       float64
		precision int
		want      float64
	}{
		{"round to 2 decimals", 3.14159, 2, 3.14},
		{"round to 4 decimals", 3.14159, 4, 3.1416},
		{"round to 0 decimals", 3.6, 0, 4.0},
		{"round negative", -3.14159, 2, -3.14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundFloat(tt.val, tt.precision)
			if got != tt.want {
				t.Errorf("RoundFloat() = %v, want %v", got, tt.want)
			}
		})
	}
}
