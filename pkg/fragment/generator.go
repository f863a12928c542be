package fragment

import (
	"fmt"

	"github.com/ChrisMcGann/FragKey/pkg/core"
)

// radicalMark tags ions produced by homolytic cleavage
const radicalMark = "•"

// speciesRule describes how one backbone or immonium ion species is generated:
// the mass offset applied to the raw series entry, the radical variants it
// produces, and whether every series entry is an eligible position.
type speciesRule struct {
	symbol       string
	allPositions bool // iterate the full series instead of dropping the final entry
	fixMass      func(mass float64) float64
	radicals     func(mass float64, pos int) []Ion
}

// noRadicals is the radical emitter for species without radical variants.
func noRadicals(mass float64, pos int) []Ion {
	return nil
}

// speciesRules maps each position-indexed ion type to its generation rule.
// Precursor ions are deliberately absent: they have no cleavage positions and
// are generated by their own charge loop.
var speciesRules = map[IonType]*speciesRule{
	IonB: {
		symbol:  "b",
		fixMass: func(m float64) float64 { return m + core.ProtonMass },
		radicals: func(m float64, pos int) []Ion {
			return []Ion{
				{MZ: m, Label: fmt.Sprintf("[b%d-H][%s+]", pos+1, radicalMark), Position: pos + 1},
			}
		},
	},
	IonY: {
		symbol:   "y",
		fixMass:  func(m float64) float64 { return m + core.ProtonMass },
		radicals: noRadicals,
	},
	IonA: {
		symbol:  "a",
		fixMass: func(m float64) float64 { return m + core.ProtonMass - core.MassCO },
		radicals: func(m float64, pos int) []Ion {
			return []Ion{
				{MZ: m - core.ProtonMass, Label: fmt.Sprintf("[a%d-H][%s+]", pos+1, radicalMark), Position: pos + 1},
				{MZ: m + core.ProtonMass, Label: fmt.Sprintf("[a%d+H][%s+]", pos+1, radicalMark), Position: pos + 1},
			}
		},
	},
	IonC: {
		symbol:  "c",
		fixMass: func(m float64) float64 { return m + 4*core.ProtonMass + core.MassN },
		radicals: func(m float64, pos int) []Ion {
			return []Ion{
				{MZ: m + 2*core.ProtonMass, Label: fmt.Sprintf("[c%d+2H][%s+]", pos+1, radicalMark), Position: pos + 1},
			}
		},
	},
	IonZ: {
		symbol:  "z",
		fixMass: func(m float64) float64 { return m - core.MassN - core.ProtonMass },
		radicals: func(m float64, pos int) []Ion {
			return []Ion{
				{MZ: m - core.ProtonMass, Label: fmt.Sprintf("[z%d-H][%s+]", pos+1, radicalMark), Position: pos + 1},
			}
		},
	},
	IonX: {
		symbol:  "x",
		fixMass: func(m float64) float64 { return m + core.MassCO - core.ProtonMass },
		radicals: func(m float64, pos int) []Ion {
			return []Ion{
				{MZ: m, Label: fmt.Sprintf("[x%d-H][%s+]", pos+1, radicalMark), Position: pos + 1},
			}
		},
	},
	IonImmonium: {
		symbol:       "imm",
		allPositions: true,
		fixMass:      func(m float64) float64 { return m - core.MassCO + core.ProtonMass },
		radicals:     noRadicals,
	},
}

// Generate produces the position-ordered ion list for one species. The
// meaning of masses depends on the species: the cumulative prefix series for
// b/a/c, the cumulative suffix series for y/z/x, one mass per residue for
// immonium, and a single whole-peptide mass for precursor ions.
func Generate(t IonType, masses []float64, charge int, losses []NeutralLoss, radical bool, sequence string) ([]Ion, error) {
	return generate(t, masses, charge, losses, radical, sequence, nil, false)
}

func generate(t IonType, masses []float64, charge int, losses []NeutralLoss, radical bool,
	sequence string, modSites map[int]bool, taggedPrecursor bool) ([]Ion, error) {

	if charge < 1 {
		return nil, fmt.Errorf("charge must be positive, got %d", charge)
	}

	if t == IonPrecursor {
		return generatePrecursor(masses, charge, losses, radical, sequence, taggedPrecursor)
	}

	rule, ok := speciesRules[t]
	if !ok {
		return nil, fmt.Errorf("unknown ion type %v", t)
	}

	if len(masses) == 0 {
		return nil, fmt.Errorf("%s ion generation requires a non-empty mass series", rule.symbol)
	}

	// Backbone series carry a trailing whole-chain entry that is not a valid
	// cleavage position; immonium series are one mass per residue.
	end := len(masses) - 1
	if rule.allPositions {
		end = len(masses)
		if len(sequence) < len(masses) {
			return nil, fmt.Errorf("mass series length %d exceeds sequence length %d", len(masses), len(sequence))
		}
	}

	ions := make([]Ion, 0, end*(1+len(losses)))
	for i := 0; i < end; i++ {
		mass := rule.fixMass(masses[i])

		if rule.allPositions {
			residue := sequence[i]
			label := fmt.Sprintf("imm(%c)", residue)
			if modSites[i+1] {
				label = fmt.Sprintf("imm(%c*)", residue)
			}
			ions = append(ions, Ion{MZ: mass, Label: label, Position: 0})
		} else {
			ions = append(ions, Ion{
				MZ:       mass,
				Label:    fmt.Sprintf("%s%d[+]", rule.symbol, i+1),
				Position: i + 1,
			})
		}

		if radical {
			ions = append(ions, rule.radicals(mass, i)...)
		}

		for _, loss := range losses {
			ions = append(ions, Ion{
				MZ:       mass - loss.Mass,
				Label:    fmt.Sprintf("[%s%d-%s][+]", rule.symbol, i+1, loss.Name),
				Position: i + 1,
			})
		}
	}

	// Promotion always works from the original singly charged set so that
	// promoted ions are never themselves promoted.
	result := ions
	for cs := 2; cs <= charge; cs++ {
		result = mergeIons(result, chargeIons(ions, cs))
	}

	return result, nil
}

// generatePrecursor enumerates whole-peptide ions across all charge states.
// There is no cleavage index: the position of every precursor ion is the
// sequence length.
func generatePrecursor(masses []float64, charge int, losses []NeutralLoss, radical bool,
	sequence string, tagged bool) ([]Ion, error) {

	if len(masses) != 1 {
		return nil, fmt.Errorf("precursor generation requires exactly one whole-peptide mass, got %d", len(masses))
	}

	mass := masses[0]
	seqLen := len(sequence)

	ions := make([]Ion, 0, charge*(2+len(losses)))
	for cs := 1; cs <= charge; cs++ {
		sym := chargeSymbol(cs, radical)
		fcs := float64(cs)

		ions = append(ions, Ion{
			MZ:       mass/fcs + core.ProtonMass,
			Label:    fmt.Sprintf("[M+H][%s]", sym),
			Position: seqLen,
		})

		if radical {
			ions = append(ions, Ion{
				MZ:       mass / fcs,
				Label:    fmt.Sprintf("M[%s]", sym),
				Position: seqLen,
			})
		}

		for _, loss := range losses {
			ions = append(ions, Ion{
				MZ:       (mass-loss.Mass)/fcs + core.ProtonMass,
				Label:    fmt.Sprintf("[M-%s][%s]", loss.Name, sym),
				Position: seqLen,
			})
		}

		if tagged {
			ions = append(ions, Ion{
				MZ:       (mass-core.MassTag)/fcs + core.ProtonMass,
				Label:    fmt.Sprintf("M-iT8[%s]", sym),
				Position: seqLen,
			})
		}
	}

	return ions, nil
}

// chargeSymbol formats the bracketed charge of a precursor label,
// e.g. "+" for charge 1 and "•3+" for a charge-3 radical.
func chargeSymbol(cs int, radical bool) string {
	sym := ""
	if radical {
		sym = radicalMark
	}
	if cs > 1 {
		sym += fmt.Sprintf("%d", cs)
	}
	return sym + "+"
}
