package core

import (
	"fmt"
	"strings"
)

// Sentinel sites for terminal modifications. Residue sites are 1-based.
const (
	SiteNTerm = 0
	SiteCTerm = -1
)

// ModSite represents a modification applied to a peptide site.
type ModSite struct {
	Mass float64
	Site int    // 1-based residue index, SiteNTerm or SiteCTerm
	Name string // Modification name (e.g., "Carbamidomethyl", "Oxidation")
}

// Peptide represents a peptide with charge state and modifications.
type Peptide struct {
	Sequence string
	Charge   int
	Mods     []ModSite
	MassType MassType
	Radical  bool
}

// ValidationError represents an error found during peptide validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
}

// Validate checks that a peptide meets all requirements for fragmentation.
func (p *Peptide) Validate() error {
	var errs []string

	if p.Sequence == "" {
		errs = append(errs, "sequence is required")
	}
	if p.Charge <= 0 {
		errs = append(errs, "charge must be positive")
	}
	for i, mod := range p.Mods {
		if mod.Site != SiteNTerm && mod.Site != SiteCTerm &&
			(mod.Site < 1 || mod.Site > len(p.Sequence)) {
			errs = append(errs, fmt.Sprintf("modification %d site %d out of range", i, mod.Site))
		}
	}

	if len(errs) > 0 {
		return &ValidationError{
			Field:   "Peptide",
			Message: strings.Join(errs, "; "),
		}
	}

	return nil
}

// ResidueMasses computes the per-position mass contributions of the peptide.
// The returned slice has length len(sequence)+2: slot 0 holds the N-terminal
// modification mass, slots 1..n the residue masses including site
// modifications, and slot n+1 the C-terminal modification mass.
func (p *Peptide) ResidueMasses() ([]float64, error) {
	seqLen := len(p.Sequence)
	masses := make([]float64, seqLen+2)

	for i := 0; i < seqLen; i++ {
		res, ok := AminoAcidMasses[p.Sequence[i]]
		if !ok {
			return nil, fmt.Errorf("invalid residue detected: %c", p.Sequence[i])
		}
		masses[i+1] = res.Mass(p.MassType)
	}

	for _, mod := range p.Mods {
		switch mod.Site {
		case SiteNTerm:
			masses[0] += mod.Mass
		case SiteCTerm:
			masses[seqLen+1] += mod.Mass
		default:
			if mod.Site < 1 || mod.Site > seqLen {
				return nil, fmt.Errorf("modification site %d out of range for sequence of length %d", mod.Site, seqLen)
			}
			masses[mod.Site] += mod.Mass
		}
	}

	return masses, nil
}

// Mass computes the neutral monoisotopic (or average) mass of the peptide
// including modifications.
func (p *Peptide) Mass() (float64, error) {
	masses, err := p.ResidueMasses()
	if err != nil {
		return 0, err
	}

	total := MassH2O
	for _, m := range masses {
		total += m
	}
	return total, nil
}

// MZ computes the precursor m/z of the peptide at its charge state.
func (p *Peptide) MZ() (float64, error) {
	mass, err := p.Mass()
	if err != nil {
		return 0, err
	}
	return MZ(mass, p.Charge), nil
}

// IonSeries computes the cumulative prefix (N-to-C) and suffix (C-to-N) mass
// series used for backbone fragment generation. Each series has one entry per
// residue; the final entry covers the whole chain and is not a valid cleavage.
//
// The suffix series is seeded with the C-terminal modification mass when one
// is present, and with water otherwise.
func (p *Peptide) IonSeries() (prefix, suffix []float64, err error) {
	masses, err := p.ResidueMasses()
	if err != nil {
		return nil, nil, err
	}

	seqLen := len(p.Sequence)

	suffixBase := masses[seqLen+1]
	if suffixBase == 0 {
		suffixBase = MassH2O
	}
	prefixBase := masses[0]

	prefix = make([]float64, seqLen)
	suffix = make([]float64, seqLen)
	for i := 0; i < seqLen; i++ {
		prefixBase += masses[i+1]
		prefix[i] = prefixBase
		suffixBase += masses[seqLen-i]
		suffix[i] = suffixBase
	}

	return prefix, suffix, nil
}

// SeqMasses returns the individual residue contribution masses, one per
// position, used for immonium ion generation.
func (p *Peptide) SeqMasses() ([]float64, error) {
	masses, err := p.ResidueMasses()
	if err != nil {
		return nil, err
	}
	return masses[1 : len(p.Sequence)+1], nil
}

// ModifiedSites returns the set of 1-based residue sites bearing a
// modification. Terminal modifications are not included.
func (p *Peptide) ModifiedSites() map[int]bool {
	sites := make(map[int]bool)
	for _, mod := range p.Mods {
		if mod.Site >= 1 {
			sites[mod.Site] = true
		}
	}
	return sites
}

// ModString returns a string representation of modifications in format
// "name@site;name@site;..."
func (p *Peptide) ModString() string {
	if len(p.Mods) == 0 {
		return ""
	}

	var parts []string
	for _, mod := range p.Mods {
		var site string
		switch mod.Site {
		case SiteNTerm:
			site = "nterm"
		case SiteCTerm:
			site = "cterm"
		default:
			site = fmt.Sprintf("%d", mod.Site)
		}
		parts = append(parts, fmt.Sprintf("%s@%s", mod.Name, site))
	}
	return strings.Join(parts, ";")
}

// Name returns the peptide name in format "Sequence/Charge"
func (p *Peptide) Name() string {
	return fmt.Sprintf("%s/%d", p.Sequence, p.Charge)
}
