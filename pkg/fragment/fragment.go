package fragment

import (
	"fmt"

	"github.com/ChrisMcGann/FragKey/pkg/core"
)

// defaultLossNames lists the neutral losses generated for an ion type when
// the caller does not name any. Types not listed default to none.
var defaultLossNames = map[IonType][]string{
	IonPrecursor: {"H2O", "NH3", "CO2"},
	IonB:         {"H2O", "NH3", "CO"},
	IonY:         {"NH3", "H2O"},
}

// generationOrder fixes the order in which requested ion types are merged.
var generationOrder = []IonType{
	IonPrecursor, IonImmonium, IonB, IonY, IonA, IonC, IonZ, IonX,
}

// DefaultLosses returns the default neutral losses for an ion type.
func DefaultLosses(t IonType) []NeutralLoss {
	names := defaultLossNames[t]
	if len(names) == 0 {
		return nil
	}
	losses := make([]NeutralLoss, len(names))
	for i, name := range names {
		losses[i] = NeutralLoss{Name: name, Mass: knownLosses[name]}
	}
	return losses
}

// DefaultIonTypes returns the standard request used when the caller does not
// specify ion types: precursor, immonium, b and y ions with default losses.
func DefaultIonTypes() map[IonType][]NeutralLoss {
	return map[IonType][]NeutralLoss{
		IonPrecursor: nil,
		IonImmonium:  {},
		IonB:         nil,
		IonY:         nil,
	}
}

// FragmentPeptide generates all requested ion species for a peptide and
// merges them into one position-ordered list. A nil loss list for a type
// selects that type's default losses; an empty non-nil list disables losses.
func FragmentPeptide(p *core.Peptide, ionTypes map[IonType][]NeutralLoss) ([]Ion, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(ionTypes) == 0 {
		ionTypes = DefaultIonTypes()
	}

	prefix, suffix, err := p.IonSeries()
	if err != nil {
		return nil, err
	}
	seqMasses, err := p.SeqMasses()
	if err != nil {
		return nil, err
	}
	wholeMass, err := p.Mass()
	if err != nil {
		return nil, err
	}

	modSites := p.ModifiedSites()
	tagged := hasTerminalTag(p.Mods)

	var result []Ion
	for _, t := range generationOrder {
		losses, requested := ionTypes[t]
		if !requested {
			continue
		}
		if losses == nil {
			losses = DefaultLosses(t)
		}

		var masses []float64
		switch t {
		case IonB, IonA, IonC:
			masses = prefix
		case IonY, IonZ, IonX:
			masses = suffix
		case IonImmonium:
			masses = seqMasses
		case IonPrecursor:
			masses = []float64{wholeMass}
		}

		ions, err := generate(t, masses, p.Charge, losses, p.Radical, p.Sequence, modSites, tagged)
		if err != nil {
			return nil, fmt.Errorf("generating %s ions for %s: %w", t, p.Name(), err)
		}

		result = mergeIons(result, ions)
	}

	return result, nil
}

// hasTerminalTag reports whether the peptide carries an iTRAQ 8-plex tag on
// either terminus, which produces an extra tag-loss precursor ion.
func hasTerminalTag(mods []core.ModSite) bool {
	for _, mod := range mods {
		if mod.Name == "iTRAQ8plex" && (mod.Site == core.SiteNTerm || mod.Site == core.SiteCTerm) {
			return true
		}
	}
	return false
}
