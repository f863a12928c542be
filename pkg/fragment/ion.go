// Package fragment generates theoretical fragment ions for peptides.
package fragment

import (
	"fmt"
	"strings"

	"github.com/ChrisMcGann/FragKey/pkg/core"
)

// Ion represents a single theoretical fragment ion.
type Ion struct {
	MZ       float64
	Label    string // Ion annotation (e.g., "b2[+]", "[y3-H2O][2+]")
	Position int    // 1-based cleavage position; 0 for immonium ions
}

// IonType enumerates the supported fragment ion species.
type IonType int

const (
	IonPrecursor IonType = iota
	IonImmonium
	IonB
	IonY
	IonA
	IonC
	IonZ
	IonX
)

// String returns the conventional symbol for the ion type.
func (t IonType) String() string {
	switch t {
	case IonPrecursor:
		return "prec"
	case IonImmonium:
		return "imm"
	case IonB:
		return "b"
	case IonY:
		return "y"
	case IonA:
		return "a"
	case IonC:
		return "c"
	case IonZ:
		return "z"
	case IonX:
		return "x"
	}
	return fmt.Sprintf("IonType(%d)", int(t))
}

// ParseIonType parses an ion type symbol (e.g., "b", "y", "imm", "prec").
func ParseIonType(s string) (IonType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "prec", "precursor", "m":
		return IonPrecursor, nil
	case "imm", "immonium":
		return IonImmonium, nil
	case "b":
		return IonB, nil
	case "y":
		return IonY, nil
	case "a":
		return IonA, nil
	case "c":
		return IonC, nil
	case "z":
		return IonZ, nil
	case "x":
		return IonX, nil
	}
	return 0, fmt.Errorf("unknown ion type '%s'", s)
}

// NeutralLoss represents the loss of a small neutral molecule from a fragment.
type NeutralLoss struct {
	Name string
	Mass float64
}

// knownLosses maps loss names to their masses
var knownLosses = map[string]float64{
	"H2O": core.MassH2O,
	"NH3": core.MassNH3,
	"CO":  core.MassCO,
	"CO2": core.MassCO2,
}

// LossByName resolves a named neutral loss against the known loss table.
func LossByName(name string) (NeutralLoss, error) {
	mass, ok := knownLosses[name]
	if !ok {
		return NeutralLoss{}, fmt.Errorf("unknown neutral loss '%s'", name)
	}
	return NeutralLoss{Name: name, Mass: mass}, nil
}

// LossesByName resolves a list of loss names, failing on the first unknown.
func LossesByName(names []string) ([]NeutralLoss, error) {
	if len(names) == 0 {
		return nil, nil
	}
	losses := make([]NeutralLoss, 0, len(names))
	for _, name := range names {
		loss, err := LossByName(name)
		if err != nil {
			return nil, err
		}
		losses = append(losses, loss)
	}
	return losses, nil
}
