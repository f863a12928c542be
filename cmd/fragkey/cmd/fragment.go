package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/ChrisMcGann/FragKey/pkg/core"
	"github.com/ChrisMcGann/FragKey/pkg/fragment"
	"github.com/ChrisMcGann/FragKey/pkg/writer/sqlite"
	"github.com/spf13/cobra"
)

var fragmentCmd = &cobra.Command{
	Use:   "fragment",
	Short: "Generate theoretical fragment ions for a peptide",
	Long: `Generate the theoretical fragment ions of a peptide across the requested
ion series and charge states.

Examples:
  # Default b, y, immonium and precursor ions
  fragkey fragment --sequence PEPTIDE --charge 2

  # b/y ions with explicit losses and a modification
  fragkey fragment --sequence AMYK --charge 2 --ion-types b,y --losses NH3 --mods Oxidation@M2

  # ETD-style series written to a SQLite library
  fragkey fragment --sequence PEPTIDER --charge 3 --ion-types c,z --out ions.db`,
	RunE: runFragment,
}

func runFragment(cmd *cobra.Command, args []string) error {
	peptide, err := buildPeptide()
	if err != nil {
		return err
	}

	request, err := buildRequest()
	if err != nil {
		return err
	}

	ions, err := fragment.FragmentPeptide(peptide, request)
	if err != nil {
		return err
	}

	if outputFile == "" {
		fmt.Printf("Label\tMZ\tPosition\n")
		for _, ion := range ions {
			fmt.Printf("%s\t%.*f\t%d\n", ion.Label, precision, ion.MZ, ion.Position)
		}
		return nil
	}

	writer, err := sqlite.NewWriter(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output database: %w", err)
	}

	if err := writer.WritePeptide(peptide, ions); err != nil {
		writer.Close()
		return fmt.Errorf("failed to write peptide %s: %w", peptide.Name(), err)
	}

	if err := writer.Finalize(); err != nil {
		return fmt.Errorf("failed to finalize database: %w", err)
	}

	fmt.Printf("Wrote %d ions for %s to %s\n", len(ions), peptide.Name(), outputFile)
	return nil
}

// buildPeptide assembles the peptide from the command line flags.
func buildPeptide() (*core.Peptide, error) {
	modDB := core.DefaultModDatabase()

	// Load custom modifications from unimod_custom.csv if it exists
	if _, err := os.Stat("unimod_custom.csv"); err == nil {
		f, err := os.Open("unimod_custom.csv")
		if err == nil {
			if err := modDB.LoadFromCSV(f); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to load unimod_custom.csv: %v\n", err)
			}
			f.Close()
		}
	}

	mods, err := modDB.ParseModString(modString, sequence)
	if err != nil {
		return nil, fmt.Errorf("failed to parse modifications: %w", err)
	}

	massType := core.MassMono
	if avgMass {
		massType = core.MassAvg
	}

	peptide := &core.Peptide{
		Sequence: strings.ToUpper(strings.TrimSpace(sequence)),
		Charge:   charge,
		Mods:     mods,
		MassType: massType,
		Radical:  radical,
	}

	if err := peptide.Validate(); err != nil {
		return nil, err
	}

	return peptide, nil
}

// buildRequest maps the ion-types and losses flags onto a generation request.
// When --losses is not given, each type keeps its own default losses.
func buildRequest() (map[fragment.IonType][]fragment.NeutralLoss, error) {
	var losses []fragment.NeutralLoss
	lossesSet := lossNames != ""
	if lossesSet {
		names := strings.Split(lossNames, ",")
		for i := range names {
			names[i] = strings.TrimSpace(names[i])
		}
		var err error
		losses, err = fragment.LossesByName(names)
		if err != nil {
			return nil, err
		}
	}

	request := make(map[fragment.IonType][]fragment.NeutralLoss)
	for _, name := range strings.Split(ionTypes, ",") {
		t, err := fragment.ParseIonType(name)
		if err != nil {
			return nil, err
		}
		if lossesSet {
			request[t] = losses
		} else {
			request[t] = nil
		}
	}

	return request, nil
}
