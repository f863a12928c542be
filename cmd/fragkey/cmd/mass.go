package cmd

import (
	"fmt"

	"github.com/ChrisMcGann/FragKey/pkg/core"
	"github.com/spf13/cobra"
)

var massCmd = &cobra.Command{
	Use:   "mass",
	Short: "Calculate the mass of a peptide",
	Long: `Calculate the neutral mass and m/z of a peptide including modifications.

Examples:
  fragkey mass --sequence PEPTIDE
  fragkey mass --sequence AAA --charge 2 --mods iTRAQ8plex@nterm`,
	RunE: runMass,
}

func runMass(cmd *cobra.Command, args []string) error {
	peptide, err := buildPeptide()
	if err != nil {
		return err
	}

	neutralMass, err := peptide.Mass()
	if err != nil {
		return err
	}

	fmt.Printf("Peptide: %s\n", peptide.Name())
	if mods := peptide.ModString(); mods != "" {
		fmt.Printf("Modifications: %s\n", mods)
	}
	fmt.Printf("Neutral mass: %.6f\n", neutralMass)
	fmt.Printf("m/z (%d+): %.6f\n", peptide.Charge, core.MZ(neutralMass, peptide.Charge))

	return nil
}
