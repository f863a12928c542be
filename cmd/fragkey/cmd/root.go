// Package cmd provides CLI command implementations
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Flags for fragment and mass commands
	sequence   string
	charge     int
	modString  string
	ionTypes   string
	lossNames  string
	radical    bool
	avgMass    bool
	outputFile string
	precision  int
)

var rootCmd = &cobra.Command{
	Use:   "fragkey",
	Short: "FragKey - Theoretical fragment ion generation tool",
	Long: `FragKey computes the theoretical dissociation fragment ions of a peptide
for tandem mass spectrometry workflows.

Supported ion series: b, y, a, c, z, x, immonium and precursor ions, with
neutral-loss variants (H2O, NH3, CO, CO2), radical-cation variants, and
multiply charged states. Results are printed as TSV or written to a SQLite
ion library.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(fragmentCmd)
	rootCmd.AddCommand(massCmd)

	// Fragment command flags
	fragmentCmd.Flags().StringVarP(&sequence, "sequence", "s", "", "Peptide sequence in one-letter code (required)")
	fragmentCmd.Flags().IntVarP(&charge, "charge", "c", 2, "Precursor charge state")
	fragmentCmd.Flags().StringVarP(&modString, "mods", "m", "", "Modifications, e.g. 'Oxidation@M2;iTRAQ8plex@nterm'")
	fragmentCmd.Flags().StringVar(&ionTypes, "ion-types", "prec,imm,b,y", "Comma-separated ion types to generate (b,y,a,c,z,x,imm,prec)")
	fragmentCmd.Flags().StringVar(&lossNames, "losses", "", "Comma-separated neutral losses for all series (default: per-type defaults)")
	fragmentCmd.Flags().BoolVar(&radical, "radical", false, "Generate radical-cation variants")
	fragmentCmd.Flags().BoolVar(&avgMass, "avg", false, "Use average instead of monoisotopic masses")
	fragmentCmd.Flags().StringVarP(&outputFile, "out", "o", "", "Output SQLite database (default: print TSV to stdout)")
	fragmentCmd.Flags().IntVar(&precision, "precision", 6, "Decimal places for printed m/z values")

	fragmentCmd.MarkFlagRequired("sequence")

	// Mass command flags
	massCmd.Flags().StringVarP(&sequence, "sequence", "s", "", "Peptide sequence in one-letter code (required)")
	massCmd.Flags().IntVarP(&charge, "charge", "c", 1, "Charge state for m/z calculation")
	massCmd.Flags().StringVarP(&modString, "mods", "m", "", "Modifications, e.g. 'Oxidation@M2;iTRAQ8plex@nterm'")
	massCmd.Flags().BoolVar(&avgMass, "avg", false, "Use average instead of monoisotopic masses")

	massCmd.MarkFlagRequired("sequence")
}
