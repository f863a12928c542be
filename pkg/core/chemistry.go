// Package core provides chemistry constants and peptide mass calculations
package core

import "math"

// Proton mass for charge calculations
const ProtonMass = 1.007276466879

// Fixed masses of small molecules and groups used in fragment calculations
const (
	MassH2O  = 18.01056468403
	MassCO   = 27.99491461957
	MassCO2  = 43.989830
	MassNH3  = 17.02654910112
	MassN    = 14.003074
	MassTag  = 304.20536 // iTRAQ 8-plex tag
	MassCysC = 57.021464 // Carbamidomethyl cysteine
)

// MassType selects between monoisotopic and average residue masses.
type MassType int

const (
	MassMono MassType = iota
	MassAvg
)

// ResidueMass stores the monoisotopic and average mass of an amino acid residue.
type ResidueMass struct {
	Mono float64
	Avg  float64
}

// AminoAcidMasses maps amino acid one-letter codes to residue masses
var AminoAcidMasses = map[byte]ResidueMass{
	'G': {57.02146372069, 57.051402191402},
	'A': {71.03711378515, 71.078019596249},
	'S': {87.03202840472, 87.077424520567},
	'P': {97.05276384961, 97.115372897831},
	'V': {99.06841391407, 99.131254405943},
	'T': {101.04767846918, 101.104041925414},
	'C': {103.00918495955, 103.142807002376},
	'I': {113.08406397853, 113.157871810790},
	'L': {113.08406397853, 113.157871810790},
	'N': {114.04292744138, 114.102804382804},
	'D': {115.02694302429, 115.087565341620},
	'Q': {128.05857750584, 128.129421787651},
	'K': {128.09496301519, 128.172515776292},
	'E': {129.04259308875, 129.114182746467},
	'M': {131.04048508847, 131.19604181207},
	'H': {137.05891185847, 137.139515217458},
	'F': {147.06841391407, 147.174197992883},
	'R': {156.10111102405, 156.185922199184},
	'Y': {163.06332853364, 163.173602917201},
	'W': {186.07931295073, 186.210313751855},
}

// Mass returns the residue mass for the given mass type.
func (r ResidueMass) Mass(t MassType) float64 {
	if t == MassAvg {
		return r.Avg
	}
	return r.Mono
}

// MZ computes the mass-to-charge ratio for a neutral mass and charge state.
func MZ(neutralMass float64, charge int) float64 {
	return (neutralMass + float64(charge)*ProtonMass) / float64(charge)
}

// RoundFloat rounds a float to n decimal places
func RoundFloat(val float64, precision int) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}
