// Package core provides modification parsing and management
package core

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ModDatabase stores modification definitions
type ModDatabase struct {
	mods map[string]float64 // name -> mass shift
}

// NewModDatabase creates an empty modification database
func NewModDatabase() *ModDatabase {
	return &ModDatabase{
		mods: make(map[string]float64),
	}
}

// LoadFromCSV loads modifications from a CSV file (format: mod,massshift,aa)
func (db *ModDatabase) LoadFromCSV(r io.Reader) error {
	scanner := bufio.NewScanner(r)

	// Skip header line
	if scanner.Scan() {
		// header line
	}

	lineNum := 1
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) < 2 {
			return fmt.Errorf("line %d: invalid format, expected at least 2 comma-separated fields", lineNum)
		}

		modName := strings.TrimSpace(parts[0])
		massStr := strings.TrimSpace(parts[1])

		mass, err := strconv.ParseFloat(massStr, 64)
		if err != nil {
			return fmt.Errorf("line %d: invalid mass value '%s': %w", lineNum, massStr, err)
		}

		db.mods[modName] = mass
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading CSV: %w", err)
	}

	return nil
}

// GetMass returns the mass shift for a modification name
func (db *ModDatabase) GetMass(name string) (float64, bool) {
	mass, ok := db.mods[name]
	return mass, ok
}

// Add adds or updates a modification
func (db *ModDatabase) Add(name string, mass float64) {
	db.mods[name] = mass
}

// ParseModString parses a modification string like "57.021464@2;15.994915@8"
// or "Carbamidomethyl@C2;Oxidation@M8;iTRAQ8plex@nterm".
// Returns a list of modification sites.
func (db *ModDatabase) ParseModString(modStr string, sequence string) ([]ModSite, error) {
	if modStr == "" {
		return nil, nil
	}

	var mods []ModSite
	parts := strings.Split(modStr, ";")

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		// Split by @
		atParts := strings.Split(part, "@")
		if len(atParts) != 2 {
			return nil, fmt.Errorf("invalid modification format '%s', expected 'name@site' or 'mass@site'", part)
		}

		nameOrMass := strings.TrimSpace(atParts[0])
		siteStr := strings.TrimSpace(atParts[1])

		var mass float64
		var err error

		// Try to parse as a number first (direct mass)
		mass, err = strconv.ParseFloat(nameOrMass, 64)
		if err != nil {
			// Not a number, try to look up as a name
			var ok bool
			mass, ok = db.GetMass(nameOrMass)
			if !ok {
				return nil, fmt.Errorf("unknown modification '%s'", nameOrMass)
			}
		}

		site, err := parseSite(siteStr, sequence)
		if err != nil {
			return nil, fmt.Errorf("invalid site '%s': %w", siteStr, err)
		}

		mods = append(mods, ModSite{
			Mass: mass,
			Site: site,
			Name: nameOrMass,
		})
	}

	return mods, nil
}

// parseSite parses a site string that may be a 1-based residue number,
// a residue letter followed by a number, or a terminal keyword.
// Examples: "2", "C2", "nterm", "cterm"
func parseSite(siteStr string, sequence string) (int, error) {
	siteStr = strings.TrimSpace(siteStr)

	switch strings.ToLower(siteStr) {
	case "nterm", "n-term":
		return SiteNTerm, nil
	case "cterm", "c-term":
		return SiteCTerm, nil
	}

	// Remove leading amino acid letter if present
	numStr := strings.TrimLeft(siteStr, "ACDEFGHIKLMNPQRSTVWY")

	site, err := strconv.Atoi(numStr)
	if err != nil {
		return 0, fmt.Errorf("invalid site number: %w", err)
	}
	if site < 1 || site > len(sequence) {
		return 0, fmt.Errorf("site %d out of range for sequence of length %d", site, len(sequence))
	}

	return site, nil
}

// DefaultModDatabase returns a ModDatabase pre-loaded with common modifications
func DefaultModDatabase() *ModDatabase {
	db := NewModDatabase()

	// Common modifications from unimod
	db.Add("Acetyl", 42.010565)
	db.Add("Amidated", -0.984016)
	db.Add("Biotin", 226.077598)
	db.Add("Carbamidomethyl", 57.021464)
	db.Add("Carbamyl", 43.005814)
	db.Add("Carboxymethyl", 58.005479)
	db.Add("Deamidated", 0.984016)
	db.Add("Dehydrated", -18.010565)
	db.Add("Dioxidation", 31.989829)
	db.Add("Gln->pyro-Glu", -17.026549)
	db.Add("Glu->pyro-Glu", -18.010565)
	db.Add("Cation:Na", 21.981943)
	db.Add("Methyl", 14.01565)
	db.Add("Nitro", 44.985078)
	db.Add("Oxidation", 15.994915)
	db.Add("Dimethyl", 28.0313)
	db.Add("Trimethyl", 42.04695)
	db.Add("Methylthio", 45.987721)
	db.Add("Phospho", 79.966331)
	db.Add("Sulfo", 79.956815)
	db.Add("Propionamide", 71.037114)
	db.Add("Propionyl", 56.026215)
	db.Add("TMT", 229.162932)
	db.Add("TMTPro", 304.207146)
	db.Add("TMT6plex", 229.162932)
	db.Add("TMT10plex", 229.162932)
	db.Add("TMT16plex", 304.207146)
	db.Add("iTRAQ4plex", 144.102063)
	db.Add("iTRAQ8plex", 304.205360)

	return db
}
