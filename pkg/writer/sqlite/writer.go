// Package sqlite provides SQLite database writing for theoretical ion libraries
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ChrisMcGann/FragKey/pkg/core"
	"github.com/ChrisMcGann/FragKey/pkg/fragment"
	_ "github.com/mattn/go-sqlite3"
)

// Date format for HeaderTable (ISO 8601)
const headerDateFormat = "2006-01-02"

// Writer handles writing fragmented peptides to SQLite database files
type Writer struct {
	db          *sql.DB
	outputPath  string
	peptideStmt *sql.Stmt
	ionStmt     *sql.Stmt
	peptideID   int
}

// NewWriter creates a new SQLite writer
func NewWriter(outputPath string) (*Writer, error) {
	db, err := sql.Open("sqlite3", outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	w := &Writer{
		db:         db,
		outputPath: outputPath,
		peptideID:  1,
	}

	if err := w.createTables(); err != nil {
		db.Close()
		return nil, err
	}

	if err := w.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}

	return w, nil
}

// createTables creates the required database schema
func (w *Writer) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS PeptideTable (
		PeptideId INTEGER PRIMARY KEY,
		Sequence TEXT,
		Charge INTEGER,
		Modifications TEXT,
		Radical BOOL,
		NeutralMass DOUBLE,
		PrecursorMZ DOUBLE
	);

	CREATE TABLE IF NOT EXISTS IonTable (
		IonId INTEGER PRIMARY KEY AUTOINCREMENT,
		PeptideId INTEGER REFERENCES PeptideTable(PeptideId),
		Label TEXT,
		MZ DOUBLE,
		Position INTEGER
	);

	CREATE TABLE IF NOT EXISTS HeaderTable (
		version INTEGER NOT NULL DEFAULT 0,
		CreationDate TEXT,
		Description TEXT
	);
	`

	_, err := w.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	return nil
}

// prepareStatements prepares SQL statements for batch insertion
func (w *Writer) prepareStatements() error {
	var err error

	w.peptideStmt, err = w.db.Prepare(`
		INSERT INTO PeptideTable (
			PeptideId, Sequence, Charge, Modifications, Radical, NeutralMass, PrecursorMZ
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare peptide statement: %w", err)
	}

	w.ionStmt, err = w.db.Prepare(`
		INSERT INTO IonTable (PeptideId, Label, MZ, Position)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare ion statement: %w", err)
	}

	return nil
}

// WritePeptide writes a peptide and its fragment ions to the database
func (w *Writer) WritePeptide(p *core.Peptide, ions []fragment.Ion) error {
	neutralMass, err := p.Mass()
	if err != nil {
		return fmt.Errorf("failed to compute neutral mass: %w", err)
	}

	_, err = w.peptideStmt.Exec(
		w.peptideID,
		p.Sequence,
		p.Charge,
		p.ModString(),
		p.Radical,
		neutralMass,
		core.MZ(neutralMass, p.Charge),
	)
	if err != nil {
		return fmt.Errorf("failed to insert peptide: %w", err)
	}

	for _, ion := range ions {
		if _, err := w.ionStmt.Exec(w.peptideID, ion.Label, ion.MZ, ion.Position); err != nil {
			return fmt.Errorf("failed to insert ion %s: %w", ion.Label, err)
		}
	}

	w.peptideID++
	return nil
}

// Finalize writes the header table and closes the database
func (w *Writer) Finalize() error {
	_, err := w.db.Exec(`
		INSERT INTO HeaderTable (version, CreationDate, Description)
		VALUES (?, ?, ?)
	`, 1, time.Now().Format(headerDateFormat), "FragKey theoretical ion library")
	if err != nil {
		return fmt.Errorf("failed to insert header: %w", err)
	}

	if w.peptideStmt != nil {
		w.peptideStmt.Close()
	}
	if w.ionStmt != nil {
		w.ionStmt.Close()
	}

	if err := w.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}

// Close closes the database connection (alias for Finalize)
func (w *Writer) Close() error {
	return w.Finalize()
}
