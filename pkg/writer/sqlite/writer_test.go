package sqlite

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/ChrisMcGann/FragKey/pkg/core"
	"github.com/ChrisMcGann/FragKey/pkg/fragment"
)

func TestWritePeptide(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "ions.db")

	w, err := NewWriter(dbPath)
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}

	p := &core.Peptide{Sequence: "AMYK", Charge: 2}
	ions, err := fragment.FragmentPeptide(p, nil)
	if err != nil {
		t.Fatalf("FragmentPeptide() error = %v", err)
	}

	if err := w.WritePeptide(p, ions); err != nil {
		t.Fatalf("WritePeptide() error = %v", err)
	}
	if err := w.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	// Verify the written rows
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("failed to reopen database: %v", err)
	}
	defer db.Close()

	var peptideCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM PeptideTable").Scan(&peptideCount); err != nil {
		t.Fatalf("failed to count peptides: %v", err)
	}
	if peptideCount != 1 {
		t.Errorf("peptide count = %d, want 1", peptideCount)
	}

	var ionCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM IonTable").Scan(&ionCount); err != nil {
		t.Fatalf("failed to count ions: %v", err)
	}
	if ionCount != len(ions) {
		t.Errorf("ion count = %d, want %d", ionCount, len(ions))
	}

	var sequence string
	var charge int
	if err := db.QueryRow("SELECT Sequence, Charge FROM PeptideTable WHERE PeptideId = 1").Scan(&sequence, &charge); err != nil {
		t.Fatalf("failed to read peptide row: %v", err)
	}
	if sequence != "AMYK" || charge != 2 {
		t.Errorf("peptide row = %s/%d, want AMYK/2", sequence, charge)
	}

	var headerCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM HeaderTable").Scan(&headerCount); err != nil {
		t.Fatalf("failed to count header rows: %v", err)
	}
	if headerCount != 1 {
		t.Errorf("header count = %d, want 1", headerCount)
	}
}
