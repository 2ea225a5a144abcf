package smt

import (
	"testing"
)

func TestImporterLoadsHeadCounts(t *testing.T) {
	var (
		f = "data/coinflips.csv"
		i = NewCsvImporter()
		s = []int{5, 9, 8, 4, 7}
	)

	d, e := i.Import(f, 1, 5)
	if e != nil {
		t.Errorf("Error importing data: %s", e.Error())
	}

	if len(d) != len(s) {
		t.Errorf("Imported data size mismatch: %d vs %d", len(d), len(s))
	}

	for j := range d {
		if d[j] != s[j] {
			t.Errorf("Imported data mismatch at %d: %d vs %d", j, d[j], s[j])
		}
	}
}

func TestImporterSkipsNonNumericColumn(t *testing.T) {
	var (
		f = "data/coinflips.csv"
		i = NewCsvImporter()
	)

	// column 0 holds coin labels, none of which parse
	d, e := i.Import(f, 0, 5)
	if e != nil {
		t.Errorf("Error importing data: %s", e.Error())
	}

	if len(d) != 0 {
		t.Errorf("Label column should yield no counts, got %v", d)
	}
}

func TestImporterRejectsNegativeColumn(t *testing.T) {
	i := NewCsvImporter()

	if _, e := i.Import("data/coinflips.csv", -1, 5); e != ErrInvalidRange {
		t.Errorf("Expected ErrInvalidRange, got %v", e)
	}
}

func TestImporterReportsMissingFile(t *testing.T) {
	i := NewCsvImporter()

	if _, e := i.Import("data/no-such-file.csv", 1, 5); e == nil {
		t.Error("Expected an error for a missing file")
	}
}
