package corpus

import (
	"path/filepath"
	"reflect"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "corpus.db"))
	if err != nil {
		t.Fatalf("OpenDB() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestDB_RebuildFromJSONL(t *testing.T) {
	dir := t.TempDir()
	jsonlPath := filepath.Join(dir, "records.jsonl")

	records := []Record{
		{ID: "a", Title: "Trade", Countries: []string{"USA", "CAN"}, SubjectAreas: "ECON"},
		{ID: "b", Countries: []string{"FRA", "DEU"}},
	}
	if err := Append(jsonlPath, records...); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	db := openTestDB(t)
	n, err := db.RebuildFromJSONL(jsonlPath)
	if err != nil {
		t.Fatalf("RebuildFromJSONL() error = %v", err)
	}
	if n != 2 {
		t.Errorf("RebuildFromJSONL() = %d, want 2", n)
	}

	got, err := db.AllRecords()
	if err != nil {
		t.Fatalf("AllRecords() error = %v", err)
	}
	if !reflect.DeepEqual(got, records) {
		t.Errorf("AllRecords() = %v, want %v", got, records)
	}
}

func TestDB_RebuildReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	db := openTestDB(t)

	firstPath := filepath.Join(dir, "first.jsonl")
	if err := Append(firstPath, Record{ID: "old", Countries: []string{"USA"}}); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if _, err := db.RebuildFromJSONL(firstPath); err != nil {
		t.Fatalf("RebuildFromJSONL() error = %v", err)
	}

	secondPath := filepath.Join(dir, "second.jsonl")
	if err := Append(secondPath, Record{ID: "new", Countries: []string{"FRA"}}); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if _, err := db.RebuildFromJSONL(secondPath); err != nil {
		t.Fatalf("RebuildFromJSONL() error = %v", err)
	}

	n, err := db.CountRecords()
	if err != nil {
		t.Fatalf("CountRecords() error = %v", err)
	}
	if n != 1 {
		t.Errorf("CountRecords() = %d, want 1 after rebuild", n)
	}

	got, err := db.AllRecords()
	if err != nil {
		t.Fatalf("AllRecords() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != "new" {
		t.Errorf("AllRecords() = %v, want only the rebuilt record", got)
	}
}

func TestDB_EmptyCorpus(t *testing.T) {
	db := openTestDB(t)

	n, err := db.RebuildFromJSONL(filepath.Join(t.TempDir(), "missing.jsonl"))
	if err != nil {
		t.Fatalf("RebuildFromJSONL() error = %v", err)
	}
	if n != 0 {
		t.Errorf("RebuildFromJSONL() = %d, want 0", n)
	}

	records, err := db.AllRecords()
	if err != nil {
		t.Fatalf("AllRecords() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("AllRecords() = %v, want empty", records)
	}
}
