package corpus

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestReadAll_MissingFile(t *testing.T) {
	records, err := ReadAll(filepath.Join(t.TempDir(), "records.jsonl"))
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if records != nil {
		t.Errorf("ReadAll() = %v, want nil for missing file", records)
	}
}

func TestAppendAndReadAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.jsonl")

	first := Record{ID: "a", Title: "Trade flows", Countries: []string{"USA", "CAN"}, SubjectAreas: "ECON"}
	second := Record{ID: "b", Countries: []string{"FRA"}}

	if err := Append(path, first); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := Append(path, second); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	records, err := ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	want := []Record{first, second}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("ReadAll() = %v, want %v", records, want)
	}
}

func TestRecord_Validate(t *testing.T) {
	rec := Record{Countries: []string{"USA"}}
	if err := rec.Validate(); err != ErrEmptyID {
		t.Errorf("Validate() = %v, want ErrEmptyID", err)
	}

	rec.ID = "a"
	if err := rec.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}
