package corpus

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestImportJSONL_Defaults(t *testing.T) {
	input := `{"id":"a","title":"Trade","countries_mentioned_list":["USA","CAN"],"subjareas":"ECON, SOCI"}
{"countries_mentioned_list":["FRA"]}
`

	records, err := ImportJSONL(strings.NewReader(input), FieldMap{})
	if err != nil {
		t.Fatalf("ImportJSONL() error = %v", err)
	}

	want := []Record{
		{ID: "a", Title: "Trade", Countries: []string{"USA", "CAN"}, SubjectAreas: "ECON, SOCI"},
		{ID: "rec-000002", Countries: []string{"FRA"}},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("ImportJSONL() = %v, want %v", records, want)
	}
}

func TestImportJSONL_CustomFieldNames(t *testing.T) {
	input := `{"id":"a","iso_codes":["USA","GBR"],"topics":"MEDI"}` + "\n"

	fm := FieldMap{List: "iso_codes", Subject: "topics"}
	records, err := ImportJSONL(strings.NewReader(input), fm)
	if err != nil {
		t.Fatalf("ImportJSONL() error = %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].SubjectAreas != "MEDI" {
		t.Errorf("SubjectAreas = %q, want MEDI", records[0].SubjectAreas)
	}
	if !reflect.DeepEqual(records[0].Countries, []string{"USA", "GBR"}) {
		t.Errorf("Countries = %v, want [USA GBR]", records[0].Countries)
	}
}

func TestImportJSONL_SchemaMismatch(t *testing.T) {
	// Second line lacks the declared list field: the whole import fails.
	input := `{"id":"a","countries_mentioned_list":["USA"]}
{"id":"b","countries":["FRA"]}
`

	_, err := ImportJSONL(strings.NewReader(input), FieldMap{})
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("ImportJSONL() error = %v, want ErrMissingField", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q does not name line 2", err)
	}
	if !strings.Contains(err.Error(), "countries_mentioned_list") {
		t.Errorf("error %q does not name the missing field", err)
	}
}

func TestImportJSONL_ListNotAList(t *testing.T) {
	input := `{"id":"a","countries_mentioned_list":"USA"}` + "\n"

	if _, err := ImportJSONL(strings.NewReader(input), FieldMap{}); err == nil {
		t.Fatal("ImportJSONL() error = nil, want type error")
	}
}
