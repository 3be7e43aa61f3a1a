package pdf

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf"

	"github.com/gprel/comention/internal/country"
)

const refCSV = `Alpha-3 code,Latitude (average),Longitude (average)
CAN,"60","-95"
FRA,"46","2"
USA,"38","-97"
`

// writeTestPDF renders a single-page PDF with one short cell per line.
// Lines are kept short so word wrapping cannot reflow a code against
// its neighbors.
func writeTestPDF(t *testing.T, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "doc.pdf")
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	doc.SetFont("Helvetica", "", 12)
	for _, line := range lines {
		doc.MultiCell(0, 8, line, "", "L", false)
	}
	if err := doc.OutputFileAndClose(path); err != nil {
		t.Fatalf("writing test PDF: %v", err)
	}
	return path
}

func TestScanCountries(t *testing.T) {
	table, err := country.ParseTable(strings.NewReader(refCSV))
	if err != nil {
		t.Fatalf("ParseTable() error = %v", err)
	}

	path := writeTestPDF(t,
		"Trade between USA and CAN grew.",
		"The USA remained ahead of FRA.",
		"Acronyms like GDP or ZZZ are ignored.",
		"So is usa in lowercase.",
	)

	mentions, err := ScanCountries(path, table)
	if err != nil {
		t.Fatalf("ScanCountries() error = %v", err)
	}

	// Order of appearance, duplicates preserved.
	want := []string{"USA", "CAN", "USA", "FRA"}
	if !reflect.DeepEqual(mentions, want) {
		t.Errorf("ScanCountries() = %v, want %v", mentions, want)
	}
}

func TestScanCountries_NoMentions(t *testing.T) {
	table, err := country.ParseTable(strings.NewReader(refCSV))
	if err != nil {
		t.Fatalf("ParseTable() error = %v", err)
	}

	path := writeTestPDF(t, "Nothing geographic in here at all.")

	mentions, err := ScanCountries(path, table)
	if err != nil {
		t.Fatalf("ScanCountries() error = %v", err)
	}
	if len(mentions) != 0 {
		t.Errorf("ScanCountries() = %v, want empty", mentions)
	}
}

func TestScanCountries_MissingFile(t *testing.T) {
	table, err := country.ParseTable(strings.NewReader(refCSV))
	if err != nil {
		t.Fatalf("ParseTable() error = %v", err)
	}

	if _, err := ScanCountries("does-not-exist.pdf", table); err == nil {
		t.Error("ScanCountries() error = nil, want open error")
	}
}
