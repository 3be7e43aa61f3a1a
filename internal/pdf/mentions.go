// Package pdf extracts country mentions from PDF documents.
package pdf

import (
	"fmt"
	"regexp"

	"github.com/ledongthuc/pdf"

	"github.com/gprel/comention/internal/country"
)

// tokenPattern matches candidate alpha-3 codes: standalone runs of
// three uppercase letters.
var tokenPattern = regexp.MustCompile(`\b[A-Z]{3}\b`)

// ScanCountries extracts the text of a PDF and returns the alpha-3
// codes found in it, in order of first appearance, restricted to codes
// present in the reference table. Duplicates are preserved so the
// result reflects mention frequency; aggregation deduplicates later.
func ScanCountries(filePath string, table *country.Table) ([]string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filePath, err)
	}
	defer f.Close()

	var mentions []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page should not sink the document.
			continue
		}

		for _, token := range tokenPattern.FindAllString(text, -1) {
			if table.Has(token) {
				mentions = append(mentions, token)
			}
		}
	}

	return mentions, nil
}
