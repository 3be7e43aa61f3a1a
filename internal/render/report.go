package render

import (
	"fmt"
	"os"

	"github.com/jung-kurt/gofpdf"
)

// ReportSection is one chart page of a PDF report.
type ReportSection struct {
	Title string
	Image string // path to a previously rendered PNG
}

// Report assembles rendered charts into a single landscape A4 PDF, one
// section per page.
func Report(title string, sections []ReportSection, path string) error {
	if len(sections) == 0 {
		return ErrNothingToPlot
	}

	for _, s := range sections {
		if _, err := os.Stat(s.Image); err != nil {
			return fmt.Errorf("report image %s: %w", s.Image, err)
		}
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(title, false)

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 40, title, "", 1, "C", false, 0, "")

	for _, s := range sections {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 10, s.Title, "", 1, "L", false, 0, "")
		pdf.ImageOptions(s.Image, 10, 25, 270, 0, false,
			gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}, 0, "")
	}

	if pdf.Err() {
		return fmt.Errorf("assembling report: %v", pdf.Error())
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
