package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gprel/comention/internal/config"
	"github.com/gprel/comention/internal/corpus"
	"github.com/gprel/comention/internal/pdf"
)

var (
	importPDFID       string
	importPDFSubjects string
)

func init() {
	importPDFCmd.Flags().StringVar(&importPDFID, "id", "", "Record id (default: PDF file name)")
	importPDFCmd.Flags().StringVar(&importPDFSubjects, "subjects", "", "Comma-separated subject areas for the record")
	rootCmd.AddCommand(importPDFCmd)
}

var importPDFCmd = &cobra.Command{
	Use:   "import-pdf <file.pdf>",
	Short: "Import one document by scanning a PDF for country mentions",
	Long: `Import one document by scanning a PDF for country mentions.

The PDF text is searched for standalone alpha-3 codes that exist in
the reference table; matches become the record's country list, in
order of appearance. Subject areas are not derivable from the PDF and
must be passed with --subjects.

Example:
  comention import-pdf trade-survey.pdf --subjects "ECON, SOCI"`,
	Args: cobra.ExactArgs(1),
	RunE: runImportPDF,
}

func runImportPDF(cmd *cobra.Command, args []string) error {
	root := mustFindWorkspace()
	table := mustLoadTable(root)

	mentions, err := pdf.ScanCountries(args[0], table)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	id := importPDFID
	if id == "" {
		id = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	}

	rec := corpus.Record{
		ID:           id,
		Countries:    mentions,
		SubjectAreas: importPDFSubjects,
	}
	if err := rec.Validate(); err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	if err := corpus.Append(config.RecordsPath(root), rec); err != nil {
		exitWithError(ExitError, "%v", err)
	}
	rebuildCache(root)

	if humanOutput {
		fmt.Printf("Imported %s with %d country mentions\n", rec.ID, len(mentions))
	} else {
		outputJSON(StatusResponse{Status: "imported", Path: rec.ID, Count: len(mentions)})
	}
	return nil
}
