package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gprel/comention/internal/config"
	"github.com/gprel/comention/internal/corpus"
)

var (
	importListField    string
	importSubjectField string
)

func init() {
	importCmd.Flags().StringVar(&importListField, "list-field", "", "Field holding the country code list (default from config)")
	importCmd.Flags().StringVar(&importSubjectField, "subject-field", "", "Field holding the comma-separated subject areas (default from config)")
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <corpus.jsonl>",
	Short: "Import corpus records from a JSONL file",
	Long: `Import corpus records from a JSONL file.

Each line must carry a list-valued field of country codes; a
comma-separated subject-area field is optional. Field names default to
the workspace configuration and can be overridden per import. A line
missing the list field fails the whole import (schema mismatch).

Imported records are appended to the canonical records.jsonl and the
SQLite cache is rebuilt.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	root := mustFindWorkspace()
	cfg := mustLoadConfig(root)

	fm := corpus.FieldMap{List: cfg.Fields.List, Subject: cfg.Fields.Subject}
	if importListField != "" {
		fm.List = importListField
	}
	if importSubjectField != "" {
		fm.Subject = importSubjectField
	}

	f, err := os.Open(args[0])
	if err != nil {
		exitWithError(ExitError, "opening corpus: %v", err)
	}
	defer f.Close()

	records, err := corpus.ImportJSONL(f, fm)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	if err := corpus.Append(config.RecordsPath(root), records...); err != nil {
		exitWithError(ExitError, "%v", err)
	}

	n := rebuildCache(root)

	if humanOutput {
		fmt.Printf("Imported %d records (%d total)\n", len(records), n)
	} else {
		outputJSON(StatusResponse{Status: "imported", Count: len(records)})
	}
	return nil
}

// rebuildCache rebuilds the SQLite cache from the canonical JSONL and
// returns the total record count.
func rebuildCache(root string) int {
	db, err := corpus.OpenDB(config.DBPath(root))
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	defer db.Close()

	n, err := db.RebuildFromJSONL(config.RecordsPath(root))
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}
	return n
}
