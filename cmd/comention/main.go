// Package main provides the comention CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gprel/comention/internal/config"
	"github.com/gprel/comention/internal/corpus"
	"github.com/gprel/comention/internal/country"
	"github.com/gprel/comention/internal/render"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "comention",
	Short: "Country mention analytics for document corpora",
	Long: `comention analyzes country mentions across a document corpus.

It answers two kinds of questions:
  - How far apart are two countries? (centroid great-circle distance)
  - Which countries get mentioned together, and in what subjects?

Corpus records live in git-versionable JSONL with an ephemeral SQLite
cache for queries. Charts are rendered to PNG; commands output JSON by
default for easy scripting.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}

// mustFindWorkspace finds the workspace root, exiting on failure.
func mustFindWorkspace() string {
	cwd, err := os.Getwd()
	if err != nil {
		exitWithError(ExitError, "getting current directory: %v", err)
	}

	if root := os.Getenv("COMENTION_ROOT"); root != "" {
		cwd = root
	}

	root, err := config.FindWorkspace(cwd)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	return root
}

// mustLoadConfig loads workspace configuration, exiting on failure.
func mustLoadConfig(root string) *config.Config {
	cfg, err := config.Load(root)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	return cfg
}

// mustLoadTable loads the cached reference table, exiting with a hint
// to run fetch-countries when it is absent.
func mustLoadTable(root string) *country.Table {
	path := config.CountriesPath(root)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		exitWithError(ExitConfigError, "no reference table at %s (run 'comention fetch-countries')", path)
	}

	table, err := country.LoadTable(path)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}
	return table
}

// mustLoadRecords reads the whole corpus from the SQLite cache.
func mustLoadRecords(root string) []corpus.Record {
	db, err := corpus.OpenDB(config.DBPath(root))
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	defer db.Close()

	records, err := db.AllRecords()
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}
	return records
}

// renderOptions merges configured plot defaults with per-command flag
// overrides; zero-valued flags keep the configured value.
func renderOptions(cfg *config.Config, topN, topEdges int) render.Options {
	opts := render.Options{
		TopN:       cfg.Plot.TopN,
		TopEdges:   cfg.Plot.TopEdges,
		Width:      cfg.Plot.Width,
		Height:     cfg.Plot.Height,
		LayoutK:    cfg.Plot.LayoutK,
		LayoutSeed: cfg.Plot.LayoutSeed,
	}
	if topN > 0 {
		opts.TopN = topN
	}
	if topEdges > 0 {
		opts.TopEdges = topEdges
	}
	return opts
}
