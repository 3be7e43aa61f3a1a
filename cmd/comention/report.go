package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gprel/comention/internal/comention"
	"github.com/gprel/comention/internal/render"
)

var (
	reportOutput string
	reportPair   []string
)

func init() {
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "report.pdf", "Output PDF path")
	reportCmd.Flags().StringSliceVar(&reportPair, "pair", nil, "Country pair for the subject breakdown page (e.g. --pair USA,GBR)")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render all charts and bundle them into a PDF",
	Long: `Render the top-pairs bar chart and the co-mention network, bundle
them into a single PDF, and optionally add a subject breakdown page
for one country pair.

Example:
  comention report --pair USA,GBR -o report.pdf`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	if len(reportPair) != 0 && len(reportPair) != 2 {
		exitWithError(ExitError, "--pair takes exactly two codes, got %d", len(reportPair))
	}

	root := mustFindWorkspace()
	cfg := mustLoadConfig(root)
	records := mustLoadRecords(root)

	counts := comention.Aggregate(records)
	opts := renderOptions(cfg, 0, 0)

	tmpDir, err := os.MkdirTemp("", "comention-report-")
	if err != nil {
		exitWithError(ExitError, "creating scratch directory: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	pairsPNG := filepath.Join(tmpDir, "pairs.png")
	if err := render.TopPairsChart(counts, opts, pairsPNG); err != nil {
		if errors.Is(err, render.ErrNothingToPlot) {
			exitWithError(ExitDataError, "no co-mentions in the corpus, nothing to report")
		}
		exitWithError(ExitError, "%v", err)
	}

	networkPNG := filepath.Join(tmpDir, "network.png")
	if err := render.NetworkChart(counts, opts, networkPNG); err != nil {
		exitWithError(ExitError, "%v", err)
	}

	sections := []render.ReportSection{
		{Title: fmt.Sprintf("Top %d country co-mention pairs", opts.TopN), Image: pairsPNG},
		{Title: fmt.Sprintf("Co-mention network (top %d edges)", opts.TopEdges), Image: networkPNG},
	}

	if len(reportPair) == 2 {
		pair := comention.NewPair(reportPair[0], reportPair[1])
		subjects := comention.SubjectBreakdown(records, pair)
		if len(subjects) == 0 {
			exitWithError(ExitDataError, "no records mention both %s and %s", pair.A, pair.B)
		}

		subjectsPNG := filepath.Join(tmpDir, "subjects.png")
		if err := render.SubjectChart(subjects, pair, opts, subjectsPNG); err != nil {
			exitWithError(ExitError, "%v", err)
		}
		sections = append(sections, render.ReportSection{
			Title: fmt.Sprintf("Subject breakdown for %s", pair),
			Image: subjectsPNG,
		})
	}

	if err := render.Report("Country co-mention report", sections, reportOutput); err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if humanOutput {
		fmt.Printf("Wrote report to %s\n", reportOutput)
	} else {
		outputJSON(StatusResponse{Status: "rendered", Path: reportOutput})
	}
	return nil
}
