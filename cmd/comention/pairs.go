package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gprel/comention/internal/comention"
	"github.com/gprel/comention/internal/render"
)

var (
	pairsTopN   int
	pairsOutput string
)

func init() {
	pairsCmd.Flags().IntVar(&pairsTopN, "top", 0, "Number of top pairs to show (default from config)")
	pairsCmd.Flags().StringVarP(&pairsOutput, "output", "o", "", "Render a bar chart PNG to this path")
	rootCmd.AddCommand(pairsCmd)
}

var pairsCmd = &cobra.Command{
	Use:   "pairs",
	Short: "Top co-mentioned country pairs",
	Long: `Count the country pairs most often mentioned together within a
single record, across the whole corpus.

Outputs the top pairs as JSON; with --output, also renders a bar chart.

Examples:
  comention pairs --top 20
  comention pairs --top 20 -o pairs.png`,
	Args: cobra.NoArgs,
	RunE: runPairs,
}

// PairResponse is one pair in JSON output.
type PairResponse struct {
	Pair  string `json:"pair"`
	Count int    `json:"count"`
}

func runPairs(cmd *cobra.Command, args []string) error {
	root := mustFindWorkspace()
	cfg := mustLoadConfig(root)
	records := mustLoadRecords(root)

	counts := comention.Aggregate(records)
	opts := renderOptions(cfg, pairsTopN, 0)
	top := counts.TopN(opts.TopN)

	if pairsOutput != "" {
		err := render.TopPairsChart(counts, opts, pairsOutput)
		if errors.Is(err, render.ErrNothingToPlot) {
			exitWithError(ExitDataError, "no co-mentions in the corpus, nothing to plot")
		}
		if err != nil {
			exitWithError(ExitError, "%v", err)
		}
	}

	if humanOutput {
		for i, pw := range top {
			fmt.Printf("%2d. %-9s %d\n", i+1, pw.Pair, pw.Count)
		}
		return nil
	}

	resp := make([]PairResponse, len(top))
	for i, pw := range top {
		resp[i] = PairResponse{Pair: pw.Pair.String(), Count: pw.Count}
	}
	return outputJSON(resp)
}
