package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gprel/comention/internal/comention"
	"github.com/gprel/comention/internal/render"
)

var (
	networkTopEdges int
	networkOutput   string
)

func init() {
	networkCmd.Flags().IntVar(&networkTopEdges, "top-edges", 0, "Number of strongest edges to draw (default from config)")
	networkCmd.Flags().StringVarP(&networkOutput, "output", "o", "network.png", "Output PNG path")
	rootCmd.AddCommand(networkCmd)
}

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Render the co-mention network graph",
	Long: `Render the co-mention network of the strongest pairs as a
force-directed graph.

Nodes are country codes, edges are weighted by how many records
mention both endpoints, and edge width is proportional to weight.
The layout is seeded (config layout_seed), so re-running produces the
same picture.

Example:
  comention network --top-edges 100 -o network.png`,
	Args: cobra.NoArgs,
	RunE: runNetwork,
}

func runNetwork(cmd *cobra.Command, args []string) error {
	root := mustFindWorkspace()
	cfg := mustLoadConfig(root)
	records := mustLoadRecords(root)

	counts := comention.Aggregate(records)
	opts := renderOptions(cfg, 0, networkTopEdges)

	err := render.NetworkChart(counts, opts, networkOutput)
	if errors.Is(err, render.ErrNothingToPlot) {
		exitWithError(ExitDataError, "no co-mentions in the corpus, nothing to plot")
	}
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if humanOutput {
		fmt.Printf("Wrote network chart to %s\n", networkOutput)
	} else {
		outputJSON(StatusResponse{Status: "rendered", Path: networkOutput})
	}
	return nil
}
