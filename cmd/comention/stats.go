package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/gprel/comention/internal/comention"
)

var statsTopEdges int

func init() {
	statsCmd.Flags().IntVar(&statsTopEdges, "top-edges", 0, "Number of strongest edges to analyze (default from config)")
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Structural statistics of the co-mention network",
	Long: `Compute structural statistics of the co-mention network restricted
to the strongest edges: node/edge counts, density, connected
components, and per-country degree and weighted strength.

Example:
  comention stats --top-edges 100`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	root := mustFindWorkspace()
	cfg := mustLoadConfig(root)
	records := mustLoadRecords(root)

	counts := comention.Aggregate(records)
	opts := renderOptions(cfg, 0, statsTopEdges)

	stats, err := comention.NetworkStats(counts, opts.TopEdges)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if humanOutput {
		fmt.Printf("Nodes:      %d\n", stats.Nodes)
		fmt.Printf("Edges:      %d\n", stats.Edges)
		fmt.Printf("Components: %d\n", stats.Components)
		fmt.Printf("Density:    %.4f\n", stats.Density)

		codes := make([]string, 0, len(stats.Strength))
		for code := range stats.Strength {
			codes = append(codes, code)
		}
		sort.Slice(codes, func(i, j int) bool {
			if stats.Strength[codes[i]] != stats.Strength[codes[j]] {
				return stats.Strength[codes[i]] > stats.Strength[codes[j]]
			}
			return codes[i] < codes[j]
		})

		fmt.Println("\nCountry    Degree  Strength")
		for _, code := range codes {
			fmt.Printf("%-10s %6d  %8d\n", code, stats.Degree[code], stats.Strength[code])
		}
		return nil
	}
	return outputJSON(stats)
}
