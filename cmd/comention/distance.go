package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gprel/comention/internal/country"
)

func init() {
	rootCmd.AddCommand(distanceCmd)
}

var distanceCmd = &cobra.Command{
	Use:   "distance <code-a> <code-b>",
	Short: "Great-circle distance between two countries",
	Long: `Compute the great-circle distance between the centroids of two
countries, identified by alpha-3 codes (case-insensitive).

Identical codes and unknown codes are reported as distinct outcomes,
not errors: both are expected user input.

Examples:
  comention distance USA CAN
  comention distance fra jpn`,
	Args: cobra.ExactArgs(2),
	RunE: runDistance,
}

// DistanceResponse is the JSON shape of a distance query result.
type DistanceResponse struct {
	Outcome    string   `json:"outcome"`
	CodeA      string   `json:"code_a"`
	CodeB      string   `json:"code_b"`
	Kilometers float64  `json:"kilometers,omitempty"`
	Missing    []string `json:"missing,omitempty"`
}

func runDistance(cmd *cobra.Command, args []string) error {
	root := mustFindWorkspace()
	table := mustLoadTable(root)

	res := table.Distance(args[0], args[1])

	resp := DistanceResponse{
		Outcome: res.Outcome.String(),
		CodeA:   strings.ToUpper(args[0]),
		CodeB:   strings.ToUpper(args[1]),
	}

	switch res.Outcome {
	case country.OutcomeComputed:
		resp.Kilometers = res.Kilometers
	case country.OutcomeUnknown:
		resp.Missing = res.Missing
	}

	if humanOutput {
		switch res.Outcome {
		case country.OutcomeComputed:
			fmt.Printf("%s - %s: %.1f km\n", resp.CodeA, resp.CodeB, res.Kilometers)
		case country.OutcomeEqual:
			fmt.Printf("%s and %s are the same country\n", resp.CodeA, resp.CodeB)
		case country.OutcomeUnknown:
			fmt.Printf("unknown country code(s): %s\n", strings.Join(res.Missing, ", "))
		}
		return nil
	}
	return outputJSON(resp)
}
