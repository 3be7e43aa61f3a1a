package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gprel/comention/internal/comention"
	"github.com/gprel/comention/internal/render"
)

var (
	subjectsTopN   int
	subjectsOutput string
)

func init() {
	subjectsCmd.Flags().IntVar(&subjectsTopN, "top", 0, "Keep only the top-n subject areas (default from config)")
	subjectsCmd.Flags().StringVarP(&subjectsOutput, "output", "o", "", "Render a bar chart PNG to this path")
	rootCmd.AddCommand(subjectsCmd)
}

var subjectsCmd = &cobra.Command{
	Use:   "subjects <code-a> <code-b>",
	Short: "Subject-area breakdown for one country pair",
	Long: `Break down, by subject area, the records that mention both of
two countries.

The counts are always returned as JSON. With --output a bar chart is
rendered as well, unless no record matches the pair, in which case a
diagnostic is printed and nothing is drawn.

Example:
  comention subjects USA GBR --top 15 -o subjects.png`,
	Args: cobra.ExactArgs(2),
	RunE: runSubjects,
}

// SubjectsResponse is the JSON shape of a subject breakdown.
type SubjectsResponse struct {
	Pair     string         `json:"pair"`
	Matched  bool           `json:"matched"`
	Subjects map[string]int `json:"subjects"`
}

func runSubjects(cmd *cobra.Command, args []string) error {
	root := mustFindWorkspace()
	cfg := mustLoadConfig(root)
	records := mustLoadRecords(root)

	pair := comention.NewPair(args[0], args[1])
	counts := comention.SubjectBreakdown(records, pair)

	if len(counts) == 0 {
		if humanOutput {
			fmt.Printf("No records found mentioning both %s and %s.\n", pair.A, pair.B)
			return nil
		}
		return outputJSON(SubjectsResponse{Pair: pair.String(), Matched: false, Subjects: map[string]int{}})
	}

	if subjectsOutput != "" {
		opts := renderOptions(cfg, subjectsTopN, 0)
		if err := render.SubjectChart(counts, pair, opts, subjectsOutput); err != nil {
			exitWithError(ExitError, "%v", err)
		}
	}

	top := counts.TopSubjects(subjectsTopN)

	if humanOutput {
		fmt.Printf("Records mentioning both %s and %s, by subject:\n", pair.A, pair.B)
		for _, sw := range top {
			fmt.Printf("  %-12s %d\n", sw.Subject, sw.Count)
		}
		return nil
	}

	subjects := make(map[string]int, len(top))
	for _, sw := range top {
		subjects[sw.Subject] = sw.Count
	}
	return outputJSON(SubjectsResponse{Pair: pair.String(), Matched: true, Subjects: subjects})
}
