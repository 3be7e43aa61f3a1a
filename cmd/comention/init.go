package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gprel/comention/internal/config"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a comention workspace in the current directory",
	Long: `Create a comention workspace in the current directory.

This creates a .comention/ directory holding the configuration file,
the corpus records (JSONL), the cached country reference table, and
the ephemeral SQLite cache.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		exitWithError(ExitError, "getting current directory: %v", err)
	}

	if _, err := config.Init(cwd); err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	if humanOutput {
		fmt.Printf("Initialized comention workspace in %s\n", config.WorkspacePath(cwd))
	} else {
		outputJSON(StatusResponse{Status: "initialized", Path: config.WorkspacePath(cwd)})
	}
	return nil
}
