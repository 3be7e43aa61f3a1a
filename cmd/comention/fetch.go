package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gprel/comention/internal/config"
	"github.com/gprel/comention/internal/country"
)

func init() {
	rootCmd.AddCommand(fetchCountriesCmd)
}

var fetchCountriesCmd = &cobra.Command{
	Use:   "fetch-countries",
	Short: "Download the country reference table into the workspace",
	Long: `Download the country reference table into the workspace.

The table maps alpha-3 country codes to centroid coordinates and is
required by the distance command. The source URL can be set in
config.yml (countries_url) or via COMENTION_COUNTRIES_URL.`,
	Args: cobra.NoArgs,
	RunE: runFetchCountries,
}

func runFetchCountries(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	root := mustFindWorkspace()
	cfg := mustLoadConfig(root)

	var opts []country.FetcherOption
	if cfg.CountriesURL != "" {
		opts = append(opts, country.WithURL(cfg.CountriesURL))
	}
	fetcher := country.NewFetcher(opts...)

	dest := config.CountriesPath(root)
	n, err := fetcher.Fetch(context.Background(), dest)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if humanOutput {
		fmt.Printf("Fetched %d countries to %s\n", n, dest)
	} else {
		outputJSON(StatusResponse{Status: "fetched", Path: dest, Count: n})
	}
	return nil
}
