package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run the full smoke-test sequence",
	Long: `Run every check in sequence against the server: health, station
search, nearby stations, nearest station, departures, arrivals and route
planning. Exits non-zero if any check fails.`,
	RunE: runAll,
}

func init() {
	rootCmd.AddCommand(allCmd)
}

func runAll(cmd *cobra.Command, args []string) error {
	checks := []struct {
		name string
		run  func(*cobra.Command, []string) error
	}{
		{"health", runHealth},
		{"search", runSearch},
		{"stations", runStations},
		{"nearest", runNearest},
		{"departures", runDepartures},
		{"arrivals", runArrivals},
		{"route", runRoute},
	}

	// search needs a term when run non-interactively
	if searchQuery == "" {
		searchQuery = "Freiburg"
	}

	failed := 0
	for _, c := range checks {
		if err := c.run(cmd, nil); err != nil {
			failed++
		}
		fmt.Println()
	}

	printHeader("Summary")
	if failed > 0 {
		printError("%d of %d checks failed", failed, len(checks))
		return fmt.Errorf("smoke test failed")
	}
	printSuccess("all %d checks passed", len(checks))
	return nil
}
