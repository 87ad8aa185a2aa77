package main

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	depStation  string
	depTime     string
	depLimit    int
	depDuration int
)

var departuresCmd = &cobra.Command{
	Use:     "departures",
	Short:   "Show the departure board of a station",
	Aliases: []string{"dep"},
	RunE:    runDepartures,
}

func init() {
	departuresCmd.Flags().StringVar(&depStation, "station", "8000107", "Station ID")
	departuresCmd.Flags().StringVar(&depTime, "time", "", "Departure time (ISO-8601, default now)")
	departuresCmd.Flags().IntVar(&depLimit, "limit", 10, "Max departures")
	departuresCmd.Flags().IntVar(&depDuration, "duration", 60, "Time window in minutes")

	rootCmd.AddCommand(departuresCmd)
}

func runDepartures(cmd *cobra.Command, args []string) error {
	printHeader("Departures")

	params := url.Values{}
	params.Set("station", depStation)
	params.Set("limit", strconv.Itoa(depLimit))
	params.Set("duration", strconv.Itoa(depDuration))
	if depTime != "" {
		params.Set("time", depTime)
	}

	status, data, err := newAPIClient().get("/api/departures", params)
	if err != nil {
		printError("%v", err)
		return err
	}
	if status != 200 {
		printError("HTTP %d: %s", status, envelopeError(data))
		return fmt.Errorf("departures request failed")
	}
	if jsonOutput {
		return printJSON(data)
	}

	printSuccess("%v departures at station %s", data["count"], depStation)
	for _, v := range asSlice(data["departures"]) {
		printBoardEntry(v, "destination")
	}
	return nil
}

// printBoardEntry renders one departure or arrival; towardsKey selects the
// destination or origin field.
func printBoardEntry(v any, towardsKey string) {
	entry, _ := v.(map[string]any)
	if entry == nil {
		return
	}
	line := entry["line"]
	towards := entry[towardsKey]
	when := entry["estimated_time"]

	delay := ""
	if d, ok := entry["delay_minutes"].(float64); ok && d != 0 {
		delay = fmt.Sprintf(" (%+d min)", int(d))
	}
	platform := ""
	if p, ok := entry["platform"].(string); ok && p != "" {
		platform = " [platform " + p + "]"
	}
	fmt.Printf("  %v → %v at %v%s%s\n", line, towards, when, delay, platform)
}
