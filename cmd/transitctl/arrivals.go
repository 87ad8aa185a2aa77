package main

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	arrStation  string
	arrTime     string
	arrLimit    int
	arrDuration int
)

var arrivalsCmd = &cobra.Command{
	Use:     "arrivals",
	Short:   "Show the arrival board of a station",
	Aliases: []string{"arr"},
	RunE:    runArrivals,
}

func init() {
	arrivalsCmd.Flags().StringVar(&arrStation, "station", "8000107", "Station ID")
	arrivalsCmd.Flags().StringVar(&arrTime, "time", "", "Arrival time (ISO-8601, default now)")
	arrivalsCmd.Flags().IntVar(&arrLimit, "limit", 10, "Max arrivals")
	arrivalsCmd.Flags().IntVar(&arrDuration, "duration", 60, "Time window in minutes")

	rootCmd.AddCommand(arrivalsCmd)
}

func runArrivals(cmd *cobra.Command, args []string) error {
	printHeader("Arrivals")

	params := url.Values{}
	params.Set("station", arrStation)
	params.Set("limit", strconv.Itoa(arrLimit))
	params.Set("duration", strconv.Itoa(arrDuration))
	if arrTime != "" {
		params.Set("time", arrTime)
	}

	status, data, err := newAPIClient().get("/api/arrivals", params)
	if err != nil {
		printError("%v", err)
		return err
	}
	if status != 200 {
		printError("HTTP %d: %s", status, envelopeError(data))
		return fmt.Errorf("arrivals request failed")
	}
	if jsonOutput {
		return printJSON(data)
	}

	printSuccess("%v arrivals at station %s", data["count"], arrStation)
	for _, v := range asSlice(data["arrivals"]) {
		printBoardEntry(v, "origin")
	}
	return nil
}
