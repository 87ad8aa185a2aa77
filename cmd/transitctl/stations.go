package main

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	stationsLat    float64
	stationsLon    float64
	stationsRadius int
	stationsLimit  int
)

var stationsCmd = &cobra.Command{
	Use:   "stations",
	Short: "List stations within a radius around a coordinate",
	RunE:  runStations,
}

func init() {
	stationsCmd.Flags().Float64Var(&stationsLat, "lat", 47.999, "Latitude (WGS84)")
	stationsCmd.Flags().Float64Var(&stationsLon, "lon", 7.842, "Longitude (WGS84)")
	stationsCmd.Flags().IntVarP(&stationsRadius, "radius", "r", 1000, "Search radius in meters")
	stationsCmd.Flags().IntVar(&stationsLimit, "limit", 50, "Max results")

	rootCmd.AddCommand(stationsCmd)
}

func runStations(cmd *cobra.Command, args []string) error {
	printHeader("Nearby Stations")

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(stationsLat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(stationsLon, 'f', -1, 64))
	params.Set("radius", strconv.Itoa(stationsRadius))
	params.Set("limit", strconv.Itoa(stationsLimit))

	status, data, err := newAPIClient().get("/api/stations", params)
	if err != nil {
		printError("%v", err)
		return err
	}
	if status != 200 {
		printError("HTTP %d: %s", status, envelopeError(data))
		return fmt.Errorf("stations request failed")
	}
	if jsonOutput {
		return printJSON(data)
	}

	printSuccess("%v stations within %d m", data["count"], stationsRadius)
	for _, v := range asSlice(data["stations"]) {
		printStation(v)
	}
	return nil
}

// asSlice tolerates a missing or differently shaped list field.
func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}

func printStation(v any) {
	st, _ := v.(map[string]any)
	if st == nil {
		return
	}
	name := st["name"]
	id := st["id"]
	if d, ok := st["distance_meters"].(float64); ok {
		fmt.Printf("  %v (%v) — %.1f m\n", name, id, d)
		return
	}
	fmt.Printf("  %v (%v)\n", name, id)
}
