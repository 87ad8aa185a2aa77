package main

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	nearestLat float64
	nearestLon float64
)

var nearestCmd = &cobra.Command{
	Use:   "nearest",
	Short: "Find the closest station to a coordinate",
	RunE:  runNearest,
}

func init() {
	nearestCmd.Flags().Float64Var(&nearestLat, "lat", 47.999, "Latitude (WGS84)")
	nearestCmd.Flags().Float64Var(&nearestLon, "lon", 7.842, "Longitude (WGS84)")

	rootCmd.AddCommand(nearestCmd)
}

func runNearest(cmd *cobra.Command, args []string) error {
	printHeader("Nearest Station")

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(nearestLat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(nearestLon, 'f', -1, 64))

	status, data, err := newAPIClient().get("/api/stations/nearest", params)
	if err != nil {
		printError("%v", err)
		return err
	}
	if status == 404 {
		printError("no station found within 5 km")
		return fmt.Errorf("no station found")
	}
	if status != 200 {
		printError("HTTP %d: %s", status, envelopeError(data))
		return fmt.Errorf("nearest request failed")
	}
	if jsonOutput {
		return printJSON(data)
	}

	printSuccess("nearest station:")
	printStation(data["station"])
	return nil
}
