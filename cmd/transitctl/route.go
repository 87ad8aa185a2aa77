package main

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	routeFrom  string
	routeTo    string
	routeTime  string
	routeLimit int
)

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Plan a route between two stations",
	RunE:  runRoute,
}

func init() {
	routeCmd.Flags().StringVar(&routeFrom, "from", "8000107", "Origin station ID")
	routeCmd.Flags().StringVar(&routeTo, "to", "8000105", "Destination station ID")
	routeCmd.Flags().StringVar(&routeTime, "time", "", "Departure time (ISO-8601, default now)")
	routeCmd.Flags().IntVar(&routeLimit, "limit", 5, "Max route suggestions")

	rootCmd.AddCommand(routeCmd)
}

func runRoute(cmd *cobra.Command, args []string) error {
	printHeader("Route Planning")

	params := url.Values{}
	params.Set("from", routeFrom)
	params.Set("to", routeTo)
	params.Set("limit", strconv.Itoa(routeLimit))
	if routeTime != "" {
		params.Set("time", routeTime)
	}

	status, data, err := newAPIClient().get("/api/route", params)
	if err != nil {
		printError("%v", err)
		return err
	}
	if status != 200 {
		printError("HTTP %d: %s", status, envelopeError(data))
		return fmt.Errorf("route request failed")
	}
	if jsonOutput {
		return printJSON(data)
	}

	printSuccess("%v routes from %s to %s", data["count"], routeFrom, routeTo)
	for i, v := range asSlice(data["routes"]) {
		printRoute(i+1, v)
	}
	return nil
}

func printRoute(n int, v any) {
	route, _ := v.(map[string]any)
	if route == nil {
		return
	}
	duration, _ := route["duration_minutes"].(float64)
	transfers, _ := route["num_transfers"].(float64)
	legs := asSlice(route["legs"])

	fmt.Printf("  Route %d: %v → %v (%d min, %d transfers)\n",
		n, route["departure_time"], route["arrival_time"], int(duration), int(transfers))
	for _, lv := range legs {
		leg, _ := lv.(map[string]any)
		if leg == nil {
			continue
		}
		if leg["type"] == "walk" {
			dist, _ := leg["distance"].(float64)
			fmt.Printf("    walk %v → %v (%.0f m)\n", leg["origin"], leg["destination"], dist)
			continue
		}
		fmt.Printf("    %v (%v) %v → %v\n", leg["line"], leg["mode"], leg["origin"], leg["destination"])
	}
}
