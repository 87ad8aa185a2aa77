package main

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var (
	searchQuery string
	searchLimit int
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search stations by name",
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "Search term")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 10, "Max results")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := searchQuery
	if query == "" && len(args) > 0 {
		query = strings.Join(args, " ")
	}
	if query == "" {
		return fmt.Errorf("provide a search term via -q or as an argument")
	}

	printHeader("Station Search")

	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(searchLimit))

	status, data, err := newAPIClient().get("/api/stations/search", params)
	if err != nil {
		printError("%v", err)
		return err
	}
	if status != 200 {
		printError("HTTP %d: %s", status, envelopeError(data))
		return fmt.Errorf("search request failed")
	}
	if jsonOutput {
		return printJSON(data)
	}

	printSuccess("%v stations matching %q", data["count"], query)
	for _, v := range asSlice(data["stations"]) {
		printStation(v)
	}
	return nil
}
