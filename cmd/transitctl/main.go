// transitctl is a smoke-test CLI for a running transit-api server.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	baseURL    string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "transitctl",
	Short: "Smoke-test CLI for the Freiburg transit REST API",
	Long: `transitctl — exercise a running transit-api server.

Query stations, departure/arrival boards and routes against the local REST
API and print the results for humans or machines.

Examples:
  transitctl health
  transitctl search -q "Freiburg Hbf"
  transitctl stations --lat 47.999 --lon 7.842 --radius 500
  transitctl route --from 8000107 --to 8000105
  transitctl all`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "http://localhost:8080", "Base URL of the transit-api server")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output raw JSON (for agent/machine consumption)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
