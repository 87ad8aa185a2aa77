package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the API server is reachable",
	RunE:  runHealth,
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, args []string) error {
	printHeader("Health Check")

	status, data, err := newAPIClient().get("/api/health", nil)
	if err != nil {
		printError("API not reachable: %v", err)
		return err
	}
	if status != 200 {
		printError("HTTP %d: %s", status, envelopeError(data))
		return fmt.Errorf("health check failed")
	}
	if jsonOutput {
		return printJSON(data)
	}

	printSuccess("API is reachable")
	printInfo("Service", data["service"])
	return nil
}
