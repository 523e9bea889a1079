// Package main provides the entry point for the crew-match HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "crewmatch",
	Short: "Crew-match HTTP API Server",
	Long:  "Crew-match turns free-text position briefs into ranked, anonymized candidate lists for yacht crew and private household placements via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
