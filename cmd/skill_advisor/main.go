// Package main provides the entry point for the skill-advisor CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skill_advisor",
	Short: "Skill catalog matching and evolution assessment",
	Long:  "Skill Advisor matches reusable automation skill records against observed client pain patterns and classifies each skill's maturity on a fixed four-level evolution ladder.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
