package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-advisor/internal/observability"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog statistics",
	Long:  "Loads the skill record set and prints counts grouped by industry, category, evolution level, complexity, and status, plus the distinct values available per filter facet.",
	RunE:  runStats,
}

var statsJSON bool

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Emit machine-readable JSON instead of formatted output")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	s, _, err := openStore(cmd)
	if err != nil {
		return err
	}

	stats := s.Statistics()
	if statsJSON {
		out := struct {
			Statistics interface{} `json:"statistics"`
			Facets     interface{} `json:"facets"`
		}{stats, s.AvailableFilters()}
		payload, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal statistics: %w", err)
		}
		fmt.Println(string(payload))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintStatistics(stats)
	return nil
}
