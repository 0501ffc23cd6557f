package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-advisor/internal/store"
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Filter skills with field conditions",
	Long:  "Applies field/operator/value conditions (equals, notEquals, contains, startsWith, endsWith, gt, gte, lt, lte, in, notIn) with optional stable sorting and 1-based pagination. Unknown operators pass every record through.",
	RunE:  runFilter,
}

var (
	filterConditions string
	filterSortBy     string
	filterSortDir    string
	filterPage       int
	filterLimit      int
)

func init() {
	filterCmd.Flags().StringVar(&filterConditions, "conditions", "", `JSON array of conditions, e.g. '[{"field":"industry","operator":"equals","value":"saas"}]'`)
	filterCmd.Flags().StringVar(&filterSortBy, "sort-by", "", "Field to sort by")
	filterCmd.Flags().StringVar(&filterSortDir, "sort-dir", store.SortAsc, "Sort direction: asc or desc")
	filterCmd.Flags().IntVar(&filterPage, "page", 1, "1-based page number")
	filterCmd.Flags().IntVar(&filterLimit, "limit", 0, "Page size; 0 disables pagination")

	rootCmd.AddCommand(filterCmd)
}

func runFilter(cmd *cobra.Command, _ []string) error {
	s, _, err := openStore(cmd)
	if err != nil {
		return err
	}

	opts := store.FilterOptions{
		SortBy:  filterSortBy,
		SortDir: filterSortDir,
		Page:    filterPage,
		Limit:   filterLimit,
	}
	if filterConditions != "" {
		if err := json.Unmarshal([]byte(filterConditions), &opts.Conditions); err != nil {
			return fmt.Errorf("failed to parse --conditions JSON: %w", err)
		}
	}

	result := s.Filter(opts)
	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal filter result: %w", err)
	}
	fmt.Println(string(payload))
	return nil
}
