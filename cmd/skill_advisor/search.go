package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-advisor/internal/observability"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search skills by name and description",
	Long:  "Case-insensitive substring search over each skill's concatenated name and description.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	s, _, err := openStore(cmd)
	if err != nil {
		return err
	}

	results := s.Search(args[0])
	if len(results) == 0 {
		fmt.Printf("No skills match %q\n", args[0])
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	for i := range results {
		printer.PrintSkill(&results[i])
	}
	return nil
}
