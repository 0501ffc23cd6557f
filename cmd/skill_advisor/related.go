package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var relatedCmd = &cobra.Command{
	Use:   "related <skill-id>",
	Short: "Find skills similar to a given skill",
	Long:  "Scores every other catalog skill by shared industry, category, evolution-level proximity, and tag overlap, returning the best matches first.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRelated,
}

var relatedLimit int

func init() {
	relatedCmd.Flags().IntVarP(&relatedLimit, "limit", "l", 5, "Maximum related skills to return")
	rootCmd.AddCommand(relatedCmd)
}

func runRelated(cmd *cobra.Command, args []string) error {
	s, cfg, err := openStore(cmd)
	if err != nil {
		return err
	}

	limit := relatedLimit
	if !cmd.Flags().Changed("limit") && cfg.RelatedLimit > 0 {
		limit = cfg.RelatedLimit
	}

	if _, ok := s.GetByID(args[0]); !ok {
		return fmt.Errorf("unknown skill id %q", args[0])
	}

	related := s.Related(args[0], limit)
	payload, err := json.MarshalIndent(related, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal related skills: %w", err)
	}
	fmt.Println(string(payload))
	return nil
}
