package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-advisor/internal/matching"
	"github.com/jonathan/skill-advisor/internal/observability"
	"github.com/jonathan/skill-advisor/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match <skill-id>",
	Short: "Match a skill against pain patterns",
	Long:  "Scores one skill against a set of pain patterns, applying the client context multiplier, and reports the pains the skill addresses.",
	Args:  cobra.ExactArgs(1),
	RunE:  runMatch,
}

var (
	matchPainsFile   string
	matchIndustry    string
	matchRoles       []string
	matchCompanySize string
	matchUrgency     string
	matchDetailed    bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchPainsFile, "pains", "p", "", "Path to JSON file holding an array of pain patterns (required)")
	matchCmd.Flags().StringVar(&matchIndustry, "industry", "", "Client industry")
	matchCmd.Flags().StringSliceVar(&matchRoles, "roles", nil, "Client roles affected by the pains")
	matchCmd.Flags().StringVar(&matchCompanySize, "company-size", "", "Client company size: small, medium, or large")
	matchCmd.Flags().StringVar(&matchUrgency, "urgency", "", "Client urgency: low, medium, or high")
	matchCmd.Flags().BoolVarP(&matchDetailed, "detailed", "d", false, "Print per-pair sub-score evidence")

	if err := matchCmd.MarkFlagRequired("pains"); err != nil {
		panic(fmt.Sprintf("failed to mark pains flag as required: %v", err))
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	s, cfg, err := openStore(cmd)
	if err != nil {
		return err
	}

	skill, ok := s.GetByID(args[0])
	if !ok {
		return fmt.Errorf("unknown skill id %q", args[0])
	}

	painsContent, err := os.ReadFile(matchPainsFile)
	if err != nil {
		return fmt.Errorf("failed to read pains file %s: %w", matchPainsFile, err)
	}
	var pains []types.PainPattern
	if err := json.Unmarshal(painsContent, &pains); err != nil {
		return fmt.Errorf("failed to unmarshal pain patterns JSON: %w", err)
	}

	ctx := &types.RecommendationContext{
		Industry:    matchIndustry,
		Roles:       matchRoles,
		CompanySize: matchCompanySize,
		Urgency:     matchUrgency,
	}

	scorer := matching.NewScorer()
	if matchDetailed {
		results := scorer.DetailedResults(skill, pains, ctx)
		observability.NewPrinter(os.Stdout).PrintMatchResults(results)
		return nil
	}

	matches := scorer.MatchWithThreshold(skill, pains, ctx, cfg.MatchThreshold)
	payload, err := json.MarshalIndent(matches, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal matches: %w", err)
	}
	fmt.Println(string(payload))
	return nil
}
