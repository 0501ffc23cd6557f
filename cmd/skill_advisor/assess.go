package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-advisor/internal/evolution"
	"github.com/jonathan/skill-advisor/internal/observability"
	"github.com/jonathan/skill-advisor/internal/types"
)

var assessCmd = &cobra.Command{
	Use:   "assess <skill-id>",
	Short: "Assess a skill's evolution level from evidence",
	Long:  "Evaluates aggregated deployment evidence against the four-level criteria ladder and reports the current level, readiness for the next level, strengths, and gaps.",
	Args:  cobra.ExactArgs(1),
	RunE:  runAssess,
}

var (
	assessEvidenceFile string
	assessJSON         bool
)

func init() {
	assessCmd.Flags().StringVarP(&assessEvidenceFile, "evidence", "e", "", "Path to JSON file holding the evolution evidence (required)")
	assessCmd.Flags().BoolVar(&assessJSON, "json", false, "Emit machine-readable JSON instead of formatted output")

	if err := assessCmd.MarkFlagRequired("evidence"); err != nil {
		panic(fmt.Sprintf("failed to mark evidence flag as required: %v", err))
	}

	rootCmd.AddCommand(assessCmd)
}

func runAssess(cmd *cobra.Command, args []string) error {
	s, _, err := openStore(cmd)
	if err != nil {
		return err
	}

	skill, ok := s.GetByID(args[0])
	if !ok {
		return fmt.Errorf("unknown skill id %q", args[0])
	}

	evidenceContent, err := os.ReadFile(assessEvidenceFile)
	if err != nil {
		return fmt.Errorf("failed to read evidence file %s: %w", assessEvidenceFile, err)
	}
	var evidence types.EvolutionEvidence
	if err := json.Unmarshal(evidenceContent, &evidence); err != nil {
		return fmt.Errorf("failed to unmarshal evidence JSON: %w", err)
	}

	classifier := evolution.NewClassifier()
	assessment := classifier.Assess(skill, &evidence)

	if assessJSON {
		payload, err := json.MarshalIndent(assessment, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal assessment: %w", err)
		}
		fmt.Println(string(payload))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintAssessment(&assessment)
	fmt.Println(classifier.LevelDescription(assessment.CurrentLevel, &evidence))
	return nil
}
