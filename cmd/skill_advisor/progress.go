package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-advisor/internal/evolution"
	"github.com/jonathan/skill-advisor/internal/types"
)

var progressCmd = &cobra.Command{
	Use:   "progress <skill-id>",
	Short: "Replay evidence snapshots through the progression tracker",
	Long:  "Replays an ordered JSON array of evidence snapshots through the progression tracker, deriving each transition from the evolution classifier, and prints the resulting append-only level history.",
	Args:  cobra.ExactArgs(1),
	RunE:  runProgress,
}

var progressEvidenceLog string

func init() {
	progressCmd.Flags().StringVarP(&progressEvidenceLog, "evidence-log", "e", "", "Path to JSON file holding an ordered array of evidence snapshots (required)")

	if err := progressCmd.MarkFlagRequired("evidence-log"); err != nil {
		panic(fmt.Sprintf("failed to mark evidence-log flag as required: %v", err))
	}

	rootCmd.AddCommand(progressCmd)
}

func runProgress(cmd *cobra.Command, args []string) error {
	s, _, err := openStore(cmd)
	if err != nil {
		return err
	}

	if _, ok := s.GetByID(args[0]); !ok {
		return fmt.Errorf("unknown skill id %q", args[0])
	}

	logContent, err := os.ReadFile(progressEvidenceLog)
	if err != nil {
		return fmt.Errorf("failed to read evidence log %s: %w", progressEvidenceLog, err)
	}
	var snapshots []types.EvolutionEvidence
	if err := json.Unmarshal(logContent, &snapshots); err != nil {
		return fmt.Errorf("failed to unmarshal evidence log JSON: %w", err)
	}

	tracker := evolution.NewTracker(evolution.NewClassifier())
	for _, snapshot := range snapshots {
		tracker.Record(args[0], snapshot)
	}

	payload, err := json.MarshalIndent(tracker.History(args[0]), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	fmt.Println(string(payload))
	return nil
}
