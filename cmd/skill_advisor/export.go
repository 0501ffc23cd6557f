package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full catalog snapshot as JSON",
	RunE:  runExport,
}

var exportOutput string

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "out", "o", "", "Path to output JSON file (stdout when omitted)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	s, _, err := openStore(cmd)
	if err != nil {
		return err
	}

	payload, err := s.ExportJSON()
	if err != nil {
		return fmt.Errorf("failed to export catalog: %w", err)
	}

	if exportOutput == "" {
		fmt.Println(string(payload))
		return nil
	}

	outputDir := filepath.Dir(exportOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(exportOutput, payload, 0644); err != nil {
		return fmt.Errorf("failed to write export to %s: %w", exportOutput, err)
	}
	return nil
}
