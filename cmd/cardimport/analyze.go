package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cardledger/server/internal/importer"
)

var analyzeJSON bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Detect the format and column mapping of a CSV export",
	Long: `Reads a CSV export, detects its delimiter and source format, and
reports how each column maps to a canonical field. Use "-" to read
from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output the analysis as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text, err := readInput(args[0])
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	svc := importer.NewService(slog.Default())
	_, analysis, err := svc.AnalyzeText(text)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	if analyzeJSON {
		return outputJSON(cmd, analysis)
	}

	cmd.Printf("Format:    %s\n", analysis.DetectedFormat)
	cmd.Printf("Delimiter: %q\n", analysis.Delimiter)
	cmd.Println()
	cmd.Println("Columns:")
	for _, col := range analysis.Columns {
		cmd.Printf("  [%d] %-30s -> %-16s (%.2f via %s)\n",
			col.Index, col.Header, col.Type, col.Confidence, col.Method)
	}
	if len(analysis.Warnings) > 0 {
		cmd.Println()
		cmd.Println("Warnings:")
		for _, w := range analysis.Warnings {
			cmd.Printf("  - %s\n", w)
		}
	}
	return nil
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
