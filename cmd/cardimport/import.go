package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cardledger/server/internal/importer"
)

var importJSON bool

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Normalize a CSV export into canonical card records",
	Long: `Runs the full import pipeline on a CSV export: format detection,
column mapping, row normalization, and batch validation. Use "-" to
read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&importJSON, "json", false, "output the import result as JSON")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	text, err := readInput(args[0])
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	svc := importer.NewService(slog.Default())
	result, err := svc.Import(text, nil)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	if importJSON {
		return outputJSON(cmd, result)
	}

	cmd.Printf("Import %s: %s\n", result.ImportID, result.Analysis.DetectedFormat)
	cmd.Printf("  Rows:    %d total, %d valid\n",
		result.Summary.TotalRows, result.Summary.Valid)
	cmd.Printf("  Issues:  %d errors, %d warnings\n",
		result.Summary.Errors, result.Summary.Warnings)
	cmd.Println()

	for i, rec := range result.Records {
		line := rec.Name
		if rec.SetName != "" {
			line += " / " + rec.SetName
		}
		if rec.NormalizedNumber != "" {
			line += " #" + rec.NormalizedNumber
		}
		cmd.Printf("  [%d] %s x%d (%s", i+1, line, rec.Quantity, rec.Category)
		if rec.GradingCompany != importer.GradingRaw && rec.GradingCompany != "" {
			cmd.Printf(", %s %s", rec.GradingCompany, rec.Grade)
		}
		cmd.Println(")")
	}

	if len(result.Warnings) > 0 {
		cmd.Println()
		cmd.Println("Validation:")
		for _, w := range result.Warnings {
			cmd.Printf("  [%s] row %d: %s\n", w.Severity, w.Row, w.Message)
		}
	}
	return nil
}
