package main

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cardledger/server/internal/catalog"
	"github.com/cardledger/server/internal/config"
	"github.com/cardledger/server/internal/importer"
	"github.com/cardledger/server/internal/match"
)

var (
	matchJSON     bool
	matchMinScore int
	matchStrict   bool
)

var matchCmd = &cobra.Command{
	Use:   "match [file]",
	Short: "Import a CSV export and match records against the catalog",
	Long: `Runs the import pipeline on a CSV export, then looks each record up
in the card catalog and reports the best match per record. Catalog
access is configured through CATALOG_BASE_URL and CATALOG_API_KEY.`,
	Args: cobra.ExactArgs(1),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "output matches as JSON")
	matchCmd.Flags().IntVar(&matchMinScore, "min-score", 0, "override the minimum match score")
	matchCmd.Flags().BoolVar(&matchStrict, "strict", false, "require a name signal for every match")
	rootCmd.AddCommand(matchCmd)
}

type matchOutput struct {
	Record *importer.CanonicalRecord `json:"record"`
	Match  *match.Result             `json:"match"`
}

func runMatch(cmd *cobra.Command, args []string) error {
	_ = godotenv.Overload()
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	text, err := readInput(args[0])
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	svc := importer.NewService(slog.Default())
	result, err := svc.Import(text, nil)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	client := catalog.NewClient(catalog.Options{
		BaseURL:    cfg.Catalog.BaseURL,
		APIKey:     cfg.Catalog.APIKey,
		PageSize:   cfg.Catalog.PageSize,
		Timeout:    cfg.Catalog.Timeout,
		MaxRetries: cfg.Catalog.MaxRetries,
	})

	mc := match.Config{
		MinScore:    float64(cfg.Matching.MinScore),
		MaxResults:  cfg.Matching.MaxResults,
		Strict:      cfg.Matching.Strict || matchStrict,
		Concurrency: cfg.Matching.Concurrency,
	}
	if matchMinScore > 0 {
		mc.MinScore = float64(matchMinScore)
	}

	matches := match.BatchMatch(cmd.Context(), result.Records, client.Search, mc)

	out := make([]matchOutput, 0, len(result.Records))
	for _, rec := range result.Records {
		out = append(out, matchOutput{Record: rec, Match: matches[rec]})
	}

	if matchJSON {
		return outputJSON(cmd, out)
	}

	matched := 0
	for _, entry := range out {
		label := entry.Record.Name
		if entry.Record.SetName != "" {
			label += " / " + entry.Record.SetName
		}
		if entry.Match == nil {
			cmd.Printf("  %-50s no match\n", label)
			continue
		}
		matched++
		cmd.Printf("  %-50s %s (%s #%s, score %.0f)\n",
			label,
			entry.Match.Candidate.Name,
			entry.Match.Candidate.SetName,
			entry.Match.Candidate.Number,
			entry.Match.Score)
	}
	cmd.Println()
	cmd.Printf("Matched %d of %d records\n", matched, len(out))
	return nil
}
