package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cardledger/server/internal/logging"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "cardimport",
	Short: "Analyze, normalize, and match card collection CSV exports",
	Long: `cardimport works with CSV exports from TCGplayer, Cardmarket, eBay,
Collectr, PSA Vault and similar tools. It detects the file format,
maps columns to canonical fields, normalizes rows, and can match
records against the card catalog.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := "warn"
		if verbose {
			level = "debug"
		}
		logging.Setup(level, "text")
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	slog.Debug("read input file", "path", path, "bytes", len(data))
	return string(data), nil
}
