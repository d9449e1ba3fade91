// Command zerocsv aggregates over CSV input using the zero-copy tokenizer.
//
// It is a thin driver around pkg/csv: it opens a file (or reads standard
// input), loops over ParseLine, and either counts fields or sums a chosen
// column. See the count and sum subcommands.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "zerocsv",
	Short: "Zero-copy CSV aggregation utilities",
	Long: `Utilities for aggregating over one-record-per-line CSV input using the
zero-copy tokenizer. Input is read from a file argument when given, or from
standard input otherwise.`,
	SilenceUsage: true,
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}
