package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jasonk000/zerocsv/pkg/csv"
)

// addTokenizerFlags registers the shared tokenizer configuration flags.
func addTokenizerFlags(cmd *cobra.Command) {
	cmd.Flags().String("separator", ",", "Field separator (single byte)")
	cmd.Flags().String("quote", `"`, "Field quote (single byte)")
	cmd.Flags().String("terminator", "\n", "Record terminator (single byte)")
	cmd.Flags().Int("max-columns", csv.DefaultMaxColumns, "Field table capacity")
	cmd.Flags().Int("buffer-size", csv.DefaultBufferSize, "Streaming buffer capacity in bytes")
	cmd.Flags().Int("max-line-length", csv.DefaultMaxLineLength, "Reserved margin for the longest record in bytes")
}

// optionsFromFlags builds tokenizer Options from the shared flags.
func optionsFromFlags(cmd *cobra.Command) (csv.Options, error) {
	opts := csv.DefaultOptions()

	var err error
	if opts.Separator, err = singleByteFlag(cmd, "separator"); err != nil {
		return csv.Options{}, err
	}
	if opts.Quote, err = singleByteFlag(cmd, "quote"); err != nil {
		return csv.Options{}, err
	}
	if opts.Terminator, err = singleByteFlag(cmd, "terminator"); err != nil {
		return csv.Options{}, err
	}

	opts.MaxColumns, _ = cmd.Flags().GetInt("max-columns")
	opts.BufferSize, _ = cmd.Flags().GetInt("buffer-size")
	opts.MaxLineLength, _ = cmd.Flags().GetInt("max-line-length")
	return opts, nil
}

func singleByteFlag(cmd *cobra.Command, name string) (byte, error) {
	s, _ := cmd.Flags().GetString(name)
	if len(s) != 1 {
		return 0, fmt.Errorf("flag --%s must be a single byte, got %q", name, s)
	}
	return s[0], nil
}
