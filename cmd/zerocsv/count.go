package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jasonk000/zerocsv/pkg/csv"
)

var countCmd = &cobra.Command{
	Use:   "count [file]",
	Short: "Sum the per-record field counts",
	Long: `Streams the input through the tokenizer and prints the total number of
fields across all records. With no file argument, reads standard input.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCount,
}

func init() {
	addTokenizerFlags(countCmd)
	rootCmd.AddCommand(countCmd)
}

func runCount(cmd *cobra.Command, args []string) error {
	opts, err := optionsFromFlags(cmd)
	if err != nil {
		return err
	}

	in, closeIn, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer closeIn()

	total, err := countFields(in, opts)
	if err != nil {
		return err
	}

	cmd.Printf("%d\n", total)
	return nil
}

// countFields sums the field counts of every terminated record in r.
func countFields(r io.Reader, opts csv.Options) (int64, error) {
	tok := csv.NewStreamTokenizer(r, opts)

	var total int64
	for {
		more, err := tok.ParseLine()
		if err != nil {
			return 0, err
		}
		if !more {
			return total, nil
		}
		total += int64(tok.FieldCount())
	}
}

// openInput opens the file named in args, or falls back to the command's
// standard input. The returned closer is a no-op for standard input.
func openInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 0 {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
