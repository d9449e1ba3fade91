package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jasonk000/zerocsv/pkg/csv"
)

// resetCommandFlags restores every subcommand flag to its default so tests
// that drive rootCmd.Execute do not leak flag values into each other.
func resetCommandFlags(t *testing.T) {
	t.Helper()
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			require.NoError(t, f.Value.Set(f.DefValue))
			f.Changed = false
		})
	}
}

func TestCountFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{name: "empty", input: "", want: 0},
		{name: "single record", input: "a,b,c\n", want: 3},
		{name: "mixed widths", input: "a,b,c\nd,e\nf\n", want: 6},
		{name: "unterminated final record not counted", input: "a,b\nc,d", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := countFields(strings.NewReader(tt.input), csv.DefaultOptions())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSumField(t *testing.T) {
	input := "melbourne,5207145\nsydney,5361466\nperth,2141834\n"

	got, err := sumField(strings.NewReader(input), 1, csv.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, int64(5207145+5361466+2141834), got)
}

func TestSumFieldBytes_MatchesStream(t *testing.T) {
	input := "a,1\nb,2\nc,3\n"

	fromStream, err := sumField(strings.NewReader(input), 1, csv.DefaultOptions())
	require.NoError(t, err)
	fromBytes, err := sumFieldBytes([]byte(input), 1, csv.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, fromStream, fromBytes)
	assert.Equal(t, int64(6), fromBytes)
}

func TestSumCommand_File(t *testing.T) {
	resetCommandFlags(t)
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("x,10\ny,32\n"), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"sum", "--field", "2", path})
	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, "42\n", out.String())
}

func TestCountCommand_CustomQuoteAndTerminator(t *testing.T) {
	resetCommandFlags(t)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader("'a,b',c|d,e|"))
	rootCmd.SetArgs([]string{"count", "--separator", ",", "--quote", "'", "--terminator", "|"})
	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, "4\n", out.String())
}

func TestCountCommand_CustomSeparator(t *testing.T) {
	resetCommandFlags(t)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader("a\tb\tc\n"))
	rootCmd.SetArgs([]string{"count", "--separator", "\t"})
	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, "3\n", out.String())
}
