package csv

// Defaults applied by Options.withDefaults. The streaming values match the
// tokenizer's intended use: a large read buffer with an 8KiB trailing margin
// reserved for the longest anticipated record.
const (
	DefaultBufferSize    = 512 * 1024
	DefaultMaxLineLength = 8 * 1024
	DefaultMaxColumns    = 16
)

// Options configures a Tokenizer at construction time.
//
// The delimiters cannot be changed after construction. Zero values are
// replaced with the defaults, so Options{} behaves like DefaultOptions().
type Options struct {
	// Separator is the field separator byte.
	// Default: ','
	Separator byte

	// Quote is the field quote byte. A quote in the first byte of a field
	// opens quoting; the matching quote closes it. Both are stripped from
	// the field's range. Escaped (doubled) quotes are not supported.
	// Default: '"'
	Quote byte

	// Terminator is the record terminator byte. Every record occupies
	// exactly one line; quoted terminators spanning lines are not
	// supported.
	// Default: '\n'
	Terminator byte

	// MaxColumns fixes the capacity of the field boundary table, allocated
	// once at construction. A record with more columns folds the excess
	// into the final column.
	// Default: 16
	MaxColumns int

	// BufferSize is the capacity of each streaming buffer epoch. It must
	// exceed MaxLineLength by at least the longest anticipated record;
	// this is not validated. Ignored for byte-slice input.
	// Default: 512KiB
	BufferSize int

	// MaxLineLength is the trailing margin reserved in the streaming
	// buffer so that a record never splits across two buffer epochs. A
	// record longer than this overruns the buffer and yields undefined
	// boundaries. Ignored for byte-slice input.
	// Default: 8KiB
	MaxLineLength int
}

// DefaultOptions returns the default tokenizer configuration.
func DefaultOptions() Options {
	return Options{
		Separator:     ',',
		Quote:         '"',
		Terminator:    '\n',
		MaxColumns:    DefaultMaxColumns,
		BufferSize:    DefaultBufferSize,
		MaxLineLength: DefaultMaxLineLength,
	}
}

// withDefaults fills zero-valued fields with the defaults.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Separator == 0 {
		o.Separator = d.Separator
	}
	if o.Quote == 0 {
		o.Quote = d.Quote
	}
	if o.Terminator == 0 {
		o.Terminator = d.Terminator
	}
	if o.MaxColumns <= 0 {
		o.MaxColumns = d.MaxColumns
	}
	if o.BufferSize <= 0 {
		o.BufferSize = d.BufferSize
	}
	if o.MaxLineLength <= 0 {
		o.MaxLineLength = d.MaxLineLength
	}
	return o
}
