// Package csv provides a byte-oriented, zero-copy CSV tokenizer for
// one-record-per-line input.
//
// Unlike encoding/csv, the tokenizer does not materialize records as string
// slices. It records field boundaries in a fixed table and lets consumers
// read fields as byte ranges into the backing buffer, or decode them to
// numeric types without intermediate allocation. Unused fields cost nothing.
//
// # Usage
//
// Create a tokenizer over an in-memory byte slice or a stream, then call
// ParseLine for each record and query the accessors before requesting the
// next line:
//
//	tok := csv.NewBytesTokenizer(data, csv.Options{MaxColumns: 8})
//	for {
//	    more, err := tok.ParseLine()
//	    if err != nil {
//	        // handle I/O error
//	    }
//	    population := tok.Int(4)
//	    name := tok.FieldBytes(2) // zero-copy, valid until next ParseLine
//	    _ = population
//	    _ = name
//	    if !more {
//	        break
//	    }
//	}
//
// Note the loop shape: when input ends without a trailing terminator,
// ParseLine returns false with the final record still populated and
// readable.
//
// # Validity windows
//
// Zero-copy ranges index into the tokenizer's backing buffer. For streaming
// input the buffer is rotated between records to bound memory, so every
// offset, FieldBytes slice and FieldRef is valid only until the next
// ParseLine call. Ranges held across a rotation keep pointing into the old
// buffer: internally consistent, but stale.
//
// # Limitations
//
// The input is assumed to have been cleaned upstream. Multi-line quoted
// fields, escaped quotes, and multi-byte text encodings are not supported;
// malformed quoting yields undefined boundaries rather than an error. Only
// I/O failures are surfaced. The tokenizer is not safe for concurrent use.
package csv

import (
	"io"

	"github.com/jasonk000/zerocsv/internal/tokenizer"
)

// Tokenizer parses one-record-per-line CSV from a byte slice or a stream.
// See the package documentation for the parse loop shape and validity
// windows.
type Tokenizer struct {
	tok *tokenizer.Tokenizer
}

// NewBytesTokenizer creates a Tokenizer over data that is already in memory.
// Field ranges index straight into data; nothing is copied. Do not modify
// data while parsing is in progress.
func NewBytesTokenizer(data []byte, opts Options) *Tokenizer {
	opts = opts.withDefaults()
	src := tokenizer.NewBytesSource(data)
	return &Tokenizer{
		tok: tokenizer.New(src, opts.MaxColumns, opts.Terminator, opts.Separator, opts.Quote),
	}
}

// NewStreamTokenizer creates a Tokenizer over r using a rotating buffer of
// opts.BufferSize bytes. Memory stays bounded regardless of input size, at
// the cost of one buffer allocation per rotation.
func NewStreamTokenizer(r io.Reader, opts Options) *Tokenizer {
	opts = opts.withDefaults()
	src := tokenizer.NewStreamSource(r, opts.BufferSize, opts.MaxLineLength)
	return &Tokenizer{
		tok: tokenizer.New(src, opts.MaxColumns, opts.Terminator, opts.Separator, opts.Quote),
	}
}

// ParseLine advances to the next record, filling the field boundary table.
// It returns true while a terminator was found and false once input is
// exhausted; the final record is still populated on the false return. The
// error is non-nil only for I/O failures from the underlying stream.
func (t *Tokenizer) ParseLine() (bool, error) {
	return t.tok.ParseLine()
}

// FieldCount returns the number of fields in the current record.
func (t *Tokenizer) FieldCount() int { return t.tok.FieldCount() }

// Offset returns the start offset of field i in LineBuffer.
func (t *Tokenizer) Offset(i int) int { return t.tok.Offset(i) }

// Length returns the length of field i in bytes.
func (t *Tokenizer) Length(i int) int { return t.tok.Length(i) }

// FieldBytes returns field i as a zero-copy slice of the backing buffer.
// Quotes around a quoted field are excluded from the range.
//
// IMPORTANT: the slice is valid only until the next ParseLine and must not
// be modified.
func (t *Tokenizer) FieldBytes(i int) []byte { return t.tok.FieldBytes(i) }

// Field returns field i as a newly allocated string.
func (t *Tokenizer) Field(i int) string { return t.tok.Field(i) }

// Int decodes field i as an int. No sign, overflow or syntax checking is
// performed; non-digit bytes silently corrupt the result.
func (t *Tokenizer) Int(i int) int { return t.tok.Int(i) }

// Int64 decodes field i as an int64, with the same caveats as Int.
func (t *Tokenizer) Int64(i int) int64 { return t.tok.Int64(i) }

// Float64 decodes field i as a float64: digit accumulation with a fraction
// count started at the first decimal point. Same caveats as Int.
func (t *Tokenizer) Float64(i int) float64 { return t.tok.Float64(i) }

// LineBuffer returns the backing buffer holding the current record.
func (t *Tokenizer) LineBuffer() []byte { return t.tok.LineBuffer() }

// LineOffset returns the offset of the current record in LineBuffer.
func (t *Tokenizer) LineOffset() int { return t.tok.LineOffset() }

// LineLength returns the length of the current record, excluding the
// terminator.
func (t *Tokenizer) LineLength() int { return t.tok.LineLength() }

// LineBytes returns the current record as a zero-copy slice of the backing
// buffer, valid until the next ParseLine.
func (t *Tokenizer) LineBytes() []byte { return t.tok.LineBytes() }

// FieldRef returns a zero-copy reference to field i that can be passed
// downstream without copying the bytes, for example onto a queue of plain
// records. See FieldRef for the validity window.
func (t *Tokenizer) FieldRef(i int) FieldRef {
	return FieldRef{
		Buffer: t.tok.LineBuffer(),
		Offset: t.tok.Offset(i),
		Length: t.tok.Length(i),
	}
}
