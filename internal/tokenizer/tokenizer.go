// Package tokenizer implements a byte-oriented, zero-copy CSV tokenizer.
//
// The tokenizer consumes one record per line from a Source and records field
// boundaries in a fixed-capacity table instead of materializing field values.
// Consumers read fields as (buffer, offset, length) ranges or decode them
// straight from the bytes, so steady-state parsing performs no per-field
// allocations.
//
// The design trades validation for throughput:
//   - Quotes are stripped from field ranges but never unescaped; a doubled
//     quote inside a quoted field is not supported.
//   - An unterminated quote at end of input yields undefined boundaries.
//   - Numeric decoders assume clean digit bytes and perform no sign,
//     overflow, or syntax checking.
//   - A record with more columns than the table capacity folds the excess
//     into the final column.
//
// Only I/O errors from the underlying source are surfaced. Everything else
// is the caller's responsibility to prevent upstream.
//
// The tokenizer is not safe for concurrent use.
package tokenizer

// Tokenizer scans records from a Source one line at a time and exposes the
// current record's fields through offset/length accessors.
//
// All offsets index into the slice returned by LineBuffer and are valid only
// until the next call to ParseLine, which may rotate the backing buffer.
type Tokenizer struct {
	src Source

	terminator byte
	separator  byte
	quote      byte

	// Boundaries of the current record within the backing buffer.
	lineStart int
	lineEnd   int

	// Field boundary table: inclusive start/end offsets per column,
	// allocated once and rewritten on every ParseLine.
	fieldStarts []int
	fieldEnds   []int

	// Parser state, reset at the top of every ParseLine.
	currentColumn      int
	insideQuotes       bool
	prevFieldWasQuoted bool
}

// New creates a Tokenizer reading from src. maxColumns fixes the capacity of
// the field boundary table. terminator, separator and quote configure the
// bytes driving the state machine; the usual choice is '\n', ',' and '"'.
func New(src Source, maxColumns int, terminator, separator, quote byte) *Tokenizer {
	return &Tokenizer{
		src:         src,
		terminator:  terminator,
		separator:   separator,
		quote:       quote,
		lineStart:   -1,
		lineEnd:     -1,
		fieldStarts: make([]int, maxColumns),
		fieldEnds:   make([]int, maxColumns),
	}
}

// ParseLine advances to the next record, reading bytes until a terminator or
// end of input and rewriting the field boundary table.
//
// It returns true if a terminator was found and false once input is
// exhausted. The final record of an unterminated input is still closed and
// readable on the call that returns false.
//
// Calling ParseLine invalidates all offsets and zero-copy ranges obtained
// for the previous record if the source rotates its buffer.
func (t *Tokenizer) ParseLine() (bool, error) {
	// Rotation is only safe here, before any byte of the next record has
	// been consumed.
	t.src.RotateIfNeeded()

	// Reset parser state to a known point.
	t.currentColumn = 0
	t.lineStart = t.src.Pos() + 1
	t.fieldStarts[0] = t.lineStart
	t.insideQuotes = false
	t.prevFieldWasQuoted = false

	more := t.scan()
	if !more {
		// The sentinel was observed; distinguish end-of-input from a read
		// failure.
		if err := t.src.Err(); err != nil {
			return false, err
		}
	}
	return more, nil
}

// scan reads bytes until the record is closed by a terminator or EOF.
func (t *Tokenizer) scan() bool {
	terminator := int(t.terminator)
	separator := int(t.separator)
	quote := int(t.quote)

	for {
		b := t.src.Next()

		// Fast path: an ordinary byte changes no state.
		if b != EOF && b != terminator && b != separator && b != quote {
			continue
		}

		switch b {
		case separator:
			t.handleSeparator()
		case EOF:
			t.closeLine()
			return false
		case terminator:
			t.closeLine()
			return true
		default:
			t.handleQuote()
		}
	}
}

// handleQuote processes a quote byte at the start or end of a field.
//
// A quote in the first byte of a field opens quoting and is excluded from
// the field's range. A quote while inside a quoted region closes it; the
// following separator or terminator trims it from the field end. Any other
// quote occurrence is ignored.
func (t *Tokenizer) handleQuote() {
	if t.src.Pos() == t.fieldStarts[t.currentColumn] {
		t.insideQuotes = true
		t.prevFieldWasQuoted = true
		t.fieldStarts[t.currentColumn]++
	} else if t.insideQuotes {
		t.insideQuotes = false
	}
}

// handleSeparator closes the current field and opens the next column.
// Separators inside a quoted region are literal data.
func (t *Tokenizer) handleSeparator() {
	if t.insideQuotes {
		return
	}
	if t.currentColumn+1 >= len(t.fieldStarts) {
		// Field table is full: fold the rest of the record into the final
		// column instead of writing out of range. The next ParseLine
		// resets cleanly.
		return
	}

	pos := t.src.Pos()
	if t.prevFieldWasQuoted {
		// Shift one further back to strip the trailing quote.
		t.fieldEnds[t.currentColumn] = pos - 2
		t.prevFieldWasQuoted = false
	} else {
		t.fieldEnds[t.currentColumn] = pos - 1
	}
	t.currentColumn++
	t.fieldStarts[t.currentColumn] = pos + 1
}

// closeLine closes the final field and records the line end. Used for both
// terminator bytes and end of input.
func (t *Tokenizer) closeLine() {
	t.lineEnd = t.src.Pos() - 1
	if t.prevFieldWasQuoted {
		t.fieldEnds[t.currentColumn] = t.lineEnd - 1
	} else {
		t.fieldEnds[t.currentColumn] = t.lineEnd
	}
}

// FieldCount returns the number of fields parsed in the current record.
func (t *Tokenizer) FieldCount() int {
	return t.currentColumn + 1
}

// Offset returns the start offset of field i in the backing buffer.
func (t *Tokenizer) Offset(i int) int {
	return t.fieldStarts[i]
}

// Length returns the length in bytes of field i.
func (t *Tokenizer) Length(i int) int {
	return t.fieldEnds[i] - t.fieldStarts[i] + 1
}

// FieldBytes returns field i as a subslice of the backing buffer, without
// copying. The slice is valid until the next ParseLine and must not be
// modified.
func (t *Tokenizer) FieldBytes(i int) []byte {
	return t.src.Buffer()[t.fieldStarts[i] : t.fieldEnds[i]+1]
}

// Field returns field i as a freshly allocated string. Bytes are copied
// verbatim, one byte per character.
func (t *Tokenizer) Field(i int) string {
	return string(t.FieldBytes(i))
}

// LineBuffer returns the backing buffer holding the current record.
func (t *Tokenizer) LineBuffer() []byte {
	return t.src.Buffer()
}

// LineOffset returns the offset of the current record in the backing buffer.
func (t *Tokenizer) LineOffset() int {
	return t.lineStart
}

// LineLength returns the length of the current record in bytes, excluding
// the terminator.
func (t *Tokenizer) LineLength() int {
	return t.lineEnd - t.lineStart + 1
}

// LineBytes returns the current record as a subslice of the backing buffer,
// without copying.
func (t *Tokenizer) LineBytes() []byte {
	return t.src.Buffer()[t.lineStart : t.lineEnd+1]
}
