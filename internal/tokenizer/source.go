package tokenizer

import (
	"fmt"
	"io"
)

// EOF is the sentinel returned by Source.Next when the underlying input is
// exhausted, the backing buffer is full, or a read error occurred.
// Byte values are always returned in the range 0-255.
const EOF = -1

// Source supplies bytes to the Tokenizer from a single backing buffer.
//
// Field and line offsets produced by the tokenizer index directly into the
// slice returned by Buffer(). Implementations guarantee that all bytes of one
// record live in the same buffer: the buffer may only be replaced by
// RotateIfNeeded, which the tokenizer calls strictly between records.
type Source interface {
	// Buffer returns the current backing buffer.
	Buffer() []byte

	// Pos returns the parse position: the index of the last consumed byte
	// in the current buffer, or -1 if nothing has been consumed yet.
	Pos() int

	// Next consumes and returns the next byte, or EOF when the source is
	// exhausted.
	Next() int

	// RotateIfNeeded gives the source an opportunity to replace the backing
	// buffer. It must only be called between records; any offsets obtained
	// before a rotation refer to the previous buffer and are stale after it.
	// Returns true if the buffer was replaced.
	RotateIfNeeded() bool

	// Err returns the first read error encountered, if any. Next reports
	// EOF on error; callers distinguish end-of-input from failure here.
	Err() error
}

// BytesSource reads from a byte slice that is already in memory.
//
// The tokenizer's zero-copy field ranges index straight into the caller's
// slice, so no bytes are ever copied. Do not modify the slice while parsing
// is in progress.
//
// The buffer is never rotated: RotateIfNeeded is a guaranteed no-op, and
// offsets stay valid for the lifetime of the source.
type BytesSource struct {
	buf []byte
	pos int
}

// NewBytesSource creates a Source over data.
func NewBytesSource(data []byte) *BytesSource {
	return &BytesSource{buf: data, pos: -1}
}

// Buffer returns the wrapped slice.
func (s *BytesSource) Buffer() []byte { return s.buf }

// Pos returns the index of the last consumed byte, or -1 before the first
// read.
func (s *BytesSource) Pos() int { return s.pos }

// Next consumes and returns the next byte, or EOF at the end of the slice.
func (s *BytesSource) Next() int {
	if s.pos+1 >= len(s.buf) {
		s.pos = len(s.buf)
		return EOF
	}
	s.pos++
	return int(s.buf[s.pos])
}

// RotateIfNeeded is a no-op for an in-memory slice.
func (s *BytesSource) RotateIfNeeded() bool { return false }

// Err always returns nil; an in-memory slice cannot fail.
func (s *BytesSource) Err() error { return nil }

// StreamSource reads from an io.Reader into a fixed-capacity buffer that is
// rotated between records to bound memory while consuming arbitrarily large
// inputs.
//
// Reads from the underlying reader are demand-driven: Next pulls more bytes
// into the buffer tail only when the parse position catches up with the
// high-water mark (the count of bytes filled so far).
//
// Rotation triggers once the parse position passes bufferSize-maxLineLength.
// A fresh buffer of identical capacity is allocated, bytes that were filled
// but not yet consumed are copied to its start, and the parse position and
// high-water mark are reset. The old buffer is dropped rather than reused, so
// zero-copy ranges taken before a rotation remain internally consistent -
// they are just stale.
//
// IMPORTANT: a record longer than maxLineLength can exhaust the buffer
// before its terminator is seen; Next then reports EOF mid-record and the
// resulting field offsets are undefined. Size the buffer so that
// bufferSize-maxLineLength comfortably exceeds the longest anticipated
// record. This is a documented limitation, not defended against.
type StreamSource struct {
	r   io.Reader
	buf []byte

	// rotateAt is the parse position at which RotateIfNeeded replaces the
	// buffer: bufferSize minus the reserved trailing margin.
	rotateAt int

	// hwm is the high-water mark: how many bytes of buf have been filled
	// from the reader.
	hwm int

	pos int
	eof bool
	err error
}

// NewStreamSource creates a rotating Source over r. bufferSize is the
// capacity of each buffer epoch; maxLineLength is the reserved trailing
// margin and must be smaller than bufferSize.
func NewStreamSource(r io.Reader, bufferSize, maxLineLength int) *StreamSource {
	return &StreamSource{
		r:        r,
		buf:      make([]byte, bufferSize),
		rotateAt: bufferSize - maxLineLength,
		pos:      -1,
	}
}

// Buffer returns the backing buffer for the current epoch.
func (s *StreamSource) Buffer() []byte { return s.buf }

// Pos returns the index of the last consumed byte in the current buffer, or
// -1 immediately after construction or a rotation.
func (s *StreamSource) Pos() int { return s.pos }

// Next consumes and returns the next byte, pulling more data from the reader
// if the parse position has reached the high-water mark. Returns EOF when the
// reader is exhausted, the buffer is full, or a read failed.
func (s *StreamSource) Next() int {
	s.pos++
	if !s.fill() {
		s.pos = s.hwm
		return EOF
	}
	return int(s.buf[s.pos])
}

// fill ensures the buffer holds the byte at the current parse position.
// Returns false if no more bytes can be made available.
func (s *StreamSource) fill() bool {
	for s.pos >= s.hwm {
		if s.err != nil || s.eof {
			return false
		}
		if s.hwm == len(s.buf) {
			// Buffer full. The caller missed a rotation window, or a
			// record overran the reserved margin.
			return false
		}
		n, err := s.r.Read(s.buf[s.hwm:])
		s.hwm += n
		if err == io.EOF {
			s.eof = true
		} else if err != nil {
			s.err = fmt.Errorf("zerocsv: reading source: %w", err)
		}
	}
	return true
}

// RotateIfNeeded replaces the backing buffer once the parse position has
// passed the rotation threshold, carrying forward any bytes that were filled
// but not yet consumed. Returns true if a rotation happened.
func (s *StreamSource) RotateIfNeeded() bool {
	if s.pos < s.rotateAt {
		return false
	}

	old := s.buf
	s.buf = make([]byte, len(old))

	carried := 0
	if s.pos+1 < s.hwm {
		carried = copy(s.buf, old[s.pos+1:s.hwm])
	}

	s.pos = -1
	s.hwm = carried
	return true
}

// Err returns the first error from the underlying reader, if any.
func (s *StreamSource) Err() error { return s.err }
