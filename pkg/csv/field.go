package csv

// FieldRef is a zero-copy reference to one field: a backing buffer plus the
// field's offset and length within it.
//
// A FieldRef captured before a buffer rotation keeps referencing the old
// buffer. The data stays internally consistent because old buffers are
// dropped rather than reused, but it is stale: it no longer corresponds to
// the tokenizer's current record. Holding many FieldRefs across rotations
// also keeps their old buffers alive; copy the bytes out if records must
// outlive the parse.
type FieldRef struct {
	Buffer []byte
	Offset int
	Length int
}

// Bytes returns the referenced field as a subslice of Buffer, without
// copying. The slice must not be modified.
func (f FieldRef) Bytes() []byte {
	return f.Buffer[f.Offset : f.Offset+f.Length]
}

// String returns the referenced field as a newly allocated string.
func (f FieldRef) String() string {
	return string(f.Bytes())
}
