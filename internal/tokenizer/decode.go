package tokenizer

// Numeric decoders operating directly on the field's byte range.
//
// These are deliberately permissive: no sign handling, no overflow
// detection, no syntax checking. Non-digit bytes silently corrupt the
// result. The design stance is throughput over defensive validation; feed
// these only columns known to be clean.

// Int decodes field i as an int by left-to-right digit accumulation.
func (t *Tokenizer) Int(i int) int {
	buf := t.src.Buffer()
	sum := 0
	for j := t.fieldStarts[i]; j <= t.fieldEnds[i]; j++ {
		// Widen before subtracting so a non-digit byte below '0'
		// accumulates as a small negative value rather than wrapping.
		sum = sum*10 + (int(buf[j]) - '0')
	}
	return sum
}

// Int64 decodes field i as an int64 by left-to-right digit accumulation.
func (t *Tokenizer) Int64(i int) int64 {
	buf := t.src.Buffer()
	var sum int64
	for j := t.fieldStarts[i]; j <= t.fieldEnds[i]; j++ {
		sum = sum*10 + (int64(buf[j]) - '0')
	}
	return sum
}

// Float64 decodes field i as a float64. Digits accumulate as for Int64; a
// decimal-point byte starts the fractional count, and the result is the
// accumulated digits divided by 10^(fraction digits). A second decimal point
// is not rejected - it restarts the fractional count.
func (t *Tokenizer) Float64(i int) float64 {
	buf := t.src.Buffer()
	var sum int64
	var divisor int64 = 1
	sawDecimal := false
	for j := t.fieldStarts[i]; j <= t.fieldEnds[i]; j++ {
		b := buf[j]
		if b == '.' {
			sawDecimal = true
			divisor = 1
		} else {
			sum = sum*10 + (int64(b) - '0')
			divisor *= 10
		}
	}
	if !sawDecimal {
		divisor = 1
	}
	return float64(sum) / float64(divisor)
}
