// Package fmtutil provides the numeric formatting primitives shared by every
// field formatter: left padding, fraction digits, and invariant integer
// appending. All functions append to a bytes.Buffer; the buffer is mutable on
// purpose, since fraction truncation can retroactively remove characters that
// earlier steps appended.
package fmtutil

import (
	"bytes"
	"strconv"
)

// LeftPad appends value to the buffer, left-padded with zeros to the given
// length. Negative values produce a leading minus sign which does not consume
// padding width. Negating the minimum representable value overflows in its
// own width, so the magnitude is computed without ever negating the value
// directly.
func LeftPad(value int, length int, buf *bytes.Buffer) {
	if value >= 0 {
		LeftPadNonNegative(value, length, buf)
		return
	}
	buf.WriteByte('-')
	// -(value+1) cannot overflow for any negative value.
	magnitude := uint64(-int64(value+1)) + 1
	appendUint64(magnitude, length, buf)
}

// LeftPadInt64 is LeftPad over the 64-bit range.
func LeftPadInt64(value int64, length int, buf *bytes.Buffer) {
	if value >= 0 {
		LeftPadNonNegativeInt64(value, length, buf)
		return
	}
	buf.WriteByte('-')
	magnitude := uint64(-(value + 1)) + 1
	appendUint64(magnitude, length, buf)
}

// LeftPadNonNegative appends a value known to be non-negative, left-padded
// with zeros to the given length.
func LeftPadNonNegative(value int, length int, buf *bytes.Buffer) {
	LeftPadNonNegativeInt64(int64(value), length, buf)
}

// LeftPadNonNegativeInt64 is LeftPadNonNegative over the 64-bit range.
func LeftPadNonNegativeInt64(value int64, length int, buf *bytes.Buffer) {
	appendUint64(uint64(value), length, buf)
}

func appendUint64(value uint64, length int, buf *bytes.Buffer) {
	digits := strconv.FormatUint(value, 10)
	for i := len(digits); i < length; i++ {
		buf.WriteByte('0')
	}
	buf.WriteString(digits)
}

// AppendFraction appends exactly length digits of a fractional value to the
// buffer. The value is scaled as if it had scale digits in total: a
// nanosecond-of-second with scale 9 and length 3 appends milliseconds.
func AppendFraction(value int, length int, scale int, buf *bytes.Buffer) {
	relevantDigits := value
	for i := 0; i < scale-length; i++ {
		relevantDigits /= 10
	}
	LeftPadNonNegative(relevantDigits, length, buf)
}

// AppendFractionTruncate appends at most length digits of a fractional value,
// removing trailing zero digits. If every digit is removed, a preceding
// period already in the buffer is removed as well.
func AppendFractionTruncate(value int, length int, scale int, buf *bytes.Buffer) {
	AppendFraction(value, length, scale, buf)
	b := buf.Bytes()
	index := len(b) - 1
	for index >= 0 && b[index] == '0' {
		index--
	}
	if index >= 0 && b[index] == '.' {
		index--
	}
	buf.Truncate(index + 1)
}

// FormatInvariant appends the invariant decimal representation of value,
// including the minimum representable value.
func FormatInvariant(value int64, buf *bytes.Buffer) {
	buf.WriteString(strconv.FormatInt(value, 10))
}
