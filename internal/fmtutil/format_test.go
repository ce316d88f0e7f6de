package fmtutil

import (
	"bytes"
	"math"
	"testing"
)

func TestLeftPad(t *testing.T) {
	tests := []struct {
		name   string
		value  int
		length int
		want   string
	}{
		{name: "pads short value", value: 5, length: 2, want: "05"},
		{name: "no padding needed", value: 123, length: 2, want: "123"},
		{name: "zero", value: 0, length: 4, want: "0000"},
		{name: "negative keeps width", value: -5, length: 2, want: "-05"},
		{name: "minimum int32", value: math.MinInt32, length: 2, want: "-2147483648"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			LeftPad(tt.value, tt.length, &buf)
			if got := buf.String(); got != tt.want {
				t.Fatalf("LeftPad(%d, %d) = %q, want %q", tt.value, tt.length, got, tt.want)
			}
		})
	}
}

func TestLeftPadInt64(t *testing.T) {
	var buf bytes.Buffer
	LeftPadInt64(math.MinInt64, 4, &buf)
	if got, want := buf.String(), "-9223372036854775808"; got != want {
		t.Fatalf("LeftPadInt64 = %q, want %q", got, want)
	}
}

func TestAppendFraction(t *testing.T) {
	tests := []struct {
		name   string
		value  int
		length int
		scale  int
		want   string
	}{
		{name: "full scale", value: 123456789, length: 9, scale: 9, want: "123456789"},
		{name: "milliseconds from nanoseconds", value: 123456789, length: 3, scale: 9, want: "123"},
		{name: "pads small value", value: 5, length: 3, scale: 3, want: "005"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			AppendFraction(tt.value, tt.length, tt.scale, &buf)
			if got := buf.String(); got != tt.want {
				t.Fatalf("AppendFraction(%d, %d, %d) = %q, want %q", tt.value, tt.length, tt.scale, got, tt.want)
			}
		})
	}
}

func TestAppendFractionTruncate(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		value   int
		length  int
		scale   int
		want    string
	}{
		{name: "trims trailing zeros", initial: "12.", value: 500000000, length: 9, scale: 9, want: "12.5"},
		{name: "keeps significant digits", initial: "12.", value: 123000000, length: 9, scale: 9, want: "12.123"},
		{name: "removes period when zero", initial: "12.", value: 0, length: 9, scale: 9, want: "12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			buf.WriteString(tt.initial)
			AppendFractionTruncate(tt.value, tt.length, tt.scale, &buf)
			if got := buf.String(); got != tt.want {
				t.Fatalf("AppendFractionTruncate(%d) on %q = %q, want %q", tt.value, tt.initial, got, tt.want)
			}
		})
	}
}

func TestFormatInvariant(t *testing.T) {
	var buf bytes.Buffer
	FormatInvariant(-42, &buf)
	FormatInvariant(math.MinInt64, &buf)
	if got, want := buf.String(), "-42-9223372036854775808"; got != want {
		t.Fatalf("FormatInvariant output = %q, want %q", got, want)
	}
}
