package datetext

import (
	"math"
	"testing"

	"github.com/nodatime/datetext/errors"
)

func TestDurationPatternRoundtrip(t *testing.T) {
	tests := []struct {
		name  string
		nanos int64
		want  string
	}{
		{"zero", 0, "0:00:00:00"},
		{"time of day components", 26*nanosPerHour + 3*nanosPerMinute + 4*nanosPerSecond + 500000000, "1:02:03:04.5"},
		{"negative", -(26*nanosPerHour + 3*nanosPerMinute + 4*nanosPerSecond + 500000000), "-1:02:03:04.5"},
		{"whole seconds", 90 * nanosPerMinute, "0:01:30:00"},
		{"full fraction", 123456789, "0:00:00:00.123456789"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value := DurationFromNanoseconds(tt.nanos)
			got := DurationPatternRoundtrip.Format(value)
			if got != tt.want {
				t.Fatalf("Format(%v) = %q, want %q", value, got, tt.want)
			}
			parsed, err := DurationPatternRoundtrip.Parse(got).Get()
			if err != nil {
				t.Fatalf("Parse(%q): %v", got, err)
			}
			if parsed != value {
				t.Fatalf("Parse(%q) = %v, want %v", got, parsed, value)
			}
		})
	}
}

func TestDurationPatternMinValueRoundtrip(t *testing.T) {
	value := DurationFromNanoseconds(math.MinInt64)
	text := DurationPatternRoundtrip.Format(value)
	if text != "-106751:23:47:16.854775808" {
		t.Fatalf("Format = %q, want %q", text, "-106751:23:47:16.854775808")
	}
	got, err := DurationPatternRoundtrip.Parse(text).Get()
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	if got != value {
		t.Fatalf("Parse(%q) = %v, want %v", text, got, value)
	}
}

func TestDurationPatternTotalUnits(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		nanos   int64
		want    string
	}{
		{"total hours", "HH':'mm", 26*nanosPerHour + 30*nanosPerMinute, "26:30"},
		{"total minutes", "M':'ss", 90*nanosPerMinute + 15*nanosPerSecond, "90:15"},
		{"total seconds with fraction", "S;fff", 4*nanosPerSecond + 120000000, "4.120"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewDurationPatternInvariant(tt.pattern)
			if err != nil {
				t.Fatalf("compile: %v", err)
			}
			value := DurationFromNanoseconds(tt.nanos)
			got := p.Format(value)
			if got != tt.want {
				t.Fatalf("Format(%v) = %q, want %q", value, got, tt.want)
			}
			parsed, err := p.Parse(got).Get()
			if err != nil {
				t.Fatalf("Parse(%q): %v", got, err)
			}
			if parsed != value {
				t.Fatalf("Parse(%q) = %v, want %v", got, parsed, value)
			}
		})
	}
}

func TestDurationPatternRequiredSign(t *testing.T) {
	p, err := NewDurationPatternInvariant("+H':'mm")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	positive := DurationFromNanoseconds(nanosPerHour + 30*nanosPerMinute)
	if got := p.Format(positive); got != "+1:30" {
		t.Fatalf("Format(%v) = %q, want %q", positive, got, "+1:30")
	}
	negative := DurationFromNanoseconds(-(nanosPerHour + 30*nanosPerMinute))
	if got := p.Format(negative); got != "-1:30" {
		t.Fatalf("Format(%v) = %q, want %q", negative, got, "-1:30")
	}
	got, err := p.Parse("-1:30").Get()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got != negative {
		t.Fatalf("Parse = %v, want %v", got, negative)
	}
	if result := p.Parse("1:30"); result.Success() {
		t.Fatal("Parse without a sign succeeded, want failure")
	}
}

func TestDurationPatternCompileErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		code    errors.ErrorCode
	}{
		{"two total units", "HH' 'SS", errors.ErrMultipleCapitalDurationFields},
		{"repeated component", "mm':'mm", errors.ErrRepeatedField},
		{"unknown standard", "x", errors.ErrUnknownStandardFormat},
		{"empty", "", errors.ErrEmptyPattern},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDurationPatternInvariant(tt.pattern)
			perr, ok := errors.AsPattern(err)
			if !ok {
				t.Fatalf("error %v is not a PatternError", err)
			}
			if perr.Code != tt.code {
				t.Fatalf("Code = %q, want %q", perr.Code, tt.code)
			}
		})
	}
}

func TestDurationPatternComponentRange(t *testing.T) {
	p, err := NewDurationPatternInvariant("-hh':'mm")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if result := p.Parse("24:00"); result.Success() {
		t.Fatal("Parse(\"24:00\") succeeded, want hour component out of range")
	}
}
