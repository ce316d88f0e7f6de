package datetext

import (
	"testing"

	"github.com/nodatime/datetext/errors"
)

func TestOffsetDateTimePatternGeneralISO(t *testing.T) {
	value := NewOffsetDateTime(mustDateTime(t, 2020, 1, 1, 0, 0, 0), mustOffset(t, 5*3600+30*60))
	want := "2020-01-01T00:00:00+05:30"
	if got := OffsetDateTimePatternGeneralISO.Format(value); got != want {
		t.Fatalf("Format = %q, want %q", got, want)
	}
	got, err := OffsetDateTimePatternGeneralISO.Parse(want).Get()
	if err != nil {
		t.Fatalf("Parse(%q): %v", want, err)
	}
	if got != value {
		t.Fatalf("Parse(%q) = %v, want %v", want, got, value)
	}
}

func TestOffsetDateTimePatternExtendedISOFraction(t *testing.T) {
	local := mustDate(t, 2023, 6, 7).At(mustTimeNanos(t, 13, 2, 3, 500000000))
	value := local.WithOffset(ZeroOffset)
	want := "2023-06-07T13:02:03.5Z"
	if got := OffsetDateTimePatternExtendedISO.Format(value); got != want {
		t.Fatalf("Format = %q, want %q", got, want)
	}
	got, err := OffsetDateTimePatternExtendedISO.Parse(want).Get()
	if err != nil {
		t.Fatalf("Parse(%q): %v", want, err)
	}
	if got != value {
		t.Fatalf("Parse(%q) = %v, want %v", want, got, value)
	}

	whole := mustDateTime(t, 2023, 6, 7, 13, 2, 3).WithOffset(ZeroOffset)
	if got := OffsetDateTimePatternExtendedISO.Format(whole); got != "2023-06-07T13:02:03Z" {
		t.Fatalf("Format(%v) = %q, want %q", whole, got, "2023-06-07T13:02:03Z")
	}
}

func TestOffsetDateTimePatternEmbeddedLocal(t *testing.T) {
	p, err := NewOffsetDateTimePatternInvariant("l<dd MMMM uuuu HH':'mm> o<g>")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	value := NewOffsetDateTime(mustDateTime(t, 2023, 6, 7, 13, 2, 0), mustOffset(t, -5*3600))
	text := p.Format(value)
	if text != "07 June 2023 13:02 -05" {
		t.Fatalf("Format = %q, want %q", text, "07 June 2023 13:02 -05")
	}
	got, err := p.Parse(text).Get()
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	if got != value {
		t.Fatalf("roundtrip = %v, want %v", got, value)
	}
}

func TestOffsetDateTimePatternMixedFieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		code    errors.ErrorCode
	}{
		{"date field with embedded local", "uuuu l<HH':'mm>", errors.ErrDateFieldAndEmbeddedDate},
		{"time field with embedded local", "HH':'mm l<uuuu>", errors.ErrTimeFieldAndEmbeddedTime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewOffsetDateTimePatternInvariant(tt.pattern)
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

func TestOffsetDateTimePatternRoundtripStandard(t *testing.T) {
	p, err := NewOffsetDateTimePatternInvariant("r")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	value := NewOffsetDateTime(mustDateTime(t, 2023, 6, 7, 13, 2, 3), mustOffset(t, 3600))
	want := "2023-06-07T13:02:03+01 (ISO)"
	if got := p.Format(value); got != want {
		t.Fatalf("Format = %q, want %q", got, want)
	}
	got, err := p.Parse(want).Get()
	if err != nil {
		t.Fatalf("Parse(%q): %v", want, err)
	}
	if got != value {
		t.Fatalf("Parse(%q) = %v, want %v", want, got, value)
	}
}
