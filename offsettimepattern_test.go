package datetext

import (
	"testing"
)

func TestOffsetTimePatternGeneralISO(t *testing.T) {
	tests := []struct {
		name  string
		value OffsetTime
		want  string
	}{
		{"positive offset", NewOffsetTime(mustTime(t, 13, 2, 3), mustOffset(t, 5*3600+30*60)), "13:02:03+05:30"},
		{"whole hours", NewOffsetTime(mustTime(t, 13, 2, 3), mustOffset(t, -8*3600)), "13:02:03-08"},
		{"zero offset", NewOffsetTime(Midnight, ZeroOffset), "00:00:00Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OffsetTimePatternGeneralISO.Format(tt.value)
			if got != tt.want {
				t.Fatalf("Format(%v) = %q, want %q", tt.value, got, tt.want)
			}
			parsed, err := OffsetTimePatternGeneralISO.Parse(got).Get()
			if err != nil {
				t.Fatalf("Parse(%q): %v", got, err)
			}
			if parsed != tt.value {
				t.Fatalf("Parse(%q) = %v, want %v", got, parsed, tt.value)
			}
		})
	}
}

func TestOffsetTimePatternExtendedFraction(t *testing.T) {
	p, err := NewOffsetTimePatternInvariant("r")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	value := NewOffsetTime(mustTimeNanos(t, 13, 2, 3, 500000000), mustOffset(t, 3600))
	text := p.Format(value)
	if text != "13:02:03.5+01" {
		t.Fatalf("Format = %q, want %q", text, "13:02:03.5+01")
	}
	got, err := p.Parse(text).Get()
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	if got != value {
		t.Fatalf("roundtrip = %v, want %v", got, value)
	}

	whole := NewOffsetTime(mustTime(t, 13, 2, 3), ZeroOffset)
	if text := p.Format(whole); text != "13:02:03Z" {
		t.Fatalf("Format(%v) = %q, want %q", whole, text, "13:02:03Z")
	}
}

func TestOffsetTimePatternTemplateOffset(t *testing.T) {
	template := NewOffsetTime(Midnight, mustOffset(t, 2*3600))
	p, err := NewOffsetTimePattern("HH':'mm", CultureInvariant(), template)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	got, err := p.Parse("09:30").Get()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := NewOffsetTime(mustTime(t, 9, 30, 0), mustOffset(t, 2*3600))
	if got != want {
		t.Fatalf("Parse = %v, want %v", got, want)
	}
}
