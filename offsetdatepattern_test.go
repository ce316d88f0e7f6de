package datetext

import (
	"testing"
)

func TestOffsetDatePatternGeneralISO(t *testing.T) {
	tests := []struct {
		name  string
		value OffsetDate
		want  string
	}{
		{"positive offset", NewOffsetDate(mustDate(t, 2023, 6, 7), mustOffset(t, 5*3600+30*60)), "2023-06-07+05:30"},
		{"negative offset", NewOffsetDate(mustDate(t, 2023, 6, 7), mustOffset(t, -8*3600)), "2023-06-07-08"},
		{"zero offset", NewOffsetDate(mustDate(t, 2023, 6, 7), ZeroOffset), "2023-06-07Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OffsetDatePatternGeneralISO.Format(tt.value)
			if got != tt.want {
				t.Fatalf("Format(%v) = %q, want %q", tt.value, got, tt.want)
			}
			parsed, err := OffsetDatePatternGeneralISO.Parse(got).Get()
			if err != nil {
				t.Fatalf("Parse(%q): %v", got, err)
			}
			if parsed != tt.value {
				t.Fatalf("Parse(%q) = %v, want %v", got, parsed, tt.value)
			}
		})
	}
}

func TestOffsetDatePatternCustomEmbeddedOffset(t *testing.T) {
	p, err := NewOffsetDatePatternInvariant("dd MMMM uuuu o<m>")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	value := NewOffsetDate(mustDate(t, 2023, 6, 7), mustOffset(t, 5*3600+30*60))
	text := p.Format(value)
	if text != "07 June 2023 +05:30" {
		t.Fatalf("Format = %q, want %q", text, "07 June 2023 +05:30")
	}
	got, err := p.Parse(text).Get()
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	if got != value {
		t.Fatalf("roundtrip = %v, want %v", got, value)
	}
}

func TestOffsetDatePatternParseFailures(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"missing offset", "2023-06-07"},
		{"invalid day", "2023-06-31Z"},
		{"trailing characters", "2023-06-07Z "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := OffsetDatePatternGeneralISO.Parse(tt.text); result.Success() {
				t.Fatalf("Parse(%q) succeeded, want failure", tt.text)
			}
		})
	}
}
