package datetext

import (
	"testing"
)

func mustOffset(t *testing.T, seconds int) Offset {
	t.Helper()
	o, err := NewOffset(seconds)
	if err != nil {
		t.Fatalf("NewOffset(%d): %v", seconds, err)
	}
	return o
}

func TestOffsetPatternFormat(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		value   Offset
		want    string
	}{
		{name: "long positive", pattern: "l", value: mustOffset(t, 5*3600+30*60+15), want: "+05:30:15"},
		{name: "long negative", pattern: "l", value: mustOffset(t, -(5*3600 + 30*60)), want: "-05:30:00"},
		{name: "medium", pattern: "m", value: mustOffset(t, 5*3600+30*60), want: "+05:30"},
		{name: "short", pattern: "s", value: mustOffset(t, 5*3600), want: "+05"},
		{name: "general picks short", pattern: "g", value: mustOffset(t, 5*3600), want: "+05"},
		{name: "general picks medium", pattern: "g", value: mustOffset(t, 5*3600+30*60), want: "+05:30"},
		{name: "general picks long", pattern: "g", value: mustOffset(t, 5*3600+30*60+15), want: "+05:30:15"},
		{name: "general zero", pattern: "g", value: ZeroOffset, want: "+00"},
		{name: "general with z zero", pattern: "G", value: ZeroOffset, want: "Z"},
		{name: "general with z nonzero", pattern: "G", value: mustOffset(t, 5*3600+30*60), want: "+05:30"},
		{name: "negative only sign omits plus", pattern: "-HH':'mm", value: mustOffset(t, 5*3600+30*60), want: "05:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewOffsetPatternInvariant(tt.pattern)
			if err != nil {
				t.Fatalf("compile %q: %v", tt.pattern, err)
			}
			if got := p.Format(tt.value); got != tt.want {
				t.Fatalf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOffsetPatternParse(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		want    Offset
	}{
		{name: "long", pattern: "l", text: "+05:30:15", want: mustOffset(t, 5*3600+30*60+15)},
		{name: "long negative", pattern: "l", text: "-05:30:00", want: mustOffset(t, -(5*3600 + 30*60))},
		{name: "general accepts short", pattern: "g", text: "+05", want: mustOffset(t, 5*3600)},
		{name: "general accepts medium", pattern: "g", text: "+05:30", want: mustOffset(t, 5*3600+30*60)},
		{name: "general accepts long", pattern: "g", text: "+05:30:15", want: mustOffset(t, 5*3600+30*60+15)},
		{name: "general with z accepts z", pattern: "G", text: "Z", want: ZeroOffset},
		{name: "general with z accepts numeric", pattern: "G", text: "+00", want: ZeroOffset},
		{name: "negative only sign", pattern: "-HH':'mm", text: "05:30", want: mustOffset(t, 5*3600+30*60)},
		{name: "negative only sign negative", pattern: "-HH':'mm", text: "-05:30", want: mustOffset(t, -(5*3600 + 30*60))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewOffsetPatternInvariant(tt.pattern)
			if err != nil {
				t.Fatalf("compile %q: %v", tt.pattern, err)
			}
			got, err := p.Parse(tt.text).Get()
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.text, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestOffsetPatternParseFailures(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
	}{
		{name: "missing required sign", pattern: "+HH':'mm", text: "05:30"},
		{name: "hours out of range", pattern: "+HH", text: "+19"},
		{name: "general rejects garbage", pattern: "g", text: "abc"},
		{name: "z pattern rejects lowercase", pattern: "G", text: "z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewOffsetPatternInvariant(tt.pattern)
			if err != nil {
				t.Fatalf("compile %q: %v", tt.pattern, err)
			}
			if result := p.Parse(tt.text); result.Success() {
				t.Fatalf("Parse(%q) succeeded with %v, want failure", tt.text, result.MustGet())
			}
		})
	}
}
