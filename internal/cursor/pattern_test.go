package cursor

import (
	"testing"

	"github.com/nodatime/datetext/errors"
)

func TestGetQuotedString(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{name: "simple", pattern: "'abc'", want: "abc"},
		{name: "empty", pattern: "''", want: ""},
		{name: "escaped quote", pattern: `'a\'b'`, want: "a'b"},
		{name: "escaped backslash", pattern: `'a\\b'`, want: `a\b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewPattern(tt.pattern)
			c.MoveNext()
			got, err := c.GetQuotedString('\'')
			if err != nil {
				t.Fatalf("GetQuotedString() error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("GetQuotedString() = %q, want %q", got, tt.want)
			}
			// The cursor rests on the closing quote so the caller's scan
			// loop advances past it.
			if c.Current() != '\'' {
				t.Fatalf("Current() = %q, want closing quote", c.Current())
			}
		})
	}
}

func TestGetQuotedStringErrors(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		wantCode errors.ErrorCode
	}{
		{name: "missing end quote", pattern: "'abc", wantCode: errors.ErrMissingEndQuote},
		{name: "trailing escape", pattern: `'abc\`, wantCode: errors.ErrEscapeAtEndOfString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewPattern(tt.pattern)
			c.MoveNext()
			_, err := c.GetQuotedString('\'')
			perr, ok := errors.AsPattern(err)
			if !ok {
				t.Fatalf("error %v is not a PatternError", err)
			}
			if perr.Code != tt.wantCode {
				t.Fatalf("Code = %q, want %q", perr.Code, tt.wantCode)
			}
		})
	}
}

func TestGetRepeatCount(t *testing.T) {
	c := NewPattern("yyyy-MM")
	c.MoveNext()
	count, err := c.GetRepeatCount(4)
	if err != nil {
		t.Fatalf("GetRepeatCount() error: %v", err)
	}
	if count != 4 {
		t.Fatalf("GetRepeatCount() = %d, want 4", count)
	}
	// The cursor rests on the last repetition.
	if got := c.Index(); got != 3 {
		t.Fatalf("Index() = %d, want 3", got)
	}
}

func TestGetRepeatCountSingle(t *testing.T) {
	c := NewPattern("M")
	c.MoveNext()
	count, err := c.GetRepeatCount(4)
	if err != nil {
		t.Fatalf("GetRepeatCount() error: %v", err)
	}
	if count != 1 {
		t.Fatalf("GetRepeatCount() = %d, want 1", count)
	}
}

func TestGetRepeatCountExceeded(t *testing.T) {
	c := NewPattern("yyyyy")
	c.MoveNext()
	_, err := c.GetRepeatCount(4)
	perr, ok := errors.AsPattern(err)
	if !ok {
		t.Fatalf("error %v is not a PatternError", err)
	}
	if perr.Code != errors.ErrRepeatCountExceeded {
		t.Fatalf("Code = %q, want %q", perr.Code, errors.ErrRepeatCountExceeded)
	}
}

func TestGetEmbeddedPattern(t *testing.T) {
	c := NewPattern("o<HH:mm>x")
	c.MoveNext()
	got, err := c.GetEmbeddedPattern()
	if err != nil {
		t.Fatalf("GetEmbeddedPattern() error: %v", err)
	}
	if got != "HH:mm" {
		t.Fatalf("GetEmbeddedPattern() = %q, want %q", got, "HH:mm")
	}
	// The cursor rests on '>'; the caller's MoveNext lands on 'x'.
	if c.Current() != EmbeddedPatternEnd {
		t.Fatalf("Current() = %q, want '>'", c.Current())
	}
	c.MoveNext()
	if c.Current() != 'x' {
		t.Fatalf("after MoveNext: Current() = %q, want 'x'", c.Current())
	}
}

func TestGetEmbeddedPatternNested(t *testing.T) {
	c := NewPattern("l<HH:mm o<+HH>>")
	c.MoveNext()
	got, err := c.GetEmbeddedPattern()
	if err != nil {
		t.Fatalf("GetEmbeddedPattern() error: %v", err)
	}
	if got != "HH:mm o<+HH>" {
		t.Fatalf("GetEmbeddedPattern() = %q, want %q", got, "HH:mm o<+HH>")
	}
}

func TestGetEmbeddedPatternErrors(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		wantCode errors.ErrorCode
	}{
		{name: "missing start", pattern: "oHH>", wantCode: errors.ErrMissingEmbeddedPatternStart},
		{name: "missing end", pattern: "o<HH", wantCode: errors.ErrMissingEmbeddedPatternEnd},
		{name: "nested too deep", pattern: "o<a<b<c>>>", wantCode: errors.ErrEmbeddedPatternNestingTooDeep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewPattern(tt.pattern)
			c.MoveNext()
			_, err := c.GetEmbeddedPattern()
			perr, ok := errors.AsPattern(err)
			if !ok {
				t.Fatalf("error %v is not a PatternError", err)
			}
			if perr.Code != tt.wantCode {
				t.Fatalf("Code = %q, want %q", perr.Code, tt.wantCode)
			}
		})
	}
}
