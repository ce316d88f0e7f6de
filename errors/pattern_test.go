package errors

import (
	"fmt"
	"testing"
)

func TestPatternErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *PatternError
		want string
	}{
		{
			name: "message only",
			err:  &PatternError{Code: ErrEmptyPattern, Message: "the pattern text is empty"},
			want: "[pattern-empty] the pattern text is empty",
		},
		{
			name: "with pattern text",
			err:  &PatternError{Code: ErrRepeatedField, Message: "the field 'y' is repeated", Pattern: "yyyy yyyy"},
			want: `[pattern-repeated-field] the field 'y' is repeated in pattern "yyyy yyyy"`,
		},
		{
			name: "nil receiver",
			err:  nil,
			want: "pattern error <nil>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewPattern(t *testing.T) {
	err := NewPattern(ErrUnquotedLiteral, "x", "the character %q must be quoted", 'x')
	if err.Code != ErrUnquotedLiteral {
		t.Fatalf("Code = %q, want %q", err.Code, ErrUnquotedLiteral)
	}
	if err.Pattern != "x" {
		t.Fatalf("Pattern = %q, want %q", err.Pattern, "x")
	}
	if err.Message != `the character 'x' must be quoted` {
		t.Fatalf("Message = %q", err.Message)
	}
}

func TestAsPattern(t *testing.T) {
	inner := NewPattern(ErrMissingEndQuote, "'oops", "the quote is never closed")
	wrapped := fmt.Errorf("compile: %w", inner)

	got, ok := AsPattern(wrapped)
	if !ok {
		t.Fatal("AsPattern(wrapped) = false, want true")
	}
	if got.Code != ErrMissingEndQuote {
		t.Fatalf("Code = %q, want %q", got.Code, ErrMissingEndQuote)
	}

	if _, ok := AsPattern(fmt.Errorf("plain")); ok {
		t.Fatal("AsPattern(plain) = true, want false")
	}
	if _, ok := AsPattern(nil); ok {
		t.Fatal("AsPattern(nil) = true, want false")
	}
}

func TestValueErrorFormatting(t *testing.T) {
	err := NewValue("the value %d is out of range", 42)
	if got, want := err.Error(), "the value 42 is out of range"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	var nilErr *ValueError
	if got, want := nilErr.Error(), "value error <nil>"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}
