// Package errors defines the errors reported when compiling pattern text.
//
// Invalid pattern text is a programmer error rather than routine input
// variance, so it is reported as a hard construction-time error with a
// stable code. Failures while parsing a value against a valid pattern are
// reported as data through ParseResult instead and never reach this package.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a class of pattern compilation failure.
type ErrorCode string

const (
	// ErrEmptyPattern indicates empty pattern text was supplied.
	ErrEmptyPattern ErrorCode = "pattern-empty"
	// ErrUnknownStandardFormat indicates a single-letter standard pattern is not defined for the type.
	ErrUnknownStandardFormat ErrorCode = "pattern-unknown-standard-format"
	// ErrUnquotedLiteral indicates a character that must be quoted or escaped appeared bare.
	ErrUnquotedLiteral ErrorCode = "pattern-unquoted-literal"
	// ErrEscapeAtEndOfString indicates a trailing backslash with nothing to escape.
	ErrEscapeAtEndOfString ErrorCode = "pattern-escape-at-end"
	// ErrMissingEndQuote indicates a quoted literal was never closed.
	ErrMissingEndQuote ErrorCode = "pattern-missing-end-quote"
	// ErrPercentDoubled indicates two consecutive percent characters.
	ErrPercentDoubled ErrorCode = "pattern-percent-doubled"
	// ErrPercentAtEndOfString indicates a percent character with nothing following it.
	ErrPercentAtEndOfString ErrorCode = "pattern-percent-at-end"
	// ErrRepeatCountExceeded indicates a field specifier was repeated more times than it allows.
	ErrRepeatCountExceeded ErrorCode = "pattern-repeat-count-exceeded"
	// ErrRepeatedField indicates the same logical field was specified twice.
	ErrRepeatedField ErrorCode = "pattern-repeated-field"
	// ErrMultipleCapitalDurationFields indicates more than one total-unit field in a duration pattern.
	ErrMultipleCapitalDurationFields ErrorCode = "pattern-multiple-capital-duration-fields"
	// ErrEraWithoutYearOfEra indicates an era specifier without a year-of-era specifier.
	ErrEraWithoutYearOfEra ErrorCode = "pattern-era-without-year-of-era"
	// ErrDateFieldAndEmbeddedDate indicates individual date fields mixed with an embedded date pattern.
	ErrDateFieldAndEmbeddedDate ErrorCode = "pattern-date-field-and-embedded-date"
	// ErrTimeFieldAndEmbeddedTime indicates individual time fields mixed with an embedded time pattern.
	ErrTimeFieldAndEmbeddedTime ErrorCode = "pattern-time-field-and-embedded-time"
	// ErrMissingEmbeddedPatternStart indicates a missing embedded pattern open delimiter.
	ErrMissingEmbeddedPatternStart ErrorCode = "pattern-missing-embedded-start"
	// ErrMissingEmbeddedPatternEnd indicates a missing embedded pattern close delimiter.
	ErrMissingEmbeddedPatternEnd ErrorCode = "pattern-missing-embedded-end"
	// ErrEmbeddedPatternNestingTooDeep indicates embedded patterns nested more than one level deep.
	ErrEmbeddedPatternNestingTooDeep ErrorCode = "pattern-embedded-nesting-too-deep"
	// ErrEmptyCompositePattern indicates a composite pattern was built with no components.
	ErrEmptyCompositePattern ErrorCode = "pattern-empty-composite"
)

// PatternError describes why pattern text could not be compiled.
type PatternError struct {
	Code    ErrorCode
	Message string
	Pattern string
}

// Error formats the pattern error for display.
func (e *PatternError) Error() string {
	if e == nil {
		return "pattern error <nil>"
	}
	if e.Pattern == "" {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s in pattern %q", e.Code, e.Message, e.Pattern)
}

// NewPattern builds a PatternError with a code and formatted message.
func NewPattern(code ErrorCode, pattern, format string, args ...any) *PatternError {
	return &PatternError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Pattern: pattern,
	}
}

// ValueError describes why input text could not be parsed against a valid
// pattern. It is only ever constructed lazily, when a caller materializes the
// failure of a ParseResult.
type ValueError struct {
	Message string
}

// Error returns the failure message.
func (e *ValueError) Error() string {
	if e == nil {
		return "value error <nil>"
	}
	return e.Message
}

// NewValue builds a ValueError with a formatted message.
func NewValue(format string, args ...any) *ValueError {
	return &ValueError{Message: fmt.Sprintf(format, args...)}
}

// AsPattern extracts a PatternError from an error chain.
func AsPattern(err error) (*PatternError, bool) {
	if err == nil {
		return nil, false
	}
	var perr *PatternError
	if errors.As(err, &perr) && perr != nil {
		return perr, true
	}
	return nil, false
}
