package datetext

import (
	"github.com/nodatime/datetext/errors"
	"github.com/nodatime/datetext/internal/cursor"
)

// ParseResult is the outcome of parsing text against a pattern: either a
// value, or a failure whose message is built only when the caller asks for
// it. Failures are data, never panics; MustGet is the only operation that
// converts a failure into a panic, and its message is exactly the lazily
// constructed one.
type ParseResult[T any] struct {
	value T
	// errorFactory is nil on success. Failure messages are deliberately not
	// built eagerly: validity probing parses in a hot path and usually
	// discards the message unread.
	errorFactory func() error
	// continueAfterErrorWithMultipleFormats lets a composite pattern try its
	// next component: true for "the value did not fit this component",
	// false for hard failures that no alternative can fix.
	continueAfterErrorWithMultipleFormats bool
}

// ParseSuccess wraps a successfully parsed value.
func ParseSuccess[T any](value T) ParseResult[T] {
	return ParseResult[T]{value: value}
}

// Success reports whether the parse succeeded.
func (r ParseResult[T]) Success() bool { return r.errorFactory == nil }

// Get returns the parsed value, or the materialized failure.
func (r ParseResult[T]) Get() (T, error) {
	if r.errorFactory != nil {
		var zero T
		return zero, r.errorFactory()
	}
	return r.value, nil
}

// MustGet returns the parsed value or panics with the materialized failure.
func (r ParseResult[T]) MustGet() T {
	if r.errorFactory != nil {
		panic(r.errorFactory())
	}
	return r.value
}

// Err materializes and returns the failure, or nil on success.
func (r ParseResult[T]) Err() error {
	if r.errorFactory == nil {
		return nil
	}
	return r.errorFactory()
}

func parseFailure[T any](continueAfterError bool, factory func() error) ParseResult[T] {
	return ParseResult[T]{
		errorFactory:                          factory,
		continueAfterErrorWithMultipleFormats: continueAfterError,
	}
}

// convertFailure rebinds a failure to another result type, preserving the
// deferred message and the continue flag. It panics on success results.
func convertFailure[T, U any](r ParseResult[U]) ParseResult[T] {
	if r.errorFactory == nil {
		panic("convertFailure called on a successful result")
	}
	return ParseResult[T]{
		errorFactory:                          r.errorFactory,
		continueAfterErrorWithMultipleFormats: r.continueAfterErrorWithMultipleFormats,
	}
}

// valueWithCaret renders the input with a ^ marker at the cursor position,
// used in failure messages to show how far parsing got.
func valueWithCaret(c *cursor.Value) string {
	runes := []rune(c.String())
	index := c.Index()
	if index < 0 {
		index = 0
	}
	if index > len(runes) {
		index = len(runes)
	}
	return string(runes[:index]) + "^" + string(runes[index:])
}

func forInvalidValue[T any](c *cursor.Value, format string, args ...any) ParseResult[T] {
	position := valueWithCaret(c)
	return parseFailure[T](true, func() error {
		detail := errors.NewValue(format, args...)
		return errors.NewValue("%s Value being parsed: '%s'. (^ indicates error position.)", detail.Message, position)
	})
}

func forInvalidValuePostParse[T any](text string, format string, args ...any) ParseResult[T] {
	return parseFailure[T](true, func() error {
		detail := errors.NewValue(format, args...)
		return errors.NewValue("%s Value being parsed: '%s'.", detail.Message, text)
	})
}

func resultValueStringEmpty[T any]() ParseResult[T] {
	return parseFailure[T](true, func() error {
		return errors.NewValue("the value string is empty")
	})
}

func resultFormatOnlyPattern[T any]() ParseResult[T] {
	return parseFailure[T](false, func() error {
		return errors.NewValue("this pattern is only capable of formatting, not parsing")
	})
}

func resultExtraValueCharacters[T any](c *cursor.Value, remainder string) ParseResult[T] {
	return forInvalidValue[T](c, "the value string does not match the whole pattern; unexpected trailing characters %q.", remainder)
}

func resultEndOfString[T any](c *cursor.Value) ParseResult[T] {
	return forInvalidValue[T](c, "the value string ends before the whole pattern has been matched.")
}

func resultMismatchedCharacter[T any](c *cursor.Value, patternCharacter rune) ParseResult[T] {
	return forInvalidValue[T](c, "the value string does not match a simple character in the pattern (%q).", patternCharacter)
}

func resultQuotedStringMismatch[T any](c *cursor.Value) ParseResult[T] {
	return forInvalidValue[T](c, "the value string does not match a quoted string in the pattern.")
}

func resultEscapedCharacterMismatch[T any](c *cursor.Value, patternCharacter rune) ParseResult[T] {
	return forInvalidValue[T](c, "the value string does not match an escaped character in the pattern (%q).", patternCharacter)
}

func resultTimeSeparatorMismatch[T any](c *cursor.Value) ParseResult[T] {
	return forInvalidValue[T](c, "the value string does not match the time separator in the pattern.")
}

func resultDateSeparatorMismatch[T any](c *cursor.Value) ParseResult[T] {
	return forInvalidValue[T](c, "the value string does not match the date separator in the pattern.")
}

func resultMismatchedNumber[T any](c *cursor.Value, pattern string) ParseResult[T] {
	return forInvalidValue[T](c, "the value string does not match the required number from the pattern %q.", pattern)
}

func resultMismatchedText[T any](c *cursor.Value, patternCharacter rune) ParseResult[T] {
	return forInvalidValue[T](c, "the value string does not match the text-based field %q.", patternCharacter)
}

func resultUnexpectedNegative[T any](c *cursor.Value) ParseResult[T] {
	return forInvalidValue[T](c, "the value string includes a negative value where only a non-negative one is allowed.")
}

func resultFieldValueOutOfRange[T any](c *cursor.Value, value int, patternCharacter rune) ParseResult[T] {
	return forInvalidValue[T](c, "the value %d is out of range for the field %q.", value, patternCharacter)
}

func resultFieldValueOutOfRangeInt64[T any](c *cursor.Value, value int64, patternCharacter rune) ParseResult[T] {
	return forInvalidValue[T](c, "the value %d is out of range for the field %q.", value, patternCharacter)
}

func resultFieldValueOutOfRangePostParse[T any](text string, value int, patternCharacter rune) ParseResult[T] {
	return forInvalidValuePostParse[T](text, "the value %d is out of range for the field %q.", value, patternCharacter)
}

func resultMissingSign[T any](c *cursor.Value) ParseResult[T] {
	return forInvalidValue[T](c, "the required sign is missing.")
}

func resultMissingAmPmDesignator[T any](c *cursor.Value) ParseResult[T] {
	return forInvalidValue[T](c, "the value string does not match the AM or PM designator.")
}

func resultInconsistentValues[T any](text string, field1, field2 rune) ParseResult[T] {
	return forInvalidValuePostParse[T](text, "the fields %q and %q have inconsistent values.", field1, field2)
}

func resultInconsistentMonthValues[T any](text string) ParseResult[T] {
	return forInvalidValuePostParse[T](text, "the month names and numbers are inconsistent.")
}

func resultInconsistentDayOfWeekTextValue[T any](text string) ParseResult[T] {
	return forInvalidValuePostParse[T](text, "the day of the week does not match the computed date.")
}

func resultDayOfMonthOutOfRange[T any](text string, day, month, year int) ParseResult[T] {
	return forInvalidValuePostParse[T](text, "the day %d is out of range in month %d of year %d.", day, month, year)
}

func resultOverallValueOutOfRange[T any](text string, typeName string) ParseResult[T] {
	return forInvalidValuePostParse[T](text, "the parsed value is out of the range of %s.", typeName)
}

func resultNoMatchingFormat[T any](text string) ParseResult[T] {
	return forInvalidValuePostParse[T](text, "none of the patterns in the composite matched the value.")
}

func resultNoMatchingZoneID[T any](c *cursor.Value) ParseResult[T] {
	return forInvalidValue[T](c, "the value string does not match any known time zone identifier.")
}

func resultNoMatchingCalendarSystem[T any](c *cursor.Value) ParseResult[T] {
	return forInvalidValue[T](c, "the value string does not match any known calendar system.")
}

func resultSkippedLocalTime[T any](text string) ParseResult[T] {
	return forInvalidValuePostParse[T](text, "the local date/time is skipped in the target time zone.")
}

func resultAmbiguousLocalTime[T any](text string) ParseResult[T] {
	return forInvalidValuePostParse[T](text, "the local date/time is ambiguous in the target time zone.")
}

func resultInvalidOffset[T any](text string) ParseResult[T] {
	return forInvalidValuePostParse[T](text, "the specified offset is invalid for the given local date/time in the target time zone.")
}
