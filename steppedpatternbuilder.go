package datetext

import (
	"bytes"
	"strings"

	"github.com/nodatime/datetext/errors"
	"github.com/nodatime/datetext/internal/cursor"
	"github.com/nodatime/datetext/internal/fmtutil"
)

// Pattern is an immutable, compiled parser/formatter pair for one value
// type. Compiled patterns are safe for concurrent reuse across any number of
// goroutines and parse/format calls.
type Pattern[T any] interface {
	// Parse parses the whole of the given text.
	Parse(text string) ParseResult[T]
	// Format returns the value formatted according to the pattern.
	Format(value T) string
	// AppendFormat appends the formatted value to the buffer. The buffer is
	// mutable on purpose: fraction truncation can remove characters that
	// earlier format steps appended.
	AppendFormat(value T, buf *bytes.Buffer)
}

// partialPattern is a pattern that can additionally parse from the middle of
// a larger text, used to embed one compiled pattern inside another.
type partialPattern[T any] interface {
	Pattern[T]
	parsePartial(c *cursor.Value) ParseResult[T]
}

// parseAction consumes input for one step. A nil result means the step
// succeeded and parsing continues.
type parseAction[TResult any, TBucket any] func(c *cursor.Value, bucket TBucket) *ParseResult[TResult]

// formatAction appends one step's output for a value.
type formatAction[TResult any] func(value TResult, buf *bytes.Buffer)

// parseBucket accumulates partially-parsed field values during one parse
// attempt and computes the final value once every step has run. Buckets are
// created fresh per Parse call and never shared.
type parseBucket[TResult any] interface {
	calculateValue(usedFields patternFields, text string) ParseResult[TResult]
}

// patternCharacterHandler registers the parse and format steps for one
// pattern character at the cursor's current position.
type patternCharacterHandler[TResult any, TBucket parseBucket[TResult]] func(
	pc *cursor.Pattern, b *steppedPatternBuilder[TResult, TBucket]) error

// formatActionEntry is either a concrete format action or a deferred intent
// whose behavior depends on the final set of used fields (e.g. genitive
// month name selection). Deferred entries are resolved exactly once, at
// Build time.
type formatActionEntry[TResult any] struct {
	concrete formatAction[TResult]
	deferred func(finalFields patternFields) formatAction[TResult]
}

// steppedPatternBuilder compiles pattern text into an ordered list of parse
// steps and format steps. It is compile-time-only mutable state: not safe
// for concurrent use, and discarded once Build produces the immutable
// compiled pattern.
type steppedPatternBuilder[TResult any, TBucket parseBucket[TResult]] struct {
	culture        *Culture
	patternText    string
	bucketProvider func() TBucket
	usedFields     patternFields
	parseActions   []parseAction[TResult, TBucket]
	formatEntries  []formatActionEntry[TResult]
	formatOnly     bool
}

func newSteppedPatternBuilder[TResult any, TBucket parseBucket[TResult]](
	culture *Culture, patternText string, bucketProvider func() TBucket,
) *steppedPatternBuilder[TResult, TBucket] {
	return &steppedPatternBuilder[TResult, TBucket]{
		culture:        culture,
		patternText:    patternText,
		bucketProvider: bucketProvider,
	}
}

// parseCustomPattern drives the scan loop over the whole pattern text,
// dispatching each character to its handler. Characters without a handler
// are passthrough literals, except for ASCII letters and the embedded
// pattern delimiters, which must be quoted to make literal intent explicit.
func (b *steppedPatternBuilder[TResult, TBucket]) parseCustomPattern(
	handlers map[rune]patternCharacterHandler[TResult, TBucket],
) error {
	pc := cursor.NewPattern(b.patternText)
	for pc.MoveNext() {
		handler, ok := handlers[pc.Current()]
		if !ok {
			current := pc.Current()
			if (current >= 'A' && current <= 'Z') || (current >= 'a' && current <= 'z') ||
				current == cursor.EmbeddedPatternStart || current == cursor.EmbeddedPatternEnd {
				return errors.NewPattern(errors.ErrUnquotedLiteral, b.patternText,
					"the character %q is not a format specifier for this pattern type and must be quoted", current)
			}
			b.addLiteralRune(current)
			continue
		}
		if err := handler(pc, b); err != nil {
			return err
		}
	}
	return nil
}

// addField marks a field as used, failing on duplicates with the offending
// pattern character. Conflicts that can only be detected once input has
// been read (numeric vs. text month) are deliberately not registered here.
func (b *steppedPatternBuilder[TResult, TBucket]) addField(field patternFields, characterInPattern rune) error {
	if b.usedFields.any(field) {
		return errors.NewPattern(errors.ErrRepeatedField, b.patternText,
			"the field specified by %q is specified multiple times", characterInPattern)
	}
	b.usedFields |= field
	return nil
}

// validateUsedFields performs the cross-field checks that only make sense
// once the whole pattern has been scanned.
func (b *steppedPatternBuilder[TResult, TBucket]) validateUsedFields() error {
	if b.usedFields&(fieldEra|fieldYearOfEra) == fieldEra {
		return errors.NewPattern(errors.ErrEraWithoutYearOfEra, b.patternText,
			"the era specifier cannot be used without a year-of-era specifier")
	}
	if b.usedFields.has(fieldEmbeddedDate) && b.usedFields.any(fieldAllDateFields&^fieldEmbeddedDate) {
		return errors.NewPattern(errors.ErrDateFieldAndEmbeddedDate, b.patternText,
			"individual date field specifiers cannot be mixed with an embedded date pattern")
	}
	if b.usedFields.has(fieldEmbeddedTime) && b.usedFields.any(fieldAllTimeFields&^fieldEmbeddedTime) {
		return errors.NewPattern(errors.ErrTimeFieldAndEmbeddedTime, b.patternText,
			"individual time field specifiers cannot be mixed with an embedded time pattern")
	}
	return nil
}

// setFormatOnly marks the resulting pattern as unable to parse.
func (b *steppedPatternBuilder[TResult, TBucket]) setFormatOnly() {
	b.formatOnly = true
}

func (b *steppedPatternBuilder[TResult, TBucket]) addParseAction(action parseAction[TResult, TBucket]) {
	b.parseActions = append(b.parseActions, action)
}

func (b *steppedPatternBuilder[TResult, TBucket]) addFormatAction(action formatAction[TResult]) {
	b.formatEntries = append(b.formatEntries, formatActionEntry[TResult]{concrete: action})
}

// addDeferredFormatAction records a format intent resolved against the final
// used-field set at Build time.
func (b *steppedPatternBuilder[TResult, TBucket]) addDeferredFormatAction(
	deferred func(finalFields patternFields) formatAction[TResult],
) {
	b.formatEntries = append(b.formatEntries, formatActionEntry[TResult]{deferred: deferred})
}

// addLiteralRune registers a single passthrough literal character.
func (b *steppedPatternBuilder[TResult, TBucket]) addLiteralRune(expected rune) {
	b.addParseAction(func(c *cursor.Value, bucket TBucket) *ParseResult[TResult] {
		if c.Match(expected) {
			return nil
		}
		fail := resultMismatchedCharacter[TResult](c, expected)
		return &fail
	})
	b.addFormatAction(func(value TResult, buf *bytes.Buffer) {
		buf.WriteRune(expected)
	})
}

// addEscapedLiteralRune registers a backslash-escaped literal character,
// which fails with the escape-specific message.
func (b *steppedPatternBuilder[TResult, TBucket]) addEscapedLiteralRune(expected rune) {
	b.addParseAction(func(c *cursor.Value, bucket TBucket) *ParseResult[TResult] {
		if c.Match(expected) {
			return nil
		}
		fail := resultEscapedCharacterMismatch[TResult](c, expected)
		return &fail
	})
	b.addFormatAction(func(value TResult, buf *bytes.Buffer) {
		buf.WriteRune(expected)
	})
}

// addLiteralText registers a multi-character literal, such as the contents
// of a quoted string, matched case-sensitively.
func (b *steppedPatternBuilder[TResult, TBucket]) addLiteralText(
	expected string, mismatch func(c *cursor.Value) ParseResult[TResult],
) {
	if expected == "" {
		return
	}
	b.addParseAction(func(c *cursor.Value, bucket TBucket) *ParseResult[TResult] {
		if c.MatchString(expected) {
			return nil
		}
		fail := mismatch(c)
		return &fail
	})
	b.addFormatAction(func(value TResult, buf *bytes.Buffer) {
		buf.WriteString(expected)
	})
}

// addParseValueAction registers a step reading minimumDigits to maximumDigits
// decimal digits, with an optional leading sign when minimumValue permits
// negative values, range-checked against [minimumValue, maximumValue].
func (b *steppedPatternBuilder[TResult, TBucket]) addParseValueAction(
	minimumDigits, maximumDigits int, patternChar rune,
	minimumValue, maximumValue int,
	valueSetter func(bucket TBucket, value int),
) {
	b.addParseAction(func(c *cursor.Value, bucket TBucket) *ParseResult[TResult] {
		startingIndex := c.Index()
		negative := c.Match('-')
		if negative && minimumValue >= 0 {
			c.Move(startingIndex)
			fail := resultUnexpectedNegative[TResult](c)
			return &fail
		}
		value, ok := c.ParseDigits(minimumDigits, maximumDigits)
		if !ok {
			c.Move(startingIndex)
			fail := resultMismatchedNumber[TResult](c, strings.Repeat(string(patternChar), minimumDigits))
			return &fail
		}
		if negative {
			value = -value
		}
		if value < minimumValue || value > maximumValue {
			c.Move(startingIndex)
			fail := resultFieldValueOutOfRange[TResult](c, value, patternChar)
			return &fail
		}
		valueSetter(bucket, value)
		return nil
	})
}

// addParseInt64ValueAction is addParseValueAction over the 64-bit range,
// used by the duration total-unit fields.
func (b *steppedPatternBuilder[TResult, TBucket]) addParseInt64ValueAction(
	minimumDigits, maximumDigits int, patternChar rune,
	minimumValue, maximumValue int64,
	valueSetter func(bucket TBucket, value int64),
) {
	b.addParseAction(func(c *cursor.Value, bucket TBucket) *ParseResult[TResult] {
		startingIndex := c.Index()
		negative := c.Match('-')
		if negative && minimumValue >= 0 {
			c.Move(startingIndex)
			fail := resultUnexpectedNegative[TResult](c)
			return &fail
		}
		value, ok := c.ParseInt64Digits(minimumDigits, maximumDigits)
		if !ok {
			c.Move(startingIndex)
			fail := resultMismatchedNumber[TResult](c, strings.Repeat(string(patternChar), minimumDigits))
			return &fail
		}
		if negative {
			value = -value
		}
		if value < minimumValue || value > maximumValue {
			c.Move(startingIndex)
			fail := resultFieldValueOutOfRangeInt64[TResult](c, value, patternChar)
			return &fail
		}
		valueSetter(bucket, value)
		return nil
	})
}

// addFormatLeftPad registers a zero-padded numeric format step. When
// assumeNonNegative is set the sign handling is skipped entirely; when
// assumeFitsInCount is set the value is known to have at most count digits.
// Both flags are about skipping work, not changing output.
func (b *steppedPatternBuilder[TResult, TBucket]) addFormatLeftPad(
	count int, selector func(value TResult) int,
	assumeNonNegative, assumeFitsInCount bool,
) {
	switch {
	case count == 2 && assumeNonNegative && assumeFitsInCount:
		b.addFormatAction(func(value TResult, buf *bytes.Buffer) {
			v := selector(value)
			buf.WriteByte(byte('0' + v/10))
			buf.WriteByte(byte('0' + v%10))
		})
	case assumeNonNegative:
		b.addFormatAction(func(value TResult, buf *bytes.Buffer) {
			fmtutil.LeftPadNonNegative(selector(value), count, buf)
		})
	default:
		b.addFormatAction(func(value TResult, buf *bytes.Buffer) {
			fmtutil.LeftPad(selector(value), count, buf)
		})
	}
}

// addRequiredSign registers sign steps for patterns that always show a sign.
func (b *steppedPatternBuilder[TResult, TBucket]) addRequiredSign(
	signSetter func(bucket TBucket, negative bool),
	nonNegative func(value TResult) bool,
) {
	b.addParseAction(func(c *cursor.Value, bucket TBucket) *ParseResult[TResult] {
		switch {
		case c.Match('-'):
			signSetter(bucket, true)
			return nil
		case c.Match('+'):
			signSetter(bucket, false)
			return nil
		default:
			fail := resultMissingSign[TResult](c)
			return &fail
		}
	})
	b.addFormatAction(func(value TResult, buf *bytes.Buffer) {
		if nonNegative(value) {
			buf.WriteByte('+')
		} else {
			buf.WriteByte('-')
		}
	})
}

// addNegativeOnlySign registers sign steps for patterns that show a sign
// only for negative values; a positive sign in the input is an error.
func (b *steppedPatternBuilder[TResult, TBucket]) addNegativeOnlySign(
	signSetter func(bucket TBucket, negative bool),
	nonNegative func(value TResult) bool,
) {
	b.addParseAction(func(c *cursor.Value, bucket TBucket) *ParseResult[TResult] {
		switch {
		case c.Match('-'):
			signSetter(bucket, true)
			return nil
		case c.Match('+'):
			fail := resultUnexpectedNegative[TResult](c)
			return &fail
		default:
			signSetter(bucket, false)
			return nil
		}
	})
	b.addFormatAction(func(value TResult, buf *bytes.Buffer) {
		if !nonNegative(value) {
			buf.WriteByte('-')
		}
	})
}

// addParseTextAction registers a case-insensitive longest-match step against
// one or more ordered candidate lists. Lists earlier in the argument order
// win ties; putting genitive forms before plain ones makes a genitive name
// that extends a plain name match in full.
func (b *steppedPatternBuilder[TResult, TBucket]) addParseTextAction(
	patternChar rune,
	valueSetter func(bucket TBucket, index int),
	candidateLists ...[]string,
) {
	culture := b.culture
	b.addParseAction(func(c *cursor.Value, bucket TBucket) *ParseResult[TResult] {
		bestIndex := -1
		bestLength := 0
		for _, candidates := range candidateLists {
			for index, candidate := range candidates {
				if candidate == "" || len([]rune(candidate)) <= bestLength {
					continue
				}
				if c.MatchCaseInsensitive(candidate, culture.FoldCase, false) {
					bestIndex = index
					bestLength = len([]rune(candidate))
				}
			}
		}
		if bestIndex < 0 {
			fail := resultMismatchedText[TResult](c, patternChar)
			return &fail
		}
		c.Move(c.Index() + bestLength)
		valueSetter(bucket, bestIndex)
		return nil
	})
}

// addEmbeddedPattern wires a fully-compiled sub-pattern into the parent's
// step lists: parsing hands the cursor to the sub-pattern's partial-parse
// entry point and resumes where it stopped; formatting delegates to the
// sub-pattern's append entry point. This is a free function because the
// embedded value type is an extra type parameter.
func addEmbeddedPattern[TEmbedded any, TResult any, TBucket parseBucket[TResult]](
	b *steppedPatternBuilder[TResult, TBucket],
	embedded partialPattern[TEmbedded],
	parseAssign func(bucket TBucket, value TEmbedded),
	formatSelect func(value TResult) TEmbedded,
) {
	b.addParseAction(func(c *cursor.Value, bucket TBucket) *ParseResult[TResult] {
		result := embedded.parsePartial(c)
		if !result.Success() {
			fail := convertFailure[TResult](result)
			return &fail
		}
		parseAssign(bucket, result.value)
		return nil
	})
	b.addFormatAction(func(value TResult, buf *bytes.Buffer) {
		embedded.AppendFormat(formatSelect(value), buf)
	})
}

// build freezes the builder into an immutable compiled pattern, resolving
// deferred format intents against the final used-field set. The builder must
// not be used afterwards.
func (b *steppedPatternBuilder[TResult, TBucket]) build() *steppedPattern[TResult, TBucket] {
	parseActions := make([]parseAction[TResult, TBucket], len(b.parseActions))
	copy(parseActions, b.parseActions)
	formatActions := make([]formatAction[TResult], 0, len(b.formatEntries))
	for _, entry := range b.formatEntries {
		if entry.deferred != nil {
			formatActions = append(formatActions, entry.deferred(b.usedFields))
			continue
		}
		formatActions = append(formatActions, entry.concrete)
	}
	return &steppedPattern[TResult, TBucket]{
		parseActions:   parseActions,
		formatActions:  formatActions,
		bucketProvider: b.bucketProvider,
		usedFields:     b.usedFields,
		formatOnly:     b.formatOnly,
	}
}

// steppedPattern is the immutable executable produced by the builder. No
// field is mutated after construction, which is what makes compiled patterns
// freely shareable between goroutines.
type steppedPattern[TResult any, TBucket parseBucket[TResult]] struct {
	parseActions   []parseAction[TResult, TBucket]
	formatActions  []formatAction[TResult]
	bucketProvider func() TBucket
	usedFields     patternFields
	formatOnly     bool
}

// Parse parses the whole of the given text.
func (p *steppedPattern[TResult, TBucket]) Parse(text string) ParseResult[TResult] {
	if p.formatOnly {
		return resultFormatOnlyPattern[TResult]()
	}
	if text == "" {
		return resultValueStringEmpty[TResult]()
	}
	c := cursor.NewValue(text)
	c.MoveNext()
	bucket := p.bucketProvider()
	for _, action := range p.parseActions {
		if fail := action(c, bucket); fail != nil {
			return *fail
		}
	}
	if c.Current() != cursor.Nul {
		return resultExtraValueCharacters[TResult](c, c.Remainder())
	}
	return bucket.calculateValue(p.usedFields, text)
}

// parsePartial parses from the cursor's current position, leaving the cursor
// on the first unconsumed character.
func (p *steppedPattern[TResult, TBucket]) parsePartial(c *cursor.Value) ParseResult[TResult] {
	bucket := p.bucketProvider()
	for _, action := range p.parseActions {
		if fail := action(c, bucket); fail != nil {
			return *fail
		}
	}
	return bucket.calculateValue(p.usedFields, c.String())
}

// Format returns the value formatted according to the pattern.
func (p *steppedPattern[TResult, TBucket]) Format(value TResult) string {
	var buf bytes.Buffer
	p.AppendFormat(value, &buf)
	return buf.String()
}

// AppendFormat appends the formatted value to the buffer.
func (p *steppedPattern[TResult, TBucket]) AppendFormat(value TResult, buf *bytes.Buffer) {
	for _, action := range p.formatActions {
		action(value, buf)
	}
}

// Handlers shared by every pattern character table.

// handleQuote extracts a quoted literal run.
func handleQuote[TResult any, TBucket parseBucket[TResult]](
	pc *cursor.Pattern, b *steppedPatternBuilder[TResult, TBucket],
) error {
	quoted, err := pc.GetQuotedString(pc.Current())
	if err != nil {
		return err
	}
	b.addLiteralText(quoted, resultQuotedStringMismatch[TResult])
	return nil
}

// handleBackslash treats exactly the next character as a literal.
func handleBackslash[TResult any, TBucket parseBucket[TResult]](
	pc *cursor.Pattern, b *steppedPatternBuilder[TResult, TBucket],
) error {
	if !pc.MoveNext() {
		return errors.NewPattern(errors.ErrEscapeAtEndOfString, b.patternText,
			"the pattern ends with an escape character")
	}
	b.addEscapedLiteralRune(pc.Current())
	return nil
}

// handlePercent marks the following character as a single-character custom
// pattern; doubled or trailing percents are errors.
func handlePercent[TResult any, TBucket parseBucket[TResult]](
	pc *cursor.Pattern, b *steppedPatternBuilder[TResult, TBucket],
) error {
	if pc.HasMoreCharacters() {
		if pc.PeekNext() != '%' {
			return nil
		}
		return errors.NewPattern(errors.ErrPercentDoubled, b.patternText,
			"the pattern contains a doubled percent character")
	}
	return errors.NewPattern(errors.ErrPercentAtEndOfString, b.patternText,
		"the pattern ends with a percent character")
}

// handleDateSeparator matches and emits the culture's date separator.
func handleDateSeparator[TResult any, TBucket parseBucket[TResult]](
	pc *cursor.Pattern, b *steppedPatternBuilder[TResult, TBucket],
) error {
	separator := b.culture.DateSeparator()
	b.addParseAction(func(c *cursor.Value, bucket TBucket) *ParseResult[TResult] {
		if c.MatchString(separator) {
			return nil
		}
		fail := resultDateSeparatorMismatch[TResult](c)
		return &fail
	})
	b.addFormatAction(func(value TResult, buf *bytes.Buffer) {
		buf.WriteString(separator)
	})
	return nil
}

// handleTimeSeparator matches and emits the culture's time separator.
func handleTimeSeparator[TResult any, TBucket parseBucket[TResult]](
	pc *cursor.Pattern, b *steppedPatternBuilder[TResult, TBucket],
) error {
	separator := b.culture.TimeSeparator()
	b.addParseAction(func(c *cursor.Value, bucket TBucket) *ParseResult[TResult] {
		if c.MatchString(separator) {
			return nil
		}
		fail := resultTimeSeparatorMismatch[TResult](c)
		return &fail
	})
	b.addFormatAction(func(value TResult, buf *bytes.Buffer) {
		buf.WriteString(separator)
	})
	return nil
}

// handlePaddedField builds a handler for a simple zero-padded numeric field.
func handlePaddedField[TResult any, TBucket parseBucket[TResult]](
	maxCount int, field patternFields, minValue, maxValue int,
	getter func(value TResult) int,
	setter func(bucket TBucket, value int),
) patternCharacterHandler[TResult, TBucket] {
	return func(pc *cursor.Pattern, b *steppedPatternBuilder[TResult, TBucket]) error {
		patternChar := pc.Current()
		count, err := pc.GetRepeatCount(maxCount)
		if err != nil {
			return err
		}
		if err := b.addField(field, patternChar); err != nil {
			return err
		}
		b.addParseValueAction(count, maxCount, patternChar, minValue, maxValue, setter)
		b.addFormatLeftPad(count, getter, true, maxValue < 100)
		return nil
	}
}
