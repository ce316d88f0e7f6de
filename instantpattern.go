package datetext

import (
	"bytes"

	"github.com/nodatime/datetext/errors"
	"github.com/nodatime/datetext/internal/cursor"
)

// instantAsLocalPattern adapts a LocalDateTime pattern to instants: parsing
// interprets the local value as UTC, formatting converts the instant to its
// UTC local representation first.
type instantAsLocalPattern struct {
	inner Pattern[LocalDateTime]
}

func (p instantAsLocalPattern) Parse(text string) ParseResult[Instant] {
	result := p.inner.Parse(text)
	if !result.Success() {
		return convertFailure[Instant](result)
	}
	return ParseSuccess(result.value.ToInstant(ZeroOffset))
}

func (p instantAsLocalPattern) Format(value Instant) string {
	return p.inner.Format(value.InUTC())
}

func (p instantAsLocalPattern) AppendFormat(value Instant, buf *bytes.Buffer) {
	p.inner.AppendFormat(value.InUTC(), buf)
}

func (p instantAsLocalPattern) parsePartial(c *cursor.Value) ParseResult[Instant] {
	partial, ok := p.inner.(partialPattern[LocalDateTime])
	if !ok {
		return resultFormatOnlyPattern[Instant]()
	}
	result := partial.parsePartial(c)
	if !result.Success() {
		return convertFailure[Instant](result)
	}
	return ParseSuccess(result.value.ToInstant(ZeroOffset))
}

type instantPatternParser struct{}

func (instantPatternParser) parsePattern(patternText string, culture *Culture) (Pattern[Instant], error) {
	if patternText == "" {
		return nil, errors.NewPattern(errors.ErrEmptyPattern, patternText, "the pattern text is empty")
	}
	if len([]rune(patternText)) == 1 {
		switch patternText {
		case "g":
			patternText = "uuuu'-'MM'-'dd'T'HH':'mm':'ss'Z'"
		default:
			return nil, errors.NewPattern(errors.ErrUnknownStandardFormat, patternText,
				"the standard format %q is not valid for instants", patternText)
		}
	}
	parser := &localDateTimePatternParser{
		templateValue:   defaultLocalDateTimeTemplate,
		twoDigitYearMax: defaultTwoDigitYearMax,
	}
	inner, err := parser.parsePattern(patternText, culture)
	if err != nil {
		return nil, err
	}
	return instantAsLocalPattern{inner: inner}, nil
}

var instantCaches = newCultureCaches[Instant](instantPatternParser{})

// InstantPattern parses and formats Instant values. An instant has no
// calendar or zone of its own; its text representation is always the ISO
// calendar in UTC.
type InstantPattern struct {
	patternText string
	culture     *Culture
	pattern     Pattern[Instant]
}

// NewInstantPattern compiles pattern text for the given culture.
func NewInstantPattern(patternText string, culture *Culture) (*InstantPattern, error) {
	pattern, err := instantCaches.forCulture(culture).parsePattern(patternText)
	if err != nil {
		return nil, err
	}
	return &InstantPattern{patternText: patternText, culture: culture, pattern: pattern}, nil
}

// NewInstantPatternInvariant compiles pattern text for the invariant culture.
func NewInstantPatternInvariant(patternText string) (*InstantPattern, error) {
	return NewInstantPattern(patternText, CultureInvariant())
}

// PatternText returns the text this pattern was created with.
func (p *InstantPattern) PatternText() string { return p.patternText }

// Culture returns the culture used for text and separators.
func (p *InstantPattern) Culture() *Culture { return p.culture }

// Parse parses the whole of the given text.
func (p *InstantPattern) Parse(text string) ParseResult[Instant] {
	return p.pattern.Parse(text)
}

// Format returns the value formatted according to the pattern.
func (p *InstantPattern) Format(value Instant) string {
	return p.pattern.Format(value)
}

// AppendFormat appends the formatted value to the buffer.
func (p *InstantPattern) AppendFormat(value Instant, buf *bytes.Buffer) {
	p.pattern.AppendFormat(value, buf)
}

// WithCulture compiles the same pattern text against a different culture.
func (p *InstantPattern) WithCulture(culture *Culture) (*InstantPattern, error) {
	return NewInstantPattern(p.patternText, culture)
}

func mustInstantPattern(patternText string) *InstantPattern {
	// The cache reaches instantPatternParser only through the patternParser
	// interface, which package initialization dependency analysis cannot see.
	// Reference the method lexically so localDateTimeHandlers and
	// defaultLocalDateTimeTemplate are initialized before the patterns
	// compiled here.
	_ = instantPatternParser.parsePattern
	p, err := NewInstantPatternInvariant(patternText)
	if err != nil {
		panic(err)
	}
	return p
}

// InstantPatternGeneral is the ISO-8601 instant pattern to second precision
// with a trailing Z, uuuu-MM-ddTHH:mm:ssZ.
var InstantPatternGeneral = mustInstantPattern("g")

// InstantPatternExtendedISO extends the general pattern with up to nine
// fraction digits, trimmed to what the value needs.
var InstantPatternExtendedISO = mustInstantPattern("uuuu'-'MM'-'dd'T'HH':'mm':'ss;FFFFFFFFF'Z'")
