package datetext

import (
	"bytes"

	"github.com/nodatime/datetext/errors"
)

var localTimeHandlers = map[rune]patternCharacterHandler[LocalTime, *localTimeBucket]{
	'%':  handlePercent[LocalTime, *localTimeBucket],
	'\'': handleQuote[LocalTime, *localTimeBucket],
	'"':  handleQuote[LocalTime, *localTimeBucket],
	'\\': handleBackslash[LocalTime, *localTimeBucket],
	':':  handleTimeSeparator[LocalTime, *localTimeBucket],
	'.':  periodHandler[LocalTime](LocalTime.NanosecondOfSecond, setLocalTimeFraction),
	';':  commaDotHandler[LocalTime](LocalTime.NanosecondOfSecond, setLocalTimeFraction),
	'h': handlePaddedField[LocalTime](2, fieldHours12, 1, 12, LocalTime.ClockHourOfHalfDay,
		func(b *localTimeBucket, v int) { b.hours12 = v }),
	'H': handlePaddedField[LocalTime](2, fieldHours24, 0, 23, LocalTime.Hour,
		func(b *localTimeBucket, v int) { b.hours24 = v }),
	'm': handlePaddedField[LocalTime](2, fieldMinutes, 0, 59, LocalTime.Minute,
		func(b *localTimeBucket, v int) { b.minutes = v }),
	's': handlePaddedField[LocalTime](2, fieldSeconds, 0, 59, LocalTime.Second,
		func(b *localTimeBucket, v int) { b.seconds = v }),
	'f': fractionHandler[LocalTime](LocalTime.NanosecondOfSecond, setLocalTimeFraction),
	'F': fractionHandler[LocalTime](LocalTime.NanosecondOfSecond, setLocalTimeFraction),
	't': amPmHandler[LocalTime](LocalTime.Hour, timeBucketSelf),
}

func setLocalTimeFraction(b *localTimeBucket, v int) { b.fractionalSeconds = v }

// timeBucketSelf is the accessor used when the time bucket is not a
// sub-bucket but the whole bucket.
func timeBucketSelf(b *localTimeBucket) *localTimeBucket { return b }

type localTimePatternParser struct {
	templateValue LocalTime
}

func (p *localTimePatternParser) parsePattern(patternText string, culture *Culture) (Pattern[LocalTime], error) {
	if patternText == "" {
		return nil, errors.NewPattern(errors.ErrEmptyPattern, patternText, "the pattern text is empty")
	}
	if len([]rune(patternText)) == 1 {
		switch patternText {
		case "t":
			patternText = culture.ShortTimePattern()
		case "T":
			patternText = culture.LongTimePattern()
		case "r":
			patternText = "HH':'mm':'ss;FFFFFFFFF"
		default:
			return nil, errors.NewPattern(errors.ErrUnknownStandardFormat, patternText,
				"the standard format %q is not valid for times", patternText)
		}
	}
	builder := newSteppedPatternBuilder(culture, patternText, func() *localTimeBucket {
		return newLocalTimeBucket(p.templateValue)
	})
	if err := builder.parseCustomPattern(localTimeHandlers); err != nil {
		return nil, err
	}
	if err := builder.validateUsedFields(); err != nil {
		return nil, err
	}
	return builder.build(), nil
}

var localTimeCaches = newCultureCaches[LocalTime](&localTimePatternParser{templateValue: Midnight})

// LocalTimePattern parses and formats LocalTime values.
type LocalTimePattern struct {
	patternText   string
	culture       *Culture
	templateValue LocalTime
	pattern       Pattern[LocalTime]
}

// NewLocalTimePattern compiles pattern text for the given culture.
func NewLocalTimePattern(patternText string, culture *Culture, templateValue LocalTime) (*LocalTimePattern, error) {
	var pattern Pattern[LocalTime]
	var err error
	if templateValue == Midnight {
		pattern, err = localTimeCaches.forCulture(culture).parsePattern(patternText)
	} else {
		parser := &localTimePatternParser{templateValue: templateValue}
		pattern, err = parser.parsePattern(patternText, culture)
	}
	if err != nil {
		return nil, err
	}
	return &LocalTimePattern{
		patternText:   patternText,
		culture:       culture,
		templateValue: templateValue,
		pattern:       pattern,
	}, nil
}

// NewLocalTimePatternInvariant compiles pattern text for the invariant
// culture with a midnight template value.
func NewLocalTimePatternInvariant(patternText string) (*LocalTimePattern, error) {
	return NewLocalTimePattern(patternText, CultureInvariant(), Midnight)
}

// PatternText returns the text this pattern was created with.
func (p *LocalTimePattern) PatternText() string { return p.patternText }

// Culture returns the culture used for text and separators.
func (p *LocalTimePattern) Culture() *Culture { return p.culture }

// Parse parses the whole of the given text.
func (p *LocalTimePattern) Parse(text string) ParseResult[LocalTime] {
	return p.pattern.Parse(text)
}

// Format returns the value formatted according to the pattern.
func (p *LocalTimePattern) Format(value LocalTime) string {
	return p.pattern.Format(value)
}

// AppendFormat appends the formatted value to the buffer.
func (p *LocalTimePattern) AppendFormat(value LocalTime, buf *bytes.Buffer) {
	p.pattern.AppendFormat(value, buf)
}

// WithCulture compiles the same pattern text against a different culture.
func (p *LocalTimePattern) WithCulture(culture *Culture) (*LocalTimePattern, error) {
	return NewLocalTimePattern(p.patternText, culture, p.templateValue)
}

// WithTemplateValue compiles the same pattern text with a different template.
func (p *LocalTimePattern) WithTemplateValue(templateValue LocalTime) (*LocalTimePattern, error) {
	return NewLocalTimePattern(p.patternText, p.culture, templateValue)
}

func mustLocalTimePattern(patternText string) *LocalTimePattern {
	p, err := NewLocalTimePatternInvariant(patternText)
	if err != nil {
		panic(err)
	}
	return p
}

// LocalTimePatternExtendedISO is the ISO-8601 time pattern with as many
// fraction digits as needed, HH:mm:ss.fffffffff with the fraction trimmed.
var LocalTimePatternExtendedISO = mustLocalTimePattern("HH':'mm':'ss;FFFFFFFFF")
