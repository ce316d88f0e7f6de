package datetext

import (
	"bytes"

	"github.com/nodatime/datetext/errors"
)

type offsetTimeBucket struct {
	time   *localTimeBucket
	offset Offset
}

func (b *offsetTimeBucket) calculateValue(usedFields patternFields, text string) ParseResult[OffsetTime] {
	timeResult := b.time.calculateValue(usedFields, text)
	if !timeResult.Success() {
		return convertFailure[OffsetTime](timeResult)
	}
	return ParseSuccess(NewOffsetTime(timeResult.value, b.offset))
}

func offsetTimeHour(t OffsetTime) int       { return t.TimeOfDay().Hour() }
func offsetTimeClockHour(t OffsetTime) int  { return t.TimeOfDay().ClockHourOfHalfDay() }
func offsetTimeMinute(t OffsetTime) int     { return t.TimeOfDay().Minute() }
func offsetTimeSecond(t OffsetTime) int     { return t.TimeOfDay().Second() }
func offsetTimeNanosecond(t OffsetTime) int { return t.TimeOfDay().NanosecondOfSecond() }

func offsetTimeTimeBucket(b *offsetTimeBucket) *localTimeBucket { return b.time }

var offsetTimeHandlers = map[rune]patternCharacterHandler[OffsetTime, *offsetTimeBucket]{
	'%':  handlePercent[OffsetTime, *offsetTimeBucket],
	'\'': handleQuote[OffsetTime, *offsetTimeBucket],
	'"':  handleQuote[OffsetTime, *offsetTimeBucket],
	'\\': handleBackslash[OffsetTime, *offsetTimeBucket],
	':':  handleTimeSeparator[OffsetTime, *offsetTimeBucket],
	'.':  periodHandler[OffsetTime](offsetTimeNanosecond, setOffsetTimeFraction),
	';':  commaDotHandler[OffsetTime](offsetTimeNanosecond, setOffsetTimeFraction),
	'h': handlePaddedField[OffsetTime](2, fieldHours12, 1, 12, offsetTimeClockHour,
		func(b *offsetTimeBucket, v int) { b.time.hours12 = v }),
	'H': handlePaddedField[OffsetTime](2, fieldHours24, 0, 23, offsetTimeHour,
		func(b *offsetTimeBucket, v int) { b.time.hours24 = v }),
	'm': handlePaddedField[OffsetTime](2, fieldMinutes, 0, 59, offsetTimeMinute,
		func(b *offsetTimeBucket, v int) { b.time.minutes = v }),
	's': handlePaddedField[OffsetTime](2, fieldSeconds, 0, 59, offsetTimeSecond,
		func(b *offsetTimeBucket, v int) { b.time.seconds = v }),
	'f': fractionHandler[OffsetTime](offsetTimeNanosecond, setOffsetTimeFraction),
	'F': fractionHandler[OffsetTime](offsetTimeNanosecond, setOffsetTimeFraction),
	't': amPmHandler[OffsetTime](offsetTimeHour, offsetTimeTimeBucket),
	'o': embeddedOffsetHandler[OffsetTime](OffsetTime.Offset,
		func(b *offsetTimeBucket, offset Offset) { b.offset = offset }),
}

type offsetTimePatternParser struct {
	templateValue OffsetTime
}

func (p *offsetTimePatternParser) parsePattern(patternText string, culture *Culture) (Pattern[OffsetTime], error) {
	if patternText == "" {
		return nil, errors.NewPattern(errors.ErrEmptyPattern, patternText, "the pattern text is empty")
	}
	if len([]rune(patternText)) == 1 {
		switch patternText {
		case "G":
			patternText = "HH':'mm':'sso<G>"
		case "r":
			patternText = "HH':'mm':'ss;FFFFFFFFFo<G>"
		default:
			return nil, errors.NewPattern(errors.ErrUnknownStandardFormat, patternText,
				"the standard format %q is not valid for offset times", patternText)
		}
	}
	builder := newSteppedPatternBuilder(culture, patternText, func() *offsetTimeBucket {
		return &offsetTimeBucket{
			time:   newLocalTimeBucket(p.templateValue.TimeOfDay()),
			offset: p.templateValue.Offset(),
		}
	})
	if err := builder.parseCustomPattern(offsetTimeHandlers); err != nil {
		return nil, err
	}
	if err := builder.validateUsedFields(); err != nil {
		return nil, err
	}
	return builder.build(), nil
}

var defaultOffsetTimeTemplate = NewOffsetTime(Midnight, ZeroOffset)

var offsetTimeCaches = newCultureCaches[OffsetTime](&offsetTimePatternParser{
	templateValue: defaultOffsetTimeTemplate,
})

// OffsetTimePattern parses and formats OffsetTime values.
type OffsetTimePattern struct {
	patternText   string
	culture       *Culture
	templateValue OffsetTime
	pattern       Pattern[OffsetTime]
}

// NewOffsetTimePattern compiles pattern text for the given culture.
func NewOffsetTimePattern(patternText string, culture *Culture, templateValue OffsetTime) (*OffsetTimePattern, error) {
	var pattern Pattern[OffsetTime]
	var err error
	if templateValue == defaultOffsetTimeTemplate {
		pattern, err = offsetTimeCaches.forCulture(culture).parsePattern(patternText)
	} else {
		parser := &offsetTimePatternParser{templateValue: templateValue}
		pattern, err = parser.parsePattern(patternText, culture)
	}
	if err != nil {
		return nil, err
	}
	return &OffsetTimePattern{
		patternText:   patternText,
		culture:       culture,
		templateValue: templateValue,
		pattern:       pattern,
	}, nil
}

// NewOffsetTimePatternInvariant compiles pattern text for the invariant
// culture with the default template value.
func NewOffsetTimePatternInvariant(patternText string) (*OffsetTimePattern, error) {
	return NewOffsetTimePattern(patternText, CultureInvariant(), defaultOffsetTimeTemplate)
}

// PatternText returns the text this pattern was created with.
func (p *OffsetTimePattern) PatternText() string { return p.patternText }

// Culture returns the culture used for text and separators.
func (p *OffsetTimePattern) Culture() *Culture { return p.culture }

// Parse parses the whole of the given text.
func (p *OffsetTimePattern) Parse(text string) ParseResult[OffsetTime] {
	return p.pattern.Parse(text)
}

// Format returns the value formatted according to the pattern.
func (p *OffsetTimePattern) Format(value OffsetTime) string {
	return p.pattern.Format(value)
}

// AppendFormat appends the formatted value to the buffer.
func (p *OffsetTimePattern) AppendFormat(value OffsetTime, buf *bytes.Buffer) {
	p.pattern.AppendFormat(value, buf)
}

// WithCulture compiles the same pattern text against a different culture.
func (p *OffsetTimePattern) WithCulture(culture *Culture) (*OffsetTimePattern, error) {
	return NewOffsetTimePattern(p.patternText, culture, p.templateValue)
}

// WithTemplateValue compiles the same pattern text with a different template.
func (p *OffsetTimePattern) WithTemplateValue(templateValue OffsetTime) (*OffsetTimePattern, error) {
	return NewOffsetTimePattern(p.patternText, p.culture, templateValue)
}

func mustOffsetTimePattern(patternText string) *OffsetTimePattern {
	p, err := NewOffsetTimePatternInvariant(patternText)
	if err != nil {
		panic(err)
	}
	return p
}

// OffsetTimePatternGeneralISO is the ISO-8601 time pattern to second
// precision followed by the general offset, HH:mm:ss+HH:mm or HH:mm:ssZ.
var OffsetTimePatternGeneralISO = mustOffsetTimePattern("G")

func setOffsetTimeFraction(b *offsetTimeBucket, v int) { b.time.fractionalSeconds = v }
