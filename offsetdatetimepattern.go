package datetext

import (
	"bytes"

	"github.com/nodatime/datetext/errors"
	"github.com/nodatime/datetext/internal/cursor"
)

type offsetDateTimeBucket struct {
	date          *localDateBucket
	time          *localTimeBucket
	embeddedLocal LocalDateTime
	offset        Offset
}

func (b *offsetDateTimeBucket) calculateValue(usedFields patternFields, text string) ParseResult[OffsetDateTime] {
	if usedFields.has(fieldEmbeddedDate | fieldEmbeddedTime) {
		return ParseSuccess(b.embeddedLocal.WithOffset(b.offset))
	}
	dateResult := b.date.calculateValue(usedFields, text)
	if !dateResult.Success() {
		return convertFailure[OffsetDateTime](dateResult)
	}
	timeResult := b.time.calculateValue(usedFields, text)
	if !timeResult.Success() {
		return convertFailure[OffsetDateTime](timeResult)
	}
	return ParseSuccess(dateResult.value.At(timeResult.value).WithOffset(b.offset))
}

func offsetDateTimeYear(dt OffsetDateTime) int                 { return dt.Date().Year() }
func offsetDateTimeYearOfEra(dt OffsetDateTime) int            { return dt.Date().YearOfEra() }
func offsetDateTimeMonth(dt OffsetDateTime) int                { return dt.Date().Month() }
func offsetDateTimeDay(dt OffsetDateTime) int                  { return dt.Date().Day() }
func offsetDateTimeDayOfWeek(dt OffsetDateTime) int            { return dt.Date().DayOfWeek() }
func offsetDateTimeEra(dt OffsetDateTime) Era                  { return dt.Date().Era() }
func offsetDateTimeCalendar(dt OffsetDateTime) *CalendarSystem { return dt.Date().Calendar() }
func offsetDateTimeHour(dt OffsetDateTime) int                 { return dt.TimeOfDay().Hour() }
func offsetDateTimeClockHour(dt OffsetDateTime) int            { return dt.TimeOfDay().ClockHourOfHalfDay() }
func offsetDateTimeMinute(dt OffsetDateTime) int               { return dt.TimeOfDay().Minute() }
func offsetDateTimeSecond(dt OffsetDateTime) int               { return dt.TimeOfDay().Second() }
func offsetDateTimeNanosecond(dt OffsetDateTime) int           { return dt.TimeOfDay().NanosecondOfSecond() }

func offsetDateTimeDateBucket(b *offsetDateTimeBucket) *localDateBucket { return b.date }
func offsetDateTimeTimeBucket(b *offsetDateTimeBucket) *localTimeBucket { return b.time }

type offsetDateTimePatternParser struct {
	templateValue   OffsetDateTime
	twoDigitYearMax int
}

// handlers builds the character table per compilation: the embedded
// local-date-time handler closes over the parser's template configuration.
func (p *offsetDateTimePatternParser) handlers() map[rune]patternCharacterHandler[OffsetDateTime, *offsetDateTimeBucket] {
	return map[rune]patternCharacterHandler[OffsetDateTime, *offsetDateTimeBucket]{
		'%':  handlePercent[OffsetDateTime, *offsetDateTimeBucket],
		'\'': handleQuote[OffsetDateTime, *offsetDateTimeBucket],
		'"':  handleQuote[OffsetDateTime, *offsetDateTimeBucket],
		'\\': handleBackslash[OffsetDateTime, *offsetDateTimeBucket],
		'/':  handleDateSeparator[OffsetDateTime, *offsetDateTimeBucket],
		':':  handleTimeSeparator[OffsetDateTime, *offsetDateTimeBucket],
		'.':  periodHandler[OffsetDateTime](offsetDateTimeNanosecond, setOffsetDateTimeFraction),
		';':  commaDotHandler[OffsetDateTime](offsetDateTimeNanosecond, setOffsetDateTimeFraction),
		'y':  yearHandler[OffsetDateTime](offsetDateTimeYear, offsetDateTimeDateBucket),
		'u':  absoluteYearHandler[OffsetDateTime](offsetDateTimeYear, offsetDateTimeDateBucket),
		'Y':  yearOfEraHandler[OffsetDateTime](offsetDateTimeYearOfEra, offsetDateTimeDateBucket),
		'M':  monthHandler[OffsetDateTime](offsetDateTimeMonth, offsetDateTimeDateBucket),
		'd':  dayHandler[OffsetDateTime](offsetDateTimeDay, offsetDateTimeDayOfWeek, offsetDateTimeDateBucket),
		'g':  eraHandler[OffsetDateTime](offsetDateTimeEra, offsetDateTimeDateBucket),
		'c':  calendarHandler[OffsetDateTime](offsetDateTimeCalendar, offsetDateTimeDateBucket),
		'h': handlePaddedField[OffsetDateTime](2, fieldHours12, 1, 12, offsetDateTimeClockHour,
			func(b *offsetDateTimeBucket, v int) { b.time.hours12 = v }),
		'H': handlePaddedField[OffsetDateTime](2, fieldHours24, 0, 23, offsetDateTimeHour,
			func(b *offsetDateTimeBucket, v int) { b.time.hours24 = v }),
		'm': handlePaddedField[OffsetDateTime](2, fieldMinutes, 0, 59, offsetDateTimeMinute,
			func(b *offsetDateTimeBucket, v int) { b.time.minutes = v }),
		's': handlePaddedField[OffsetDateTime](2, fieldSeconds, 0, 59, offsetDateTimeSecond,
			func(b *offsetDateTimeBucket, v int) { b.time.seconds = v }),
		'f': fractionHandler[OffsetDateTime](offsetDateTimeNanosecond, setOffsetDateTimeFraction),
		'F': fractionHandler[OffsetDateTime](offsetDateTimeNanosecond, setOffsetDateTimeFraction),
		't': amPmHandler[OffsetDateTime](offsetDateTimeHour, offsetDateTimeTimeBucket),
		'o': embeddedOffsetHandler[OffsetDateTime](OffsetDateTime.Offset,
			func(b *offsetDateTimeBucket, offset Offset) { b.offset = offset }),
		'l': p.embeddedLocalHandler(),
	}
}

func (p *offsetDateTimePatternParser) embeddedLocalHandler() patternCharacterHandler[OffsetDateTime, *offsetDateTimeBucket] {
	return func(pc *cursor.Pattern, b *steppedPatternBuilder[OffsetDateTime, *offsetDateTimeBucket]) error {
		embeddedText, err := pc.GetEmbeddedPattern()
		if err != nil {
			return err
		}
		if err := b.addField(fieldEmbeddedDate|fieldEmbeddedTime, 'l'); err != nil {
			return err
		}
		innerParser := &localDateTimePatternParser{
			templateValue:   p.templateValue.LocalDateTime(),
			twoDigitYearMax: p.twoDigitYearMax,
		}
		inner, err := innerParser.parsePattern(embeddedText, b.culture)
		if err != nil {
			return err
		}
		addEmbeddedPattern(b, inner.(partialPattern[LocalDateTime]),
			func(bucket *offsetDateTimeBucket, value LocalDateTime) { bucket.embeddedLocal = value },
			OffsetDateTime.LocalDateTime)
		return nil
	}
}

func (p *offsetDateTimePatternParser) parsePattern(patternText string, culture *Culture) (Pattern[OffsetDateTime], error) {
	if patternText == "" {
		return nil, errors.NewPattern(errors.ErrEmptyPattern, patternText, "the pattern text is empty")
	}
	if len([]rune(patternText)) == 1 {
		switch patternText {
		case "G":
			patternText = "uuuu'-'MM'-'dd'T'HH':'mm':'sso<G>"
		case "o", "O":
			patternText = "uuuu'-'MM'-'dd'T'HH':'mm':'ss;FFFFFFFFFo<G>"
		case "r":
			patternText = "uuuu'-'MM'-'dd'T'HH':'mm':'ss;FFFFFFFFFo<G> '('c')'"
		default:
			return nil, errors.NewPattern(errors.ErrUnknownStandardFormat, patternText,
				"the standard format %q is not valid for offset date/times", patternText)
		}
	}
	builder := newSteppedPatternBuilder(culture, patternText, func() *offsetDateTimeBucket {
		return &offsetDateTimeBucket{
			date:   newLocalDateBucket(p.templateValue.Date(), p.twoDigitYearMax),
			time:   newLocalTimeBucket(p.templateValue.TimeOfDay()),
			offset: p.templateValue.Offset(),
		}
	})
	if err := builder.parseCustomPattern(p.handlers()); err != nil {
		return nil, err
	}
	if err := builder.validateUsedFields(); err != nil {
		return nil, err
	}
	return builder.build(), nil
}

var defaultOffsetDateTimeTemplate = defaultLocalDateTimeTemplate.WithOffset(ZeroOffset)

var offsetDateTimeCaches = newCultureCaches[OffsetDateTime](&offsetDateTimePatternParser{
	templateValue:   defaultOffsetDateTimeTemplate,
	twoDigitYearMax: defaultTwoDigitYearMax,
})

// OffsetDateTimePattern parses and formats OffsetDateTime values.
type OffsetDateTimePattern struct {
	patternText     string
	culture         *Culture
	templateValue   OffsetDateTime
	twoDigitYearMax int
	pattern         Pattern[OffsetDateTime]
}

// NewOffsetDateTimePattern compiles pattern text for the given culture.
func NewOffsetDateTimePattern(patternText string, culture *Culture, templateValue OffsetDateTime) (*OffsetDateTimePattern, error) {
	return makeOffsetDateTimePattern(patternText, culture, templateValue, defaultTwoDigitYearMax)
}

// NewOffsetDateTimePatternInvariant compiles pattern text for the invariant
// culture with the default template value.
func NewOffsetDateTimePatternInvariant(patternText string) (*OffsetDateTimePattern, error) {
	return NewOffsetDateTimePattern(patternText, CultureInvariant(), defaultOffsetDateTimeTemplate)
}

func makeOffsetDateTimePattern(patternText string, culture *Culture, templateValue OffsetDateTime, twoDigitYearMax int) (*OffsetDateTimePattern, error) {
	var pattern Pattern[OffsetDateTime]
	var err error
	if templateValue == defaultOffsetDateTimeTemplate && twoDigitYearMax == defaultTwoDigitYearMax {
		pattern, err = offsetDateTimeCaches.forCulture(culture).parsePattern(patternText)
	} else {
		parser := &offsetDateTimePatternParser{templateValue: templateValue, twoDigitYearMax: twoDigitYearMax}
		pattern, err = parser.parsePattern(patternText, culture)
	}
	if err != nil {
		return nil, err
	}
	return &OffsetDateTimePattern{
		patternText:     patternText,
		culture:         culture,
		templateValue:   templateValue,
		twoDigitYearMax: twoDigitYearMax,
		pattern:         pattern,
	}, nil
}

// PatternText returns the text this pattern was created with.
func (p *OffsetDateTimePattern) PatternText() string { return p.patternText }

// Culture returns the culture used for text and separators.
func (p *OffsetDateTimePattern) Culture() *Culture { return p.culture }

// Parse parses the whole of the given text.
func (p *OffsetDateTimePattern) Parse(text string) ParseResult[OffsetDateTime] {
	return p.pattern.Parse(text)
}

// Format returns the value formatted according to the pattern.
func (p *OffsetDateTimePattern) Format(value OffsetDateTime) string {
	return p.pattern.Format(value)
}

// AppendFormat appends the formatted value to the buffer.
func (p *OffsetDateTimePattern) AppendFormat(value OffsetDateTime, buf *bytes.Buffer) {
	p.pattern.AppendFormat(value, buf)
}

// WithCulture compiles the same pattern text against a different culture.
func (p *OffsetDateTimePattern) WithCulture(culture *Culture) (*OffsetDateTimePattern, error) {
	return makeOffsetDateTimePattern(p.patternText, culture, p.templateValue, p.twoDigitYearMax)
}

// WithTemplateValue compiles the same pattern text with a different template.
func (p *OffsetDateTimePattern) WithTemplateValue(templateValue OffsetDateTime) (*OffsetDateTimePattern, error) {
	return makeOffsetDateTimePattern(p.patternText, p.culture, templateValue, p.twoDigitYearMax)
}

// WithTwoDigitYearMax compiles the same pattern text with a different
// two-digit year pivot.
func (p *OffsetDateTimePattern) WithTwoDigitYearMax(twoDigitYearMax int) (*OffsetDateTimePattern, error) {
	return makeOffsetDateTimePattern(p.patternText, p.culture, p.templateValue, twoDigitYearMax)
}

func mustOffsetDateTimePattern(patternText string) *OffsetDateTimePattern {
	p, err := NewOffsetDateTimePatternInvariant(patternText)
	if err != nil {
		panic(err)
	}
	return p
}

// OffsetDateTimePatternGeneralISO is the ISO-8601 date/time pattern to
// second precision followed by the general offset.
var OffsetDateTimePatternGeneralISO = mustOffsetDateTimePattern("G")

// OffsetDateTimePatternExtendedISO extends the general pattern with up to
// nine fraction digits, trimmed to what the value needs.
var OffsetDateTimePatternExtendedISO = mustOffsetDateTimePattern("o")

func setOffsetDateTimeFraction(b *offsetDateTimeBucket, v int) { b.time.fractionalSeconds = v }
