package datetext

import (
	"bytes"

	"github.com/nodatime/datetext/errors"
)

// localDateTimeBucket composes the date and time sub-buckets; each computes
// its half of the value from the fields it owns.
type localDateTimeBucket struct {
	date *localDateBucket
	time *localTimeBucket
}

func (b *localDateTimeBucket) calculateValue(usedFields patternFields, text string) ParseResult[LocalDateTime] {
	dateResult := b.date.calculateValue(usedFields, text)
	if !dateResult.Success() {
		return convertFailure[LocalDateTime](dateResult)
	}
	timeResult := b.time.calculateValue(usedFields, text)
	if !timeResult.Success() {
		return convertFailure[LocalDateTime](timeResult)
	}
	return ParseSuccess(dateResult.value.At(timeResult.value))
}

func localDateTimeYearOfEra(dt LocalDateTime) int         { return dt.Date().YearOfEra() }
func localDateTimeEra(dt LocalDateTime) Era               { return dt.Date().Era() }
func localDateTimeCalendar(dt LocalDateTime) *CalendarSystem { return dt.Date().Calendar() }
func localDateTimeDayOfWeek(dt LocalDateTime) int         { return dt.Date().DayOfWeek() }
func localDateTimeClockHour(dt LocalDateTime) int         { return dt.TimeOfDay().ClockHourOfHalfDay() }

func localDateTimeDateBucket(b *localDateTimeBucket) *localDateBucket { return b.date }
func localDateTimeTimeBucket(b *localDateTimeBucket) *localTimeBucket { return b.time }

var localDateTimeHandlers = map[rune]patternCharacterHandler[LocalDateTime, *localDateTimeBucket]{
	'%':  handlePercent[LocalDateTime, *localDateTimeBucket],
	'\'': handleQuote[LocalDateTime, *localDateTimeBucket],
	'"':  handleQuote[LocalDateTime, *localDateTimeBucket],
	'\\': handleBackslash[LocalDateTime, *localDateTimeBucket],
	'/':  handleDateSeparator[LocalDateTime, *localDateTimeBucket],
	':':  handleTimeSeparator[LocalDateTime, *localDateTimeBucket],
	'.':  periodHandler[LocalDateTime](LocalDateTime.NanosecondOfSecond, setLocalDateTimeFraction),
	';':  commaDotHandler[LocalDateTime](LocalDateTime.NanosecondOfSecond, setLocalDateTimeFraction),
	'y':  yearHandler[LocalDateTime](LocalDateTime.Year, localDateTimeDateBucket),
	'u':  absoluteYearHandler[LocalDateTime](LocalDateTime.Year, localDateTimeDateBucket),
	'Y':  yearOfEraHandler[LocalDateTime](localDateTimeYearOfEra, localDateTimeDateBucket),
	'M':  monthHandler[LocalDateTime](LocalDateTime.Month, localDateTimeDateBucket),
	'd':  dayHandler[LocalDateTime](LocalDateTime.Day, localDateTimeDayOfWeek, localDateTimeDateBucket),
	'g':  eraHandler[LocalDateTime](localDateTimeEra, localDateTimeDateBucket),
	'c':  calendarHandler[LocalDateTime](localDateTimeCalendar, localDateTimeDateBucket),
	'h': handlePaddedField[LocalDateTime](2, fieldHours12, 1, 12, localDateTimeClockHour,
		func(b *localDateTimeBucket, v int) { b.time.hours12 = v }),
	'H': handlePaddedField[LocalDateTime](2, fieldHours24, 0, 23, LocalDateTime.Hour,
		func(b *localDateTimeBucket, v int) { b.time.hours24 = v }),
	'm': handlePaddedField[LocalDateTime](2, fieldMinutes, 0, 59, LocalDateTime.Minute,
		func(b *localDateTimeBucket, v int) { b.time.minutes = v }),
	's': handlePaddedField[LocalDateTime](2, fieldSeconds, 0, 59, LocalDateTime.Second,
		func(b *localDateTimeBucket, v int) { b.time.seconds = v }),
	'f': fractionHandler[LocalDateTime](LocalDateTime.NanosecondOfSecond, setLocalDateTimeFraction),
	'F': fractionHandler[LocalDateTime](LocalDateTime.NanosecondOfSecond, setLocalDateTimeFraction),
	't': amPmHandler[LocalDateTime](LocalDateTime.Hour, localDateTimeTimeBucket),
}

type localDateTimePatternParser struct {
	templateValue   LocalDateTime
	twoDigitYearMax int
}

func (p *localDateTimePatternParser) parsePattern(patternText string, culture *Culture) (Pattern[LocalDateTime], error) {
	if patternText == "" {
		return nil, errors.NewPattern(errors.ErrEmptyPattern, patternText, "the pattern text is empty")
	}
	if len([]rune(patternText)) == 1 {
		switch patternText {
		case "o", "O":
			patternText = "uuuu'-'MM'-'dd'T'HH':'mm':'ss;FFFFFFFFF"
		case "s":
			patternText = "uuuu'-'MM'-'dd'T'HH':'mm':'ss"
		case "g":
			patternText = culture.ShortDatePattern() + " " + culture.ShortTimePattern()
		case "G":
			patternText = culture.ShortDatePattern() + " " + culture.LongTimePattern()
		default:
			return nil, errors.NewPattern(errors.ErrUnknownStandardFormat, patternText,
				"the standard format %q is not valid for date/times", patternText)
		}
	}
	builder := newSteppedPatternBuilder(culture, patternText, func() *localDateTimeBucket {
		return &localDateTimeBucket{
			date: newLocalDateBucket(p.templateValue.Date(), p.twoDigitYearMax),
			time: newLocalTimeBucket(p.templateValue.TimeOfDay()),
		}
	})
	if err := builder.parseCustomPattern(localDateTimeHandlers); err != nil {
		return nil, err
	}
	if err := builder.validateUsedFields(); err != nil {
		return nil, err
	}
	return builder.build(), nil
}

var defaultLocalDateTimeTemplate = defaultLocalDateTemplate.At(Midnight)

var localDateTimeCaches = newCultureCaches[LocalDateTime](&localDateTimePatternParser{
	templateValue:   defaultLocalDateTimeTemplate,
	twoDigitYearMax: defaultTwoDigitYearMax,
})

// LocalDateTimePattern parses and formats LocalDateTime values.
type LocalDateTimePattern struct {
	patternText     string
	culture         *Culture
	templateValue   LocalDateTime
	twoDigitYearMax int
	pattern         Pattern[LocalDateTime]
}

// NewLocalDateTimePattern compiles pattern text for the given culture.
func NewLocalDateTimePattern(patternText string, culture *Culture, templateValue LocalDateTime) (*LocalDateTimePattern, error) {
	return makeLocalDateTimePattern(patternText, culture, templateValue, defaultTwoDigitYearMax)
}

// NewLocalDateTimePatternInvariant compiles pattern text for the invariant
// culture with the default template value.
func NewLocalDateTimePatternInvariant(patternText string) (*LocalDateTimePattern, error) {
	return NewLocalDateTimePattern(patternText, CultureInvariant(), defaultLocalDateTimeTemplate)
}

func makeLocalDateTimePattern(patternText string, culture *Culture, templateValue LocalDateTime, twoDigitYearMax int) (*LocalDateTimePattern, error) {
	var pattern Pattern[LocalDateTime]
	var err error
	if templateValue == defaultLocalDateTimeTemplate && twoDigitYearMax == defaultTwoDigitYearMax {
		pattern, err = localDateTimeCaches.forCulture(culture).parsePattern(patternText)
	} else {
		parser := &localDateTimePatternParser{templateValue: templateValue, twoDigitYearMax: twoDigitYearMax}
		pattern, err = parser.parsePattern(patternText, culture)
	}
	if err != nil {
		return nil, err
	}
	return &LocalDateTimePattern{
		patternText:     patternText,
		culture:         culture,
		templateValue:   templateValue,
		twoDigitYearMax: twoDigitYearMax,
		pattern:         pattern,
	}, nil
}

// PatternText returns the text this pattern was created with.
func (p *LocalDateTimePattern) PatternText() string { return p.patternText }

// Culture returns the culture used for text and separators.
func (p *LocalDateTimePattern) Culture() *Culture { return p.culture }

// Parse parses the whole of the given text.
func (p *LocalDateTimePattern) Parse(text string) ParseResult[LocalDateTime] {
	return p.pattern.Parse(text)
}

// Format returns the value formatted according to the pattern.
func (p *LocalDateTimePattern) Format(value LocalDateTime) string {
	return p.pattern.Format(value)
}

// AppendFormat appends the formatted value to the buffer.
func (p *LocalDateTimePattern) AppendFormat(value LocalDateTime, buf *bytes.Buffer) {
	p.pattern.AppendFormat(value, buf)
}

// WithCulture compiles the same pattern text against a different culture.
func (p *LocalDateTimePattern) WithCulture(culture *Culture) (*LocalDateTimePattern, error) {
	return makeLocalDateTimePattern(p.patternText, culture, p.templateValue, p.twoDigitYearMax)
}

// WithTemplateValue compiles the same pattern text with a different template.
func (p *LocalDateTimePattern) WithTemplateValue(templateValue LocalDateTime) (*LocalDateTimePattern, error) {
	return makeLocalDateTimePattern(p.patternText, p.culture, templateValue, p.twoDigitYearMax)
}

// WithTwoDigitYearMax compiles the same pattern text with a different
// two-digit year pivot.
func (p *LocalDateTimePattern) WithTwoDigitYearMax(twoDigitYearMax int) (*LocalDateTimePattern, error) {
	return makeLocalDateTimePattern(p.patternText, p.culture, p.templateValue, twoDigitYearMax)
}

func mustLocalDateTimePattern(patternText string) *LocalDateTimePattern {
	p, err := NewLocalDateTimePatternInvariant(patternText)
	if err != nil {
		panic(err)
	}
	return p
}

// LocalDateTimePatternGeneralISO is the ISO-8601 pattern to second
// precision, uuuu-MM-ddTHH:mm:ss.
var LocalDateTimePatternGeneralISO = mustLocalDateTimePattern("uuuu'-'MM'-'dd'T'HH':'mm':'ss")

// LocalDateTimePatternExtendedISO extends the general pattern with up to
// nine fraction digits, trimmed to what the value needs.
var LocalDateTimePatternExtendedISO = mustLocalDateTimePattern("uuuu'-'MM'-'dd'T'HH':'mm':'ss;FFFFFFFFF")

func setLocalDateTimeFraction(b *localDateTimeBucket, v int) { b.time.fractionalSeconds = v }
