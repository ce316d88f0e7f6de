package datetext

import (
	"bytes"

	"github.com/nodatime/datetext/errors"
)

type offsetDateBucket struct {
	date   *localDateBucket
	offset Offset
}

func (b *offsetDateBucket) calculateValue(usedFields patternFields, text string) ParseResult[OffsetDate] {
	dateResult := b.date.calculateValue(usedFields, text)
	if !dateResult.Success() {
		return convertFailure[OffsetDate](dateResult)
	}
	return ParseSuccess(NewOffsetDate(dateResult.value, b.offset))
}

func offsetDateYear(d OffsetDate) int                 { return d.Date().Year() }
func offsetDateYearOfEra(d OffsetDate) int            { return d.Date().YearOfEra() }
func offsetDateMonth(d OffsetDate) int                { return d.Date().Month() }
func offsetDateDay(d OffsetDate) int                  { return d.Date().Day() }
func offsetDateDayOfWeek(d OffsetDate) int            { return d.Date().DayOfWeek() }
func offsetDateEra(d OffsetDate) Era                  { return d.Date().Era() }
func offsetDateCalendar(d OffsetDate) *CalendarSystem { return d.Date().Calendar() }

func offsetDateDateBucket(b *offsetDateBucket) *localDateBucket { return b.date }

var offsetDateHandlers = map[rune]patternCharacterHandler[OffsetDate, *offsetDateBucket]{
	'%':  handlePercent[OffsetDate, *offsetDateBucket],
	'\'': handleQuote[OffsetDate, *offsetDateBucket],
	'"':  handleQuote[OffsetDate, *offsetDateBucket],
	'\\': handleBackslash[OffsetDate, *offsetDateBucket],
	'/':  handleDateSeparator[OffsetDate, *offsetDateBucket],
	'y':  yearHandler[OffsetDate](offsetDateYear, offsetDateDateBucket),
	'u':  absoluteYearHandler[OffsetDate](offsetDateYear, offsetDateDateBucket),
	'Y':  yearOfEraHandler[OffsetDate](offsetDateYearOfEra, offsetDateDateBucket),
	'M':  monthHandler[OffsetDate](offsetDateMonth, offsetDateDateBucket),
	'd':  dayHandler[OffsetDate](offsetDateDay, offsetDateDayOfWeek, offsetDateDateBucket),
	'g':  eraHandler[OffsetDate](offsetDateEra, offsetDateDateBucket),
	'c':  calendarHandler[OffsetDate](offsetDateCalendar, offsetDateDateBucket),
	'o': embeddedOffsetHandler[OffsetDate](OffsetDate.Offset,
		func(b *offsetDateBucket, offset Offset) { b.offset = offset }),
}

type offsetDatePatternParser struct {
	templateValue   OffsetDate
	twoDigitYearMax int
}

func (p *offsetDatePatternParser) parsePattern(patternText string, culture *Culture) (Pattern[OffsetDate], error) {
	if patternText == "" {
		return nil, errors.NewPattern(errors.ErrEmptyPattern, patternText, "the pattern text is empty")
	}
	if len([]rune(patternText)) == 1 {
		switch patternText {
		case "G":
			patternText = "uuuu'-'MM'-'ddo<G>"
		case "r":
			patternText = "uuuu'-'MM'-'ddo<G> '('c')'"
		default:
			return nil, errors.NewPattern(errors.ErrUnknownStandardFormat, patternText,
				"the standard format %q is not valid for offset dates", patternText)
		}
	}
	builder := newSteppedPatternBuilder(culture, patternText, func() *offsetDateBucket {
		return &offsetDateBucket{
			date:   newLocalDateBucket(p.templateValue.Date(), p.twoDigitYearMax),
			offset: p.templateValue.Offset(),
		}
	})
	if err := builder.parseCustomPattern(offsetDateHandlers); err != nil {
		return nil, err
	}
	if err := builder.validateUsedFields(); err != nil {
		return nil, err
	}
	return builder.build(), nil
}

var defaultOffsetDateTemplate = NewOffsetDate(defaultLocalDateTemplate, ZeroOffset)

var offsetDateCaches = newCultureCaches[OffsetDate](&offsetDatePatternParser{
	templateValue:   defaultOffsetDateTemplate,
	twoDigitYearMax: defaultTwoDigitYearMax,
})

// OffsetDatePattern parses and formats OffsetDate values.
type OffsetDatePattern struct {
	patternText     string
	culture         *Culture
	templateValue   OffsetDate
	twoDigitYearMax int
	pattern         Pattern[OffsetDate]
}

// NewOffsetDatePattern compiles pattern text for the given culture.
func NewOffsetDatePattern(patternText string, culture *Culture, templateValue OffsetDate) (*OffsetDatePattern, error) {
	return makeOffsetDatePattern(patternText, culture, templateValue, defaultTwoDigitYearMax)
}

// NewOffsetDatePatternInvariant compiles pattern text for the invariant
// culture with the default template value.
func NewOffsetDatePatternInvariant(patternText string) (*OffsetDatePattern, error) {
	return NewOffsetDatePattern(patternText, CultureInvariant(), defaultOffsetDateTemplate)
}

func makeOffsetDatePattern(patternText string, culture *Culture, templateValue OffsetDate, twoDigitYearMax int) (*OffsetDatePattern, error) {
	var pattern Pattern[OffsetDate]
	var err error
	if templateValue == defaultOffsetDateTemplate && twoDigitYearMax == defaultTwoDigitYearMax {
		pattern, err = offsetDateCaches.forCulture(culture).parsePattern(patternText)
	} else {
		parser := &offsetDatePatternParser{templateValue: templateValue, twoDigitYearMax: twoDigitYearMax}
		pattern, err = parser.parsePattern(patternText, culture)
	}
	if err != nil {
		return nil, err
	}
	return &OffsetDatePattern{
		patternText:     patternText,
		culture:         culture,
		templateValue:   templateValue,
		twoDigitYearMax: twoDigitYearMax,
		pattern:         pattern,
	}, nil
}

// PatternText returns the text this pattern was created with.
func (p *OffsetDatePattern) PatternText() string { return p.patternText }

// Culture returns the culture used for text and separators.
func (p *OffsetDatePattern) Culture() *Culture { return p.culture }

// Parse parses the whole of the given text.
func (p *OffsetDatePattern) Parse(text string) ParseResult[OffsetDate] {
	return p.pattern.Parse(text)
}

// Format returns the value formatted according to the pattern.
func (p *OffsetDatePattern) Format(value OffsetDate) string {
	return p.pattern.Format(value)
}

// AppendFormat appends the formatted value to the buffer.
func (p *OffsetDatePattern) AppendFormat(value OffsetDate, buf *bytes.Buffer) {
	p.pattern.AppendFormat(value, buf)
}

// WithCulture compiles the same pattern text against a different culture.
func (p *OffsetDatePattern) WithCulture(culture *Culture) (*OffsetDatePattern, error) {
	return makeOffsetDatePattern(p.patternText, culture, p.templateValue, p.twoDigitYearMax)
}

// WithTemplateValue compiles the same pattern text with a different template.
func (p *OffsetDatePattern) WithTemplateValue(templateValue OffsetDate) (*OffsetDatePattern, error) {
	return makeOffsetDatePattern(p.patternText, p.culture, templateValue, p.twoDigitYearMax)
}

func mustOffsetDatePattern(patternText string) *OffsetDatePattern {
	p, err := NewOffsetDatePatternInvariant(patternText)
	if err != nil {
		panic(err)
	}
	return p
}

// OffsetDatePatternGeneralISO is the ISO-8601 date pattern followed by the
// general offset, uuuu-MM-dd+HH:mm or uuuu-MM-ddZ.
var OffsetDatePatternGeneralISO = mustOffsetDatePattern("G")
