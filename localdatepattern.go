package datetext

import (
	"bytes"

	"github.com/nodatime/datetext/errors"
)

// defaultLocalDateTemplate provides field values a pattern does not parse.
var defaultLocalDateTemplate = func() LocalDate {
	d, err := NewLocalDate(2000, 1, 1)
	if err != nil {
		panic(err)
	}
	return d
}()

// localDateHandlers is built once; handler closures are pure registration
// logic, so the table is safe to share between compilations.
var localDateHandlers = map[rune]patternCharacterHandler[LocalDate, *localDateBucket]{
	'%':  handlePercent[LocalDate, *localDateBucket],
	'\'': handleQuote[LocalDate, *localDateBucket],
	'"':  handleQuote[LocalDate, *localDateBucket],
	'\\': handleBackslash[LocalDate, *localDateBucket],
	'/':  handleDateSeparator[LocalDate, *localDateBucket],
	'y':  yearHandler[LocalDate](LocalDate.Year, dateBucketSelf),
	'u':  absoluteYearHandler[LocalDate](LocalDate.Year, dateBucketSelf),
	'Y':  yearOfEraHandler[LocalDate](LocalDate.YearOfEra, dateBucketSelf),
	'M':  monthHandler[LocalDate](LocalDate.Month, dateBucketSelf),
	'd':  dayHandler[LocalDate](LocalDate.Day, LocalDate.DayOfWeek, dateBucketSelf),
	'g':  eraHandler[LocalDate](LocalDate.Era, dateBucketSelf),
	'c':  calendarHandler[LocalDate](LocalDate.Calendar, dateBucketSelf),
}

// dateBucketSelf is the accessor used when the date bucket is not a
// sub-bucket but the whole bucket.
func dateBucketSelf(b *localDateBucket) *localDateBucket { return b }

type localDatePatternParser struct {
	templateValue   LocalDate
	twoDigitYearMax int
}

func (p *localDatePatternParser) parsePattern(patternText string, culture *Culture) (Pattern[LocalDate], error) {
	if patternText == "" {
		return nil, errors.NewPattern(errors.ErrEmptyPattern, patternText, "the pattern text is empty")
	}
	if len([]rune(patternText)) == 1 {
		switch patternText {
		case "d":
			patternText = culture.ShortDatePattern()
		case "D":
			patternText = culture.LongDatePattern()
		case "r":
			patternText = "uuuu'-'MM'-'dd '('c')'"
		default:
			return nil, errors.NewPattern(errors.ErrUnknownStandardFormat, patternText,
				"the standard format %q is not valid for dates", patternText)
		}
	}
	builder := newSteppedPatternBuilder(culture, patternText, func() *localDateBucket {
		return newLocalDateBucket(p.templateValue, p.twoDigitYearMax)
	})
	if err := builder.parseCustomPattern(localDateHandlers); err != nil {
		return nil, err
	}
	if err := builder.validateUsedFields(); err != nil {
		return nil, err
	}
	return builder.build(), nil
}

var localDateCaches = newCultureCaches[LocalDate](&localDatePatternParser{
	templateValue:   defaultLocalDateTemplate,
	twoDigitYearMax: defaultTwoDigitYearMax,
})

// LocalDatePattern parses and formats LocalDate values. A pattern is
// immutable once created; the With* methods compile a new one.
type LocalDatePattern struct {
	patternText     string
	culture         *Culture
	templateValue   LocalDate
	twoDigitYearMax int
	pattern         Pattern[LocalDate]
}

// NewLocalDatePattern compiles pattern text for the given culture. The
// template value supplies any fields the pattern does not touch.
func NewLocalDatePattern(patternText string, culture *Culture, templateValue LocalDate) (*LocalDatePattern, error) {
	return makeLocalDatePattern(patternText, culture, templateValue, defaultTwoDigitYearMax)
}

// NewLocalDatePatternInvariant compiles pattern text for the invariant
// culture with the default template value.
func NewLocalDatePatternInvariant(patternText string) (*LocalDatePattern, error) {
	return NewLocalDatePattern(patternText, CultureInvariant(), defaultLocalDateTemplate)
}

func makeLocalDatePattern(patternText string, culture *Culture, templateValue LocalDate, twoDigitYearMax int) (*LocalDatePattern, error) {
	var pattern Pattern[LocalDate]
	var err error
	if templateValue == defaultLocalDateTemplate && twoDigitYearMax == defaultTwoDigitYearMax {
		pattern, err = localDateCaches.forCulture(culture).parsePattern(patternText)
	} else {
		parser := &localDatePatternParser{templateValue: templateValue, twoDigitYearMax: twoDigitYearMax}
		pattern, err = parser.parsePattern(patternText, culture)
	}
	if err != nil {
		return nil, err
	}
	return &LocalDatePattern{
		patternText:     patternText,
		culture:         culture,
		templateValue:   templateValue,
		twoDigitYearMax: twoDigitYearMax,
		pattern:         pattern,
	}, nil
}

// PatternText returns the text this pattern was created with.
func (p *LocalDatePattern) PatternText() string { return p.patternText }

// Culture returns the culture used for text and separators.
func (p *LocalDatePattern) Culture() *Culture { return p.culture }

// Parse parses the whole of the given text.
func (p *LocalDatePattern) Parse(text string) ParseResult[LocalDate] {
	return p.pattern.Parse(text)
}

// Format returns the value formatted according to the pattern.
func (p *LocalDatePattern) Format(value LocalDate) string {
	return p.pattern.Format(value)
}

// AppendFormat appends the formatted value to the buffer.
func (p *LocalDatePattern) AppendFormat(value LocalDate, buf *bytes.Buffer) {
	p.pattern.AppendFormat(value, buf)
}

// WithCulture compiles the same pattern text against a different culture.
func (p *LocalDatePattern) WithCulture(culture *Culture) (*LocalDatePattern, error) {
	return makeLocalDatePattern(p.patternText, culture, p.templateValue, p.twoDigitYearMax)
}

// WithTemplateValue compiles the same pattern text with a different template.
func (p *LocalDatePattern) WithTemplateValue(templateValue LocalDate) (*LocalDatePattern, error) {
	return makeLocalDatePattern(p.patternText, p.culture, templateValue, p.twoDigitYearMax)
}

// WithTwoDigitYearMax compiles the same pattern text with a different
// two-digit year pivot.
func (p *LocalDatePattern) WithTwoDigitYearMax(twoDigitYearMax int) (*LocalDatePattern, error) {
	return makeLocalDatePattern(p.patternText, p.culture, p.templateValue, twoDigitYearMax)
}

func mustLocalDatePattern(patternText string) *LocalDatePattern {
	p, err := NewLocalDatePatternInvariant(patternText)
	if err != nil {
		panic(err)
	}
	return p
}

// LocalDatePatternISO is the invariant ISO-8601 date pattern, uuuu-MM-dd.
var LocalDatePatternISO = mustLocalDatePattern("uuuu'-'MM'-'dd")
