package datetext

import (
	"bytes"

	"github.com/nodatime/datetext/errors"
)

var defaultYearMonthTemplate = func() YearMonth {
	ym, err := NewYearMonth(2000, 1)
	if err != nil {
		panic(err)
	}
	return ym
}()

// yearMonthBucket accumulates year and month fields. The date sub-bucket is
// the write target for the shared date handlers; its day fields stay unused.
type yearMonthBucket struct {
	templateValue   YearMonth
	twoDigitYearMax int
	date            localDateBucket
}

func yearMonthDateBucket(b *yearMonthBucket) *localDateBucket { return &b.date }

func (b *yearMonthBucket) calculateValue(usedFields patternFields, text string) ParseResult[YearMonth] {
	calendar := b.date.calendar
	template := b.templateValue
	if calendar == nil {
		calendar = template.Calendar()
	}

	year := template.Year()
	if usedFields.has(fieldYearOfEra) {
		era := template.Era()
		if usedFields.has(fieldEra) {
			era = b.date.era
		}
		absolute, err := calendar.AbsoluteYear(b.date.yearOfEra, era)
		if err != nil {
			return resultFieldValueOutOfRangePostParse[YearMonth](text, b.date.yearOfEra, 'Y')
		}
		if usedFields.has(fieldYear) && b.date.year != absolute {
			return resultInconsistentValues[YearMonth](text, 'u', 'Y')
		}
		year = absolute
	} else if usedFields.has(fieldYear) {
		year = b.date.year
	}
	if usedFields.has(fieldYearTwoDigits) {
		year = absoluteYearFromTwoDigits(year, b.date.yearTwoDigits, b.twoDigitYearMax)
	}
	if year < calendar.MinYear() || year > calendar.MaxYear() {
		return resultFieldValueOutOfRangePostParse[YearMonth](text, year, 'u')
	}

	month := template.Month()
	switch {
	case usedFields.has(fieldMonthNumeric | fieldMonthText):
		if b.date.monthNumeric != b.date.monthText {
			return resultInconsistentMonthValues[YearMonth](text)
		}
		month = b.date.monthNumeric
	case usedFields.has(fieldMonthNumeric):
		month = b.date.monthNumeric
	case usedFields.has(fieldMonthText):
		month = b.date.monthText
	}

	value, err := NewYearMonthInCalendar(calendar, year, month)
	if err != nil {
		return resultFieldValueOutOfRangePostParse[YearMonth](text, month, 'M')
	}
	return ParseSuccess(value)
}

var yearMonthHandlers = map[rune]patternCharacterHandler[YearMonth, *yearMonthBucket]{
	'%':  handlePercent[YearMonth, *yearMonthBucket],
	'\'': handleQuote[YearMonth, *yearMonthBucket],
	'"':  handleQuote[YearMonth, *yearMonthBucket],
	'\\': handleBackslash[YearMonth, *yearMonthBucket],
	'/':  handleDateSeparator[YearMonth, *yearMonthBucket],
	'y':  yearHandler[YearMonth](YearMonth.Year, yearMonthDateBucket),
	'u':  absoluteYearHandler[YearMonth](YearMonth.Year, yearMonthDateBucket),
	'Y':  yearOfEraHandler[YearMonth](YearMonth.YearOfEra, yearMonthDateBucket),
	'M':  monthHandler[YearMonth](YearMonth.Month, yearMonthDateBucket),
	'g':  eraHandler[YearMonth](YearMonth.Era, yearMonthDateBucket),
	'c':  calendarHandler[YearMonth](YearMonth.Calendar, yearMonthDateBucket),
}

type yearMonthPatternParser struct {
	templateValue   YearMonth
	twoDigitYearMax int
}

func (p *yearMonthPatternParser) parsePattern(patternText string, culture *Culture) (Pattern[YearMonth], error) {
	if patternText == "" {
		return nil, errors.NewPattern(errors.ErrEmptyPattern, patternText, "the pattern text is empty")
	}
	if len([]rune(patternText)) == 1 {
		switch patternText {
		case "G":
			patternText = "uuuu'-'MM"
		case "g":
			patternText = "MMMM uuuu"
		default:
			return nil, errors.NewPattern(errors.ErrUnknownStandardFormat, patternText,
				"the standard format %q is not valid for year/months", patternText)
		}
	}
	builder := newSteppedPatternBuilder(culture, patternText, func() *yearMonthBucket {
		return &yearMonthBucket{templateValue: p.templateValue, twoDigitYearMax: p.twoDigitYearMax}
	})
	if err := builder.parseCustomPattern(yearMonthHandlers); err != nil {
		return nil, err
	}
	if err := builder.validateUsedFields(); err != nil {
		return nil, err
	}
	return builder.build(), nil
}

var yearMonthCaches = newCultureCaches[YearMonth](&yearMonthPatternParser{
	templateValue:   defaultYearMonthTemplate,
	twoDigitYearMax: defaultTwoDigitYearMax,
})

// YearMonthPattern parses and formats YearMonth values.
type YearMonthPattern struct {
	patternText     string
	culture         *Culture
	templateValue   YearMonth
	twoDigitYearMax int
	pattern         Pattern[YearMonth]
}

// NewYearMonthPattern compiles pattern text for the given culture. The
// template value supplies any fields the pattern does not touch.
func NewYearMonthPattern(patternText string, culture *Culture, templateValue YearMonth) (*YearMonthPattern, error) {
	return makeYearMonthPattern(patternText, culture, templateValue, defaultTwoDigitYearMax)
}

// NewYearMonthPatternInvariant compiles pattern text for the invariant
// culture with the default template value.
func NewYearMonthPatternInvariant(patternText string) (*YearMonthPattern, error) {
	return NewYearMonthPattern(patternText, CultureInvariant(), defaultYearMonthTemplate)
}

func makeYearMonthPattern(patternText string, culture *Culture, templateValue YearMonth, twoDigitYearMax int) (*YearMonthPattern, error) {
	var pattern Pattern[YearMonth]
	var err error
	if templateValue == defaultYearMonthTemplate && twoDigitYearMax == defaultTwoDigitYearMax {
		pattern, err = yearMonthCaches.forCulture(culture).parsePattern(patternText)
	} else {
		parser := &yearMonthPatternParser{templateValue: templateValue, twoDigitYearMax: twoDigitYearMax}
		pattern, err = parser.parsePattern(patternText, culture)
	}
	if err != nil {
		return nil, err
	}
	return &YearMonthPattern{
		patternText:     patternText,
		culture:         culture,
		templateValue:   templateValue,
		twoDigitYearMax: twoDigitYearMax,
		pattern:         pattern,
	}, nil
}

// PatternText returns the text this pattern was created with.
func (p *YearMonthPattern) PatternText() string { return p.patternText }

// Culture returns the culture used for text and separators.
func (p *YearMonthPattern) Culture() *Culture { return p.culture }

// Parse parses the whole of the given text.
func (p *YearMonthPattern) Parse(text string) ParseResult[YearMonth] {
	return p.pattern.Parse(text)
}

// Format returns the value formatted according to the pattern.
func (p *YearMonthPattern) Format(value YearMonth) string {
	return p.pattern.Format(value)
}

// AppendFormat appends the formatted value to the buffer.
func (p *YearMonthPattern) AppendFormat(value YearMonth, buf *bytes.Buffer) {
	p.pattern.AppendFormat(value, buf)
}

// WithCulture compiles the same pattern text against a different culture.
func (p *YearMonthPattern) WithCulture(culture *Culture) (*YearMonthPattern, error) {
	return makeYearMonthPattern(p.patternText, culture, p.templateValue, p.twoDigitYearMax)
}

// WithTemplateValue compiles the same pattern text with a different template.
func (p *YearMonthPattern) WithTemplateValue(templateValue YearMonth) (*YearMonthPattern, error) {
	return makeYearMonthPattern(p.patternText, p.culture, templateValue, p.twoDigitYearMax)
}

// WithTwoDigitYearMax compiles the same pattern text with a different
// two-digit year pivot.
func (p *YearMonthPattern) WithTwoDigitYearMax(twoDigitYearMax int) (*YearMonthPattern, error) {
	return makeYearMonthPattern(p.patternText, p.culture, p.templateValue, twoDigitYearMax)
}

func mustYearMonthPattern(patternText string) *YearMonthPattern {
	p, err := NewYearMonthPatternInvariant(patternText)
	if err != nil {
		panic(err)
	}
	return p
}

// YearMonthPatternISO is the invariant uuuu-MM pattern.
var YearMonthPatternISO = mustYearMonthPattern("uuuu'-'MM")
