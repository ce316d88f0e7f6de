package datetext

import (
	"bytes"

	"github.com/nodatime/datetext/errors"
	"github.com/nodatime/datetext/internal/cursor"
)

var defaultAnnualDateTemplate = func() AnnualDate {
	a, err := NewAnnualDate(1, 1)
	if err != nil {
		panic(err)
	}
	return a
}()

// annualDateBucket accumulates the month and day fields. The date sub-bucket
// exists only so the shared month handler has somewhere to write; year and
// calendar fields in it are never used.
type annualDateBucket struct {
	templateValue AnnualDate
	date          localDateBucket
}

func annualDateDateBucket(b *annualDateBucket) *localDateBucket { return &b.date }

func (b *annualDateBucket) calculateValue(usedFields patternFields, text string) ParseResult[AnnualDate] {
	month := b.templateValue.Month()
	switch {
	case usedFields.has(fieldMonthNumeric | fieldMonthText):
		if b.date.monthNumeric != b.date.monthText {
			return resultInconsistentMonthValues[AnnualDate](text)
		}
		month = b.date.monthNumeric
	case usedFields.has(fieldMonthNumeric):
		month = b.date.monthNumeric
	case usedFields.has(fieldMonthText):
		month = b.date.monthText
	}

	day := b.templateValue.Day()
	if usedFields.has(fieldDayOfMonth) {
		day = b.date.dayOfMonth
	}

	value, err := NewAnnualDate(month, day)
	if err != nil {
		if month < 1 || month > 12 {
			return resultFieldValueOutOfRangePostParse[AnnualDate](text, month, 'M')
		}
		// Day validity is judged against a leap year so 02-29 is allowed.
		return resultDayOfMonthOutOfRange[AnnualDate](text, day, month, 2000)
	}
	return ParseSuccess(value)
}

// annualDateDayHandler is narrower than the shared day handler: an annual
// date has no day of week, so only the numeric counts are valid.
func annualDateDayHandler(pc *cursor.Pattern, b *steppedPatternBuilder[AnnualDate, *annualDateBucket]) error {
	count, err := pc.GetRepeatCount(2)
	if err != nil {
		return err
	}
	if err := b.addField(fieldDayOfMonth, 'd'); err != nil {
		return err
	}
	b.addParseValueAction(count, 2, 'd', 1, 31, func(bucket *annualDateBucket, v int) {
		bucket.date.dayOfMonth = v
	})
	b.addFormatLeftPad(count, AnnualDate.Day, true, true)
	return nil
}

var annualDateHandlers = map[rune]patternCharacterHandler[AnnualDate, *annualDateBucket]{
	'%':  handlePercent[AnnualDate, *annualDateBucket],
	'\'': handleQuote[AnnualDate, *annualDateBucket],
	'"':  handleQuote[AnnualDate, *annualDateBucket],
	'\\': handleBackslash[AnnualDate, *annualDateBucket],
	'/':  handleDateSeparator[AnnualDate, *annualDateBucket],
	'M':  monthHandler[AnnualDate](AnnualDate.Month, annualDateDateBucket),
	'd':  annualDateDayHandler,
}

type annualDatePatternParser struct {
	templateValue AnnualDate
}

func (p *annualDatePatternParser) parsePattern(patternText string, culture *Culture) (Pattern[AnnualDate], error) {
	if patternText == "" {
		return nil, errors.NewPattern(errors.ErrEmptyPattern, patternText, "the pattern text is empty")
	}
	if len([]rune(patternText)) == 1 {
		switch patternText {
		case "G":
			patternText = "MM'-'dd"
		default:
			return nil, errors.NewPattern(errors.ErrUnknownStandardFormat, patternText,
				"the standard format %q is not valid for annual dates", patternText)
		}
	}
	builder := newSteppedPatternBuilder(culture, patternText, func() *annualDateBucket {
		return &annualDateBucket{templateValue: p.templateValue}
	})
	if err := builder.parseCustomPattern(annualDateHandlers); err != nil {
		return nil, err
	}
	if err := builder.validateUsedFields(); err != nil {
		return nil, err
	}
	return builder.build(), nil
}

var annualDateCaches = newCultureCaches[AnnualDate](&annualDatePatternParser{
	templateValue: defaultAnnualDateTemplate,
})

// AnnualDatePattern parses and formats AnnualDate values.
type AnnualDatePattern struct {
	patternText   string
	culture       *Culture
	templateValue AnnualDate
	pattern       Pattern[AnnualDate]
}

// NewAnnualDatePattern compiles pattern text for the given culture. The
// template value supplies any fields the pattern does not touch.
func NewAnnualDatePattern(patternText string, culture *Culture, templateValue AnnualDate) (*AnnualDatePattern, error) {
	var pattern Pattern[AnnualDate]
	var err error
	if templateValue == defaultAnnualDateTemplate {
		pattern, err = annualDateCaches.forCulture(culture).parsePattern(patternText)
	} else {
		parser := &annualDatePatternParser{templateValue: templateValue}
		pattern, err = parser.parsePattern(patternText, culture)
	}
	if err != nil {
		return nil, err
	}
	return &AnnualDatePattern{
		patternText:   patternText,
		culture:       culture,
		templateValue: templateValue,
		pattern:       pattern,
	}, nil
}

// NewAnnualDatePatternInvariant compiles pattern text for the invariant
// culture with the default template value.
func NewAnnualDatePatternInvariant(patternText string) (*AnnualDatePattern, error) {
	return NewAnnualDatePattern(patternText, CultureInvariant(), defaultAnnualDateTemplate)
}

// PatternText returns the text this pattern was created with.
func (p *AnnualDatePattern) PatternText() string { return p.patternText }

// Culture returns the culture used for text and separators.
func (p *AnnualDatePattern) Culture() *Culture { return p.culture }

// Parse parses the whole of the given text.
func (p *AnnualDatePattern) Parse(text string) ParseResult[AnnualDate] {
	return p.pattern.Parse(text)
}

// Format returns the value formatted according to the pattern.
func (p *AnnualDatePattern) Format(value AnnualDate) string {
	return p.pattern.Format(value)
}

// AppendFormat appends the formatted value to the buffer.
func (p *AnnualDatePattern) AppendFormat(value AnnualDate, buf *bytes.Buffer) {
	p.pattern.AppendFormat(value, buf)
}

// WithCulture compiles the same pattern text against a different culture.
func (p *AnnualDatePattern) WithCulture(culture *Culture) (*AnnualDatePattern, error) {
	return NewAnnualDatePattern(p.patternText, culture, p.templateValue)
}

// WithTemplateValue compiles the same pattern text with a different template.
func (p *AnnualDatePattern) WithTemplateValue(templateValue AnnualDate) (*AnnualDatePattern, error) {
	return NewAnnualDatePattern(p.patternText, p.culture, templateValue)
}

func mustAnnualDatePattern(patternText string) *AnnualDatePattern {
	p, err := NewAnnualDatePatternInvariant(patternText)
	if err != nil {
		panic(err)
	}
	return p
}

// AnnualDatePatternISO is the invariant MM-dd pattern.
var AnnualDatePatternISO = mustAnnualDatePattern("MM'-'dd")
