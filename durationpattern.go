package datetext

import (
	"bytes"
	"math"

	"github.com/nodatime/datetext/errors"
	"github.com/nodatime/datetext/internal/cursor"
	"github.com/nodatime/datetext/internal/fmtutil"
)

// durationBucket accumulates a magnitude and a sign. The magnitude is summed
// unsigned so that the most negative duration, whose absolute value does not
// fit in int64, still round-trips.
type durationBucket struct {
	negative          bool
	totalUnit         int64
	totalValue        int64
	hours             int
	minutes           int
	seconds           int
	fractionalSeconds int
}

func (b *durationBucket) calculateValue(usedFields patternFields, text string) ParseResult[Duration] {
	var magnitude uint64
	overflow := false
	add := func(value, unit uint64) {
		if unit != 0 && value > math.MaxUint64/unit {
			overflow = true
			return
		}
		product := value * unit
		if magnitude > math.MaxUint64-product {
			overflow = true
			return
		}
		magnitude += product
	}
	if usedFields.has(fieldTotalDuration) {
		add(uint64(b.totalValue), uint64(b.totalUnit))
	}
	if usedFields.has(fieldHours24) {
		add(uint64(b.hours), uint64(nanosPerHour))
	}
	if usedFields.has(fieldMinutes) {
		add(uint64(b.minutes), uint64(nanosPerMinute))
	}
	if usedFields.has(fieldSeconds) {
		add(uint64(b.seconds), uint64(nanosPerSecond))
	}
	if usedFields.has(fieldFractionalSeconds) {
		add(uint64(b.fractionalSeconds), 1)
	}

	var nanos int64
	switch {
	case overflow:
		return resultOverallValueOutOfRange[Duration](text, "Duration")
	case b.negative && magnitude == uint64(math.MaxInt64)+1:
		nanos = math.MinInt64
	case b.negative && magnitude <= math.MaxInt64:
		nanos = -int64(magnitude)
	case !b.negative && magnitude <= math.MaxInt64:
		nanos = int64(magnitude)
	default:
		return resultOverallValueOutOfRange[Duration](text, "Duration")
	}
	return ParseSuccess(DurationFromNanoseconds(nanos))
}

func durationSignHandler(required bool) patternCharacterHandler[Duration, *durationBucket] {
	return func(pc *cursor.Pattern, b *steppedPatternBuilder[Duration, *durationBucket]) error {
		if err := b.addField(fieldSign, pc.Current()); err != nil {
			return err
		}
		setter := func(bucket *durationBucket, negative bool) { bucket.negative = negative }
		nonNegative := func(value Duration) bool { return !value.IsNegative() }
		if required {
			b.addRequiredSign(setter, nonNegative)
		} else {
			b.addNegativeOnlySign(setter, nonNegative)
		}
		return nil
	}
}

// durationTotalHandler handles the capital total-unit specifiers. A pattern
// may contain at most one: two totals would double-count the value.
func durationTotalHandler(unit int64, maxDigits int) patternCharacterHandler[Duration, *durationBucket] {
	return func(pc *cursor.Pattern, b *steppedPatternBuilder[Duration, *durationBucket]) error {
		patternChar := pc.Current()
		count, err := pc.GetRepeatCount(maxDigits)
		if err != nil {
			return err
		}
		if b.usedFields.has(fieldTotalDuration) {
			return errors.NewPattern(errors.ErrMultipleCapitalDurationFields, b.patternText,
				"only one total-unit specifier is allowed in a duration pattern")
		}
		if err := b.addField(fieldTotalDuration, patternChar); err != nil {
			return err
		}
		b.addParseInt64ValueAction(count, maxDigits, patternChar, 0, math.MaxInt64/unit,
			func(bucket *durationBucket, value int64) {
				bucket.totalValue = value
				bucket.totalUnit = unit
			})
		b.addFormatAction(func(value Duration, buf *bytes.Buffer) {
			fmtutil.LeftPadNonNegativeInt64(durationAbsUnits(value.Nanoseconds(), unit), count, buf)
		})
		return nil
	}
}

// durationComponentHandler handles the lowercase component specifiers, which
// carry the part of the magnitude below the next larger unit.
func durationComponentHandler(field patternFields, unit int64, modulus int64,
	maxValue int) patternCharacterHandler[Duration, *durationBucket] {
	getter := func(value Duration) int {
		return int(durationComponent(value.Nanoseconds(), unit, modulus))
	}
	return func(pc *cursor.Pattern, b *steppedPatternBuilder[Duration, *durationBucket]) error {
		patternChar := pc.Current()
		count, err := pc.GetRepeatCount(2)
		if err != nil {
			return err
		}
		if err := b.addField(field, patternChar); err != nil {
			return err
		}
		b.addParseValueAction(count, 2, patternChar, 0, maxValue, func(bucket *durationBucket, value int) {
			switch field {
			case fieldHours24:
				bucket.hours = value
			case fieldMinutes:
				bucket.minutes = value
			case fieldSeconds:
				bucket.seconds = value
			}
		})
		b.addFormatLeftPad(count, getter, true, true)
		return nil
	}
}

func durationFractionGetter(value Duration) int {
	return int(durationComponent(value.Nanoseconds(), 1, nanosPerSecond))
}

func setDurationFraction(b *durationBucket, v int) { b.fractionalSeconds = v }

var durationHandlers = map[rune]patternCharacterHandler[Duration, *durationBucket]{
	'%':  handlePercent[Duration, *durationBucket],
	'\'': handleQuote[Duration, *durationBucket],
	'"':  handleQuote[Duration, *durationBucket],
	'\\': handleBackslash[Duration, *durationBucket],
	':':  handleTimeSeparator[Duration, *durationBucket],
	'.':  periodHandler[Duration](durationFractionGetter, setDurationFraction),
	';':  commaDotHandler[Duration](durationFractionGetter, setDurationFraction),
	'+':  durationSignHandler(true),
	'-':  durationSignHandler(false),
	'D':  durationTotalHandler(nanosPerDay, 8),
	'H':  durationTotalHandler(nanosPerHour, 9),
	'M':  durationTotalHandler(nanosPerMinute, 10),
	'S':  durationTotalHandler(nanosPerSecond, 11),
	'h':  durationComponentHandler(fieldHours24, nanosPerHour, 24, 23),
	'm':  durationComponentHandler(fieldMinutes, nanosPerMinute, 60, 59),
	's':  durationComponentHandler(fieldSeconds, nanosPerSecond, 60, 59),
	'f':  fractionHandler[Duration](durationFractionGetter, setDurationFraction),
	'F':  fractionHandler[Duration](durationFractionGetter, setDurationFraction),
}

type durationPatternParser struct{}

func (durationPatternParser) parsePattern(patternText string, culture *Culture) (Pattern[Duration], error) {
	if patternText == "" {
		return nil, errors.NewPattern(errors.ErrEmptyPattern, patternText, "the pattern text is empty")
	}
	if len([]rune(patternText)) == 1 {
		switch patternText {
		case "o":
			patternText = "-D':'hh':'mm':'ss;FFFFFFFFF"
		default:
			return nil, errors.NewPattern(errors.ErrUnknownStandardFormat, patternText,
				"the standard format %q is not valid for durations", patternText)
		}
	}
	builder := newSteppedPatternBuilder(culture, patternText, func() *durationBucket {
		return &durationBucket{}
	})
	if err := builder.parseCustomPattern(durationHandlers); err != nil {
		return nil, err
	}
	if err := builder.validateUsedFields(); err != nil {
		return nil, err
	}
	return builder.build(), nil
}

var durationCaches = newCultureCaches[Duration](durationPatternParser{})

// DurationPattern parses and formats Duration values.
type DurationPattern struct {
	patternText string
	culture     *Culture
	pattern     Pattern[Duration]
}

// NewDurationPattern compiles pattern text for the given culture.
func NewDurationPattern(patternText string, culture *Culture) (*DurationPattern, error) {
	pattern, err := durationCaches.forCulture(culture).parsePattern(patternText)
	if err != nil {
		return nil, err
	}
	return &DurationPattern{patternText: patternText, culture: culture, pattern: pattern}, nil
}

// NewDurationPatternInvariant compiles pattern text for the invariant
// culture.
func NewDurationPatternInvariant(patternText string) (*DurationPattern, error) {
	return NewDurationPattern(patternText, CultureInvariant())
}

// PatternText returns the text this pattern was created with.
func (p *DurationPattern) PatternText() string { return p.patternText }

// Culture returns the culture used for text and separators.
func (p *DurationPattern) Culture() *Culture { return p.culture }

// Parse parses the whole of the given text.
func (p *DurationPattern) Parse(text string) ParseResult[Duration] {
	return p.pattern.Parse(text)
}

// Format returns the value formatted according to the pattern.
func (p *DurationPattern) Format(value Duration) string {
	return p.pattern.Format(value)
}

// AppendFormat appends the formatted value to the buffer.
func (p *DurationPattern) AppendFormat(value Duration, buf *bytes.Buffer) {
	p.pattern.AppendFormat(value, buf)
}

// WithCulture compiles the same pattern text against a different culture.
func (p *DurationPattern) WithCulture(culture *Culture) (*DurationPattern, error) {
	return NewDurationPattern(p.patternText, culture)
}

func mustDurationPattern(patternText string) *DurationPattern {
	p, err := NewDurationPatternInvariant(patternText)
	if err != nil {
		panic(err)
	}
	return p
}

// DurationPatternRoundtrip formats a duration as total days, time of day
// components and as many fraction digits as the value needs, with a leading
// sign only when negative.
var DurationPatternRoundtrip = mustDurationPattern("o")
