package datetext

import (
	"bytes"

	"github.com/nodatime/datetext/errors"
	"github.com/nodatime/datetext/internal/cursor"
)

// offsetBucket accumulates the magnitude components and the sign separately;
// the sign applies to the whole offset, not to individual components.
type offsetBucket struct {
	hours    int
	minutes  int
	seconds  int
	negative bool
}

func (b *offsetBucket) calculateValue(usedFields patternFields, text string) ParseResult[Offset] {
	seconds := b.hours*3600 + b.minutes*60 + b.seconds
	if b.negative {
		seconds = -seconds
	}
	offset, err := NewOffset(seconds)
	if err != nil {
		return resultOverallValueOutOfRange[Offset](text, "Offset")
	}
	return ParseSuccess(offset)
}

func offsetSignHandler(required bool) patternCharacterHandler[Offset, *offsetBucket] {
	return func(pc *cursor.Pattern, b *steppedPatternBuilder[Offset, *offsetBucket]) error {
		if err := b.addField(fieldSign, pc.Current()); err != nil {
			return err
		}
		setter := func(bucket *offsetBucket, negative bool) { bucket.negative = negative }
		nonNegative := func(value Offset) bool { return !value.IsNegative() }
		if required {
			b.addRequiredSign(setter, nonNegative)
		} else {
			b.addNegativeOnlySign(setter, nonNegative)
		}
		return nil
	}
}

var offsetHandlers = map[rune]patternCharacterHandler[Offset, *offsetBucket]{
	'%':  handlePercent[Offset, *offsetBucket],
	'\'': handleQuote[Offset, *offsetBucket],
	'"':  handleQuote[Offset, *offsetBucket],
	'\\': handleBackslash[Offset, *offsetBucket],
	':':  handleTimeSeparator[Offset, *offsetBucket],
	'+':  offsetSignHandler(true),
	'-':  offsetSignHandler(false),
	'H': handlePaddedField[Offset](2, fieldHours24, 0, 18, Offset.HourComponent,
		func(b *offsetBucket, v int) { b.hours = v }),
	'm': handlePaddedField[Offset](2, fieldMinutes, 0, 59, Offset.MinuteComponent,
		func(b *offsetBucket, v int) { b.minutes = v }),
	's': handlePaddedField[Offset](2, fieldSeconds, 0, 59, Offset.SecondComponent,
		func(b *offsetBucket, v int) { b.seconds = v }),
}

// zOffsetPattern is the fixed pattern matching exactly "Z" for a zero
// offset. It exists so the general-with-Z standard pattern can be a plain
// composite component.
type zOffsetPattern struct{}

func (zOffsetPattern) Parse(text string) ParseResult[Offset] {
	if text == "Z" {
		return ParseSuccess(ZeroOffset)
	}
	c := cursor.NewValue(text)
	c.MoveNext()
	return resultMismatchedCharacter[Offset](c, 'Z')
}

func (zOffsetPattern) Format(value Offset) string {
	var buf bytes.Buffer
	zOffsetPattern{}.AppendFormat(value, &buf)
	return buf.String()
}

func (zOffsetPattern) AppendFormat(value Offset, buf *bytes.Buffer) {
	buf.WriteByte('Z')
}

func (zOffsetPattern) parsePartial(c *cursor.Value) ParseResult[Offset] {
	if c.Match('Z') {
		return ParseSuccess(ZeroOffset)
	}
	return resultMismatchedCharacter[Offset](c, 'Z')
}

type offsetPatternParser struct{}

const (
	offsetLongPatternText   = "+HH':'mm':'ss"
	offsetMediumPatternText = "+HH':'mm"
	offsetShortPatternText  = "+HH"
)

func (p *offsetPatternParser) parsePattern(patternText string, culture *Culture) (Pattern[Offset], error) {
	if patternText == "" {
		return nil, errors.NewPattern(errors.ErrEmptyPattern, patternText, "the pattern text is empty")
	}
	if len([]rune(patternText)) == 1 {
		switch patternText {
		case "l":
			patternText = offsetLongPatternText
		case "m":
			patternText = offsetMediumPatternText
		case "s":
			patternText = offsetShortPatternText
		case "g":
			return p.buildGeneralPattern(culture, false)
		case "G":
			return p.buildGeneralPattern(culture, true)
		default:
			return nil, errors.NewPattern(errors.ErrUnknownStandardFormat, patternText,
				"the standard format %q is not valid for offsets", patternText)
		}
	}
	return p.parseCustom(patternText, culture)
}

func (p *offsetPatternParser) parseCustom(patternText string, culture *Culture) (Pattern[Offset], error) {
	builder := newSteppedPatternBuilder(culture, patternText, func() *offsetBucket {
		return &offsetBucket{}
	})
	if err := builder.parseCustomPattern(offsetHandlers); err != nil {
		return nil, err
	}
	if err := builder.validateUsedFields(); err != nil {
		return nil, err
	}
	return builder.build(), nil
}

// buildGeneralPattern assembles the general offset pattern: most precise
// component first for parsing, least precise probed first for formatting so
// a value formats with exactly the precision it needs.
func (p *offsetPatternParser) buildGeneralPattern(culture *Culture, withZ bool) (Pattern[Offset], error) {
	long, err := p.parseCustom(offsetLongPatternText, culture)
	if err != nil {
		return nil, err
	}
	medium, err := p.parseCustom(offsetMediumPatternText, culture)
	if err != nil {
		return nil, err
	}
	short, err := p.parseCustom(offsetShortPatternText, culture)
	if err != nil {
		return nil, err
	}
	var builder CompositePatternBuilder[Offset]
	builder.Add(long, func(value Offset) bool { return true })
	builder.Add(medium, func(value Offset) bool { return value.SecondComponent() == 0 })
	builder.Add(short, func(value Offset) bool {
		return value.SecondComponent() == 0 && value.MinuteComponent() == 0
	})
	// Added last so formatting probes it first: a zero offset formats as "Z"
	// rather than "+00". Parsing still reaches it, since the numeric
	// components fail "Z" with a resumable error.
	if withZ {
		builder.Add(zOffsetPattern{}, func(value Offset) bool { return value == ZeroOffset })
	}
	return builder.Build()
}

// embeddedOffsetHandler compiles the text between o< and > as a full offset
// pattern and wires it into the parent as one step. Shared by every type
// carrying an offset alongside other fields.
func embeddedOffsetHandler[TResult any, TBucket parseBucket[TResult]](
	offsetGetter func(TResult) Offset,
	assign func(bucket TBucket, offset Offset),
) patternCharacterHandler[TResult, TBucket] {
	return func(pc *cursor.Pattern, b *steppedPatternBuilder[TResult, TBucket]) error {
		embeddedText, err := pc.GetEmbeddedPattern()
		if err != nil {
			return err
		}
		if err := b.addField(fieldEmbeddedOffset, 'o'); err != nil {
			return err
		}
		inner, err := (&offsetPatternParser{}).parsePattern(embeddedText, b.culture)
		if err != nil {
			return err
		}
		addEmbeddedPattern(b, inner.(partialPattern[Offset]), assign, offsetGetter)
		return nil
	}
}

var offsetCaches = newCultureCaches[Offset](&offsetPatternParser{})

// OffsetPattern parses and formats Offset values.
type OffsetPattern struct {
	patternText string
	culture     *Culture
	pattern     Pattern[Offset]
}

// NewOffsetPattern compiles pattern text for the given culture.
func NewOffsetPattern(patternText string, culture *Culture) (*OffsetPattern, error) {
	pattern, err := offsetCaches.forCulture(culture).parsePattern(patternText)
	if err != nil {
		return nil, err
	}
	return &OffsetPattern{patternText: patternText, culture: culture, pattern: pattern}, nil
}

// NewOffsetPatternInvariant compiles pattern text for the invariant culture.
func NewOffsetPatternInvariant(patternText string) (*OffsetPattern, error) {
	return NewOffsetPattern(patternText, CultureInvariant())
}

// PatternText returns the text this pattern was created with.
func (p *OffsetPattern) PatternText() string { return p.patternText }

// Culture returns the culture used for text and separators.
func (p *OffsetPattern) Culture() *Culture { return p.culture }

// Parse parses the whole of the given text.
func (p *OffsetPattern) Parse(text string) ParseResult[Offset] {
	return p.pattern.Parse(text)
}

// Format returns the value formatted according to the pattern.
func (p *OffsetPattern) Format(value Offset) string {
	return p.pattern.Format(value)
}

// AppendFormat appends the formatted value to the buffer.
func (p *OffsetPattern) AppendFormat(value Offset, buf *bytes.Buffer) {
	p.pattern.AppendFormat(value, buf)
}

// WithCulture compiles the same pattern text against a different culture.
func (p *OffsetPattern) WithCulture(culture *Culture) (*OffsetPattern, error) {
	return NewOffsetPattern(p.patternText, culture)
}

func mustOffsetPattern(patternText string) *OffsetPattern {
	p, err := NewOffsetPatternInvariant(patternText)
	if err != nil {
		panic(err)
	}
	return p
}

// OffsetPatternGeneral formats with exactly the precision the value needs
// and parses any of the general forms.
var OffsetPatternGeneral = mustOffsetPattern("g")

// OffsetPatternGeneralWithZ is the general pattern with "Z" for zero.
var OffsetPatternGeneralWithZ = mustOffsetPattern("G")
