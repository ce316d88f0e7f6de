package datetext

import (
	"bytes"
	"strings"

	"github.com/nodatime/datetext/errors"
	"github.com/nodatime/datetext/internal/cursor"
)

type zonedDateTimeBucket struct {
	date          *localDateBucket
	time          *localTimeBucket
	embeddedLocal LocalDateTime
	zone          DateTimeZone
	resolver      Resolver
}

func (b *zonedDateTimeBucket) calculateValue(usedFields patternFields, text string) ParseResult[ZonedDateTime] {
	var local LocalDateTime
	if usedFields.has(fieldEmbeddedDate | fieldEmbeddedTime) {
		local = b.embeddedLocal
	} else {
		dateResult := b.date.calculateValue(usedFields, text)
		if !dateResult.Success() {
			return convertFailure[ZonedDateTime](dateResult)
		}
		timeResult := b.time.calculateValue(usedFields, text)
		if !timeResult.Success() {
			return convertFailure[ZonedDateTime](timeResult)
		}
		local = dateResult.value.At(timeResult.value)
	}
	mapping := b.zone.MapLocal(local)
	resolved, err := b.resolver(mapping)
	if err != nil {
		if mapping.Count() == 0 {
			return resultSkippedLocalTime[ZonedDateTime](text)
		}
		return resultAmbiguousLocalTime[ZonedDateTime](text)
	}
	return ParseSuccess(resolved)
}

func zonedDateTimeYear(z ZonedDateTime) int                 { return z.Date().Year() }
func zonedDateTimeYearOfEra(z ZonedDateTime) int            { return z.Date().YearOfEra() }
func zonedDateTimeMonth(z ZonedDateTime) int                { return z.Date().Month() }
func zonedDateTimeDay(z ZonedDateTime) int                  { return z.Date().Day() }
func zonedDateTimeDayOfWeek(z ZonedDateTime) int            { return z.Date().DayOfWeek() }
func zonedDateTimeEra(z ZonedDateTime) Era                  { return z.Date().Era() }
func zonedDateTimeCalendar(z ZonedDateTime) *CalendarSystem { return z.Date().Calendar() }
func zonedDateTimeHour(z ZonedDateTime) int                 { return z.TimeOfDay().Hour() }
func zonedDateTimeClockHour(z ZonedDateTime) int            { return z.TimeOfDay().ClockHourOfHalfDay() }
func zonedDateTimeMinute(z ZonedDateTime) int               { return z.TimeOfDay().Minute() }
func zonedDateTimeSecond(z ZonedDateTime) int               { return z.TimeOfDay().Second() }
func zonedDateTimeNanosecond(z ZonedDateTime) int           { return z.TimeOfDay().NanosecondOfSecond() }

func zonedDateTimeDateBucket(b *zonedDateTimeBucket) *localDateBucket { return b.date }
func zonedDateTimeTimeBucket(b *zonedDateTimeBucket) *localTimeBucket { return b.time }

type zonedDateTimePatternParser struct {
	templateValue   LocalDateTime
	templateZone    DateTimeZone
	provider        ZoneProvider
	resolver        Resolver
	twoDigitYearMax int
}

// zoneIDHandler matches a time zone identifier from the provider, longest
// match first, case-sensitively; zone identifiers are canonical strings, not
// culture text. Without a provider there is nothing to parse against and the
// pattern becomes format-only.
func (p *zonedDateTimePatternParser) zoneIDHandler() patternCharacterHandler[ZonedDateTime, *zonedDateTimeBucket] {
	return func(pc *cursor.Pattern, b *steppedPatternBuilder[ZonedDateTime, *zonedDateTimeBucket]) error {
		if err := b.addField(fieldZone, 'z'); err != nil {
			return err
		}
		provider := p.provider
		if provider == nil {
			b.setFormatOnly()
			b.addFormatAction(func(value ZonedDateTime, buf *bytes.Buffer) {
				buf.WriteString(value.Zone().ID())
			})
			return nil
		}
		b.addParseAction(func(c *cursor.Value, bucket *zonedDateTimeBucket) *ParseResult[ZonedDateTime] {
			remainder := c.Remainder()
			bestID := ""
			for _, id := range provider.IDs() {
				if len(id) > len(bestID) && strings.HasPrefix(remainder, id) {
					bestID = id
				}
			}
			if bestID == "" {
				fail := resultNoMatchingZoneID[ZonedDateTime](c)
				return &fail
			}
			c.Move(c.Index() + len([]rune(bestID)))
			zone, _ := provider.ForID(bestID)
			bucket.zone = zone
			return nil
		})
		b.addFormatAction(func(value ZonedDateTime, buf *bytes.Buffer) {
			buf.WriteString(value.Zone().ID())
		})
		return nil
	}
}

func (p *zonedDateTimePatternParser) embeddedLocalHandler() patternCharacterHandler[ZonedDateTime, *zonedDateTimeBucket] {
	return func(pc *cursor.Pattern, b *steppedPatternBuilder[ZonedDateTime, *zonedDateTimeBucket]) error {
		embeddedText, err := pc.GetEmbeddedPattern()
		if err != nil {
			return err
		}
		if err := b.addField(fieldEmbeddedDate|fieldEmbeddedTime, 'l'); err != nil {
			return err
		}
		innerParser := &localDateTimePatternParser{
			templateValue:   p.templateValue,
			twoDigitYearMax: p.twoDigitYearMax,
		}
		inner, err := innerParser.parsePattern(embeddedText, b.culture)
		if err != nil {
			return err
		}
		addEmbeddedPattern(b, inner.(partialPattern[LocalDateTime]),
			func(bucket *zonedDateTimeBucket, value LocalDateTime) { bucket.embeddedLocal = value },
			ZonedDateTime.LocalDateTime)
		return nil
	}
}

func (p *zonedDateTimePatternParser) handlers() map[rune]patternCharacterHandler[ZonedDateTime, *zonedDateTimeBucket] {
	return map[rune]patternCharacterHandler[ZonedDateTime, *zonedDateTimeBucket]{
		'%':  handlePercent[ZonedDateTime, *zonedDateTimeBucket],
		'\'': handleQuote[ZonedDateTime, *zonedDateTimeBucket],
		'"':  handleQuote[ZonedDateTime, *zonedDateTimeBucket],
		'\\': handleBackslash[ZonedDateTime, *zonedDateTimeBucket],
		'/':  handleDateSeparator[ZonedDateTime, *zonedDateTimeBucket],
		':':  handleTimeSeparator[ZonedDateTime, *zonedDateTimeBucket],
		'.':  periodHandler[ZonedDateTime](zonedDateTimeNanosecond, setZonedDateTimeFraction),
		';':  commaDotHandler[ZonedDateTime](zonedDateTimeNanosecond, setZonedDateTimeFraction),
		'y':  yearHandler[ZonedDateTime](zonedDateTimeYear, zonedDateTimeDateBucket),
		'u':  absoluteYearHandler[ZonedDateTime](zonedDateTimeYear, zonedDateTimeDateBucket),
		'Y':  yearOfEraHandler[ZonedDateTime](zonedDateTimeYearOfEra, zonedDateTimeDateBucket),
		'M':  monthHandler[ZonedDateTime](zonedDateTimeMonth, zonedDateTimeDateBucket),
		'd':  dayHandler[ZonedDateTime](zonedDateTimeDay, zonedDateTimeDayOfWeek, zonedDateTimeDateBucket),
		'g':  eraHandler[ZonedDateTime](zonedDateTimeEra, zonedDateTimeDateBucket),
		'c':  calendarHandler[ZonedDateTime](zonedDateTimeCalendar, zonedDateTimeDateBucket),
		'h': handlePaddedField[ZonedDateTime](2, fieldHours12, 1, 12, zonedDateTimeClockHour,
			func(b *zonedDateTimeBucket, v int) { b.time.hours12 = v }),
		'H': handlePaddedField[ZonedDateTime](2, fieldHours24, 0, 23, zonedDateTimeHour,
			func(b *zonedDateTimeBucket, v int) { b.time.hours24 = v }),
		'm': handlePaddedField[ZonedDateTime](2, fieldMinutes, 0, 59, zonedDateTimeMinute,
			func(b *zonedDateTimeBucket, v int) { b.time.minutes = v }),
		's': handlePaddedField[ZonedDateTime](2, fieldSeconds, 0, 59, zonedDateTimeSecond,
			func(b *zonedDateTimeBucket, v int) { b.time.seconds = v }),
		'f': fractionHandler[ZonedDateTime](zonedDateTimeNanosecond, setZonedDateTimeFraction),
		'F': fractionHandler[ZonedDateTime](zonedDateTimeNanosecond, setZonedDateTimeFraction),
		't': amPmHandler[ZonedDateTime](zonedDateTimeHour, zonedDateTimeTimeBucket),
		'z': p.zoneIDHandler(),
		'l': p.embeddedLocalHandler(),
	}
}

func (p *zonedDateTimePatternParser) parsePattern(patternText string, culture *Culture) (Pattern[ZonedDateTime], error) {
	if patternText == "" {
		return nil, errors.NewPattern(errors.ErrEmptyPattern, patternText, "the pattern text is empty")
	}
	if len([]rune(patternText)) == 1 {
		switch patternText {
		case "G":
			patternText = "uuuu'-'MM'-'dd'T'HH':'mm':'ss z"
		case "F":
			patternText = "uuuu'-'MM'-'dd'T'HH':'mm':'ss;FFFFFFFFF z"
		default:
			return nil, errors.NewPattern(errors.ErrUnknownStandardFormat, patternText,
				"the standard format %q is not valid for zoned date/times", patternText)
		}
	}
	builder := newSteppedPatternBuilder(culture, patternText, func() *zonedDateTimeBucket {
		return &zonedDateTimeBucket{
			date:     newLocalDateBucket(p.templateValue.Date(), p.twoDigitYearMax),
			time:     newLocalTimeBucket(p.templateValue.TimeOfDay()),
			zone:     p.templateZone,
			resolver: p.resolver,
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

// ZonedDateTimePattern parses and formats ZonedDateTime values against a
// zone provider and a resolver for ambiguous or skipped local times.
//
// Zoned patterns are compiled per creation rather than routed through the
// process-wide caches: a cache key would have to capture the provider and
// resolver identities as well as the culture.
type ZonedDateTimePattern struct {
	patternText string
	culture     *Culture
	provider    ZoneProvider
	resolver    Resolver
	pattern     Pattern[ZonedDateTime]
}

// NewZonedDateTimePattern compiles pattern text for the given culture,
// resolving zone identifiers through the provider and local-time ambiguity
// through the resolver. A nil provider produces a format-only pattern:
// formatting works as usual but Parse always fails.
func NewZonedDateTimePattern(patternText string, culture *Culture, provider ZoneProvider, resolver Resolver) (*ZonedDateTimePattern, error) {
	parser := &zonedDateTimePatternParser{
		templateValue:   defaultLocalDateTimeTemplate,
		templateZone:    UTC,
		provider:        provider,
		resolver:        resolver,
		twoDigitYearMax: defaultTwoDigitYearMax,
	}
	pattern, err := parser.parsePattern(patternText, culture)
	if err != nil {
		return nil, err
	}
	return &ZonedDateTimePattern{
		patternText: patternText,
		culture:     culture,
		provider:    provider,
		resolver:    resolver,
		pattern:     pattern,
	}, nil
}

// NewZonedDateTimePatternInvariant compiles pattern text for the invariant
// culture with a strict resolver.
func NewZonedDateTimePatternInvariant(patternText string, provider ZoneProvider) (*ZonedDateTimePattern, error) {
	return NewZonedDateTimePattern(patternText, CultureInvariant(), provider, StrictResolver)
}

// PatternText returns the text this pattern was created with.
func (p *ZonedDateTimePattern) PatternText() string { return p.patternText }

// Culture returns the culture used for text and separators.
func (p *ZonedDateTimePattern) Culture() *Culture { return p.culture }

// Parse parses the whole of the given text.
func (p *ZonedDateTimePattern) Parse(text string) ParseResult[ZonedDateTime] {
	return p.pattern.Parse(text)
}

// Format returns the value formatted according to the pattern.
func (p *ZonedDateTimePattern) Format(value ZonedDateTime) string {
	return p.pattern.Format(value)
}

// AppendFormat appends the formatted value to the buffer.
func (p *ZonedDateTimePattern) AppendFormat(value ZonedDateTime, buf *bytes.Buffer) {
	p.pattern.AppendFormat(value, buf)
}

// WithCulture compiles the same pattern text against a different culture.
func (p *ZonedDateTimePattern) WithCulture(culture *Culture) (*ZonedDateTimePattern, error) {
	return NewZonedDateTimePattern(p.patternText, culture, p.provider, p.resolver)
}

// WithResolver compiles the same pattern text with a different resolver.
func (p *ZonedDateTimePattern) WithResolver(resolver Resolver) (*ZonedDateTimePattern, error) {
	return NewZonedDateTimePattern(p.patternText, p.culture, p.provider, resolver)
}

func setZonedDateTimeFraction(b *zonedDateTimeBucket, v int) { b.time.fractionalSeconds = v }
