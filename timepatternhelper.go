package datetext

import (
	"bytes"
	"strings"

	"github.com/nodatime/datetext/internal/cursor"
	"github.com/nodatime/datetext/internal/fmtutil"
)

// localTimeBucket accumulates time-of-day fields for one parse attempt. The
// 12-hour and 24-hour clocks are kept separately so that a pattern using
// both can be checked for consistency.
type localTimeBucket struct {
	templateValue LocalTime

	hours12           int
	hours24           int
	minutes           int
	seconds           int
	fractionalSeconds int
	amPm              int
}

func newLocalTimeBucket(templateValue LocalTime) *localTimeBucket {
	return &localTimeBucket{templateValue: templateValue}
}

func (b *localTimeBucket) calculateValue(usedFields patternFields, text string) ParseResult[LocalTime] {
	template := b.templateValue

	var hour int
	if usedFields.has(fieldHours24) {
		if usedFields.has(fieldHours12) && b.hours24%12 != b.hours12%12 {
			return resultInconsistentValues[LocalTime](text, 'H', 'h')
		}
		hour = b.hours24
	} else {
		amPm := 0
		if template.Hour() >= 12 {
			amPm = 1
		}
		if usedFields.has(fieldAmPm) {
			amPm = b.amPm
		}
		if usedFields.has(fieldHours12) {
			hour = b.hours12%12 + 12*amPm
		} else {
			hour = template.Hour()%12 + 12*amPm
		}
	}

	minute := template.Minute()
	if usedFields.has(fieldMinutes) {
		minute = b.minutes
	}
	second := template.Second()
	if usedFields.has(fieldSeconds) {
		second = b.seconds
	}
	nanosecond := template.NanosecondOfSecond()
	if usedFields.has(fieldFractionalSeconds) {
		nanosecond = b.fractionalSeconds
	}

	t, err := NewLocalTimeWithNanoseconds(hour, minute, second, nanosecond)
	if err != nil {
		return resultOverallValueOutOfRange[LocalTime](text, "LocalTime")
	}
	return ParseSuccess(t)
}

// maxFractionDigits is the finest precision a fractional-second specifier can
// request: nanoseconds.
const maxFractionDigits = 9

// The time handler factories below are shared by every pattern type carrying
// a time of day.

func fractionHandler[TResult any, TBucket parseBucket[TResult]](
	getter func(TResult) int, setter func(bucket TBucket, value int),
) patternCharacterHandler[TResult, TBucket] {
	return func(pc *cursor.Pattern, b *steppedPatternBuilder[TResult, TBucket]) error {
		patternChar := pc.Current()
		count, err := pc.GetRepeatCount(maxFractionDigits)
		if err != nil {
			return err
		}
		if err := b.addField(fieldFractionalSeconds, patternChar); err != nil {
			return err
		}
		// 'f' reads and writes exactly count digits; 'F' reads up to count
		// digits and trims trailing zeroes when formatting.
		minimumDigits := count
		if patternChar == 'F' {
			minimumDigits = 0
		}
		b.addParseAction(func(c *cursor.Value, bucket TBucket) *ParseResult[TResult] {
			value, ok := c.ParseFraction(count, maxFractionDigits, minimumDigits)
			if !ok {
				fail := resultMismatchedNumber[TResult](c, strings.Repeat(string(patternChar), count))
				return &fail
			}
			setter(bucket, value)
			return nil
		})
		if patternChar == 'f' {
			b.addFormatAction(func(value TResult, buf *bytes.Buffer) {
				fmtutil.AppendFraction(getter(value), count, maxFractionDigits, buf)
			})
		} else {
			b.addFormatAction(func(value TResult, buf *bytes.Buffer) {
				fmtutil.AppendFractionTruncate(getter(value), count, maxFractionDigits, buf)
			})
		}
		return nil
	}
}

// decimalSeparatorHandler handles a literal decimal separator in a time
// pattern. When the separator is immediately followed by 'F' the two become
// one unit: the separator is optional in input, and truncation on output can
// remove the separator along with an all-zero fraction.
func decimalSeparatorHandler[TResult any, TBucket parseBucket[TResult]](
	matches func(r rune) bool, formatted rune,
	getter func(TResult) int, setter func(bucket TBucket, value int),
) patternCharacterHandler[TResult, TBucket] {
	return func(pc *cursor.Pattern, b *steppedPatternBuilder[TResult, TBucket]) error {
		if pc.PeekNext() != 'F' {
			separatorChar := pc.Current()
			b.addParseAction(func(c *cursor.Value, bucket TBucket) *ParseResult[TResult] {
				if matches(c.Current()) {
					c.MoveNext()
					return nil
				}
				fail := resultMismatchedCharacter[TResult](c, separatorChar)
				return &fail
			})
			b.addFormatAction(func(value TResult, buf *bytes.Buffer) {
				buf.WriteRune(formatted)
			})
			return nil
		}
		pc.MoveNext()
		count, err := pc.GetRepeatCount(maxFractionDigits)
		if err != nil {
			return err
		}
		if err := b.addField(fieldFractionalSeconds, pc.Current()); err != nil {
			return err
		}
		b.addParseAction(func(c *cursor.Value, bucket TBucket) *ParseResult[TResult] {
			if !matches(c.Current()) {
				return nil
			}
			c.MoveNext()
			// A separator present in the input must be followed by at least
			// one fraction digit.
			value, ok := c.ParseFraction(count, maxFractionDigits, 1)
			if !ok {
				fail := resultMismatchedNumber[TResult](c, strings.Repeat("F", count))
				return &fail
			}
			setter(bucket, value)
			return nil
		})
		b.addFormatAction(func(value TResult, buf *bytes.Buffer) {
			buf.WriteRune(formatted)
		})
		b.addFormatAction(func(value TResult, buf *bytes.Buffer) {
			fmtutil.AppendFractionTruncate(getter(value), count, maxFractionDigits, buf)
		})
		return nil
	}
}

// periodHandler handles '.', which is always a period on output and in input.
func periodHandler[TResult any, TBucket parseBucket[TResult]](
	getter func(TResult) int, setter func(bucket TBucket, value int),
) patternCharacterHandler[TResult, TBucket] {
	return decimalSeparatorHandler(func(r rune) bool { return r == '.' }, '.', getter, setter)
}

// commaDotHandler handles ';', which accepts either a comma or a period in
// input and always formats a period.
func commaDotHandler[TResult any, TBucket parseBucket[TResult]](
	getter func(TResult) int, setter func(bucket TBucket, value int),
) patternCharacterHandler[TResult, TBucket] {
	return decimalSeparatorHandler(func(r rune) bool { return r == '.' || r == ',' }, '.', getter, setter)
}

func amPmHandler[TResult any, TBucket parseBucket[TResult]](
	hourGetter func(TResult) int, timeBucket func(TBucket) *localTimeBucket,
) patternCharacterHandler[TResult, TBucket] {
	return func(pc *cursor.Pattern, b *steppedPatternBuilder[TResult, TBucket]) error {
		count, err := pc.GetRepeatCount(2)
		if err != nil {
			return err
		}
		if err := b.addField(fieldAmPm, 't'); err != nil {
			return err
		}
		culture := b.culture
		amDesignator := culture.AMDesignator()
		pmDesignator := culture.PMDesignator()
		if count == 1 {
			amDesignator = string([]rune(amDesignator)[:1])
			pmDesignator = string([]rune(pmDesignator)[:1])
		}
		// The longer designator is tried first so that designators sharing a
		// prefix are not cut short.
		first, firstValue := amDesignator, 0
		second, secondValue := pmDesignator, 1
		if len([]rune(pmDesignator)) > len([]rune(amDesignator)) {
			first, firstValue, second, secondValue = pmDesignator, 1, amDesignator, 0
		}
		b.addParseAction(func(c *cursor.Value, bucket TBucket) *ParseResult[TResult] {
			switch {
			case c.MatchCaseInsensitive(first, culture.FoldCase, true):
				timeBucket(bucket).amPm = firstValue
			case c.MatchCaseInsensitive(second, culture.FoldCase, true):
				timeBucket(bucket).amPm = secondValue
			default:
				fail := resultMissingAmPmDesignator[TResult](c)
				return &fail
			}
			return nil
		})
		b.addFormatAction(func(value TResult, buf *bytes.Buffer) {
			if hourGetter(value) >= 12 {
				buf.WriteString(pmDesignator)
			} else {
				buf.WriteString(amDesignator)
			}
		})
		return nil
	}
}
