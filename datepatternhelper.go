package datetext

import (
	"bytes"

	"github.com/nodatime/datetext/internal/cursor"
	"github.com/nodatime/datetext/internal/fmtutil"
)

// defaultTwoDigitYearMax is the pivot for two-digit year windowing: a parsed
// two-digit year above the pivot lands in the century before the template
// value's century.
const defaultTwoDigitYearMax = 30

// localDateBucket accumulates date fields for one parse attempt. It is used
// directly by LocalDatePattern and embedded as a sub-bucket by every
// composite type carrying a date.
type localDateBucket struct {
	templateValue   LocalDate
	twoDigitYearMax int

	calendar      *CalendarSystem
	year          int
	yearTwoDigits int
	yearOfEra     int
	era           Era
	monthNumeric  int
	monthText     int
	dayOfMonth    int
	dayOfWeek     int
}

func newLocalDateBucket(templateValue LocalDate, twoDigitYearMax int) *localDateBucket {
	return &localDateBucket{
		templateValue:   templateValue,
		twoDigitYearMax: twoDigitYearMax,
	}
}

// absoluteYearFromTwoDigits resolves a two-digit year against the century of
// an absolute base year. Negative base years are handled by sign-aware
// recursion so that windowing behaves symmetrically around year zero.
func absoluteYearFromTwoDigits(absoluteBase, twoDigits, pivot int) int {
	if absoluteBase < 0 {
		return -absoluteYearFromTwoDigits(-absoluteBase, twoDigits, pivot)
	}
	century := absoluteBase - absoluteBase%100
	if twoDigits > pivot {
		century -= 100
	}
	return century + twoDigits
}

// calculateValue turns the accumulated fields into a date, validating the
// cross-field consistency that can only be checked once the whole input has
// been read.
func (b *localDateBucket) calculateValue(usedFields patternFields, text string) ParseResult[LocalDate] {
	calendar := b.calendar
	template := b.templateValue
	if calendar == nil {
		calendar = template.Calendar()
	} else if calendar != template.Calendar() {
		template = template.WithCalendar(calendar)
	}

	year := template.Year()
	if usedFields.has(fieldYearOfEra) {
		era := template.Era()
		if usedFields.has(fieldEra) {
			era = b.era
		}
		absolute, err := calendar.AbsoluteYear(b.yearOfEra, era)
		if err != nil {
			return resultFieldValueOutOfRangePostParse[LocalDate](text, b.yearOfEra, 'Y')
		}
		if usedFields.has(fieldYear) && b.year != absolute {
			return resultInconsistentValues[LocalDate](text, 'u', 'Y')
		}
		year = absolute
	} else if usedFields.has(fieldYear) {
		year = b.year
	}
	if usedFields.has(fieldYearTwoDigits) {
		year = absoluteYearFromTwoDigits(year, b.yearTwoDigits, b.twoDigitYearMax)
	}
	if year < calendar.MinYear() || year > calendar.MaxYear() {
		return resultFieldValueOutOfRangePostParse[LocalDate](text, year, 'u')
	}

	month := template.Month()
	switch {
	case usedFields.has(fieldMonthNumeric | fieldMonthText):
		if b.monthNumeric != b.monthText {
			return resultInconsistentMonthValues[LocalDate](text)
		}
		month = b.monthNumeric
	case usedFields.has(fieldMonthNumeric):
		month = b.monthNumeric
	case usedFields.has(fieldMonthText):
		month = b.monthText
	}
	if month < 1 || month > calendar.MonthsInYear(year) {
		return resultFieldValueOutOfRangePostParse[LocalDate](text, month, 'M')
	}

	day := template.Day()
	if usedFields.has(fieldDayOfMonth) {
		day = b.dayOfMonth
	}
	if day < 1 || day > calendar.DaysInMonth(year, month) {
		return resultDayOfMonthOutOfRange[LocalDate](text, day, month, year)
	}

	date, err := NewLocalDateInCalendar(calendar, year, month, day)
	if err != nil {
		return resultOverallValueOutOfRange[LocalDate](text, "LocalDate")
	}
	if usedFields.has(fieldDayOfWeek) && date.DayOfWeek() != b.dayOfWeek {
		return resultInconsistentDayOfWeekTextValue[LocalDate](text)
	}
	return ParseSuccess(date)
}

// The date handler factories below are shared by every pattern type carrying
// a date: the per-type parser supplies accessors from its own result and
// bucket types.

func yearHandler[TResult any, TBucket parseBucket[TResult]](
	getter func(TResult) int, dateBucket func(TBucket) *localDateBucket,
) patternCharacterHandler[TResult, TBucket] {
	return func(pc *cursor.Pattern, b *steppedPatternBuilder[TResult, TBucket]) error {
		count, err := pc.GetRepeatCount(4)
		if err != nil {
			return err
		}
		if count == 2 {
			if err := b.addField(fieldYearTwoDigits, 'y'); err != nil {
				return err
			}
			b.addParseValueAction(2, 2, 'y', 0, 99, func(bucket TBucket, v int) {
				dateBucket(bucket).yearTwoDigits = v
			})
			b.addFormatAction(func(value TResult, buf *bytes.Buffer) {
				fmtutil.LeftPadNonNegative(((getter(value)%100)+100)%100, 2, buf)
			})
			return nil
		}
		if err := b.addField(fieldYear, 'y'); err != nil {
			return err
		}
		b.addParseValueAction(count, 4, 'y', 0, 9999, func(bucket TBucket, v int) {
			dateBucket(bucket).year = v
		})
		b.addFormatLeftPad(count, getter, false, false)
		return nil
	}
}

func absoluteYearHandler[TResult any, TBucket parseBucket[TResult]](
	getter func(TResult) int, dateBucket func(TBucket) *localDateBucket,
) patternCharacterHandler[TResult, TBucket] {
	return func(pc *cursor.Pattern, b *steppedPatternBuilder[TResult, TBucket]) error {
		count, err := pc.GetRepeatCount(4)
		if err != nil {
			return err
		}
		if err := b.addField(fieldYear, 'u'); err != nil {
			return err
		}
		b.addParseValueAction(count, 4, 'u', -9998, 9999, func(bucket TBucket, v int) {
			dateBucket(bucket).year = v
		})
		b.addFormatLeftPad(count, getter, false, false)
		return nil
	}
}

func yearOfEraHandler[TResult any, TBucket parseBucket[TResult]](
	getter func(TResult) int, dateBucket func(TBucket) *localDateBucket,
) patternCharacterHandler[TResult, TBucket] {
	return func(pc *cursor.Pattern, b *steppedPatternBuilder[TResult, TBucket]) error {
		count, err := pc.GetRepeatCount(4)
		if err != nil {
			return err
		}
		if err := b.addField(fieldYearOfEra, 'Y'); err != nil {
			return err
		}
		b.addParseValueAction(count, 4, 'Y', 1, 9999, func(bucket TBucket, v int) {
			dateBucket(bucket).yearOfEra = v
		})
		b.addFormatLeftPad(count, getter, true, false)
		return nil
	}
}

func monthHandler[TResult any, TBucket parseBucket[TResult]](
	numericGetter func(TResult) int, dateBucket func(TBucket) *localDateBucket,
) patternCharacterHandler[TResult, TBucket] {
	return func(pc *cursor.Pattern, b *steppedPatternBuilder[TResult, TBucket]) error {
		count, err := pc.GetRepeatCount(4)
		if err != nil {
			return err
		}
		switch count {
		case 1, 2:
			if err := b.addField(fieldMonthNumeric, 'M'); err != nil {
				return err
			}
			b.addParseValueAction(count, 2, 'M', 1, 12, func(bucket TBucket, v int) {
				dateBucket(bucket).monthNumeric = v
			})
			b.addFormatLeftPad(count, numericGetter, true, true)
		default:
			if err := b.addField(fieldMonthText, 'M'); err != nil {
				return err
			}
			culture := b.culture
			var genitive, plain []string
			if count == 3 {
				genitive, plain = culture.ShortMonthGenitiveNames(), culture.ShortMonthNames()
			} else {
				genitive, plain = culture.MonthGenitiveNames(), culture.MonthNames()
			}
			// Genitive names go first: where a genitive form extends the
			// plain form, the longest match must pick the genitive one.
			b.addParseTextAction('M', func(bucket TBucket, index int) {
				dateBucket(bucket).monthText = index
			}, genitive, plain)
			b.addDeferredFormatAction(func(finalFields patternFields) formatAction[TResult] {
				// Genitive month names are used only when the pattern also
				// writes a day of month; this is only knowable once the
				// whole pattern has been scanned.
				names := plain
				if finalFields.has(fieldDayOfMonth) {
					names = genitive
				}
				return func(value TResult, buf *bytes.Buffer) {
					buf.WriteString(names[numericGetter(value)])
				}
			})
		}
		return nil
	}
}

func dayHandler[TResult any, TBucket parseBucket[TResult]](
	dayGetter func(TResult) int, dayOfWeekGetter func(TResult) int,
	dateBucket func(TBucket) *localDateBucket,
) patternCharacterHandler[TResult, TBucket] {
	return func(pc *cursor.Pattern, b *steppedPatternBuilder[TResult, TBucket]) error {
		count, err := pc.GetRepeatCount(4)
		if err != nil {
			return err
		}
		switch count {
		case 1, 2:
			if err := b.addField(fieldDayOfMonth, 'd'); err != nil {
				return err
			}
			b.addParseValueAction(count, 2, 'd', 1, 31, func(bucket TBucket, v int) {
				dateBucket(bucket).dayOfMonth = v
			})
			b.addFormatLeftPad(count, dayGetter, true, true)
		default:
			if err := b.addField(fieldDayOfWeek, 'd'); err != nil {
				return err
			}
			names := b.culture.DayNames()
			if count == 3 {
				names = b.culture.ShortDayNames()
			}
			b.addParseTextAction('d', func(bucket TBucket, index int) {
				dateBucket(bucket).dayOfWeek = index
			}, names)
			b.addFormatAction(func(value TResult, buf *bytes.Buffer) {
				buf.WriteString(names[dayOfWeekGetter(value)])
			})
		}
		return nil
	}
}

func eraHandler[TResult any, TBucket parseBucket[TResult]](
	eraGetter func(TResult) Era, dateBucket func(TBucket) *localDateBucket,
) patternCharacterHandler[TResult, TBucket] {
	return func(pc *cursor.Pattern, b *steppedPatternBuilder[TResult, TBucket]) error {
		if _, err := pc.GetRepeatCount(2); err != nil {
			return err
		}
		if err := b.addField(fieldEra, 'g'); err != nil {
			return err
		}
		culture := b.culture
		b.addParseAction(func(c *cursor.Value, bucket TBucket) *ParseResult[TResult] {
			bestEra := Era(-1)
			bestLength := 0
			for _, era := range []Era{EraCE, EraBCE} {
				for _, name := range culture.EraNames(era) {
					if len([]rune(name)) <= bestLength {
						continue
					}
					if c.MatchCaseInsensitive(name, culture.FoldCase, false) {
						bestEra = era
						bestLength = len([]rune(name))
					}
				}
			}
			if bestEra < 0 {
				fail := resultMismatchedText[TResult](c, 'g')
				return &fail
			}
			c.Move(c.Index() + bestLength)
			dateBucket(bucket).era = bestEra
			return nil
		})
		b.addFormatAction(func(value TResult, buf *bytes.Buffer) {
			buf.WriteString(culture.EraNames(eraGetter(value))[0])
		})
		return nil
	}
}

func calendarHandler[TResult any, TBucket parseBucket[TResult]](
	calendarGetter func(TResult) *CalendarSystem, dateBucket func(TBucket) *localDateBucket,
) patternCharacterHandler[TResult, TBucket] {
	return func(pc *cursor.Pattern, b *steppedPatternBuilder[TResult, TBucket]) error {
		if err := b.addField(fieldCalendar, 'c'); err != nil {
			return err
		}
		b.addParseAction(func(c *cursor.Value, bucket TBucket) *ParseResult[TResult] {
			for _, id := range CalendarIDs() {
				if c.MatchString(id) {
					calendar, _ := CalendarForID(id)
					dateBucket(bucket).calendar = calendar
					return nil
				}
			}
			fail := resultNoMatchingCalendarSystem[TResult](c)
			return &fail
		})
		b.addFormatAction(func(value TResult, buf *bytes.Buffer) {
			buf.WriteString(calendarGetter(value).ID())
		})
		return nil
	}
}
