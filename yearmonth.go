package datetext

import "fmt"

// YearMonth is a year and month with no day, time or zone.
type YearMonth struct {
	year     int
	month    int
	calendar *CalendarSystem
}

// NewYearMonth creates an ISO-calendar year/month, validating the fields.
func NewYearMonth(year, month int) (YearMonth, error) {
	return NewYearMonthInCalendar(calendarISO, year, month)
}

// NewYearMonthInCalendar creates a year/month in the given calendar.
func NewYearMonthInCalendar(c *CalendarSystem, year, month int) (YearMonth, error) {
	if c == nil {
		c = calendarISO
	}
	if year < c.minYear || year > c.maxYear {
		return YearMonth{}, fmt.Errorf("year %d is out of range for calendar %s", year, c.id)
	}
	if month < 1 || month > c.MonthsInYear(year) {
		return YearMonth{}, fmt.Errorf("month %d is out of range", month)
	}
	ym := YearMonth{year: year, month: month}
	if c != calendarISO {
		ym.calendar = c
	}
	return ym, nil
}

// Calendar returns the calendar system of this year/month.
func (ym YearMonth) Calendar() *CalendarSystem {
	if ym.calendar == nil {
		return calendarISO
	}
	return ym.calendar
}

// Year returns the absolute year.
func (ym YearMonth) Year() int { return ym.year }

// Month returns the month of the year.
func (ym YearMonth) Month() int { return ym.month }

// YearOfEra returns the year within the era.
func (ym YearMonth) YearOfEra() int {
	yoe, _ := ym.Calendar().YearOfEra(ym.year)
	return yoe
}

// Era returns the era of this year/month.
func (ym YearMonth) Era() Era {
	_, era := ym.Calendar().YearOfEra(ym.year)
	return era
}

// OnDay returns the date for a day within this year/month.
func (ym YearMonth) OnDay(day int) (LocalDate, error) {
	return NewLocalDateInCalendar(ym.Calendar(), ym.year, ym.month, day)
}

// String returns an ISO-8601 representation of the year and month.
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.year, ym.month)
}

// AnnualDate is a month and day with no year, such as a recurring anniversary.
type AnnualDate struct {
	month int
	day   int
}

// NewAnnualDate creates an annual date, validating against a leap year so
// that 29 February is representable.
func NewAnnualDate(month, day int) (AnnualDate, error) {
	if month < 1 || month > 12 {
		return AnnualDate{}, fmt.Errorf("month %d is out of range", month)
	}
	if day < 1 || day > calendarISO.DaysInMonth(2000, month) {
		return AnnualDate{}, fmt.Errorf("day %d is out of range for month %d", day, month)
	}
	return AnnualDate{month: month, day: day}, nil
}

// Month returns the month of the year.
func (a AnnualDate) Month() int { return a.month }

// Day returns the day of the month.
func (a AnnualDate) Day() int { return a.day }

// InYear returns the date of this annual date in the given year; 29 February
// maps to 28 February in non-leap years.
func (a AnnualDate) InYear(year int) (LocalDate, error) {
	day := a.day
	if day > calendarISO.DaysInMonth(year, a.month) {
		day = calendarISO.DaysInMonth(year, a.month)
	}
	return NewLocalDate(year, a.month, day)
}

// String returns an MM-dd representation of the annual date.
func (a AnnualDate) String() string {
	return fmt.Sprintf("%02d-%02d", a.month, a.day)
}
