package datetext

import "fmt"

// LocalDate is a calendar date with no time-of-day or time zone.
// The zero value is 1 January 1 in the ISO calendar. LocalDate values are
// comparable with ==; dates in different calendar systems never compare
// equal even when they identify the same day.
type LocalDate struct {
	// daysSinceYearOne keeps the zero value meaningful: the stored count is
	// relative to 1 January year 1, not the Unix epoch.
	daysSinceYearOne int
	calendar         *CalendarSystem
}

var epochOffsetDays = gregorianDaysFromYMD(1, 1, 1)

// NewLocalDate creates an ISO-calendar date, validating the fields.
func NewLocalDate(year, month, day int) (LocalDate, error) {
	return NewLocalDateInCalendar(calendarISO, year, month, day)
}

// NewLocalDateInCalendar creates a date in the given calendar, validating the
// fields against that calendar.
func NewLocalDateInCalendar(c *CalendarSystem, year, month, day int) (LocalDate, error) {
	if c == nil {
		c = calendarISO
	}
	if err := c.validDate(year, month, day); err != nil {
		return LocalDate{}, err
	}
	return localDateFromDaysSinceEpoch(c.daysFromYMD(year, month, day), c), nil
}

func localDateFromDaysSinceEpoch(days int, c *CalendarSystem) LocalDate {
	d := LocalDate{daysSinceYearOne: days - epochOffsetDays}
	if c != nil && c != calendarISO {
		d.calendar = c
	}
	return d
}

// Calendar returns the calendar system of this date.
func (d LocalDate) Calendar() *CalendarSystem {
	if d.calendar == nil {
		return calendarISO
	}
	return d.calendar
}

// DaysSinceEpoch returns the number of days since the Unix epoch.
func (d LocalDate) DaysSinceEpoch() int {
	return d.daysSinceYearOne + epochOffsetDays
}

func (d LocalDate) ymd() (int, int, int) {
	return d.Calendar().ymdFromDays(d.DaysSinceEpoch())
}

// Year returns the absolute year, which may be zero or negative.
func (d LocalDate) Year() int { y, _, _ := d.ymd(); return y }

// Month returns the month of the year in [1, 12].
func (d LocalDate) Month() int { _, m, _ := d.ymd(); return m }

// Day returns the day of the month.
func (d LocalDate) Day() int { _, _, day := d.ymd(); return day }

// YearOfEra returns the year within the era, always positive.
func (d LocalDate) YearOfEra() int {
	yoe, _ := d.Calendar().YearOfEra(d.Year())
	return yoe
}

// Era returns the era of this date.
func (d LocalDate) Era() Era {
	_, era := d.Calendar().YearOfEra(d.Year())
	return era
}

// DayOfWeek returns the ISO day of the week, Monday=1 through Sunday=7.
func (d LocalDate) DayOfWeek() int {
	dow := (d.DaysSinceEpoch()%7 + 7 + 3) % 7
	return dow + 1
}

// WithCalendar returns the same day expressed in another calendar system.
func (d LocalDate) WithCalendar(c *CalendarSystem) LocalDate {
	return localDateFromDaysSinceEpoch(d.DaysSinceEpoch(), c)
}

// PlusDays returns the date the given number of days later.
func (d LocalDate) PlusDays(days int) LocalDate {
	return localDateFromDaysSinceEpoch(d.DaysSinceEpoch()+days, d.calendar)
}

// At combines this date with a time of day.
func (d LocalDate) At(t LocalTime) LocalDateTime {
	return LocalDateTime{date: d, time: t}
}

// String returns an ISO-8601 representation of the date.
func (d LocalDate) String() string {
	y, m, day := d.ymd()
	return fmt.Sprintf("%04d-%02d-%02d", y, m, day)
}
