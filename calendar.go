package datetext

import "fmt"

// Era identifies the era of a calendar year.
type Era int

const (
	// EraBCE is the era before the common era; year-of-era 1 is absolute year 0.
	EraBCE Era = iota
	// EraCE is the common era; year-of-era and absolute year coincide.
	EraCE
)

// String returns the invariant name of the era.
func (e Era) String() string {
	if e == EraBCE {
		return "B.C."
	}
	return "A.D."
}

// CalendarSystem converts between year/month/day fields and days since the
// Unix epoch for one calendar. Instances are immutable and shared; obtain
// them from CalendarISO, CalendarJulian or CalendarForID.
type CalendarSystem struct {
	id          string
	minYear     int
	maxYear     int
	isLeap      func(year int) bool
	daysFromYMD func(year, month, day int) int
	ymdFromDays func(days int) (year, month, day int)
}

var calendarISO = &CalendarSystem{
	id:          "ISO",
	minYear:     -9998,
	maxYear:     9999,
	isLeap:      gregorianIsLeap,
	daysFromYMD: gregorianDaysFromYMD,
	ymdFromDays: gregorianYMDFromDays,
}

var calendarJulian = &CalendarSystem{
	id:          "Julian",
	minYear:     -9997,
	maxYear:     9998,
	isLeap:      julianIsLeap,
	daysFromYMD: julianDaysFromYMD,
	ymdFromDays: julianYMDFromDays,
}

var calendarsByID = map[string]*CalendarSystem{
	calendarISO.id:    calendarISO,
	calendarJulian.id: calendarJulian,
}

// CalendarISO returns the proleptic Gregorian calendar.
func CalendarISO() *CalendarSystem { return calendarISO }

// CalendarJulian returns the proleptic Julian calendar.
func CalendarJulian() *CalendarSystem { return calendarJulian }

// CalendarForID looks up a calendar system by its identifier.
func CalendarForID(id string) (*CalendarSystem, bool) {
	c, ok := calendarsByID[id]
	return c, ok
}

// CalendarIDs returns the identifiers of all known calendar systems.
func CalendarIDs() []string {
	return []string{calendarISO.id, calendarJulian.id}
}

// ID returns the calendar system identifier.
func (c *CalendarSystem) ID() string { return c.id }

// MinYear returns the smallest supported absolute year.
func (c *CalendarSystem) MinYear() int { return c.minYear }

// MaxYear returns the largest supported absolute year.
func (c *CalendarSystem) MaxYear() int { return c.maxYear }

// IsLeapYear reports whether the given absolute year is a leap year.
func (c *CalendarSystem) IsLeapYear(year int) bool { return c.isLeap(year) }

// MonthsInYear returns the number of months in the given year.
func (c *CalendarSystem) MonthsInYear(year int) int { return 12 }

// DaysInMonth returns the number of days in the given month.
func (c *CalendarSystem) DaysInMonth(year, month int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if c.isLeap(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

// Eras returns the eras used by this calendar, ordered by their index.
func (c *CalendarSystem) Eras() []Era { return []Era{EraBCE, EraCE} }

// AbsoluteYear converts a year-of-era in the given era to an absolute year.
func (c *CalendarSystem) AbsoluteYear(yearOfEra int, era Era) (int, error) {
	if yearOfEra < 1 {
		return 0, fmt.Errorf("year of era %d is out of range", yearOfEra)
	}
	var year int
	if era == EraCE {
		year = yearOfEra
	} else {
		year = 1 - yearOfEra
	}
	if year < c.minYear || year > c.maxYear {
		return 0, fmt.Errorf("year %d is out of range for calendar %s", year, c.id)
	}
	return year, nil
}

// YearOfEra converts an absolute year to its year-of-era and era.
func (c *CalendarSystem) YearOfEra(year int) (int, Era) {
	if year < 1 {
		return 1 - year, EraBCE
	}
	return year, EraCE
}

func (c *CalendarSystem) validDate(year, month, day int) error {
	if year < c.minYear || year > c.maxYear {
		return fmt.Errorf("year %d is out of range for calendar %s", year, c.id)
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("month %d is out of range", month)
	}
	if day < 1 || day > c.DaysInMonth(year, month) {
		return fmt.Errorf("day %d is out of range for %d-%d", day, year, month)
	}
	return nil
}

func gregorianIsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func julianIsLeap(year int) bool {
	return year%4 == 0
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// dayOfYearMarch is the zero-based day of a March-based year for a civil
// month/day, shared by the Gregorian and Julian conversions.
func dayOfYearMarch(month, day int) int {
	mp := month + 9
	if month > 2 {
		mp = month - 3
	}
	return (153*mp+2)/5 + day - 1
}

func civilFromDayOfYearMarch(doy int) (month, day int) {
	mp := (5*doy + 2) / 153
	day = doy - (153*mp+2)/5 + 1
	if mp < 10 {
		month = mp + 3
	} else {
		month = mp - 9
	}
	return month, day
}

func gregorianDaysFromYMD(year, month, day int) int {
	y := year
	if month <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400
	doe := yoe*365 + yoe/4 - yoe/100 + dayOfYearMarch(month, day)
	return era*146097 + doe - 719468
}

func gregorianYMDFromDays(days int) (int, int, int) {
	z := days + 719468
	era := floorDiv(z, 146097)
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	month, day := civilFromDayOfYearMarch(doy)
	if month <= 2 {
		y++
	}
	return y, month, day
}

func julianDaysFromYMD(year, month, day int) int {
	y := year
	if month <= 2 {
		y--
	}
	return 365*y + floorDiv(y, 4) + dayOfYearMarch(month, day) - 719470
}

func julianYMDFromDays(days int) (int, int, int) {
	z := days + 719470
	y := floorDiv(4*z+3, 1461)
	doy := z - (365*y + floorDiv(y, 4))
	month, day := civilFromDayOfYearMarch(doy)
	if month <= 2 {
		y++
	}
	return y, month, day
}
