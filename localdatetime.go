package datetext

import "fmt"

// LocalDateTime is a date and time of day with no time zone or offset.
// LocalDateTime values are comparable with ==.
type LocalDateTime struct {
	date LocalDate
	time LocalTime
}

// NewLocalDateTime creates an ISO-calendar date and time, validating all fields.
func NewLocalDateTime(year, month, day, hour, minute, second int) (LocalDateTime, error) {
	date, err := NewLocalDate(year, month, day)
	if err != nil {
		return LocalDateTime{}, err
	}
	t, err := NewLocalTime(hour, minute, second)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{date: date, time: t}, nil
}

// Date returns the date component.
func (dt LocalDateTime) Date() LocalDate { return dt.date }

// TimeOfDay returns the time-of-day component.
func (dt LocalDateTime) TimeOfDay() LocalTime { return dt.time }

// Year returns the absolute year.
func (dt LocalDateTime) Year() int { return dt.date.Year() }

// Month returns the month of the year.
func (dt LocalDateTime) Month() int { return dt.date.Month() }

// Day returns the day of the month.
func (dt LocalDateTime) Day() int { return dt.date.Day() }

// Hour returns the hour of the day.
func (dt LocalDateTime) Hour() int { return dt.time.Hour() }

// Minute returns the minute of the hour.
func (dt LocalDateTime) Minute() int { return dt.time.Minute() }

// Second returns the second of the minute.
func (dt LocalDateTime) Second() int { return dt.time.Second() }

// NanosecondOfSecond returns the nanosecond within the second.
func (dt LocalDateTime) NanosecondOfSecond() int { return dt.time.NanosecondOfSecond() }

// WithOffset attaches an offset, producing an OffsetDateTime.
func (dt LocalDateTime) WithOffset(offset Offset) OffsetDateTime {
	return OffsetDateTime{localDateTime: dt, offset: offset}
}

// InZoneWithOffset attaches a zone and a known offset without validation.
func (dt LocalDateTime) InZoneWithOffset(zone DateTimeZone, offset Offset) ZonedDateTime {
	return ZonedDateTime{localDateTime: dt, zone: zone, offset: offset}
}

// ToInstant converts this local date/time interpreted at the given offset.
func (dt LocalDateTime) ToInstant(offset Offset) Instant {
	days := dt.date.DaysSinceEpoch()
	nanos := dt.time.NanosecondOfDay() - int64(offset.Seconds())*nanosPerSecond
	for nanos < 0 {
		nanos += nanosPerDay
		days--
	}
	for nanos >= nanosPerDay {
		nanos -= nanosPerDay
		days++
	}
	return Instant{days: days, nanoOfDay: nanos}
}

// String returns an ISO-8601 representation of the date and time.
func (dt LocalDateTime) String() string {
	return fmt.Sprintf("%sT%s", dt.date, dt.time)
}
