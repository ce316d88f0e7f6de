package datetext

import "fmt"

// OffsetDate is a calendar date with a UTC offset.
type OffsetDate struct {
	date   LocalDate
	offset Offset
}

// NewOffsetDate combines a date and an offset.
func NewOffsetDate(date LocalDate, offset Offset) OffsetDate {
	return OffsetDate{date: date, offset: offset}
}

// Date returns the date component.
func (d OffsetDate) Date() LocalDate { return d.date }

// Offset returns the UTC offset.
func (d OffsetDate) Offset() Offset { return d.offset }

// String returns an ISO-8601 representation of the date and offset.
func (d OffsetDate) String() string { return fmt.Sprintf("%s%s", d.date, d.offset) }

// OffsetTime is a time of day with a UTC offset.
type OffsetTime struct {
	time   LocalTime
	offset Offset
}

// NewOffsetTime combines a time of day and an offset.
func NewOffsetTime(time LocalTime, offset Offset) OffsetTime {
	return OffsetTime{time: time, offset: offset}
}

// TimeOfDay returns the time-of-day component.
func (t OffsetTime) TimeOfDay() LocalTime { return t.time }

// Offset returns the UTC offset.
func (t OffsetTime) Offset() Offset { return t.offset }

// String returns an ISO-8601 representation of the time and offset.
func (t OffsetTime) String() string { return fmt.Sprintf("%s%s", t.time, t.offset) }

// OffsetDateTime is a date and time of day with a UTC offset.
type OffsetDateTime struct {
	localDateTime LocalDateTime
	offset        Offset
}

// NewOffsetDateTime combines a local date/time and an offset.
func NewOffsetDateTime(local LocalDateTime, offset Offset) OffsetDateTime {
	return OffsetDateTime{localDateTime: local, offset: offset}
}

// LocalDateTime returns the local date/time component.
func (dt OffsetDateTime) LocalDateTime() LocalDateTime { return dt.localDateTime }

// Date returns the date component.
func (dt OffsetDateTime) Date() LocalDate { return dt.localDateTime.Date() }

// TimeOfDay returns the time-of-day component.
func (dt OffsetDateTime) TimeOfDay() LocalTime { return dt.localDateTime.TimeOfDay() }

// Offset returns the UTC offset.
func (dt OffsetDateTime) Offset() Offset { return dt.offset }

// ToInstant returns the instant this value identifies.
func (dt OffsetDateTime) ToInstant() Instant { return dt.localDateTime.ToInstant(dt.offset) }

// String returns an ISO-8601 representation of the value.
func (dt OffsetDateTime) String() string {
	return fmt.Sprintf("%s%s", dt.localDateTime, dt.offset)
}
