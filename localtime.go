package datetext

import "fmt"

const (
	nanosPerSecond = int64(1_000_000_000)
	nanosPerMinute = 60 * nanosPerSecond
	nanosPerHour   = 60 * nanosPerMinute
	nanosPerDay    = 24 * nanosPerHour
)

// LocalTime is a time of day with nanosecond precision and no date or zone.
// The zero value is midnight. LocalTime values are comparable with ==.
type LocalTime struct {
	nanoOfDay int64
}

// Midnight is the start of the day.
var Midnight = LocalTime{}

// NewLocalTime creates a time of day, validating the fields.
func NewLocalTime(hour, minute, second int) (LocalTime, error) {
	return NewLocalTimeWithNanoseconds(hour, minute, second, 0)
}

// NewLocalTimeWithNanoseconds creates a time of day including a
// nanosecond-of-second component, validating the fields.
func NewLocalTimeWithNanoseconds(hour, minute, second, nanosecond int) (LocalTime, error) {
	if hour < 0 || hour > 23 {
		return LocalTime{}, fmt.Errorf("hour %d is out of range", hour)
	}
	if minute < 0 || minute > 59 {
		return LocalTime{}, fmt.Errorf("minute %d is out of range", minute)
	}
	if second < 0 || second > 59 {
		return LocalTime{}, fmt.Errorf("second %d is out of range", second)
	}
	if nanosecond < 0 || int64(nanosecond) >= nanosPerSecond {
		return LocalTime{}, fmt.Errorf("nanosecond %d is out of range", nanosecond)
	}
	return LocalTime{
		nanoOfDay: int64(hour)*nanosPerHour +
			int64(minute)*nanosPerMinute +
			int64(second)*nanosPerSecond +
			int64(nanosecond),
	}, nil
}

func localTimeFromNanoOfDay(nanoOfDay int64) LocalTime {
	return LocalTime{nanoOfDay: nanoOfDay}
}

// NanosecondOfDay returns the nanoseconds elapsed since midnight.
func (t LocalTime) NanosecondOfDay() int64 { return t.nanoOfDay }

// Hour returns the hour of the day in [0, 23].
func (t LocalTime) Hour() int { return int(t.nanoOfDay / nanosPerHour) }

// ClockHourOfHalfDay returns the hour on a 12-hour clock in [1, 12].
func (t LocalTime) ClockHourOfHalfDay() int {
	h := t.Hour() % 12
	if h == 0 {
		return 12
	}
	return h
}

// Minute returns the minute of the hour.
func (t LocalTime) Minute() int { return int(t.nanoOfDay / nanosPerMinute % 60) }

// Second returns the second of the minute.
func (t LocalTime) Second() int { return int(t.nanoOfDay / nanosPerSecond % 60) }

// NanosecondOfSecond returns the nanosecond within the second.
func (t LocalTime) NanosecondOfSecond() int { return int(t.nanoOfDay % nanosPerSecond) }

// On combines this time with a calendar date.
func (t LocalTime) On(d LocalDate) LocalDateTime {
	return LocalDateTime{date: d, time: t}
}

// String returns an ISO-8601 representation of the time.
func (t LocalTime) String() string {
	if ns := t.NanosecondOfSecond(); ns != 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%09d", t.Hour(), t.Minute(), t.Second(), ns)
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}
