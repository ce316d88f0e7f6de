package datetext

import "fmt"

// Instant is a point on the global timeline with nanosecond resolution,
// stored as days since the Unix epoch plus a nanosecond of day.
// Instant values are comparable with ==.
type Instant struct {
	days      int
	nanoOfDay int64
}

// UnixEpoch is the instant of 1970-01-01T00:00:00Z.
var UnixEpoch = Instant{}

// InstantFromUnixSeconds creates an instant from seconds since the epoch.
func InstantFromUnixSeconds(seconds int64) Instant {
	days := int(seconds / 86400)
	rem := seconds % 86400
	if rem < 0 {
		rem += 86400
		days--
	}
	return Instant{days: days, nanoOfDay: rem * nanosPerSecond}
}

// DaysSinceEpoch returns the floor number of days since the Unix epoch.
func (i Instant) DaysSinceEpoch() int { return i.days }

// NanosecondOfDay returns the nanoseconds into the day, always non-negative.
func (i Instant) NanosecondOfDay() int64 { return i.nanoOfDay }

// WithOffset returns the local date and time at the given UTC offset.
func (i Instant) WithOffset(offset Offset) LocalDateTime {
	days := i.days
	nanos := i.nanoOfDay + int64(offset.Seconds())*nanosPerSecond
	for nanos < 0 {
		nanos += nanosPerDay
		days--
	}
	for nanos >= nanosPerDay {
		nanos -= nanosPerDay
		days++
	}
	return localDateFromDaysSinceEpoch(days, nil).At(localTimeFromNanoOfDay(nanos))
}

// InUTC returns the local date and time of this instant in UTC.
func (i Instant) InUTC() LocalDateTime { return i.WithOffset(ZeroOffset) }

// Before reports whether i is earlier than other.
func (i Instant) Before(other Instant) bool {
	return i.days < other.days || (i.days == other.days && i.nanoOfDay < other.nanoOfDay)
}

// String returns an ISO-8601 representation in UTC.
func (i Instant) String() string {
	return fmt.Sprintf("%sZ", i.InUTC())
}
