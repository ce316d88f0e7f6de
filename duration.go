package datetext

import (
	"bytes"
	"fmt"
	"math"
)

// Duration is a signed length of time with nanosecond resolution, covering
// roughly +/-292 years. Duration values are comparable with ==.
type Duration struct {
	nanos int64
}

// MinDuration and MaxDuration are the bounds of the representable range.
var (
	MinDuration = Duration{nanos: math.MinInt64}
	MaxDuration = Duration{nanos: math.MaxInt64}
)

// DurationFromNanoseconds creates a duration from a nanosecond count.
func DurationFromNanoseconds(nanos int64) Duration { return Duration{nanos: nanos} }

// DurationFromSeconds creates a duration from a second count.
func DurationFromSeconds(seconds int64) Duration {
	return Duration{nanos: seconds * nanosPerSecond}
}

// DurationFromHours creates a duration from an hour count.
func DurationFromHours(hours int) Duration {
	return Duration{nanos: int64(hours) * nanosPerHour}
}

// Nanoseconds returns the total number of nanoseconds.
func (d Duration) Nanoseconds() int64 { return d.nanos }

// IsNegative reports whether the duration is negative.
func (d Duration) IsNegative() bool { return d.nanos < 0 }

// Days returns the whole number of days, truncated toward zero.
func (d Duration) Days() int { return int(d.nanos / nanosPerDay) }

// Hours returns the whole number of hours, truncated toward zero.
func (d Duration) Hours() int64 { return d.nanos / nanosPerHour }

// Minutes returns the whole number of minutes, truncated toward zero.
func (d Duration) Minutes() int64 { return d.nanos / nanosPerMinute }

// Seconds returns the whole number of seconds, truncated toward zero.
func (d Duration) Seconds() int64 { return d.nanos / nanosPerSecond }

// String returns the round-trip representation of the duration.
func (d Duration) String() string {
	var buf bytes.Buffer
	units := durationAbsUnits(d.nanos, nanosPerDay)
	if d.nanos < 0 {
		buf.WriteByte('-')
	}
	fmt.Fprintf(&buf, "%d:%02d:%02d:%02d", units,
		durationComponent(d.nanos, nanosPerHour, 24),
		durationComponent(d.nanos, nanosPerMinute, 60),
		durationComponent(d.nanos, nanosPerSecond, 60))
	if ns := durationComponent(d.nanos, 1, int64(nanosPerSecond)); ns != 0 {
		fmt.Fprintf(&buf, ".%09d", ns)
	}
	return buf.String()
}

// durationAbsUnits returns the absolute number of whole units in a nanosecond
// count. The minimum representable count cannot be negated, so the division
// happens before taking the absolute value.
func durationAbsUnits(nanos int64, unit int64) int64 {
	units := nanos / unit
	if units < 0 {
		return -units
	}
	return units
}

// durationComponent returns the absolute value of one place-value component,
// e.g. the minute-of-hour for unit=nanosPerMinute, modulus=60.
func durationComponent(nanos int64, unit int64, modulus int64) int64 {
	component := nanos / unit % modulus
	if component < 0 {
		return -component
	}
	return component
}
