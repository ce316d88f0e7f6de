package datetext

import "fmt"

// Offset is a UTC offset in seconds, in the range +/-18 hours inclusive.
// Offset values are comparable with ==; the zero value is UTC itself.
type Offset struct {
	seconds int
}

const maxOffsetSeconds = 18 * 3600

// ZeroOffset is the offset of UTC.
var ZeroOffset = Offset{}

// NewOffset creates an offset from a number of seconds, validating the range.
func NewOffset(seconds int) (Offset, error) {
	if seconds < -maxOffsetSeconds || seconds > maxOffsetSeconds {
		return Offset{}, fmt.Errorf("offset of %d seconds is out of range", seconds)
	}
	return Offset{seconds: seconds}, nil
}

// OffsetFromHours creates an offset from a whole number of hours.
func OffsetFromHours(hours int) (Offset, error) {
	return NewOffset(hours * 3600)
}

// OffsetFromHoursMinutes creates an offset from hours and minutes; both
// components carry the sign of the offset.
func OffsetFromHoursMinutes(hours, minutes int) (Offset, error) {
	return NewOffset(hours*3600 + minutes*60)
}

// Seconds returns the total number of seconds, negative for offsets west of UTC.
func (o Offset) Seconds() int { return o.seconds }

// IsNegative reports whether the offset is west of UTC.
func (o Offset) IsNegative() bool { return o.seconds < 0 }

func (o Offset) absSeconds() int {
	if o.seconds < 0 {
		return -o.seconds
	}
	return o.seconds
}

// HourComponent returns the absolute hour component of the offset.
func (o Offset) HourComponent() int { return o.absSeconds() / 3600 }

// MinuteComponent returns the absolute minute component of the offset.
func (o Offset) MinuteComponent() int { return o.absSeconds() / 60 % 60 }

// SecondComponent returns the absolute second component of the offset.
func (o Offset) SecondComponent() int { return o.absSeconds() % 60 }

// String returns a +HH:mm or +HH:mm:ss representation of the offset.
func (o Offset) String() string {
	if o.seconds == 0 {
		return "Z"
	}
	sign := "+"
	if o.seconds < 0 {
		sign = "-"
	}
	if o.SecondComponent() != 0 {
		return fmt.Sprintf("%s%02d:%02d:%02d", sign, o.HourComponent(), o.MinuteComponent(), o.SecondComponent())
	}
	return fmt.Sprintf("%s%02d:%02d", sign, o.HourComponent(), o.MinuteComponent())
}
