package datetext

import "fmt"

// ZonedDateTime is a local date/time in a specific time zone with a known,
// already-resolved offset.
type ZonedDateTime struct {
	localDateTime LocalDateTime
	zone          DateTimeZone
	offset        Offset
}

// LocalDateTime returns the local date/time component.
func (z ZonedDateTime) LocalDateTime() LocalDateTime { return z.localDateTime }

// Date returns the date component.
func (z ZonedDateTime) Date() LocalDate { return z.localDateTime.Date() }

// TimeOfDay returns the time-of-day component.
func (z ZonedDateTime) TimeOfDay() LocalTime { return z.localDateTime.TimeOfDay() }

// Zone returns the time zone.
func (z ZonedDateTime) Zone() DateTimeZone { return z.zone }

// Offset returns the resolved UTC offset.
func (z ZonedDateTime) Offset() Offset { return z.offset }

// ToInstant returns the instant this value identifies.
func (z ZonedDateTime) ToInstant() Instant { return z.localDateTime.ToInstant(z.offset) }

// ToOffsetDateTime drops the zone, keeping the local date/time and offset.
func (z ZonedDateTime) ToOffsetDateTime() OffsetDateTime {
	return OffsetDateTime{localDateTime: z.localDateTime, offset: z.offset}
}

// String returns the local date/time, offset, and zone identifier.
func (z ZonedDateTime) String() string {
	id := "?"
	if z.zone != nil {
		id = z.zone.ID()
	}
	return fmt.Sprintf("%s%s %s", z.localDateTime, z.offset, id)
}
