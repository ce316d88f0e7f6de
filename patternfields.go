package datetext

// patternFields is a bit set of the logical fields a pattern touches. Each
// field may be registered by at most one specifier occurrence; the builder
// rejects duplicates at compile time, citing the offending character.
type patternFields uint32

const (
	fieldNone              patternFields = 0
	fieldSign              patternFields = 1 << 0
	fieldHours12           patternFields = 1 << 1
	fieldHours24           patternFields = 1 << 2
	fieldMinutes           patternFields = 1 << 3
	fieldSeconds           patternFields = 1 << 4
	fieldFractionalSeconds patternFields = 1 << 5
	fieldAmPm              patternFields = 1 << 6
	fieldYear              patternFields = 1 << 7
	fieldYearTwoDigits     patternFields = 1 << 8
	fieldYearOfEra         patternFields = 1 << 9
	fieldMonthNumeric      patternFields = 1 << 10
	fieldMonthText         patternFields = 1 << 11
	fieldDayOfMonth        patternFields = 1 << 12
	fieldDayOfWeek         patternFields = 1 << 13
	fieldEra               patternFields = 1 << 14
	fieldCalendar          patternFields = 1 << 15
	fieldZone              patternFields = 1 << 16
	fieldTotalDuration     patternFields = 1 << 17
	fieldEmbeddedOffset    patternFields = 1 << 18
	fieldEmbeddedDate      patternFields = 1 << 19
	fieldEmbeddedTime      patternFields = 1 << 20
)

const (
	fieldAllTimeFields = fieldHours12 | fieldHours24 | fieldMinutes | fieldSeconds |
		fieldFractionalSeconds | fieldAmPm | fieldEmbeddedTime
	fieldAllDateFields = fieldYear | fieldYearTwoDigits | fieldYearOfEra |
		fieldMonthNumeric | fieldMonthText | fieldDayOfMonth | fieldDayOfWeek |
		fieldEra | fieldCalendar | fieldEmbeddedDate
)

// has reports whether all the given fields are present.
func (f patternFields) has(other patternFields) bool { return f&other == other }

// any reports whether any of the given fields is present.
func (f patternFields) any(other patternFields) bool { return f&other != 0 }
