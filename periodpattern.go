package datetext

import (
	"bytes"
	"fmt"

	"github.com/nodatime/datetext/internal/cursor"
	"github.com/nodatime/datetext/internal/fmtutil"
)

// PeriodPattern parses and formats Period values. Unlike the other pattern
// types there is no pattern language for periods: the two supported forms
// are fixed, so the patterns are hand-written rather than compiled.
type PeriodPattern struct {
	normalizing bool
}

// PeriodRoundtrip preserves every component exactly, including
// milliseconds, ticks and nanoseconds as distinct units.
var PeriodRoundtrip = &PeriodPattern{normalizing: false}

// PeriodNormalizingISO formats the normalized form of the period using
// ISO-8601 units, with sub-second components folded into a fractional
// seconds value. Parsing accepts a fraction on the seconds component.
var PeriodNormalizingISO = &PeriodPattern{normalizing: true}

// Unit ordinals; parsing enforces strictly increasing order so that a unit
// can be neither repeated nor given after a smaller one.
const (
	periodUnitYears = iota + 1
	periodUnitMonths
	periodUnitWeeks
	periodUnitDays
	periodUnitHours
	periodUnitMinutes
	periodUnitSeconds
	periodUnitMilliseconds
	periodUnitTicks
	periodUnitNanoseconds
)

// Parse parses the whole of the given text.
func (p *PeriodPattern) Parse(text string) ParseResult[Period] {
	if text == "" {
		return resultValueStringEmpty[Period]()
	}
	c := cursor.NewValue(text)
	c.MoveNext()
	if !c.Match('P') {
		return resultMismatchedCharacter[Period](c, 'P')
	}
	var period Period
	inTime := false
	lastUnit := 0
	for c.Current() != cursor.Nul {
		if !inTime && c.Match('T') {
			inTime = true
			continue
		}
		negative := c.Match('-')
		value, ok := c.ParseInt64Digits(1, 18)
		if !ok {
			return forInvalidValue[Period](c, "the period contains a unit without a preceding number.")
		}
		if negative {
			value = -value
		}
		if c.Current() == cursor.Nul {
			return resultEndOfString[Period](c)
		}
		if p.normalizing && (c.Current() == '.' || c.Current() == ',') {
			// Only seconds may carry a fraction, and only in the ISO form.
			if !inTime || lastUnit >= periodUnitSeconds {
				return forInvalidValue[Period](c, "a fraction is only allowed on the seconds component.")
			}
			c.MoveNext()
			fraction, ok := c.ParseFraction(9, 9, 1)
			if !ok {
				return forInvalidValue[Period](c, "the period has a fraction with no digits.")
			}
			if !c.Match('S') {
				return resultMismatchedCharacter[Period](c, 'S')
			}
			period.Seconds = value
			if negative {
				period.Nanoseconds = -int64(fraction)
			} else {
				period.Nanoseconds = int64(fraction)
			}
			if c.Current() != cursor.Nul {
				return resultExtraValueCharacters[Period](c, c.Remainder())
			}
			return ParseSuccess(period)
		}
		unitCharacter := c.Current()
		c.MoveNext()
		unit, problem := periodUnit(unitCharacter, inTime, p.normalizing)
		if problem != "" {
			return forInvalidValue[Period](c, "%s", problem)
		}
		if unit <= lastUnit {
			return forInvalidValuePostParse[Period](text, "the period unit %q is repeated or misordered.", unitCharacter)
		}
		lastUnit = unit
		switch unit {
		case periodUnitYears:
			period.Years = value
		case periodUnitMonths:
			period.Months = value
		case periodUnitWeeks:
			period.Weeks = value
		case periodUnitDays:
			period.Days = value
		case periodUnitHours:
			period.Hours = value
		case periodUnitMinutes:
			period.Minutes = value
		case periodUnitSeconds:
			period.Seconds = value
		case periodUnitMilliseconds:
			period.Milliseconds = value
		case periodUnitTicks:
			period.Ticks = value
		case periodUnitNanoseconds:
			period.Nanoseconds = value
		}
	}
	if inTime && lastUnit < periodUnitHours {
		return forInvalidValuePostParse[Period](text, "the period has a T designator with no time components.")
	}
	return ParseSuccess(period)
}

// periodUnit maps a unit letter to its ordinal, or explains why the letter
// is not valid at this point in the text.
func periodUnit(character rune, inTime, normalizing bool) (int, string) {
	if !inTime {
		switch character {
		case 'Y':
			return periodUnitYears, ""
		case 'M':
			return periodUnitMonths, ""
		case 'W':
			return periodUnitWeeks, ""
		case 'D':
			return periodUnitDays, ""
		case 'H', 'S':
			return 0, fmt.Sprintf("the time unit %q must follow the T designator.", character)
		}
		return 0, fmt.Sprintf("unrecognized period unit %q.", character)
	}
	switch character {
	case 'H':
		return periodUnitHours, ""
	case 'M':
		return periodUnitMinutes, ""
	case 'S':
		return periodUnitSeconds, ""
	}
	if !normalizing {
		switch character {
		case 's':
			return periodUnitMilliseconds, ""
		case 't':
			return periodUnitTicks, ""
		case 'n':
			return periodUnitNanoseconds, ""
		}
	}
	return 0, fmt.Sprintf("unrecognized period unit %q.", character)
}

// Format returns the value formatted according to the pattern.
func (p *PeriodPattern) Format(value Period) string {
	var buf bytes.Buffer
	p.AppendFormat(value, &buf)
	return buf.String()
}

// AppendFormat appends the formatted value to the buffer.
func (p *PeriodPattern) AppendFormat(value Period, buf *bytes.Buffer) {
	if p.normalizing {
		value = value.Normalized()
	}
	if value == ZeroPeriod {
		buf.WriteString("P0D")
		return
	}
	buf.WriteByte('P')
	appendPeriodComponent(buf, value.Years, 'Y')
	appendPeriodComponent(buf, value.Months, 'M')
	appendPeriodComponent(buf, value.Weeks, 'W')
	appendPeriodComponent(buf, value.Days, 'D')
	if !value.HasTimeComponent() {
		return
	}
	buf.WriteByte('T')
	appendPeriodComponent(buf, value.Hours, 'H')
	appendPeriodComponent(buf, value.Minutes, 'M')
	if p.normalizing {
		// Normalization has folded all sub-second components into
		// Nanoseconds, which appears as a fraction of the seconds value.
		seconds, nanos := value.Seconds, value.Nanoseconds
		if seconds != 0 || nanos != 0 {
			if seconds == 0 && nanos < 0 {
				buf.WriteByte('-')
			}
			if nanos < 0 {
				nanos = -nanos
			}
			fmtutil.FormatInvariant(seconds, buf)
			buf.WriteByte('.')
			fmtutil.AppendFractionTruncate(int(nanos), 9, 9, buf)
			buf.WriteByte('S')
		}
		return
	}
	appendPeriodComponent(buf, value.Seconds, 'S')
	appendPeriodComponent(buf, value.Milliseconds, 's')
	appendPeriodComponent(buf, value.Ticks, 't')
	appendPeriodComponent(buf, value.Nanoseconds, 'n')
}

func appendPeriodComponent(buf *bytes.Buffer, value int64, unit byte) {
	if value == 0 {
		return
	}
	fmtutil.FormatInvariant(value, buf)
	buf.WriteByte(unit)
}
