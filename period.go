package datetext

// Period is a set of independent date and time unit counts, such as "3 years,
// 2 days, 13 hours". Unlike Duration, the components are not normalized
// against each other; "1 day" and "24 hours" are different periods.
// Period values are comparable with ==.
type Period struct {
	Years        int64
	Months       int64
	Weeks        int64
	Days         int64
	Hours        int64
	Minutes      int64
	Seconds      int64
	Milliseconds int64
	Ticks        int64
	Nanoseconds  int64
}

// ZeroPeriod is the period with all components zero.
var ZeroPeriod = Period{}

// HasTimeComponent reports whether any time-based component is non-zero.
func (p Period) HasTimeComponent() bool {
	return p.Hours != 0 || p.Minutes != 0 || p.Seconds != 0 ||
		p.Milliseconds != 0 || p.Ticks != 0 || p.Nanoseconds != 0
}

// HasDateComponent reports whether any date-based component is non-zero.
func (p Period) HasDateComponent() bool {
	return p.Years != 0 || p.Months != 0 || p.Weeks != 0 || p.Days != 0
}

// Normalized returns an equivalent period with the time components carried
// into each other so that, for example, 90 minutes becomes 1 hour 30 minutes,
// and weeks are folded into days. Years and months are left untouched since
// their length varies.
func (p Period) Normalized() Period {
	totalNanos := p.totalTimeNanoseconds()
	days := p.Weeks*7 + p.Days + totalNanos/nanosPerDay
	remainder := totalNanos % nanosPerDay
	if remainder < 0 {
		remainder += nanosPerDay
		days--
	}
	return Period{
		Years:       p.Years,
		Months:      p.Months,
		Days:        days,
		Hours:       remainder / nanosPerHour,
		Minutes:     remainder / nanosPerMinute % 60,
		Seconds:     remainder / nanosPerSecond % 60,
		Nanoseconds: remainder % nanosPerSecond,
	}
}

func (p Period) totalTimeNanoseconds() int64 {
	return p.Hours*nanosPerHour +
		p.Minutes*nanosPerMinute +
		p.Seconds*nanosPerSecond +
		p.Milliseconds*1_000_000 +
		p.Ticks*100 +
		p.Nanoseconds
}

// String returns the round-trip representation of the period.
func (p Period) String() string {
	return PeriodRoundtrip.Format(p)
}
