package datetext

import (
	"testing"
)

func mustYearMonth(t *testing.T, year, month int) YearMonth {
	t.Helper()
	ym, err := NewYearMonth(year, month)
	if err != nil {
		t.Fatalf("NewYearMonth(%d, %d): %v", year, month, err)
	}
	return ym
}

func TestYearMonthPatternISO(t *testing.T) {
	tests := []struct {
		name  string
		value YearMonth
		want  string
	}{
		{"common", mustYearMonth(t, 2023, 6), "2023-06"},
		{"padded year", mustYearMonth(t, 476, 9), "0476-09"},
		{"negative year", mustYearMonth(t, -99, 1), "-0099-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := YearMonthPatternISO.Format(tt.value)
			if got != tt.want {
				t.Fatalf("Format(%v) = %q, want %q", tt.value, got, tt.want)
			}
			parsed, err := YearMonthPatternISO.Parse(got).Get()
			if err != nil {
				t.Fatalf("Parse(%q): %v", got, err)
			}
			if parsed != tt.value {
				t.Fatalf("Parse(%q) = %v, want %v", got, parsed, tt.value)
			}
		})
	}
}

func TestYearMonthPatternStandards(t *testing.T) {
	value := mustYearMonth(t, 2023, 6)
	g, err := NewYearMonthPatternInvariant("g")
	if err != nil {
		t.Fatalf("compile g: %v", err)
	}
	text := g.Format(value)
	if text != "June 2023" {
		t.Fatalf("Format = %q, want %q", text, "June 2023")
	}
	got, err := g.Parse(text).Get()
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	if got != value {
		t.Fatalf("roundtrip = %v, want %v", got, value)
	}
}

func TestYearMonthPatternEra(t *testing.T) {
	p, err := NewYearMonthPatternInvariant("YYYY'-'MM g")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	value := mustYearMonth(t, -99, 1)
	text := p.Format(value)
	if text != "0100-01 B.C." {
		t.Fatalf("Format = %q, want %q", text, "0100-01 B.C.")
	}
	got, err := p.Parse("0100-01 BCE").Get()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got != value {
		t.Fatalf("Parse = %v, want %v", got, value)
	}
}

func TestYearMonthPatternTwoDigitYears(t *testing.T) {
	p, err := NewYearMonthPatternInvariant("yy'-'MM")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	tests := []struct {
		text string
		want YearMonth
	}{
		{"30-06", mustYearMonth(t, 2030, 6)},
		{"31-06", mustYearMonth(t, 1931, 6)},
		{"00-06", mustYearMonth(t, 2000, 6)},
	}
	for _, tt := range tests {
		got, err := p.Parse(tt.text).Get()
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.text, err)
		}
		if got != tt.want {
			t.Fatalf("Parse(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}

	wide, err := p.WithTwoDigitYearMax(99)
	if err != nil {
		t.Fatalf("WithTwoDigitYearMax: %v", err)
	}
	got, err := wide.Parse("99-06").Get()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if want := mustYearMonth(t, 2099, 6); got != want {
		t.Fatalf("Parse = %v, want %v", got, want)
	}
}

func TestYearMonthPatternTemplateValue(t *testing.T) {
	template := mustYearMonth(t, 1970, 1)
	p, err := NewYearMonthPattern("MM", CultureInvariant(), template)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	got, err := p.Parse("09").Get()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if want := mustYearMonth(t, 1970, 9); got != want {
		t.Fatalf("Parse = %v, want %v", got, want)
	}
}

func TestYearMonthPatternParseFailures(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"month out of range", "2023-13"},
		{"trailing characters", "2023-06 "},
		{"short input", "2023"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := YearMonthPatternISO.Parse(tt.text); result.Success() {
				t.Fatalf("Parse(%q) succeeded, want failure", tt.text)
			}
		})
	}
}

func TestYearMonthPatternInconsistentMonths(t *testing.T) {
	p, err := NewYearMonthPatternInvariant("MM MMMM uuuu")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if result := p.Parse("05 June 2023"); result.Success() {
		t.Fatal("Parse succeeded, want inconsistent month values failure")
	}
}

func TestYearMonthOnDay(t *testing.T) {
	ym := mustYearMonth(t, 2023, 6)
	got, err := ym.OnDay(7)
	if err != nil {
		t.Fatalf("OnDay(7): %v", err)
	}
	if want := mustDate(t, 2023, 6, 7); got != want {
		t.Fatalf("OnDay(7) = %v, want %v", got, want)
	}
	if _, err := ym.OnDay(31); err == nil {
		t.Fatal("OnDay(31) succeeded, want error for June")
	}
}
