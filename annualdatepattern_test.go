package datetext

import (
	"testing"

	"github.com/nodatime/datetext/errors"
)

func mustAnnualDate(t *testing.T, month, day int) AnnualDate {
	t.Helper()
	a, err := NewAnnualDate(month, day)
	if err != nil {
		t.Fatalf("NewAnnualDate(%d, %d): %v", month, day, err)
	}
	return a
}

func TestAnnualDatePatternISO(t *testing.T) {
	tests := []struct {
		name  string
		value AnnualDate
		want  string
	}{
		{"mid-year", mustAnnualDate(t, 6, 7), "06-07"},
		{"leap day", mustAnnualDate(t, 2, 29), "02-29"},
		{"year end", mustAnnualDate(t, 12, 31), "12-31"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnnualDatePatternISO.Format(tt.value)
			if got != tt.want {
				t.Fatalf("Format(%v) = %q, want %q", tt.value, got, tt.want)
			}
			parsed, err := AnnualDatePatternISO.Parse(got).Get()
			if err != nil {
				t.Fatalf("Parse(%q): %v", got, err)
			}
			if parsed != tt.value {
				t.Fatalf("Parse(%q) = %v, want %v", got, parsed, tt.value)
			}
		})
	}
}

func TestAnnualDatePatternMonthNames(t *testing.T) {
	p, err := NewAnnualDatePatternInvariant("dd MMMM")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	value := mustAnnualDate(t, 6, 7)
	text := p.Format(value)
	if text != "07 June" {
		t.Fatalf("Format = %q, want %q", text, "07 June")
	}
	got, err := p.Parse(text).Get()
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	if got != value {
		t.Fatalf("roundtrip = %v, want %v", got, value)
	}
}

func TestAnnualDatePatternTemplateValue(t *testing.T) {
	template := mustAnnualDate(t, 12, 1)
	p, err := NewAnnualDatePattern("dd", CultureInvariant(), template)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	got, err := p.Parse("25").Get()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if want := mustAnnualDate(t, 12, 25); got != want {
		t.Fatalf("Parse = %v, want %v", got, want)
	}
}

func TestAnnualDatePatternParseFailures(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"month out of range", "13-01"},
		{"day out of range", "02-30"},
		{"trailing characters", "06-07x"},
		{"short input", "06-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := AnnualDatePatternISO.Parse(tt.text); result.Success() {
				t.Fatalf("Parse(%q) succeeded, want failure", tt.text)
			}
		})
	}
}

func TestAnnualDatePatternInconsistentMonths(t *testing.T) {
	p, err := NewAnnualDatePatternInvariant("MM MMMM")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if result := p.Parse("05 June"); result.Success() {
		t.Fatal("Parse succeeded, want inconsistent month values failure")
	}
}

func TestAnnualDatePatternUnknownStandard(t *testing.T) {
	_, err := NewAnnualDatePatternInvariant("x")
	perr, ok := errors.AsPattern(err)
	if !ok {
		t.Fatalf("error %v is not a PatternError", err)
	}
	if perr.Code != errors.ErrUnknownStandardFormat {
		t.Fatalf("Code = %q, want %q", perr.Code, errors.ErrUnknownStandardFormat)
	}
}

func TestAnnualDateInYear(t *testing.T) {
	leap := mustAnnualDate(t, 2, 29)
	got, err := leap.InYear(2023)
	if err != nil {
		t.Fatalf("InYear(2023): %v", err)
	}
	if want := mustDate(t, 2023, 2, 28); got != want {
		t.Fatalf("InYear(2023) = %v, want %v", got, want)
	}
	got, err = leap.InYear(2024)
	if err != nil {
		t.Fatalf("InYear(2024): %v", err)
	}
	if want := mustDate(t, 2024, 2, 29); got != want {
		t.Fatalf("InYear(2024) = %v, want %v", got, want)
	}
}
