package datetext

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewCultureFillsDefaults(t *testing.T) {
	c, err := NewCulture(CultureData{DateSeparator: "."})
	if err != nil {
		t.Fatalf("NewCulture: %v", err)
	}
	if c.DateSeparator() != "." {
		t.Fatalf("DateSeparator() = %q, want %q", c.DateSeparator(), ".")
	}
	invariant := CultureInvariant()
	if diff := cmp.Diff(invariant.MonthNames(), c.MonthNames()); diff != "" {
		t.Fatalf("MonthNames mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(invariant.DayNames(), c.DayNames()); diff != "" {
		t.Fatalf("DayNames mismatch (-want +got):\n%s", diff)
	}
	// Genitive names default to the plain names, not the invariant ones.
	if diff := cmp.Diff(c.MonthNames(), c.MonthGenitiveNames()); diff != "" {
		t.Fatalf("MonthGenitiveNames mismatch (-want +got):\n%s", diff)
	}
}

func TestNewCultureValidatesNameLists(t *testing.T) {
	_, err := NewCulture(CultureData{MonthNames: []string{"", "January"}})
	if err == nil {
		t.Fatal("NewCulture accepted a short month name list")
	}
	_, err = NewCulture(CultureData{DayNames: []string{"", "Monday"}})
	if err == nil {
		t.Fatal("NewCulture accepted a short day name list")
	}
}

func TestCultureEraNames(t *testing.T) {
	c := CultureInvariant()
	if diff := cmp.Diff([]string{"A.D.", "AD", "CE"}, c.EraNames(EraCE)); diff != "" {
		t.Fatalf("EraNames(EraCE) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"B.C.", "BC", "BCE"}, c.EraNames(EraBCE)); diff != "" {
		t.Fatalf("EraNames(EraBCE) mismatch (-want +got):\n%s", diff)
	}
}

func TestCultureFoldCase(t *testing.T) {
	c := CultureInvariant()
	tests := []struct {
		in   string
		want string
	}{
		{"June", "june"},
		{"JUNE", "june"},
		{"straße", "strasse"},
	}
	for _, tt := range tests {
		if got := c.FoldCase(tt.in); got != tt.want {
			t.Fatalf("FoldCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCustomCulturePatterns(t *testing.T) {
	french, err := NewCulture(CultureData{
		DateSeparator: ".",
		MonthNames: []string{"",
			"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre"},
	})
	if err != nil {
		t.Fatalf("NewCulture: %v", err)
	}

	p, err := NewLocalDatePattern("dd MMMM uuuu", french, mustDate(t, 2000, 1, 1))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	value := mustDate(t, 2023, 6, 7)
	text := p.Format(value)
	if text != "07 juin 2023" {
		t.Fatalf("Format = %q, want %q", text, "07 juin 2023")
	}
	got, err := p.Parse(text).Get()
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	if got != value {
		t.Fatalf("roundtrip = %v, want %v", got, value)
	}

	// '/' in a pattern emits the culture's date separator.
	sep, err := NewLocalDatePattern("dd/MM/uuuu", french, mustDate(t, 2000, 1, 1))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if got := sep.Format(value); got != "07.06.2023" {
		t.Fatalf("Format = %q, want %q", got, "07.06.2023")
	}

	// Recompiling against a different culture swaps the text.
	invariant, err := p.WithCulture(CultureInvariant())
	if err != nil {
		t.Fatalf("WithCulture: %v", err)
	}
	if got := invariant.Format(value); got != "07 June 2023" {
		t.Fatalf("Format = %q, want %q", got, "07 June 2023")
	}
}
