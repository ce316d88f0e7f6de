package datetext

import (
	"fmt"
	"sync"
	"testing"
)

func mustDateTime(t *testing.T, year, month, day, hour, minute, second int) LocalDateTime {
	t.Helper()
	dt, err := NewLocalDateTime(year, month, day, hour, minute, second)
	if err != nil {
		t.Fatalf("NewLocalDateTime: %v", err)
	}
	return dt
}

func TestLocalDateTimePatternRoundtrip(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		value   LocalDateTime
		want    string
	}{
		{
			name:    "general iso",
			pattern: "uuuu'-'MM'-'dd'T'HH':'mm':'ss",
			value:   mustDateTime(t, 2023, 6, 7, 13, 2, 3),
			want:    "2023-06-07T13:02:03",
		},
		{
			name:    "date and twelve hour clock",
			pattern: "d MMMM uuuu h':'mm tt",
			value:   mustDateTime(t, 2023, 6, 7, 21, 30, 0),
			want:    "7 June 2023 9:30 PM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewLocalDateTimePatternInvariant(tt.pattern)
			if err != nil {
				t.Fatalf("compile %q: %v", tt.pattern, err)
			}
			if got := p.Format(tt.value); got != tt.want {
				t.Fatalf("Format() = %q, want %q", got, tt.want)
			}
			back, err := p.Parse(tt.want).Get()
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.want, err)
			}
			if back != tt.value {
				t.Fatalf("Parse(%q) = %v, want %v", tt.want, back, tt.value)
			}
		})
	}
}

func TestLocalDateTimePatternStandards(t *testing.T) {
	value := mustDateTime(t, 2023, 6, 7, 13, 2, 3)
	tests := []struct {
		standard string
		want     string
	}{
		{standard: "s", want: "2023-06-07T13:02:03"},
		{standard: "o", want: "2023-06-07T13:02:03"},
		{standard: "g", want: "06/07/2023 13:02"},
		{standard: "G", want: "06/07/2023 13:02:03"},
	}
	for _, tt := range tests {
		p, err := NewLocalDateTimePatternInvariant(tt.standard)
		if err != nil {
			t.Fatalf("compile %q: %v", tt.standard, err)
		}
		if got := p.Format(value); got != tt.want {
			t.Fatalf("Format(%q) = %q, want %q", tt.standard, got, tt.want)
		}
	}
}

func TestLocalDateTimePatternExtendedISOFraction(t *testing.T) {
	base := mustDateTime(t, 2023, 6, 7, 13, 2, 3)
	text := LocalDateTimePatternExtendedISO.Format(base)
	if text != "2023-06-07T13:02:03" {
		t.Fatalf("Format() = %q, want no fraction for a whole second", text)
	}
	got, err := LocalDateTimePatternExtendedISO.Parse("2023-06-07T13:02:03.5").Get()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.TimeOfDay().NanosecondOfSecond() != 500000000 {
		t.Fatalf("NanosecondOfSecond() = %d, want 500000000", got.TimeOfDay().NanosecondOfSecond())
	}
}

func TestInstantPatternGeneral(t *testing.T) {
	instant := InstantFromUnixSeconds(86400 + 3600)
	text := InstantPatternGeneral.Format(instant)
	if text != "1970-01-02T01:00:00Z" {
		t.Fatalf("Format() = %q", text)
	}
	back, err := InstantPatternGeneral.Parse(text).Get()
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	if back != instant {
		t.Fatalf("roundtrip = %v, want %v", back, instant)
	}
}

func TestInstantPatternParseFailure(t *testing.T) {
	if result := InstantPatternGeneral.Parse("1970-01-02T01:00:00"); result.Success() {
		t.Fatal("Parse without trailing Z succeeded, want failure")
	}
}

func TestInstantPatternBeforeEpoch(t *testing.T) {
	instant := InstantFromUnixSeconds(-1)
	text := InstantPatternGeneral.Format(instant)
	if text != "1969-12-31T23:59:59Z" {
		t.Fatalf("Format() = %q", text)
	}
	back, err := InstantPatternGeneral.Parse(text).Get()
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	if back != instant {
		t.Fatalf("roundtrip = %v, want %v", back, instant)
	}
}

func TestLocalDateTimePatternConcurrentUse(t *testing.T) {
	p, err := NewLocalDateTimePatternInvariant("uuuu'-'MM'-'dd'T'HH':'mm':'ss")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	value := mustDateTime(t, 2023, 6, 7, 13, 2, 3)

	const goroutines = 8
	const iterations = 25

	errCh := make(chan error, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				text := p.Format(value)
				got, err := p.Parse(text).Get()
				if err != nil {
					errCh <- err
					return
				}
				if got != value {
					errCh <- fmt.Errorf("roundtrip = %v, want %v", got, value)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("concurrent pattern use: %v", err)
	}
}
