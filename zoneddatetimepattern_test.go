package datetext

import (
	"testing"
)

// transitionZone is a synthetic zone for resolver tests: local times in the
// 02:00 hour are skipped and local times in the 01:00 hour are ambiguous
// between daylight and standard offsets.
type transitionZone struct {
	id       string
	standard Offset
	daylight Offset
}

func (z *transitionZone) ID() string              { return z.id }
func (z *transitionZone) OffsetAt(Instant) Offset { return z.standard }
func (z *transitionZone) MapLocal(local LocalDateTime) ZoneLocalMapping {
	switch local.TimeOfDay().Hour() {
	case 2:
		return ZoneLocalMapping{Zone: z, Local: local}
	case 1:
		return ZoneLocalMapping{
			Zone:  z,
			Local: local,
			candidates: []ZonedDateTime{
				local.InZoneWithOffset(z, z.daylight),
				local.InZoneWithOffset(z, z.standard),
			},
		}
	default:
		return ZoneLocalMapping{
			Zone:       z,
			Local:      local,
			candidates: []ZonedDateTime{local.InZoneWithOffset(z, z.standard)},
		}
	}
}

func TestZonedDateTimePatternGeneralISO(t *testing.T) {
	zone := NewFixedZone("America/New_York", mustOffset(t, -5*3600))
	provider := NewMapProvider(UTC, zone)
	p, err := NewZonedDateTimePatternInvariant("G", provider)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	text := "2023-06-07T13:02:03 America/New_York"
	got, err := p.Parse(text).Get()
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	if got.Zone().ID() != "America/New_York" {
		t.Fatalf("Zone().ID() = %q, want %q", got.Zone().ID(), "America/New_York")
	}
	if want := mustDateTime(t, 2023, 6, 7, 13, 2, 3); got.LocalDateTime() != want {
		t.Fatalf("LocalDateTime() = %v, want %v", got.LocalDateTime(), want)
	}
	if want := mustOffset(t, -5*3600); got.Offset() != want {
		t.Fatalf("Offset() = %v, want %v", got.Offset(), want)
	}
	if formatted := p.Format(got); formatted != text {
		t.Fatalf("Format = %q, want %q", formatted, text)
	}
}

func TestZonedDateTimePatternZoneIDLongestMatch(t *testing.T) {
	short := NewFixedZone("Etc/GMT", ZeroOffset)
	long := NewFixedZone("Etc/GMT+1", mustOffset(t, -3600))
	provider := NewMapProvider(short, long)
	p, err := NewZonedDateTimePatternInvariant("G", provider)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	got, err := p.Parse("2023-06-07T13:02:03 Etc/GMT+1").Get()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.Zone().ID() != "Etc/GMT+1" {
		t.Fatalf("Zone().ID() = %q, want %q", got.Zone().ID(), "Etc/GMT+1")
	}
}

func TestZonedDateTimePatternNoMatchingZoneID(t *testing.T) {
	p, err := NewZonedDateTimePatternInvariant("G", NewMapProvider(UTC))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if result := p.Parse("2023-06-07T13:02:03 Europe/Paris"); result.Success() {
		t.Fatal("Parse succeeded, want failure for unknown zone identifier")
	}
}

func TestZonedDateTimePatternStrictResolver(t *testing.T) {
	zone := &transitionZone{
		id:       "Test/Transition",
		standard: mustOffset(t, 3600),
		daylight: mustOffset(t, 2*3600),
	}
	p, err := NewZonedDateTimePatternInvariant("G", NewMapProvider(zone))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	tests := []struct {
		name string
		text string
	}{
		{"skipped local time", "2023-03-26T02:30:00 Test/Transition"},
		{"ambiguous local time", "2023-10-29T01:30:00 Test/Transition"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := p.Parse(tt.text); result.Success() {
				t.Fatalf("Parse(%q) succeeded, want failure", tt.text)
			}
		})
	}
}

func TestZonedDateTimePatternLenientResolver(t *testing.T) {
	zone := &transitionZone{
		id:       "Test/Transition",
		standard: mustOffset(t, 3600),
		daylight: mustOffset(t, 2*3600),
	}
	p, err := NewZonedDateTimePattern("G", CultureInvariant(), NewMapProvider(zone), LenientResolver)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	ambiguous, err := p.Parse("2023-10-29T01:30:00 Test/Transition").Get()
	if err != nil {
		t.Fatalf("Parse ambiguous: %v", err)
	}
	if want := mustOffset(t, 2*3600); ambiguous.Offset() != want {
		t.Fatalf("ambiguous Offset() = %v, want earlier candidate %v", ambiguous.Offset(), want)
	}

	skipped, err := p.Parse("2023-03-26T02:30:00 Test/Transition").Get()
	if err != nil {
		t.Fatalf("Parse skipped: %v", err)
	}
	if want := mustOffset(t, 3600); skipped.Offset() != want {
		t.Fatalf("skipped Offset() = %v, want %v", skipped.Offset(), want)
	}
	if want := mustDateTime(t, 2023, 3, 26, 2, 30, 0); skipped.LocalDateTime() != want {
		t.Fatalf("skipped LocalDateTime() = %v, want %v", skipped.LocalDateTime(), want)
	}
}

func TestZonedDateTimePatternEmbeddedLocal(t *testing.T) {
	zone := NewFixedZone("UTC+2", mustOffset(t, 2*3600))
	p, err := NewZonedDateTimePatternInvariant("l<dd MMMM uuuu HH':'mm> z", NewMapProvider(zone))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	text := "07 June 2023 13:02 UTC+2"
	got, err := p.Parse(text).Get()
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	if want := mustDateTime(t, 2023, 6, 7, 13, 2, 0); got.LocalDateTime() != want {
		t.Fatalf("LocalDateTime() = %v, want %v", got.LocalDateTime(), want)
	}
	if formatted := p.Format(got); formatted != text {
		t.Fatalf("Format = %q, want %q", formatted, text)
	}
}
