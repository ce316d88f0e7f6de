package datetext

import "fmt"

// DateTimeZone is the narrow zone capability the engine consumes: identity,
// offset lookup at an instant, and resolution of a local date/time to the
// zero, one or two instants it corresponds to.
type DateTimeZone interface {
	ID() string
	OffsetAt(instant Instant) Offset
	MapLocal(local LocalDateTime) ZoneLocalMapping
}

// ZoneLocalMapping is the result of mapping a local date/time to a zone:
// zero candidates for a skipped local time, one for an unambiguous mapping,
// two for an ambiguous one.
type ZoneLocalMapping struct {
	Zone       DateTimeZone
	Local      LocalDateTime
	candidates []ZonedDateTime
}

// Count returns the number of candidate mappings: 0, 1 or 2.
func (m ZoneLocalMapping) Count() int { return len(m.candidates) }

// Early returns the earlier candidate; it panics for a skipped local time.
func (m ZoneLocalMapping) Early() ZonedDateTime { return m.candidates[0] }

// Late returns the later candidate; it panics unless the mapping is ambiguous.
func (m ZoneLocalMapping) Late() ZonedDateTime { return m.candidates[len(m.candidates)-1] }

// Candidates returns all candidate mappings in instant order.
func (m ZoneLocalMapping) Candidates() []ZonedDateTime { return m.candidates }

// Resolver chooses a ZonedDateTime from a local mapping, or reports why no
// choice is possible.
type Resolver func(mapping ZoneLocalMapping) (ZonedDateTime, error)

// StrictResolver accepts only unambiguous mappings.
func StrictResolver(mapping ZoneLocalMapping) (ZonedDateTime, error) {
	switch mapping.Count() {
	case 1:
		return mapping.Early(), nil
	case 0:
		return ZonedDateTime{}, fmt.Errorf("local time %s is skipped in zone %s", mapping.Local, mapping.Zone.ID())
	default:
		return ZonedDateTime{}, fmt.Errorf("local time %s is ambiguous in zone %s", mapping.Local, mapping.Zone.ID())
	}
}

// LenientResolver returns the earlier candidate for ambiguous mappings and
// shifts skipped local times forward by the gap.
func LenientResolver(mapping ZoneLocalMapping) (ZonedDateTime, error) {
	if mapping.Count() > 0 {
		return mapping.Early(), nil
	}
	// Skipped: interpret using the offset before the gap, landing after it.
	zone := mapping.Zone
	before := zone.OffsetAt(mapping.Local.ToInstant(ZeroOffset))
	instant := mapping.Local.ToInstant(before)
	offset := zone.OffsetAt(instant)
	return instant.WithOffset(offset).InZoneWithOffset(zone, offset), nil
}

// ZoneProvider resolves time zone identifiers for zone-aware parsing. IDs
// must be stable between calls; longest-match parsing depends on it.
type ZoneProvider interface {
	IDs() []string
	ForID(id string) (DateTimeZone, bool)
}

// FixedZone is a zone with a constant offset and no transitions.
type FixedZone struct {
	id     string
	offset Offset
}

// UTC is the fixed zone with a zero offset.
var UTC = NewFixedZone("UTC", ZeroOffset)

// NewFixedZone creates a fixed-offset zone with the given identifier.
func NewFixedZone(id string, offset Offset) *FixedZone {
	return &FixedZone{id: id, offset: offset}
}

// ID returns the zone identifier.
func (z *FixedZone) ID() string { return z.id }

// OffsetAt returns the fixed offset, independent of the instant.
func (z *FixedZone) OffsetAt(Instant) Offset { return z.offset }

// MapLocal maps a local date/time, which is always unambiguous in a fixed zone.
func (z *FixedZone) MapLocal(local LocalDateTime) ZoneLocalMapping {
	return ZoneLocalMapping{
		Zone:       z,
		Local:      local,
		candidates: []ZonedDateTime{local.InZoneWithOffset(z, z.offset)},
	}
}

// MapProvider is a ZoneProvider backed by a fixed set of zones.
type MapProvider map[string]DateTimeZone

// NewMapProvider builds a provider from the given zones, keyed by their IDs.
func NewMapProvider(zones ...DateTimeZone) MapProvider {
	p := make(MapProvider, len(zones))
	for _, z := range zones {
		p[z.ID()] = z
	}
	return p
}

// IDs returns the identifiers of all zones in the provider.
func (p MapProvider) IDs() []string {
	ids := make([]string, 0, len(p))
	for id := range p {
		ids = append(ids, id)
	}
	return ids
}

// ForID looks up a zone by identifier.
func (p MapProvider) ForID(id string) (DateTimeZone, bool) {
	z, ok := p[id]
	return z, ok
}
