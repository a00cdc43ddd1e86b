// Package pairing groups one-way supplier trip records into bookable
// itineraries. Round-trip pairing is intentionally strict: an itinerary is
// emitted only when both directions are present for the same fare identity,
// and unmatched halves are dropped silently. Showing a one-sided round trip
// would let the caller book an incomplete journey.
package pairing

import "github.com/sajidmahamud835/ota-proxy/internal/domain"

// Half is one direction of a potential itinerary as produced by a supplier
// normalizer: the fare identity key, the direction flag, and the already
// canonicalized segments for that direction.
type Half struct {
	// Key is the composite fare identity, e.g. "fareSourceKey|gdsBookingId"
	Key string

	// Inbound is false for outbound records, true for return records
	Inbound bool

	// Segments are the canonical legs of this direction
	Segments []domain.Segment
}

// Pair assembles itineraries from directional halves.
//
// For one-way searches every outbound half becomes its own itinerary and
// inbound records are ignored. For round-trip searches the halves are
// indexed by key into an outbound and an inbound map; an itinerary is
// emitted iff the same key appears in both maps, so the emitted count equals
// the size of the key intersection.
func Pair(round bool, halves []Half) []domain.Itinerary {
	itineraries := make([]domain.Itinerary, 0, len(halves))

	if !round {
		for _, h := range halves {
			if h.Inbound || len(h.Segments) == 0 {
				continue
			}
			itineraries = append(itineraries, domain.NewOneWay(h.Segments))
		}
		return itineraries
	}

	outbound := make(map[string][]domain.Segment)
	inbound := make(map[string][]domain.Segment)
	order := make([]string, 0, len(halves))

	for _, h := range halves {
		if len(h.Segments) == 0 {
			continue
		}
		if h.Inbound {
			inbound[h.Key] = h.Segments
			continue
		}
		if _, seen := outbound[h.Key]; !seen {
			order = append(order, h.Key)
		}
		outbound[h.Key] = h.Segments
	}

	for _, key := range order {
		in, ok := inbound[key]
		if !ok {
			continue
		}
		itineraries = append(itineraries, domain.NewRoundTrip(outbound[key], in))
	}

	return itineraries
}

// Group is the alternative single-key grouping shape used by suppliers whose
// records already carry both directions: slot 0 holds the outbound legs,
// slot 1 the inbound legs.
type Group struct {
	Slots [2][]domain.Segment
}

// FromGroups assembles itineraries from keyed groups, preserving the order
// of keys. Round-trip groups must have both slots non-empty and one-way
// groups a non-empty slot 0; anything else is discarded.
func FromGroups(round bool, keys []string, groups map[string]*Group) []domain.Itinerary {
	itineraries := make([]domain.Itinerary, 0, len(keys))

	for _, key := range keys {
		g, ok := groups[key]
		if !ok || len(g.Slots[0]) == 0 {
			continue
		}
		if round {
			if len(g.Slots[1]) == 0 {
				continue
			}
			itineraries = append(itineraries, domain.NewRoundTrip(g.Slots[0], g.Slots[1]))
			continue
		}
		itineraries = append(itineraries, domain.NewOneWay(g.Slots[0]))
	}

	return itineraries
}
