package iatalocal

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sajidmahamud835/ota-proxy/internal/domain"
	"github.com/sajidmahamud835/ota-proxy/internal/infrastructure/timeutil"
	"github.com/sajidmahamud835/ota-proxy/internal/pairing"
)

// baggageLabel is the literal prefix the GDS prepends to its free-text
// baggage field.
const baggageLabel = "Baggage:"

// Normalize converts a raw GDS response into canonical itineraries. An
// undecodable body is an upstream failure; valid JSON without success=true
// and the trips collection yields an empty list; malformed individual trips
// are skipped.
func (a *Adapter) Normalize(body []byte, req domain.SearchRequest) ([]domain.Itinerary, error) {
	var resp tripsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode trips response: %w", err)
	}
	if !resp.Success || resp.Data == nil || resp.Data.Trips == nil {
		return []domain.Itinerary{}, nil
	}

	halves := make([]pairing.Half, 0, len(resp.Data.Trips))
	for _, t := range resp.Data.Trips {
		half, err := normalizeTrip(t, req)
		if err != nil {
			continue
		}
		halves = append(halves, half)
	}

	return pairing.Pair(req.IsRound(), halves), nil
}

// normalizeTrip converts one fare record into a directional pairing half.
// Records missing their fare identity or leg routing fields are rejected.
func normalizeTrip(t trip, req domain.SearchRequest) (pairing.Half, error) {
	if t.FareSourceKey == "" || len(t.Legs) == 0 {
		return pairing.Half{}, fmt.Errorf("trip missing fare source key or legs")
	}

	price := fareWithFee(t)
	payload, err := json.Marshal(bookingRef{
		FareSourceKey: t.FareSourceKey,
		GdsBookingID:  t.GdsBookingID,
	})
	if err != nil {
		return pairing.Half{}, err
	}

	currency := t.Currency
	if currency == "" {
		currency = req.Currency
	}

	segments := make([]domain.Segment, 0, len(t.Legs))
	for _, l := range t.Legs {
		if l.OriginCode == "" || l.DestinationCode == "" || l.DepartureTime == "" {
			return pairing.Half{}, fmt.Errorf("leg missing routing fields")
		}

		cabin := l.Cabin
		if cabin == "" {
			cabin = req.CabinClass
		}

		segments = append(segments, domain.Segment{
			AirlineName:        l.AirlineName,
			AirlineCode:        l.AirlineCode,
			FlightNumber:       l.FlightNumber,
			CabinClass:         cabin,
			Baggage:            cleanBaggage(t.Baggage),
			OriginAirport:      l.OriginAirport,
			OriginCode:         l.OriginCode,
			DestinationAirport: l.DestinationAirport,
			DestinationCode:    l.DestinationCode,
			DepartureDate:      timeutil.DatePart(l.DepartureTime),
			DepartureTime:      timeutil.TimePart(l.DepartureTime),
			ArrivalDate:        timeutil.DatePart(l.ArrivalTime),
			ArrivalTime:        timeutil.TimePart(l.ArrivalTime),
			Duration:           timeutil.FormatMinutes(l.DurationMinutes),
			BookingPayload:     payload,
			Supplier:           SupplierName,
			TripType:           req.TripType,
			Refundable:         t.Refundable,
			Price:              price,
			ActualPrice:        price,
			AdultPrice:         price,
			ChildPrice:         price,
			InfantPrice:        price,
			Currency:           currency,
		})
	}

	return pairing.Half{
		Key:      t.FareSourceKey + "|" + t.GdsBookingID,
		Inbound:  t.IsReturn,
		Segments: segments,
	}, nil
}

// fareWithFee applies the service fee rule to the raw GDS fare and renders
// the result as a decimal string. Domestic trips (same origin and
// destination country on the routing) get fare*0.97+100; international
// trips get fare*0.95 plus the larger of 1000 and 2% of the fare. The
// result is rounded to the nearest integer currency unit.
func fareWithFee(t trip) string {
	fare := t.FFare

	var total float64
	if isDomestic(t) {
		total = fare*0.97 + 100
	} else {
		total = fare*0.95 + math.Max(1000, fare*0.02)
	}

	return strconv.FormatInt(int64(math.Round(total)), 10)
}

// isDomestic compares the country codes of the first departure and the last
// arrival. Unknown countries are treated as international, the safer fee.
func isDomestic(t trip) bool {
	if len(t.Legs) == 0 {
		return false
	}
	origin := t.Legs[0].OriginCountry
	destination := t.Legs[len(t.Legs)-1].DestinationCountry
	return origin != "" && origin == destination
}

// cleanBaggage strips the GDS's literal "Baggage:" label and trims.
func cleanBaggage(b string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(b), baggageLabel))
}
