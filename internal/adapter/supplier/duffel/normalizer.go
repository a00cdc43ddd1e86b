package duffel

import (
	"encoding/json"
	"fmt"

	"github.com/sajidmahamud835/ota-proxy/internal/domain"
	"github.com/sajidmahamud835/ota-proxy/internal/infrastructure/timeutil"
	"github.com/sajidmahamud835/ota-proxy/internal/pairing"
)

// Baggage allowance display strings.
const (
	noBaggage = "None"
)

// Normalize converts a raw aggregator response into canonical itineraries.
// An undecodable body is an upstream failure; valid JSON without the
// data/offers markers yields an empty list; a malformed individual offer is
// skipped without failing the response.
func (a *Adapter) Normalize(body []byte, req domain.SearchRequest) ([]domain.Itinerary, error) {
	var resp offersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode offers response: %w", err)
	}
	if resp.Data == nil || resp.Data.Offers == nil {
		return []domain.Itinerary{}, nil
	}

	round := req.IsRound()

	// Offers carry both directions already, so they group by offer id
	// with a two-slot leg array instead of composite-key pairing.
	keys := make([]string, 0, len(resp.Data.Offers))
	groups := make(map[string]*pairing.Group, len(resp.Data.Offers))

	for _, o := range resp.Data.Offers {
		group, err := a.offerGroup(o, req)
		if err != nil {
			continue
		}
		keys = append(keys, o.ID)
		groups[o.ID] = group
	}

	return pairing.FromGroups(round, keys, groups), nil
}

// offerGroup converts one offer into a two-slot leg group. Offers missing
// required fields are rejected so a shape drift upstream degrades to fewer
// results instead of corrupt segments.
func (a *Adapter) offerGroup(off offer, req domain.SearchRequest) (*pairing.Group, error) {
	if off.ID == "" || len(off.Slices) == 0 {
		return nil, fmt.Errorf("offer missing id or slices")
	}

	checked, carryOn := baggageAllowance(off.Passengers)
	payload, err := json.Marshal(bookingRef{OfferID: off.ID})
	if err != nil {
		return nil, err
	}

	group := &pairing.Group{}
	for i, slice := range off.Slices {
		if i > 1 {
			break
		}
		segments := make([]domain.Segment, 0, len(slice.Segments))
		for _, seg := range slice.Segments {
			canonical, err := normalizeSegment(seg, off, req, checked, carryOn, payload)
			if err != nil {
				return nil, err
			}
			segments = append(segments, canonical)
		}
		if len(segments) == 0 {
			return nil, fmt.Errorf("offer %s has an empty slice", off.ID)
		}
		group.Slots[i] = segments
	}

	return group, nil
}

// normalizeSegment converts one aggregator segment into the canonical shape.
func normalizeSegment(seg offerSegment, off offer, req domain.SearchRequest, checked, carryOn string, payload json.RawMessage) (domain.Segment, error) {
	if seg.Origin.IATACode == "" || seg.Destination.IATACode == "" {
		return domain.Segment{}, fmt.Errorf("segment missing airport codes")
	}
	if seg.DepartingAt == "" || seg.ArrivingAt == "" {
		return domain.Segment{}, fmt.Errorf("segment missing timestamps")
	}

	cabin := req.CabinClass
	if len(seg.Passengers) > 0 && seg.Passengers[0].CabinClass != "" {
		cabin = seg.Passengers[0].CabinClass
	}

	currency := off.TotalCurrency
	if currency == "" {
		currency = req.Currency
	}

	actual := off.BaseAmount
	if actual == "" {
		actual = off.TotalAmount
	}

	return domain.Segment{
		AirlineName:        seg.MarketingCarrier.Name,
		AirlineCode:        seg.MarketingCarrier.IATACode,
		FlightNumber:       seg.MarketingCarrierFlightNumber,
		CabinClass:         cabin,
		Baggage:            checked,
		CabinBaggage:       carryOn,
		OriginAirport:      seg.Origin.Name,
		OriginCode:         seg.Origin.IATACode,
		DestinationAirport: seg.Destination.Name,
		DestinationCode:    seg.Destination.IATACode,
		DepartureDate:      timeutil.DatePart(seg.DepartingAt),
		DepartureTime:      timeutil.TimePart(seg.DepartingAt),
		ArrivalDate:        timeutil.DatePart(seg.ArrivingAt),
		ArrivalTime:        timeutil.TimePart(seg.ArrivingAt),
		Duration:           timeutil.FormatISODuration(seg.Duration),
		BookingPayload:     payload,
		Supplier:           SupplierName,
		TripType:           req.TripType,
		Refundable:         off.Conditions.RefundBeforeDeparture != nil && off.Conditions.RefundBeforeDeparture.Allowed,
		Price:              off.TotalAmount,
		ActualPrice:        actual,
		AdultPrice:         off.TotalAmount,
		ChildPrice:         off.TotalAmount,
		InfantPrice:        off.TotalAmount,
		Currency:           currency,
	}, nil
}

// baggageAllowance renders the first passenger's checked and carry-on
// allowances as display strings, or the fixed none string when absent.
func baggageAllowance(passengers []offerPassenger) (checked, carryOn string) {
	checked, carryOn = noBaggage, noBaggage
	if len(passengers) == 0 {
		return checked, carryOn
	}
	for _, b := range passengers[0].Baggages {
		switch b.Type {
		case "checked":
			checked = fmt.Sprintf("%d piece(s)", b.Quantity)
		case "carry_on":
			carryOn = fmt.Sprintf("%d piece(s)", b.Quantity)
		}
	}
	return checked, carryOn
}
