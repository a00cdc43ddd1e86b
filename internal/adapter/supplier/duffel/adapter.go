// Package duffel adapts the legacy search schema to a generic fare
// aggregator. The aggregator speaks ISO-8601 durations, per-passenger
// baggage arrays and offer/slice/segment records, and authenticates with a
// bearer token the caller supplies inline.
package duffel

import (
	"github.com/sajidmahamud835/ota-proxy/internal/domain"
)

// SupplierName is the unique tag for this adapter, matched by the route
// classifier and stamped on every emitted segment.
const SupplierName = "duffel"

// Passenger types in the aggregator's request schema, emitted in fixed
// order: all adults, then all children, then all infants.
const (
	paxAdult  = "adult"
	paxChild  = "child"
	paxInfant = "infant_without_seat"
)

// Adapter implements domain.SupplierAdapter for the fare aggregator.
type Adapter struct {
	endpoint string
}

// NewAdapter creates an Adapter posting to the given search endpoint.
func NewAdapter(endpoint string) *Adapter {
	return &Adapter{endpoint: endpoint}
}

// Name returns the supplier tag.
func (a *Adapter) Name() string {
	return SupplierName
}

// RequiresCredential reports that this supplier needs an inline API key.
func (a *Adapter) RequiresCredential() bool {
	return true
}

// MapRequest converts a legacy search request into the aggregator payload.
func (a *Adapter) MapRequest(req domain.SearchRequest) (*domain.UpstreamRequest, error) {
	if req.APIKey == "" {
		return nil, domain.ErrMissingCredential
	}

	slices := []searchSlice{{
		Origin:        req.OriginCode(),
		Destination:   req.DestinationCode(),
		DepartureDate: req.DepartureDate,
	}}

	// The return slice swaps the endpoints and is only built for an
	// effective round trip; trip_type=round without a return date
	// degrades to one-way.
	if req.IsRound() {
		slices = append(slices, searchSlice{
			Origin:        req.DestinationCode(),
			Destination:   req.OriginCode(),
			DepartureDate: req.ReturnDate,
		})
	}

	return &domain.UpstreamRequest{
		URL: a.endpoint,
		Headers: map[string]string{
			"Authorization": "Bearer " + req.APIKey,
		},
		Body: searchPayload{Data: searchData{
			Slices:     slices,
			Passengers: buildPassengers(req),
			CabinClass: req.CabinClass,
			Currency:   req.Currency,
		}},
	}, nil
}

// buildPassengers emits one entry per travelling unit, adults first, then
// children, then infants.
func buildPassengers(req domain.SearchRequest) []searchPassenger {
	passengers := make([]searchPassenger, 0, req.PassengerCount())
	for i := 0; i < req.Adults; i++ {
		passengers = append(passengers, searchPassenger{Type: paxAdult})
	}
	for i := 0; i < req.Children; i++ {
		passengers = append(passengers, searchPassenger{Type: paxChild})
	}
	for i := 0; i < req.Infants; i++ {
		passengers = append(passengers, searchPassenger{Type: paxInfant})
	}
	return passengers
}
