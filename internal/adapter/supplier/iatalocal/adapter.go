// Package iatalocal adapts the legacy search schema to the local GDS-style
// aggregator. The aggregator is internally trusted (no caller credential),
// returns flat one-way fare/trip/leg records with integer-minute durations
// and free-text baggage, and its fares carry the domestic/international
// service fee rule.
package iatalocal

import (
	"github.com/sajidmahamud835/ota-proxy/internal/domain"
	"github.com/sajidmahamud835/ota-proxy/internal/infrastructure/timeutil"
)

// SupplierName is the unique tag for this adapter.
const SupplierName = "iatalocal"

// Adapter implements domain.SupplierAdapter for the local GDS aggregator.
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

// RequiresCredential reports that this supplier is internally trusted.
func (a *Adapter) RequiresCredential() bool {
	return false
}

// MapRequest converts a legacy search request into the GDS payload. The
// outbound journey is always built; the return journey (endpoints swapped)
// only for an effective round trip.
func (a *Adapter) MapRequest(req domain.SearchRequest) (*domain.UpstreamRequest, error) {
	journeys := []journey{{
		Origin:        req.OriginCode(),
		Destination:   req.DestinationCode(),
		DepartureDate: timeutil.ConvertDateToDDMonYYYY(req.DepartureDate),
	}}

	if req.IsRound() {
		journeys = append(journeys, journey{
			Origin:        req.DestinationCode(),
			Destination:   req.OriginCode(),
			DepartureDate: timeutil.ConvertDateToDDMonYYYY(req.ReturnDate),
		})
	}

	return &domain.UpstreamRequest{
		URL: a.endpoint,
		Body: searchPayload{
			Journeys: journeys,
			Adults:   req.Adults,
			Children: req.Children,
			Infants:  req.Infants,
			Cabin:    req.CabinClass,
			Currency: req.Currency,
		},
	}, nil
}
