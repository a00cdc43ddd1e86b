// Package usecase contains the business logic of the gateway: the adapter
// orchestration that maps a legacy request, calls the matched supplier once,
// and normalizes the response into the canonical itinerary list.
package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sajidmahamud835/ota-proxy/internal/domain"
	"github.com/sajidmahamud835/ota-proxy/internal/infrastructure/upstream"
)

// AdaptUseCase defines the interface for adapted supplier searches.
type AdaptUseCase interface {
	// Adapt runs one full map -> call -> normalize cycle for the given
	// supplier. Client input problems surface as client-class sentinel
	// errors before any upstream call; supplier failures surface as
	// ErrUpstream. A successful search with zero results returns an
	// empty, non-nil list.
	Adapt(ctx context.Context, supplier string, req domain.SearchRequest) ([]domain.Itinerary, error)
}

// adaptUseCase implements AdaptUseCase. It holds no per-request state; every
// search lives entirely on its own stack.
type adaptUseCase struct {
	registry *domain.SupplierRegistry
	caller   upstream.Caller
	log      zerolog.Logger
}

// NewAdaptUseCase creates an AdaptUseCase from a supplier registry and an
// upstream caller.
func NewAdaptUseCase(registry *domain.SupplierRegistry, caller upstream.Caller, log zerolog.Logger) AdaptUseCase {
	return &adaptUseCase{
		registry: registry,
		caller:   caller,
		log:      log,
	}
}

// Adapt implements AdaptUseCase.
func (uc *adaptUseCase) Adapt(ctx context.Context, supplier string, req domain.SearchRequest) ([]domain.Itinerary, error) {
	adapter, err := uc.registry.Get(supplier)
	if err != nil {
		return nil, err
	}

	// Credential check happens before mapping so the upstream is never
	// called for an unauthenticated request.
	if adapter.RequiresCredential() && req.APIKey == "" {
		return nil, domain.ErrMissingCredential
	}

	mapped, err := adapter.MapRequest(req)
	if err != nil {
		return nil, err
	}

	body, err := uc.caller.Call(ctx, supplier, mapped)
	if err != nil {
		uc.log.Error().
			Str("supplier", supplier).
			Err(err).
			Msg("Supplier call failed")
		return nil, domain.NewUpstreamError(supplier, err)
	}

	itineraries, err := adapter.Normalize(body, req)
	if err != nil {
		return nil, domain.NewUpstreamError(supplier, err)
	}
	if itineraries == nil {
		itineraries = []domain.Itinerary{}
	}

	uc.log.Info().
		Str("supplier", supplier).
		Int("itineraries", len(itineraries)).
		Str("trip_type", req.TripType).
		Msg("Search adapted")

	return itineraries, nil
}
