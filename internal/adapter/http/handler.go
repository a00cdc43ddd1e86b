package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sajidmahamud835/ota-proxy/internal/adapter/http/response"
	"github.com/sajidmahamud835/ota-proxy/internal/domain"
	"github.com/sajidmahamud835/ota-proxy/internal/usecase"
)

// GatewayHandler handles requests for the adapted supplier modules.
type GatewayHandler struct {
	useCase usecase.AdaptUseCase
}

// NewGatewayHandler creates a GatewayHandler with the given use case.
func NewGatewayHandler(uc usecase.AdaptUseCase) *GatewayHandler {
	return &GatewayHandler{useCase: uc}
}

// Dispatch handles every request the pass-through proxy skipped: it
// classifies the path again, binds the legacy body and runs the adapter
// orchestration for the matched supplier.
func (h *GatewayHandler) Dispatch(c echo.Context) error {
	route := Classify(c.Request().URL.Path)
	supplier := route.Supplier()
	if supplier == "" {
		// Only reachable when the proxy middleware is not mounted.
		return response.NotFound(c, "no adapter for this path")
	}

	if c.Request().Method != http.MethodPost {
		return response.MethodNotAllowed(c)
	}

	body, err := BindLegacyBody(c)
	if err != nil {
		return response.BadRequest(c, response.CodeInvalidRequest, "Request body is empty or unreadable")
	}

	req := domain.ParseSearchRequest(body)

	itineraries, err := h.useCase.Adapt(c.Request().Context(), supplier, req)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, itineraries)
}

// handleError maps domain errors onto the legacy response contract: client
// input problems get a structured 400, everything upstream-shaped gets a 503
// with an empty list body.
func (h *GatewayHandler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrMissingCredential):
		return response.BadRequest(c, response.CodeMissingCredential, "Supplier credential is required")
	case errors.Is(err, domain.ErrEmptyRequest):
		return response.BadRequest(c, response.CodeInvalidRequest, "Request body is empty or unreadable")
	case errors.Is(err, domain.ErrUnknownSupplier):
		return response.NotFound(c, "no adapter for this path")
	default:
		return response.UpstreamFailure(c)
	}
}

// Health handles GET /health.
func (h *GatewayHandler) Health(c echo.Context) error {
	return response.Health(c)
}
