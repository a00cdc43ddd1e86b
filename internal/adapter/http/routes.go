package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes attaches the gateway's local routes. Everything else is
// handled by the pass-through proxy middleware before routing happens.
func RegisterRoutes(e *echo.Echo, h *GatewayHandler) {
	// Health check endpoint (served locally, never proxied)
	e.GET("/health", h.Health)

	// Adapted module requests fall through the proxy skipper to here.
	// The catch-all keeps routing case-insensitive: Dispatch classifies
	// the raw path itself.
	e.Any("/*", h.Dispatch)
}
