package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Setup registers all middleware on the Echo instance in the correct order.
// The order is important:
//  1. RequestID - generates/propagates request IDs for all later logging
//  2. RequestLogger - logs every request with its request ID
//  3. Recover - catches panics and returns 500
//
// This function should be called before mounting the pass-through proxy and
// registering routes.
func Setup(e *echo.Echo, log zerolog.Logger) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(Recover(log))
}
