// Package response provides standardized HTTP response builders for the
// gateway. The legacy caller renders search responses as arrays, so upstream
// failures answer with an empty list rather than an error document.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorDetail contains structured error information for client errors.
type ErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`
}

// Error codes used in API responses.
const (
	CodeInvalidRequest    = "invalid_request"
	CodeMissingCredential = "missing_credential"
	CodeUnknownSupplier   = "unknown_supplier"
	CodeInternalError     = "internal_error"
)

// OK writes a 200 OK response with the given data.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// BadRequest writes a 400 Bad Request response with the given code and message.
func BadRequest(c echo.Context, code, message string) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    code,
		Message: message,
	})
}

// NotFound writes a 404 Not Found response.
func NotFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, &ErrorDetail{
		Code:    CodeUnknownSupplier,
		Message: message,
	})
}

// MethodNotAllowed writes a 405 Method Not Allowed response.
func MethodNotAllowed(c echo.Context) error {
	return c.JSON(http.StatusMethodNotAllowed, &ErrorDetail{
		Code:    CodeInvalidRequest,
		Message: "Method not allowed on this endpoint",
	})
}

// UpstreamFailure writes a 503 response with an empty list body. The legacy
// caller always expects an array and would break on an error object here.
func UpstreamFailure(c echo.Context) error {
	return c.JSON(http.StatusServiceUnavailable, []interface{}{})
}

// InternalServerError writes a 500 Internal Server Error response.
func InternalServerError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, &ErrorDetail{
		Code:    CodeInternalError,
		Message: "An unexpected error occurred",
	})
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health writes a health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{Status: "ok"})
}
