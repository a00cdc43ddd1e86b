package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the gateway. Handlers map the client class to a 400
// response and the upstream class to a 503 with an empty list body.
var (
	// ErrMissingCredential indicates the supplier requires an inline key
	// and the request body did not carry one. The upstream is never called.
	ErrMissingCredential = errors.New("missing supplier credential")

	// ErrEmptyRequest indicates the request body was absent or unreadable.
	ErrEmptyRequest = errors.New("empty request body")

	// ErrUpstream indicates the supplier call failed (network error,
	// non-2xx status, or a payload missing its success markers).
	ErrUpstream = errors.New("upstream supplier error")

	// ErrUnknownSupplier indicates a route matched no registered adapter.
	ErrUnknownSupplier = errors.New("unknown supplier")
)

// IsClientError reports whether err belongs to the client input class.
func IsClientError(err error) bool {
	return errors.Is(err, ErrMissingCredential) || errors.Is(err, ErrEmptyRequest)
}

// UpstreamError wraps a supplier failure with the supplier name for logging.
type UpstreamError struct {
	Supplier string
	Err      error
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("supplier %s: %v", e.Supplier, e.Err)
}

// Unwrap allows errors.Is checks against ErrUpstream and the cause.
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Is makes every UpstreamError match ErrUpstream.
func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}

// NewUpstreamError wraps err as an upstream failure for the given supplier.
func NewUpstreamError(supplier string, err error) *UpstreamError {
	return &UpstreamError{Supplier: supplier, Err: err}
}
