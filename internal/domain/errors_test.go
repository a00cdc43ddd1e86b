package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpstreamError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewUpstreamError("duffel", cause)

	assert.Contains(t, err.Error(), "duffel")
	assert.Contains(t, err.Error(), "connection refused")
	assert.True(t, errors.Is(err, ErrUpstream))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, IsClientError(err))
}

func TestIsClientError(t *testing.T) {
	assert.True(t, IsClientError(ErrMissingCredential))
	assert.True(t, IsClientError(ErrEmptyRequest))
	assert.False(t, IsClientError(ErrUpstream))
	assert.False(t, IsClientError(errors.New("other")))
}

func TestSupplierRegistry(t *testing.T) {
	registry := NewSupplierRegistry()

	_, err := registry.Get("nope")
	assert.True(t, errors.Is(err, ErrUnknownSupplier))
}
