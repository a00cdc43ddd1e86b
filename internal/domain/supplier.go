package domain

// UpstreamRequest is a mapped supplier request ready to be POSTed. The Body
// is any JSON-serializable value; Headers carry supplier-specific auth.
type UpstreamRequest struct {
	// URL is the absolute supplier endpoint
	URL string

	// Headers are supplier-specific headers added on top of the JSON
	// content negotiation headers (e.g. "Authorization")
	Headers map[string]string

	// Body is the supplier request payload, marshalled as JSON
	Body interface{}
}

// SupplierAdapter translates between the legacy search schema and one
// upstream supplier. Implementations are stateless and safe for concurrent
// use; both methods are pure with respect to process state.
type SupplierAdapter interface {
	// Name returns the adapter's unique supplier tag (lowercase).
	Name() string

	// RequiresCredential reports whether the supplier needs an inline
	// API key from the request body.
	RequiresCredential() bool

	// MapRequest converts a legacy search request into the supplier's
	// request payload. It returns ErrMissingCredential when a required
	// credential is absent.
	MapRequest(req SearchRequest) (*UpstreamRequest, error)

	// Normalize converts a raw supplier response body into canonical
	// itineraries. An undecodable body returns an error; decodable
	// payloads missing their success/collection markers yield an empty
	// list, and individual malformed records are skipped silently.
	Normalize(body []byte, req SearchRequest) ([]Itinerary, error)
}

// SupplierRegistry resolves adapters by supplier tag.
type SupplierRegistry struct {
	adapters map[string]SupplierAdapter
}

// NewSupplierRegistry builds a registry from the given adapters.
func NewSupplierRegistry(adapters ...SupplierAdapter) *SupplierRegistry {
	r := &SupplierRegistry{adapters: make(map[string]SupplierAdapter, len(adapters))}
	for _, a := range adapters {
		r.adapters[a.Name()] = a
	}
	return r
}

// Get returns the adapter registered under name, or ErrUnknownSupplier.
func (r *SupplierRegistry) Get(name string) (SupplierAdapter, error) {
	a, ok := r.adapters[name]
	if !ok {
		return nil, ErrUnknownSupplier
	}
	return a, nil
}

// Names returns the registered supplier tags.
func (r *SupplierRegistry) Names() []string {
	names := make([]string, 0, len(r.adapters))
	for name := range r.adapters {
		names = append(names, name)
	}
	return names
}
