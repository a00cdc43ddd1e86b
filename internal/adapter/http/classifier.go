package http

import (
	"strings"

	"github.com/sajidmahamud835/ota-proxy/internal/adapter/supplier/duffel"
	"github.com/sajidmahamud835/ota-proxy/internal/adapter/supplier/iatalocal"
)

// Route is the classification of an incoming request path.
type Route int

// Route values. RoutePassThrough means the request is forwarded to the
// legacy backend untouched.
const (
	RoutePassThrough Route = iota
	RouteDuffel
	RouteIATALocal
)

// Supplier returns the supplier tag for an adapted route, or "" for
// pass-through.
func (r Route) Supplier() string {
	switch r {
	case RouteDuffel:
		return duffel.SupplierName
	case RouteIATALocal:
		return iatalocal.SupplierName
	default:
		return ""
	}
}

// Classify decides whether a request path belongs to an adapted supplier
// module or passes through to the legacy backend. Matching is done on the
// lower-cased path (legacy callers are inconsistent about case) against the
// /flights/<supplier>/ module convention. Pure function, no side effects.
func Classify(path string) Route {
	segments := strings.Split(strings.Trim(strings.ToLower(path), "/"), "/")

	for i := 0; i+1 < len(segments); i++ {
		if segments[i] != "flights" {
			continue
		}
		switch segments[i+1] {
		case duffel.SupplierName:
			return RouteDuffel
		case iatalocal.SupplierName:
			return RouteIATALocal
		}
	}

	return RoutePassThrough
}
