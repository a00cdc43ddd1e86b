// Package domain contains the core business entities and rules for the OTA
// adapter gateway. These entities are supplier-agnostic and form the canonical
// schema every supplier response is translated into.
package domain

import (
	"strconv"
	"strings"
)

// Trip type values accepted from the legacy caller.
const (
	TripOneWay = "oneway"
	TripRound  = "round"
)

// SearchRequest is the legacy flight-search request as posted by the
// PHP-era callers. The body arrives as an untyped key/value map (JSON, form
// or multipart, already decoded by the transport layer); every field is
// carried as a string and coerced lazily.
type SearchRequest struct {
	// Origin is the departure location, free text, possibly "NAME - CODE"
	Origin string `json:"origin"`

	// Destination is the arrival location, same free-text convention
	Destination string `json:"destination"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departure_date"`

	// ReturnDate is the inbound date in YYYY-MM-DD format (round trips only)
	ReturnDate string `json:"return_date"`

	// TripType is "oneway" or "round"
	TripType string `json:"trip_type"`

	// Adults, Children and Infants are passenger counts
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`

	// Currency is the sale currency code (e.g. "BDT")
	Currency string `json:"currency"`

	// CabinClass is the requested cabin (e.g. "economy")
	CabinClass string `json:"cabin_class"`

	// APIKey is the supplier credential passed inline by the caller.
	// Only some suppliers require it.
	APIKey string `json:"api_key"`
}

// ParseSearchRequest builds a SearchRequest from the untyped key/value body
// of a legacy request. Passenger counts are coerced with a lenient numeric
// parse that treats missing or non-numeric values as 0.
func ParseSearchRequest(body map[string]string) SearchRequest {
	return SearchRequest{
		Origin:        strings.TrimSpace(body["origin"]),
		Destination:   strings.TrimSpace(body["destination"]),
		DepartureDate: strings.TrimSpace(body["departure_date"]),
		ReturnDate:    strings.TrimSpace(body["return_date"]),
		TripType:      strings.ToLower(strings.TrimSpace(body["trip_type"])),
		Adults:        parseCount(body["adults"]),
		Children:      parseCount(body["children"]),
		Infants:       parseCount(body["infants"]),
		Currency:      strings.ToUpper(strings.TrimSpace(body["currency"])),
		CabinClass:    strings.ToLower(strings.TrimSpace(body["cabin_class"])),
		APIKey:        strings.TrimSpace(body["api_key"]),
	}
}

// parseCount coerces a passenger count field. Non-numeric, negative or
// missing values become 0.
func parseCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// IsRound reports whether the request is an effective round trip.
// A round trip_type without a return date degrades to one-way: the absent
// return leg is silently dropped rather than rejected.
func (r *SearchRequest) IsRound() bool {
	return r.TripType == TripRound && r.ReturnDate != ""
}

// OriginCode returns the airport code derived from the origin field.
func (r *SearchRequest) OriginCode() string {
	return AirportCode(r.Origin)
}

// DestinationCode returns the airport code derived from the destination field.
func (r *SearchRequest) DestinationCode() string {
	return AirportCode(r.Destination)
}

// AirportCode extracts an airport code from a legacy free-text location
// field. The legacy UI posts values like "Dhaka, Hazrat Shahjalal - DAC";
// the code is whatever follows the last " - " delimiter. Fields without the
// delimiter are returned trimmed as-is.
func AirportCode(field string) string {
	field = strings.TrimSpace(field)
	if idx := strings.LastIndex(field, " - "); idx >= 0 {
		return strings.TrimSpace(field[idx+3:])
	}
	return field
}

// PassengerCount returns the total number of travellers in the request.
func (r *SearchRequest) PassengerCount() int {
	return r.Adults + r.Children + r.Infants
}
