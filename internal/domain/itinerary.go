package domain

import "encoding/json"

// Segment is one flight leg in the canonical schema the legacy backend
// renders. All fields are strings because the legacy templates consume them
// verbatim; dates are always 10 characters (YYYY-MM-DD) and times 5
// characters (HH:MM).
type Segment struct {
	// AirlineName is the marketing carrier's display name
	AirlineName string `json:"airline_name"`

	// AirlineCode is the carrier's IATA code (e.g. "EK")
	AirlineCode string `json:"airline_code"`

	// FlightNumber is the carrier's flight number (e.g. "585")
	FlightNumber string `json:"flight_no"`

	// CabinClass is the travel class for this leg
	CabinClass string `json:"class"`

	// Baggage is the checked baggage allowance, free text
	Baggage string `json:"baggage"`

	// CabinBaggage is the carry-on allowance, free text
	CabinBaggage string `json:"cabin_baggage"`

	// OriginAirport / OriginCode identify the departure airport
	OriginAirport string `json:"origin_airport"`
	OriginCode    string `json:"origin_code"`

	// DestinationAirport / DestinationCode identify the arrival airport
	DestinationAirport string `json:"destination_airport"`
	DestinationCode    string `json:"destination_code"`

	// DepartureDate (YYYY-MM-DD) and DepartureTime (HH:MM)
	DepartureDate string `json:"departure_date"`
	DepartureTime string `json:"departure_time"`

	// ArrivalDate (YYYY-MM-DD) and ArrivalTime (HH:MM)
	ArrivalDate string `json:"arrival_date"`
	ArrivalTime string `json:"arrival_time"`

	// Duration is the formatted leg duration. The format is supplier
	// specific ("4h 35m" or "04:35") and rendered as-is by the caller.
	Duration string `json:"duration"`

	// BookingPayload is the opaque supplier-specific booking reference,
	// echoed back untouched when the caller books this itinerary.
	BookingPayload json.RawMessage `json:"booking_payload,omitempty"`

	// Supplier tags which adapter produced this segment
	Supplier string `json:"supplier"`

	// TripType echoes the search trip type ("oneway" or "round")
	TripType string `json:"trip_type"`

	// Refundable reports whether the fare allows refunds
	Refundable bool `json:"refundable"`

	// Price fields are decimal strings in the sale currency
	Price       string `json:"price"`
	ActualPrice string `json:"actual_price"`
	AdultPrice  string `json:"adult_price"`
	ChildPrice  string `json:"child_price"`
	InfantPrice string `json:"infant_price"`

	// Currency is the sale currency code
	Currency string `json:"currency"`
}

// Itinerary is a bookable combination of segment lists: one list for a
// one-way trip, two ([outbound, inbound]) for a round trip. A round-trip
// itinerary always has both lists non-empty; partial pairs are never emitted.
type Itinerary struct {
	Segments [][]Segment `json:"segments"`
}

// NewOneWay builds a single-list itinerary.
func NewOneWay(outbound []Segment) Itinerary {
	return Itinerary{Segments: [][]Segment{outbound}}
}

// NewRoundTrip builds a two-list itinerary.
func NewRoundTrip(outbound, inbound []Segment) Itinerary {
	return Itinerary{Segments: [][]Segment{outbound, inbound}}
}
