package iatalocal

// Request payload sent to the local GDS aggregator. Dates travel in the
// textual DD-Mon-YYYY form the GDS expects.

type searchPayload struct {
	Journeys []journey `json:"journeys"`
	Adults   int       `json:"adults"`
	Children int       `json:"children"`
	Infants  int       `json:"infants"`
	Cabin    string    `json:"cabin,omitempty"`
	Currency string    `json:"currency,omitempty"`
}

type journey struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"`
}

// Response payload. Trips are one-way fare records; a round-trip search
// returns outbound (isReturn=false) and inbound (isReturn=true) records that
// must be paired by (fareSourceKey, gdsBookingId).

type tripsResponse struct {
	Success bool       `json:"success"`
	Data    *tripsData `json:"data"`
}

type tripsData struct {
	Trips []trip `json:"trips"`
}

type trip struct {
	FareSourceKey string  `json:"fareSourceKey"`
	GdsBookingID  string  `json:"gdsBookingId"`
	IsReturn      bool    `json:"isReturn"`
	Refundable    bool    `json:"refundable"`
	Baggage       string  `json:"baggage"`
	FFare         float64 `json:"fFare"`
	FBFare        float64 `json:"fBFare"`
	Currency      string  `json:"currency"`
	Legs          []leg   `json:"legs"`
}

type leg struct {
	AirlineName        string `json:"airlineName"`
	AirlineCode        string `json:"airlineCode"`
	FlightNumber       string `json:"flightNumber"`
	Cabin              string `json:"cabin"`
	OriginAirport      string `json:"originAirport"`
	OriginCode         string `json:"originCode"`
	OriginCountry      string `json:"originCountry"`
	DestinationAirport string `json:"destinationAirport"`
	DestinationCode    string `json:"destinationCode"`
	DestinationCountry string `json:"destinationCountry"`
	DepartureTime      string `json:"departureTime"`
	ArrivalTime        string `json:"arrivalTime"`
	// DurationMinutes is dynamic upstream: usually a number, sometimes a
	// numeric string, occasionally garbage.
	DurationMinutes interface{} `json:"durationMinutes"`
}

// bookingRef is the opaque payload echoed back by the caller at booking time.
type bookingRef struct {
	FareSourceKey string `json:"fare_source_key"`
	GdsBookingID  string `json:"gds_booking_id"`
}
