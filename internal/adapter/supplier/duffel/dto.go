package duffel

// Request payload sent to the fare aggregator. The aggregator wraps
// everything in a "data" envelope.

type searchPayload struct {
	Data searchData `json:"data"`
}

type searchData struct {
	Slices     []searchSlice     `json:"slices"`
	Passengers []searchPassenger `json:"passengers"`
	CabinClass string            `json:"cabin_class,omitempty"`
	Currency   string            `json:"currency,omitempty"`
}

type searchSlice struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
}

type searchPassenger struct {
	Type string `json:"type"`
}

// Response payload. Offers carry one slice for a one-way search and two
// ([outbound, inbound]) for a round trip.

type offersResponse struct {
	Data *offersData `json:"data"`
}

type offersData struct {
	Offers []offer `json:"offers"`
}

type offer struct {
	ID            string           `json:"id"`
	TotalAmount   string           `json:"total_amount"`
	BaseAmount    string           `json:"base_amount"`
	TotalCurrency string           `json:"total_currency"`
	Passengers    []offerPassenger `json:"passengers"`
	Slices        []offerSlice     `json:"slices"`
	Conditions    offerConditions  `json:"conditions"`
}

type offerPassenger struct {
	Type     string         `json:"type"`
	Baggages []offerBaggage `json:"baggages"`
}

type offerBaggage struct {
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
}

type offerSlice struct {
	Segments []offerSegment `json:"segments"`
}

type offerSegment struct {
	MarketingCarrier             carrierRef         `json:"marketing_carrier"`
	MarketingCarrierFlightNumber string             `json:"marketing_carrier_flight_number"`
	DepartingAt                  string             `json:"departing_at"`
	ArrivingAt                   string             `json:"arriving_at"`
	Duration                     string             `json:"duration"`
	Origin                       placeRef           `json:"origin"`
	Destination                  placeRef           `json:"destination"`
	Passengers                   []segmentPassenger `json:"passengers"`
}

type carrierRef struct {
	Name     string `json:"name"`
	IATACode string `json:"iata_code"`
}

type placeRef struct {
	Name     string `json:"name"`
	IATACode string `json:"iata_code"`
}

type segmentPassenger struct {
	CabinClass string `json:"cabin_class"`
}

type offerConditions struct {
	RefundBeforeDeparture *offerCondition `json:"refund_before_departure"`
}

type offerCondition struct {
	Allowed bool `json:"allowed"`
}

// bookingRef is the opaque payload the legacy caller echoes back at booking
// time.
type bookingRef struct {
	OfferID string `json:"offer_id"`
}
