package duffel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sajidmahamud835/ota-proxy/internal/domain"
)

const oneWayOffer = `{
	"data": {
		"offers": [
			{
				"id": "off_001",
				"total_amount": "450.00",
				"base_amount": "410.00",
				"total_currency": "USD",
				"passengers": [
					{
						"type": "adult",
						"baggages": [
							{"type": "checked", "quantity": 2},
							{"type": "carry_on", "quantity": 1}
						]
					}
				],
				"conditions": {"refund_before_departure": {"allowed": true}},
				"slices": [
					{
						"segments": [
							{
								"marketing_carrier": {"name": "Emirates", "iata_code": "EK"},
								"marketing_carrier_flight_number": "585",
								"departing_at": "2024-03-05T10:30:00",
								"arriving_at": "2024-03-05T14:05:00",
								"duration": "PT4H35M",
								"origin": {"name": "Hazrat Shahjalal Intl", "iata_code": "DAC"},
								"destination": {"name": "Dubai Intl", "iata_code": "DXB"},
								"passengers": [{"cabin_class": "economy"}]
							}
						]
					}
				]
			}
		]
	}
}`

func oneWayRequest() domain.SearchRequest {
	return domain.SearchRequest{
		Origin:        "DAC",
		Destination:   "DXB",
		DepartureDate: "2024-03-05",
		TripType:      domain.TripOneWay,
		Adults:        1,
		Currency:      "USD",
		APIKey:        "tok_abc",
	}
}

func TestNormalize_OneWayOffer(t *testing.T) {
	adapter := NewAdapter("https://example.test/search")

	itineraries, err := adapter.Normalize([]byte(oneWayOffer), oneWayRequest())
	require.NoError(t, err)
	require.Len(t, itineraries, 1)
	require.Len(t, itineraries[0].Segments, 1)
	require.Len(t, itineraries[0].Segments[0], 1)

	seg := itineraries[0].Segments[0][0]
	assert.Equal(t, "Emirates", seg.AirlineName)
	assert.Equal(t, "EK", seg.AirlineCode)
	assert.Equal(t, "585", seg.FlightNumber)
	assert.Equal(t, "economy", seg.CabinClass)
	assert.Equal(t, "2 piece(s)", seg.Baggage)
	assert.Equal(t, "1 piece(s)", seg.CabinBaggage)
	assert.Equal(t, "Hazrat Shahjalal Intl", seg.OriginAirport)
	assert.Equal(t, "DAC", seg.OriginCode)
	assert.Equal(t, "DXB", seg.DestinationCode)
	assert.Equal(t, "2024-03-05", seg.DepartureDate)
	assert.Equal(t, "10:30", seg.DepartureTime)
	assert.Equal(t, "2024-03-05", seg.ArrivalDate)
	assert.Equal(t, "14:05", seg.ArrivalTime)
	assert.Equal(t, "4h 35m", seg.Duration)
	assert.JSONEq(t, `{"offer_id": "off_001"}`, string(seg.BookingPayload))
	assert.Equal(t, "duffel", seg.Supplier)
	assert.True(t, seg.Refundable)
	assert.Equal(t, "450.00", seg.Price)
	assert.Equal(t, "410.00", seg.ActualPrice)
	assert.Equal(t, "USD", seg.Currency)
}

func TestNormalize_MissingMarkersYieldEmptyList(t *testing.T) {
	adapter := NewAdapter("https://example.test/search")
	req := oneWayRequest()

	tests := []struct {
		name string
		body string
	}{
		{name: "no data envelope", body: `{"errors": [{"title": "rate limited"}]}`},
		{name: "data without offers", body: `{"data": {}}`},
		{name: "null data", body: `{"data": null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			itineraries, err := adapter.Normalize([]byte(tt.body), req)
			require.NoError(t, err)
			assert.NotNil(t, itineraries)
			assert.Empty(t, itineraries)
		})
	}
}

func TestNormalize_UndecodableBodyIsAnError(t *testing.T) {
	adapter := NewAdapter("https://example.test/search")
	req := oneWayRequest()

	tests := []struct {
		name string
		body string
	}{
		{name: "html error page", body: `<html>bad gateway</html>`},
		{name: "truncated json", body: `{"data": {"offers": [`},
		{name: "empty body", body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Must surface as an error so the caller answers 503, not a
			// successful empty search.
			itineraries, err := adapter.Normalize([]byte(tt.body), req)
			require.Error(t, err)
			assert.Nil(t, itineraries)
		})
	}
}

func TestNormalize_MalformedOfferSkipped(t *testing.T) {
	adapter := NewAdapter("https://example.test/search")

	// Second offer is missing its slices and must be excluded without
	// failing the whole response.
	body := `{
		"data": {
			"offers": [
				` + offerJSON("off_ok") + `,
				{"id": "off_broken", "total_amount": "99.00", "slices": []}
			]
		}
	}`

	itineraries, err := adapter.Normalize([]byte(body), oneWayRequest())
	require.NoError(t, err)
	require.Len(t, itineraries, 1)
	assert.JSONEq(t, `{"offer_id": "off_ok"}`, string(itineraries[0].Segments[0][0].BookingPayload))
}

func TestNormalize_BaggageDefaultsToNone(t *testing.T) {
	adapter := NewAdapter("https://example.test/search")

	body := `{
		"data": {
			"offers": [
				{
					"id": "off_nobag",
					"total_amount": "100.00",
					"total_currency": "USD",
					"passengers": [{"type": "adult", "baggages": []}],
					"slices": [{"segments": [` + segmentJSON() + `]}]
				}
			]
		}
	}`

	itineraries, err := adapter.Normalize([]byte(body), oneWayRequest())
	require.NoError(t, err)
	require.Len(t, itineraries, 1)

	seg := itineraries[0].Segments[0][0]
	assert.Equal(t, "None", seg.Baggage)
	assert.Equal(t, "None", seg.CabinBaggage)
	// base_amount absent: actual price falls back to the total.
	assert.Equal(t, "100.00", seg.ActualPrice)
	assert.False(t, seg.Refundable)
}

func TestNormalize_RoundTripOffer(t *testing.T) {
	adapter := NewAdapter("https://example.test/search")

	body := `{
		"data": {
			"offers": [
				{
					"id": "off_rt",
					"total_amount": "800.00",
					"total_currency": "USD",
					"passengers": [{"type": "adult", "baggages": [{"type": "checked", "quantity": 1}]}],
					"slices": [
						{"segments": [` + segmentJSON() + `]},
						{"segments": [` + returnSegmentJSON() + `]}
					]
				},
				{
					"id": "off_partial",
					"total_amount": "500.00",
					"total_currency": "USD",
					"slices": [{"segments": [` + segmentJSON() + `]}]
				}
			]
		}
	}`

	req := oneWayRequest()
	req.TripType = domain.TripRound
	req.ReturnDate = "2024-03-12"

	itineraries, err := adapter.Normalize([]byte(body), req)
	require.NoError(t, err)

	// The one-sliced offer cannot satisfy a round trip and is discarded.
	require.Len(t, itineraries, 1)
	require.Len(t, itineraries[0].Segments, 2)
	assert.Equal(t, "DAC", itineraries[0].Segments[0][0].OriginCode)
	assert.Equal(t, "DXB", itineraries[0].Segments[1][0].OriginCode)
}

func TestNormalize_Idempotent(t *testing.T) {
	adapter := NewAdapter("https://example.test/search")
	req := oneWayRequest()

	first, err := adapter.Normalize([]byte(oneWayOffer), req)
	require.NoError(t, err)
	second, err := adapter.Normalize([]byte(oneWayOffer), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// segmentJSON is the outbound DAC->DXB segment fixture.
func segmentJSON() string {
	return `{
		"marketing_carrier": {"name": "Emirates", "iata_code": "EK"},
		"marketing_carrier_flight_number": "585",
		"departing_at": "2024-03-05T10:30:00",
		"arriving_at": "2024-03-05T14:05:00",
		"duration": "PT4H35M",
		"origin": {"name": "Hazrat Shahjalal Intl", "iata_code": "DAC"},
		"destination": {"name": "Dubai Intl", "iata_code": "DXB"},
		"passengers": [{"cabin_class": "economy"}]
	}`
}

// returnSegmentJSON is the inbound DXB->DAC segment fixture.
func returnSegmentJSON() string {
	return `{
		"marketing_carrier": {"name": "Emirates", "iata_code": "EK"},
		"marketing_carrier_flight_number": "586",
		"departing_at": "2024-03-12T20:15:00",
		"arriving_at": "2024-03-13T02:40:00",
		"duration": "PT4H25M",
		"origin": {"name": "Dubai Intl", "iata_code": "DXB"},
		"destination": {"name": "Hazrat Shahjalal Intl", "iata_code": "DAC"},
		"passengers": [{"cabin_class": "economy"}]
	}`
}

// offerJSON wraps the outbound segment fixture in a complete offer.
func offerJSON(id string) string {
	return `{
		"id": "` + id + `",
		"total_amount": "450.00",
		"total_currency": "USD",
		"passengers": [{"type": "adult", "baggages": [{"type": "checked", "quantity": 2}]}],
		"slices": [{"segments": [` + segmentJSON() + `]}]
	}`
}
