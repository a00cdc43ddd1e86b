package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSearchRequest(t *testing.T) {
	tests := []struct {
		name string
		body map[string]string
		want SearchRequest
	}{
		{
			name: "full round trip request",
			body: map[string]string{
				"origin":         "Dhaka, Hazrat Shahjalal - DAC",
				"destination":    "Dubai Intl - DXB",
				"departure_date": "2024-03-05",
				"return_date":    "2024-03-12",
				"trip_type":      "Round",
				"adults":         "2",
				"children":       "1",
				"infants":        "0",
				"currency":       "bdt",
				"cabin_class":    "Economy",
				"api_key":        "tok_123",
			},
			want: SearchRequest{
				Origin:        "Dhaka, Hazrat Shahjalal - DAC",
				Destination:   "Dubai Intl - DXB",
				DepartureDate: "2024-03-05",
				ReturnDate:    "2024-03-12",
				TripType:      "round",
				Adults:        2,
				Children:      1,
				Infants:       0,
				Currency:      "BDT",
				CabinClass:    "economy",
				APIKey:        "tok_123",
			},
		},
		{
			name: "non-numeric and negative counts default to zero",
			body: map[string]string{
				"adults":   "two",
				"children": "-3",
				"infants":  "",
			},
			want: SearchRequest{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSearchRequest(tt.body))
		})
	}
}

func TestAirportCode(t *testing.T) {
	tests := []struct {
		name  string
		field string
		want  string
	}{
		{name: "name dash code", field: "Dhaka, Hazrat Shahjalal - DAC", want: "DAC"},
		{name: "bare code", field: "DAC", want: "DAC"},
		{name: "surrounding spaces", field: "  DXB  ", want: "DXB"},
		{name: "multiple delimiters take the last", field: "A - B - CGP", want: "CGP"},
		{name: "empty", field: "", want: ""},
		{name: "hyphen without spaces is not a delimiter", field: "KUALA-LUMPUR", want: "KUALA-LUMPUR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AirportCode(tt.field))
		})
	}
}

func TestSearchRequest_IsRound(t *testing.T) {
	tests := []struct {
		name string
		req  SearchRequest
		want bool
	}{
		{
			name: "round with return date",
			req:  SearchRequest{TripType: TripRound, ReturnDate: "2024-03-12"},
			want: true,
		},
		{
			name: "round without return date degrades to one-way",
			req:  SearchRequest{TripType: TripRound},
			want: false,
		},
		{
			name: "oneway with stray return date",
			req:  SearchRequest{TripType: TripOneWay, ReturnDate: "2024-03-12"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.IsRound())
		})
	}
}

func TestSearchRequest_PassengerCount(t *testing.T) {
	req := SearchRequest{Adults: 2, Children: 1, Infants: 1}
	assert.Equal(t, 4, req.PassengerCount())
}
