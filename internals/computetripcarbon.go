package internals

import "math"

type TripCarbonTotals struct {
	TotalCarbonKg      float64 `json:"total_carbon_kg"`
	CarbonPerTouristKg float64 `json:"carbon_per_tourist_kg"`
	FlightsCarbonKg    float64 `json:"flights_carbon_kg"`
	TransportCarbonKg  float64 `json:"transport_carbon_kg"`
	HotelsCarbonKg     float64 `json:"hotels_carbon_kg"`
}

func Round3(value float64) float64 {
	return math.Round(value*1000) / 1000
}

// ComputeTripCarbonTotals combines the category subtotals of a trip. A trip
// with zero tourists reports zero per tourist rather than failing.
func ComputeTripCarbonTotals(flightsKg, transportKg, hotelsKg float64, tourists int) TripCarbonTotals {
	total := flightsKg + transportKg + hotelsKg

	perTourist := 0.0
	if tourists > 0 {
		perTourist = total / float64(tourists)
	}

	return TripCarbonTotals{
		TotalCarbonKg:      Round3(total),
		CarbonPerTouristKg: Round3(perTourist),
		FlightsCarbonKg:    Round3(flightsKg),
		TransportCarbonKg:  Round3(transportKg),
		HotelsCarbonKg:     Round3(hotelsKg),
	}
}
