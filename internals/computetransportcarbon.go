package internals

import "strings"

func ComputeTransportCarbon(vehicleType string, distanceKm float64, passengers int) float64 {
	factor, ok := transportEmissionFactors[strings.ToLower(vehicleType)]
	if !ok {
		factor = defaultTransportFactor
	}
	return distanceKm * factor * float64(passengers)
}
