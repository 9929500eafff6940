package internals

// LookupFlightDistance checks the route table in both directions and falls
// back to the default distance when the pair is unknown.
func LookupFlightDistance(departure, arrival string) float64 {
	if distance, ok := flightRouteDistances[[2]string{departure, arrival}]; ok {
		return distance
	}
	if distance, ok := flightRouteDistances[[2]string{arrival, departure}]; ok {
		return distance
	}
	return defaultFlightDistanceKm
}

func ComputeFlightCarbon(departure, arrival string, passengers int) float64 {
	distance := LookupFlightDistance(departure, arrival)
	return distance * flightEmissionFactor * float64(passengers)
}
