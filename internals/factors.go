package internals

import "strings"

// All emission factor tables live in this file. The reporting table and the
// hotel-stay table use different electricity/water factors; the difference
// comes from the product side and must not be unified here.
const FactorTableVersion = "2024.1"

// flight emission [kg co2 / passenger km]
const flightEmissionFactor = 0.255

// distance used when a route is not in the table [km]
// known accuracy caveat: unmodeled routes are silently estimated
const defaultFlightDistanceKm = 500.0

// known routes, looked up in both directions
var flightRouteDistances = map[[2]string]float64{
	{"JFK", "LHR"}: 5550,
	{"LHR", "CDG"}: 350,
	{"CDG", "FCO"}: 1110,
	{"FCO", "ATH"}: 1050,
}

// local transport emission [kg co2 / passenger km]
var transportEmissionFactors = map[string]float64{
	"bus":   0.089,
	"car":   0.171,
	"train": 0.041,
	"taxi":  0.171,
	"metro": 0.033,
}

// unrecognized vehicle types fall back to the car factor
const defaultTransportFactor = 0.171

// hotel stay emission per consumption unit [kg co2 / unit]
var stayEmissionFactors = map[string]float64{
	"electricity": 0.708,
	"gas":         2.204,
	"water":       0.298,
	"diesel":      2.687,
}

const defaultStayFactor = 0.5

// every bill is assumed to cover one billing period of this many days
const assumedBillingPeriodDays = 30.0

// fallback for hotels with no bills on record [kg co2 / room night]
const defaultRoomNightKg = 30.0

// rooms assumption: two guests share one room
const guestsPerRoom = 2.0

// reporting factors used by the carbon-footprint endpoint
// [kg co2 / kWh] and [kg co2 / liter]
var reportEmissionFactors = map[string]float64{
	"electricity": 0.5,
	"water":       0.001,
}

var reportUnits = map[string]string{
	"electricity": "kWh",
	"water":       "liters",
}

// allowed units per bill type, membership is case-insensitive
var validBillUnits = map[string][]string{
	"electricity": {"kWh", "kw", "kwh", "kilowatt-hours", "units"},
	"water":       {"liters", "litres", "gallons", "cubic meters", "m3", "l", "gal"},
}

func IsValidBillType(billType string) bool {
	_, ok := validBillUnits[billType]
	return ok
}

func IsValidBillUnit(billType string, unit string) bool {
	for _, valid := range validBillUnits[billType] {
		if strings.EqualFold(valid, unit) {
			return true
		}
	}
	return false
}

func ValidBillUnits(billType string) []string {
	return validBillUnits[billType]
}
