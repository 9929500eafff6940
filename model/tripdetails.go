package model

type TripDetails struct {
	Trip            Trip             `json:"trip"`
	FlightSegments  []FlightSegment  `json:"flight_segments"`
	LocalTransports []LocalTransport `json:"local_transports"`
	HotelStays      []HotelStay      `json:"hotel_stays"`
}
