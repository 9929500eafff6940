package model

type FlightSegment struct {
	SegmentID            int     `gorm:"column:id_segment;primaryKey;autoIncrement" json:"segment_id"`
	TripID               int     `gorm:"column:id_trip;type:integer;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"trip_id"`
	DepartureAirport     string  `gorm:"column:departure_airport;type:text;not null" json:"departure_airport"`
	ArrivalAirport       string  `gorm:"column:arrival_airport;type:text;not null" json:"arrival_airport"`
	TransitAirports      string  `gorm:"column:transit_airports;type:text" json:"transit_airports"`
	CarbonKgPerPassenger float64 `gorm:"column:carbon_kg_per_passenger;type:numeric;not null" json:"carbon_kg_per_passenger"`
}

func (FlightSegment) TableName() string {
	return "flight_segment"
}
