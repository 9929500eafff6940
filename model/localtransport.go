package model

type LocalTransport struct {
	TransportID   int     `gorm:"column:id_transport;primaryKey;autoIncrement" json:"transport_id"`
	TripID        int     `gorm:"column:id_trip;type:integer;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"trip_id"`
	VehicleType   string  `gorm:"column:vehicle_type;type:text;not null" json:"vehicle_type"`
	DistanceKm    float64 `gorm:"column:distance_km;type:numeric;not null" json:"distance_km"`
	CarbonKgTotal float64 `gorm:"column:carbon_kg_total;type:numeric;not null" json:"carbon_kg_total"`
}

func (LocalTransport) TableName() string {
	return "local_transport"
}
