package model

import "time"

type Trip struct {
	TripID           int       `gorm:"column:id_trip;primaryKey;autoIncrement" json:"trip_id"`
	AgentID          int       `gorm:"column:id_agent;type:integer;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"agent_id"`
	TripName         string    `gorm:"column:trip_name;type:text;not null" json:"trip_name"`
	TripDescription  string    `gorm:"column:trip_description;type:text" json:"trip_description"`
	NumberOfTourists int       `gorm:"column:number_of_tourists;type:integer;not null" json:"number_of_tourists"`
	StartDate        time.Time `gorm:"column:start_date;type:date;not null" json:"start_date"`
	EndDate          time.Time `gorm:"column:end_date;type:date;not null" json:"end_date"`
	TotalCarbonKg    float64   `gorm:"column:total_carbon_kg;type:numeric;not null" json:"total_carbon_kg"`
	CreatedAt        time.Time `gorm:"column:created_at;type:timestamptz;not null;autoCreateTime" json:"created_at"`
}

func (Trip) TableName() string {
	return "trip"
}
