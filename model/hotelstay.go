package model

import "time"

type HotelStay struct {
	StayID         int       `gorm:"column:id_stay;primaryKey;autoIncrement" json:"stay_id"`
	TripID         int       `gorm:"column:id_trip;type:integer;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"trip_id"`
	HotelID        int       `gorm:"column:id_hotel;type:integer;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"hotel_id"`
	NumberOfNights int       `gorm:"column:number_of_nights;type:integer;not null" json:"number_of_nights"`
	CheckInDate    time.Time `gorm:"column:check_in_date;type:date;not null" json:"check_in_date"`
	CheckOutDate   time.Time `gorm:"column:check_out_date;type:date;not null" json:"check_out_date"`
	CarbonKgTotal  float64   `gorm:"column:carbon_kg_total;type:numeric;not null" json:"carbon_kg_total"`
	HotelName      string    `gorm:"-" json:"hotel_name"`
}

func (HotelStay) TableName() string {
	return "hotel_stay"
}
