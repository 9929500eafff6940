package model

import "time"

// BillAmount stays a string: the value is copied verbatim from the uploaded
// bill and validated as a non-negative decimal before insertion.
type UtilityBill struct {
	BillID     int       `gorm:"column:id_bill;primaryKey;autoIncrement" json:"bill_id"`
	HotelID    int       `gorm:"column:id_hotel;type:integer;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"hotel_id"`
	BillType   string    `gorm:"column:bill_type;type:text;not null" json:"bill_type"`
	BillMonth  int       `gorm:"column:bill_month;type:integer;not null" json:"bill_month"`
	BillYear   int       `gorm:"column:bill_year;type:integer;not null" json:"bill_year"`
	BillAmount string    `gorm:"column:bill_amount;type:text;not null" json:"bill_amount"`
	Unit       string    `gorm:"column:unit;type:text;not null" json:"unit"`
	FileURL    string    `gorm:"column:file_url;type:text;not null" json:"file_url"`
	UploadedAt time.Time `gorm:"column:uploaded_at;type:timestamptz;not null;autoCreateTime" json:"uploaded_at"`
}

func (UtilityBill) TableName() string {
	return "utility_bill"
}
