package db

import (
	"gorm.io/gorm"

	"hotel-carbon-server/model"
)

type BillDAO struct {
	db *gorm.DB
}

func NewBillDAO(db *gorm.DB) *BillDAO {
	return &BillDAO{db: db}
}

func (billDAO *BillDAO) AddBill(bill model.UtilityBill) (model.UtilityBill, error) {
	result := billDAO.db.Create(&bill)
	return bill, result.Error
}

// GetBillsByHotelId returns every bill owned by the hotel. Ownership scoping
// happens here, callers pass the authenticated hotel id only.
func (billDAO *BillDAO) GetBillsByHotelId(hotelID int) ([]model.UtilityBill, error) {
	var bills []model.UtilityBill
	result := billDAO.db.Where("id_hotel = ?", hotelID).Find(&bills)
	return bills, result.Error
}

// GetBillsByHotelIdAndYear filters on bill year. A year of 0 means all years.
func (billDAO *BillDAO) GetBillsByHotelIdAndYear(hotelID int, year int) ([]model.UtilityBill, error) {
	if year == 0 {
		return billDAO.GetBillsByHotelId(hotelID)
	}

	var bills []model.UtilityBill
	result := billDAO.db.Where("id_hotel = ? AND bill_year = ?", hotelID, year).Find(&bills)
	return bills, result.Error
}
