package db

import (
	"errors"

	"gorm.io/gorm"

	"hotel-carbon-server/model"
)

type HotelDAO struct {
	db *gorm.DB
}

func NewHotelDAO(db *gorm.DB) *HotelDAO {
	return &HotelDAO{db: db}
}

func (hotelDAO *HotelDAO) GetHotelById(id int) (model.Hotel, error) {
	var hotel model.Hotel
	result := hotelDAO.db.First(&hotel, id)
	return hotel, result.Error
}

// GetHotelByEmail returns the hotel with the given email, or gorm's
// ErrRecordNotFound when no account exists.
func (hotelDAO *HotelDAO) GetHotelByEmail(email string) (model.Hotel, error) {
	var hotel model.Hotel
	result := hotelDAO.db.Where("email = ?", email).First(&hotel)
	return hotel, result.Error
}

func (hotelDAO *HotelDAO) EmailExists(email string) (bool, error) {
	_, err := hotelDAO.GetHotelByEmail(email)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

func (hotelDAO *HotelDAO) AddHotel(hotel model.Hotel) (model.Hotel, error) {
	result := hotelDAO.db.Create(&hotel)
	return hotel, result.Error
}
