package db

import (
	"errors"

	"gorm.io/gorm"

	"hotel-carbon-server/model"
)

type TripDAO struct {
	db *gorm.DB
}

func NewTripDAO(db *gorm.DB) *TripDAO {
	return &TripDAO{db: db}
}

// CreateTrip persists a trip and all of its child rows in one transaction.
// If any child insert fails the whole trip is rolled back.
func (tripDAO *TripDAO) CreateTrip(tripDetails model.TripDetails) (model.TripDetails, error) {
	// create transaction
	transaction := tripDAO.db.Begin()
	if transaction.Error != nil {
		return model.TripDetails{}, transaction.Error
	}

	defer func() {
		if r := recover(); r != nil {
			transaction.Rollback()
			panic(r)
		}
	}()

	// create trip entry
	result := transaction.Create(&tripDetails.Trip)
	if result.Error != nil {
		transaction.Rollback()
		return model.TripDetails{}, result.Error
	}

	// create flight segment entries
	for i := range tripDetails.FlightSegments {
		tripDetails.FlightSegments[i].TripID = tripDetails.Trip.TripID
		result = transaction.Create(&tripDetails.FlightSegments[i])
		if result.Error != nil {
			transaction.Rollback()
			return model.TripDetails{}, result.Error
		}
	}

	// create local transport entries
	for i := range tripDetails.LocalTransports {
		tripDetails.LocalTransports[i].TripID = tripDetails.Trip.TripID
		result = transaction.Create(&tripDetails.LocalTransports[i])
		if result.Error != nil {
			transaction.Rollback()
			return model.TripDetails{}, result.Error
		}
	}

	// create hotel stay entries
	for i := range tripDetails.HotelStays {
		tripDetails.HotelStays[i].TripID = tripDetails.Trip.TripID
		result = transaction.Create(&tripDetails.HotelStays[i])
		if result.Error != nil {
			transaction.Rollback()
			return model.TripDetails{}, result.Error
		}
	}

	result = transaction.Commit()
	if result.Error != nil {
		return model.TripDetails{}, result.Error
	}

	return tripDetails, nil
}

func (tripDAO *TripDAO) GetTripsByAgentId(agentID int) ([]model.Trip, error) {
	var trips []model.Trip
	result := tripDAO.db.Where("id_agent = ?", agentID).Find(&trips)
	return trips, result.Error
}

// GetTripDetailsById loads a trip with all of its child rows. A trip owned
// by a different agent is reported as not found, existence is not leaked.
func (tripDAO *TripDAO) GetTripDetailsById(tripID int, agentID int) (model.TripDetails, error) {
	var trip model.Trip
	result := tripDAO.db.Where("id_trip = ? AND id_agent = ?", tripID, agentID).First(&trip)
	if result.Error != nil {
		return model.TripDetails{}, result.Error
	}

	tripDetails := model.TripDetails{Trip: trip}

	result = tripDAO.db.Where("id_trip = ?", trip.TripID).Find(&tripDetails.FlightSegments)
	if result.Error != nil {
		return model.TripDetails{}, result.Error
	}

	result = tripDAO.db.Where("id_trip = ?", trip.TripID).Find(&tripDetails.LocalTransports)
	if result.Error != nil {
		return model.TripDetails{}, result.Error
	}

	result = tripDAO.db.Where("id_trip = ?", trip.TripID).Find(&tripDetails.HotelStays)
	if result.Error != nil {
		return model.TripDetails{}, result.Error
	}

	// inject hotel names, not stored on the stay rows
	err := tripDAO.injectHotelNames(tripDetails.HotelStays)
	if err != nil {
		return model.TripDetails{}, err
	}

	return tripDetails, nil
}

func (tripDAO *TripDAO) injectHotelNames(stays []model.HotelStay) error {
	hotelDAO := NewHotelDAO(tripDAO.db)
	for i := range stays {
		hotel, err := hotelDAO.GetHotelById(stays[i].HotelID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				stays[i].HotelName = "Unknown Hotel"
				continue
			}
			return err
		}
		stays[i].HotelName = hotel.Name
	}
	return nil
}
