package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"hotel-carbon-server/db"
	"hotel-carbon-server/internals"
	"hotel-carbon-server/model"
)

type flightSegmentRequest struct {
	DepartureAirport string `json:"departure_airport"`
	ArrivalAirport   string `json:"arrival_airport"`
	TransitAirports  string `json:"transit_airports"`
}

type localTransportRequest struct {
	VehicleType string  `json:"vehicle_type"`
	DistanceKm  float64 `json:"distance_km"`
}

type hotelStayRequest struct {
	HotelID        int    `json:"hotel_id"`
	NumberOfNights int    `json:"number_of_nights"`
	CheckInDate    string `json:"check_in_date"`
	CheckOutDate   string `json:"check_out_date"`
}

type tripCreateRequest struct {
	TripName         string                  `json:"trip_name"`
	TripDescription  string                  `json:"trip_description"`
	NumberOfTourists int                     `json:"number_of_tourists"`
	StartDate        string                  `json:"start_date"`
	EndDate          string                  `json:"end_date"`
	FlightSegments   []flightSegmentRequest  `json:"flight_segments"`
	LocalTransports  []localTransportRequest `json:"local_transports"`
	HotelStays       []hotelStayRequest      `json:"hotel_stays"`
}

type flightCarbonDetail struct {
	Route      string  `json:"route"`
	CarbonKg   float64 `json:"carbon_kg"`
	Passengers int     `json:"passengers"`
}

type transportCarbonDetail struct {
	VehicleType string  `json:"vehicle_type"`
	DistanceKm  float64 `json:"distance_km"`
	CarbonKg    float64 `json:"carbon_kg"`
	Passengers  int     `json:"passengers"`
}

type hotelCarbonDetail struct {
	HotelName string  `json:"hotel_name"`
	Nights    int     `json:"nights"`
	CarbonKg  float64 `json:"carbon_kg"`
	Guests    int     `json:"guests"`
}

type tripCarbonResponse struct {
	TripID           int    `json:"trip_id"`
	TripName         string `json:"trip_name"`
	NumberOfTourists int    `json:"number_of_tourists"`
	internals.TripCarbonTotals
	FlightDetails    []flightCarbonDetail    `json:"flight_details"`
	TransportDetails []transportCarbonDetail `json:"transport_details"`
	HotelDetails     []hotelCarbonDetail     `json:"hotel_details"`
}

type tripSummary struct {
	TripID             int       `json:"trip_id"`
	TripName           string    `json:"trip_name"`
	NumberOfTourists   int       `json:"number_of_tourists"`
	StartDate          time.Time `json:"start_date"`
	EndDate            time.Time `json:"end_date"`
	TotalCarbonKg      float64   `json:"total_carbon_kg"`
	CarbonPerTouristKg float64   `json:"carbon_per_tourist_kg"`
	CreatedAt          time.Time `json:"created_at"`
}

type myTripsResponse struct {
	AgentName  string        `json:"agent_name"`
	TotalTrips int           `json:"total_trips"`
	Trips      []tripSummary `json:"trips"`
}

type tripCarbonDetailResponse struct {
	TripID           int    `json:"trip_id"`
	TripName         string `json:"trip_name"`
	NumberOfTourists int    `json:"number_of_tourists"`
	internals.TripCarbonTotals
	FlightsBreakdown   []model.FlightSegment  `json:"flights_breakdown"`
	TransportBreakdown []model.LocalTransport `json:"transport_breakdown"`
	HotelsBreakdown    []model.HotelStay      `json:"hotels_breakdown"`
}

func HandleCreateTrip(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	claims, err := authenticateRequest(r, internals.IdentityKindAgent)
	if err != nil {
		log.Println("Authentication failed: ", err)
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	var request tripCreateRequest
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		log.Println("Error while decoding JSON: ", err)
		http.Error(w, "Wrong data provided", http.StatusBadRequest)
		return
	}
	defer func() {
		err = r.Body.Close()
		if err != nil {
			log.Println("Error closing request body:", err)
		}
	}()

	// check trip fields
	if request.TripName == "" {
		log.Println("Missing trip name")
		http.Error(w, "Trip name is required", http.StatusBadRequest)
		return
	}
	if request.NumberOfTourists < 0 {
		log.Println("Invalid number of tourists")
		http.Error(w, "Number of tourists cannot be negative", http.StatusBadRequest)
		return
	}
	startDate, err := time.Parse("2006-01-02", request.StartDate)
	if err != nil {
		log.Println("Invalid start date: ", err)
		http.Error(w, "Invalid start date format", http.StatusBadRequest)
		return
	}
	endDate, err := time.Parse("2006-01-02", request.EndDate)
	if err != nil {
		log.Println("Invalid end date: ", err)
		http.Error(w, "Invalid end date format", http.StatusBadRequest)
		return
	}
	if endDate.Before(startDate) {
		log.Println("End date before start date")
		http.Error(w, "End date cannot be before start date", http.StatusBadRequest)
		return
	}

	// check child line items
	for _, flight := range request.FlightSegments {
		if flight.DepartureAirport == "" || flight.ArrivalAirport == "" {
			log.Println("Missing airport code")
			http.Error(w, "Departure and arrival airports are required", http.StatusBadRequest)
			return
		}
	}
	for _, transport := range request.LocalTransports {
		if transport.VehicleType == "" {
			log.Println("Missing vehicle type")
			http.Error(w, "Vehicle type is required", http.StatusBadRequest)
			return
		}
		if transport.DistanceKm <= 0 {
			log.Println("Invalid transport distance")
			http.Error(w, "Transport distance must be positive", http.StatusBadRequest)
			return
		}
	}
	for _, stay := range request.HotelStays {
		if stay.HotelID <= 0 {
			log.Println("Invalid hotel id")
			http.Error(w, "Invalid hotel id", http.StatusBadRequest)
			return
		}
		if stay.NumberOfNights <= 0 {
			log.Println("Invalid number of nights")
			http.Error(w, "Number of nights must be positive", http.StatusBadRequest)
			return
		}
	}

	tourists := request.NumberOfTourists
	billDAO := db.NewBillDAO(db.GetDB())
	hotelDAO := db.NewHotelDAO(db.GetDB())

	// compute carbon for every line item, cached on the rows at creation time
	totalFlightsCarbon := 0.0
	flightSegments := make([]model.FlightSegment, 0, len(request.FlightSegments))
	flightDetails := make([]flightCarbonDetail, 0, len(request.FlightSegments))
	for _, flight := range request.FlightSegments {
		flightCarbon := internals.ComputeFlightCarbon(flight.DepartureAirport, flight.ArrivalAirport, tourists)
		totalFlightsCarbon += flightCarbon

		flightSegments = append(flightSegments, model.FlightSegment{
			DepartureAirport:     flight.DepartureAirport,
			ArrivalAirport:       flight.ArrivalAirport,
			TransitAirports:      flight.TransitAirports,
			CarbonKgPerPassenger: internals.Round3(internals.ComputeFlightCarbon(flight.DepartureAirport, flight.ArrivalAirport, 1)),
		})
		flightDetails = append(flightDetails, flightCarbonDetail{
			Route:      flight.DepartureAirport + " -> " + flight.ArrivalAirport,
			CarbonKg:   internals.Round3(flightCarbon),
			Passengers: tourists,
		})
	}

	totalTransportCarbon := 0.0
	localTransports := make([]model.LocalTransport, 0, len(request.LocalTransports))
	transportDetails := make([]transportCarbonDetail, 0, len(request.LocalTransports))
	for _, transport := range request.LocalTransports {
		transportCarbon := internals.ComputeTransportCarbon(transport.VehicleType, transport.DistanceKm, tourists)
		totalTransportCarbon += transportCarbon

		localTransports = append(localTransports, model.LocalTransport{
			VehicleType:   transport.VehicleType,
			DistanceKm:    transport.DistanceKm,
			CarbonKgTotal: internals.Round3(transportCarbon),
		})
		transportDetails = append(transportDetails, transportCarbonDetail{
			VehicleType: transport.VehicleType,
			DistanceKm:  transport.DistanceKm,
			CarbonKg:    internals.Round3(transportCarbon),
			Passengers:  tourists,
		})
	}

	totalHotelsCarbon := 0.0
	hotelStays := make([]model.HotelStay, 0, len(request.HotelStays))
	hotelDetails := make([]hotelCarbonDetail, 0, len(request.HotelStays))
	for _, stay := range request.HotelStays {
		checkInDate, err := time.Parse("2006-01-02", stay.CheckInDate)
		if err != nil {
			log.Println("Invalid check-in date: ", err)
			http.Error(w, "Invalid check-in date format", http.StatusBadRequest)
			return
		}
		checkOutDate, err := time.Parse("2006-01-02", stay.CheckOutDate)
		if err != nil {
			log.Println("Invalid check-out date: ", err)
			http.Error(w, "Invalid check-out date format", http.StatusBadRequest)
			return
		}

		bills, err := billDAO.GetBillsByHotelId(stay.HotelID)
		if err != nil {
			log.Println("Error while interacting with the database: ", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		stayCarbon := internals.ComputeHotelStayCarbon(bills, stay.NumberOfNights, tourists)
		totalHotelsCarbon += stayCarbon

		hotelName := "Unknown Hotel"
		hotel, err := hotelDAO.GetHotelById(stay.HotelID)
		if err == nil {
			hotelName = hotel.Name
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("Error while interacting with the database: ", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		hotelStays = append(hotelStays, model.HotelStay{
			HotelID:        stay.HotelID,
			NumberOfNights: stay.NumberOfNights,
			CheckInDate:    checkInDate,
			CheckOutDate:   checkOutDate,
			CarbonKgTotal:  internals.Round3(stayCarbon),
		})
		hotelDetails = append(hotelDetails, hotelCarbonDetail{
			HotelName: hotelName,
			Nights:    stay.NumberOfNights,
			CarbonKg:  internals.Round3(stayCarbon),
			Guests:    tourists,
		})
	}

	totals := internals.ComputeTripCarbonTotals(totalFlightsCarbon, totalTransportCarbon, totalHotelsCarbon, tourists)

	// persist trip and children in one transaction
	tripDAO := db.NewTripDAO(db.GetDB())
	tripDetailsRecord, err := tripDAO.CreateTrip(model.TripDetails{
		Trip: model.Trip{
			AgentID:          claims.SubjectID,
			TripName:         request.TripName,
			TripDescription:  request.TripDescription,
			NumberOfTourists: tourists,
			StartDate:        startDate,
			EndDate:          endDate,
			TotalCarbonKg:    totals.TotalCarbonKg,
		},
		FlightSegments:  flightSegments,
		LocalTransports: localTransports,
		HotelStays:      hotelStays,
	})
	if err != nil {
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(tripCarbonResponse{
		TripID:           tripDetailsRecord.Trip.TripID,
		TripName:         tripDetailsRecord.Trip.TripName,
		NumberOfTourists: tourists,
		TripCarbonTotals: totals,
		FlightDetails:    flightDetails,
		TransportDetails: transportDetails,
		HotelDetails:     hotelDetails,
	})
	if err != nil {
		log.Println("Error encoding JSON: ", err)
	}
}

func HandleMyTrips(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	claims, err := authenticateRequest(r, internals.IdentityKindAgent)
	if err != nil {
		log.Println("Authentication failed: ", err)
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	tripDAO := db.NewTripDAO(db.GetDB())
	trips, err := tripDAO.GetTripsByAgentId(claims.SubjectID)
	if err != nil {
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	summaries := make([]tripSummary, 0, len(trips))
	for _, trip := range trips {
		perTourist := 0.0
		if trip.NumberOfTourists > 0 {
			perTourist = trip.TotalCarbonKg / float64(trip.NumberOfTourists)
		}
		summaries = append(summaries, tripSummary{
			TripID:             trip.TripID,
			TripName:           trip.TripName,
			NumberOfTourists:   trip.NumberOfTourists,
			StartDate:          trip.StartDate,
			EndDate:            trip.EndDate,
			TotalCarbonKg:      internals.Round3(trip.TotalCarbonKg),
			CarbonPerTouristKg: internals.Round3(perTourist),
			CreatedAt:          trip.CreatedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(myTripsResponse{
		AgentName:  claims.DisplayName,
		TotalTrips: len(summaries),
		Trips:      summaries,
	})
	if err != nil {
		log.Println("Error encoding JSON: ", err)
	}
}

func HandleTripCarbon(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	claims, err := authenticateRequest(r, internals.IdentityKindAgent)
	if err != nil {
		log.Println("Authentication failed: ", err)
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	// extract trip id from URI, expected shape /trips/{id}/carbon
	path := r.URL.Path
	parts := strings.Split(path, "/")
	if len(parts) < 4 || parts[2] == "" || parts[3] != "carbon" {
		log.Println("Invalid path")
		http.Error(w, "Trip ID not provided", http.StatusBadRequest)
		return
	}
	tripID, err := strconv.Atoi(parts[2])
	if err != nil || tripID <= 0 {
		log.Println("Invalid trip ID")
		http.Error(w, "Invalid trip ID", http.StatusBadRequest)
		return
	}

	// a trip owned by another agent is indistinguishable from a missing one
	tripDAO := db.NewTripDAO(db.GetDB())
	tripDetails, err := tripDAO.GetTripDetailsById(tripID, claims.SubjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("Trip not found")
			http.Error(w, "Trip not found", http.StatusNotFound)
			return
		}
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// rebuild category subtotals from the cached per-row values
	tourists := tripDetails.Trip.NumberOfTourists
	flightsCarbon := 0.0
	for _, segment := range tripDetails.FlightSegments {
		flightsCarbon += segment.CarbonKgPerPassenger * float64(tourists)
	}
	transportCarbon := 0.0
	for _, transport := range tripDetails.LocalTransports {
		transportCarbon += transport.CarbonKgTotal
	}
	hotelsCarbon := 0.0
	for _, stay := range tripDetails.HotelStays {
		hotelsCarbon += stay.CarbonKgTotal
	}

	totals := internals.ComputeTripCarbonTotals(flightsCarbon, transportCarbon, hotelsCarbon, tourists)

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(tripCarbonDetailResponse{
		TripID:             tripDetails.Trip.TripID,
		TripName:           tripDetails.Trip.TripName,
		NumberOfTourists:   tourists,
		TripCarbonTotals:   totals,
		FlightsBreakdown:   tripDetails.FlightSegments,
		TransportBreakdown: tripDetails.LocalTransports,
		HotelsBreakdown:    tripDetails.HotelStays,
	})
	if err != nil {
		log.Println("Error encoding JSON: ", err)
	}
}
