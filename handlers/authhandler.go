package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"gorm.io/gorm"

	"hotel-carbon-server/db"
	"hotel-carbon-server/internals"
	"hotel-carbon-server/model"
)

type hotelRegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type agentRegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Company  string `json:"company"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type hotelRegisterResponse struct {
	Message   string `json:"message"`
	HotelID   int    `json:"hotel_id"`
	HotelName string `json:"hotel_name"`
}

type agentRegisterResponse struct {
	Message   string `json:"message"`
	AgentID   int    `json:"agent_id"`
	AgentName string `json:"agent_name"`
}

type hotelLoginResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	HotelID     int    `json:"hotel_id"`
	HotelName   string `json:"hotel_name"`
}

type agentLoginResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	AgentID     int    `json:"agent_id"`
	AgentName   string `json:"agent_name"`
}

func HandleHotelRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	var request hotelRegisterRequest
	err := json.NewDecoder(r.Body).Decode(&request)
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

	// check non-empty strings
	if request.Name == "" || request.Email == "" || request.Password == "" {
		log.Println("Missing required fields")
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	// check email not already registered
	hotelDAO := db.NewHotelDAO(db.GetDB())
	exists, err := hotelDAO.EmailExists(request.Email)
	if err != nil {
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if exists {
		log.Println("Email already registered")
		http.Error(w, "Email already registered", http.StatusBadRequest)
		return
	}

	passwordHash, err := internals.HashPassword(request.Password)
	if err != nil {
		log.Println("Error hashing password: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	hotel, err := hotelDAO.AddHotel(model.Hotel{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		// the unique constraint on email also catches concurrent registrations
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Email already registered", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(hotelRegisterResponse{
		Message:   "Hotel registered successfully",
		HotelID:   hotel.HotelID,
		HotelName: hotel.Name,
	})
	if err != nil {
		log.Println("Error encoding JSON: ", err)
	}
}

func HandleHotelLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	var request loginRequest
	err := json.NewDecoder(r.Body).Decode(&request)
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

	if request.Email == "" || request.Password == "" {
		log.Println("Missing required fields")
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	// unknown email and wrong password produce the same response
	hotelDAO := db.NewHotelDAO(db.GetDB())
	hotel, err := hotelDAO.GetHotelByEmail(request.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("Error while interacting with the database: ", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}
	if !internals.CheckPassword(hotel.PasswordHash, request.Password) {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	accessToken, err := internals.CreateAccessToken(jwtSecret, internals.IdentityKindHotel, hotel.HotelID, hotel.Name)
	if err != nil {
		log.Println("Error creating access token: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(hotelLoginResponse{
		Message:     "Login successful",
		AccessToken: accessToken,
		TokenType:   "bearer",
		HotelID:     hotel.HotelID,
		HotelName:   hotel.Name,
	})
	if err != nil {
		log.Println("Error encoding JSON: ", err)
	}
}

func HandleAgentRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	var request agentRegisterRequest
	err := json.NewDecoder(r.Body).Decode(&request)
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

	if request.Name == "" || request.Email == "" || request.Password == "" {
		log.Println("Missing required fields")
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	agentDAO := db.NewTravelAgentDAO(db.GetDB())
	exists, err := agentDAO.EmailExists(request.Email)
	if err != nil {
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if exists {
		log.Println("Email already registered")
		http.Error(w, "Email already registered", http.StatusBadRequest)
		return
	}

	passwordHash, err := internals.HashPassword(request.Password)
	if err != nil {
		log.Println("Error hashing password: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	agent, err := agentDAO.AddAgent(model.TravelAgent{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: passwordHash,
		Company:      request.Company,
	})
	if err != nil {
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Email already registered", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(agentRegisterResponse{
		Message:   "Travel agent registered successfully",
		AgentID:   agent.AgentID,
		AgentName: agent.Name,
	})
	if err != nil {
		log.Println("Error encoding JSON: ", err)
	}
}

func HandleAgentLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	var request loginRequest
	err := json.NewDecoder(r.Body).Decode(&request)
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

	if request.Email == "" || request.Password == "" {
		log.Println("Missing required fields")
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	agentDAO := db.NewTravelAgentDAO(db.GetDB())
	agent, err := agentDAO.GetAgentByEmail(request.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("Error while interacting with the database: ", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}
	if !internals.CheckPassword(agent.PasswordHash, request.Password) {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	accessToken, err := internals.CreateAccessToken(jwtSecret, internals.IdentityKindAgent, agent.AgentID, agent.Name)
	if err != nil {
		log.Println("Error creating access token: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(agentLoginResponse{
		Message:     "Login successful",
		AccessToken: accessToken,
		TokenType:   "bearer",
		AgentID:     agent.AgentID,
		AgentName:   agent.Name,
	})
	if err != nil {
		log.Println("Error encoding JSON: ", err)
	}
}
