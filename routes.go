package main

import (
	"log"
	"net/http"

	"hotel-carbon-server/handlers"
)

func SetupServer(port string) *http.Server {
	mux := http.NewServeMux()

	// setup routes
	mux.HandleFunc("/auth/register", handlers.HandleHotelRegister)
	mux.HandleFunc("/auth/login", handlers.HandleHotelLogin)
	mux.HandleFunc("/auth/register-agent", handlers.HandleAgentRegister)
	mux.HandleFunc("/auth/login-agent", handlers.HandleAgentLogin)

	mux.HandleFunc("/bills/upload", handlers.HandleUploadBill)
	mux.HandleFunc("/bills/my-bills", handlers.HandleMyBills)
	mux.HandleFunc("/bills/carbon-footprint", handlers.HandleCarbonFootprint)

	mux.HandleFunc("/trips/create", handlers.HandleCreateTrip)
	mux.HandleFunc("/trips/my-trips", handlers.HandleMyTrips)
	mux.HandleFunc("/trips/", handlers.HandleTripCarbon)

	mux.HandleFunc("/resetTestDatabase", handlers.HandleResetTestDatabase)

	server := &http.Server{
		Addr:    ":" + port,
		Handler: mux,
	}

	return server
}

func SetupRoutes(port string) {
	server := SetupServer(port)

	log.Println("Server listening on port " + port)
	err := server.ListenAndServe()
	if err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
