package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"hotel-carbon-server/config"
	"hotel-carbon-server/db"
	"hotel-carbon-server/externals"
	"hotel-carbon-server/handlers"
	"hotel-carbon-server/mockservers"
)

func main() {
	// retrieve execution mode
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
	testMode := os.Getenv("TEST_MODE")

	// get port from flag
	port := flag.String("port", "80", "Port on which the server listens")
	flag.Parse()

	cfg := config.Load()

	// init db
	database, err := db.InitDB(testMode)
	if err != nil || database == nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	defer func() {
		sqlDB, err := database.DB()
		if err != nil {
			log.Println("Failed to get DB from gorm: ", err)
			return
		}
		err = sqlDB.Close()
		if err != nil {
			return
		}
	}()

	// init object storage
	externals.InitObjectStorageApi(cfg, testMode)

	// start storage mock server in a new go routine
	if testMode == "test" {
		go mockservers.StartStorageApiServer()
	}

	// configure token signing
	handlers.InitAuth(cfg)

	// setup routes
	SetupRoutes(*port)
}
