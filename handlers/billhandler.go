package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"hotel-carbon-server/db"
	"hotel-carbon-server/externals"
	"hotel-carbon-server/internals"
	"hotel-carbon-server/model"
)

const maxBillFileSize = 32 << 20

type billUploadResponse struct {
	Message    string `json:"message"`
	BillID     int    `json:"bill_id"`
	BillType   string `json:"bill_type"`
	BillMonth  int    `json:"bill_month"`
	BillYear   int    `json:"bill_year"`
	BillAmount string `json:"bill_amount"`
	Unit       string `json:"unit"`
	FileURL    string `json:"file_url"`
}

type myBillsResponse struct {
	HotelName  string              `json:"hotel_name"`
	TotalBills int                 `json:"total_bills"`
	Bills      []model.UtilityBill `json:"bills"`
}

type carbonFootprintResponse struct {
	HotelName        string                                      `json:"hotel_name"`
	CalculationYear  string                                      `json:"calculation_year"`
	TotalCO2Kg       float64                                     `json:"total_co2_kg"`
	Breakdown        map[string]internals.FootprintTypeBreakdown `json:"breakdown"`
	MonthlyBreakdown []internals.MonthlyFootprint                `json:"monthly_breakdown"`
	Note             string                                      `json:"note"`
}

func HandleUploadBill(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	claims, err := authenticateRequest(r, internals.IdentityKindHotel)
	if err != nil {
		log.Println("Authentication failed: ", err)
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	err = r.ParseMultipartForm(maxBillFileSize)
	if err != nil {
		log.Println("Error parsing multipart form: ", err)
		http.Error(w, "Wrong data provided", http.StatusBadRequest)
		return
	}

	// validate fields in order, first failure wins

	billType := r.FormValue("bill_type")
	if !internals.IsValidBillType(billType) {
		log.Println("Invalid bill type")
		http.Error(w, "Invalid bill type. Must be 'electricity' or 'water'", http.StatusBadRequest)
		return
	}

	billMonth, err := strconv.Atoi(r.FormValue("bill_month"))
	if err != nil || billMonth < 1 || billMonth > 12 {
		log.Println("Invalid bill month")
		http.Error(w, "Invalid month. Must be between 1 and 12", http.StatusBadRequest)
		return
	}

	currentYear := time.Now().Year()
	billYear, err := strconv.Atoi(r.FormValue("bill_year"))
	if err != nil || billYear < 2020 || billYear > currentYear+1 {
		log.Println("Invalid bill year")
		http.Error(w, fmt.Sprintf("Invalid year. Must be between 2020 and %d", currentYear+1), http.StatusBadRequest)
		return
	}

	billAmount := r.FormValue("bill_amount")
	if _, err = internals.ParseBillAmount(billAmount); err != nil {
		log.Println("Invalid bill amount")
		http.Error(w, "Bill amount must be a valid non-negative number", http.StatusBadRequest)
		return
	}

	unit := r.FormValue("unit")
	if !internals.IsValidBillUnit(billType, unit) {
		log.Println("Invalid unit for bill type")
		validUnits := strings.Join(internals.ValidBillUnits(billType), ", ")
		http.Error(w, fmt.Sprintf("Invalid unit for %s. Valid units: %s", billType, validUnits), http.StatusBadRequest)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		log.Println("Bill file is missing: ", err)
		http.Error(w, "Bill file is required", http.StatusBadRequest)
		return
	}
	defer func() {
		err = file.Close()
		if err != nil {
			log.Println("Error closing uploaded file:", err)
		}
	}()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		log.Println("Error reading uploaded file: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// collision resistant object name
	objectName := fmt.Sprintf("%d_%s_%d_%d_%d_%s_%s",
		claims.SubjectID, billType, billYear, billMonth,
		time.Now().Unix(), uuid.NewString(), fileHeader.Filename)

	contentType := fileHeader.Header.Get("Content-Type")
	fileURL, err := externals.UploadBillFile(r.Context(), objectName, contentType, fileBytes)
	if err != nil {
		// metadata is only persisted after a successful upload
		log.Println("Error uploading bill file: ", err)
		http.Error(w, "Upload failed", http.StatusInternalServerError)
		return
	}

	billDAO := db.NewBillDAO(db.GetDB())
	bill, err := billDAO.AddBill(model.UtilityBill{
		HotelID:    claims.SubjectID,
		BillType:   billType,
		BillMonth:  billMonth,
		BillYear:   billYear,
		BillAmount: billAmount,
		Unit:       unit,
		FileURL:    fileURL,
	})
	if err != nil {
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(billUploadResponse{
		Message:    "Bill uploaded successfully",
		BillID:     bill.BillID,
		BillType:   bill.BillType,
		BillMonth:  bill.BillMonth,
		BillYear:   bill.BillYear,
		BillAmount: bill.BillAmount,
		Unit:       bill.Unit,
		FileURL:    bill.FileURL,
	})
	if err != nil {
		log.Println("Error encoding JSON: ", err)
	}
}

func HandleMyBills(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	claims, err := authenticateRequest(r, internals.IdentityKindHotel)
	if err != nil {
		log.Println("Authentication failed: ", err)
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	// bills are scoped to the authenticated hotel, never a client-supplied id
	billDAO := db.NewBillDAO(db.GetDB())
	bills, err := billDAO.GetBillsByHotelId(claims.SubjectID)
	if err != nil {
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(myBillsResponse{
		HotelName:  claims.DisplayName,
		TotalBills: len(bills),
		Bills:      bills,
	})
	if err != nil {
		log.Println("Error encoding JSON: ", err)
	}
}

func HandleCarbonFootprint(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	claims, err := authenticateRequest(r, internals.IdentityKindHotel)
	if err != nil {
		log.Println("Authentication failed: ", err)
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	// optional year filter
	year := 0
	yearStr := r.URL.Query().Get("year")
	if yearStr != "" {
		year, err = strconv.Atoi(yearStr)
		if err != nil || year <= 0 {
			log.Println("Invalid year parameter")
			http.Error(w, "Invalid year parameter", http.StatusBadRequest)
			return
		}
	}

	billDAO := db.NewBillDAO(db.GetDB())
	bills, err := billDAO.GetBillsByHotelIdAndYear(claims.SubjectID, year)
	if err != nil {
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	report := internals.ComputeFootprint(bills)

	calculationYear := "all years"
	if year > 0 {
		calculationYear = strconv.Itoa(year)
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(carbonFootprintResponse{
		HotelName:        claims.DisplayName,
		CalculationYear:  calculationYear,
		TotalCO2Kg:       report.TotalCO2Kg,
		Breakdown:        report.Breakdown,
		MonthlyBreakdown: report.MonthlyBreakdown,
		Note:             "Emission factors are approximate and may vary by region. For precise calculations, consult local grid emission factors.",
	})
	if err != nil {
		log.Println("Error encoding JSON: ", err)
	}
}
