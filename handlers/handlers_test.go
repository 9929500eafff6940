package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel-carbon-server/config"
	"hotel-carbon-server/internals"
)

const testJWTSecret = "handlers-test-secret"

func setupTestAuth(t *testing.T) {
	t.Helper()
	InitAuth(&config.Config{JWTSecret: testJWTSecret})
}

func hotelToken(t *testing.T) string {
	t.Helper()
	token, err := internals.CreateAccessToken([]byte(testJWTSecret), internals.IdentityKindHotel, 1, "Test Hotel")
	if err != nil {
		t.Fatalf("CreateAccessToken: %v", err)
	}
	return token
}

func agentToken(t *testing.T) string {
	t.Helper()
	token, err := internals.CreateAccessToken([]byte(testJWTSecret), internals.IdentityKindAgent, 1, "Test Agent")
	if err != nil {
		t.Fatalf("CreateAccessToken: %v", err)
	}
	return token
}

type billForm struct {
	billType   string
	billMonth  string
	billYear   string
	billAmount string
	unit       string
}

func newBillUploadRequest(t *testing.T, token string, form billForm) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	fields := map[string]string{
		"bill_type":   form.billType,
		"bill_month":  form.billMonth,
		"bill_year":   form.billYear,
		"bill_amount": form.billAmount,
		"unit":        form.unit,
	}
	for name, value := range fields {
		err := writer.WriteField(name, value)
		if err != nil {
			t.Fatalf("WriteField(%q): %v", name, err)
		}
	}
	fileWriter, err := writer.CreateFormFile("file", "bill.pdf")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	_, err = fileWriter.Write([]byte("fake bill content"))
	if err != nil {
		t.Fatalf("writing file field: %v", err)
	}
	err = writer.Close()
	if err != nil {
		t.Fatalf("closing multipart writer: %v", err)
	}

	request := httptest.NewRequest("POST", "/bills/upload", &body)
	request.Header.Set("Content-Type", writer.FormDataContentType())
	request.Header.Set("Authorization", "Bearer "+token)
	return request
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	setupTestAuth(t)

	tests := []struct {
		name    string
		method  string
		target  string
		handler http.HandlerFunc
		header  string
	}{
		{name: "my bills without header", method: "GET", target: "/bills/my-bills", handler: HandleMyBills},
		{name: "my bills with malformed header", method: "GET", target: "/bills/my-bills", handler: HandleMyBills, header: "Token abc"},
		{name: "my bills with garbage token", method: "GET", target: "/bills/my-bills", handler: HandleMyBills, header: "Bearer garbage"},
		{name: "carbon footprint without header", method: "GET", target: "/bills/carbon-footprint", handler: HandleCarbonFootprint},
		{name: "my trips without header", method: "GET", target: "/trips/my-trips", handler: HandleMyTrips},
		{name: "trip carbon without header", method: "GET", target: "/trips/5/carbon", handler: HandleTripCarbon},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest(test.method, test.target, nil)
			if test.header != "" {
				request.Header.Set("Authorization", test.header)
			}
			recorder := httptest.NewRecorder()

			test.handler(recorder, request)

			if recorder.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want %d", recorder.Code, http.StatusUnauthorized)
			}
		})
	}
}

func TestProtectedRoutesRejectWrongIdentityKind(t *testing.T) {
	setupTestAuth(t)

	// a hotel token never opens agent routes and vice versa
	tests := []struct {
		name    string
		method  string
		target  string
		handler http.HandlerFunc
		token   string
	}{
		{name: "agent token on my bills", method: "GET", target: "/bills/my-bills", handler: HandleMyBills, token: agentToken(t)},
		{name: "hotel token on my trips", method: "GET", target: "/trips/my-trips", handler: HandleMyTrips, token: hotelToken(t)},
		{name: "hotel token on trip carbon", method: "GET", target: "/trips/5/carbon", handler: HandleTripCarbon, token: hotelToken(t)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest(test.method, test.target, nil)
			request.Header.Set("Authorization", "Bearer "+test.token)
			recorder := httptest.NewRecorder()

			test.handler(recorder, request)

			if recorder.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want %d", recorder.Code, http.StatusUnauthorized)
			}
		})
	}
}

func TestUploadBillValidation(t *testing.T) {
	setupTestAuth(t)
	token := hotelToken(t)

	validForm := billForm{
		billType:   "electricity",
		billMonth:  "3",
		billYear:   "2024",
		billAmount: "450",
		unit:       "kWh",
	}

	tests := []struct {
		name       string
		mutate     func(form *billForm)
		wantInBody string
	}{
		{
			name:       "invalid bill type",
			mutate:     func(form *billForm) { form.billType = "gas" },
			wantInBody: "Invalid bill type",
		},
		{
			name:       "month too small",
			mutate:     func(form *billForm) { form.billMonth = "0" },
			wantInBody: "Invalid month",
		},
		{
			name:       "month too large",
			mutate:     func(form *billForm) { form.billMonth = "13" },
			wantInBody: "Invalid month",
		},
		{
			name:       "year before 2020",
			mutate:     func(form *billForm) { form.billYear = "2019" },
			wantInBody: "Invalid year",
		},
		{
			name:       "year too far in the future",
			mutate:     func(form *billForm) { form.billYear = "2999" },
			wantInBody: "Invalid year",
		},
		{
			name:       "negative amount",
			mutate:     func(form *billForm) { form.billAmount = "-5" },
			wantInBody: "Bill amount",
		},
		{
			name:       "non numeric amount",
			mutate:     func(form *billForm) { form.billAmount = "lots" },
			wantInBody: "Bill amount",
		},
		{
			name:       "unit of the wrong type",
			mutate:     func(form *billForm) { form.unit = "liters" },
			wantInBody: "Invalid unit",
		},
		{
			name: "bill type is checked before month",
			mutate: func(form *billForm) {
				form.billType = "gas"
				form.billMonth = "0"
			},
			wantInBody: "Invalid bill type",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			form := validForm
			test.mutate(&form)
			request := newBillUploadRequest(t, token, form)
			recorder := httptest.NewRecorder()

			HandleUploadBill(recorder, request)

			if recorder.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", recorder.Code, http.StatusBadRequest)
			}
			if !strings.Contains(recorder.Body.String(), test.wantInBody) {
				t.Fatalf("body %q does not contain %q", recorder.Body.String(), test.wantInBody)
			}
		})
	}
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	setupTestAuth(t)

	tests := []struct {
		name    string
		target  string
		handler http.HandlerFunc
		body    string
	}{
		{name: "hotel register without name", target: "/auth/register", handler: HandleHotelRegister, body: `{"email":"a@b.com","password":"pw"}`},
		{name: "hotel register without password", target: "/auth/register", handler: HandleHotelRegister, body: `{"name":"Hotel","email":"a@b.com"}`},
		{name: "agent register without email", target: "/auth/register-agent", handler: HandleAgentRegister, body: `{"name":"Agent","password":"pw"}`},
		{name: "hotel login without password", target: "/auth/login", handler: HandleHotelLogin, body: `{"email":"a@b.com"}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest("POST", test.target, strings.NewReader(test.body))
			recorder := httptest.NewRecorder()

			test.handler(recorder, request)

			if recorder.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", recorder.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestCreateTripValidation(t *testing.T) {
	setupTestAuth(t)
	token := agentToken(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing trip name", body: `{"number_of_tourists":5,"start_date":"2024-06-01","end_date":"2024-06-10"}`},
		{name: "negative tourists", body: `{"trip_name":"Tour","number_of_tourists":-1,"start_date":"2024-06-01","end_date":"2024-06-10"}`},
		{name: "bad start date", body: `{"trip_name":"Tour","number_of_tourists":5,"start_date":"June 1","end_date":"2024-06-10"}`},
		{name: "end before start", body: `{"trip_name":"Tour","number_of_tourists":5,"start_date":"2024-06-10","end_date":"2024-06-01"}`},
		{name: "transport with zero distance", body: `{"trip_name":"Tour","number_of_tourists":5,"start_date":"2024-06-01","end_date":"2024-06-10","local_transports":[{"vehicle_type":"bus","distance_km":0}]}`},
		{name: "stay with zero nights", body: `{"trip_name":"Tour","number_of_tourists":5,"start_date":"2024-06-01","end_date":"2024-06-10","hotel_stays":[{"hotel_id":1,"number_of_nights":0,"check_in_date":"2024-06-01","check_out_date":"2024-06-02"}]}`},
		{name: "flight without arrival", body: `{"trip_name":"Tour","number_of_tourists":5,"start_date":"2024-06-01","end_date":"2024-06-10","flight_segments":[{"departure_airport":"JFK"}]}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest("POST", "/trips/create", strings.NewReader(test.body))
			request.Header.Set("Authorization", "Bearer "+token)
			recorder := httptest.NewRecorder()

			HandleCreateTrip(recorder, request)

			if recorder.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d, body %q", recorder.Code, http.StatusBadRequest, recorder.Body.String())
			}
		})
	}
}

func TestTripCarbonRejectsBadPath(t *testing.T) {
	setupTestAuth(t)
	token := agentToken(t)

	tests := []struct {
		name   string
		target string
	}{
		{name: "non numeric id", target: "/trips/abc/carbon"},
		{name: "zero id", target: "/trips/0/carbon"},
		{name: "wrong suffix", target: "/trips/5/footprint"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", test.target, nil)
			request.Header.Set("Authorization", "Bearer "+token)
			recorder := httptest.NewRecorder()

			HandleTripCarbon(recorder, request)

			if recorder.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", recorder.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestHandlersRejectWrongMethod(t *testing.T) {
	setupTestAuth(t)

	tests := []struct {
		name    string
		method  string
		target  string
		handler http.HandlerFunc
	}{
		{name: "get on register", method: "GET", target: "/auth/register", handler: HandleHotelRegister},
		{name: "get on login", method: "GET", target: "/auth/login", handler: HandleHotelLogin},
		{name: "post on my bills", method: "POST", target: "/bills/my-bills", handler: HandleMyBills},
		{name: "get on upload", method: "GET", target: "/bills/upload", handler: HandleUploadBill},
		{name: "get on create trip", method: "GET", target: "/trips/create", handler: HandleCreateTrip},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest(test.method, test.target, nil)
			recorder := httptest.NewRecorder()

			test.handler(recorder, request)

			if recorder.Code != http.StatusMethodNotAllowed {
				t.Fatalf("status = %d, want %d", recorder.Code, http.StatusMethodNotAllowed)
			}
		})
	}
}
