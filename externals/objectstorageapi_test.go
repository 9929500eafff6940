package externals

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel-carbon-server/config"
)

func TestUploadBillFileTestMode(t *testing.T) {
	var receivedBody []byte
	var receivedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("reading request body: %v", err)
		}
		receivedBody = body
		receivedPath = r.URL.Path
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	InitObjectStorageApi(&config.Config{StorageBucket: "test-bucket"}, "test")
	oldURL := mockStorageURL
	mockStorageURL = server.URL + "/storage"
	defer func() { mockStorageURL = oldURL }()

	fileURL, err := UploadBillFile(context.Background(), "1_electricity_2024_3_bill.pdf", "application/pdf", []byte("bill bytes"))
	if err != nil {
		t.Fatalf("UploadBillFile: %v", err)
	}

	if string(receivedBody) != "bill bytes" {
		t.Fatalf("uploaded body = %q, want %q", receivedBody, "bill bytes")
	}
	if receivedPath != "/storage/1_electricity_2024_3_bill.pdf" {
		t.Fatalf("uploaded path = %q", receivedPath)
	}
	if !strings.HasSuffix(fileURL, "/storage/1_electricity_2024_3_bill.pdf") {
		t.Fatalf("file URL = %q", fileURL)
	}
}

func TestUploadBillFileRetriesOnFailure(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	InitObjectStorageApi(&config.Config{StorageBucket: "test-bucket"}, "test")
	oldURL := mockStorageURL
	mockStorageURL = server.URL + "/storage"
	defer func() { mockStorageURL = oldURL }()

	_, err := UploadBillFile(context.Background(), "object", "application/pdf", []byte("data"))
	if err != nil {
		t.Fatalf("UploadBillFile: %v", err)
	}
	if attempts != 2 {
		t.Fatalf("attempts = %d, want 2", attempts)
	}
}
