package externals

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"hotel-carbon-server/config"
)

var (
	storageClient *storage.Client
	once          sync.Once
)
var testMode string
var bucketName string

// address of the storage mock server used in test mode
var mockStorageURL = "http://localhost:8082/storage"

const maxUploadAttempts = 3

func InitObjectStorageApi(cfg *config.Config, testModeArg string) {
	testMode = testModeArg
	bucketName = cfg.StorageBucket

	if testMode != "real" {
		return
	}

	once.Do(func() {
		client, err := storage.NewClient(context.Background(), option.WithCredentialsFile(cfg.StorageCredentialsFile))
		if err != nil {
			log.Fatalf("Error initializing object storage client: %v", err)
		}
		storageClient = client
	})
}

// UploadBillFile stores a raw bill file under the given object name and
// returns the reference URL. Failed attempts are retried a bounded number of
// times with increasing backoff; the caller must not persist bill metadata
// until the upload has succeeded.
func UploadBillFile(ctx context.Context, objectName string, contentType string, data []byte) (string, error) {
	var lastErr error
	for attempt := 0; attempt < maxUploadAttempts; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt*attempt) * time.Second
			log.Println("Retrying bill upload after ", backoff)
			time.Sleep(backoff)
		}

		fileURL, err := uploadOnce(ctx, objectName, contentType, data)
		if err != nil {
			log.Println("Bill upload attempt failed: ", err)
			lastErr = err
			continue
		}
		return fileURL, nil
	}

	return "", fmt.Errorf("all %d upload attempts failed: %w", maxUploadAttempts, lastErr)
}

func uploadOnce(ctx context.Context, objectName string, contentType string, data []byte) (string, error) {
	if testMode == "real" {
		writer := storageClient.Bucket(bucketName).Object(objectName).NewWriter(ctx)
		writer.ContentType = contentType

		if _, err := writer.Write(data); err != nil {
			_ = writer.Close()
			return "", err
		}
		if err := writer.Close(); err != nil {
			return "", err
		}

		return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucketName, objectName), nil
	}

	// if test mode, upload to the local storage mock server
	apiUrl := mockStorageURL + "/" + objectName
	request, err := http.NewRequestWithContext(ctx, http.MethodPut, apiUrl, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	request.Header.Set("Content-Type", contentType)

	resp, err := http.DefaultClient.Do(request)
	if err != nil {
		return "", err
	}
	defer func() {
		err = resp.Body.Close()
		if err != nil {
			log.Println("Error closing response body:", err)
		}
	}()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("storage mock server returned status %d", resp.StatusCode)
	}

	return apiUrl, nil
}
