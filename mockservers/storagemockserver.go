package mockservers

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
)

var (
	storedObjects   = map[string][]byte{}
	storedObjectsMu sync.Mutex
)

func StartStorageApiServer() {
	http.HandleFunc("/storage/", StorageApiHandler)

	fmt.Println("Storage mock server starting on port 8082")

	err := http.ListenAndServe(":8082", nil)
	if err != nil {
		// fatal condition
		log.Fatal("Failed to start storage mock server")
	}
}

func StorageApiHandler(w http.ResponseWriter, r *http.Request) {
	objectName := strings.TrimPrefix(r.URL.Path, "/storage/")
	if objectName == "" {
		http.Error(w, "object name is required", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case "PUT":
		data, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "error while reading the request body", http.StatusInternalServerError)
			return
		}

		storedObjectsMu.Lock()
		storedObjects[objectName] = data
		storedObjectsMu.Unlock()

		w.WriteHeader(http.StatusCreated)
	case "GET":
		storedObjectsMu.Lock()
		data, ok := storedObjects[objectName]
		storedObjectsMu.Unlock()

		if !ok {
			http.Error(w, "object not found", http.StatusNotFound)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, err := w.Write(data)
		if err != nil {
			fmt.Println(err)
			http.Error(w, "error while writing the response", http.StatusInternalServerError)
		}
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
