package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it as the response body with
// the given status code. The "Content-Type" header is always set to
// "application/json".
//
// Every endpoint of the API funnels its responses through this helper so
// that success bodies and error envelopes share one serialization path.
//
// Returns the number of body bytes written, and a wrapped error if
// marshaling fails (the client then receives 500 Internal Server Error).
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
