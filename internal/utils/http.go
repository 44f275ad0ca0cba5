package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it as the HTTP response body
// with the given status code and an "application/json" Content-Type.
//
// Every endpoint and every guard denial answers through this helper, so the
// response envelope stays uniform across the API. If marshaling fails it
// responds with 500 Internal Server Error and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.APIResponse{Success: true}, http.StatusOK)
//	WriteJSON(w, models.APIResponse{Error: "access denied"}, http.StatusForbidden)
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
