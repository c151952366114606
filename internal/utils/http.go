package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON writes data as a newline-terminated JSON body with statusCode.
// Control API responses describe live synchronizer state, so they are
// marked as not cacheable.
//
// When data cannot be marshaled nothing but a 500 is written and the
// marshal error is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Set("Cache-Control", "no-store")
	w.WriteHeader(statusCode)

	return w.Write(append(body, '\n'))
}
