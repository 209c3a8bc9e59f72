package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes data as an application/json response with the given status
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// NoContent responds 204 for lifecycle operations whose success carries no
// body (closing registration, starting a turn)
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
