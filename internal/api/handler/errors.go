package handler

import (
	"net/http"

	"github.com/mwhite/phraseparty/internal/api/apierr"
)

// WriteError writes an error response using the standard API error format
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}
