package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/purpose-activation/toolkit/internal/assess"
	"github.com/purpose-activation/toolkit/internal/journey"
)

var validate = validator.New()

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDetail emits the error body convention used across the API.
func writeDetail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"detail": msg})
}

// writeError maps service errors onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	if err == journey.ErrNotFound {
		writeDetail(w, http.StatusNotFound, "Journey not found.")
		return
	}
	if se, ok := assess.AsServiceError(err); ok {
		switch se.Code {
		case assess.ErrorInvalid:
			writeDetail(w, http.StatusBadRequest, se.Message)
		case assess.ErrorNotFound:
			writeDetail(w, http.StatusNotFound, se.Message)
		default:
			writeDetail(w, http.StatusInternalServerError, se.Message)
		}
		return
	}
	writeDetail(w, http.StatusInternalServerError, err.Error())
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	if err := validate.Struct(v); err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}
