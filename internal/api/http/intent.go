package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/purpose-activation/toolkit/internal/journey"
)

type intentReq struct {
	UserID    string `json:"user_id,omitempty"`
	Statement string `json:"statement" validate:"required"`
}

// SubmitIntentHandler records an intention statement. POST /api/intent.
func SubmitIntentHandler(store journey.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req intentReq
		if !decodeBody(w, r, &req) {
			return
		}
		statement := strings.TrimSpace(req.Statement)
		if statement == "" {
			writeDetail(w, http.StatusBadRequest, "Intention statement cannot be empty.")
			return
		}
		in := journey.Intention{ID: uuid.NewString(), UserID: req.UserID, Statement: statement}
		if err := store.SaveIntention(r.Context(), in); err != nil {
			writeError(w, err)
			return
		}
		data, _ := json.Marshal(in)
		if err := store.AppendEvent(r.Context(), "IntentSubmitted", in.ID, string(data)); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{
			"message":   "Intention received",
			"statement": statement,
		})
	}
}
