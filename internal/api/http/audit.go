package http

import (
	"encoding/json"
	"net/http"

	"github.com/purpose-activation/toolkit/internal/assess"
)

// AuditHandler evaluates the fixed-form purpose audit.
// POST /api/audit with a bare JSON array of integers.
func AuditHandler(cfg assess.AuditConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var responses []int
		if err := json.NewDecoder(r.Body).Decode(&responses); err != nil {
			writeDetail(w, http.StatusBadRequest, "body must be a JSON array of integers")
			return
		}
		res, err := assess.ScoreAudit(responses, cfg)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}
