package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/purpose-activation/toolkit/internal/assess"
	authmw "github.com/purpose-activation/toolkit/internal/auth/middleware"
	"github.com/purpose-activation/toolkit/internal/journey"
)

// ListAssessmentsHandler serves the definition catalog. GET /api/assessments.
func ListAssessmentsHandler(catalog *assess.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"assessments": catalog.List()})
	}
}

type scoreReq struct {
	Responses []int `json:"responses" validate:"required"`
}

// ScoreAssessmentHandler scores one assessment's ordered response list.
// POST /api/assessments/{assessmentID}/score {responses:[...]}.
func ScoreAssessmentHandler(catalog *assess.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "assessmentID")
		def, err := catalog.Get(id)
		if err != nil {
			writeError(w, err)
			return
		}
		var req scoreReq
		if !decodeBody(w, r, &req) {
			return
		}
		res, err := assess.Score(def, req.Responses)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

type recordScoreReq struct {
	AssessmentID string `json:"assessment_id" validate:"required"`
	Score        int    `json:"score"`
}

// RecordScoreHandler saves an already-computed assessment score against the
// authenticated user's history. POST /api/assessments/score (authenticated).
func RecordScoreHandler(catalog *assess.Catalog, store journey.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := authmw.SubjectFromContext(r.Context())
		var req recordScoreReq
		if !decodeBody(w, r, &req) {
			return
		}
		if _, err := catalog.Get(req.AssessmentID); err != nil {
			writeError(w, err)
			return
		}
		data, _ := json.Marshal(map[string]any{
			"assessment_id": req.AssessmentID,
			"score":         req.Score,
			"user":          user,
		})
		if err := store.AppendEvent(r.Context(), "AssessmentScoreRecorded", req.AssessmentID, string(data)); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{
			"message": fmt.Sprintf("Score recorded for %s.", req.AssessmentID),
		})
	}
}
