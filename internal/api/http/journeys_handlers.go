package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/purpose-activation/toolkit/internal/journey"
)

type journeyCreateReq struct {
	UserName           string `json:"user_name" validate:"required"`
	IntentionStatement string `json:"intention_statement" validate:"required"`
}

func CreateJourneyHandler(store journey.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req journeyCreateReq
		if !decodeBody(w, r, &req) {
			return
		}
		j, err := store.CreateJourney(r.Context(), req.UserName, req.IntentionStatement)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, j)
	}
}

func ListJourneysHandler(store journey.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		js, err := store.ListJourneys(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, js)
	}
}

func GetJourneyHandler(store journey.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := journeyID(w, r)
		if !ok {
			return
		}
		j, err := store.GetJourney(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, j)
	}
}

type milestoneCreateReq struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	AchievedAt  *time.Time `json:"achieved_at"`
}

func CreateMilestoneHandler(store journey.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := journeyID(w, r)
		if !ok {
			return
		}
		var req milestoneCreateReq
		if !decodeBody(w, r, &req) {
			return
		}
		m, err := store.CreateMilestone(r.Context(), id, req.Title, req.Description, req.AchievedAt)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, m)
	}
}

func ListMilestonesHandler(store journey.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := journeyID(w, r)
		if !ok {
			return
		}
		ms, err := store.ListMilestones(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ms)
	}
}

type alignmentScoreCreateReq struct {
	Score      float64   `json:"score"`
	Notes      string    `json:"notes"`
	RecordedAt time.Time `json:"recorded_at" validate:"required"`
}

func CreateAlignmentScoreHandler(store journey.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := journeyID(w, r)
		if !ok {
			return
		}
		var req alignmentScoreCreateReq
		if !decodeBody(w, r, &req) {
			return
		}
		a, err := store.CreateAlignmentScore(r.Context(), id, req.Score, req.Notes, req.RecordedAt)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, a)
	}
}

func ListAlignmentScoresHandler(store journey.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := journeyID(w, r)
		if !ok {
			return
		}
		as, err := store.ListAlignmentScores(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, as)
	}
}

func journeyID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "journeyID"), 10, 64)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "journey id must be an integer")
		return 0, false
	}
	return id, true
}
