package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	authmw "github.com/purpose-activation/toolkit/internal/auth/middleware"
	"github.com/purpose-activation/toolkit/internal/journey"
	"github.com/purpose-activation/toolkit/internal/reminders"
)

type reminderReq struct {
	ReminderType string `json:"reminder_type" validate:"omitempty,oneof=weekly_email audit_follow_up"`
}

// QueueReminderHandler enqueues a background reminder for a journey.
// POST /api/reminders/{journeyID} (authenticated).
func QueueReminderHandler(queue reminders.Queue, store journey.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		journeyID, err := strconv.ParseInt(chi.URLParam(r, "journeyID"), 10, 64)
		if err != nil {
			writeDetail(w, http.StatusBadRequest, "journey id must be an integer")
			return
		}
		var req reminderReq
		if !decodeBody(w, r, &req) {
			return
		}
		if req.ReminderType == "" {
			req.ReminderType = reminders.TypeWeeklyEmail
		}
		task := reminders.Task{
			TaskID:       uuid.NewString(),
			JourneyID:    journeyID,
			ReminderType: req.ReminderType,
			RequestedBy:  authmw.SubjectFromContext(r.Context()),
			EnqueuedAt:   time.Now().UTC(),
		}
		if err := queue.Enqueue(task); err != nil {
			writeDetail(w, http.StatusInternalServerError, "could not queue reminder")
			return
		}
		data, _ := json.Marshal(task)
		if err := store.AppendEvent(r.Context(), "ReminderQueued", task.TaskID, string(data)); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message":       "Reminder queued.",
			"task_id":       task.TaskID,
			"journey_id":    journeyID,
			"reminder_type": task.ReminderType,
		})
	}
}
