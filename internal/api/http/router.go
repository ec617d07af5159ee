package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/purpose-activation/toolkit/internal/assess"
	authmw "github.com/purpose-activation/toolkit/internal/auth/middleware"
	"github.com/purpose-activation/toolkit/internal/config"
	"github.com/purpose-activation/toolkit/internal/journey"
	"github.com/purpose-activation/toolkit/internal/reminders"
)

// Deps collects everything the API surface needs.
type Deps struct {
	Cfg      config.Config
	Catalog  *assess.Catalog
	AuditCfg assess.AuditConfig
	Store    journey.Store
	Queue    reminders.Queue
	Tokens   *authmw.TokenService
}

// New assembles the full gateway router.
func New(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.Cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api", func(ar chi.Router) {
		// Public surface
		ar.Post("/intent", SubmitIntentHandler(d.Store))
		ar.Post("/audit", AuditHandler(d.AuditCfg))
		ar.Get("/assessments", ListAssessmentsHandler(d.Catalog))
		ar.Post("/assessments/{assessmentID}/score", ScoreAssessmentHandler(d.Catalog))
		ar.Get("/resources", ResourcesHandler())
		ar.Get("/integrations", IntegrationsHandler(d.Cfg))

		ar.Post("/token", TokenHandler(d.Tokens, d.Cfg.APIUser, d.Cfg.APIPassHash))
		ar.Post("/token/refresh", RefreshHandler(d.Tokens))

		// Protected surface (access token → subject in context)
		ar.Group(func(pr chi.Router) {
			pr.Use(authmw.RequireAccess(d.Tokens))

			pr.Post("/assessments/score", RecordScoreHandler(d.Catalog, d.Store))
			pr.Post("/reminders/{journeyID}", QueueReminderHandler(d.Queue, d.Store))

			pr.Post("/journeys", CreateJourneyHandler(d.Store))
			pr.Get("/journeys", ListJourneysHandler(d.Store))
			pr.Get("/journeys/{journeyID}", GetJourneyHandler(d.Store))
			pr.Post("/journeys/{journeyID}/milestones", CreateMilestoneHandler(d.Store))
			pr.Get("/journeys/{journeyID}/milestones", ListMilestonesHandler(d.Store))
			pr.Post("/journeys/{journeyID}/alignment-scores", CreateAlignmentScoreHandler(d.Store))
			pr.Get("/journeys/{journeyID}/alignment-scores", ListAlignmentScoresHandler(d.Store))
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	return r
}
