package http

import (
	"net/http"

	"github.com/purpose-activation/toolkit/internal/config"
	"github.com/purpose-activation/toolkit/internal/content"
)

// ResourcesHandler serves the curated resource list. GET /api/resources.
func ResourcesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"resources": content.Resources()})
	}
}

// IntegrationsHandler serves the external integration links.
// GET /api/integrations.
func IntegrationsHandler(cfg config.Config) http.HandlerFunc {
	integrations := content.Integrations(cfg)
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"integrations": integrations})
	}
}
