// Package content serves the curated, mostly static catalog surfaced on the
// site: recommended resources and external integration links.
package content

import "github.com/purpose-activation/toolkit/internal/config"

type Resource struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	Author      string `json:"author,omitempty"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
}

type Integration struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// Resources returns the curated recommendation list in display order.
func Resources() []Resource {
	return []Resource{
		{
			Title:       "The Power of Intention",
			Type:        "book",
			Author:      "Dr. Wayne Dyer",
			Description: "A classic exploration of how intentions shape our reality.",
		},
		{
			Title:       "Becoming Supernatural",
			Type:        "book",
			Author:      "Dr. Joe Dispenza",
			Description: "Insights into the intersection of quantum science and human potential.",
		},
		{
			Title:       "Mindful Meditation for Beginners",
			Type:        "video",
			Description: "A guided meditation to cultivate presence and awareness.",
		},
		{
			Title:       "Blue Quantum Podcast: Purpose & Vitality",
			Type:        "podcast",
			Description: "A discussion on living purposefully with enhanced vitality.",
		},
	}
}

// Integrations builds the external-link list from configuration so deployments
// can point at their own scheduling, mailing-list and community endpoints.
func Integrations(cfg config.Config) []Integration {
	return []Integration{
		{
			Name:        "Mentorship scheduling",
			Description: "Book a session with a purpose activation mentor.",
			URL:         cfg.CalendlyURL,
		},
		{
			Name:        "Weekly intention letter",
			Description: "Join the mailing list for weekly reflection prompts.",
			URL:         cfg.MailingListURL,
		},
		{
			Name:        "Community circle",
			Description: "Connect with others activating their purpose.",
			URL:         cfg.CommunityURL,
		},
	}
}
