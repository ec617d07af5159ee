package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	HTTPAddr string

	DBDriver string
	DBDSN    string

	JWTSecret        string
	AccessTTLMinutes int
	RefreshTTLDays   int

	APIUser     string
	APIPassHash string // bcrypt

	AMQPURL          string
	ReminderExchange string
	ReminderQueue    string

	CORSOrigins []string

	// External integration links surfaced by /api/integrations.
	CalendlyURL    string
	MailingListURL string
	CommunityURL   string
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		HTTPAddr: addr,

		DBDriver: envOr("DB_DRIVER", "sqlite"),
		DBDSN:    envOr("DB_DSN", ""),

		JWTSecret:        envOr("JWT_SECRET_KEY", "change-me"),
		AccessTTLMinutes: envInt("JWT_ACCESS_EXPIRE_MINUTES", 30),
		RefreshTTLDays:   envInt("JWT_REFRESH_EXPIRE_DAYS", 7),

		APIUser: envOr("API_USERNAME", "admin"),
		// bcrypt hash of the dev default password "password"
		APIPassHash: envOr("API_PASS_HASH", "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"),

		AMQPURL:          os.Getenv("AMQP_URL"),
		ReminderExchange: envOr("REMINDER_EXCHANGE", "toolkit.reminders"),
		ReminderQueue:    envOr("REMINDER_QUEUE", "toolkit.reminders.tasks"),

		CORSOrigins: csvOr("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"),

		CalendlyURL:    envOr("CALENDLY_URL", "https://calendly.com"),
		MailingListURL: envOr("MAILING_LIST_URL", "https://mailchi.mp"),
		CommunityURL:   envOr("COMMUNITY_URL", "https://discord.com"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
