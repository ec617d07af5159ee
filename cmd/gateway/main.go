package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	api "github.com/purpose-activation/toolkit/internal/api/http"
	"github.com/purpose-activation/toolkit/internal/assess"
	authmw "github.com/purpose-activation/toolkit/internal/auth/middleware"
	"github.com/purpose-activation/toolkit/internal/config"
	"github.com/purpose-activation/toolkit/internal/db"
	"github.com/purpose-activation/toolkit/internal/journey"
	"github.com/purpose-activation/toolkit/internal/reminders"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	store := journey.NewSQLStore(dbh, cfg.DBDriver)

	// --- Assessments (band tables validated at load) ---
	catalog, err := assess.NewCatalog(assess.BuiltinDefinitions())
	if err != nil {
		log.Fatalf("assessment catalog: %v", err)
	}

	// --- Auth ---
	tokens := authmw.NewTokenService(
		cfg.JWTSecret,
		time.Duration(cfg.AccessTTLMinutes)*time.Minute,
		time.Duration(cfg.RefreshTTLDays)*24*time.Hour,
	)

	// --- Reminder queue ---
	var queue reminders.Queue = reminders.LogQueue{}
	if cfg.AMQPURL != "" {
		pub, err := reminders.NewPublisher(cfg.AMQPURL, cfg.ReminderExchange)
		if err != nil {
			log.Fatalf("amqp connect: %v", err)
		}
		defer pub.Close()
		queue = pub
	}

	handler := api.New(api.Deps{
		Cfg:      cfg,
		Catalog:  catalog,
		AuditCfg: assess.DefaultAuditConfig(),
		Store:    store,
		Queue:    queue,
		Tokens:   tokens,
	})

	log.Printf("listening on %s (db=%s, broker=%v)", cfg.HTTPAddr, cfg.DBDriver, cfg.AMQPURL != "")
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, handler))
}
