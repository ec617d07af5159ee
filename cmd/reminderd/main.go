package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/purpose-activation/toolkit/internal/config"
	"github.com/purpose-activation/toolkit/internal/reminders"
)

// reminderd drains the reminder queue and sends the actual notifications.
func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	if cfg.AMQPURL == "" {
		log.Fatal("AMQP_URL is required for reminderd")
	}

	consumer, err := reminders.NewConsumer(cfg.AMQPURL, cfg.ReminderExchange, cfg.ReminderQueue)
	if err != nil {
		log.Fatalf("amqp connect: %v", err)
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("reminderd consuming queue %s", cfg.ReminderQueue)
	err = consumer.Run(ctx, func(ctx context.Context, task reminders.Task) error {
		switch task.ReminderType {
		case reminders.TypeWeeklyEmail:
			log.Printf("sending weekly reminder: journey=%d requested_by=%s task=%s",
				task.JourneyID, task.RequestedBy, task.TaskID)
		case reminders.TypeAuditFollowUp:
			log.Printf("sending audit follow-up: journey=%d requested_by=%s task=%s",
				task.JourneyID, task.RequestedBy, task.TaskID)
		default:
			log.Printf("skipping unknown reminder type %q (task=%s)", task.ReminderType, task.TaskID)
		}
		return nil
	})
	if err != nil && err != context.Canceled {
		log.Fatalf("consume: %v", err)
	}
}
