// Package reminders queues background reminder tasks for the worker daemon.
package reminders

import (
	"fmt"
	"log"
	"time"
)

const (
	TypeWeeklyEmail   = "weekly_email"
	TypeAuditFollowUp = "audit_follow_up"
)

// Task is one queued reminder. The worker consumes these off the exchange.
type Task struct {
	TaskID       string    `json:"task_id"`
	JourneyID    int64     `json:"journey_id"`
	ReminderType string    `json:"reminder_type"`
	RequestedBy  string    `json:"requested_by"`
	EnqueuedAt   time.Time `json:"enqueued_at"`
}

// Queue enqueues reminder tasks. The AMQP publisher is the real
// implementation; LogQueue keeps the gateway functional without a broker.
type Queue interface {
	Enqueue(task Task) error
	Close() error
}

// ValidType reports whether t names a known reminder type.
func ValidType(t string) bool {
	return t == TypeWeeklyEmail || t == TypeAuditFollowUp
}

// LogQueue logs tasks instead of publishing them. Used when AMQP_URL is
// unset (local development without a broker).
type LogQueue struct{}

func (LogQueue) Enqueue(task Task) error {
	log.Printf("reminder queued (no broker): task=%s journey=%d type=%s",
		task.TaskID, task.JourneyID, task.ReminderType)
	return nil
}

func (LogQueue) Close() error { return nil }

func validateTask(task Task) error {
	if task.TaskID == "" {
		return fmt.Errorf("task id required")
	}
	if !ValidType(task.ReminderType) {
		return fmt.Errorf("unknown reminder type %q", task.ReminderType)
	}
	return nil
}
