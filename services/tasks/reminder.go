package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"medicore/models"

	"github.com/hibiken/asynq"
)

// TypeAppointmentReminder is the asynq task type for appointment reminders.
const TypeAppointmentReminder = "reminder:appointment"

// ReminderScheduler enqueues appointment reminders for later delivery.
type ReminderScheduler interface {
	Schedule(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error
}

// NewReminderTask builds the asynq task carrying a reminder payload.
func NewReminderTask(payload models.ReminderPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reminder payload: %w", err)
	}
	return asynq.NewTask(TypeAppointmentReminder, data), nil
}

// AsynqReminderScheduler schedules reminders on an asynq queue backed by
// Redis.
type AsynqReminderScheduler struct {
	client *asynq.Client
}

// NewAsynqReminderScheduler wraps an asynq client.
func NewAsynqReminderScheduler(client *asynq.Client) *AsynqReminderScheduler {
	return &AsynqReminderScheduler{client: client}
}

// Schedule enqueues a reminder to be processed at fireAt. Duplicate enqueues
// for the same booking within the retention window are collapsed by task ID.
func (s *AsynqReminderScheduler) Schedule(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error {
	task, err := NewReminderTask(payload)
	if err != nil {
		return err
	}
	_, err = s.client.EnqueueContext(ctx, task,
		asynq.ProcessAt(fireAt),
		asynq.TaskID("reminder:"+payload.BookingID),
		asynq.MaxRetry(3),
		asynq.Retention(24*time.Hour),
	)
	if err != nil {
		return fmt.Errorf("failed to enqueue reminder for booking %s: %w", payload.BookingID, err)
	}
	return nil
}
