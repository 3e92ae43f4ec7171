package cron

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"medicore/config"
	bookingRepo "medicore/database/repository/booking"
	"medicore/models"
	"medicore/services/tasks"
	"medicore/utils"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// InitReminderWorker runs the appointment reminder worker in the background.
func InitReminderWorker(bookings bookingRepo.BookingRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeAppointmentReminder, handleReminderTask(bookings))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleReminderTask fires an appointment reminder. Bookings that were
// deleted or cancelled since the reminder was scheduled are skipped without
// retry.
func handleReminderTask(bookings bookingRepo.BookingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("reminder task carries invalid payload", zap.Error(err))
			return err
		}

		booking, err := bookings.GetByID(ctx, p.BookingID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				logger.Info("skipping reminder for deleted booking", zap.String("bookingId", p.BookingID))
				return nil
			}
			return err
		}
		if booking.Status == models.BookingStatusCancelled {
			logger.Info("skipping reminder for cancelled booking", zap.String("bookingId", p.BookingID))
			return nil
		}

		logger.Info("appointment reminder",
			zap.String("bookingId", booking.ID),
			zap.String("doctorId", booking.DoctorID),
			zap.String("patientId", booking.PatientID),
			zap.String("date", booking.Date),
			zap.String("startTime", booking.Slot.StartTime),
		)
		return nil
	}
}
