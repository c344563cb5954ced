package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"lawnly/config"
	userRepo "lawnly/database/repository/user"
	"lawnly/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Notifier delivers the reminder to the customer.
type Notifier interface {
	NotifyAppointmentReminder(ctx context.Context, payload ReminderPayload) error
}

// LogNotifier records reminders in the application log. It stands in until
// an email or push channel is wired up.
type LogNotifier struct {
	Users userRepo.UserRepository
}

// NotifyAppointmentReminder logs the reminder with the customer's contact
// details resolved where possible.
func (n *LogNotifier) NotifyAppointmentReminder(ctx context.Context, payload ReminderPayload) error {
	fields := []zap.Field{
		zap.String("appointmentID", payload.AppointmentID),
		zap.String("userID", payload.UserID),
		zap.String("scheduledDate", payload.ScheduledDate),
		zap.String("scheduledTime", payload.ScheduledTime),
	}
	if n.Users != nil {
		if user, err := n.Users.GetByID(ctx, payload.UserID); err == nil && user != nil {
			fields = append(fields, zap.String("email", user.Email))
		}
	}
	utils.GetLogger().Info("appointment reminder due", fields...)
	return nil
}

// InitReminderWorker runs the asynq worker in the background, retrying
// startup with backoff before giving up.
func InitReminderWorker(notifier Notifier) {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAppointmentReminder, handleReminderTask(notifier))

	go func() {
		logger := utils.GetLogger()
		logger.Info("starting reminder worker")
		const maxAttempts = 5

		for attempt := 1; attempt <= maxAttempts; attempt++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("reminder worker failed to start",
				zap.Int("attempt", attempt),
				zap.Int("maxAttempts", maxAttempts),
				zap.Error(err))
			if attempt == maxAttempts {
				logger.Fatal("reminder worker exhausted startup attempts")
			}
			time.Sleep(time.Duration(attempt*2) * time.Second)
		}
	}()
}

func handleReminderTask(notifier Notifier) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var payload ReminderPayload
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			utils.GetLogger().Error("invalid reminder payload", zap.Error(err))
			return fmt.Errorf("invalid reminder payload: %w", err)
		}
		if err := notifier.NotifyAppointmentReminder(ctx, payload); err != nil {
			utils.GetLogger().Warn("reminder delivery failed",
				zap.String("appointmentID", payload.AppointmentID), zap.Error(err))
			return err
		}
		return nil
	}
}
