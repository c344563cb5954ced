package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"lawnly/config"
	"lawnly/models"
	"lawnly/services/calendar"
	"lawnly/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeAppointmentReminder is the asynq task type of the pre-visit reminder.
const TypeAppointmentReminder = "appointment:reminder"

// DefaultReminderLead is how long before the visit the reminder fires when
// the config does not say otherwise.
const DefaultReminderLead = 24 * time.Hour

// ReminderPayload is the task body enqueued for a scheduled appointment.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	UserID        string `json:"userId"`
	ScheduledDate string `json:"scheduledDate"`
	ScheduledTime string `json:"scheduledTime"`
}

// AsynqReminderScheduler enqueues appointment reminders on the Redis-backed
// task queue. It satisfies the booking submitter's scheduler interface.
type AsynqReminderScheduler struct {
	Client *asynq.Client
	// Lead is how far ahead of the visit the reminder fires; zero means
	// DefaultReminderLead.
	Lead time.Duration
	// Calendar parses the appointment's wire date and time. The zero value
	// uses local time.
	Calendar calendar.Adapter
}

// NewAsynqReminderScheduler builds a scheduler from the configured Redis
// queue settings.
func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	lead := DefaultReminderLead
	if config.AppConfig.ReminderLeadHours > 0 {
		lead = time.Duration(config.AppConfig.ReminderLeadHours) * time.Hour
	}
	return &AsynqReminderScheduler{
		Client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
		Lead: lead,
	}
}

func (s *AsynqReminderScheduler) lead() time.Duration {
	if s.Lead > 0 {
		return s.Lead
	}
	return DefaultReminderLead
}

// ScheduleAppointmentReminder enqueues a reminder task to fire ahead of the
// visit. Appointments closer than the lead window get an immediate task
// rather than none.
func (s *AsynqReminderScheduler) ScheduleAppointmentReminder(ctx context.Context, appt *models.Appointment) error {
	event, err := s.Calendar.EventFor(*appt)
	if err != nil {
		return fmt.Errorf("cannot schedule reminder: %w", err)
	}

	payload, err := json.Marshal(ReminderPayload{
		AppointmentID: appt.ID,
		UserID:        appt.UserID,
		ScheduledDate: appt.ScheduledDate,
		ScheduledTime: appt.ScheduledTime,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	processAt := event.Start.Add(-s.lead())
	if now := time.Now(); processAt.Before(now) {
		processAt = now
	}

	task := asynq.NewTask(TypeAppointmentReminder, payload)
	info, err := s.Client.EnqueueContext(ctx, task, asynq.ProcessAt(processAt), asynq.MaxRetry(3))
	if err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	utils.GetLogger().Info("appointment reminder scheduled",
		zap.String("appointmentID", appt.ID),
		zap.String("taskID", info.ID),
		zap.Time("processAt", processAt))
	return nil
}
