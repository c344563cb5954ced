package booking

import (
	"context"
	"fmt"
	"time"

	appointmentRepo "lawnly/database/repository/appointment"
	propertyRepo "lawnly/database/repository/property"
	"lawnly/models"
	"lawnly/services/pricing"
	"lawnly/utils"

	"go.uber.org/zap"
)

// ReminderScheduler enqueues the day-before service reminder for a newly
// created appointment.
type ReminderScheduler interface {
	ScheduleAppointmentReminder(ctx context.Context, appt *models.Appointment) error
}

// Submitter finalises a completed wizard form into persisted records.
type Submitter interface {
	Submit(ctx context.Context, userID string, form models.BookingForm) (*models.Appointment, error)
}

// DefaultSubmitter is the production implementation.
type DefaultSubmitter struct {
	Properties   propertyRepo.PropertyRepository
	Appointments appointmentRepo.AppointmentRepository
	Pricing      pricing.Service
	Drafts       DraftRepository
	Reminders    ReminderScheduler
}

// Submit validates the whole form and then issues the two create calls in
// strict sequence: the property must exist before the appointment
// referencing it can be created. There is no compensating delete when the
// appointment create fails after the property create succeeded; the
// property stays and is reused on retry.
func (s *DefaultSubmitter) Submit(ctx context.Context, userID string, form models.BookingForm) (*models.Appointment, error) {
	if errs := ValidateForm(form); errs != nil {
		return nil, FieldErrors(errs)
	}

	propertyID, err := s.resolveProperty(ctx, userID, form)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.Pricing.CalculatePrice(ctx, form.ServicePackageID, form.LotSize, form.AddOnServiceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to price booking: %w", err)
	}

	frequency := form.Frequency
	if frequency == "" {
		frequency = models.FrequencyOneTime
	}

	appt := &models.Appointment{
		UserID:              userID,
		PropertyID:          propertyID,
		ServicePackageID:    form.ServicePackageID,
		AddOnServiceIDs:     form.AddOnServiceIDs,
		ScheduledDate:       isoScheduledDate(form.ScheduledDate),
		ScheduledTime:       form.ScheduledTime,
		Frequency:           frequency,
		SpecialInstructions: form.SpecialInstructions,
		Status:              models.StatusScheduled,
		TotalPrice:          breakdown.GrandTotal,
	}
	if err := s.Appointments.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if err := s.Drafts.Clear(ctx, userID); err != nil {
		utils.GetLogger().Warn("failed to clear booking draft after submission", zap.Error(err))
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleAppointmentReminder(ctx, appt); err != nil {
			utils.GetLogger().Warn("failed to schedule appointment reminder",
				zap.String("appointmentID", appt.ID), zap.Error(err))
		}
	}

	return appt, nil
}

// resolveProperty reuses the selected saved property or creates the newly
// described one. The customer's first property becomes primary.
func (s *DefaultSubmitter) resolveProperty(ctx context.Context, userID string, form models.BookingForm) (string, error) {
	if form.UsesSavedProperty() {
		property, err := s.Properties.GetByID(ctx, form.PropertyID)
		if err != nil {
			return "", fmt.Errorf("failed to load property: %w", err)
		}
		if property == nil || property.UserID != userID {
			return "", FieldErrors{"propertyId": "Selected property not found"}
		}
		return property.ID, nil
	}

	count, err := s.Properties.CountByUserID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to count properties: %w", err)
	}

	property := &models.Property{
		UserID:      userID,
		Address:     form.Address,
		City:        form.City,
		State:       form.State,
		ZipCode:     form.ZipCode,
		LotSize:     form.LotSize,
		HasBackyard: form.HasBackyard,
		HasDogs:     form.HasDogs,
		GateCode:    form.GateCode,
		IsPrimary:   count == 0,
	}
	if err := s.Properties.Create(ctx, property); err != nil {
		return "", fmt.Errorf("failed to create property: %w", err)
	}
	return property.ID, nil
}

// isoScheduledDate expands a "YYYY-MM-DD" wizard date into a full ISO8601
// timestamp at local midnight.
func isoScheduledDate(date string) string {
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return date
	}
	return t.Format(time.RFC3339)
}
