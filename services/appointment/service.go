package appointment

import (
	"context"
	"fmt"

	appointmentRepo "lawnly/database/repository/appointment"
	catalogRepo "lawnly/database/repository/catalog"
	crewRepo "lawnly/database/repository/crew"
	userRepo "lawnly/database/repository/user"
	"lawnly/models"
	"lawnly/services/calendar"
	"lawnly/utils"

	"go.uber.org/zap"
)

// Service exposes appointment queries and the admin-side mutations.
type Service interface {
	ListForUser(ctx context.Context, userID string) ([]models.Appointment, error)
	GetForUser(ctx context.Context, userID, appointmentID string) (*models.Appointment, error)
	ListAll(ctx context.Context, status string) ([]models.Appointment, error)
	CalendarEvents(ctx context.Context, status, from, to string) ([]models.CalendarEvent, []calendar.ParseIssue, error)
	Reschedule(ctx context.Context, req calendar.RescheduleRequest) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID, status string) (*models.Appointment, error)
	CancelForUser(ctx context.Context, userID, appointmentID string) error
	AssignCrew(ctx context.Context, appointmentID, crewMemberID string) (*models.Appointment, error)
	Stats(ctx context.Context) (*models.AppointmentStats, error)
}

// DefaultService is the production implementation.
type DefaultService struct {
	Appointments appointmentRepo.AppointmentRepository
	Users        userRepo.UserRepository
	Catalog      catalogRepo.CatalogRepository
	Crew         crewRepo.CrewRepository
	// Calendar renders appointments into events; the zero value uses the
	// server's local timezone and the default duration.
	Calendar calendar.Adapter
}

// ErrAppointmentNotFound is returned when an id resolves to nothing the
// caller may see.
var ErrAppointmentNotFound = fmt.Errorf("appointment not found")

// ListForUser returns the customer's own appointments.
func (s *DefaultService) ListForUser(ctx context.Context, userID string) ([]models.Appointment, error) {
	appts, err := s.Appointments.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appts, nil
}

// GetForUser returns one appointment, owner-checked.
func (s *DefaultService) GetForUser(ctx context.Context, userID, appointmentID string) (*models.Appointment, error) {
	appt, err := s.Appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointment: %w", err)
	}
	if appt == nil || appt.UserID != userID {
		return nil, ErrAppointmentNotFound
	}
	return appt, nil
}

// ListAll returns every appointment, optionally filtered by status. An
// unknown status filter is an input error rather than an empty result.
func (s *DefaultService) ListAll(ctx context.Context, status string) ([]models.Appointment, error) {
	if status != "" && status != "all" && !models.ValidStatus(status) {
		return nil, models.Invalid("unknown status filter %q", status)
	}
	appts, err := s.Appointments.ListAll(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appts, nil
}

// CalendarEvents renders the filtered appointment list onto the admin
// calendar. When both from and to are given, only appointments scheduled in
// [from, to) are included. Unparseable records come back as issues alongside
// the events.
func (s *DefaultService) CalendarEvents(ctx context.Context, status, from, to string) ([]models.CalendarEvent, []calendar.ParseIssue, error) {
	appts, err := s.listWindow(ctx, status, from, to)
	if err != nil {
		return nil, nil, err
	}

	adapter := s.Calendar
	if adapter.TitleFor == nil {
		adapter.TitleFor = s.eventTitles(ctx, appts)
	}

	events, issues := adapter.BuildEvents(appts)
	for _, issue := range issues {
		utils.GetLogger().Warn("appointment excluded from calendar",
			zap.String("appointmentID", issue.AppointmentID),
			zap.String("field", issue.Field),
			zap.String("reason", issue.Reason))
	}
	return events, issues, nil
}

func (s *DefaultService) listWindow(ctx context.Context, status, from, to string) ([]models.Appointment, error) {
	if from == "" || to == "" {
		return s.ListAll(ctx, status)
	}
	if status != "" && status != "all" && !models.ValidStatus(status) {
		return nil, models.Invalid("unknown status filter %q", status)
	}
	appts, err := s.Appointments.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	if status == "" || status == "all" {
		return appts, nil
	}
	filtered := appts[:0]
	for _, appt := range appts {
		if appt.Status == status {
			filtered = append(filtered, appt)
		}
	}
	return filtered, nil
}

// eventTitles prefetches customer and package names so titles read
// "Package - Customer" instead of raw ids. Lookup failures degrade to the
// id; a broken title must not break the calendar.
func (s *DefaultService) eventTitles(ctx context.Context, appts []models.Appointment) func(models.Appointment) string {
	customers := make(map[string]string)
	packages := make(map[string]string)
	for _, appt := range appts {
		if _, ok := customers[appt.UserID]; !ok {
			name := appt.UserID
			if user, err := s.Users.GetByID(ctx, appt.UserID); err == nil && user != nil {
				name = user.FullName()
			}
			customers[appt.UserID] = name
		}
		if _, ok := packages[appt.ServicePackageID]; !ok {
			name := appt.ServicePackageID
			if pkg, err := s.Catalog.GetPackageByID(ctx, appt.ServicePackageID); err == nil && pkg != nil {
				name = pkg.Name
			}
			packages[appt.ServicePackageID] = name
		}
	}
	return func(appt models.Appointment) string {
		return packages[appt.ServicePackageID] + " - " + customers[appt.UserID]
	}
}

// Reschedule moves an appointment to the dropped slot. The new date and
// time are validated by running them through the calendar parser before
// anything is written.
func (s *DefaultService) Reschedule(ctx context.Context, req calendar.RescheduleRequest) (*models.Appointment, error) {
	appt, err := s.Appointments.GetByID(ctx, req.AppointmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointment: %w", err)
	}
	if appt == nil {
		return nil, ErrAppointmentNotFound
	}
	if appt.Status == models.StatusCompleted || appt.Status == models.StatusCancelled {
		return nil, models.Invalid("cannot reschedule a %s appointment", appt.Status)
	}

	moved := *appt
	moved.ScheduledDate = req.ScheduledDate
	moved.ScheduledTime = req.ScheduledTime
	if _, err := s.Calendar.EventFor(moved); err != nil {
		return nil, models.Invalid("invalid schedule: %v", err)
	}

	if err := s.Appointments.UpdateSchedule(ctx, appt.ID, req.ScheduledDate, req.ScheduledTime); err != nil {
		return nil, fmt.Errorf("failed to reschedule appointment: %w", err)
	}
	return s.Appointments.GetByID(ctx, appt.ID)
}

// UpdateStatus applies an admin status change. Completed and cancelled are
// terminal.
func (s *DefaultService) UpdateStatus(ctx context.Context, appointmentID, status string) (*models.Appointment, error) {
	if !models.ValidStatus(status) {
		return nil, models.Invalid("unknown status %q", status)
	}

	appt, err := s.Appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointment: %w", err)
	}
	if appt == nil {
		return nil, ErrAppointmentNotFound
	}
	if appt.Status == models.StatusCompleted || appt.Status == models.StatusCancelled {
		return nil, models.Invalid("appointment is already %s", appt.Status)
	}

	if err := s.Appointments.UpdateStatus(ctx, appointmentID, status); err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}
	appt.Status = status
	return appt, nil
}

// CancelForUser lets a customer cancel their own upcoming appointment.
func (s *DefaultService) CancelForUser(ctx context.Context, userID, appointmentID string) error {
	appt, err := s.GetForUser(ctx, userID, appointmentID)
	if err != nil {
		return err
	}
	if appt.Status == models.StatusCompleted || appt.Status == models.StatusCancelled {
		return models.Invalid("appointment is already %s", appt.Status)
	}
	if err := s.Appointments.UpdateStatus(ctx, appointmentID, models.StatusCancelled); err != nil {
		return fmt.Errorf("failed to cancel appointment: %w", err)
	}
	return nil
}

// AssignCrew attaches an active crew member to an appointment.
func (s *DefaultService) AssignCrew(ctx context.Context, appointmentID, crewMemberID string) (*models.Appointment, error) {
	appt, err := s.Appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointment: %w", err)
	}
	if appt == nil {
		return nil, ErrAppointmentNotFound
	}

	member, err := s.Crew.GetByID(ctx, crewMemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to load crew member: %w", err)
	}
	if member == nil {
		return nil, fmt.Errorf("crew member not found")
	}
	if !member.IsActive {
		return nil, models.Invalid("crew member %s %s is inactive", member.FirstName, member.LastName)
	}

	if err := s.Appointments.AssignCrew(ctx, appointmentID, crewMemberID); err != nil {
		return nil, fmt.Errorf("failed to assign crew: %w", err)
	}
	appt.CrewMemberID = crewMemberID
	return appt, nil
}

// Stats returns the per-status dashboard roll-up.
func (s *DefaultService) Stats(ctx context.Context) (*models.AppointmentStats, error) {
	stats, err := s.Appointments.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count appointments: %w", err)
	}
	return stats, nil
}
