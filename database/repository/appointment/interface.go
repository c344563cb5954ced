// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"

	"lawnly/database"
	"lawnly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AppointmentRepository stores confirmed bookings.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Appointment, error)
	ListAll(ctx context.Context, status string) ([]models.Appointment, error)
	// ListByDateRange returns appointments whose scheduled date falls in the
	// half-open interval [from, to). Dates are ISO-8601 strings, so the
	// comparison is lexicographic.
	ListByDateRange(ctx context.Context, from, to string) ([]models.Appointment, error)
	// UpdateSchedule rewrites the scheduled date and time and marks the
	// appointment rescheduled.
	UpdateSchedule(ctx context.Context, id, scheduledDate, scheduledTime string) error
	UpdateStatus(ctx context.Context, id, status string) error
	AssignCrew(ctx context.Context, id, crewMemberID string) error
	CountByStatus(ctx context.Context) (*models.AppointmentStats, error)
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &mongoAppointmentRepo{coll: database.DB().Collection("appointments")}
}
