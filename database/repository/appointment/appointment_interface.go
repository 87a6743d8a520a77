package appointmentRepo

import (
	"time"

	"barberflow/models"
)

// AppointmentRepository defines methods for appointment data access.
type AppointmentRepository interface {
	// GetByID retrieves an appointment by its UUID.
	GetByID(id string) (*models.Appointment, error)
	// FindByTenant retrieves a tenant's appointments, newest first.
	FindByTenant(tenantID int64) ([]models.Appointment, error)
	// FindOverlapping retrieves non-cancelled appointments of a tenant that
	// overlap the [start, end) window.
	FindOverlapping(tenantID int64, start, end time.Time) ([]models.Appointment, error)
	// Create inserts a new appointment.
	Create(a *models.Appointment) error
	// UpdateStatus sets the status of an appointment.
	UpdateStatus(id, status string) error
	// MarkReminderSent flags an appointment's reminder as delivered.
	MarkReminderSent(id string) error
}
