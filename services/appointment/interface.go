package appointment

import "barberflow/models"

// AppointmentService books and manages appointments for a tenant.
type AppointmentService interface {
	// Create books an appointment, resolving the customer and checking the
	// slot for conflicts.
	Create(req models.CreateAppointmentRequest, tenantID int64) (*models.Appointment, error)
	// FindByTenant returns a tenant's appointments, newest first.
	FindByTenant(tenantID int64) ([]models.Appointment, error)
	// Cancel cancels an appointment belonging to the tenant.
	Cancel(id string, tenantID int64) error
}
