package appointment

import (
	"context"
	"fmt"
	"time"

	"barberflow/cron"
	appointmentRepo "barberflow/database/repository/appointment"
	catalogRepo "barberflow/database/repository/catalog"
	tenantRepo "barberflow/database/repository/tenant"
	"barberflow/models"
	"barberflow/services/customer"
	"barberflow/services/notification"
	"barberflow/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultAppointmentService implements AppointmentService.
type DefaultAppointmentService struct {
	Repo      appointmentRepo.AppointmentRepository
	Tenants   tenantRepo.TenantRepository
	Customers customer.CustomerService
	Catalog   catalogRepo.ServiceRepository
	Notifier  notification.NotificationService
	Reminders *cron.Scheduler
	Logger    *zap.Logger
}

// Create books an appointment. The customer may be given by ID (WhatsApp
// flow) or by phone number (admin API); the slot is validated against
// existing bookings before insert. Reminder scheduling and the confirmation
// message are best-effort.
func (s *DefaultAppointmentService) Create(req models.CreateAppointmentRequest, tenantID int64) (*models.Appointment, error) {
	tenant, err := s.Tenants.GetByID(tenantID)
	if err != nil {
		return nil, fmt.Errorf("tenant lookup failed: %w", err)
	}
	if tenant == nil || !tenant.Active {
		return nil, fmt.Errorf("tenant %d not found or inactive", tenantID)
	}

	cust, err := s.resolveCustomer(req, tenantID)
	if err != nil {
		return nil, err
	}

	svc, err := s.Catalog.GetByIDAndTenant(req.ServiceID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("service lookup failed: %w", err)
	}
	if svc == nil {
		return nil, fmt.Errorf("service %d not found for tenant %d", req.ServiceID, tenantID)
	}

	if req.StartTime.IsZero() {
		return nil, fmt.Errorf("start time is required")
	}
	start := req.StartTime
	end := start.Add(time.Duration(svc.DurationMinutes) * time.Minute)

	conflicts, err := s.Repo.FindOverlapping(tenantID, start, end)
	if err != nil {
		return nil, fmt.Errorf("availability check failed: %w", err)
	}
	if len(conflicts) > 0 {
		return nil, fmt.Errorf("time slot %s is already booked", start.Format("02.01.2006 15:04"))
	}

	currency := svc.Currency
	if currency == "" {
		currency = "TRY"
	}

	now := time.Now()
	appt := &models.Appointment{
		ID:         uuid.NewString(),
		TenantID:   tenantID,
		CustomerID: cust.ID,
		ServiceID:  svc.ID,
		StartTime:  start,
		EndTime:    end,
		Status:     models.AppointmentPending,
		Notes:      req.Notes,
		TotalPrice: svc.Price,
		Currency:   currency,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Repo.Create(appt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	if s.Reminders != nil {
		if err := s.Reminders.EnqueueAppointmentReminders(appt); err != nil {
			s.Logger.Warn("failed to schedule reminders",
				zap.String("appointmentId", appt.ID), zap.Error(err))
		}
	}

	if s.Notifier != nil && cust.AllowNotifications {
		body := fmt.Sprintf("Randevunuz alındı: %s, %s. Bekleriz!",
			svc.Name, start.Format("02.01.2006 15:04"))
		if err := s.Notifier.SendWhatsAppText(context.Background(), cust.PhoneNumber, body); err != nil {
			s.Logger.Warn("failed to send booking confirmation",
				zap.String("appointmentId", appt.ID), zap.Error(err))
		}
	}

	s.Logger.Info("appointment created",
		zap.String("appointmentId", appt.ID),
		zap.Int64("tenantId", tenantID),
		zap.Int64("customerId", cust.ID),
		zap.Int64("serviceId", svc.ID),
		zap.Time("startTime", start))
	return appt, nil
}

func (s *DefaultAppointmentService) resolveCustomer(req models.CreateAppointmentRequest, tenantID int64) (*models.Customer, error) {
	if req.CustomerID != 0 {
		cust, err := s.Customers.GetByID(req.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("customer lookup failed: %w", err)
		}
		if cust == nil || cust.TenantID != tenantID {
			return nil, fmt.Errorf("customer %d not found for tenant %d", req.CustomerID, tenantID)
		}
		return cust, nil
	}
	if req.CustomerPhone == "" {
		return nil, fmt.Errorf("customer id or phone is required")
	}
	return s.Customers.CreateFromWhatsApp(req.CustomerName, utils.NormalizePhone(req.CustomerPhone), tenantID)
}

func (s *DefaultAppointmentService) FindByTenant(tenantID int64) ([]models.Appointment, error) {
	return s.Repo.FindByTenant(tenantID)
}

// Cancel cancels an appointment after verifying tenant ownership.
func (s *DefaultAppointmentService) Cancel(id string, tenantID int64) error {
	appt, err := s.Repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("appointment lookup failed: %w", err)
	}
	if appt == nil || appt.TenantID != tenantID {
		return fmt.Errorf("appointment %s not found for tenant %d", id, tenantID)
	}
	if appt.Status == models.AppointmentCancelled {
		return nil
	}
	return s.Repo.UpdateStatus(id, models.AppointmentCancelled)
}

var _ AppointmentService = (*DefaultAppointmentService)(nil)
