package handlers

import (
	"net/http"

	"barberflow/middleware"
	"barberflow/models"
	appointmentService "barberflow/services/appointment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler manages a tenant's appointments over the admin API.
type AppointmentHandler struct {
	Appointments appointmentService.AppointmentService
	Logger       *zap.Logger
}

// ListAppointments handles GET /api/appointments.
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	tenantID := middleware.TenantFromContext(c)
	appointments, err := h.Appointments.FindByTenant(tenantID)
	if err != nil {
		h.Logger.Error("ListAppointments: failed to fetch appointments", zap.Int64("tenantId", tenantID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch appointments"})
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// CreateAppointment handles POST /api/appointments. Staff can book on
// behalf of a walk-in customer by phone number.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	tenantID := middleware.TenantFromContext(c)

	var body models.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	appt, err := h.Appointments.Create(body, tenantID)
	if err != nil {
		h.Logger.Warn("CreateAppointment: booking failed", zap.Int64("tenantId", tenantID), zap.Error(err))
		c.JSON(http.StatusConflict, gin.H{"error": "failed to create appointment", "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// CancelAppointment handles POST /api/appointments/:id/cancel.
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	tenantID := middleware.TenantFromContext(c)
	id := c.Param("id")

	if err := h.Appointments.Cancel(id, tenantID); err != nil {
		h.Logger.Warn("CancelAppointment: cancel failed", zap.String("appointmentId", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "failed to cancel appointment", "message": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
