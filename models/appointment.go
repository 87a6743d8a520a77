package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Appointment statuses.
const (
	AppointmentPending   = "PENDING"
	AppointmentConfirmed = "CONFIRMED"
	AppointmentCancelled = "CANCELLED"
	AppointmentCompleted = "COMPLETED"
)

// Appointment is a scheduled booking of a service for a customer.
type Appointment struct {
	ID           string          `bson:"id" json:"id"` // UUID
	TenantID     int64           `bson:"tenantId" json:"tenantId"`
	CustomerID   int64           `bson:"customerId" json:"customerId"`
	ServiceID    int64           `bson:"serviceId" json:"serviceId"`
	StartTime    time.Time       `bson:"startTime" json:"startTime"`
	EndTime      time.Time       `bson:"endTime" json:"endTime"`
	Status       string          `bson:"status" json:"status"`
	Notes        string          `bson:"notes,omitempty" json:"notes,omitempty"`
	TotalPrice   decimal.Decimal `bson:"totalPrice" json:"totalPrice"`
	Currency     string          `bson:"currency" json:"currency"`
	ReminderSent bool            `bson:"reminderSent" json:"reminderSent"`
	CreatedAt    time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// CreateAppointmentRequest carries the data needed to create an appointment.
// Either CustomerID or CustomerPhone must be set; bookings coming from the
// WhatsApp flow always carry a resolved CustomerID.
type CreateAppointmentRequest struct {
	CustomerID    int64     `json:"customerId,omitempty"`
	CustomerName  string    `json:"customerName,omitempty"`
	CustomerPhone string    `json:"customerPhone,omitempty"`
	ServiceID     int64     `json:"serviceId"`
	StartTime     time.Time `json:"startTime"`
	Notes         string    `json:"notes,omitempty"`
}
