package models

import "time"

// Tenant represents a barbershop registered on the platform. Each tenant
// receives messages on its own WhatsApp number and manages its own
// customers, services and appointments.
type Tenant struct {
	ID                int64     `bson:"id" json:"id"`
	Name              string    `bson:"name" json:"name"`
	PhoneNumber       string    `bson:"phoneNumber" json:"phoneNumber"`
	Address           string    `bson:"address,omitempty" json:"address,omitempty"`
	City              string    `bson:"city,omitempty" json:"city,omitempty"`
	District          string    `bson:"district,omitempty" json:"district,omitempty"`
	Neighborhood      string    `bson:"neighborhood,omitempty" json:"neighborhood,omitempty"`
	Description       string    `bson:"description,omitempty" json:"description,omitempty"`
	Email             string    `bson:"email,omitempty" json:"email,omitempty"`
	Timezone          string    `bson:"timezone" json:"timezone"`
	WorkingHoursStart string    `bson:"workingHoursStart" json:"workingHoursStart"` // "HH:MM"
	WorkingHoursEnd   string    `bson:"workingHoursEnd" json:"workingHoursEnd"`     // "HH:MM"
	BreakMinutes      int       `bson:"breakMinutes" json:"breakMinutes"`
	Active            bool      `bson:"active" json:"active"`
	CreatedAt         time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time `bson:"updatedAt" json:"updatedAt"`
}

// TenantUser is a staff account allowed to manage a tenant over the admin API.
type TenantUser struct {
	ID           int64     `bson:"id" json:"id"`
	TenantID     int64     `bson:"tenantId" json:"tenantId"`
	Username     string    `bson:"username" json:"username"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	FullName     string    `bson:"fullName,omitempty" json:"fullName,omitempty"`
	Role         string    `bson:"role" json:"role"`
	Active       bool      `bson:"active" json:"active"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
