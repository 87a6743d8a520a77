package models

import "time"

// Customer represents a person who books appointments with a tenant.
// Customers created from WhatsApp carry the phone number the message
// arrived from, normalized to a leading "+".
type Customer struct {
	ID                 int64     `bson:"id" json:"id"`
	TenantID           int64     `bson:"tenantId" json:"tenantId"`
	Name               string    `bson:"name" json:"name"`
	PhoneNumber        string    `bson:"phoneNumber" json:"phoneNumber"`
	Email              string    `bson:"email,omitempty" json:"email,omitempty"`
	Notes              string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Active             bool      `bson:"active" json:"active"`
	AllowNotifications bool      `bson:"allowNotifications" json:"allowNotifications"`
	CreatedAt          time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time `bson:"updatedAt" json:"updatedAt"`
}
