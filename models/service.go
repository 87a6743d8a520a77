package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is a bookable offering in a tenant's catalog.
type Service struct {
	ID              int64           `bson:"id" json:"id"`
	TenantID        int64           `bson:"tenantId" json:"tenantId"`
	Name            string          `bson:"name" json:"name"`
	Description     string          `bson:"description,omitempty" json:"description,omitempty"`
	DurationMinutes int             `bson:"durationMinutes" json:"durationMinutes"`
	Price           decimal.Decimal `bson:"price" json:"price"`
	Currency        string          `bson:"currency" json:"currency"`
	Active          bool            `bson:"active" json:"active"`
	SortOrder       int             `bson:"sortOrder" json:"sortOrder"`
	CreatedAt       time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time       `bson:"updatedAt" json:"updatedAt"`
}
