package models

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// BotState is a position in the booking dialogue state machine.
type BotState string

const (
	StateInitial              BotState = "INITIAL"
	StateAwaitingLocation     BotState = "AWAITING_LOCATION"
	StateAwaitingBarberSelect BotState = "AWAITING_BARBER_SELECTION"
	StateAwaitingName         BotState = "AWAITING_NAME"
	StateAwaitingService      BotState = "AWAITING_SERVICE"
	StateAwaitingDate         BotState = "AWAITING_DATE"
	StateAwaitingTime         BotState = "AWAITING_TIME"
	StateAwaitingConfirmation BotState = "AWAITING_CONFIRMATION"
	StateCompleted            BotState = "COMPLETED"
)

// BotSession holds the slot-filling state of one WhatsApp booking dialogue,
// keyed by (customer phone, tenant). COMPLETED sessions are kept so a repeat
// booking can reuse the customer's identity and selections.
//
// A session is mutated by exactly one turn at a time: the orchestrator holds
// the session lock for the whole turn, so duplicate webhook deliveries
// serialize instead of interleaving field writes.
type BotSession struct {
	mu sync.Mutex

	Phone    string
	TenantID int64

	SessionID string // correlates turns sent to the NLU agent
	State     BotState

	CustomerID       int64
	SelectedTenantID int64 // set when the customer picked a different branch
	SelectedLocation string
	AvailableBarbers []Tenant

	SelectedDate time.Time // date only; zero when unset
	SelectedTime time.Time // full date-time; zero when unset

	SelectedServiceIDs   []int64
	TotalDurationMinutes int
	TotalPrice           decimal.Decimal
	TotalCurrency        string

	LastMessage string
	CreatedAt   time.Time
}

func (s *BotSession) Lock()   { s.mu.Lock() }
func (s *BotSession) Unlock() { s.mu.Unlock() }

// TargetTenantID returns the tenant the booking should land on: the branch
// the customer selected, falling back to the tenant that received the message.
func (s *BotSession) TargetTenantID() int64 {
	if s.SelectedTenantID != 0 {
		return s.SelectedTenantID
	}
	return s.TenantID
}
