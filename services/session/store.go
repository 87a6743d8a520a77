package session

import (
	"fmt"
	"sync"
	"time"

	"barberflow/models"

	"github.com/google/uuid"
)

// Store holds one BotSession per (phone, tenant) key for the lifetime of
// the process. It is owned by whoever constructs it and injected into the
// orchestrator; there is no eviction, cleanup is an external concern.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*models.BotSession
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*models.BotSession)}
}

func key(phone string, tenantID int64) string {
	return fmt.Sprintf("%s_%d", phone, tenantID)
}

// GetOrCreate returns the session for (phone, tenantID), creating it on
// first touch. Concurrent callers for the same key always observe the same
// session instance.
func (s *Store) GetOrCreate(phone string, tenantID int64) *models.BotSession {
	k := key(phone, tenantID)

	s.mu.RLock()
	sess, ok := s.sessions[k]
	s.mu.RUnlock()
	if ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Re-check: another goroutine may have won the insert race.
	if sess, ok := s.sessions[k]; ok {
		return sess
	}
	sess = &models.BotSession{
		Phone:     phone,
		TenantID:  tenantID,
		SessionID: uuid.New().String(),
		State:     models.StateInitial,
		CreatedAt: time.Now(),
	}
	s.sessions[k] = sess
	return sess
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
