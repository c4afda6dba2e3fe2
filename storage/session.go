package storage

import (
	"sync"

	"github.com/servergreen991/designer-mom/models"
)

// SessionSlot holds the currently authenticated user for the active
// client session. It is ephemeral by contract: it survives reloads within
// one session but is never written to the durable store.
type SessionSlot interface {
	Load() (*models.User, bool)
	Save(user *models.User)
	Clear()
}

// MemorySlot is the process-lifetime SessionSlot implementation.
type MemorySlot struct {
	mu   sync.RWMutex
	user *models.User
}

// NewMemorySlot creates an empty session slot.
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

// Load returns a copy of the current session user, if any.
func (s *MemorySlot) Load() (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil, false
	}
	u := *s.user
	return &u, true
}

// Save replaces the current session user.
func (s *MemorySlot) Save(user *models.User) {
	u := *user
	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()
}

// Clear empties the slot. Safe to call when already empty.
func (s *MemorySlot) Clear() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
}
