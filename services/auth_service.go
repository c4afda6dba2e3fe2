package services

import (
	"fmt"

	"github.com/servergreen991/designer-mom/models"
	"github.com/servergreen991/designer-mom/storage"
	"github.com/servergreen991/designer-mom/store"
)

// SessionState derives what the presentation layer may show for the
// current session.
type SessionState string

const (
	// StateAnonymous means no one is logged in.
	StateAnonymous SessionState = "anonymous"
	// StateAwaitingApproval means a customer is logged in but has not
	// been approved by staff yet; no dashboard is available.
	StateAwaitingApproval SessionState = "awaiting_approval"
	// StateActive means the session user has full access for their role.
	StateActive SessionState = "active"
)

// SessionManager authenticates credentials against the entity store's
// users and owns the ephemeral current-session slot.
type SessionManager struct {
	store *store.Store
	slot  storage.SessionSlot
}

// NewSessionManager wires the session manager to its store and slot.
func NewSessionManager(st *store.Store, slot storage.SessionSlot) *SessionManager {
	return &SessionManager{store: st, slot: slot}
}

// Login matches the email/secret pair exactly against the users
// collection. On success the user becomes the current session; on failure
// the session is left unchanged.
func (m *SessionManager) Login(email, secret string) (models.User, error) {
	user, ok := m.store.FindUserByEmail(email)
	if !ok || user.Password != secret {
		return models.User{}, ErrInvalidCredentials
	}
	m.slot.Save(&user)
	return user, nil
}

// Register creates a new unapproved customer account. It does not log the
// new user in; the caller routes them to the pending-approval view.
func (m *SessionManager) Register(email, secret string) (models.User, error) {
	if _, exists := m.store.FindUserByEmail(email); exists {
		return models.User{}, ErrDuplicateEmail
	}
	user := models.User{
		Email:    email,
		Password: secret,
		Role:     models.RoleCustomer,
		Approved: false,
	}
	created, err := m.store.AddUser(user)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to register user: %w", err)
	}
	return created, nil
}

// CreateStaff creates a pre-approved account with a staff role.
func (m *SessionManager) CreateStaff(email, secret, name string, role models.Role) (models.User, error) {
	if !role.IsStaff() {
		return models.User{}, fmt.Errorf("%w: role %q is not a staff role", ErrConstraintViolation, role)
	}
	if _, exists := m.store.FindUserByEmail(email); exists {
		return models.User{}, ErrDuplicateEmail
	}
	user := models.User{
		Email:    email,
		Password: secret,
		Name:     name,
		Role:     role,
		Approved: true,
	}
	created, err := m.store.AddUser(user)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to create staff user: %w", err)
	}
	return created, nil
}

// Logout clears the current session unconditionally. Idempotent.
func (m *SessionManager) Logout() {
	m.slot.Clear()
}

// Current returns the session user, if any.
func (m *SessionManager) Current() (models.User, bool) {
	user, ok := m.slot.Load()
	if !ok {
		return models.User{}, false
	}
	return *user, true
}

// State derives the session state: Anonymous with no session,
// AwaitingApproval for an unapproved customer, Active otherwise.
func (m *SessionManager) State() SessionState {
	user, ok := m.slot.Load()
	if !ok {
		return StateAnonymous
	}
	if user.Role == models.RoleCustomer && !user.Approved {
		return StateAwaitingApproval
	}
	return StateActive
}

// Refresh updates the session slot when the given user is the one logged
// in, so profile edits and approvals are reflected immediately.
func (m *SessionManager) Refresh(user models.User) {
	current, ok := m.slot.Load()
	if ok && current.ID == user.ID {
		m.slot.Save(&user)
	}
}
