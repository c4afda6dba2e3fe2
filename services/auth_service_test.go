package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servergreen991/designer-mom/models"
	"github.com/servergreen991/designer-mom/storage"
	"github.com/servergreen991/designer-mom/store"
)

func newTestSessionManager(t *testing.T) *SessionManager {
	t.Helper()

	st, err := store.NewStore(storage.NewMemoryPort())
	require.NoError(t, err, "Failed to build store")
	return NewSessionManager(st, storage.NewMemorySlot())
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		secret        string
		expectedErr   error
		expectedState SessionState
	}{
		{
			name:          "admin logs in with exact credentials",
			email:         "admin",
			secret:        "admin",
			expectedState: StateActive,
		},
		{
			name:          "approved customer logs in",
			email:         "user@dm.com",
			secret:        "password",
			expectedState: StateActive,
		},
		{
			name:          "unapproved customer lands in awaiting approval",
			email:         "pending@dm.com",
			secret:        "password",
			expectedState: StateAwaitingApproval,
		},
		{
			name:        "wrong password",
			email:       "admin",
			secret:      "wrong",
			expectedErr: ErrInvalidCredentials,
		},
		{
			name:        "unknown email",
			email:       "nobody@dm.com",
			secret:      "password",
			expectedErr: ErrInvalidCredentials,
		},
		{
			name:        "password of a different user",
			email:       "admin",
			secret:      "password",
			expectedErr: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := newTestSessionManager(t)

			user, err := sessions.Login(tt.email, tt.secret)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Equal(t, StateAnonymous, sessions.State())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.email, user.Email)
			assert.Equal(t, tt.expectedState, sessions.State())
		})
	}
}

func TestLoginFailureLeavesSessionUnchanged(t *testing.T) {
	sessions := newTestSessionManager(t)

	_, err := sessions.Login("admin", "admin")
	require.NoError(t, err)

	_, err = sessions.Login("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	current, ok := sessions.Current()
	assert.True(t, ok)
	assert.Equal(t, "admin", current.Email)
}

func TestRegister(t *testing.T) {
	sessions := newTestSessionManager(t)

	user, err := sessions.Register("fresh@dm.com", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, models.RoleCustomer, user.Role)
	assert.False(t, user.Approved)

	// Registration never logs the new account in.
	assert.Equal(t, StateAnonymous, sessions.State())

	_, err = sessions.Register("fresh@dm.com", "other")
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// Duplicate check also covers seed accounts.
	_, err = sessions.Register("user@dm.com", "secret")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestCreateStaff(t *testing.T) {
	sessions := newTestSessionManager(t)

	staff, err := sessions.CreateStaff("sales@dm.com", "secret", "Sales Person", models.RoleSalesperson)
	require.NoError(t, err)
	assert.True(t, staff.Approved)
	assert.Equal(t, models.RoleSalesperson, staff.Role)

	_, err = sessions.CreateStaff("another@dm.com", "secret", "Not Staff", models.RoleCustomer)
	assert.ErrorIs(t, err, ErrConstraintViolation)

	_, err = sessions.CreateStaff("sales@dm.com", "secret", "Dup", models.RoleManager)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestLogoutIsIdempotent(t *testing.T) {
	sessions := newTestSessionManager(t)

	_, err := sessions.Login("admin", "admin")
	require.NoError(t, err)

	sessions.Logout()
	assert.Equal(t, StateAnonymous, sessions.State())
	sessions.Logout()
	assert.Equal(t, StateAnonymous, sessions.State())
}

func TestRefreshUpdatesOnlyMatchingSession(t *testing.T) {
	sessions := newTestSessionManager(t)

	logged, err := sessions.Login("pending@dm.com", "password")
	require.NoError(t, err)
	assert.Equal(t, StateAwaitingApproval, sessions.State())

	// Approval flows call Refresh so the live session picks it up.
	logged.Approved = true
	sessions.Refresh(logged)
	assert.Equal(t, StateActive, sessions.State())

	// Refreshing a different user must not hijack the session.
	sessions.Refresh(models.User{ID: "someone_else", Role: models.RoleAdmin, Approved: true})
	current, ok := sessions.Current()
	assert.True(t, ok)
	assert.Equal(t, logged.ID, current.ID)
}
