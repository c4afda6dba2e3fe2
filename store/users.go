package store

import (
	"github.com/servergreen991/designer-mom/models"
	"github.com/servergreen991/designer-mom/storage"
)

// AddUser appends a new user, assigning a fresh id, and persists the
// collection. Email uniqueness is the session manager's concern.
func (s *Store) AddUser(user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = s.newID()
	next := append(copyUsers(s.users), user)
	if err := s.persist(storage.KeyUsers, next); err != nil {
		return models.User{}, err
	}
	s.users = next
	return user, nil
}

// UpdateUser replaces the user with the same id wholesale.
func (s *Store) UpdateUser(user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := copyUsers(s.users)
	for i := range next {
		if next[i].ID == user.ID {
			next[i] = user
			if err := s.persist(storage.KeyUsers, next); err != nil {
				return err
			}
			s.users = next
			return nil
		}
	}
	return ErrNotFound
}

// DeleteUser removes the user with the given id. Callers are responsible
// for the cross-entity precondition that the user owns no orders; the
// store itself never cascades.
func (s *Store) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := copyUsers(s.users)
	for i := range next {
		if next[i].ID == id {
			next = append(next[:i], next[i+1:]...)
			if err := s.persist(storage.KeyUsers, next); err != nil {
				return err
			}
			s.users = next
			return nil
		}
	}
	return ErrNotFound
}

// GetUser returns the user with the given id.
func (s *Store) GetUser(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// FindUserByEmail returns the user with the given email, if any.
func (s *Store) FindUserByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

// ListUsers returns all users in insertion order.
func (s *Store) ListUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyUsers(s.users)
}

func copyUsers(users []models.User) []models.User {
	out := make([]models.User, len(users))
	copy(out, users)
	return out
}
