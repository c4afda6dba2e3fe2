package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/servergreen991/designer-mom/models"
	"github.com/servergreen991/designer-mom/storage"
)

// ErrNotFound is returned by update and delete operations when no entity
// with the given id exists.
var ErrNotFound = errors.New("entity not found")

// Store is the sole owner of all persisted collections and singletons.
// Every mutation synchronously writes the affected collection through the
// persistence port before returning, so a reload always reflects the
// latest committed state.
//
// Entity ids are random UUIDs. The application this replaces minted ids
// from wall-clock timestamps, which can collide under rapid successive
// creation; the id format is the one observable difference.
type Store struct {
	mu    sync.RWMutex
	port  storage.Port
	newID func() string

	users       []models.User
	fabrics     []models.Fabric
	designs     []models.Design
	orders      []models.Order
	messages    []models.Message
	feedback    []models.Feedback
	appSettings models.AppSettings
	theme       models.Theme
}

// NewStore loads every collection from the persistence port, falling back
// to the documented seed data for keys that have never been written.
func NewStore(port storage.Port) (*Store, error) {
	s := &Store{
		port:  port,
		newID: uuid.NewString,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	if err := s.loadKey(storage.KeyUsers, &s.users, seedUsers()); err != nil {
		return err
	}
	if err := s.loadKey(storage.KeyFabrics, &s.fabrics, []models.Fabric{}); err != nil {
		return err
	}
	if err := s.loadKey(storage.KeyDesigns, &s.designs, []models.Design{}); err != nil {
		return err
	}
	if err := s.loadKey(storage.KeyOrders, &s.orders, []models.Order{}); err != nil {
		return err
	}
	if err := s.loadKey(storage.KeyMessages, &s.messages, seedMessages()); err != nil {
		return err
	}
	if err := s.loadKey(storage.KeyFeedback, &s.feedback, []models.Feedback{}); err != nil {
		return err
	}
	if err := s.loadKey(storage.KeyAppSettings, &s.appSettings, seedAppSettings()); err != nil {
		return err
	}
	if err := s.loadKey(storage.KeyTheme, &s.theme, seedTheme()); err != nil {
		return err
	}
	return nil
}

// loadKey reads one slot into dst, using seed when the key is absent.
func (s *Store) loadKey(key string, dst any, seed any) error {
	raw, ok, err := s.port.Get(key)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", key, err)
	}
	if !ok {
		seedJSON, err := json.Marshal(seed)
		if err != nil {
			return fmt.Errorf("failed to marshal seed for %s: %w", key, err)
		}
		return json.Unmarshal(seedJSON, dst)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

// persist writes one collection through the port. Callers hold the write
// lock and must only commit in-memory state after persist succeeds.
func (s *Store) persist(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.port.Set(key, raw); err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}
