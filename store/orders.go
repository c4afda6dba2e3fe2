package store

import (
	"github.com/servergreen991/designer-mom/models"
	"github.com/servergreen991/designer-mom/storage"
)

// AddOrder appends a new order, assigning a fresh id. The caller (the
// order workflow) is responsible for the snapshot contents, the initial
// status and the seed status update.
func (s *Store) AddOrder(order models.Order) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order.ID = s.newID()
	next := append(copyOrders(s.orders), cloneOrder(order))
	if err := s.persist(storage.KeyOrders, next); err != nil {
		return models.Order{}, err
	}
	s.orders = next
	return order, nil
}

// UpdateOrder replaces the order with the same id wholesale. Orders are
// never mutated in place by callers; a full updated copy comes back here.
func (s *Store) UpdateOrder(order models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := copyOrders(s.orders)
	for i := range next {
		if next[i].ID == order.ID {
			next[i] = cloneOrder(order)
			if err := s.persist(storage.KeyOrders, next); err != nil {
				return err
			}
			s.orders = next
			return nil
		}
	}
	return ErrNotFound
}

// GetOrder returns the order with the given id.
func (s *Store) GetOrder(id string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == id {
			return cloneOrder(o), true
		}
	}
	return models.Order{}, false
}

// ListOrders returns all orders in insertion order.
func (s *Store) ListOrders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyOrders(s.orders)
}

// ListOrdersByUser returns the orders owned by the given user.
func (s *Store) ListOrdersByUser(userID string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, cloneOrder(o))
		}
	}
	return out
}

// UserOwnsOrders reports whether any order belongs to the given user.
// Used by the staff layer to block user deletion.
func (s *Store) UserOwnsOrders(userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.UserID == userID {
			return true
		}
	}
	return false
}

// cloneOrder copies the order including its inner slices so callers can
// never alias the store's state.
func cloneOrder(o models.Order) models.Order {
	out := o
	out.SelectedFabrics = append([]models.Fabric(nil), o.SelectedFabrics...)
	out.GeneratedDesigns = append([]string(nil), o.GeneratedDesigns...)
	out.StatusUpdates = append([]models.StatusUpdate(nil), o.StatusUpdates...)
	return out
}

func copyOrders(orders []models.Order) []models.Order {
	out := make([]models.Order, len(orders))
	for i, o := range orders {
		out[i] = cloneOrder(o)
	}
	return out
}
