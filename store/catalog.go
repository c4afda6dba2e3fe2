package store

import (
	"github.com/servergreen991/designer-mom/models"
	"github.com/servergreen991/designer-mom/storage"
)

// AddFabric appends a new fabric, assigning a fresh id.
func (s *Store) AddFabric(fabric models.Fabric) (models.Fabric, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fabric.ID = s.newID()
	next := append(copyFabrics(s.fabrics), fabric)
	if err := s.persist(storage.KeyFabrics, next); err != nil {
		return models.Fabric{}, err
	}
	s.fabrics = next
	return fabric, nil
}

// DeleteFabric removes the fabric with the given id. Orders that snapshot
// the fabric keep their copies; nothing cascades.
func (s *Store) DeleteFabric(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := copyFabrics(s.fabrics)
	for i := range next {
		if next[i].ID == id {
			next = append(next[:i], next[i+1:]...)
			if err := s.persist(storage.KeyFabrics, next); err != nil {
				return err
			}
			s.fabrics = next
			return nil
		}
	}
	return ErrNotFound
}

// GetFabric returns the fabric with the given id.
func (s *Store) GetFabric(id string) (models.Fabric, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, f := range s.fabrics {
		if f.ID == id {
			return f, true
		}
	}
	return models.Fabric{}, false
}

// ListFabrics returns all fabrics in insertion order.
func (s *Store) ListFabrics() []models.Fabric {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyFabrics(s.fabrics)
}

// AddDesign appends a new design style, assigning a fresh id.
func (s *Store) AddDesign(design models.Design) (models.Design, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	design.ID = s.newID()
	next := append(copyDesigns(s.designs), design)
	if err := s.persist(storage.KeyDesigns, next); err != nil {
		return models.Design{}, err
	}
	s.designs = next
	return design, nil
}

// DeleteDesign removes the design with the given id. Same snapshot rule
// as DeleteFabric.
func (s *Store) DeleteDesign(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := copyDesigns(s.designs)
	for i := range next {
		if next[i].ID == id {
			next = append(next[:i], next[i+1:]...)
			if err := s.persist(storage.KeyDesigns, next); err != nil {
				return err
			}
			s.designs = next
			return nil
		}
	}
	return ErrNotFound
}

// GetDesign returns the design with the given id.
func (s *Store) GetDesign(id string) (models.Design, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.designs {
		if d.ID == id {
			return d, true
		}
	}
	return models.Design{}, false
}

// ListDesigns returns all designs in insertion order.
func (s *Store) ListDesigns() []models.Design {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyDesigns(s.designs)
}

func copyFabrics(fabrics []models.Fabric) []models.Fabric {
	out := make([]models.Fabric, len(fabrics))
	copy(out, fabrics)
	return out
}

func copyDesigns(designs []models.Design) []models.Design {
	out := make([]models.Design, len(designs))
	copy(out, designs)
	return out
}
