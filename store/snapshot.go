package store

import (
	"github.com/servergreen991/designer-mom/models"
	"github.com/servergreen991/designer-mom/storage"
)

// Snapshot returns a copy of every collection and singleton, in the shape
// of the export document.
func (s *Store) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return models.Snapshot{
		Users:       copyUsers(s.users),
		Fabrics:     copyFabrics(s.fabrics),
		Designs:     copyDesigns(s.designs),
		Orders:      copyOrders(s.orders),
		Messages:    copyMessages(s.messages),
		Feedback:    copyFeedback(s.feedback),
		AppSettings: s.appSettings,
		Theme:       s.theme,
	}
}

// ReplaceAll swaps every collection and singleton for the snapshot's
// contents. This is a wholesale replace, not a merge; it backs the
// destructive import operation.
func (s *Store) ReplaceAll(snap models.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	slots := []struct {
		key   string
		value any
	}{
		{storage.KeyUsers, snap.Users},
		{storage.KeyFabrics, snap.Fabrics},
		{storage.KeyDesigns, snap.Designs},
		{storage.KeyOrders, snap.Orders},
		{storage.KeyMessages, snap.Messages},
		{storage.KeyFeedback, snap.Feedback},
		{storage.KeyAppSettings, snap.AppSettings},
		{storage.KeyTheme, snap.Theme},
	}
	for _, slot := range slots {
		if err := s.persist(slot.key, slot.value); err != nil {
			return err
		}
	}

	s.users = copyUsers(snap.Users)
	s.fabrics = copyFabrics(snap.Fabrics)
	s.designs = copyDesigns(snap.Designs)
	s.orders = copyOrders(snap.Orders)
	s.messages = copyMessages(snap.Messages)
	s.feedback = copyFeedback(snap.Feedback)
	s.appSettings = snap.AppSettings
	s.theme = snap.Theme
	return nil
}
