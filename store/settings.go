package store

import (
	"github.com/servergreen991/designer-mom/models"
	"github.com/servergreen991/designer-mom/storage"
)

// AppSettings returns the branding/payment singleton.
func (s *Store) AppSettings() models.AppSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.appSettings
}

// SetAppSettings overwrites the branding/payment singleton wholesale.
func (s *Store) SetAppSettings(settings models.AppSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(storage.KeyAppSettings, settings); err != nil {
		return err
	}
	s.appSettings = settings
	return nil
}

// Theme returns the color-token singleton.
func (s *Store) Theme() models.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// SetTheme overwrites the color-token singleton wholesale.
func (s *Store) SetTheme(theme models.Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(storage.KeyTheme, theme); err != nil {
		return err
	}
	s.theme = theme
	return nil
}
