package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/servergreen991/designer-mom/services"
	"github.com/servergreen991/designer-mom/storage"
	"github.com/servergreen991/designer-mom/store"
)

// App is the full dependency graph wired against in-memory collaborators,
// for integration and acceptance suites.
type App struct {
	Port     storage.Port
	Store    *store.Store
	Sessions *services.SessionManager
	Workflow *services.Workflow
	Backup   *services.BackupService
	Renderer *services.MockRenderer
	Images   *services.MockImageStore
}

// BuildApp assembles the application over an in-memory SQLite database, a
// mock renderer and a mock image store.
func BuildApp(t *testing.T) *App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "Failed to connect to test database")

	port, err := storage.NewGormPort(db)
	require.NoError(t, err, "Failed to prepare kv table")

	st, err := store.NewStore(port)
	require.NoError(t, err, "Failed to load state")

	sessions := services.NewSessionManager(st, storage.NewMemorySlot())
	renderer := services.NewMockRenderer()
	images := services.NewMockImageStore()

	return &App{
		Port:     port,
		Store:    st,
		Sessions: sessions,
		Workflow: services.NewWorkflow(st, renderer, images),
		Backup:   services.NewBackupService(st, sessions),
		Renderer: renderer,
		Images:   images,
	}
}

// ReloadStore builds a fresh store over the same persistence port, the way
// a process restart would.
func (a *App) ReloadStore(t *testing.T) *store.Store {
	t.Helper()

	st, err := store.NewStore(a.Port)
	require.NoError(t, err, "Failed to reload state")
	return st
}
