package services

import (
	"encoding/json"
	"fmt"

	"github.com/servergreen991/designer-mom/models"
	"github.com/servergreen991/designer-mom/store"
)

// BackupService serializes the whole dataset to a single document and
// restores it. Import is destructive and irreversible; callers must
// obtain explicit confirmation before invoking it.
type BackupService struct {
	store    *store.Store
	sessions *SessionManager
}

// NewBackupService wires the serializer to the store and the session
// manager (which it logs out after an import).
func NewBackupService(st *store.Store, sessions *SessionManager) *BackupService {
	return &BackupService{store: st, sessions: sessions}
}

// Export produces the backup document with the full current contents of
// every collection and singleton.
func (b *BackupService) Export() models.Snapshot {
	return b.store.Snapshot()
}

// Import validates that every required top-level key is present, then
// wholesale-replaces every collection and forces a logout so the session
// can never reference a user that no longer exists. A document missing
// any key fails with ErrInvalidFormat and leaves all collections
// untouched.
func (b *BackupService) Import(document []byte) error {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(document, &keys); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	for _, key := range models.SnapshotKeys {
		if _, ok := keys[key]; !ok {
			return fmt.Errorf("%w: missing key %q", ErrInvalidFormat, key)
		}
	}

	var snap models.Snapshot
	if err := json.Unmarshal(document, &snap); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	if err := b.store.ReplaceAll(snap); err != nil {
		return fmt.Errorf("failed to import dataset: %w", err)
	}
	b.sessions.Logout()
	return nil
}
