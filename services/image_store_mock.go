package services

import (
	"context"
	"fmt"
	"sync"
)

// MockImageStore is a mock implementation of ImageStore for testing.
type MockImageStore struct {
	mu     sync.Mutex
	stored []string

	// Err, when set, makes every StoreImage call fail.
	Err error
}

// NewMockImageStore creates a new mock image store.
func NewMockImageStore() *MockImageStore {
	return &MockImageStore{}
}

// StoreImage records the data URL and returns a fake bucket URL.
func (m *MockImageStore) StoreImage(ctx context.Context, dataURL string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return "", m.Err
	}
	m.stored = append(m.stored, dataURL)
	return fmt.Sprintf("https://test-bucket.s3.us-east-1.amazonaws.com/previews/%d.png?mock=true", len(m.stored)), nil
}

// Stored returns every data URL handed to the store (for assertions).
func (m *MockImageStore) Stored() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.stored))
	copy(out, m.stored)
	return out
}
