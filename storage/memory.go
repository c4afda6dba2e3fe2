package storage

import "sync"

// MemoryPort is an in-memory Port used in tests.
type MemoryPort struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryPort creates an empty in-memory port.
func NewMemoryPort() *MemoryPort {
	return &MemoryPort{data: make(map[string][]byte)}
}

// Get returns the value stored under key.
func (p *MemoryPort) Get(key string) ([]byte, bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	value, ok := p.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

// Set stores value under key.
func (p *MemoryPort) Set(key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	p.mu.Lock()
	p.data[key] = stored
	p.mu.Unlock()
	return nil
}

// Keys returns the set of keys ever written (for testing assertions).
func (p *MemoryPort) Keys() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	keys := make([]string, 0, len(p.data))
	for k := range p.data {
		keys = append(keys, k)
	}
	return keys
}
