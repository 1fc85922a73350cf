package keychain

import (
	"sort"
	"sync"
)

type memoryItem struct {
	data   []byte
	access Accessibility
}

// MemoryBackend is an in-process keystore. It never persists and never syncs.
type MemoryBackend struct {
	mu     sync.RWMutex
	items  map[string]memoryItem
	locked bool
}

// NewMemoryBackend returns an empty, unlocked keystore.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{items: make(map[string]memoryItem)}
}

// Data returns a copy of the bytes stored under key. The item is only found
// when it was stored with the same accessibility.
func (m *MemoryBackend) Data(key string, access Accessibility) ([]byte, error) {
	if err := CheckRequest(key, access); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.locked {
		return nil, ErrLocked
	}
	item, ok := m.items[key]
	if !ok || item.access != access {
		return nil, ErrItemNotFound
	}
	return append([]byte(nil), item.data...), nil
}

// SetData stores a copy of data under key.
func (m *MemoryBackend) SetData(data []byte, key string, access Accessibility) error {
	if err := CheckRequest(key, access); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.locked {
		return ErrLocked
	}
	m.items[key] = memoryItem{data: append([]byte(nil), data...), access: access}
	return nil
}

// Remove deletes the item under key.
func (m *MemoryBackend) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.locked {
		return ErrLocked
	}
	if _, ok := m.items[key]; !ok {
		return ErrItemNotFound
	}
	delete(m.items, key)
	return nil
}

// Accessibility returns the level an item was stored with.
func (m *MemoryBackend) Accessibility(key string) (Accessibility, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	item, ok := m.items[key]
	return item.access, ok
}

// Keys returns the stored keys in sorted order.
func (m *MemoryBackend) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.items))
	for key := range m.items {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Lock makes every read and write fail with ErrLocked until Unlock.
func (m *MemoryBackend) Lock() {
	m.mu.Lock()
	m.locked = true
	m.mu.Unlock()
}

// Unlock re-enables access.
func (m *MemoryBackend) Unlock() {
	m.mu.Lock()
	m.locked = false
	m.mu.Unlock()
}
