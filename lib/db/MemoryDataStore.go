package db

import (
	"sync"

	"github.com/DBC-Works/swiki/lib/models/page"
)

// MemoryDataStore keeps the serialized page set in a map, so callers never share memory
// with the stored value.
type MemoryDataStore struct {
	mu       sync.RWMutex
	keyValue map[string]string
}

func (m *MemoryDataStore) GetPageSet() (*page.PageSet, error) {
	m.mu.RLock()
	serialized, ok := m.keyValue[PageSetKey]
	m.mu.RUnlock()

	if !ok {
		return emptyPageSet(), nil
	}
	return decodePageSet(serialized)
}

func (m *MemoryDataStore) SavePageSet(pageSet page.PageSet) error {
	serialized, err := encodePageSet(pageSet)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.keyValue[PageSetKey] = serialized
	m.mu.Unlock()
	return nil
}

func (m *MemoryDataStore) Ping() error {
	return nil
}

func (m *MemoryDataStore) Close() error {
	return nil
}

func NewMemoryDataStore() *MemoryDataStore {
	return &MemoryDataStore{
		keyValue: make(map[string]string),
	}
}

var _ DataStore = (*MemoryDataStore)(nil)
