package store

import (
	"fmt"
	"sync"
)

// KV is the key-value backend the planner store persists into. Get reports
// found=false for a key that was never written.
type KV interface {
	Get(key string) (value []byte, found bool, err error)
	Set(key string, value []byte) error
	Close() error
}

// MemoryKV keeps values in a map. It is used for tests and for the
// "memory" store driver.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

func (m *MemoryKV) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (m *MemoryKV) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	return nil
}

func (m *MemoryKV) Close() error {
	return nil
}

// Open returns the backend selected by driver ("sqlite", "bolt" or "memory").
func Open(driver, dataSourceName string) (KV, error) {
	switch driver {
	case "", "sqlite", "sqlite3":
		return NewSQLiteKV(dataSourceName)
	case "bolt", "bbolt":
		return NewBoltKV(dataSourceName)
	case "memory":
		return NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}
