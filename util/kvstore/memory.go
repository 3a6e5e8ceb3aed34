package kvstore

import (
	"strconv"
	"sync"
)

type memoryEntry struct {
	value   []byte
	version uint64
}

// Memory keeps everything in process. Used by tests and dry runs.
type Memory struct {
	mu      sync.Mutex
	data    map[string]memoryEntry
	counter uint64
}

func NewMemory() *Memory {
	return &Memory{data: map[string]memoryEntry{}}
}

func (m *Memory) Get(key string) ([]byte, Version, error) {
	if key == "" {
		return nil, NoVersion, ErrEmptyKey
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	e, found := m.data[key]
	if !found {
		return nil, NoVersion, ErrNotFound
	}
	return append([]byte{}, e.value...), formatCounter(e.version), nil
}

func (m *Memory) Set(key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.put(key, value)
	return nil
}

func (m *Memory) CompareAndSwap(key string, expected Version, value []byte) (Version, error) {
	if key == "" {
		return NoVersion, ErrEmptyKey
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	current := NoVersion
	if e, found := m.data[key]; found {
		current = formatCounter(e.version)
	}
	if current != expected {
		return NoVersion, ErrVersionConflict
	}
	return m.put(key, value), nil
}

func (m *Memory) put(key string, value []byte) Version {
	m.counter++
	m.data[key] = memoryEntry{
		value:   append([]byte{}, value...),
		version: m.counter,
	}
	return formatCounter(m.counter)
}

func (m *Memory) Close() error {
	return nil
}

func formatCounter(v uint64) Version {
	return Version(strconv.FormatUint(v, 10))
}
