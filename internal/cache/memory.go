package cache

import (
	"context"
	"sync"
	"time"
)

// Memory is an in-process ListCache. It ignores TTLs beyond recording them
// and exists for tests and local development without Redis; production
// wiring uses RedisList or Noop.
type Memory struct {
	mu    sync.Mutex
	lists map[string][]string
	ttls  map[string]time.Duration
}

func NewMemory() *Memory {
	return &Memory{
		lists: make(map[string][]string),
		ttls:  make(map[string]time.Duration),
	}
}

func (m *Memory) PushFront(_ context.Context, key, val string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists[key] = append([]string{val}, m.lists[key]...)
	return nil
}

func (m *Memory) Range(_ context.Context, key string, start, stop int64) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := m.lists[key]
	n := int64(len(list))
	if start < 0 {
		start = 0
	}
	if stop >= n {
		stop = n - 1
	}
	if n == 0 || start > stop {
		return nil, nil
	}
	out := make([]string, stop-start+1)
	copy(out, list[start:stop+1])
	return out, nil
}

func (m *Memory) Replace(_ context.Context, key string, vals []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(vals) == 0 {
		delete(m.lists, key)
		return nil
	}
	m.lists[key] = append([]string(nil), vals...)
	return nil
}

func (m *Memory) Trim(_ context.Context, key string, n int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if list := m.lists[key]; int64(len(list)) > n {
		m.lists[key] = list[:n]
	}
	return nil
}

func (m *Memory) Expire(_ context.Context, key string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ttls[key] = ttl
	return nil
}

// TTL reports the last TTL set on key, for assertions in tests.
func (m *Memory) TTL(key string) time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ttls[key]
}

// Len reports the current length of the list at key.
func (m *Memory) Len(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.lists[key])
}
