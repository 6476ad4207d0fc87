package core

import "sync"

// Memo maps keys to lazily computed values. A value is computed on first
// access and cached thereafter, so results never depend on the order in
// which keys are requested as long as compute is a pure function of the key.
type Memo[K comparable, V any] struct {
	mu     sync.Mutex
	values map[K]V
}

// NewMemo returns an empty cache.
func NewMemo[K comparable, V any]() *Memo[K, V] {
	return &Memo[K, V]{values: make(map[K]V)}
}

// Get returns the cached value for key, computing and storing it first if
// needed. compute runs without the lock held; when two callers race on the
// same key the first stored value wins and both observe it.
func (m *Memo[K, V]) Get(key K, compute func(K) V) V {
	m.mu.Lock()
	if v, ok := m.values[key]; ok {
		m.mu.Unlock()
		return v
	}
	m.mu.Unlock()

	v := compute(key)

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.values[key]; ok {
		return existing
	}
	m.values[key] = v
	return v
}

// Cached reports whether key already has a value.
func (m *Memo[K, V]) Cached(key K) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.values[key]
	return ok
}

// Len returns the number of cached entries.
func (m *Memo[K, V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.values)
}
