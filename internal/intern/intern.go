package intern

import "sync"

// Store is an identity-stable interning map from keys to instances.
// The first LoadOrCreate for a key constructs and publishes the instance;
// every later call for the same key returns that exact instance, for the
// life of the process. Entries are never evicted.
type Store[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

// NewStore creates a new empty store.
func NewStore[K comparable, V any]() *Store[K, V] {
	return &Store[K, V]{
		entries: make(map[K]V),
	}
}

// LoadOrCreate returns the instance interned under key, calling create to
// build it if the key has never been seen. The boolean reports whether a new
// instance was created by this call.
//
// The fast path is a read lock. Creation re-checks under the write lock, so
// racing first accesses for the same key still observe a single instance and
// create runs at most once per key.
func (s *Store[K, V]) LoadOrCreate(key K, create func() V) (V, bool) {
	s.mu.RLock()
	v, ok := s.entries[key]
	s.mu.RUnlock()
	if ok {
		return v, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.entries[key]; ok {
		return v, false
	}
	v = create()
	s.entries[key] = v
	return v, true
}

// Load returns the instance interned under key, if any.
func (s *Store[K, V]) Load(key K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	return v, ok
}

// Len returns the number of interned entries.
func (s *Store[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Keys returns a snapshot of the interned keys, in no particular order.
func (s *Store[K, V]) Keys() []K {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]K, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	return keys
}
