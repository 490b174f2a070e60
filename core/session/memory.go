package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is a thread-safe in-process store. Expired entries read as missing and
// are dropped lazily or by Sweep.
type MemoryStore struct {
	m   sync.Map
	now func() time.Time
}

var (
	once     sync.Once
	instance *MemoryStore
)

// GetInstance returns the process-wide memory store.
func GetInstance() *MemoryStore {
	once.Do(func() {
		instance = NewMemoryStore()
	})
	return instance
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

// item holds a payload and its expiration time.
type item struct {
	Data      []byte
	ExpiresAt int64 // Unix nanoseconds; 0 means no expiration
}

func (s *MemoryStore) expired(it item) bool {
	return it.ExpiresAt > 0 && s.now().UnixNano() > it.ExpiresAt
}

// Get returns the payload for id, or ErrNotFound.
func (s *MemoryStore) Get(_ context.Context, id string) ([]byte, error) {
	v, ok := s.m.Load(id)
	if !ok {
		return nil, ErrNotFound
	}
	it := v.(item)
	if s.expired(it) {
		s.m.Delete(id)
		return nil, ErrNotFound
	}
	out := make([]byte, len(it.Data))
	copy(out, it.Data)
	return out, nil
}

// Set stores data for id. A ttl of 0 never expires.
func (s *MemoryStore) Set(_ context.Context, id string, data []byte, ttl time.Duration) error {
	var expiresAt int64
	if ttl > 0 {
		expiresAt = s.now().Add(ttl).UnixNano()
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	s.m.Store(id, item{Data: cp, ExpiresAt: expiresAt})
	return nil
}

// Delete removes id.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.m.Delete(id)
	return nil
}

// Sweep drops expired entries and returns how many were removed.
func (s *MemoryStore) Sweep() int {
	n := 0
	s.m.Range(func(key, value interface{}) bool {
		if s.expired(value.(item)) {
			s.m.Delete(key)
			n++
		}
		return true
	})
	return n
}

// Len counts stored entries, expired ones included.
func (s *MemoryStore) Len() int {
	n := 0
	s.m.Range(func(_, _ interface{}) bool {
		n++
		return true
	})
	return n
}
