package registry

import "sync"

// Registry is a process-wide key/value store whose keys can be locked once
// registration is over. Extension points (commands, cron jobs, routes) keep their
// lists here.
type Registry struct {
	mu     sync.RWMutex
	values map[string]interface{}
	locked map[string]bool
}

// GlobalRegistry is shared by all extension points.
var GlobalRegistry = New()

// New returns an empty registry.
func New() *Registry {
	return &Registry{values: make(map[string]interface{}), locked: make(map[string]bool)}
}

// GetGlobal returns the value stored under key.
func (r *Registry) GetGlobal(key string) (interface{}, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	return v, ok
}

// SetGlobal stores v under key. Writes to a locked key are dropped.
func (r *Registry) SetGlobal(key string, v interface{}) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.locked[key] {
		return false
	}
	r.values[key] = v
	return true
}

// Lock freezes key.
func (r *Registry) Lock(key string) {
	r.mu.Lock()
	r.locked[key] = true
	r.mu.Unlock()
}

// IsLocked reports whether key is frozen.
func (r *Registry) IsLocked(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.locked[key]
}

// UnlockForTesting unfreezes key.
func (r *Registry) UnlockForTesting(key string) {
	r.mu.Lock()
	delete(r.locked, key)
	r.mu.Unlock()
}
