package landing

import "sync"

// Guard tracks actions in flight per session so a control cannot be submitted twice
// while its own request is outstanding. Different actions never block each other.
type Guard struct {
	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewGuard returns an empty guard.
func NewGuard() *Guard {
	return &Guard{inflight: make(map[string]struct{})}
}

// Acquire marks action as in flight for session. ok is false when it already is;
// otherwise release must be called once the action completes.
func (g *Guard) Acquire(session, action string) (release func(), ok bool) {
	key := session + "|" + action
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.inflight[key]; busy {
		return nil, false
	}
	g.inflight[key] = struct{}{}
	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.inflight, key)
			g.mu.Unlock()
		})
	}, true
}

// InFlight reports whether action is running for session.
func (g *Guard) InFlight(session, action string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, busy := g.inflight[session+"|"+action]
	return busy
}
