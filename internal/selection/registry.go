package selection

import "sync"

// Registry hands out exactly one coordinator per session id.  Creating a
// coordinator is cheap, so the registry keeps no eviction machinery beyond
// explicit Drop at checkout handoff or session end.
type Registry struct {
	resolver Resolver
	cfg      Config
	mu       sync.Mutex
	sessions map[string]*Coordinator
}

// NewRegistry builds a registry whose coordinators share one resolver and
// one selection config.
func NewRegistry(resolver Resolver, cfg Config) *Registry {
	return &Registry{
		resolver: resolver,
		cfg:      cfg,
		sessions: make(map[string]*Coordinator),
	}
}

// Coordinator returns the session's coordinator, creating it on first use.
// Repeated calls with the same session id return the same instance; that is
// what makes the single-writer contract hold across concurrent requests of
// one session.
func (r *Registry) Coordinator(sessionID, venueID, showID string) *Coordinator {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.sessions[sessionID]; ok {
		return c
	}
	c := NewCoordinator(venueID, showID, r.resolver, r.cfg)
	r.sessions[sessionID] = c
	return c
}

// Drop discards a session's coordinator and its selection state.
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
}
