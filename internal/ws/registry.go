package ws

import (
	"context"
	"sync"
)

// Peer is the registry's view of a connected session: an identity, a
// human-readable label, and a serialized send.
type Peer interface {
	ID() string
	Label() string
	Send(ctx context.Context, payload any) error
}

// Registry is the authoritative set of live sessions. It is owned by the
// hub and shared by reference with the broadcaster; there is no global
// connection list.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]Peer
}

func NewRegistry() *Registry {
	return &Registry{sessions: map[string]Peer{}}
}

// Register makes p eligible for all future broadcasts.
func (r *Registry) Register(p Peer) {
	r.mu.Lock()
	r.sessions[p.ID()] = p
	r.mu.Unlock()
}

// Unregister removes the session with the given id. Removing an absent id
// is a no-op: disconnects are detected from more than one code path.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Snapshot returns a point-in-time copy of the live set, safe to iterate
// while registrations proceed concurrently. Iteration order is unspecified.
func (r *Registry) Snapshot() []Peer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Peer, 0, len(r.sessions))
	for _, p := range r.sessions {
		out = append(out, p)
	}
	return out
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
