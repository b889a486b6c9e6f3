package notification

import "sync"

// Registry maps a subscriber id (student or university) to its live channel.
// At most one channel per subscriber: a later Register silently replaces an
// earlier mapping. State is in-memory only; this is a live-connection index,
// not a durable subscription store.
type Registry struct {
	mu       sync.RWMutex
	channels map[string]Channel
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{channels: make(map[string]Channel)}
}

// Register maps subscriberID to ch, replacing any existing mapping
// (last-writer-wins, no error on overwrite).
func (r *Registry) Register(subscriberID string, ch Channel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.channels[subscriberID] = ch
}

// Unregister removes the mapping if present; no-op otherwise. Must be invoked
// on channel close and on channel error so the dispatcher stops routing to a
// dead channel.
func (r *Registry) Unregister(subscriberID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.channels, subscriberID)
}

// Release removes the mapping only if it still points at ch. A stale close
// handler firing after the subscriber reconnected must not evict the newer
// channel.
func (r *Registry) Release(subscriberID string, ch Channel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if current, ok := r.channels[subscriberID]; ok && current == ch {
		delete(r.channels, subscriberID)
	}
}

// Lookup returns the live channel for subscriberID, if any.
func (r *Registry) Lookup(subscriberID string) (Channel, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ch, ok := r.channels[subscriberID]
	return ch, ok
}

// ActiveCount reports the number of live connections.
func (r *Registry) ActiveCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.channels)
}
