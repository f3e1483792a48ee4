package runtime

import (
	"cmp"
	"slices"
	"sync"
)

// Registry tracks the live subscribers of the hub.
// Fan-out only takes the read lock, registration changes take the write lock.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Subscriber // map subscriber id -> Subscriber
	seq      uint64
	closed   bool // set by Drain, refuses later registrations
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*Subscriber),
	}
}

// Subscribe creates a subscriber with the next registration sequence and stores it.
// It returns false once the registry has been drained.
func (r *Registry) Subscribe(capacity int) (*Subscriber, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, false
	}
	r.seq++
	sub := NewSubscriber(r.seq, capacity)
	r.sessions[sub.ID()] = sub
	return sub, true
}

// Unsubscribe removes the subscriber and returns it, or nil when it was not registered.
func (r *Registry) Unsubscribe(subscriberID string) *Subscriber {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub, ok := r.sessions[subscriberID]
	if !ok {
		return nil
	}
	delete(r.sessions, subscriberID)
	return sub
}

// ForEach calls fn for every registered subscriber while holding the read lock.
// fn must not call back into the registry.
func (r *Registry) ForEach(fn func(sub *Subscriber)) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, sub := range r.sessions {
		fn(sub)
	}
}

// Snapshot returns the registered subscribers ordered by registration.
func (r *Registry) Snapshot() []*Subscriber {
	r.mu.RLock()
	subs := make([]*Subscriber, 0, len(r.sessions))
	for _, sub := range r.sessions {
		subs = append(subs, sub)
	}
	r.mu.RUnlock()

	slices.SortFunc(subs, func(a, b *Subscriber) int {
		return cmp.Compare(a.Seq(), b.Seq())
	})
	return subs
}

// Drain unregisters everyone and returns what was registered.
// The registry accepts no subscriber afterwards.
func (r *Registry) Drain() []*Subscriber {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true
	subs := make([]*Subscriber, 0, len(r.sessions))
	for id, sub := range r.sessions {
		subs = append(subs, sub)
		delete(r.sessions, id)
	}
	return subs
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
