package event

import "sync"

// Counter keeps a running total per event type.
type Counter struct {
	mu     sync.RWMutex
	counts map[Type]uint64
}

func NewCounter() *Counter {
	return &Counter{counts: make(map[Type]uint64)}
}

func (c *Counter) Increment(t Type) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[t]++
}

func (c *Counter) Get(t Type) uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.counts[t]
}
