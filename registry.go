package relay

import (
	"fmt"
	"sync"
)

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{observers: make(map[string]Observer)}
}

// Registry is the concurrency safe set of connected observers.
type Registry struct {
	mu        sync.RWMutex
	observers map[string]Observer
}

// Register adds the observer to the set. Ids are unique: an observer whose id
// is already registered is rejected with ErrDuplicateObserver.
func (r *Registry) Register(o Observer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.observers[o.ID()]; ok {
		return fmt.Errorf("registering %s: %w", o.ID(), ErrDuplicateObserver)
	}
	r.observers[o.ID()] = o

	return nil
}

// Deregister removes the observer and closes it. Removing an absent observer is a no-op.
// It reports whether the observer was a member.
func (r *Registry) Deregister(o Observer) bool {
	r.mu.Lock()
	_, ok := r.observers[o.ID()]
	delete(r.observers, o.ID())
	r.mu.Unlock()

	if ok {
		o.Close()
	}

	return ok
}

// Len returns the number of registered observers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.observers)
}

// Observers returns a copy of the current members, safe to iterate while the set changes.
func (r *Registry) Observers() []Observer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Observer, 0, len(r.observers))
	for _, o := range r.observers {
		out = append(out, o)
	}

	return out
}

// Clear removes and closes every observer.
func (r *Registry) Clear() {
	r.mu.Lock()
	observers := r.observers
	r.observers = make(map[string]Observer)
	r.mu.Unlock()

	for _, o := range observers {
		o.Close()
	}
}
