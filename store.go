package relay

import (
	"sync"
	"time"
)

// NewStore returns an empty Store. A positive limit caps the number of retained messages,
// dropping the oldest ones first; zero keeps every message.
func NewStore(limit int) *Store {
	return &Store{limit: max(limit, 0)}
}

// Store is an append only, arrival ordered, in-memory sequence of messages.
type Store struct {
	mu    sync.RWMutex
	msgs  []Message
	limit int
}

// Append adds the message at the end of the sequence.
func (s *Store) Append(msg Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.msgs = append(s.msgs, msg)
	if s.limit > 0 && len(s.msgs) > s.limit {
		// copy to a fresh slice so the dropped head can be collected.
		s.msgs = append(make([]Message, 0, s.limit), s.msgs[len(s.msgs)-s.limit:]...)
	}
}

// Snapshot returns an ordered copy of all the stored messages.
func (s *Store) Snapshot() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Message, len(s.msgs))
	copy(out, s.msgs)

	return out
}

// Len returns the number of stored messages.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.msgs)
}

// EvictBefore removes the messages received before t and returns how many were removed.
// Messages are kept in arrival order, so eviction stops at the first newer message.
func (s *Store) EvictBefore(t time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for n < len(s.msgs) && s.msgs[n].ReceivedAt.Before(t) {
		n++
	}
	if n > 0 {
		s.msgs = append([]Message(nil), s.msgs[n:]...)
	}

	return n
}
