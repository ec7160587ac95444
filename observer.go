package relay

import (
	"sync"

	"github.com/google/uuid"
)

const defaultObserverBuffer = 16

// Observer is a connected sink receiving every broadcast of the relay.
type Observer interface {
	// ID returns the unique identifier of the observer.
	ID() string
	// Deliver pushes the encoded event to the observer. It must not block,
	// an observer that can not take the event right away returns an error.
	Deliver(data []byte) error
	// Close releases the observer, it must be idempotent.
	Close()
}

var _ Observer = (*Stream)(nil)

// NewStream returns a Stream able to hold buffer pending events.
func NewStream(buffer int) *Stream {
	if buffer <= 0 {
		buffer = defaultObserverBuffer
	}

	return &Stream{
		id:     uuid.NewString(),
		events: make(chan []byte, buffer),
		done:   make(chan struct{}),
	}
}

// Stream is a channel backed Observer. Transports drain Events until Done is closed.
type Stream struct {
	id     string
	events chan []byte
	done   chan struct{}

	mu     sync.RWMutex
	closed bool
}

// ID returns the unique identifier of the stream.
func (s *Stream) ID() string {
	return s.id
}

// Deliver queues the event. A closed stream returns ErrObserverClosed and
// a stream with a full buffer returns ErrObserverStalled.
func (s *Stream) Deliver(data []byte) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return ErrObserverClosed
	}

	select {
	case s.events <- data:
		return nil
	default:
		return ErrObserverStalled
	}
}

// Events returns the channel of encoded events.
func (s *Stream) Events() <-chan []byte {
	return s.events
}

// Done is closed when the stream is closed.
func (s *Stream) Done() <-chan struct{} {
	return s.done
}

// Close marks the stream as closed. Pending events are left in the buffer.
func (s *Stream) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	close(s.done)
}
