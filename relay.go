// Package relay receives messages from a publish/subscribe broker, retains them in arrival
// order and streams every retained and future message to the connected observers.
package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/x4b1/relay/log"
)

//go:generate go tool moq -stub -pkg relay_test -out mock_test.go . Provisioner ErrorHandler Observer

// ErrorHandler is the interface that wraps the error reporting of the relay.
type ErrorHandler interface {
	Error(ctx context.Context, err error)
}

// Ingester is the interface that wraps the ingestion of broker messages.
type Ingester interface {
	Ingest(ctx context.Context, msg Message, opts ...IngestOption) error
}

// Source is the interface implemented by broker subscribers feeding an Ingester.
type Source interface {
	// Listen receives messages until the context is done.
	Listen(ctx context.Context) error
}

// BroadcastMode defines what is sent to the observers on every ingested message.
type BroadcastMode int

const (
	// BroadcastSnapshot sends the full retained snapshot on every message.
	BroadcastSnapshot BroadcastMode = iota
	// BroadcastDelta sends only the new message. Observers still receive the snapshot on connect.
	BroadcastDelta
)

// ParseBroadcastMode returns the mode for the given name: "snapshot" or "delta".
func ParseBroadcastMode(s string) (BroadcastMode, error) {
	switch s {
	case "", "snapshot":
		return BroadcastSnapshot, nil
	case "delta":
		return BroadcastDelta, nil
	}

	return BroadcastSnapshot, fmt.Errorf("unknown broadcast mode %q", s)
}

// Option defines the optional parameters for Relay.
type Option func(*Relay)

// WithErrorHandler replaces the default error logger.
func WithErrorHandler(h ErrorHandler) Option {
	return func(r *Relay) {
		r.errHandler = h
	}
}

// WithMaxMessages caps the number of retained messages.
func WithMaxMessages(n int) Option {
	return func(r *Relay) {
		r.maxMessages = n
	}
}

// WithMaxAge enables the cleanup process evicting messages older than age.
func WithMaxAge(age time.Duration) Option {
	return func(r *Relay) {
		r.maxAge = age
	}
}

// WithCleanInterval replaces the default cleanup interval.
func WithCleanInterval(d time.Duration) Option {
	return func(r *Relay) {
		r.cleanInterval = d
	}
}

// WithObserverBuffer sets how many events a stream holds before it is considered stalled.
func WithObserverBuffer(n int) Option {
	return func(r *Relay) {
		r.observerBuffer = n
	}
}

// WithBroadcastMode replaces the default snapshot broadcast.
func WithBroadcastMode(m BroadcastMode) Option {
	return func(r *Relay) {
		r.mode = m
	}
}

// WithClock replaces the clock used to stamp push messages and evict old ones.
func WithClock(now func() time.Time) Option {
	return func(r *Relay) {
		r.now = now
	}
}

// IngestOption defines the optional parameters of a single ingestion.
type IngestOption func(*ingestion)

type ingestion struct {
	afterAppend []func()
}

// AfterAppend runs fn once the message is stored and before it is broadcast.
// fn must not block, it runs inside the ingestion sequence.
func AfterAppend(fn func()) IngestOption {
	return func(i *ingestion) {
		i.afterAppend = append(i.afterAppend, fn)
	}
}

// New returns a Relay instance with defaults.
//   - Unbounded message retention.
//   - Full snapshot broadcast.
//   - Observer buffer: 16 events.
//   - Golang standard error logger.
func New(opts ...Option) *Relay {
	r := Relay{
		cleanInterval:  time.Minute,
		observerBuffer: defaultObserverBuffer,
		mode:           BroadcastSnapshot,
		now:            time.Now,

		errHandler: log.NewDefault(),
		registry:   NewRegistry(),
	}
	for _, opt := range opts {
		opt(&r)
	}
	r.store = NewStore(r.maxMessages)

	return &r
}

// Relay stores the ingested messages and fans them out to the connected observers.
//
// Ingestion and observer registration share one sequence lock: a message is appended
// and broadcast as a single step, and a new observer receives the snapshot and joins
// the registry as a single step, so no observer misses or duplicates a message.
type Relay struct {
	// retention params
	maxMessages   int
	maxAge        time.Duration
	cleanInterval time.Duration

	observerBuffer int
	mode           BroadcastMode
	now            func() time.Time

	errHandler ErrorHandler
	store      *Store
	registry   *Registry

	seq    sync.Mutex
	closed bool
}

// Messages returns the snapshot of the retained messages.
func (r *Relay) Messages() []Message {
	return r.store.Snapshot()
}

// Observers returns the number of connected observers.
func (r *Relay) Observers() int {
	return r.registry.Len()
}

// Ingest appends the message to the store and broadcasts it.
// Delivery failures are reported to the error handler and never returned.
func (r *Relay) Ingest(ctx context.Context, msg Message, opts ...IngestOption) error {
	var in ingestion
	for _, opt := range opts {
		opt(&in)
	}

	r.seq.Lock()
	defer r.seq.Unlock()

	if r.closed {
		return ErrClosed
	}

	if msg.ReceivedAt.IsZero() {
		msg.ReceivedAt = r.now()
	}
	r.store.Append(msg)

	for _, fn := range in.afterAppend {
		fn()
	}

	r.broadcast(ctx, msg)

	return nil
}

// IngestPush decodes a body delivered through the push path and ingests it with a
// locally generated id. It succeeds once the message is stored.
func (r *Relay) IngestPush(ctx context.Context, body []byte) (Message, error) {
	now := r.now()
	msg, err := NewMessage(NewPushID(now), body, now)
	if err != nil {
		return Message{}, err
	}

	if err := r.Ingest(ctx, msg); err != nil {
		return Message{}, err
	}

	return msg, nil
}

// Open delivers the current snapshot to the observer and registers it.
// The observer is deregistered once ctx is done. An observer whose id is already
// registered is rejected with ErrDuplicateObserver and left untouched.
func (r *Relay) Open(ctx context.Context, o Observer) error {
	r.seq.Lock()
	defer r.seq.Unlock()

	if r.closed {
		return ErrClosed
	}

	data, err := json.Marshal(r.store.Snapshot())
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := r.registry.Register(o); err != nil {
		return err
	}
	if err := o.Deliver(data); err != nil {
		r.registry.Deregister(o)
		return &DeliveryError{ObserverID: o.ID(), Err: err}
	}

	context.AfterFunc(ctx, func() { r.registry.Deregister(o) })

	return nil
}

// OpenStream opens a new Stream observer bound to ctx.
func (r *Relay) OpenStream(ctx context.Context) (*Stream, error) {
	s := NewStream(r.observerBuffer)
	if err := r.Open(ctx, s); err != nil {
		return nil, err
	}

	return s, nil
}

// Deregister removes the observer, it is a no-op when it is not registered.
func (r *Relay) Deregister(o Observer) {
	r.registry.Deregister(o)
}

// Close stops the ingestion and closes every observer.
func (r *Relay) Close() {
	r.seq.Lock()
	defer r.seq.Unlock()

	r.closed = true
	r.registry.Clear()
}

// broadcast delivers the event to each observer, removing the ones that fail.
// Must be called holding the sequence lock.
func (r *Relay) broadcast(ctx context.Context, msg Message) {
	observers := r.registry.Observers()
	if len(observers) == 0 {
		return
	}

	var payload []Message
	switch r.mode {
	case BroadcastDelta:
		payload = []Message{msg}
	default:
		payload = r.store.Snapshot()
	}

	data, err := json.Marshal(payload)
	if err != nil {
		r.errHandler.Error(ctx, fmt.Errorf("encoding broadcast of %s: %w", msg.ID, err))
		return
	}

	for _, o := range observers {
		if err := o.Deliver(data); err != nil {
			r.registry.Deregister(o)
			r.errHandler.Error(ctx, &DeliveryError{ObserverID: o.ID(), Err: err})
		}
	}
}
