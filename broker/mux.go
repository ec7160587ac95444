package broker

import (
	"context"
	"errors"
	"fmt"

	"github.com/x4b1/relay"
)

var (
	// ErrEmptyTargetMetadataKey is returned when a Mux is created without routing key.
	ErrEmptyTargetMetadataKey = errors.New("empty target metadata key")
	// ErrMessageDoesNotMatchWithBrokers is returned when no publisher is registered for the message route.
	ErrMessageDoesNotMatchWithBrokers = errors.New("message does not match with any broker")
)

var _ Publisher = &Mux{}

// NewMux returns a Mux routing on the targetKey metadata value.
func NewMux(targetKey string) (*Mux, error) {
	if targetKey == "" {
		return nil, ErrEmptyTargetMetadataKey
	}

	return &Mux{
		mdKey:  targetKey,
		routes: map[string]Publisher{},
	}, nil
}

// Mux is a Publisher sending each message to the publisher registered for the
// value of its routing metadata key.
type Mux struct {
	mdKey  string
	routes map[string]Publisher
}

// AddBroker registers the publisher for the messages whose routing metadata equals value.
// Registering a value twice replaces the previous publisher.
func (m *Mux) AddBroker(value string, p Publisher) {
	m.routes[value] = p
}

// Publish sends the message to the publisher matching its route.
func (m *Mux) Publish(ctx context.Context, msg relay.Message) error {
	value, ok := msg.Metadata[m.mdKey]
	if !ok {
		return fmt.Errorf("%w: message %s has no %s metadata", ErrMessageDoesNotMatchWithBrokers, msg.ID, m.mdKey)
	}

	p, ok := m.routes[value]
	if !ok {
		return fmt.Errorf("%w: %s=%s", ErrMessageDoesNotMatchWithBrokers, m.mdKey, value)
	}

	return p.Publish(ctx, msg)
}
