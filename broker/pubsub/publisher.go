// Package pubsub connects the relay to Google Pub/Sub: provisioning, the pull
// subscriber, the push envelope and a publisher.
package pubsub

import (
	"context"
	"fmt"
	"maps"

	"cloud.google.com/go/pubsub/v2"
	"github.com/x4b1/relay"
	"github.com/x4b1/relay/broker"
)

var _ broker.Publisher = &Publisher{}

// Option is a function to set options to Publisher.
type Option func(*Publisher)

// WithMetaOrderingKey enables ordered delivery, taking the ordering key from the given metadata key.
func WithMetaOrderingKey(key string) Option {
	return func(p *Publisher) {
		p.publisher.EnableMessageOrdering = true
		p.metaOrdKey = key
	}
}

// WithDefaultOrderingKey enables ordered delivery, using key for the messages without ordering metadata.
func WithDefaultOrderingKey(key string) Option {
	return func(p *Publisher) {
		p.publisher.EnableMessageOrdering = true
		p.defaultOrdKey = key
	}
}

// WithMessageIDKey replaces the attribute carrying the message id.
func WithMessageIDKey(key string) Option {
	return func(p *Publisher) {
		p.msgIDKey = key
	}
}

// OpenPublisher returns a Publisher for the topic, given by id or full name.
func OpenPublisher(client *pubsub.Client, topic string, opts ...Option) *Publisher {
	return NewPublisher(client.Publisher(topicName(client.Project(), topic)), opts...)
}

// NewPublisher returns a Publisher sending through p.
func NewPublisher(p *pubsub.Publisher, opts ...Option) *Publisher {
	pub := Publisher{
		publisher: p,
		msgIDKey:  broker.MessageIDKey,
	}

	for _, opt := range opts {
		opt(&pub)
	}

	return &pub
}

// Publisher sends relay messages to a Pub/Sub topic. The message id travels as an
// attribute, Pub/Sub assigns its own id on publish.
type Publisher struct {
	publisher *pubsub.Publisher

	metaOrdKey    string
	defaultOrdKey string
	msgIDKey      string
}

// Publish sends the message and blocks until the server acknowledges it.
func (p *Publisher) Publish(ctx context.Context, msg relay.Message) error {
	if _, err := p.publisher.Publish(ctx, p.toPubsub(msg)).Get(ctx); err != nil {
		return fmt.Errorf("publishing message %s: %w", msg.ID, err)
	}

	return nil
}

// Stop sends the pending messages and releases the publisher.
func (p *Publisher) Stop() {
	p.publisher.Stop()
}

func (p *Publisher) toPubsub(msg relay.Message) *pubsub.Message {
	attrs := make(map[string]string, len(msg.Metadata)+1)
	maps.Copy(attrs, msg.Metadata)
	attrs[p.msgIDKey] = msg.ID

	ordKey := p.defaultOrdKey
	if key, ok := msg.Metadata[p.metaOrdKey]; ok && p.metaOrdKey != "" {
		ordKey = key
	}

	return &pubsub.Message{
		Data:        msg.Payload,
		Attributes:  attrs,
		OrderingKey: ordKey,
	}
}
