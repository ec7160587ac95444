package pubsub

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/pubsub/v2"
	"github.com/x4b1/relay"
	"github.com/x4b1/relay/log"
)

const (
	sourceName        = "pubsub"
	defaultRetryDelay = time.Second
)

var errReceiveStopped = errors.New("receive stopped")

var _ relay.Source = &Subscriber{}

// Receiver is the pubsub subscription receive method used by the Subscriber.
type Receiver interface {
	Receive(ctx context.Context, f func(context.Context, *pubsub.Message)) error
}

// SubscriberOption is a function to set options to Subscriber.
type SubscriberOption func(*Subscriber)

// WithErrorHandler replaces the default error logger.
func WithErrorHandler(h relay.ErrorHandler) SubscriberOption {
	return func(s *Subscriber) {
		s.errHandler = h
	}
}

// WithNackOnDecodeError leaves malformed messages for broker redelivery
// (or its dead letter policy) instead of acknowledging them.
func WithNackOnDecodeError(nack bool) SubscriberOption {
	return func(s *Subscriber) {
		s.nackOnDecodeError = nack
	}
}

// WithRetryDelay replaces the wait before receiving again after a transport failure.
func WithRetryDelay(d time.Duration) SubscriberOption {
	return func(s *Subscriber) {
		s.retryDelay = d
	}
}

// OpenSubscriber returns a Subscriber receiving from the given subscription.
func OpenSubscriber(
	client *pubsub.Client,
	subscription string,
	in relay.Ingester,
	opts ...SubscriberOption,
) *Subscriber {
	return NewSubscriber(client.Subscriber(subscriptionName(client.Project(), subscription)), in, opts...)
}

// NewSubscriber returns a Subscriber feeding the messages received to the ingester.
func NewSubscriber(r Receiver, in relay.Ingester, opts ...SubscriberOption) *Subscriber {
	s := Subscriber{
		receiver:   r,
		ingester:   in,
		errHandler: log.NewDefault(),
		retryDelay: defaultRetryDelay,
	}

	for _, opt := range opts {
		opt(&s)
	}

	return &s
}

// Subscriber is the pull path of the relay: every message received from the
// subscription is decoded, ingested, acknowledged and broadcast.
type Subscriber struct {
	receiver Receiver
	ingester relay.Ingester

	errHandler        relay.ErrorHandler
	nackOnDecodeError bool
	retryDelay        time.Duration
}

// Listen receives messages until the context is done. Receive failures are reported
// as *relay.TransportError and receiving starts again after the retry delay.
func (s *Subscriber) Listen(ctx context.Context) error {
	for {
		err := s.receiver.Receive(ctx, s.handle)
		if ctx.Err() != nil {
			return nil
		}
		if err == nil {
			err = errReceiveStopped
		}
		s.errHandler.Error(ctx, &relay.TransportError{Source: sourceName, Err: err})

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(s.retryDelay):
		}
	}
}

func (s *Subscriber) handle(ctx context.Context, m *pubsub.Message) {
	msg, err := relay.NewMessage(m.ID, m.Data, m.PublishTime)
	if err != nil {
		s.errHandler.Error(ctx, err)
		if s.nackOnDecodeError {
			m.Nack()
			return
		}
		m.Ack()
		return
	}

	msg = msg.WithMetadata(m.Attributes)
	if err := s.ingester.Ingest(ctx, msg, relay.AfterAppend(m.Ack)); err != nil {
		m.Nack()
		s.errHandler.Error(ctx, err)
	}
}
