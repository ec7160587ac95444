// Package broker holds what the broker adapters share: the attribute carrying
// message ids and the Publisher used to feed topics.
package broker

import (
	"context"

	"github.com/x4b1/relay"
)

// MessageIDKey is the attribute carrying the message id when the broker does not keep it.
const MessageIDKey = "message_id"

//go:generate go tool moq -stub -pkg broker_test -out x_broker_mock_test.go . Publisher

// Publisher sends relay messages to a broker.
type Publisher interface {
	Publish(ctx context.Context, msg relay.Message) error
}
