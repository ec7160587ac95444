package relay

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyMessagePayload is the error returned when the message payload is empty.
var ErrEmptyMessagePayload = errors.New("empty message payload")

// pushIDPrefix prefixes the identifiers of messages delivered through the push path.
const pushIDPrefix = "push-"

// NewMessage returns a new Message given the broker id, the raw payload and the moment it was published.
// The payload must be well formed JSON, otherwise it returns a *DecodeError.
// If at is zero the current time is used.
func NewMessage(id string, payload []byte, at time.Time) (Message, error) {
	if len(payload) == 0 {
		return Message{}, &DecodeError{MsgID: id, Err: ErrEmptyMessagePayload}
	}
	if !json.Valid(payload) {
		return Message{}, &DecodeError{MsgID: id, Err: errors.New("payload is not valid json")}
	}
	if at.IsZero() {
		at = time.Now()
	}

	return Message{
		ID:         id,
		Payload:    json.RawMessage(payload),
		ReceivedAt: at,
	}, nil
}

// NewPushID returns a process unique identifier for a message received through the push path.
// The millisecond timestamp keeps ids readable, the random suffix keeps them unique
// when two pushes land in the same millisecond.
func NewPushID(t time.Time) string {
	return fmt.Sprintf("%s%d-%s", pushIDPrefix, t.UnixMilli(), uuid.NewString()[:8])
}

// Message represents a message received from the broker and retained by the relay.
type Message struct {
	// Unique identifier for the message.
	ID string `json:"id"`
	// Payload is the decoded message body.
	Payload json.RawMessage `json:"payload"`
	// ReceivedAt is the broker publish time when available, otherwise the ingestion time.
	ReceivedAt time.Time `json:"receivedAt"`
	// Metadata contains the broker attributes of the message.
	Metadata Metadata `json:"metadata,omitempty"`
}

// WithMetadata returns a copy of the message with the given metadata.
func (m Message) WithMetadata(md Metadata) Message {
	m.Metadata = md.Clone()

	return m
}
