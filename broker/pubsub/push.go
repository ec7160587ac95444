package pubsub

import (
	"encoding/json"
	"time"

	"github.com/x4b1/relay"
)

// pushEnvelope is the body pubsub sends to push subscription endpoints.
type pushEnvelope struct {
	Message *struct {
		Attributes  map[string]string `json:"attributes"`
		Data        []byte            `json:"data"`
		MessageID   string            `json:"messageId"`
		PublishTime time.Time         `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// ParsePush decodes a push request body. It reports false when the body is not a pubsub
// push envelope, so the caller can ingest it as a plain payload. The envelope data must be
// well formed JSON, otherwise a *relay.DecodeError is returned.
func ParsePush(body []byte) (relay.Message, bool, error) {
	var env pushEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return relay.Message{}, false, nil
	}
	if env.Message == nil || env.Message.MessageID == "" || env.Subscription == "" {
		return relay.Message{}, false, nil
	}

	msg, err := relay.NewMessage(env.Message.MessageID, env.Message.Data, env.Message.PublishTime)
	if err != nil {
		return relay.Message{}, true, err
	}

	return msg.WithMetadata(env.Message.Attributes), true, nil
}
