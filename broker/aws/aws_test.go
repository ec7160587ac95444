package aws_test

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/x4b1/relay"
)

const (
	metaKey       = "ordering_key"
	orderingValue = "order-1"
	defaultOrdKey = "default-order"
)

var (
	errAws = errors.New("aws error")

	msg = relay.Message{
		ID:         "6e2a1d3c-0f5b-4e4f-9c1d-1d6d2a4f5b11",
		Payload:    json.RawMessage(`{"name":"order.created"}`),
		ReceivedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Metadata: relay.Metadata{
			"aggregate_id": "0b3d9a5c-3a8f-4b7e-8f61-7a7d0c7e7e21",
			metaKey:        orderingValue,
		},
	}
)
