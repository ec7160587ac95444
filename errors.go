package relay

import (
	"errors"
	"fmt"
)

var (
	// ErrClosed is returned by operations on a relay that has been closed.
	ErrClosed = errors.New("relay closed")
	// ErrObserverClosed is returned when delivering to an observer that is already gone.
	ErrObserverClosed = errors.New("observer closed")
	// ErrObserverStalled is returned when an observer has not drained its pending events.
	ErrObserverStalled = errors.New("observer stalled")
	// ErrDuplicateObserver is returned when registering an observer whose id is already taken.
	ErrDuplicateObserver = errors.New("duplicate observer")
)

// DecodeError is returned when an inbound message payload is not well formed.
type DecodeError struct {
	MsgID string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.MsgID == "" {
		return fmt.Sprintf("decoding message: %s", e.Err)
	}

	return fmt.Sprintf("decoding message %s: %s", e.MsgID, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// DeliveryError reports a failed write to one observer. The observer is removed
// from the registry when it happens.
type DeliveryError struct {
	ObserverID string
	Err        error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivering to observer %s: %s", e.ObserverID, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// ProvisioningError is returned when the topic or the subscription can not be ensured.
// It is fatal: ingestion can not start.
type ProvisioningError struct {
	Resource string
	Name     string
	Err      error
}

func (e *ProvisioningError) Error() string {
	return fmt.Sprintf("provisioning %s %s: %s", e.Resource, e.Name, e.Err)
}

func (e *ProvisioningError) Unwrap() error {
	return e.Err
}

// TransportError wraps broker channel failures. They are logged and the source keeps receiving.
type TransportError struct {
	Source string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s transport: %s", e.Source, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
