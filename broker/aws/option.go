package aws

import (
	"time"

	"github.com/x4b1/relay"
)

// PublisherOption configures SNSPublisher and SQSPublisher.
type PublisherOption interface {
	applyPublisher(*publishing)
}

// SQSSubscriberOption configures SQSSubscriber.
type SQSSubscriberOption interface {
	applySQSSubscriber(*SQSSubscriber)
}

// WithFifo enables the message group and deduplication ids required by fifo topics and queues.
func WithFifo(fifo bool) FifoOption {
	return FifoOption(fifo)
}

// FifoOption is the option returned by WithFifo.
type FifoOption bool

func (f FifoOption) applyPublisher(p *publishing) {
	p.fifo = bool(f)
}

// WithMetaOrderingKey sets the metadata key holding the message group of fifo destinations.
func WithMetaOrderingKey(key string) MetaOrderingKeyOption {
	return MetaOrderingKeyOption(key)
}

// MetaOrderingKeyOption is the option returned by WithMetaOrderingKey.
type MetaOrderingKeyOption string

func (m MetaOrderingKeyOption) applyPublisher(p *publishing) {
	p.metaOrdKey = string(m)
}

// WithDefaultOrderingKey sets the message group used when the metadata does not provide one.
func WithDefaultOrderingKey(key string) DefaultOrderingKeyOption {
	return DefaultOrderingKeyOption(key)
}

// DefaultOrderingKeyOption is the option returned by WithDefaultOrderingKey.
type DefaultOrderingKeyOption string

func (d DefaultOrderingKeyOption) applyPublisher(p *publishing) {
	p.defaultOrdKey = string(d)
}

// WithMessageIDKey replaces the attribute carrying the message id, both when publishing and
// when subscribing.
func WithMessageIDKey(key string) MessageIDKeyOption {
	return MessageIDKeyOption(key)
}

// MessageIDKeyOption is the option returned by WithMessageIDKey.
type MessageIDKeyOption string

func (m MessageIDKeyOption) applyPublisher(p *publishing) {
	p.msgIDKey = string(m)
}

func (m MessageIDKeyOption) applySQSSubscriber(s *SQSSubscriber) {
	s.msgIDKey = string(m)
}

// WithMaxWaitSeconds sets the long polling wait of every receive.
func WithMaxWaitSeconds(waitSec int) MaxWaitSecondsOption {
	return MaxWaitSecondsOption(waitSec)
}

// MaxWaitSecondsOption is the option returned by WithMaxWaitSeconds.
type MaxWaitSecondsOption int

func (m MaxWaitSecondsOption) applySQSSubscriber(s *SQSSubscriber) {
	s.maxWaitSeconds = int(m)
}

// WithMaxMessages sets how many messages are received at once, up to 10.
func WithMaxMessages(msgs int) MaxMessagesOption {
	return MaxMessagesOption(msgs)
}

// MaxMessagesOption is the option returned by WithMaxMessages.
type MaxMessagesOption int

func (m MaxMessagesOption) applySQSSubscriber(s *SQSSubscriber) {
	s.maxMessages = int(m)
}

// WithErrorHandler replaces the default error logger.
func WithErrorHandler(h relay.ErrorHandler) ErrorHandlerOption {
	return ErrorHandlerOption{h}
}

// ErrorHandlerOption is the option returned by WithErrorHandler.
type ErrorHandlerOption struct {
	h relay.ErrorHandler
}

func (e ErrorHandlerOption) applySQSSubscriber(s *SQSSubscriber) {
	s.errHandler = e.h
}

// WithNackOnDecodeError keeps malformed messages in the queue, so they are redelivered
// or moved to the dead letter queue, instead of deleting them.
func WithNackOnDecodeError(nack bool) NackOnDecodeErrorOption {
	return NackOnDecodeErrorOption(nack)
}

// NackOnDecodeErrorOption is the option returned by WithNackOnDecodeError.
type NackOnDecodeErrorOption bool

func (n NackOnDecodeErrorOption) applySQSSubscriber(s *SQSSubscriber) {
	s.nackOnDecodeError = bool(n)
}

// WithRetryDelay sets the wait after a failed receive.
func WithRetryDelay(d time.Duration) RetryDelayOption {
	return RetryDelayOption(d)
}

// RetryDelayOption is the option returned by WithRetryDelay.
type RetryDelayOption time.Duration

func (r RetryDelayOption) applySQSSubscriber(s *SQSSubscriber) {
	s.retryDelay = time.Duration(r)
}
