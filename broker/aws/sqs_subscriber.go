package aws

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/x4b1/relay"
	"github.com/x4b1/relay/broker"
	"github.com/x4b1/relay/log"
	"golang.org/x/sync/errgroup"
)

const (
	sqsSourceName          = "sqs"
	defaultMaxWaitSeconds  = 20
	defaultReceiveMessages = 1
	defaultRetryDelay      = time.Second
)

var _ relay.Source = &SQSSubscriber{}

// OpenSQSSubscriber initializes a new SQSSubscriber using the default AWS configuration and provided options.
// It loads the AWS config from the environment and returns a ready-to-use subscriber.
func OpenSQSSubscriber(ctx context.Context, in relay.Ingester, opts ...SQSSubscriberOption) (*SQSSubscriber, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading aws config from default: %w", err)
	}

	return NewSQSSubscriber(sqs.NewFromConfig(cfg), in, opts...), nil
}

// NewSQSSubscriber creates a new SQSSubscriber with the given SQS client, the ingester receiving
// the messages and options.
func NewSQSSubscriber(cli SQSClient, in relay.Ingester, opts ...SQSSubscriberOption) *SQSSubscriber {
	s := SQSSubscriber{
		cli:        cli,
		ingester:   in,
		errHandler: log.NewDefault(),

		maxWaitSeconds: defaultMaxWaitSeconds,
		maxMessages:    defaultReceiveMessages,
		retryDelay:     defaultRetryDelay,
		msgIDKey:       broker.MessageIDKey,
	}

	for _, opt := range opts {
		opt.applySQSSubscriber(&s)
	}

	return &s
}

// SQSSubscriber is a pull source of the relay reading from AWS SQS queues.
// Every received message is decoded and ingested. The deletion from the queue starts
// once the message is stored, before it is broadcast.
type SQSSubscriber struct {
	cli      SQSClient
	ingester relay.Ingester
	deleting sync.WaitGroup

	errHandler relay.ErrorHandler
	queues     []string

	maxWaitSeconds    int
	maxMessages       int
	retryDelay        time.Duration
	nackOnDecodeError bool
	msgIDKey          string
}

// Register adds one or more queues, by name or ARN, to listen to.
func (s *SQSSubscriber) Register(queues ...string) {
	s.queues = append(s.queues, queues...)
}

// Listen starts the message polling and processing loop for all registered queues.
// It blocks until the context is done and the pending deletions finish. Failing to
// resolve a queue url is fatal, receive failures are reported and polling continues.
func (s *SQSSubscriber) Listen(ctx context.Context) error {
	defer s.deleting.Wait()

	group, ctx := errgroup.WithContext(ctx)

	for _, queue := range s.queues {
		queueURL, err := resolveQueueURL(ctx, s.cli, queue)
		if err != nil {
			return err
		}

		group.Go(func() error {
			s.poll(ctx, queue, queueURL)
			return nil
		})
	}

	return group.Wait()
}

func (s *SQSSubscriber) poll(ctx context.Context, queue, queueURL string) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		msgs, err := s.cli.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:              aws.String(queueURL),
			MaxNumberOfMessages:   int32(s.maxMessages),
			WaitTimeSeconds:       int32(s.maxWaitSeconds),
			MessageAttributeNames: []string{"All"},
			MessageSystemAttributeNames: []types.MessageSystemAttributeName{
				types.MessageSystemAttributeNameSentTimestamp,
			},
		})
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			s.errHandler.Error(ctx, &relay.TransportError{
				Source: sqsSourceName,
				Err:    fmt.Errorf("%s: %w", queue, err),
			})

			select {
			case <-ctx.Done():
				return
			case <-time.After(s.retryDelay):
			}
			continue
		}

		for _, msg := range msgs.Messages {
			s.processMessage(ctx, queueURL, msg)
		}
	}
}

// processMessage ingests the message, deleting it from the queue once it is stored.
// A message failing ingestion stays in the queue for redelivery.
func (s *SQSSubscriber) processMessage(ctx context.Context, queueURL string, msg types.Message) {
	id := aws.ToString(msg.MessageId)
	md := make(relay.Metadata, len(msg.MessageAttributes))
	for k, v := range msg.MessageAttributes {
		if k == s.msgIDKey {
			id = aws.ToString(v.StringValue)
			continue
		}
		md[k] = aws.ToString(v.StringValue)
	}

	parsed, err := relay.NewMessage(id, []byte(aws.ToString(msg.Body)), sentTimestamp(msg))
	if err != nil {
		s.errHandler.Error(ctx, err)
		if !s.nackOnDecodeError {
			s.deleteMessage(ctx, queueURL, msg)
		}
		return
	}

	// AfterAppend runs inside the ingestion sequence, the network call must not hold it.
	deleteAsync := relay.AfterAppend(func() {
		s.deleting.Add(1)
		go func() {
			defer s.deleting.Done()
			s.deleteMessage(ctx, queueURL, msg)
		}()
	})

	if err := s.ingester.Ingest(ctx, parsed.WithMetadata(md), deleteAsync); err != nil {
		s.errHandler.Error(ctx, err)
	}
}

func (s *SQSSubscriber) deleteMessage(ctx context.Context, queueURL string, msg types.Message) {
	if _, err := s.cli.DeleteMessage(context.WithoutCancel(ctx), &sqs.DeleteMessageInput{
		ReceiptHandle: msg.ReceiptHandle,
		QueueUrl:      aws.String(queueURL),
	}); err != nil {
		s.errHandler.Error(ctx, fmt.Errorf("deleting message %s: %w", aws.ToString(msg.MessageId), err))
	}
}

// sentTimestamp returns the moment the message was sent to the queue, zero if unknown.
func sentTimestamp(msg types.Message) time.Time {
	ms, err := strconv.ParseInt(msg.Attributes[string(types.MessageSystemAttributeNameSentTimestamp)], 10, 64)
	if err != nil {
		return time.Time{}
	}

	return time.UnixMilli(ms)
}
