package aws

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/x4b1/relay"
	"github.com/x4b1/relay/broker"
)

var _ broker.Publisher = &SQSPublisher{}

// OpenSQSPublisher creates a new SQSPublisher using the default AWS configuration.
func OpenSQSPublisher(ctx context.Context, queue string, opts ...PublisherOption) (*SQSPublisher, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading aws config from default: %w", err)
	}

	return NewSQSPublisher(sqs.NewFromConfig(cfg), queue, opts...), nil
}

// NewSQSPublisher creates a new SQSPublisher sending to the queue given by name, ARN or url.
func NewSQSPublisher(cli SQSClient, queue string, opts ...PublisherOption) *SQSPublisher {
	p := SQSPublisher{
		cli:        cli,
		queue:      queue,
		publishing: newPublishing(),
	}

	for _, opt := range opts {
		opt.applyPublisher(&p.publishing)
	}

	return &p
}

// SQSPublisher publishes relay messages straight to an SQS queue.
type SQSPublisher struct {
	cli   SQSClient
	queue string

	mu       sync.Mutex
	queueURL string

	publishing
}

// Publish sends the message payload to the queue with the metadata and the id as attributes.
// The queue url is resolved on the first publish.
func (p *SQSPublisher) Publish(ctx context.Context, msg relay.Message) error {
	queueURL, err := p.resolve(ctx)
	if err != nil {
		return err
	}

	_, err = p.cli.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(queueURL),
		MessageBody: aws.String(string(msg.Payload)),
		MessageAttributes: attributes(p.publishing, msg, func(dataType, v *string) types.MessageAttributeValue {
			return types.MessageAttributeValue{DataType: dataType, StringValue: v}
		}),
		MessageDeduplicationId: p.deduplicationID(msg),
		MessageGroupId:         p.groupID(msg),
	})
	if err != nil {
		return fmt.Errorf("publishing message %s to %s: %w", msg.ID, p.queue, err)
	}

	return nil
}

func (p *SQSPublisher) resolve(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.queueURL != "" {
		return p.queueURL, nil
	}

	u, err := resolveQueueURL(ctx, p.cli, p.queue)
	if err != nil {
		return "", err
	}
	p.queueURL = u

	return u, nil
}
