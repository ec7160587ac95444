package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/x4b1/relay"
	"github.com/x4b1/relay/broker"
)

var _ broker.Publisher = &SNSPublisher{}

// OpenSNSPublisher creates a new SNSPublisher using the default AWS configuration.
func OpenSNSPublisher(ctx context.Context, topicARN string, opts ...PublisherOption) (*SNSPublisher, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading aws config from default: %w", err)
	}

	return NewSNSPublisher(sns.NewFromConfig(cfg), topicARN, opts...), nil
}

// NewSNSPublisher creates a new SNSPublisher with the given SNS client and topic ARN.
func NewSNSPublisher(cli SNSClient, topicARN string, opts ...PublisherOption) *SNSPublisher {
	p := SNSPublisher{
		cli:        cli,
		topicARN:   topicARN,
		publishing: newPublishing(),
	}

	for _, opt := range opts {
		opt.applyPublisher(&p.publishing)
	}

	return &p
}

// SNSPublisher publishes relay messages to an SNS topic, the queues subscribed to it
// can then feed other relays through SQSSubscriber.
type SNSPublisher struct {
	cli      SNSClient
	topicARN string

	publishing
}

// Publish sends the message payload to the topic with the metadata and the id as attributes.
func (p SNSPublisher) Publish(ctx context.Context, msg relay.Message) error {
	_, err := p.cli.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(p.topicARN),
		Message:  aws.String(string(msg.Payload)),
		MessageAttributes: attributes(p.publishing, msg, func(dataType, v *string) types.MessageAttributeValue {
			return types.MessageAttributeValue{DataType: dataType, StringValue: v}
		}),
		MessageDeduplicationId: p.deduplicationID(msg),
		MessageGroupId:         p.groupID(msg),
	})
	if err != nil {
		return fmt.Errorf("publishing message %s to %s: %w", msg.ID, p.topicARN, err)
	}

	return nil
}
