// Package aws connects the relay to AWS. SQSSubscriber is a pull source feeding the relay
// from SQS queues, SNSPublisher and SQSPublisher send relay messages to a topic or a queue.
package aws

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

//go:generate go tool moq -pkg aws_test -stub -out aws_mock_test.go . SNSClient SQSClient

// SNSClient is the subset of the SNS API used by SNSPublisher.
type SNSClient interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SQSClient is the subset of the SQS API used by SQSSubscriber and SQSPublisher.
type SQSClient interface {
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// resolveQueueURL returns the url of the queue given its name, ARN or url.
func resolveQueueURL(ctx context.Context, cli SQSClient, queue string) (string, error) {
	if strings.Contains(queue, "://") {
		return queue, nil
	}

	// the queue name is the last section of an ARN
	name := queue[strings.LastIndex(queue, ":")+1:]

	out, err := cli.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{QueueName: aws.String(name)})
	if err != nil {
		return "", fmt.Errorf("getting queue url for %s: %w", queue, err)
	}

	return aws.ToString(out.QueueUrl), nil
}
