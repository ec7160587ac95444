// Package testhelpers starts the containers used by integration tests.
package testhelpers

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/localstack"
)

const localStackImage = "localstack/localstack:3.0.2"

// LocalStackContainer is a running LocalStack instance serving SNS and SQS
// and the aws config pointing to it.
type LocalStackContainer struct {
	Config aws.Config

	*localstack.LocalStackContainer
}

// CreateLocalStackContainer starts LocalStack with the SNS and SQS services enabled.
func CreateLocalStackContainer(ctx context.Context) (*LocalStackContainer, error) {
	lsContainer, err := localstack.Run(ctx, localStackImage,
		testcontainers.WithEnv(map[string]string{"SERVICES": "sns,sqs"}),
	)
	if err != nil {
		return nil, fmt.Errorf("starting localstack: %w", err)
	}

	endpoint, err := lsContainer.PortEndpoint(ctx, "4566/tcp", "http")
	if err != nil {
		return nil, fmt.Errorf("getting localstack endpoint: %w", err)
	}

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion("eu-west-1"),
		config.WithBaseEndpoint(endpoint),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("test", "test", "")),
	)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	return &LocalStackContainer{
		awsCfg,
		lsContainer,
	}, nil
}
