package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/pubsub/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"github.com/x4b1/relay"
	"github.com/x4b1/relay/broker"
	"github.com/x4b1/relay/broker/aws"
	pubsubx "github.com/x4b1/relay/broker/pubsub"
)

const (
	brokerPubSub = "pubsub"
	brokerSNS    = "sns"

	// targetKey is the metadata key routing the message to a broker.
	targetKey = "target"
)

var errMissingTopicARN = errors.New("--topic-arn is required to publish to sns")

type PublishCmd struct {
	flags *Flags

	data     string
	broker   string
	topic    string
	topicARN string
	metadata []string
}

// NewPublishCmd creates a new publish command
func NewPublishCmd(flags *Flags) *PublishCmd {
	return &PublishCmd{flags: flags}
}

// Register adds the publish command to the application
func (cmd *PublishCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "publish",
		Usage:     "Publish one message to the topic the relay pulls from",
		UsageText: `relay publish --data '{"hello":"world"}' [--broker pubsub|sns] [--metadata key=value]`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "data",
				Aliases:     []string{"d"},
				Usage:       "JSON payload of the message",
				Required:    true,
				Destination: &cmd.data,
			},
			&cli.StringFlag{
				Name:        "broker",
				Usage:       "broker to publish to (pubsub, sns)",
				Value:       brokerPubSub,
				Destination: &cmd.broker,
			},
			&cli.StringFlag{
				Name:        "topic",
				Usage:       "pubsub topic, defaults to the configured one",
				Destination: &cmd.topic,
			},
			&cli.StringFlag{
				Name:        "topic-arn",
				Usage:       "sns topic arn",
				Sources:     cli.EnvVars("SNS_TOPIC_ARN"),
				Destination: &cmd.topicARN,
			},
			&cli.StringSliceFlag{
				Name:        "metadata",
				Aliases:     []string{"m"},
				Usage:       "message attribute as key=value, can be repeated",
				Destination: &cmd.metadata,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *PublishCmd) run(ctx context.Context, _ *cli.Command) error {
	msg, err := cmd.message()
	if err != nil {
		return err
	}

	mux, closeMux, err := cmd.mux(ctx)
	if err != nil {
		return err
	}
	defer closeMux()

	if err := mux.Publish(ctx, msg); err != nil {
		return fmt.Errorf("publishing to %s: %w", cmd.broker, err)
	}

	log.Info().Str("id", msg.ID).Str("broker", cmd.broker).Msg("message published")

	return nil
}

// message builds the message from the flags, routing it to the selected broker.
func (cmd *PublishCmd) message() (relay.Message, error) {
	msg, err := relay.NewMessage(uuid.NewString(), []byte(cmd.data), time.Now())
	if err != nil {
		return relay.Message{}, err
	}

	md := relay.Metadata{}
	for _, kv := range cmd.metadata {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return relay.Message{}, fmt.Errorf("invalid metadata %q, expected key=value", kv)
		}
		md.Set(k, v)
	}
	md.Set(targetKey, cmd.broker)

	return msg.WithMetadata(md), nil
}

func (cmd *PublishCmd) mux(ctx context.Context) (*broker.Mux, func(), error) {
	mux, err := broker.NewMux(targetKey)
	if err != nil {
		return nil, nil, err
	}

	switch cmd.broker {
	case brokerSNS:
		if cmd.topicARN == "" {
			return nil, nil, errMissingTopicARN
		}

		p, err := aws.OpenSNSPublisher(ctx, cmd.topicARN)
		if err != nil {
			return nil, nil, err
		}
		mux.AddBroker(brokerSNS, p)

		return mux, func() {}, nil
	case brokerPubSub:
		cfg := cmd.flags.Config.PubSub
		if err := cfg.Validate(); err != nil {
			return nil, nil, err
		}

		topic := cmd.topic
		if topic == "" {
			topic = cfg.Topic
		}

		client, err := pubsub.NewClient(ctx, cfg.ProjectID)
		if err != nil {
			return nil, nil, fmt.Errorf("creating pubsub client: %w", err)
		}

		p := pubsubx.OpenPublisher(client, topic)
		mux.AddBroker(brokerPubSub, p)

		return mux, func() {
			p.Stop()
			_ = client.Close()
		}, nil
	}

	return nil, nil, fmt.Errorf("unknown broker %q", cmd.broker)
}
