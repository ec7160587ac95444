package commands

import (
	"context"
	"fmt"

	"cloud.google.com/go/pubsub/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"github.com/x4b1/relay"
	pubsubx "github.com/x4b1/relay/broker/pubsub"
)

type ProvisionCmd struct {
	flags *Flags
}

// NewProvisionCmd creates a new provision command
func NewProvisionCmd(flags *Flags) *ProvisionCmd {
	return &ProvisionCmd{flags: flags}
}

// Register adds the provision command to the application
func (cmd *ProvisionCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "provision",
		Usage:       "Create the pubsub topic and subscription",
		UsageText:   "relay provision",
		Description: "Creates the configured topic and subscription when missing. Running it again is a no-op.",
		Action:      cmd.run,
	})

	return app
}

func (cmd *ProvisionCmd) run(ctx context.Context, _ *cli.Command) error {
	cfg := cmd.flags.Config.PubSub
	if err := cfg.Validate(); err != nil {
		return err
	}

	client, err := pubsub.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return fmt.Errorf("creating pubsub client: %w", err)
	}
	defer client.Close()

	if err := relay.Bootstrap(ctx, pubsubx.NewAdmin(client), cfg.Topic, cfg.Subscription); err != nil {
		return err
	}

	log.Info().
		Str("topic", cfg.Topic).
		Str("subscription", cfg.Subscription).
		Msg("topic and subscription ready")

	return nil
}
