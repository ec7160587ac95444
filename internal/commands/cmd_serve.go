package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"cloud.google.com/go/pubsub/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"github.com/x4b1/relay"
	"github.com/x4b1/relay/broker/aws"
	pubsubx "github.com/x4b1/relay/broker/pubsub"
	"github.com/x4b1/relay/internal/config"
	relaylog "github.com/x4b1/relay/log"
	"github.com/x4b1/relay/server"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 10 * time.Second
)

type ServeCmd struct {
	flags *Flags
}

// NewServeCmd creates a new serve command
func NewServeCmd(flags *Flags) *ServeCmd {
	return &ServeCmd{flags: flags}
}

// Register adds the serve command to the application
func (cmd *ServeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "serve",
		Usage:     "Relay the subscription messages to the connected clients",
		UsageText: "relay serve",
		Description: `Provisions the topic and subscription when the source is pubsub, then pulls
messages from the source and serves them over HTTP until interrupted.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *ServeCmd) run(ctx context.Context, _ *cli.Command) error {
	cfg := cmd.flags.Config
	if err := cfg.Validate(); err != nil {
		return err
	}

	r := relay.New(append(cfg.RelayOptions(),
		relay.WithErrorHandler(relaylog.NewZerolog(log.With().Str("component", "relay").Logger())),
	)...)
	defer r.Close()

	source, closeSource, err := openSource(ctx, cfg, r)
	if err != nil {
		return err
	}
	defer closeSource()

	srv := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: server.New(r,
			server.WithLogger(log.With().Str("component", "http").Logger()),
			server.WithKeepalive(cfg.HTTP.SSEKeepalive),
			server.WithAllowedOrigins(cfg.HTTP.AllowedOrigins...),
		).Routes(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info().Str("addr", cfg.HTTPAddr).Str("source", cfg.Source).Msg("relay listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving http: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down")

		// streams only end when their observer is closed
		r.Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	group.Go(func() error {
		return r.Start(ctx)
	})

	if source != nil {
		group.Go(func() error {
			return source.Listen(ctx)
		})
	}

	return group.Wait()
}

// openSource returns the configured message source, nil when the relay is only fed through push.
func openSource(ctx context.Context, cfg config.Config, r *relay.Relay) (relay.Source, func(), error) {
	errHandler := relaylog.NewZerolog(log.With().Str("component", cfg.Source).Logger())

	switch cfg.Source {
	case config.SourcePubSub:
		client, err := pubsub.NewClient(ctx, cfg.PubSub.ProjectID)
		if err != nil {
			return nil, nil, fmt.Errorf("creating pubsub client: %w", err)
		}

		if err := relay.Bootstrap(ctx, pubsubx.NewAdmin(client), cfg.PubSub.Topic, cfg.PubSub.Subscription); err != nil {
			_ = client.Close()
			return nil, nil, err
		}

		sub := pubsubx.OpenSubscriber(client, cfg.PubSub.Subscription, r,
			pubsubx.WithErrorHandler(errHandler),
			pubsubx.WithNackOnDecodeError(cfg.Relay.NackMalformed),
		)

		return sub, func() { _ = client.Close() }, nil
	case config.SourceSQS:
		sub, err := aws.OpenSQSSubscriber(ctx, r,
			aws.WithErrorHandler(errHandler),
			aws.WithNackOnDecodeError(cfg.Relay.NackMalformed),
		)
		if err != nil {
			return nil, nil, err
		}
		sub.Register(cfg.SQS.Queues...)

		return sub, func() {}, nil
	}

	return nil, func() {}, nil
}
