package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/x4b1/relay/internal/commands"
	"github.com/x4b1/relay/internal/config"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	if err := setupLogger("info"); err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "relay",
		Usage:     "Relay pub/sub messages to live clients",
		UsageText: "relay [global options] command [command options]",
		Description: `Relay pulls messages from a Pub/Sub subscription or SQS queues, keeps a bounded
history in memory and streams it to every connected client over SSE and websockets.

Configuration is read from the environment and an optional .env file.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
		},
		Before: func(ctx context.Context, _ *cli.Command) (context.Context, error) {
			if err := setupLogger(flags.LogLevel); err != nil {
				return ctx, err
			}

			cfg, err := config.Load()
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			return ctx, nil
		},
	}

	app = commands.NewServeCmd(flags).Register(app)
	app = commands.NewProvisionCmd(flags).Register(app)
	app = commands.NewPublishCmd(flags).Register(app)

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		log.Error().Err(err).Msg("relay failed")
		exitCode = 1
	}

	stop()
	os.Exit(exitCode)
}

func setupLogger(level string) error {
	parsedLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(parsedLevel)

	return nil
}
