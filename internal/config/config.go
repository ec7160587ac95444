// Package config loads the relay service configuration from the environment
// and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/x4b1/relay"
)

// Message sources the service can pull from.
const (
	SourcePubSub = "pubsub"
	SourceSQS    = "sqs"
	SourceNone   = "none"
)

var (
	// ErrUnknownSource is returned when RELAY_SOURCE is not a supported source.
	ErrUnknownSource = errors.New("unknown message source")
	// ErrMissingSetting is returned when a setting required by the selected source is empty.
	ErrMissingSetting = errors.New("missing setting")
)

// Config is the service configuration.
type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":3001"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Source   string `env:"RELAY_SOURCE" envDefault:"pubsub"`

	PubSub PubSub
	SQS    SQS
	Relay  Relay
	HTTP   HTTP
}

// PubSub holds the Google Pub/Sub settings. The emulator is selected by the
// client itself through PUBSUB_EMULATOR_HOST.
type PubSub struct {
	ProjectID    string `env:"PUBSUB_PROJECT_ID"`
	Topic        string `env:"PUBSUB_TOPIC" envDefault:"relay-messages"`
	Subscription string `env:"PUBSUB_SUBSCRIPTION" envDefault:"relay-messages-sub"`
}

// SQS holds the queues, by name or ARN, pulled when the source is sqs.
type SQS struct {
	Queues []string `env:"SQS_QUEUE" envSeparator:","`
}

// Relay holds the retention and fan-out settings.
type Relay struct {
	MaxMessages    int           `env:"RELAY_MAX_MESSAGES" envDefault:"1000"`
	MaxAge         time.Duration `env:"RELAY_MAX_AGE" envDefault:"0s"`
	CleanInterval  time.Duration `env:"RELAY_CLEAN_INTERVAL" envDefault:"1m"`
	ObserverBuffer int           `env:"RELAY_OBSERVER_BUFFER" envDefault:"16"`
	BroadcastMode  string        `env:"RELAY_BROADCAST_MODE" envDefault:"snapshot"`
	NackMalformed  bool          `env:"RELAY_NACK_MALFORMED" envDefault:"false"`
}

// HTTP holds the HTTP shell settings.
type HTTP struct {
	SSEKeepalive   time.Duration `env:"SSE_KEEPALIVE" envDefault:"15s"`
	AllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// Load reads the .env file in the working directory when present and parses the
// environment into a Config.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	return Parse(env.Options{})
}

// Parse parses the configuration with the given options. The source settings are
// checked apart with Validate, only the commands pulling from a source need them.
func Parse(opts env.Options) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}

	if _, err := relay.ParseBroadcastMode(cfg.Relay.BroadcastMode); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the settings required by the selected source.
func (c Config) Validate() error {
	switch c.Source {
	case SourcePubSub:
		return c.PubSub.Validate()
	case SourceSQS:
		if len(c.SQS.Queues) == 0 {
			return fmt.Errorf("%w: SQS_QUEUE", ErrMissingSetting)
		}
	case SourceNone:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSource, c.Source)
	}

	return nil
}

// Validate checks the settings needed to reach Pub/Sub.
func (p PubSub) Validate() error {
	if p.ProjectID == "" {
		return fmt.Errorf("%w: PUBSUB_PROJECT_ID", ErrMissingSetting)
	}

	return nil
}

// RelayOptions returns the relay options for the configured retention and fan-out.
func (c Config) RelayOptions() []relay.Option {
	mode, _ := relay.ParseBroadcastMode(c.Relay.BroadcastMode)

	return []relay.Option{
		relay.WithMaxMessages(c.Relay.MaxMessages),
		relay.WithMaxAge(c.Relay.MaxAge),
		relay.WithCleanInterval(c.Relay.CleanInterval),
		relay.WithObserverBuffer(c.Relay.ObserverBuffer),
		relay.WithBroadcastMode(mode),
	}
}
