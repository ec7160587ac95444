// Package commands holds the subcommands of the relay binary.
package commands

import (
	"github.com/x4b1/relay/internal/config"
)

// Flags contains the global flags and the configuration loaded before any command runs.
type Flags struct {
	LogLevel string

	Config config.Config
}
