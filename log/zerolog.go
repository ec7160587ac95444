package log

import (
	"context"

	"github.com/rs/zerolog"
)

// NewZerolog returns an error handler writing to the given zerolog logger.
func NewZerolog(l zerolog.Logger) *Zerolog {
	return &Zerolog{l}
}

// Zerolog reports errors as structured log entries.
type Zerolog struct {
	log zerolog.Logger
}

// Error logs the given error with error level.
func (z *Zerolog) Error(_ context.Context, err error) {
	z.log.Error().Err(err).Msg("relay error")
}
