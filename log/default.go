// Package log provides the relay.ErrorHandler implementations.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
)

// NewDefault returns an error handler printing to stdout.
func NewDefault() *Default {
	return NewDefaultWriter(os.Stdout)
}

// NewDefaultWriter returns an error handler printing to w.
func NewDefaultWriter(w io.Writer) *Default {
	return &Default{w}
}

// Default is the error handler used when none is configured.
type Default struct {
	w io.Writer
}

// Error prints the given error, one per line.
func (d *Default) Error(_ context.Context, err error) {
	_, _ = fmt.Fprintln(d.w, err.Error())
}
