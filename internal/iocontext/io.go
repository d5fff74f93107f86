// Package iocontext carries a command's output and input streams on the
// context, so helpers deep in the render path can print without widening
// every signature. Tests swap the streams for buffers; --quiet swaps the
// error stream for io.Discard.
package iocontext

import (
	"context"
	"io"
	"os"
)

// Streams bundles where a command reads from and writes to.
type Streams struct {
	Out io.Writer
	Err io.Writer
	In  io.Reader
}

// System returns streams bound to the process stdio.
func System() *Streams {
	return &Streams{Out: os.Stdout, Err: os.Stderr, In: os.Stdin}
}

type streamsKey struct{}

// WithStreams attaches streams to the context.
func WithStreams(ctx context.Context, s *Streams) context.Context {
	return context.WithValue(ctx, streamsKey{}, s)
}

// FromContext returns the context's streams, or the process stdio when
// none were attached.
func FromContext(ctx context.Context) *Streams {
	if s, ok := ctx.Value(streamsKey{}).(*Streams); ok && s != nil {
		return s
	}
	return System()
}
