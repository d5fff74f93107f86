// Package debug wires the --debug flag and the ST_DEBUG environment
// variable into a context flag and the process-wide slog default.
package debug

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

const envDebug = "ST_DEBUG"

type flagKey struct{}

// FromEnv reports whether ST_DEBUG requests debug output. Accepts the
// usual boolean spellings (1, true, TRUE, ...); anything else is off.
func FromEnv() bool {
	raw := strings.TrimSpace(os.Getenv(envDebug))
	if raw == "" {
		return false
	}
	enabled, err := strconv.ParseBool(raw)
	return err == nil && enabled
}

// WithDebug marks the context as debug-enabled or not.
func WithDebug(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, flagKey{}, enabled)
}

// IsEnabled reports whether the context carries an enabled debug flag.
func IsEnabled(ctx context.Context) bool {
	enabled, _ := ctx.Value(flagKey{}).(bool)
	return enabled
}

// SetupLogger points slog's default at stderr. Info stays visible in
// every run so pipeline notices (device consolidation, response-shape
// warnings) reach the user; debug mode adds request-level detail.
func SetupLogger(debugEnabled bool) {
	level := slog.LevelInfo
	if debugEnabled {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
