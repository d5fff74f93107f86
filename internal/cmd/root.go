package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sensortower/st-cli/internal/api"
	"github.com/sensortower/st-cli/internal/debug"
	"github.com/sensortower/st-cli/internal/iocontext"
	"github.com/sensortower/st-cli/internal/outfmt"
)

// rootFlags holds global CLI flags
type rootFlags struct {
	Output  string
	Debug   bool
	Quiet   bool
	JQ      string
	Token   string
	BaseURL string
	Timeout time.Duration
}

// flags holds the global command flags. This is package-level mutable state
// that is reset at the start of every Execute() call; tests depend on that
// reset for clean state.
var flags = rootFlags{
	Output:  defaultOutput(),
	BaseURL: api.DefaultBaseURL,
	Timeout: api.DefaultTimeout,
}

func defaultOutput() string {
	value := strings.TrimSpace(os.Getenv("ST_OUTPUT"))
	if value != "" {
		return normalizeOutputFormat(value)
	}
	return "text"
}

func normalizeOutputFormat(value string) string {
	value = strings.TrimSpace(value)
	if value == "ndjson" {
		return "jsonl"
	}
	return value
}

// Execute runs the root command
func Execute(ctx context.Context, args []string) error {
	flags = rootFlags{
		Output:  defaultOutput(),
		BaseURL: api.DefaultBaseURL,
		Timeout: api.DefaultTimeout,
	}
	if envURL := strings.TrimSpace(os.Getenv("ST_BASE_URL")); envURL != "" {
		flags.BaseURL = strings.TrimSuffix(envURL, "/")
	}

	root := &cobra.Command{
		Use:           "st",
		Short:         "CLI for Sensor Tower mobile app analytics",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			flags.Output = normalizeOutputFormat(flags.Output)
			if flags.JQ != "" && flags.Output == "text" {
				flags.Output = "json"
			}

			mode, err := outfmt.Parse(flags.Output)
			if err != nil {
				return err
			}
			ctx = outfmt.WithMode(ctx, mode)
			ctx = outfmt.WithQuery(ctx, flags.JQ)

			streams := iocontext.System()
			if flags.Quiet {
				streams.Err = io.Discard
			}
			ctx = iocontext.WithStreams(ctx, streams)
			cmd.SetOut(streams.Out)
			cmd.SetErr(streams.Err)

			debug.SetupLogger(flags.Debug)
			ctx = debug.WithDebug(ctx, flags.Debug)

			if flags.Timeout <= 0 {
				return fmt.Errorf("--timeout must be positive")
			}

			cmd.SetContext(ctx)
			return nil
		},
	}

	root.SetContext(ctx)
	root.SetArgs(args)

	root.PersistentFlags().StringVarP(&flags.Output, "output", "o", flags.Output, "Output format: text|json|jsonl|ndjson (env ST_OUTPUT)")
	root.PersistentFlags().BoolVar(&flags.Debug, "debug", debug.FromEnv(), "Enable debug logging (env ST_DEBUG)")
	root.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Suppress non-error output to stderr")
	root.PersistentFlags().StringVar(&flags.JQ, "jq", "", "JQ expression to filter JSON output (implies --output json)")
	root.PersistentFlags().StringVar(&flags.Token, "token", "", "API auth token (overrides ST_AUTH_TOKEN and the keyring)")
	root.PersistentFlags().StringVar(&flags.BaseURL, "base-url", flags.BaseURL, "API base URL (env ST_BASE_URL)")
	root.PersistentFlags().DurationVar(&flags.Timeout, "timeout", flags.Timeout, "HTTP request timeout (e.g., 30s, 2m)")

	root.AddCommand(newAuthCmd())
	root.AddCommand(newSalesCmd())
	root.AddCommand(newGamesCmd())
	root.AddCommand(newTopCmd())
	root.AddCommand(newAppsCmd())
	root.AddCommand(newVersionCmd())

	return root.ExecuteContext(ctx)
}
