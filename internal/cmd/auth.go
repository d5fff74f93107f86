package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sensortower/st-cli/internal/config"
	"github.com/sensortower/st-cli/internal/iocontext"
)

// newAuthCmd returns the auth command with subcommands
func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the API auth token",
		Long:  "Store and manage the Sensor Tower API token securely in your OS keychain.",
	}

	cmd.AddCommand(newAuthLoginCmd())
	cmd.AddCommand(newAuthStatusCmd())
	cmd.AddCommand(newAuthLogoutCmd())

	return cmd
}

func newAuthLoginCmd() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Save the API token to the keychain",
		Long: strings.TrimSpace(`
Save the Sensor Tower API token securely to your OS keychain.

Generate a token from your account settings on sensortower.com, then run:

  st auth login --api-token YOUR_TOKEN

Without --api-token the token is read from stdin, which keeps it out of
your shell history.
`),
		RunE: func(cmd *cobra.Command, _ []string) error {
			streams := iocontext.FromContext(cmd.Context())

			token = strings.TrimSpace(token)
			if token == "" {
				_, _ = fmt.Fprint(streams.Err, "API token: ")
				reader := bufio.NewReader(streams.In)
				line, err := reader.ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("failed to read token: %w", err)
				}
				token = strings.TrimSpace(line)
			}
			if token == "" {
				return fmt.Errorf("no token provided")
			}

			if err := config.SaveToken(token); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(streams.Out, "Token saved.")
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "api-token", "", "API token to store (read from stdin if omitted)")
	return cmd
}

func newAuthStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show authentication status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			streams := iocontext.FromContext(cmd.Context())

			_, _ = fmt.Fprintf(streams.Out, "Base URL: %s\n", flags.BaseURL)

			resolved := config.ResolveToken(flags.Token)
			if resolved == "" {
				_, _ = fmt.Fprintln(streams.Out, "Token: not configured")
				return nil
			}
			_, _ = fmt.Fprintf(streams.Out, "Token: configured (%s)\n", maskToken(resolved))

			if _, err := config.LoadToken(); errors.Is(err, config.ErrNotConfigured) {
				_, _ = fmt.Fprintln(streams.Out, "Source: flag or environment (not stored in keychain)")
			} else if err == nil {
				_, _ = fmt.Fprintln(streams.Out, "Source: keychain (may be overridden by flag or environment)")
			}
			return nil
		},
	}
}

func newAuthLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored API token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.DeleteToken(); err != nil {
				return err
			}
			streams := iocontext.FromContext(cmd.Context())
			_, _ = fmt.Fprintln(streams.Out, "Token removed.")
			return nil
		},
	}
}

func maskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
