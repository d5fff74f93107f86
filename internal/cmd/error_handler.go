package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sensortower/st-cli/internal/api"
)

// HandleError turns a pipeline error into a user-facing message with
// suggestions. Returns "" for nil errors.
func HandleError(err error) string {
	if err == nil {
		return ""
	}

	var msg strings.Builder

	var apiErr *api.APIError
	var parseErr *api.JSONParseError
	var transportErr *api.TransportError

	switch {
	case api.IsAuthMissing(err):
		msg.WriteString("Not authenticated.\n\n")
		msg.WriteString("Suggestions:\n")
		msg.WriteString("  - Run: st auth login\n")
		msg.WriteString("  - Or set ST_AUTH_TOKEN / pass --token\n")

	case errors.As(err, &apiErr):
		fmt.Fprintf(&msg, "API error (HTTP %d): %s\n", apiErr.StatusCode, apiErr.Message)
		if suggestion := apiErr.Code().Suggestion(); suggestion != "" {
			fmt.Fprintf(&msg, "\nSuggestion: %s\n", suggestion)
		}

	case errors.As(err, &parseErr):
		msg.WriteString("The API returned a response that is not valid JSON.\n\n")
		fmt.Fprintf(&msg, "Status: %d\nBody starts: %s\n", parseErr.StatusCode, parseErr.Excerpt)

	case errors.As(err, &transportErr):
		fmt.Fprintf(&msg, "Connection failed: %v\n\n", transportErr.Err)
		msg.WriteString("Suggestions:\n")
		msg.WriteString("  - Check your network connection\n")
		msg.WriteString("  - Verify the base URL: st auth status\n")

	default:
		fmt.Fprintf(&msg, "Error: %s\n", err.Error())
	}

	return msg.String()
}
