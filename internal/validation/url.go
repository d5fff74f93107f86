// Package validation checks base URLs before the client sends credentials
// to them. The auth token travels as a query parameter, so a mistyped or
// downgraded base URL would leak it.
package validation

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateBaseURL validates an API base URL. It requires an https scheme
// (http is permitted only for 127.0.0.1/localhost, for test servers), a
// hostname, and no embedded userinfo, query, or fragment.
func ValidateBaseURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return fmt.Errorf("URL cannot be empty")
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL format: %w", err)
	}

	host := parsed.Hostname()
	if host == "" {
		return fmt.Errorf("URL has no hostname")
	}

	switch parsed.Scheme {
	case "https":
	case "http":
		if host != "localhost" && host != "127.0.0.1" && host != "::1" {
			return fmt.Errorf("http is only allowed for localhost, got host %q", host)
		}
	default:
		return fmt.Errorf("invalid URL scheme: only https is allowed, got %q", parsed.Scheme)
	}

	if parsed.User != nil {
		return fmt.Errorf("URL must not contain credentials")
	}
	if parsed.RawQuery != "" || parsed.Fragment != "" {
		return fmt.Errorf("URL must not contain a query or fragment")
	}
	return nil
}
