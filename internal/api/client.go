package api

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/sensortower/st-cli/internal/debug"
	"github.com/sensortower/st-cli/internal/validation"
)

// DefaultBaseURL is the production API host.
const DefaultBaseURL = "https://api.sensortower.com"

// DefaultTimeout bounds a single request. The timeout on the underlying
// http.Client is the only cancellation mechanism besides ctx; the client
// itself never retries.
const DefaultTimeout = 30 * time.Second

// Client is the Sensor Tower API client. It performs one synchronous
// request per call and inspects HTTP statuses explicitly: a 4xx/5xx is a
// decoded APIError, never a transport failure.
type Client struct {
	BaseURL   string
	AuthToken string
	HTTP      *http.Client
	UserAgent string

	skipURLValidation bool
	validateOnce      sync.Once
	validateErr       error
}

var validateBaseURL = validation.ValidateBaseURL

// New creates an API client for the given base URL and auth token. The
// token may be empty; requests then fail with AuthMissingError before
// anything is sent.
func New(baseURL, token string) *Client {
	baseTransport, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		baseTransport = &http.Transport{}
	}
	transport := baseTransport.Clone()
	if transport.TLSClientConfig == nil {
		transport.TLSClientConfig = &tls.Config{}
	} else {
		transport.TLSClientConfig = transport.TLSClientConfig.Clone()
	}
	transport.TLSClientConfig.MinVersion = tls.VersionTLS12

	return &Client{
		BaseURL:   baseURL,
		AuthToken: token,
		HTTP: &http.Client{
			Timeout:   DefaultTimeout,
			Transport: transport,
		},
	}
}

// newTestClient creates a client with URL validation disabled so tests can
// point it at an httptest.Server.
func newTestClient(baseURL, token string) *Client {
	c := New(baseURL, token)
	c.skipURLValidation = true
	return c
}

func (c *Client) ensureBaseURLValidated() error {
	if c.skipURLValidation {
		return nil
	}
	c.validateOnce.Do(func() {
		if err := validateBaseURL(c.BaseURL); err != nil {
			c.validateErr = fmt.Errorf("URL validation failed: %w", err)
		}
	})
	return c.validateErr
}

// v1Path returns the full URL for an OS-scoped v1 endpoint.
// Example: v1Path("ios", "games_breakdown") ->
// "https://api.sensortower.com/v1/ios/games_breakdown".
func (c *Client) v1Path(os OS, endpoint string) string {
	return fmt.Sprintf("%s/v1/%s/%s", c.BaseURL, os, endpoint)
}

// get performs a GET request and returns the status code and full raw body
// regardless of status class. The only error surface is connection-level:
// a TransportError for DNS/TLS/timeout failures, or AuthMissingError before
// anything is sent. Status handling belongs to the decoder.
func (c *Client) get(ctx context.Context, rawURL string, params *Params) (int, []byte, error) {
	if c.AuthToken == "" {
		return 0, nil, &AuthMissingError{}
	}
	if err := c.ensureBaseURLValidated(); err != nil {
		return 0, nil, err
	}

	query := url.Values{}
	if params != nil {
		var err error
		query, err = url.ParseQuery(params.Encode())
		if err != nil {
			return 0, nil, fmt.Errorf("failed to build query: %w", err)
		}
	}
	// The API authenticates via query parameter. Append it after logging
	// material is derived so the token never reaches the logs.
	loggedURL := rawURL + "?" + query.Encode()
	query.Set("auth_token", c.AuthToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL+"?"+query.Encode(), nil)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		if debug.IsEnabled(ctx) {
			slog.Debug("request failed", "url", loggedURL, "error", err)
		}
		return 0, nil, &TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &TransportError{Err: fmt.Errorf("failed to read response: %w", err)}
	}
	if debug.IsEnabled(ctx) {
		slog.Debug("request complete",
			"url", loggedURL, "status", resp.StatusCode,
			"bytes", len(body), "duration", time.Since(start))
	}
	return resp.StatusCode, body, nil
}
