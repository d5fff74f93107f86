package cmd

import (
	"errors"
	"testing"

	"github.com/spf13/pflag"

	"github.com/sensortower/st-cli/internal/api"
)

func TestExitCodeMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"nil", nil, exitOK},
		{"help", pflag.ErrHelp, exitOK},
		{"invalid argument", &api.InvalidArgumentError{Field: "os", Value: "windows", Allowed: api.AllowedOS}, exitUsage},
		{"invalid combination", &api.InvalidCombinationError{Field: "custom_fields_filter_id", Requires: "custom_tags_mode"}, exitUsage},
		{"auth missing", &api.AuthMissingError{}, exitAuth},
		{"unauthorized", &api.APIError{StatusCode: 401, Message: "invalid token"}, exitAuth},
		{"forbidden", &api.APIError{StatusCode: 403, Message: "forbidden"}, exitForbidden},
		{"not found", &api.APIError{StatusCode: 404, Message: "not found"}, exitNotFound},
		{"rate limited", &api.APIError{StatusCode: 429, Message: "slow down"}, exitRateLimited},
		{"unprocessable", &api.APIError{StatusCode: 422, Message: "bad params"}, exitUsage},
		{"server", &api.APIError{StatusCode: 503, Message: "oops"}, exitServer},
		{"transport", &api.TransportError{Err: errors.New("dial tcp: connection refused")}, exitNetwork},
		{"usage text", errors.New("unknown command \"nope\""), exitUsage},
		{"usage shorthand", errors.New("unknown shorthand flag: 'a' in -a"), exitUsage},
		{"generic", errors.New("boom"), exitGeneric},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExitCode(tc.err); got != tc.code {
				t.Fatalf("ExitCode(%v) = %d, want %d", tc.err, got, tc.code)
			}
		})
	}
}

func TestExitCode_WrappedErrors(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), &api.AuthMissingError{})
	if got := ExitCode(wrapped); got != exitAuth {
		t.Fatalf("ExitCode(wrapped auth) = %d, want %d", got, exitAuth)
	}
}
