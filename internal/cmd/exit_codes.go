package cmd

import (
	"errors"
	"strings"

	"github.com/spf13/pflag"

	"github.com/sensortower/st-cli/internal/api"
)

const (
	exitOK          = 0
	exitGeneric     = 1
	exitUsage       = 2
	exitAuth        = 3
	exitNotFound    = 4
	exitForbidden   = 5
	exitRateLimited = 6
	exitServer      = 7
	exitNetwork     = 8
)

// ExitCode maps an error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return exitOK
	}
	if errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}

	switch {
	case api.IsInvalidArgument(err), api.IsInvalidCombination(err):
		return exitUsage
	case api.IsAuthMissing(err):
		return exitAuth
	case api.IsTransport(err):
		return exitNetwork
	}

	if apiErr, ok := api.AsAPIError(err); ok {
		switch apiErr.Code() {
		case api.ErrUnauthorized:
			return exitAuth
		case api.ErrForbidden:
			return exitForbidden
		case api.ErrNotFound:
			return exitNotFound
		case api.ErrRateLimited:
			return exitRateLimited
		case api.ErrServerError:
			return exitServer
		case api.ErrBadRequest, api.ErrUnprocessable:
			return exitUsage
		default:
			return exitGeneric
		}
	}

	if isUsageError(err) {
		return exitUsage
	}
	return exitGeneric
}

func isUsageError(err error) bool {
	msg := strings.ToLower(err.Error())
	indicators := []string{
		"unknown command",
		"unknown flag",
		"unknown shorthand flag",
		"flag needs an argument",
		"required flag",
		"invalid argument",
		"missing required",
	}
	for _, indicator := range indicators {
		if strings.Contains(msg, indicator) {
			return true
		}
	}
	return false
}
