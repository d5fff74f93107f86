package api

// ErrorCode classifies API failures by HTTP status class for exit-code
// mapping and machine-readable output.
type ErrorCode string

const (
	// ErrBadRequest indicates a malformed request (HTTP 400).
	ErrBadRequest ErrorCode = "bad_request"
	// ErrUnauthorized indicates authentication failed (HTTP 401).
	ErrUnauthorized ErrorCode = "unauthorized"
	// ErrForbidden indicates the token lacks access to the endpoint (HTTP 403).
	ErrForbidden ErrorCode = "forbidden"
	// ErrNotFound indicates the endpoint or entity does not exist (HTTP 404).
	ErrNotFound ErrorCode = "not_found"
	// ErrUnprocessable indicates a parameter or combination problem (HTTP 422).
	ErrUnprocessable ErrorCode = "unprocessable"
	// ErrRateLimited indicates too many requests (HTTP 429).
	ErrRateLimited ErrorCode = "rate_limited"
	// ErrServerError indicates an internal server error (HTTP 5xx).
	ErrServerError ErrorCode = "server_error"
	// ErrUnknown indicates an unclassified status.
	ErrUnknown ErrorCode = "unknown"
)

// Suggestion returns a human-readable hint for resolving this error class.
func (c ErrorCode) Suggestion() string {
	switch c {
	case ErrUnauthorized:
		return "Run 'st auth login' or check ST_AUTH_TOKEN"
	case ErrForbidden:
		return "Your plan may not include this endpoint"
	case ErrNotFound:
		return "Verify the endpoint path and identifiers"
	case ErrUnprocessable:
		return "Check the parameter values and which parameters are combined"
	case ErrRateLimited:
		return "Wait a moment and retry"
	case ErrServerError:
		return "The server encountered an error; try again later"
	default:
		return ""
	}
}

// ErrorCodeFromStatus maps an HTTP status code to an ErrorCode.
func ErrorCodeFromStatus(statusCode int) ErrorCode {
	switch statusCode {
	case 400:
		return ErrBadRequest
	case 401:
		return ErrUnauthorized
	case 403:
		return ErrForbidden
	case 404:
		return ErrNotFound
	case 422:
		return ErrUnprocessable
	case 429:
		return ErrRateLimited
	default:
		if statusCode >= 500 && statusCode < 600 {
			return ErrServerError
		}
		return ErrUnknown
	}
}
