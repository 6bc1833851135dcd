package llm

import (
	"fmt"
	"time"
)

// Code classifies a gateway failure so callers can branch without inspecting
// raw HTTP statuses.
type Code string

const (
	// CodeInvalidRequest means the caller violated the message contract;
	// no network call was made.
	CodeInvalidRequest Code = "invalid_request"
	// CodeTransport covers timeouts and connection failures (no status).
	CodeTransport Code = "transport"
	// CodeRateLimited is a 429 after retries were exhausted.
	CodeRateLimited Code = "rate_limited"
	// CodeAuth is a 401/403, surfaced immediately without retrying.
	CodeAuth Code = "auth"
	// CodeBadRequest is any other terminal 4xx.
	CodeBadRequest Code = "bad_request"
	// CodeServer is a 5xx after retries were exhausted.
	CodeServer Code = "server"
	// CodeShape means the provider replied 2xx but no known response shape
	// yielded a completion text.
	CodeShape Code = "shape"
)

// Error carries the classification, the HTTP status when one was observed,
// and the correlation id of the last attempt.
type Error struct {
	Code          Code
	Status        int
	CorrelationID string
	Msg           string
	Err           error

	// retryAfter is the server-provided delay from a Retry-After header,
	// consumed by the retry loop.
	retryAfter time.Duration
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("llm: %s (status=%d, cid=%s): %v", e.Code, e.Status, e.CorrelationID, e.Err)
	}
	return fmt.Sprintf("llm: %s (status=%d, cid=%s): %s", e.Code, e.Status, e.CorrelationID, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// classify maps an HTTP status to its terminal error code.
func classify(status int) Code {
	switch {
	case status == 429:
		return CodeRateLimited
	case status == 401 || status == 403:
		return CodeAuth
	case status >= 500:
		return CodeServer
	case status >= 400:
		return CodeBadRequest
	default:
		return CodeTransport
	}
}

// retryable reports whether an attempt outcome is worth another try.
// No status (transport), 5xx and 429 are retryable; other 4xx are terminal.
func retryable(status int) bool {
	return status == 0 || status == 429 || status >= 500
}
