// Package upstream holds the error taxonomy shared by the HTTP clients that
// talk to the league data feed and the content platform.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// ErrUnavailable is returned when a collaborator was never configured.
var ErrUnavailable = errors.New("upstream unavailable")

// StatusError is a non-2xx response from an upstream service.
type StatusError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s: unexpected status %d", e.Service, e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// RateLimitError captures rate limit responses from upstream services.
type RateLimitError struct {
	Service    string
	StatusCode int
	RetryAfter time.Duration
	Remaining  string
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "upstream rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var stErr *StatusError
	if errors.As(err, &stErr) {
		return stErr, true
	}
	return nil, false
}

// FromResponse builds the error for a non-2xx response. body is a short,
// already-read excerpt of the response payload.
func FromResponse(service string, resp *http.Response, body string) error {
	body = strings.TrimSpace(body)
	if resp.StatusCode == http.StatusTooManyRequests {
		return &RateLimitError{
			Service:    service,
			StatusCode: resp.StatusCode,
			RetryAfter: ParseRetryAfter(resp.Header.Get("Retry-After")),
			Remaining:  resp.Header.Get("X-Ratelimit-Remaining"),
			Message:    service + ": rate limited",
		}
	}
	return &StatusError{Service: service, StatusCode: resp.StatusCode, Body: body}
}

// ParseRetryAfter reads a Retry-After header expressed in seconds.
func ParseRetryAfter(raw string) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	secs, err := strconv.ParseFloat(raw, 64)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs * float64(time.Second))
}

// Retryable reports whether a read may be attempted again: rate limits,
// 5xx responses and transport failures qualify, other statuses do not.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrUnavailable) || errors.Is(err, context.Canceled) {
		return false
	}
	if _, ok := AsRateLimitError(err); ok {
		return true
	}
	if st, ok := AsStatusError(err); ok {
		return st.StatusCode >= http.StatusInternalServerError
	}
	var malformed *MalformedError
	return !errors.As(err, &malformed)
}

// MalformedError marks a payload that decoded but failed validation.
type MalformedError struct {
	Service string
	Reason  string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%s: malformed payload: %s", e.Service, e.Reason)
}
