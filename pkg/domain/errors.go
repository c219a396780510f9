package domain

import (
	"errors"
	"fmt"
)

// Authentication errors
var (
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrInvalidSession         = errors.New("invalid or expired session")
)

// Upstream errors
var (
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
)

// UpstreamError is a non-success response from the remote identity/data
// service. Body is the raw upstream response body, preserved verbatim so
// callers can relay it.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Body)
}
