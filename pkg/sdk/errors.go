package cvrdex

import (
	"errors"
	"fmt"
)

// Sentinel errors for API failures. Use errors.Is() to check.
var (
	// ErrNotFound signals that no company matches the lookup.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized signals a missing or invalid API key.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrRateLimited signals that the request budget is exhausted.
	ErrRateLimited = errors.New("rate limited")
	// ErrRegistry signals that the deployment could not serve the lookup
	// because the upstream registry failed.
	ErrRegistry = errors.New("registry failure")
)

// APIError is a decoded error response from a cvrdex deployment. It
// unwraps to the matching sentinel, so errors.Is keeps working while the
// full server code and message stay inspectable.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("cvrdex api: %s: %s (http %d)", e.Code, e.Message, e.StatusCode)
}

func (e *APIError) Unwrap() error {
	switch e.Code {
	case "not_found":
		return ErrNotFound
	case "unauthorized":
		return ErrUnauthorized
	case "rate_limited":
		return ErrRateLimited
	case "registry_unavailable", "registry_error", "mapping_failed":
		return ErrRegistry
	}
	return nil
}
