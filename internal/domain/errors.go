package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals that no company matches the lookup.
	ErrNotFound = errors.New("not found")
	// ErrUnavailable signals a transport failure reaching the registry.
	ErrUnavailable = errors.New("registry unavailable")
	// ErrBackend signals a registry-side failure or malformed response.
	ErrBackend = errors.New("registry error")
	// ErrMapping signals a raw record missing a required field.
	ErrMapping = errors.New("record mapping failed")

	// ErrUnauthorized signals a missing or invalid API key.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrRateLimited signals a rate limit hit.
	ErrRateLimited = errors.New("rate limited")
)

// MappingError wraps ErrMapping with the field that could not be mapped.
type MappingError struct {
	Field string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", ErrMapping.Error(), e.Field)
}

func (e *MappingError) Unwrap() error { return ErrMapping }

// NewMappingError creates a mapping error for a required field.
func NewMappingError(field string) error {
	return &MappingError{Field: field}
}
