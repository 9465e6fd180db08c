package cvrdex

import "github.com/kailas-cloud/cvrdex/internal/domain"

// Sentinel errors returned by Client operations, for errors.Is checks.
var (
	// ErrNotFound signals that no company matches the lookup.
	ErrNotFound = domain.ErrNotFound
	// ErrUnavailable signals a transport failure reaching the registry.
	ErrUnavailable = domain.ErrUnavailable
	// ErrBackend signals a registry-side failure or malformed response.
	ErrBackend = domain.ErrBackend
	// ErrMapping signals a registry record missing a required field.
	ErrMapping = domain.ErrMapping
)
