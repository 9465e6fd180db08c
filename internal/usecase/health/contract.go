package health

import "context"

// RegistryPinger checks registry backend availability.
type RegistryPinger interface {
	Ping(ctx context.Context) error
}

// StorePinger checks rate limit store availability.
type StorePinger interface {
	Ping(ctx context.Context) error
}
