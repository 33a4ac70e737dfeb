package db

import "context"

// Directory defines the provider-directory storage operations the engine's
// services depend on. The postgres.DB implementation satisfies it; tests
// substitute in-memory fakes.
type Directory interface {
	GetProviders(ctx context.Context) ([]Provider, error)
	GetProvider(ctx context.Context, id string) (*Provider, error)
	GetAvailabilityWindows(ctx context.Context, ownerID string) ([]AvailabilityWindow, error)
	InsertAvailabilityWindow(ctx context.Context, window *AvailabilityWindow) error
}
