package ports

import "context"

// HealthChecker probes one external dependency for the deep health check.
type HealthChecker interface {
	// Ping verifies connectivity; nil means healthy.
	Ping(ctx context.Context) error
	// Name identifies the dependency ("postgresql", "redis").
	Name() string
}
