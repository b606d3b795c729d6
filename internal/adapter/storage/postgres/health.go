package postgres

import "context"

// HealthCheck reports PostgreSQL connectivity for the /health endpoint.
type HealthCheck struct {
	pool Pool
}

// NewHealthCheck creates a PostgreSQL health checker.
func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

// Ping issues a trivial query against the pool.
func (h *HealthCheck) Ping(ctx context.Context) error {
	_, err := h.pool.Exec(ctx, "SELECT 1")
	return err
}

// Name identifies the dependency in health reports.
func (h *HealthCheck) Name() string {
	return "postgresql"
}
