package dashboard

import (
	"context"

	"github.com/soundforge-hq/soundforge-console/internal/domain"
)

// QuickStatsProvider supplies the condensed dashboard counters.
// Implementations are interchangeable: swapping the mock for a real
// HTTP-backed provider requires no caller changes.
type QuickStatsProvider interface {
	QuickStats(ctx context.Context) (domain.QuickStats, error)
}

// SystemStatusProvider supplies the per-service health snapshot.
type SystemStatusProvider interface {
	SystemStatus(ctx context.Context) (domain.SystemStatus, error)
}
