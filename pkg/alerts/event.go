package alerts

import (
	"time"

	"github.com/soundforge-hq/soundforge-console/internal/domain"
)

// Event represents one observed service status transition.
type Event struct {
	Service    string               `json:"service"`
	From       domain.ServiceStatus `json:"from,omitempty"`
	To         domain.ServiceStatus `json:"to"`
	QuickStats *domain.QuickStats   `json:"quick_stats,omitempty"`
	ObservedAt time.Time            `json:"observed_at"`
}

// NewEvent constructs an Event for the given service transition.
func NewEvent(service string, from, to domain.ServiceStatus) Event {
	return Event{
		Service:    service,
		From:       from,
		To:         to,
		ObservedAt: time.Now().UTC(),
	}
}
