package dashboard

import (
	"context"

	"github.com/soundforge-hq/soundforge-console/internal/domain"
)

// Stats fetches the aggregate platform stats.
func (c *Client) Stats(ctx context.Context) (*domain.Stats, error) {
	var stats domain.Stats
	if err := c.getJSON(ctx, c.endpoint("stats"), nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
