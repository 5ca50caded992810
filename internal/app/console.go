package app

import (
	"context"
	"fmt"

	"github.com/soundforge-hq/soundforge-console/internal/config"
	"github.com/soundforge-hq/soundforge-console/internal/domain"
	"github.com/soundforge-hq/soundforge-console/internal/enrich"
	"github.com/soundforge-hq/soundforge-console/internal/logger"
	"github.com/soundforge-hq/soundforge-console/pkg/dashboard"
	"github.com/soundforge-hq/soundforge-console/pkg/httpclient"
)

// Console bundles the dashboard API client, the dashboard data providers,
// and the profile enricher for one-shot CLI operations.
type Console struct {
	client       *dashboard.Client
	quickStats   dashboard.QuickStatsProvider
	systemStatus dashboard.SystemStatusProvider
	enricher     *enrich.Enricher
	log          logger.Logger
}

// NewConsole builds the console runtime from config.
func NewConsole(cfg *config.Config, log logger.Logger) (*Console, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	log = logger.Ensure(log)

	transport := httpclient.NewRestyClient(cfg.HTTPTimeout)
	client, err := dashboard.NewClient(cfg.APIBaseURL, transport)
	if err != nil {
		return nil, fmt.Errorf("build dashboard client: %w", err)
	}

	return &Console{
		client:       client,
		quickStats:   dashboard.NewMockQuickStatsProvider(log),
		systemStatus: dashboard.NewMockSystemStatusProvider(log),
		enricher:     enrich.NewEnricher(transport, log, cfg.EnrichDelay()),
		log:          log,
	}, nil
}

// Stats fetches the aggregate platform stats.
func (c *Console) Stats(ctx context.Context) (*domain.Stats, error) {
	return c.client.Stats(ctx)
}

// Artists lists artists, optionally merging profile page metadata.
func (c *Console) Artists(ctx context.Context, filters dashboard.ArtistFilters, enrichProfiles bool) ([]domain.Artist, error) {
	artists, err := c.client.Artists(ctx, filters)
	if err != nil {
		return nil, err
	}
	if enrichProfiles {
		artists = c.enricher.Enrich(ctx, artists)
	}
	return artists, nil
}

// ArtistByID fetches a single artist.
func (c *Console) ArtistByID(ctx context.Context, id string) (*domain.Artist, error) {
	return c.client.ArtistByID(ctx, id)
}

// ArtistLogs fetches log entries for an artist.
func (c *Console) ArtistLogs(ctx context.Context, id string, filters dashboard.LogFilters) ([]domain.LogEntry, error) {
	return c.client.ArtistLogs(ctx, id, filters)
}

// GenerateContent triggers content generation for an artist.
func (c *Console) GenerateContent(ctx context.Context, id string, params dashboard.GenerateParams) (*domain.GenerationResult, error) {
	return c.client.GenerateContent(ctx, id, params)
}

// QuickStats returns the condensed dashboard counters.
func (c *Console) QuickStats(ctx context.Context) (domain.QuickStats, error) {
	return c.quickStats.QuickStats(ctx)
}

// SystemStatus returns the per-service health snapshot.
func (c *Console) SystemStatus(ctx context.Context) (domain.SystemStatus, error) {
	return c.systemStatus.SystemStatus(ctx)
}
