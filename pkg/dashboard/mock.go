package dashboard

import (
	"context"
	"time"

	"github.com/soundforge-hq/soundforge-console/internal/domain"
	"github.com/soundforge-hq/soundforge-console/internal/logger"
)

// Mock providers stand in for the two dashboard endpoints the backend does
// not implement yet. They simulate network latency, warn that mock data is
// in use, and keep the same failure contract a real call would have so the
// swap to HTTP-backed providers is invisible to callers.

const (
	mockQuickStatsDelay   = 300 * time.Millisecond
	mockSystemStatusDelay = 400 * time.Millisecond
)

// MockQuickStatsProvider returns a fixed QuickStats snapshot after an
// artificial delay.
type MockQuickStatsProvider struct {
	delay time.Duration
	log   logger.Logger
}

// NewMockQuickStatsProvider builds the mock quick stats provider.
func NewMockQuickStatsProvider(log logger.Logger) *MockQuickStatsProvider {
	return &MockQuickStatsProvider{
		delay: mockQuickStatsDelay,
		log:   logger.Ensure(log),
	}
}

// QuickStats returns the canned dashboard counters.
func (p *MockQuickStatsProvider) QuickStats(ctx context.Context) (domain.QuickStats, error) {
	p.log.WarnObj("serving mock quick stats; backend endpoint not implemented", "provider", "mock_quick_stats")

	if err := sleepFor(ctx, p.delay); err != nil {
		p.log.ErrorObj("mock quick stats failed", "error", err.Error())
		return domain.QuickStats{}, err
	}

	return domain.QuickStats{
		Artists:   15,
		Active:    10,
		Autopilot: 8,
		Errors:    2,
	}, nil
}

// MockSystemStatusProvider returns a fixed per-service health snapshot
// after an artificial delay.
type MockSystemStatusProvider struct {
	delay time.Duration
	log   logger.Logger
}

// NewMockSystemStatusProvider builds the mock system status provider.
func NewMockSystemStatusProvider(log logger.Logger) *MockSystemStatusProvider {
	return &MockSystemStatusProvider{
		delay: mockSystemStatusDelay,
		log:   logger.Ensure(log),
	}
}

// SystemStatus returns the canned service health map.
func (p *MockSystemStatusProvider) SystemStatus(ctx context.Context) (domain.SystemStatus, error) {
	p.log.WarnObj("serving mock system status; backend endpoint not implemented", "provider", "mock_system_status")

	if err := sleepFor(ctx, p.delay); err != nil {
		p.log.ErrorObj("mock system status failed", "error", err.Error())
		return nil, err
	}

	return domain.SystemStatus{
		"Music Gen API":   domain.StatusOnline,
		"Voice Clone API": domain.StatusDegraded,
		"Video API":       domain.StatusOnline,
		"Database":        domain.StatusOnline,
		"Queue":           domain.StatusOffline,
	}, nil
}

// sleepFor waits for d or until the context is cancelled.
func sleepFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
