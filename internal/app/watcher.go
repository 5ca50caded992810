package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/soundforge-hq/soundforge-console/internal/config"
	"github.com/soundforge-hq/soundforge-console/internal/logger"
	"github.com/soundforge-hq/soundforge-console/internal/storage"
	"github.com/soundforge-hq/soundforge-console/pkg/alerts"
	"github.com/soundforge-hq/soundforge-console/pkg/dashboard"
)

// Watcher represents the status watcher runtime. It manages the poll loop,
// coordinating between the dashboard data providers, the snapshot store,
// and alert publishers. It also handles storage initialization and cleanup.
type Watcher struct {
	cfg          *config.Config
	quickStats   dashboard.QuickStatsProvider
	systemStatus dashboard.SystemStatusProvider
	fanout       *alerts.Fanout
	store        storage.Store
	pollInterval time.Duration
	log          logger.Logger
}

// NewWatcher builds a watcher runtime from config files. The dashboard data
// providers are the mock implementations until the backend grows the real
// quick-stats and system-status endpoints.
func NewWatcher(ctx context.Context, cfg *config.Config, log logger.Logger) (*Watcher, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	log = logger.Ensure(log)
	if ctx == nil {
		ctx = context.Background()
	}

	alertReg, err := alerts.LoadRegistry(cfg.AlertsFile)
	if err != nil {
		return nil, fmt.Errorf("load alerts registry: %w", err)
	}

	enabledSinks := alertReg.Enabled()
	if len(enabledSinks) == 0 {
		return nil, fmt.Errorf("no alert publishers configured")
	}

	pubRegistry := alerts.DefaultRegistry()
	pubClients, err := alerts.BuildAll(ctx, pubRegistry, enabledSinks, log)
	if err != nil {
		return nil, fmt.Errorf("build alert publishers: %w", err)
	}
	fanout := alerts.NewFanout(pubClients)
	sinkSummaries := make([]map[string]string, 0, len(enabledSinks))
	for _, sinkCfg := range enabledSinks {
		sinkSummaries = append(sinkSummaries, map[string]string{
			"id":   sinkCfg.ID,
			"type": sinkCfg.Type,
		})
	}
	log.InfoObj("alerts registry loaded", "alerts_meta", map[string]any{
		"count":      len(sinkSummaries),
		"publishers": sinkSummaries,
	})

	storeOpts := storage.Options{
		SnapshotTTL:     cfg.StorageTTL,
		CleanupInterval: cfg.StorageCleanupInterval,
	}
	store, err := storage.NewStore(cfg.StorageType, cfg.BBoltPath, storeOpts)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	log.InfoObj("storage initialized", "storage_config", map[string]any{
		"type":                     cfg.StorageType,
		"path":                     cfg.BBoltPath,
		"snapshot_ttl_seconds":     int(cfg.StorageTTL.Seconds()),
		"cleanup_interval_seconds": int(cfg.StorageCleanupInterval.Seconds()),
	})

	return &Watcher{
		cfg:          cfg,
		quickStats:   dashboard.NewMockQuickStatsProvider(log),
		systemStatus: dashboard.NewMockSystemStatusProvider(log),
		fanout:       fanout,
		store:        store,
		pollInterval: cfg.PollInterval,
		log:          log,
	}, nil
}

// Run starts the poll loop until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	if w == nil || w.systemStatus == nil {
		return fmt.Errorf("watcher is not initialized")
	}
	defer w.closeStore()

	w.log.InfoObj("watcher loop starting", "watcher_state", map[string]any{
		"publishers_count": w.fanout.Size(),
		"poll_interval":    w.pollInterval.String(),
	})

	if err := w.runOnce(ctx); err != nil {
		w.log.ErrorObj("initial status poll failed", "error", err)
	}

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.InfoObj("watcher loop exiting", "reason", ctx.Err())
			return nil
		case <-ticker.C:
			if err := w.runOnce(ctx); err != nil {
				w.log.ErrorObj("scheduled status poll failed", "error", err)
			}
		}
	}
}

// runOnce performs a single status poll, recording snapshots and publishing
// an alert for every service whose status changed since the last poll. The
// first observation of a service records a baseline without alerting.
func (w *Watcher) runOnce(ctx context.Context) error {
	start := time.Now()

	status, err := w.systemStatus.SystemStatus(ctx)
	if err != nil {
		return fmt.Errorf("fetch system status: %w", err)
	}

	qs, qsErr := w.quickStats.QuickStats(ctx)
	if qsErr != nil {
		w.log.WarnObj("quick stats fetch failed; alerting without snapshot", "error", qsErr.Error())
	}

	var errs []error
	transitions := 0
	for service, current := range status {
		previous, found, err := w.store.LastStatus(service)
		if err != nil {
			errs = append(errs, fmt.Errorf("load snapshot for %s: %w", service, err))
			continue
		}

		if found && previous != current {
			evt := alerts.NewEvent(service, previous, current)
			if qsErr == nil {
				evt.QuickStats = &qs
			}
			if _, err := w.fanout.Publish(ctx, evt); err != nil {
				errs = append(errs, fmt.Errorf("publish alert for %s: %w", service, err))
			}
			transitions++
			w.log.WarnObj("service status transition", "transition", map[string]any{
				"service": service,
				"from":    string(previous),
				"to":      string(current),
			})
		}

		if err := w.store.SetStatus(service, current); err != nil {
			errs = append(errs, fmt.Errorf("record snapshot for %s: %w", service, err))
		}
	}

	w.log.InfoObj("status poll completed", "poll_meta", map[string]any{
		"services_count": len(status),
		"transitions":    transitions,
		"elapsed_ms":     time.Since(start).Milliseconds(),
	})
	return errors.Join(errs...)
}

// closeStore safely closes the storage backend, logging any errors encountered.
func (w *Watcher) closeStore() {
	if w == nil || w.store == nil {
		return
	}
	if err := w.store.Close(); err != nil {
		w.log.ErrorObj("storage close failed", "error", err)
	}
}
