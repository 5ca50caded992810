package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/soundforge-hq/soundforge-console/internal/domain"
)

// Package storage provides local DB/cache abstraction.

// Store persists the last observed status per platform service so the
// watcher can detect transitions across restarts.
type Store interface {
	Close() error
	LastStatus(service string) (domain.ServiceStatus, bool, error)
	SetStatus(service string, status domain.ServiceStatus) error
}

// Options controls retention characteristics for concrete store implementations.
type Options struct {
	SnapshotTTL     time.Duration
	CleanupInterval time.Duration
}

const (
	defaultSnapshotTTL     = 5 * 24 * time.Hour
	defaultCleanupInterval = 12 * time.Hour
)

// NewStore creates the configured storage backend.
func NewStore(typ, path string, opts Options) (Store, error) {
	typ = strings.TrimSpace(strings.ToLower(typ))
	opts = normalizeOptions(opts)

	switch typ {
	case "", "none", "disabled":
		return noopStore{}, nil
	case "bbolt":
		if strings.TrimSpace(path) == "" {
			return nil, fmt.Errorf("bbolt storage requires a path")
		}
		return openBolt(path, opts)
	default:
		return nil, fmt.Errorf("unsupported storage type %q", typ)
	}
}

func normalizeOptions(opts Options) Options {
	if opts.SnapshotTTL <= 0 {
		opts.SnapshotTTL = defaultSnapshotTTL
	}
	if opts.CleanupInterval <= 0 {
		opts.CleanupInterval = defaultCleanupInterval
	}
	return opts
}

type noopStore struct{}

func (noopStore) Close() error { return nil }
func (noopStore) LastStatus(string) (domain.ServiceStatus, bool, error) {
	return "", false, nil
}
func (noopStore) SetStatus(string, domain.ServiceStatus) error { return nil }
