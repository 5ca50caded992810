package storage

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/soundforge-hq/soundforge-console/internal/domain"
)

const (
	statusBucket     = "service_status"
	expiryValueBytes = 8
)

// boltStore implements a Store backed by BoltDB. Each value is an 8-byte
// big-endian expiry followed by the status string.
type boltStore struct {
	db              *bolt.DB
	cleanupMu       sync.Mutex
	lastCleanup     atomic.Int64
	snapshotTTL     time.Duration
	cleanupInterval time.Duration
}

// openBolt initializes a BoltDB-backed Store.
func openBolt(path string, opts Options) (Store, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bbolt db: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(statusBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("init bucket: %w", err)
	}

	store := &boltStore{
		db:              db,
		snapshotTTL:     opts.SnapshotTTL,
		cleanupInterval: opts.CleanupInterval,
	}
	store.lastCleanup.Store(time.Now().Unix())
	return store, nil
}

// Close closes the BoltDB store.
func (b *boltStore) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}

// LastStatus returns the most recent non-expired status recorded for a service.
func (b *boltStore) LastStatus(service string) (domain.ServiceStatus, bool, error) {
	if b == nil || b.db == nil {
		return "", false, nil
	}

	if err := b.maybeCleanupExpired(time.Now()); err != nil {
		return "", false, err
	}

	var (
		status domain.ServiceStatus
		found  bool
	)
	err := b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(statusBucket))
		if bucket == nil {
			return fmt.Errorf("status bucket missing")
		}

		key := []byte(service)
		value := bucket.Get(key)
		if value == nil {
			return nil
		}

		expiry, st, ok := decodeSnapshot(value)
		if !ok || !expiry.After(time.Now()) {
			return bucket.Delete(key)
		}

		status = st
		found = true
		return nil
	})
	return status, found, err
}

// SetStatus records the current status for a service with the configured TTL.
func (b *boltStore) SetStatus(service string, status domain.ServiceStatus) error {
	if b == nil || b.db == nil {
		return nil
	}

	now := time.Now()
	if err := b.maybeCleanupExpired(now); err != nil {
		return err
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(statusBucket))
		if bucket == nil {
			return fmt.Errorf("status bucket missing")
		}
		return bucket.Put([]byte(service), encodeSnapshot(now.Add(b.snapshotTTL), status))
	})
}

// maybeCleanupExpired removes expired snapshots on a fixed cadence to avoid unbounded growth.
func (b *boltStore) maybeCleanupExpired(now time.Time) error {
	if b == nil || b.db == nil {
		return nil
	}

	last := time.Unix(b.lastCleanup.Load(), 0)
	if now.Sub(last) < b.cleanupInterval {
		return nil
	}

	b.cleanupMu.Lock()
	defer b.cleanupMu.Unlock()

	last = time.Unix(b.lastCleanup.Load(), 0)
	if now.Sub(last) < b.cleanupInterval {
		return nil
	}

	err := b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(statusBucket))
		if bucket == nil {
			return fmt.Errorf("status bucket missing")
		}

		cursor := bucket.Cursor()
		for k, v := cursor.First(); k != nil; k, v = cursor.Next() {
			expiry, _, ok := decodeSnapshot(v)
			if !ok || !expiry.After(now) {
				if err := cursor.Delete(); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err == nil {
		b.lastCleanup.Store(now.Unix())
	}
	return err
}

// encodeSnapshot packs the expiry and status into a single value.
func encodeSnapshot(expiry time.Time, status domain.ServiceStatus) []byte {
	buf := make([]byte, expiryValueBytes, expiryValueBytes+len(status))
	binary.BigEndian.PutUint64(buf, uint64(expiry.Unix()))
	return append(buf, []byte(status)...)
}

// decodeSnapshot unpacks the expiry time and status from the stored byte slice.
func decodeSnapshot(value []byte) (time.Time, domain.ServiceStatus, bool) {
	if len(value) < expiryValueBytes {
		return time.Time{}, "", false
	}
	unix := int64(binary.BigEndian.Uint64(value[:expiryValueBytes]))
	if unix <= 0 {
		return time.Time{}, "", false
	}
	return time.Unix(unix, 0), domain.ServiceStatus(value[expiryValueBytes:]), true
}
