package storage

import (
	"testing"
	"time"

	"github.com/soundforge-hq/soundforge-console/internal/domain"
)

func TestBoltStoreTracksStatusTransitions(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		SnapshotTTL:     1 * time.Second,
		CleanupInterval: 1 * time.Second,
	}

	storeRaw, err := openBolt(dir+"/status.db", opts)
	if err != nil {
		t.Fatalf("openBolt: %v", err)
	}
	store := storeRaw.(*boltStore)
	defer store.Close()

	_, found, err := store.LastStatus("Queue")
	if err != nil || found {
		t.Fatalf("expected no snapshot, found=%v err=%v", found, err)
	}

	if err := store.SetStatus("Queue", domain.StatusOffline); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}

	status, found, err := store.LastStatus("Queue")
	if err != nil || !found {
		t.Fatalf("expected snapshot, found=%v err=%v", found, err)
	}
	if status != domain.StatusOffline {
		t.Fatalf("status = %q, want %q", status, domain.StatusOffline)
	}

	if err := store.SetStatus("Queue", domain.StatusOnline); err != nil {
		t.Fatalf("SetStatus overwrite: %v", err)
	}
	status, _, err = store.LastStatus("Queue")
	if err != nil {
		t.Fatalf("LastStatus after overwrite: %v", err)
	}
	if status != domain.StatusOnline {
		t.Fatalf("status = %q, want %q", status, domain.StatusOnline)
	}

	// Fast-forward cleanup cadence and trigger expiry.
	store.lastCleanup.Store(time.Now().Add(-2 * time.Second).Unix())
	time.Sleep(1100 * time.Millisecond)

	_, found, err = store.LastStatus("Queue")
	if err != nil {
		t.Fatalf("LastStatus after expiry: %v", err)
	}
	if found {
		t.Fatalf("expected snapshot to expire and be removed")
	}
}

func TestNewStoreSupportsNoop(t *testing.T) {
	store, err := NewStore("none", "", Options{})
	if err != nil {
		t.Fatalf("NewStore none: %v", err)
	}
	if err := store.SetStatus("Database", domain.StatusOnline); err != nil {
		t.Fatalf("noop store SetStatus: %v", err)
	}
	if _, found, err := store.LastStatus("Database"); err != nil || found {
		t.Fatalf("noop store should never find snapshots, found=%v err=%v", found, err)
	}
}

func TestNewStoreRejectsUnknownType(t *testing.T) {
	if _, err := NewStore("redis", "", Options{}); err == nil {
		t.Fatal("expected error for unsupported storage type")
	}
}
