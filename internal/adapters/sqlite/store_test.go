package sqlite

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "versus.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func createWithVersion(t *testing.T, store *Store, path string, content []byte, at time.Time) {
	t.Helper()
	ctx := context.Background()
	tx, err := store.BeginTx(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if err := tx.CreateEntry(path); err != nil {
		tx.Rollback()
		t.Fatal(err)
	}
	if err := tx.AppendVersion(path, content, at); err != nil {
		tx.Rollback()
		t.Fatal(err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatal(err)
	}
}

func TestStore_EntryRoundtrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	at := time.Unix(1700000000, 0).UTC()
	createWithVersion(t, store, "notes/a.txt", []byte("first draft"), at)

	entries, err := store.ListEntries(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Path != "notes/a.txt" {
		t.Errorf("path = %q", e.Path)
	}
	if len(e.Versions) != 1 {
		t.Fatalf("expected 1 version, got %d", len(e.Versions))
	}
	if !bytes.Equal(e.Versions[0].Content, []byte("first draft")) {
		t.Errorf("content = %q", e.Versions[0].Content)
	}
	if !e.Versions[0].ObservedAt.Equal(at) {
		t.Errorf("observed at = %v, want %v", e.Versions[0].ObservedAt, at)
	}
}

func TestStore_VersionsAreAppendOnlyAndOrdered(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	base := time.Unix(1700000000, 0).UTC()
	createWithVersion(t, store, "a.txt", []byte("v1"), base)

	appendVersion := func(content []byte, at time.Time) {
		tx, err := store.BeginTx(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if err := tx.AppendVersion("a.txt", content, at); err != nil {
			tx.Rollback()
			t.Fatal(err)
		}
		if err := tx.Commit(); err != nil {
			t.Fatal(err)
		}
	}

	appendVersion([]byte("v2"), base.Add(time.Minute))
	// Same timestamp as v2: insertion order must break the tie.
	appendVersion(nil, base.Add(time.Minute))

	entries, err := store.ListEntries(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	versions := entries[0].Versions
	if len(versions) != 3 {
		t.Fatalf("expected 3 versions, got %d", len(versions))
	}
	if string(versions[0].Content) != "v1" || string(versions[1].Content) != "v2" {
		t.Errorf("versions out of order: %q, %q", versions[0].Content, versions[1].Content)
	}
	if !versions[2].Tombstone() {
		t.Error("final version should be a tombstone")
	}
	if !entries[0].Deleted() {
		t.Error("entry with tombstone head should read as deleted")
	}
}

func TestStore_EmptyContentIsNotATombstone(t *testing.T) {
	store := openTestStore(t)

	createWithVersion(t, store, "blank.txt", []byte{}, time.Unix(1700000000, 0))

	entries, err := store.ListEntries(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if entries[0].Deleted() {
		t.Error("empty content must round-trip as present, not deleted")
	}
}

func TestStore_ComparisonLogOrder(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	base := time.Unix(1700000000, 0).UTC()
	// Inserted out of timestamp order; the log must come back sorted by
	// (at, id).
	steps := []struct {
		winner, loser string
		at            time.Time
	}{
		{"b.txt", "c.txt", base.Add(2 * time.Minute)},
		{"a.txt", "b.txt", base},
		{"c.txt", "a.txt", base},
	}
	for _, s := range steps {
		if err := store.RecordComparison(ctx, s.winner, s.loser, 1, s.at); err != nil {
			t.Fatal(err)
		}
	}

	log, err := store.ListComparisons(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(log) != 3 {
		t.Fatalf("expected 3 comparisons, got %d", len(log))
	}
	wantWinners := []string{"a.txt", "c.txt", "b.txt"}
	for i, w := range wantWinners {
		if log[i].Winner != w {
			t.Errorf("position %d: winner = %s, want %s", i, log[i].Winner, w)
		}
	}
	if !log[0].At.Equal(base) {
		t.Errorf("at = %v, want %v", log[0].At, base)
	}
}

func TestStore_RollbackDiscardsWrites(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	tx, err := store.BeginTx(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if err := tx.CreateEntry("doomed.txt"); err != nil {
		t.Fatal(err)
	}
	if err := tx.AppendVersion("doomed.txt", []byte("x"), time.Unix(1700000000, 0)); err != nil {
		t.Fatal(err)
	}
	if err := tx.Rollback(); err != nil {
		t.Fatal(err)
	}

	entries, err := store.ListEntries(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("rolled-back entry leaked: %d entries", len(entries))
	}
}

func TestStore_SecondOpenFailsWhileLocked(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "versus.db")

	first, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer first.Close()

	if second, err := Open(dbPath); err == nil {
		second.Close()
		t.Fatal("second Open() should fail while the lock is held")
	}
}

func TestStore_ReopenAfterClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "versus.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	createWithVersion(t, store, "a.txt", []byte("persisted"), time.Unix(1700000000, 0))
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	entries, err := reopened.ListEntries(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || string(entries[0].Head().Content) != "persisted" {
		t.Error("data did not survive close and reopen")
	}
}
