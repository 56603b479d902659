package commands

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"versus/internal/application"
	"versus/internal/ports"
)

func seedEntries(t *testing.T, store ports.EntryStore, root string, contents map[string]string) {
	t.Helper()
	for rel, content := range contents {
		writeFile(t, root, rel, content)
	}
	if _, err := NewSyncCommand(store, root, SyncFailOnTombstoned, nil).Execute(context.Background()); err != nil {
		t.Fatal(err)
	}
}

func TestRankCommand_WinnerOutranksLoser(t *testing.T) {
	store := newTestStore(t)
	root := t.TempDir()
	seedEntries(t, store, root, map[string]string{
		"a.txt": "alpha",
		"b.txt": "beta",
	})

	ctx := context.Background()
	if err := store.RecordComparison(ctx, "a.txt", "b.txt", 1, time.Unix(1700000000, 0)); err != nil {
		t.Fatal(err)
	}

	ranked, err := NewRankCommand(store, false).Execute(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(ranked) != 2 {
		t.Fatalf("expected 2 ranked entries, got %d", len(ranked))
	}
	// Ascending order: the winner sits last.
	if ranked[1].Path != "a.txt" {
		t.Errorf("best entry = %s, want a.txt", ranked[1].Path)
	}
	if ranked[1].Rating.Value <= ranked[0].Rating.Value {
		t.Errorf("winner rating %.2f should exceed loser rating %.2f",
			ranked[1].Rating.Value, ranked[0].Rating.Value)
	}
}

func TestRankCommand_DeletedEntriesFilteredByDefault(t *testing.T) {
	store := newTestStore(t)
	root := t.TempDir()
	seedEntries(t, store, root, map[string]string{
		"keep.txt": "kept",
		"drop.txt": "dropped",
	})

	ctx := context.Background()
	if err := os.Remove(filepath.Join(root, "drop.txt")); err != nil {
		t.Fatal(err)
	}
	if _, err := NewSyncCommand(store, root, SyncFailOnTombstoned, nil).Execute(ctx); err != nil {
		t.Fatal(err)
	}

	live, err := NewRankCommand(store, false).Execute(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(live) != 1 || live[0].Path != "keep.txt" {
		t.Errorf("live listing = %v, want only keep.txt", live)
	}

	all, err := NewRankCommand(store, true).Execute(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Errorf("full listing should include the deleted entry, got %d", len(all))
	}
}

func TestEntryAtIndex(t *testing.T) {
	store := newTestStore(t)
	root := t.TempDir()
	seedEntries(t, store, root, map[string]string{
		"a.txt": "alpha",
		"b.txt": "beta",
		"c.txt": "gamma",
	})

	ctx := context.Background()
	// a beats b, a beats c: a is rank 1.
	if err := store.RecordComparison(ctx, "a.txt", "b.txt", 1, time.Unix(1700000000, 0)); err != nil {
		t.Fatal(err)
	}
	if err := store.RecordComparison(ctx, "a.txt", "c.txt", 1, time.Unix(1700000060, 0)); err != nil {
		t.Fatal(err)
	}

	ranked, err := NewRankCommand(store, false).Execute(ctx)
	if err != nil {
		t.Fatal(err)
	}

	best, err := EntryAtIndex(ranked, 1)
	if err != nil {
		t.Fatal(err)
	}
	if best.Path != "a.txt" {
		t.Errorf("index 1 = %s, want a.txt", best.Path)
	}

	worst, err := EntryAtIndex(ranked, len(ranked))
	if err != nil {
		t.Fatal(err)
	}
	if worst.Path == "a.txt" {
		t.Error("last index should not be the best entry")
	}

	for _, bad := range []int{0, -1, len(ranked) + 1} {
		if _, err := EntryAtIndex(ranked, bad); !errors.Is(err, application.ErrNotFound) {
			t.Errorf("index %d: got %v, want ErrNotFound", bad, err)
		}
	}
}

func TestDisplayIndex_RoundTripsWithEntryAtIndex(t *testing.T) {
	store := newTestStore(t)
	root := t.TempDir()
	seedEntries(t, store, root, map[string]string{
		"a.txt": "alpha",
		"b.txt": "beta",
		"c.txt": "gamma",
	})

	ranked, err := NewRankCommand(store, false).Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	for pos := range ranked {
		index := DisplayIndex(len(ranked), pos)
		got, err := EntryAtIndex(ranked, index)
		if err != nil {
			t.Fatal(err)
		}
		if got.Path != ranked[pos].Path {
			t.Errorf("pos %d / index %d resolved to %s, want %s", pos, index, got.Path, ranked[pos].Path)
		}
	}
}
