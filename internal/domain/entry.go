package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// ContentVersion is an immutable snapshot of an entry's bytes at a point in
// time. A nil Content marks a tombstone: the entry was absent from the
// filesystem when the version was observed.
type ContentVersion struct {
	Content    []byte
	ObservedAt time.Time
}

// Tombstone reports whether this version marks the entry as deleted.
func (v ContentVersion) Tombstone() bool {
	return v.Content == nil
}

// Entry is a tracked file identified by its path relative to the entries
// root. Versions are ordered oldest first; every known entry has at least
// one version.
type Entry struct {
	Path     string
	Versions []ContentVersion
}

// Head returns the most recent version.
func (e *Entry) Head() ContentVersion {
	if len(e.Versions) == 0 {
		return ContentVersion{}
	}
	return e.Versions[len(e.Versions)-1]
}

// Deleted reports whether the entry's most recent version is a tombstone.
func (e *Entry) Deleted() bool {
	return e.Head().Tombstone()
}

// Title renders the entry for candidate lists: the first line of its
// current content followed by the path, or a deleted marker.
func (e *Entry) Title() string {
	head := e.Head()
	if head.Tombstone() {
		return fmt.Sprintf("%s (deleted)", e.Path)
	}
	line, _, _ := strings.Cut(string(head.Content), "\n")
	return fmt.Sprintf("%s (%s)", strings.TrimSpace(line), e.Path)
}

// SortEntries sorts entries by path in ascending order.
func SortEntries(entries []*Entry) {
	slices.SortFunc(entries, func(a, b *Entry) int {
		return strings.Compare(a.Path, b.Path)
	})
}

// SyncStats reports what a reconciliation pass did.
type SyncStats struct {
	Scanned    int
	Created    int
	Updated    int
	Tombstoned int
	Pruned     int
	Duration   time.Duration
}
