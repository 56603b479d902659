package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound       = errors.New("not found")
	ErrSelfComparison = errors.New("cannot compare an entry against itself")
	ErrResurrected    = errors.New("entry is tombstoned")
)

// ResurrectedError reports a filesystem file whose path is already
// tombstoned in history. Reconciliation never resurrects silently; the
// operator either removes the file or runs with the prune policy.
type ResurrectedError struct {
	Path string
}

func (e *ResurrectedError) Error() string {
	return fmt.Sprintf("%s exists on disk but is tombstoned in history; remove the file or sync with --prune", e.Path)
}

func (e *ResurrectedError) Is(target error) bool {
	return target == ErrResurrected
}
