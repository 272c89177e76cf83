// Package walkerr defines the three error kinds a walk can surface to
// its consumer: a path error from a failed read_dir or
// per-entry stat, a symlink loop error, and a terminal busy error from
// a saturated worker pool.
package walkerr

import (
	"time"

	"golang.org/x/xerrors"
)

// PathError reports a failure to open a directory or stat an entry
// within one. It carries the depth and path of the failing operation
// so the consumer can locate it in the tree.
type PathError struct {
	Depth int
	Path  string
	Err   error
}

func NewPathError(depth int, path string, cause error) *PathError {
	return &PathError{Depth: depth, Path: path, Err: cause}
}

func (e *PathError) Error() string {
	return xerrors.Errorf("pwalk: %s (depth %d): %w", e.Path, e.Depth, e.Err).Error()
}

func (e *PathError) Unwrap() error { return e.Err }

// LoopError reports a followed symlink whose resolved target already
// appears in its own ancestor chain.
type LoopError struct {
	// Path is the symlink that would have been descended into.
	Path string
	// RealPath is the resolved, already-visited ancestor it points back to.
	RealPath string
}

func NewLoopError(path, realPath string) *LoopError {
	return &LoopError{Path: path, RealPath: realPath}
}

func (e *LoopError) Error() string {
	return xerrors.Errorf("pwalk: symlink loop descending into %s (already visited %s)", e.Path, e.RealPath).Error()
}

// BusyError is returned when the worker pool fails to execute or
// deliver the head of the ordered result queue within BusyTimeout. It
// is terminal: the bus does not retry and the walk ends.
type BusyError struct {
	Timeout time.Duration
}

func NewBusyError(timeout time.Duration) *BusyError {
	return &BusyError{Timeout: timeout}
}

func (e *BusyError) Error() string {
	return xerrors.Errorf("pwalk: worker pool busy, exceeded timeout of %s", e.Timeout).Error()
}
