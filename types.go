package pwalk

import (
	"github.com/go-pwalk/pwalk/internal/core"
	"github.com/go-pwalk/pwalk/internal/walkerr"
)

// FileType classifies a DirEntry.
type FileType = core.FileType

const (
	File      = core.File
	Directory = core.Directory
	Symlink   = core.Symlink
	Other     = core.Other
)

// ParentPath is the shared, immutable path prefix common to every
// sibling produced by one read_dir.
type ParentPath = core.ParentPath

// Ancestors is the shared, copy-on-extend chain of real paths above an
// entry, used for symlink loop detection when FollowLinks is set.
type Ancestors = core.Ancestors

// DirEntry is one filesystem entry with metadata, depth, parent path,
// ancestor chain, and a user-typed annotation slot.
type DirEntry[C any] = core.DirEntry[C]

// Result is one item of a ReadDirBatch: either a DirEntry or an error
// encountered producing it.
type Result[C any] = core.Result[C]

// ReadDirSpec is a request to enumerate one directory.
type ReadDirSpec[S any] = core.ReadDirSpec[S]

// ReadDirBatch is one worker's output: the (possibly callback-mutated)
// outgoing state plus the final ordered sequence of results.
type ReadDirBatch[C any, S any] = core.ReadDirBatch[C, S]

// ProcessReadDirFunc is the user callback invoked after each directory
// is read. depth is nil exactly when this is the root's virtual-parent
// invocation.
type ProcessReadDirFunc[C any, S any] = core.ProcessFunc[C, S]

// Pool is the pluggable worker-pool contract.
type Pool = core.Pool

// PathError reports a failure to open a directory or stat an entry
// within one.
type PathError = walkerr.PathError

// LoopError reports a followed symlink whose resolved target already
// appears in its own ancestor chain.
type LoopError = walkerr.LoopError

// BusyError is returned when the worker pool fails to execute or
// deliver work within its busy_timeout. It is terminal.
type BusyError = walkerr.BusyError
