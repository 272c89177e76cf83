// Package core implements the walk engine: DirEntry, ReadDirSpec,
// ReadDirWorker, OrderedResultBus and EntryStream. Everything here is
// generic over C (the caller's per-entry ClientState) and S (the
// caller's inherited ReadDirState); the root package instantiates it
// and re-exports the public names.
package core

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-pwalk/pwalk/internal/meta"
)

type FileType = meta.FileType

const (
	File      = meta.File
	Directory = meta.Directory
	Symlink   = meta.Symlink
	Other     = meta.Other
)

// ParentPath is the shared, immutable path prefix common to every
// sibling produced by one read_dir. All entries from the same batch
// hold a pointer to the same ParentPath instance.
type ParentPath struct {
	s string
}

func NewParentPath(s string) *ParentPath { return &ParentPath{s: s} }

func (p *ParentPath) String() string {
	if p == nil {
		return ""
	}
	return p.s
}

// Ancestors is the shared, copy-on-extend chain of real paths above an
// entry, used for symlink loop detection when follow_links is set.
type Ancestors struct {
	paths []string
}

// Extend returns a new chain with p appended, never mutating the
// receiver (siblings and cousins keep sharing their own prefix).
func (a Ancestors) Extend(p string) Ancestors {
	next := make([]string, len(a.paths)+1)
	copy(next, a.paths)
	next[len(a.paths)] = p
	return Ancestors{paths: next}
}

func (a Ancestors) Contains(p string) bool {
	for _, x := range a.paths {
		if x == p {
			return true
		}
	}
	return false
}

type metadataCache struct {
	once sync.Once
	info fs.FileInfo
	err  error
}

// DirEntry is one filesystem entry with metadata, depth, parent path,
// ancestor chain, and a user-typed annotation slot.
type DirEntry[C any] struct {
	Depth                int
	FileName             string
	ParentPath           *ParentPath
	FileType             FileType
	ReadChildrenPath     string
	FollowLinkAncestors  Ancestors
	ClientState          C

	meta *metadataCache
}

// Path reconstructs the full path of the entry from its shared parent
// path and file name.
func (e *DirEntry[C]) Path() string {
	parent := e.ParentPath.String()
	if parent == "" {
		return e.FileName
	}
	return filepath.Join(parent, e.FileName)
}

// Metadata lazily stats the entry, caching the result. The stat is an
// Lstat: for a followed symlink, FileType already reports the target's
// type, but Metadata still describes the link itself unless the
// caller stats ReadChildrenPath/Path() separately.
func (e *DirEntry[C]) Metadata() (fs.FileInfo, error) {
	if e.meta == nil {
		e.meta = &metadataCache{}
	}
	e.meta.once.Do(func() {
		e.meta.info, e.meta.err = os.Lstat(e.Path())
	})
	return e.meta.info, e.meta.err
}

// Result is one item of a ReadDirBatch: either a DirEntry or an error
// encountered producing it.
type Result[C any] struct {
	Entry DirEntry[C]
	Err   error
}

// ReadDirSpec is a request to enumerate one directory.
type ReadDirSpec[S any] struct {
	Path                string
	Depth               int
	ReadDirState        S
	FollowLinkAncestors Ancestors
}

// ReadDirBatch is the worker's output: the (possibly callback-mutated)
// outgoing state plus the final ordered sequence of results.
type ReadDirBatch[C any, S any] struct {
	ReadDirState S
	Results      []Result[C]
}

// ProcessFunc is the user callback invoked after each directory is
// read, with the chance to mutate, reorder or prune the batch before
// it reaches the consumer. depth is nil exactly when this is the
// root's virtual-parent invocation.
type ProcessFunc[C any, S any] func(depth *int, dirPath string, state *S, batch *ReadDirBatch[C, S])

// Pool is the pluggable worker-pool contract.
type Pool interface {
	// Spawn submits task for execution. For a synchronous/serial pool
	// it runs task inline before returning. For an asynchronous pool
	// it may run task on another goroutine; it returns false if task
	// could not be handed off within the pool's own budget.
	Spawn(task func()) bool
	// Timeout reports the duration after which a Bus pull on an
	// unready head slot fails, and whether one is configured at all.
	Timeout() (time.Duration, bool)
}

// Config is the walk-wide configuration threaded into every worker
// invocation.
type Config[C any, S any] struct {
	Sort        bool
	SkipHidden  bool
	FollowLinks bool
	MinDepth    int
	MaxDepth    int
	Process     ProcessFunc[C, S]
	Pool        Pool
}
