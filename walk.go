package pwalk

import "github.com/go-pwalk/pwalk/internal/core"

// Stream is the consumer-facing lazy sequence: a single-consumer,
// non-restartable, strictly depth-first pre-order sequence of
// (DirEntry, error) results.
type Stream[C any, S any] struct {
	inner *core.Stream[C, S]
}

// Next returns the next entry in the walk. ok is false at the end of
// the stream; it is never true again afterward. err is
// non-nil for a PathError, LoopError or BusyError surfaced at this
// position in the stream; a BusyError is always the last item.
func (s *Stream[C, S]) Next() (DirEntry[C], error, bool) {
	return s.inner.Next()
}

// New is the generic builder surface: C is the per-entry ClientState
// type, S is the inherited ReadDirState type threaded down the tree
// and cloned per child directory.
func New[C any, S any](root string, opts ...Option[C, S]) *Stream[C, S] {
	o := defaultOptions[C, S]()
	for _, opt := range opts {
		opt(o)
	}
	if o.maxDepth < 2 {
		o.pool = SerialPool()
	}

	cfg := &core.Config[C, S]{
		Sort:        o.sort,
		SkipHidden:  o.skipHidden,
		FollowLinks: o.followLinks,
		MinDepth:    o.minDepth,
		MaxDepth:    o.maxDepth,
		Process:     o.process,
		Pool:        o.pool,
	}

	bus := core.NewBus(cfg, o.queueLen)
	rootFrame := core.NewRoot[C, S](root, cfg, o.rootState)
	return &Stream[C, S]{inner: core.NewStream(bus, cfg, rootFrame)}
}

// Walk is the non-generic convenience entry point, defaulting both
// ClientState and ReadDirState to struct{}.
func Walk(root string, opts ...Option[struct{}, struct{}]) *Stream[struct{}, struct{}] {
	return New[struct{}, struct{}](root, opts...)
}

// Collect drains a Stream into a slice, stopping at the first error
// (including a terminal BusyError). It is a convenience for tests and
// small trees; production callers should usually drive Next()
// themselves so a busy or path error doesn't discard partial results.
func Collect[C any, S any](s *Stream[C, S]) ([]DirEntry[C], error) {
	var entries []DirEntry[C]
	for {
		entry, err, ok := s.Next()
		if !ok {
			return entries, nil
		}
		if err != nil {
			return entries, err
		}
		entries = append(entries, entry)
	}
}
