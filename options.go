package pwalk

import (
	"math"
	"time"
)

// Options holds the builder configuration. It is assembled by applying
// Option functions over defaultOptions and is never exposed directly;
// callers configure it through New/Walk's variadic Option arguments.
type Options[C any, S any] struct {
	sort        bool
	skipHidden  bool
	followLinks bool
	minDepth    int
	maxDepth    int
	pool        Pool
	rootState   S
	process     ProcessReadDirFunc[C, S]
	// queueLen bounds the number of outstanding ReadDirSpecs, the
	// bus's backpressure window. It isn't a recognized builder option,
	// so it defaults generously rather than being user-tunable.
	queueLen int
}

// Option configures a Walk/New call. Options are applied left to
// right, so e.g. MinDepth then MaxDepth clamp against whichever was
// set first, matching established builder semantics.
type Option[C any, S any] func(*Options[C, S])

func defaultOptions[C any, S any]() *Options[C, S] {
	return &Options[C, S]{
		skipHidden: true,
		minDepth:   0,
		maxDepth:   math.MaxInt,
		pool:       DefaultPoolWith(time.Second),
		queueLen:   64,
	}
}

// Sort enables sorting each batch by FileName before the callback
// runs. Default: false.
func Sort[C any, S any](sort bool) Option[C, S] {
	return func(o *Options[C, S]) { o.sort = sort }
}

// SkipHidden drops entries whose name starts with "." before the
// callback runs. Default: true.
func SkipHidden[C any, S any](skip bool) Option[C, S] {
	return func(o *Options[C, S]) { o.skipHidden = skip }
}

// FollowLinks resolves symlinks and detects loops via the ancestor
// chain. Default: false.
func FollowLinks[C any, S any](follow bool) Option[C, S] {
	return func(o *Options[C, S]) { o.followLinks = follow }
}

// MinDepth suppresses yield for entries with Depth < depth. It is
// clamped down to MaxDepth if it would exceed it. Default: 0.
func MinDepth[C any, S any](depth int) Option[C, S] {
	return func(o *Options[C, S]) {
		o.minDepth = depth
		if o.minDepth > o.maxDepth {
			o.minDepth = o.maxDepth
		}
	}
}

// MaxDepth bounds traversal: directories at depth >= depth are not
// enumerated. It is clamped up to MinDepth if it would fall below it,
// and setting it below 2 forces Serial parallelism, since parallelism
// only pays off reading more than one directory. Default:
// unbounded.
func MaxDepth[C any, S any](depth int) Option[C, S] {
	return func(o *Options[C, S]) {
		o.maxDepth = depth
		if o.maxDepth < o.minDepth {
			o.maxDepth = o.minDepth
		}
		if o.maxDepth < 2 {
			o.pool = SerialPool()
		}
	}
}

// WithPool selects the parallelism strategy: SerialPool(), DefaultPoolWith(busyTimeout), NewWorkerPool(n)
// or ExistingPool(pool, busyTimeout).
func WithPool[C any, S any](p Pool) Option[C, S] {
	return func(o *Options[C, S]) { o.pool = p }
}

// RootReadDirState seeds the user state passed to the root's
// virtual-parent callback invocation.
func RootReadDirState[C any, S any](state S) Option[C, S] {
	return func(o *Options[C, S]) { o.rootState = state }
}

// ProcessReadDir installs the per-directory callback.
func ProcessReadDir[C any, S any](fn ProcessReadDirFunc[C, S]) Option[C, S] {
	return func(o *Options[C, S]) { o.process = fn }
}
