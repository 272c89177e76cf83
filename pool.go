package pwalk

import (
	"time"

	"github.com/go-pwalk/pwalk/internal/pool"
)

// SerialPool returns a Pool that runs every read_dir task inline on
// the caller's goroutine. max_depth < 2 forces this pool regardless of
// what was configured.
func SerialPool() Pool { return pool.Serial{} }

// DefaultPoolWith returns the default bounded worker pool, sized for
// the host, with busyTimeout applied to both task hand-off and bus
// pulls.
func DefaultPoolWith(busyTimeout time.Duration) Pool { return pool.DefaultPool(busyTimeout) }

// NewWorkerPool returns a bounded pool of n goroutines with no
// configured busy_timeout.
func NewWorkerPool(n int) Pool { return pool.NewPool(n) }

// ExistingPool adapts a caller-supplied Pool, applying busyTimeout to
// bus pulls without altering the pool's own Spawn behavior.
func ExistingPool(p Pool, busyTimeout time.Duration) Pool {
	return pool.ExistingPool(p, busyTimeout)
}
