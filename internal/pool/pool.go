// Package pool implements the pluggable parallelism strategies:
// Serial, a bounded goroutine pool for DefaultPool/NewPool, and an
// adapter for a caller-supplied ExistingPool.
package pool

import (
	"time"

	"github.com/go-pwalk/pwalk/internal/core"
	"github.com/go-pwalk/pwalk/internal/meta"
)

// Serial runs every task inline on the calling goroutine. It is also
// what a max_depth below 2 forces the pool into, since parallelism
// can't pay off reading a single directory.
type Serial struct{}

func (Serial) Spawn(task func()) bool          { task(); return true }
func (Serial) Timeout() (time.Duration, bool) { return 0, false }

// bounded is a fixed-size goroutine pool: n long-lived workers
// draining an unbuffered task channel, the channel itself acting as
// the semaphore that bounds in-flight read_dir calls.
type bounded struct {
	tasks      chan func()
	timeout    time.Duration
	hasTimeout bool
}

func newBounded(n int, timeout time.Duration, hasTimeout bool) *bounded {
	if n < 1 {
		n = 1
	}
	p := &bounded{tasks: make(chan func()), timeout: timeout, hasTimeout: hasTimeout}
	for i := 0; i < n; i++ {
		go p.worker()
	}
	return p
}

func (p *bounded) worker() {
	for task := range p.tasks {
		task()
	}
}

func (p *bounded) Spawn(task func()) bool {
	if !p.hasTimeout {
		p.tasks <- task
		return true
	}
	select {
	case p.tasks <- task:
		return true
	case <-time.After(p.timeout):
		return false
	}
}

func (p *bounded) Timeout() (time.Duration, bool) { return p.timeout, p.hasTimeout }

// DefaultPool returns the default bounded pool, sized by
// meta.DefaultNumWorkers, with busyTimeout applied when handing off a
// task.
func DefaultPool(busyTimeout time.Duration) core.Pool {
	return newBounded(meta.DefaultNumWorkers(), busyTimeout, true)
}

// NewPool returns a bounded pool of n workers with no configured
// busy_timeout.
func NewPool(n int) core.Pool {
	return newBounded(n, 0, false)
}

type existingPoolAdapter struct {
	pool    core.Pool
	timeout time.Duration
}

// ExistingPool adapts a caller-supplied Pool, applying busyTimeout to
// Bus pulls without altering the pool's own Spawn behavior.
func ExistingPool(p core.Pool, busyTimeout time.Duration) core.Pool {
	return &existingPoolAdapter{pool: p, timeout: busyTimeout}
}

func (a *existingPoolAdapter) Spawn(task func()) bool { return a.pool.Spawn(task) }
func (a *existingPoolAdapter) Timeout() (time.Duration, bool) { return a.timeout, true }
