package core

import (
	"sync"
	"time"

	"github.com/go-pwalk/pwalk/internal/walkerr"
)

type slotState int

const (
	slotPending slotState = iota
	slotReady
	slotConsumed
)

type slot[C any, S any] struct {
	state slotState
	batch ReadDirBatch[C, S]
	err   error
}

// Bus decouples worker parallelism from consumer ordering using a
// slotted ring indexed by issuance token modulo capacity, guarded by
// one mutex and one condition variable rather than a channel per slot.
type Bus[C any, S any] struct {
	mu   sync.Mutex
	cond *sync.Cond
	cfg  *Config[C, S]
	cap  uint64

	slots []slot[C, S]
	head  uint64 // next token to be consumed
	tail  uint64 // next token to be assigned
}

// NewBus creates a bus with the given outstanding-spec window.
func NewBus[C any, S any](cfg *Config[C, S], capacity int) *Bus[C, S] {
	if capacity < 1 {
		capacity = 1
	}
	b := &Bus[C, S]{cfg: cfg, cap: uint64(capacity), slots: make([]slot[C, S], capacity)}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Submit appends spec to the tail and dispatches it to the pool,
// blocking while the outstanding window is full (backpressure).
func (b *Bus[C, S]) Submit(spec ReadDirSpec[S]) {
	b.mu.Lock()
	for b.tail-b.head >= b.cap {
		b.cond.Wait()
	}
	token := b.tail
	b.tail++
	b.slots[token%b.cap] = slot[C, S]{state: slotPending}
	b.mu.Unlock()

	task := func() {
		batch := RunReadDir(spec, b.cfg)
		b.complete(token, batch, nil)
	}

	timeout, hasTimeout := b.cfg.Pool.Timeout()
	if !hasTimeout {
		// Pools with no configured busy_timeout get the task through a
		// direct Spawn call. A serial pool runs it inline on the
		// caller's goroutine, so a serial walk never spawns a goroutine
		// at all; an asynchronous pool runs it on its own goroutines.
		b.cfg.Pool.Spawn(task)
		return
	}

	done := make(chan struct{})
	go func() {
		b.cfg.Pool.Spawn(func() {
			task()
			close(done)
		})
	}()
	select {
	case <-done:
	case <-time.After(timeout):
		b.complete(token, ReadDirBatch[C, S]{}, walkerr.NewBusyError(timeout))
	}
}

func (b *Bus[C, S]) complete(token uint64, batch ReadDirBatch[C, S], err error) {
	b.mu.Lock()
	idx := token % b.cap
	if b.slots[idx].state == slotPending {
		b.slots[idx] = slot[C, S]{state: slotReady, batch: batch, err: err}
		b.cond.Broadcast()
	}
	b.mu.Unlock()
}

// Pull returns the next batch in issuance order, waiting on the head
// slot's readiness. ok is false only when every Submitted spec has
// already been pulled (the caller has drained everything it knows
// about).
func (b *Bus[C, S]) Pull() (batch ReadDirBatch[C, S], err error, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.head >= b.tail {
		return ReadDirBatch[C, S]{}, nil, false
	}
	idx := b.head % b.cap

	timeout, hasTimeout := b.cfg.Pool.Timeout()
	var deadline time.Time
	var timer *time.Timer
	if hasTimeout {
		deadline = time.Now().Add(timeout)
		timer = time.AfterFunc(timeout, func() {
			b.mu.Lock()
			b.cond.Broadcast()
			b.mu.Unlock()
		})
		defer timer.Stop()
	}

	for b.slots[idx].state == slotPending {
		if hasTimeout && !time.Now().Before(deadline) {
			return ReadDirBatch[C, S]{}, walkerr.NewBusyError(timeout), true
		}
		b.cond.Wait()
	}

	s := b.slots[idx]
	b.slots[idx] = slot[C, S]{state: slotConsumed}
	b.head++
	b.cond.Broadcast()
	return s.batch, s.err, true
}
