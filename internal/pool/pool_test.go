package pool

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestSerialRunsInline(t *testing.T) {
	var ran bool
	ok := Serial{}.Spawn(func() { ran = true })
	if !ok || !ran {
		t.Fatalf("Serial.Spawn did not run inline: ok=%v ran=%v", ok, ran)
	}
	if _, has := (Serial{}).Timeout(); has {
		t.Fatalf("Serial should report no timeout")
	}
}

func TestBoundedPoolRunsAllTasks(t *testing.T) {
	p := newBounded(3, 0, false)
	var n int32
	const tasks = 50
	done := make(chan struct{}, tasks)
	for i := 0; i < tasks; i++ {
		p.Spawn(func() {
			atomic.AddInt32(&n, 1)
			done <- struct{}{}
		})
	}
	for i := 0; i < tasks; i++ {
		<-done
	}
	if got := atomic.LoadInt32(&n); got != tasks {
		t.Fatalf("got %d completed tasks, want %d", got, tasks)
	}
}

func TestBoundedPoolSpawnTimesOutWhenSaturated(t *testing.T) {
	p := newBounded(1, 5*time.Millisecond, true)
	block := make(chan struct{})
	// Occupy the single worker so the next Spawn can't hand off.
	p.Spawn(func() { <-block })
	defer close(block)

	if ok := p.Spawn(func() {}); ok {
		t.Fatalf("expected Spawn to time out while the pool is saturated")
	}
}

func TestExistingPoolAppliesTimeoutWithoutAlteringSpawn(t *testing.T) {
	inner := Serial{}
	adapted := ExistingPool(inner, 2*time.Second)

	var ran bool
	adapted.Spawn(func() { ran = true })
	if !ran {
		t.Fatalf("adapted pool did not delegate Spawn to the inner pool")
	}
	d, has := adapted.Timeout()
	if !has || d != 2*time.Second {
		t.Fatalf("got (%v, %v), want (2s, true)", d, has)
	}
}
