package utils

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_TrailingEdge(t *testing.T) {
	t.Parallel()

	d := NewDebouncer(30 * time.Millisecond)
	var calls int32
	var last atomic.Value

	for _, v := range []string{"r", "re", "ref"} {
		v := v
		d.Trigger(func() {
			atomic.AddInt32(&calls, 1)
			last.Store(v)
		})
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(120 * time.Millisecond)
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected 1 call, got %d", got)
	}
	if last.Load() != "ref" {
		t.Fatalf("expected last value, got %v", last.Load())
	}
}

func TestDebouncer_CancelAndFlush(t *testing.T) {
	t.Parallel()

	d := NewDebouncer(time.Hour)
	var calls int32
	fn := func() { atomic.AddInt32(&calls, 1) }

	if d.Cancel() {
		t.Fatalf("nothing pending, cancel must report false")
	}
	d.Trigger(fn)
	if !d.Cancel() {
		t.Fatalf("expected pending run to be cancelled")
	}

	d.Trigger(fn)
	if !d.Flush(fn) {
		t.Fatalf("expected flush to run pending work")
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected 1 call after flush, got %d", got)
	}
	if d.Flush(fn) {
		t.Fatalf("second flush must be a no-op")
	}
}
