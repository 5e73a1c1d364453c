package gui

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestRenderRunner_OneRenderAtATime(t *testing.T) {
	var r renderRunner
	var active, maxActive int32
	var cancelled int32

	firstStarted := make(chan struct{})
	var ran sync.WaitGroup
	ran.Add(2)

	track := func() func() {
		n := atomic.AddInt32(&active, 1)
		for {
			m := atomic.LoadInt32(&maxActive)
			if n <= m || atomic.CompareAndSwapInt32(&maxActive, m, n) {
				break
			}
		}
		return func() { atomic.AddInt32(&active, -1) }
	}

	r.start(context.Background(), func(ctx context.Context, seq int) {
		defer ran.Done()
		defer track()()
		close(firstStarted)
		select {
		case <-ctx.Done():
			atomic.AddInt32(&cancelled, 1)
		case <-time.After(5 * time.Second):
		}
	})

	<-firstStarted
	second := r.start(context.Background(), func(ctx context.Context, seq int) {
		defer ran.Done()
		defer track()()
		time.Sleep(10 * time.Millisecond)
	})

	ran.Wait()
	r.stop()

	if atomic.LoadInt32(&cancelled) != 1 {
		t.Error("Expected the first render to be cancelled by the second")
	}
	if got := atomic.LoadInt32(&maxActive); got != 1 {
		t.Errorf("Expected at most 1 render in flight, got %d", got)
	}
	if !r.current(second) {
		t.Error("Expected the second render to be current")
	}
	if r.current(second - 1) {
		t.Error("Expected the first render to be stale")
	}
}

func TestRenderRunner_SupersededWhileWaitingIsSkipped(t *testing.T) {
	var r renderRunner
	var calls int32

	release := make(chan struct{})
	started := make(chan struct{})
	r.start(context.Background(), func(ctx context.Context, seq int) {
		close(started)
		<-release
		atomic.AddInt32(&calls, 1)
	})
	<-started

	// Queued behind the first, then replaced before it can run
	r.start(context.Background(), func(ctx context.Context, seq int) {
		atomic.AddInt32(&calls, 100)
	})
	r.start(context.Background(), func(ctx context.Context, seq int) {
		atomic.AddInt32(&calls, 10)
	})

	close(release)
	r.stop()

	if got := atomic.LoadInt32(&calls); got != 11 {
		t.Errorf("Expected first and last render only (11), got %d", got)
	}
}

func TestRenderRunner_StopCancels(t *testing.T) {
	var r renderRunner
	started := make(chan struct{})
	var sawCancel int32

	r.start(context.Background(), func(ctx context.Context, seq int) {
		close(started)
		<-ctx.Done()
		atomic.StoreInt32(&sawCancel, 1)
	})
	<-started
	r.stop()

	if atomic.LoadInt32(&sawCancel) != 1 {
		t.Error("Expected stop to cancel the running render")
	}
}

func TestRenderRunner_StopWithoutRenders(t *testing.T) {
	var r renderRunner
	r.stop()
}
