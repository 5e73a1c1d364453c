package gui

import (
	"context"
	"sync"
)

// renderRunner runs at most one render at a time. Starting a render cancels
// the previous one and waits for it to return before the new one begins.
type renderRunner struct {
	mu     sync.Mutex
	seq    int
	cancel context.CancelFunc
	done   chan struct{}
}

// start schedules fn with a context derived from parent and returns its
// sequence number. fn is skipped if it is superseded while waiting.
func (r *renderRunner) start(parent context.Context, fn func(ctx context.Context, seq int)) int {
	ctx, cancel := context.WithCancel(parent)
	done := make(chan struct{})

	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	prev := r.done
	r.seq++
	seq := r.seq
	r.cancel = cancel
	r.done = done
	r.mu.Unlock()

	go func() {
		defer close(done)
		defer cancel()

		if prev != nil {
			<-prev
		}
		if ctx.Err() != nil {
			return
		}
		fn(ctx, seq)
	}()

	return seq
}

// current reports whether seq is the newest render
func (r *renderRunner) current(seq int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return seq == r.seq
}

// stop cancels the newest render and waits for it, and so for all earlier
// ones, to return
func (r *renderRunner) stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}
