// Package mainloop provides the single logical thread that runs page entry points.
package mainloop

import (
	"context"
	"errors"
	"sync"
)

// ErrLoopClosed is returned when work is posted to a stopped loop.
var ErrLoopClosed = errors.New("main loop closed")

// Loop runs posted tasks one at a time, in order, on a single goroutine.
// Each task runs to completion before the next starts. Hosts without their
// own main loop (headless, simulator) use it in place of the GTK loop.
type Loop struct {
	mu     sync.Mutex
	queue  []func()
	wake   chan struct{}
	done   chan struct{}
	closed bool
}

// NewLoop creates a stopped loop; call Run to start dispatching.
func NewLoop() *Loop {
	return &Loop{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// Post queues fn. It never blocks, including when called from a task.
// Returns false when the loop is closed.
func (l *Loop) Post(fn func()) bool {
	if fn == nil {
		return false
	}

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return false
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

// Do posts fn and waits for it to finish. It must not be called from a task.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	if !l.Post(func() {
		defer close(finished)
		fn()
	}) {
		return ErrLoopClosed
	}

	select {
	case <-finished:
		return nil
	case <-l.done:
		return ErrLoopClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Finish runs fn exactly once: on the loop while it is dispatching, or on
// the caller once the loop has stopped. It must not be called from a task.
func (l *Loop) Finish(fn func()) {
	var once sync.Once
	run := func() { once.Do(fn) }
	if err := l.Do(context.Background(), run); err != nil {
		run()
	}
}

// Run dispatches tasks until ctx is cancelled or Close is called.
// Tasks still queued at that point are dropped.
func (l *Loop) Run(ctx context.Context) {
	defer l.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case <-l.done:
			return
		case <-l.wake:
		}

		for {
			fn, ok := l.next()
			if !ok {
				break
			}
			fn()
		}
	}
}

func (l *Loop) next() (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed || len(l.queue) == 0 {
		return nil, false
	}
	fn := l.queue[0]
	l.queue[0] = nil
	l.queue = l.queue[1:]
	return fn, true
}

// Close stops the loop. Safe to call more than once.
func (l *Loop) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	l.queue = nil
	close(l.done)
}
