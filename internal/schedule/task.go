// Package schedule provides a cancellable delayed task and a debouncer built
// on it. The compose flow uses the debouncer to classify an entry once the
// user stops typing.
package schedule

import (
	"context"
	"sync"
	"time"
)

// Task is a function scheduled to run once after a delay.
type Task struct {
	timer  *time.Timer
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// After schedules fn to run after d on its own goroutine. The context passed
// to fn is cancelled when the task is cancelled.
func After(d time.Duration, fn func(ctx context.Context)) *Task {
	ctx, cancel := context.WithCancel(context.Background())
	t := &Task{cancel: cancel, done: make(chan struct{})}
	t.timer = time.AfterFunc(d, func() {
		defer t.finish()
		if ctx.Err() != nil {
			return
		}
		fn(ctx)
	})
	return t
}

func (t *Task) finish() {
	t.once.Do(func() {
		t.cancel()
		close(t.done)
	})
}

// Cancel stops the task. If fn has not started it never will; if it is
// running its context is cancelled. Cancel reports whether it prevented fn
// from starting.
func (t *Task) Cancel() bool {
	stopped := t.timer.Stop()
	t.cancel()
	if stopped {
		t.finish()
	}
	return stopped
}

// Done is closed once the task has run or was cancelled before running.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until Done is closed.
func (t *Task) Wait() {
	<-t.done
}
