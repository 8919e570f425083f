package schedule

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Debouncer runs the most recently triggered function once the triggers have
// been quiet for the configured delay. At most one run is in flight; a fire
// that arrives while a run is still executing is dropped.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	pending *Task
	stopped bool

	running atomic.Bool
	wg      sync.WaitGroup
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger cancels the pending run, if any, and schedules fn. It is a no-op
// after Stop.
func (d *Debouncer) Trigger(fn func(ctx context.Context)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.pending != nil {
		d.pending.Cancel()
	}

	d.wg.Add(1)
	task := After(d.delay, func(ctx context.Context) {
		if !d.running.CompareAndSwap(false, true) {
			return
		}
		defer d.running.Store(false)
		fn(ctx)
	})
	d.pending = task
	go func() {
		defer d.wg.Done()
		task.Wait()
	}()
}

// Cancel drops the pending run without stopping the debouncer.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending != nil {
		d.pending.Cancel()
		d.pending = nil
	}
}

// Pending reports whether a run is scheduled and has not finished.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending == nil {
		return false
	}
	select {
	case <-d.pending.Done():
		return false
	default:
		return true
	}
}

// Stop cancels pending work and waits for a running function to return.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	d.stopped = true
	if d.pending != nil {
		d.pending.Cancel()
		d.pending = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}
