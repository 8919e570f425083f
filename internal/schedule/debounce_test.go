package schedule

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestDebouncer_RapidTriggersRunOnce(t *testing.T) {
	defer goleak.VerifyNone(t)

	d := NewDebouncer(30 * time.Millisecond)
	defer d.Stop()

	var runs, last atomic.Int32
	for i := 1; i <= 10; i++ {
		i := int32(i)
		d.Trigger(func(context.Context) {
			runs.Add(1)
			last.Store(i)
		})
		time.Sleep(2 * time.Millisecond)
	}

	require.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	assert.EqualValues(t, 1, runs.Load())
	assert.EqualValues(t, 10, last.Load(), "the last trigger wins")
	assert.False(t, d.Pending())
}

func TestDebouncer_SpacedTriggersRunEach(t *testing.T) {
	defer goleak.VerifyNone(t)

	d := NewDebouncer(5 * time.Millisecond)
	defer d.Stop()

	var runs atomic.Int32
	for i := 0; i < 3; i++ {
		d.Trigger(func(context.Context) { runs.Add(1) })
		want := int32(i + 1)
		require.Eventually(t, func() bool { return runs.Load() == want }, time.Second, time.Millisecond)
	}
}

func TestDebouncer_SkipsWhileRunning(t *testing.T) {
	defer goleak.VerifyNone(t)

	d := NewDebouncer(time.Millisecond)

	release := make(chan struct{})
	started := make(chan struct{})
	var runs atomic.Int32

	d.Trigger(func(context.Context) {
		runs.Add(1)
		close(started)
		<-release
	})
	<-started

	var second atomic.Bool
	d.Trigger(func(context.Context) { second.Store(true) })
	require.Eventually(t, func() bool { return !d.Pending() }, time.Second, time.Millisecond)

	close(release)
	d.Stop()

	assert.EqualValues(t, 1, runs.Load())
	assert.False(t, second.Load())
}

func TestDebouncer_CancelAndStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	d := NewDebouncer(time.Hour)
	var ran atomic.Bool

	d.Trigger(func(context.Context) { ran.Store(true) })
	assert.True(t, d.Pending())
	d.Cancel()
	assert.False(t, d.Pending())

	d.Trigger(func(context.Context) { ran.Store(true) })
	d.Stop()
	d.Trigger(func(context.Context) { ran.Store(true) })

	assert.False(t, d.Pending())
	assert.False(t, ran.Load())
}

func TestDebouncer_StopWaitsForRunningFn(t *testing.T) {
	defer goleak.VerifyNone(t)

	d := NewDebouncer(time.Millisecond)
	started := make(chan struct{})
	var finished atomic.Bool

	d.Trigger(func(ctx context.Context) {
		close(started)
		<-ctx.Done()
		time.Sleep(10 * time.Millisecond)
		finished.Store(true)
	})
	<-started

	d.Stop()
	assert.True(t, finished.Load())
}
