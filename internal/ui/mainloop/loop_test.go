package mainloop

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startLoop(t *testing.T) (*Loop, context.Context) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	l := NewLoop()
	go l.Run(ctx)
	t.Cleanup(func() {
		l.Close()
		cancel()
	})
	return l, ctx
}

func TestLoopRunsTasksInOrder(t *testing.T) {
	l, ctx := startLoop(t)

	var got []int
	for i := 0; i < 50; i++ {
		v := i
		require.True(t, l.Post(func() { got = append(got, v) }))
	}
	require.NoError(t, l.Do(ctx, func() {}))

	require.Len(t, got, 50)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestLoopSerializesConcurrentPosters(t *testing.T) {
	l, ctx := startLoop(t)

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = l.Do(ctx, func() { counter++ })
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 800, counter)
}

func TestLoopPostFromTask(t *testing.T) {
	l, ctx := startLoop(t)

	done := make(chan struct{})
	l.Post(func() {
		l.Post(func() { close(done) })
	})

	select {
	case <-done:
	case <-ctx.Done():
		t.Fatal("nested post never ran")
	}
}

func TestLoopClosed(t *testing.T) {
	l := NewLoop()
	l.Close()
	l.Close()

	assert.False(t, l.Post(func() {}))
	assert.ErrorIs(t, l.Do(context.Background(), func() {}), ErrLoopClosed)
}

func TestLoopFinishOnRunningLoop(t *testing.T) {
	l, _ := startLoop(t)

	calls := 0
	l.Finish(func() { calls++ })
	assert.Equal(t, 1, calls)
}

func TestLoopFinishAfterContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	l := NewLoop()
	stopped := make(chan struct{})
	go func() {
		l.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	calls := 0
	l.Finish(func() { calls++ })
	assert.Equal(t, 1, calls, "runs on the caller once the loop is gone")
}
