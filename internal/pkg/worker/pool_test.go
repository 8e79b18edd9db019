package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"aquafarm.io/steward/internal/pkg/logger"
)

func newTestPools(t *testing.T) *Pools {
	t.Helper()
	_ = logger.Init("error", "json")

	pools, err := NewPools(context.Background(), PoolConfig{
		GeneralPoolSize: 4,
		QueryPoolSize:   2,
	})
	if err != nil {
		t.Fatalf("NewPools: %v", err)
	}
	t.Cleanup(pools.Shutdown)
	return pools
}

func TestSubmitRunsTask(t *testing.T) {
	pools := newTestPools(t)

	var ran atomic.Bool
	var wg sync.WaitGroup
	wg.Add(1)

	err := pools.Query.Submit(context.Background(), func(ctx context.Context) {
		ran.Store(true)
		wg.Done()
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	wg.Wait()
	if !ran.Load() {
		t.Fatal("task did not run")
	}
}

func TestSubmitRejectsCancelledContext(t *testing.T) {
	pools := newTestPools(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pools.General.Submit(ctx, func(ctx context.Context) {
		t.Error("task must not run with cancelled context")
	})
	if err == nil {
		t.Fatal("expected ctx.Err(), got nil")
	}
}

func TestSubmitRunsTaskCancelledWhileQueued(t *testing.T) {
	_ = logger.Init("error", "json")
	pools, err := NewPools(context.Background(), PoolConfig{
		GeneralPoolSize: 1,
		QueryPoolSize:   1,
	})
	if err != nil {
		t.Fatalf("NewPools: %v", err)
	}
	t.Cleanup(pools.Shutdown)

	// Occupy the single worker so the next Submit blocks waiting for it.
	block := make(chan struct{})
	occupied := make(chan struct{})
	if err := pools.Query.Submit(context.Background(), func(ctx context.Context) {
		close(occupied)
		<-block
	}); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	<-occupied

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		submitErr := pools.Query.Submit(ctx, func(ctx context.Context) {
			done <- ctx.Err()
		})
		if submitErr != nil {
			done <- submitErr
		}
	}()

	// Cancel while the task is still queued, then free the worker. Once
	// Submit accepts a task it must run it, cancelled or not, so anything
	// waiting on a signal inside the task is released.
	time.Sleep(50 * time.Millisecond)
	cancel()
	close(block)

	select {
	case err := <-done:
		if err == nil {
			t.Fatal("queued task must observe the cancelled context")
		}
	case <-time.After(3 * time.Second):
		t.Fatal("completion signal never fired for queued task")
	}
}

func TestSubmitDetachedSkipsAfterShutdown(t *testing.T) {
	_ = logger.Init("error", "json")
	pools, err := NewPools(context.Background(), DefaultPoolConfig())
	if err != nil {
		t.Fatalf("NewPools: %v", err)
	}
	pools.Shutdown()

	// Submitting after shutdown either errors or the task observes the
	// cancelled service context and skips; it must never run the body.
	_ = pools.SubmitDetached(func(ctx context.Context) {
		select {
		case <-ctx.Done():
		case <-time.After(time.Second):
			t.Error("detached task ran with live context after shutdown")
		}
	})
}

func TestMetrics(t *testing.T) {
	pools := newTestPools(t)
	m := pools.Metrics()
	if _, ok := m["general"]; !ok {
		t.Fatal("missing general pool metrics")
	}
	if _, ok := m["query"]; !ok {
		t.Fatal("missing query pool metrics")
	}
}
