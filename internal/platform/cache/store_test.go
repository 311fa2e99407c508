package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_SetGetDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)

	if _, ok := store.Get(ctx, "divisions"); ok {
		t.Fatal("expected miss on empty store")
	}

	store.Set(ctx, "divisions", []string{"u17", "senior"})
	value, ok := store.Get(ctx, "divisions")
	if !ok {
		t.Fatal("expected hit after set")
	}
	if items := value.([]string); len(items) != 2 {
		t.Fatalf("unexpected cached value: %v", items)
	}

	store.Delete(ctx, "divisions")
	if _, ok := store.Get(ctx, "divisions"); ok {
		t.Fatal("expected miss after delete")
	}
}

func TestStore_GetOrLoad_CollapsesConcurrentLoads(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)

	var loads int32
	const workers = 10
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			_, err := store.GetOrLoad(ctx, "divisions", func(context.Context) (any, error) {
				atomic.AddInt32(&loads, 1)
				time.Sleep(10 * time.Millisecond)
				return "loaded", nil
			})
			if err != nil {
				t.Errorf("get or load failed: %v", err)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&loads); got != 1 {
		t.Fatalf("expected one loader call, got %d", got)
	}
}

func TestStore_GetOrLoad_LoaderErrorNotCached(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)
	boom := errors.New("boom")

	if _, err := store.GetOrLoad(ctx, "k", func(context.Context) (any, error) {
		return nil, boom
	}); !errors.Is(err, boom) {
		t.Fatalf("expected loader error, got %v", err)
	}

	value, err := store.GetOrLoad(ctx, "k", func(context.Context) (any, error) {
		return "recovered", nil
	})
	if err != nil {
		t.Fatalf("second load failed: %v", err)
	}
	if value != "recovered" {
		t.Fatalf("unexpected value: %v", value)
	}
}
