package cache

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncMapStoreExpiry(t *testing.T) {
	t.Parallel()

	store := NewSyncMapStore()
	ctx := context.Background()

	store.Set(ctx, "k", []byte(`"v"`), time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	_, ok := store.Get(ctx, "k")
	assert.False(t, ok, "expired entry must be evicted lazily")
}

func TestFetchPopulatesBothTiers(t *testing.T) {
	t.Parallel()

	mem := NewSyncMapStore()
	disk := NewFileDiskStore(t.TempDir())
	store := NewStore(mem, disk)
	ctx := context.Background()

	var calls int32
	fn := func(context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		return "fetched-value", nil
	}

	v, err := Fetch(ctx, store, "apple", "swiftui", time.Hour, fn)
	require.NoError(t, err)
	assert.Equal(t, "fetched-value", v)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))

	// A second in-process fetch should be served from memory, not upstream.
	v2, err := Fetch(ctx, store, "apple", "swiftui", time.Hour, fn)
	require.NoError(t, err)
	assert.Equal(t, "fetched-value", v2)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))

	// Clearing the memory tier should still hit disk, not upstream.
	mem.Delete(ctx, "apple/swiftui")
	v3, err := Fetch(ctx, store, "apple", "swiftui", time.Hour, fn)
	require.NoError(t, err)
	assert.Equal(t, "fetched-value", v3)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestFetchCoalescesConcurrentMisses(t *testing.T) {
	t.Parallel()

	store := NewStore(NewSyncMapStore(), nil)
	ctx := context.Background()

	var calls int32
	release := make(chan struct{})
	fn := func(context.Context) (int, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return 42, nil
	}

	const n = 10
	results := make(chan int, n)
	for i := 0; i < n; i++ {
		go func() {
			v, err := Fetch(ctx, store, "rust", "tokio", time.Minute, fn)
			require.NoError(t, err)
			results <- v
		}()
	}

	time.Sleep(10 * time.Millisecond)
	close(release)

	for i := 0; i < n; i++ {
		assert.Equal(t, 42, <-results)
	}
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls), "concurrent misses for the same key must coalesce into one fetch")
}

func TestFileDiskStoreMissIsErrMiss(t *testing.T) {
	t.Parallel()

	disk := NewFileDiskStore(t.TempDir())
	_, err := disk.Read(context.Background(), "apple", "missing.json")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestFileDiskStoreRoundTrip(t *testing.T) {
	t.Parallel()

	disk := NewFileDiskStore(t.TempDir())
	ctx := context.Background()

	require.NoError(t, disk.Write(ctx, "apple", "swiftui.json", []byte(`{"hello":"world"}`)))

	data, err := disk.Read(ctx, "apple", "swiftui.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"hello":"world"}`, string(data))
}
