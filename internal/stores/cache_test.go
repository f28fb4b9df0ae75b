package stores

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"portfolio_web_echo/internal/apiclient"
	"portfolio_web_echo/internal/services"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
	)
}

func TestFetchOnceCallsLoaderOnce(t *testing.T) {
	cache := NewList[string]()
	var calls int32
	load := func(context.Context) ([]string, error) {
		atomic.AddInt32(&calls, 1)
		return []string{"a", "b"}, nil
	}

	first := cache.FetchOnce(context.Background(), load, "failed")
	second := cache.FetchOnce(context.Background(), func(context.Context) ([]string, error) {
		t.Error("loader called although the payload is present")
		assert.False(t, cache.IsLoading())
		return nil, nil
	}, "failed")

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, []string{"a", "b"}, first.Data)
	assert.Equal(t, first, second)
	assert.True(t, second.Ready())
	assert.False(t, cache.IsLoading())
}

func TestFetchOnceErrorThenSuccess(t *testing.T) {
	cache := NewObject[string]()
	value := "profile"
	fail := true
	load := func(context.Context) (*string, error) {
		if fail {
			return nil, &apiclient.Error{Message: apiclient.MsgNoResponse}
		}
		return &value, nil
	}

	state := cache.FetchOnce(context.Background(), load, "Failed to fetch.")
	assert.Equal(t, apiclient.MsgNoResponse, state.Err)
	assert.False(t, state.Loading)
	assert.False(t, cache.HasData())

	fail = false
	state = cache.FetchOnce(context.Background(), load, "Failed to fetch.")
	assert.Empty(t, state.Err)
	assert.False(t, state.Loading)
	require.NotNil(t, state.Data)
	assert.Equal(t, "profile", *state.Data)
}

func TestFetchOnceUsesFallbackMessage(t *testing.T) {
	cache := NewDictionary[string, string]()

	state := cache.FetchOnce(context.Background(), func(context.Context) (map[string]string, error) {
		return nil, &apiclient.Error{}
	}, "Failed to fetch site settings.")

	assert.Equal(t, "Failed to fetch site settings.", state.Err)
	assert.Equal(t, "Failed to fetch site settings.", cache.Err())
}

func TestFetchOnceSharesInFlightCall(t *testing.T) {
	cache := NewList[int]()
	release := make(chan struct{})
	var calls int32
	load := func(context.Context) ([]int, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return []int{1, 2, 3}, nil
	}

	var wg sync.WaitGroup
	results := make([]State[[]int], 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = cache.FetchOnce(context.Background(), load, "failed")
		}(i)
	}

	require.Eventually(t, cache.IsLoading, time.Second, time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for _, r := range results {
		assert.Equal(t, []int{1, 2, 3}, r.Data)
		assert.False(t, r.Loading)
	}
}

func TestFetchOnceSurvivesCallerCancellation(t *testing.T) {
	cache := NewList[int]()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	state := cache.FetchOnce(ctx, func(ctx context.Context) ([]int, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return []int{7}, nil
	}, "failed")

	assert.Equal(t, []int{7}, state.Data)
}

func TestLoadKeepsNewestResult(t *testing.T) {
	cache := NewObject[int]()
	slowStarted := make(chan struct{})
	releaseSlow := make(chan struct{})
	one, two := 1, 2

	done := make(chan State[*int])
	go func() {
		done <- cache.Load(context.Background(), func(context.Context) (*int, error) {
			close(slowStarted)
			<-releaseSlow
			return &one, nil
		}, "failed")
	}()
	<-slowStarted

	fast := cache.Load(context.Background(), func(context.Context) (*int, error) {
		return &two, nil
	}, "failed")
	close(releaseSlow)
	slow := <-done

	assert.Equal(t, 2, *fast.Data)
	assert.Equal(t, 1, *slow.Data)
	assert.Equal(t, 2, *cache.Data(), "an older response must not overwrite a newer one")
	assert.False(t, cache.IsLoading())
}

func TestLoadClearsDataBeforeFetching(t *testing.T) {
	cache := NewObject[int]()
	one := 1
	cache.Load(context.Background(), func(context.Context) (*int, error) { return &one, nil }, "failed")

	state := cache.Load(context.Background(), func(context.Context) (*int, error) {
		assert.Nil(t, cache.Data())
		assert.True(t, cache.IsLoading())
		return nil, errors.New("boom")
	}, "failed")

	assert.Nil(t, state.Data)
	assert.Equal(t, "boom", state.Err)
}

func TestMutateReturnsError(t *testing.T) {
	cache := NewList[int]()
	want := &apiclient.Error{Message: "Validation failed", StatusCode: 400}

	err := cache.Mutate(context.Background(), func(context.Context) error { return want }, "Failed to save.")

	assert.ErrorIs(t, err, want)
	assert.Equal(t, "Validation failed", cache.Err())
	assert.False(t, cache.IsLoading())

	require.NoError(t, cache.Mutate(context.Background(), func(context.Context) error { return nil }, "Failed to save."))
	assert.Empty(t, cache.Err())
}

func TestResetAllowsRefetch(t *testing.T) {
	cache := NewList[int]()
	var calls int
	load := func(context.Context) ([]int, error) {
		calls++
		return []int{calls}, nil
	}

	cache.FetchOnce(context.Background(), load, "failed")
	cache.Reset()
	state := cache.FetchOnce(context.Background(), load, "failed")

	assert.Equal(t, 2, calls)
	assert.Equal(t, []int{2}, state.Data)
}

type memoryKV struct {
	mu   sync.Mutex
	data map[string][]int
}

func (m *memoryKV) Get(_ context.Context, key string, dest interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return services.ErrCacheMiss
	}
	*(dest.(*[]int)) = v
	return nil
}

func (m *memoryKV) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value.([]int)
	return nil
}

func TestSharedLayer(t *testing.T) {
	kv := &memoryKV{data: map[string][]int{SharedKey("numbers"): {4, 5}}}
	var calls int
	load := func(context.Context) ([]int, error) {
		calls++
		return []int{1}, nil
	}

	warm := NewList[int](named([]Option{WithShared(kv, time.Minute)}, "numbers")...)
	state := warm.FetchOnce(context.Background(), load, "failed")
	assert.Equal(t, []int{4, 5}, state.Data)
	assert.Zero(t, calls)

	cold := NewList[int](named([]Option{WithShared(kv, time.Minute)}, "other")...)
	state = cold.FetchOnce(context.Background(), load, "failed")
	assert.Equal(t, []int{1}, state.Data)
	assert.Equal(t, 1, calls)
	assert.Equal(t, []int{1}, kv.data[SharedKey("other")])

	unnamed := NewList[int](WithShared(kv, time.Minute))
	unnamed.FetchOnce(context.Background(), load, "failed")
	assert.Equal(t, 2, calls)
}

func (m *memoryKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func TestInvalidateDropsSharedCopy(t *testing.T) {
	kv := &memoryKV{data: map[string][]int{SharedKey("numbers"): {4, 5}}}
	cache := NewList[int](named([]Option{WithShared(kv, time.Minute)}, "numbers")...)
	var calls int
	load := func(context.Context) ([]int, error) {
		calls++
		return []int{9}, nil
	}

	assert.Equal(t, []int{4, 5}, cache.FetchOnce(context.Background(), load, "failed").Data)

	cache.Invalidate(context.Background())
	assert.False(t, cache.HasData())
	assert.NotContains(t, kv.data, SharedKey("numbers"))

	assert.Equal(t, []int{9}, cache.FetchOnce(context.Background(), load, "failed").Data)
	assert.Equal(t, 1, calls)
}

func TestInvalidateDiscardsRunningFetch(t *testing.T) {
	kv := &memoryKV{data: map[string][]int{}}
	cache := NewList[int](named([]Option{WithShared(kv, time.Minute)}, "numbers")...)
	release := make(chan struct{})
	done := make(chan State[[]int])
	go func() {
		done <- cache.FetchOnce(context.Background(), func(context.Context) ([]int, error) {
			<-release
			return []int{1}, nil
		}, "failed")
	}()
	require.Eventually(t, cache.IsLoading, time.Second, time.Millisecond)

	cache.Invalidate(context.Background())
	close(release)
	<-done

	assert.False(t, cache.HasData())
	assert.NotContains(t, kv.data, SharedKey("numbers"))

	var calls int
	state := cache.FetchOnce(context.Background(), func(context.Context) ([]int, error) {
		calls++
		return []int{2}, nil
	}, "failed")
	assert.Equal(t, 1, calls)
	assert.Equal(t, []int{2}, state.Data)
}

func TestFetchAfterResetDoesNotJoinOldFlight(t *testing.T) {
	cache := NewList[int]()
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		cache.FetchOnce(context.Background(), func(context.Context) ([]int, error) {
			<-release
			return []int{1}, nil
		}, "failed")
	}()
	require.Eventually(t, cache.IsLoading, time.Second, time.Millisecond)

	cache.Reset()
	state := cache.FetchOnce(context.Background(), func(context.Context) ([]int, error) {
		return []int{2}, nil
	}, "failed")
	close(release)
	<-done

	assert.Equal(t, []int{2}, state.Data)
	assert.Equal(t, []int{2}, cache.Data())
}

func TestUpdateDiscardsRunningLoad(t *testing.T) {
	cache := NewList[int]()
	release := make(chan struct{})
	done := make(chan State[[]int])
	go func() {
		done <- cache.Load(context.Background(), func(context.Context) ([]int, error) {
			<-release
			return []int{1, 2, 3}, nil
		}, "failed")
	}()
	require.Eventually(t, cache.IsLoading, time.Second, time.Millisecond)

	cache.Update(func(ids []int) []int { return append(ids, 4) })
	close(release)
	state := <-done

	assert.Equal(t, []int{1, 2, 3}, state.Data)
	assert.Equal(t, []int{4}, cache.Data())
}
