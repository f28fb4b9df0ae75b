// Package stores holds the fetched state of every backend resource.
//
// Each store wraps one resource client with a Cache: the first successful fetch is
// kept for the life of the process (fetch-once, no TTL), failures are recorded as a
// message in the error slot and mutating calls hand their error back to the caller.
package stores

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"portfolio_web_echo/internal/apiclient"
	"portfolio_web_echo/internal/services"
)

// Loader fetches a resource's payload
type Loader[T any] func(ctx context.Context) (T, error)

// State is a point-in-time copy of a Cache. Data must be treated as read-only.
type State[T any] struct {
	Data    T
	Loading bool
	Err     string
}

// Ready reports a finished fetch without error
func (s State[T]) Ready() bool {
	return !s.Loading && s.Err == ""
}

// Option configures a Cache
type Option func(*options)

type options struct {
	logger    *zap.Logger
	shared    services.KeyValueCache
	sharedKey string
	sharedTTL time.Duration
}

// WithLogger sets the logger fetch failures are reported to
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithShared makes FetchOnce read through a shared key/value cache (Redis) before
// calling the backend, so several server processes reuse one fetch. Only caches that
// a store has given a name use it.
func WithShared(cache services.KeyValueCache, ttl time.Duration) Option {
	return func(o *options) {
		o.shared = cache
		o.sharedTTL = ttl
	}
}

// named returns opts plus the shared cache key of one store's cache
func named(opts []Option, name string) []Option {
	out := make([]Option, 0, len(opts)+1)
	out = append(out, opts...)
	return append(out, func(o *options) {
		o.sharedKey = SharedKey(name)
	})
}

// SharedKey is the key a store's payload is kept under in the shared cache.
// The worker writes to the same keys.
func SharedKey(name string) string {
	return "store:" + name
}

// Cache is a fetch-once holder for one payload plus its loading and error state.
// It is safe for concurrent use; overlapping fetches share a single backend call.
type Cache[T any] struct {
	mu       sync.Mutex
	data     T
	inflight int
	err      string
	gen      uint64

	hasData func(T) bool
	group   singleflight.Group
	options
}

// New creates an empty Cache. hasData decides when the payload counts as loaded.
func New[T any](hasData func(T) bool, opts ...Option) *Cache[T] {
	c := &Cache[T]{hasData: hasData}
	c.logger = zap.NewNop()
	for _, opt := range opts {
		opt(&c.options)
	}
	return c
}

// NewList creates a Cache whose payload is loaded once the list is non-empty
func NewList[E any](opts ...Option) *Cache[[]E] {
	return New(func(v []E) bool { return len(v) > 0 }, opts...)
}

// NewObject creates a Cache whose payload is loaded once it is non-nil
func NewObject[E any](opts ...Option) *Cache[*E] {
	return New(func(v *E) bool { return v != nil }, opts...)
}

// NewDictionary creates a Cache whose payload is loaded once the map is non-empty
func NewDictionary[K comparable, V any](opts ...Option) *Cache[map[K]V] {
	return New(func(v map[K]V) bool { return len(v) > 0 }, opts...)
}

// FetchOnce calls load unless the payload is already present. On failure the error
// slot gets the normalized message, or fallback when there is none. Callers that
// arrive while a fetch is running wait for it instead of starting another.
func (c *Cache[T]) FetchOnce(ctx context.Context, load Loader[T], fallback string) State[T] {
	if c.HasData() {
		return c.Snapshot()
	}

	// The flight outlives the caller that started it, so it must not inherit its cancellation
	flightCtx := context.WithoutCancel(ctx)
	c.group.Do("fetch", func() (interface{}, error) {
		if c.HasData() {
			return nil, nil
		}
		gen := c.begin()
		data, err := c.read(flightCtx, load)
		c.mu.Lock()
		c.inflight--
		stale := gen != c.gen
		if err != nil {
			if !stale {
				c.err = apiclient.Message(err, fallback)
				c.logger.Warn("fetch failed", zap.String("error", c.err))
			}
			c.mu.Unlock()
			return nil, nil
		}
		if !stale {
			c.data = data
		}
		c.mu.Unlock()

		// A reset happened mid-flight, so whatever the read wrote to the shared cache is stale too
		if stale {
			c.dropShared(flightCtx)
		}
		return nil, nil
	})

	return c.Snapshot()
}

// Load always calls load, clearing the payload first. A result that arrives after a
// newer Load started is returned to its caller but not stored.
func (c *Cache[T]) Load(ctx context.Context, load Loader[T], fallback string) State[T] {
	var zero T

	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.data = zero
	c.err = ""
	c.inflight++
	c.mu.Unlock()

	data, err := load(ctx)
	result := State[T]{Data: data}
	if err != nil {
		result = State[T]{Err: apiclient.Message(err, fallback)}
		c.logger.Warn("load failed", zap.String("error", result.Err))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight--
	if gen == c.gen {
		c.data = result.Data
		c.err = result.Err
	}
	return result
}

// Mutate runs op while tracking loading and error, and returns op's error to the caller
func (c *Cache[T]) Mutate(ctx context.Context, op func(ctx context.Context) error, fallback string) error {
	c.begin()
	err := op(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight--
	if err != nil {
		c.err = apiclient.Message(err, fallback)
		return err
	}
	return nil
}

// Update replaces the payload with fn applied to it. Fetches already running when
// Update is called no longer store their result.
func (c *Cache[T]) Update(fn func(T) T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.data = fn(c.data)
}

// Snapshot returns the current state
func (c *Cache[T]) Snapshot() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State[T]{Data: c.data, Loading: c.inflight > 0, Err: c.err}
}

// Data returns the current payload
func (c *Cache[T]) Data() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data
}

func (c *Cache[T]) IsLoading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inflight > 0
}

// Err returns the last failure message, or "" when there is none
func (c *Cache[T]) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *Cache[T]) HasData() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hasData(c.data)
}

// Reset drops the payload and error so the next FetchOnce goes to the backend again.
// A fetch still running when Reset is called does not store its result.
func (c *Cache[T]) Reset() {
	var zero T
	c.mu.Lock()
	c.gen++
	c.data = zero
	c.err = ""
	c.mu.Unlock()
	c.group.Forget("fetch")
}

// deleter is implemented by shared caches that can drop a key, like services.RedisCache
type deleter interface {
	Delete(ctx context.Context, key string) error
}

// Invalidate resets the cache and also drops its shared copy when the shared cache
// supports deletes
func (c *Cache[T]) Invalidate(ctx context.Context) {
	c.Reset()
	c.dropShared(ctx)
}

func (c *Cache[T]) dropShared(ctx context.Context) {
	d, ok := c.shared.(deleter)
	if !ok || c.sharedKey == "" {
		return
	}
	if err := d.Delete(ctx, c.sharedKey); err != nil {
		c.logger.Warn("failed to drop shared payload", zap.String("key", c.sharedKey), zap.Error(err))
	}
}

// begin marks a call in flight and returns the generation it started in
func (c *Cache[T]) begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight++
	c.err = ""
	return c.gen
}

func (c *Cache[T]) read(ctx context.Context, load Loader[T]) (T, error) {
	if c.shared == nil || c.sharedKey == "" {
		return load(ctx)
	}
	return services.GetOrSet[T](ctx, c.shared, c.sharedKey, c.sharedTTL, load)
}
