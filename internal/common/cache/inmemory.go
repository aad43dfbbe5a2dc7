package cache

import (
	"context"
	"sync"
	"time"
)

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

func (e entry[T]) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

type InMemoryOption func(*inMemoryOptions)

type inMemoryOptions struct {
	now           func() time.Time
	sweepInterval time.Duration
}

// WithSweepInterval sets how often expired entries are purged.
func WithSweepInterval(d time.Duration) InMemoryOption {
	return func(o *inMemoryOptions) { o.sweepInterval = d }
}

// WithNow replaces the clock, tests only.
func WithNow(now func() time.Time) InMemoryOption {
	return func(o *inMemoryOptions) { o.now = now }
}

// InMemoryClient is a process local Client. Values are stored as is, callers
// must not mutate what they put in.
type InMemoryClient[T any] struct {
	mu      sync.RWMutex
	entries map[string]entry[T]
	now     func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

var _ Client[string] = (*InMemoryClient[string])(nil)

func NewInMemoryClient[T any](opts ...InMemoryOption) *InMemoryClient[T] {
	o := inMemoryOptions{now: time.Now, sweepInterval: time.Minute}
	for _, opt := range opts {
		opt(&o)
	}

	c := &InMemoryClient[T]{
		entries: make(map[string]entry[T]),
		now:     o.now,
		stop:    make(chan struct{}),
	}
	if o.sweepInterval > 0 {
		go c.sweepLoop(o.sweepInterval)
	}

	return c
}

func (c *InMemoryClient[T]) Get(_ context.Context, key string) (T, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || e.expired(c.now()) {
		var zero T
		return zero, ErrMiss
	}

	return e.value, nil
}

func (c *InMemoryClient[T]) Set(_ context.Context, key string, value T, ttl time.Duration) error {
	e := entry[T]{value: value}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}

	c.mu.Lock()
	c.entries[key] = e
	c.mu.Unlock()

	return nil
}

func (c *InMemoryClient[T]) Delete(_ context.Context, key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// GetOrSet returns the cached value or loads, stores and returns a fresh one.
// Load errors are returned as is and nothing is stored.
func (c *InMemoryClient[T]) GetOrSet(ctx context.Context, opts GetOrSetOpts[T]) (T, error) {
	if v, err := c.Get(ctx, opts.Key); err == nil {
		return v, nil
	}

	var zero T
	if opts.Load == nil {
		return zero, ErrLoaderMissing
	}

	v, err := opts.Load(ctx)
	if err != nil {
		return zero, err
	}

	if err = c.Set(ctx, opts.Key, v, opts.TTL); err != nil {
		return zero, err
	}

	return v, nil
}

// Len counts entries including expired ones not swept yet.
func (c *InMemoryClient[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *InMemoryClient[T]) sweep() {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()
	for k, e := range c.entries {
		if e.expired(now) {
			delete(c.entries, k)
		}
	}
}

func (c *InMemoryClient[T]) sweepLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.sweep()
		case <-c.stop:
			return
		}
	}
}

// Close stops the sweeper. Safe to call more than once.
func (c *InMemoryClient[T]) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}
