package cache

import (
	"context"
	"errors"
	"time"
)

type Client[T any] interface {
	Get(ctx context.Context, key string) (T, error)
	Set(ctx context.Context, key string, value T, ttl time.Duration) error
	Delete(ctx context.Context, key string)
	GetOrSet(ctx context.Context, opts GetOrSetOpts[T]) (T, error)
}

var (
	ErrMiss          = errors.New("cache miss")
	ErrLoaderMissing = errors.New("cache loader not provided")
)

// GetOrSetOpts describes a read-through lookup. TTL <= 0 keeps the entry
// until it is deleted.
type GetOrSetOpts[T any] struct {
	Key  string
	TTL  time.Duration
	Load func(ctx context.Context) (T, error)
}
