package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sellerdesk/go-fin-ledger/internal/common"
)

// CacheRepository backs the idempotency lock and replayed responses.
type CacheRepository interface {
	SetIfNotExists(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
}

type cacheClient struct {
	redis *redis.Client
}

func NewCacheRepository(rdb *redis.Client) CacheRepository {
	return &cacheClient{redis: rdb}
}

func (cc *cacheClient) SetIfNotExists(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error) {
	return cc.redis.SetNX(ctx, key, value, ttl).Result()
}

func (cc *cacheClient) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return cc.redis.Set(ctx, key, value, ttl).Err()
}

// Get returns common.ErrDataNotFound for a missing key.
func (cc *cacheClient) Get(ctx context.Context, key string) (string, error) {
	val, err := cc.redis.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", common.ErrDataNotFound
	}
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(val), nil
}

func (cc *cacheClient) Del(ctx context.Context, keys ...string) error {
	return cc.redis.Del(ctx, keys...).Err()
}

func (cc *cacheClient) Ping(ctx context.Context) error {
	return cc.redis.Ping(ctx).Err()
}
