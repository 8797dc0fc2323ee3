package localstore

import (
	"context"
	"errors"
	"time"

	vgcerr "github.com/KirkDiggler/vgc-companion/internal/errors"
	"github.com/redis/go-redis/v9"
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient

	// Namespace separates profiles sharing one Redis (default "vgc:local")
	Namespace string
}

type redisRepo struct {
	client    redis.UniversalClient
	namespace string
}

// NewRedisRepository creates a Redis-backed local store
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	ns := cfg.Namespace
	if ns == "" {
		ns = "vgc:local"
	}

	return &redisRepo{
		client:    cfg.Client,
		namespace: ns,
	}
}

func (r *redisRepo) key(key string) string {
	return r.namespace + ":" + key
}

func (r *redisRepo) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, vgcerr.InvalidArgument("key is required")
	}

	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, vgcerr.NotFoundf("key '%s' not found", key).WithMeta("key", key)
		}
		return nil, vgcerr.WrapWithCode(err, vgcerr.CodeUnavailable, "failed to read from redis").
			WithMeta("key", key)
	}
	return data, nil
}

func (r *redisRepo) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return vgcerr.InvalidArgument("key is required")
	}

	if err := r.client.Set(ctx, r.key(key), value, ttl).Err(); err != nil {
		return vgcerr.WrapWithCode(err, vgcerr.CodeUnavailable, "failed to write to redis").
			WithMeta("key", key)
	}
	return nil
}

func (r *redisRepo) Delete(ctx context.Context, key string) error {
	if key == "" {
		return vgcerr.InvalidArgument("key is required")
	}

	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return vgcerr.WrapWithCode(err, vgcerr.CodeUnavailable, "failed to delete from redis").
			WithMeta("key", key)
	}
	return nil
}

// NewRedis creates a Redis-backed local store with the default namespace
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}
