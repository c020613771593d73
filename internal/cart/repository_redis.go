package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/luxtime/luxtime-backend/pkg/redis"
)

type kvStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
}

// RedisRepository stores encoded snapshots as redis strings with a sliding TTL.
// An empty cart is stored as an absent key.
type RedisRepository struct {
	store kvStore
	ttl   time.Duration
	now   func() time.Time
}

func NewRedisRepository(store kvStore, ttl time.Duration) *RedisRepository {
	return &RedisRepository{store: store, ttl: ttl, now: time.Now}
}

func (r *RedisRepository) Load(ctx context.Context, key string) (*State, error) {
	raw, err := r.store.Get(ctx, key)
	if err != nil {
		if redis.IsMiss(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	state, err := DecodeSnapshot(raw)
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (r *RedisRepository) Save(ctx context.Context, key string, state State) error {
	if state.IsEmpty() {
		if err := r.store.Del(ctx, key); err != nil {
			return fmt.Errorf("redis del %s: %w", key, err)
		}
		return nil
	}
	raw, err := EncodeSnapshot(state, r.now())
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, key, raw, r.ttl); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (r *RedisRepository) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}
