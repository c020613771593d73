package cart

import (
	"context"

	"github.com/luxtime/luxtime-backend/pkg/logger"
	"go.uber.org/multierr"
)

// TieredRepository reads through a cache in front of a durable store. Cache
// failures on read fall through to the durable store; a durable hit is written
// back to the cache. Save writes both tiers and reports every failure.
type TieredRepository struct {
	cache   Repository
	durable Repository
	logg    *logger.Logger
}

func NewTieredRepository(cache, durable Repository, logg *logger.Logger) *TieredRepository {
	return &TieredRepository{cache: cache, durable: durable, logg: logg}
}

func (r *TieredRepository) Load(ctx context.Context, key string) (*State, error) {
	state, err := r.cache.Load(ctx, key)
	if err == nil && state != nil {
		return state, nil
	}
	if err != nil {
		r.logg.Warn(r.logg.WithFields(ctx, map[string]any{"cart_key": key, "error": err.Error()}), "cart cache read failed")
	}

	state, err = r.durable.Load(ctx, key)
	if err != nil || state == nil {
		return state, err
	}
	if err := r.cache.Save(ctx, key, *state); err != nil {
		r.logg.Warn(r.logg.WithFields(ctx, map[string]any{"cart_key": key, "error": err.Error()}), "cart cache backfill failed")
	}
	return state, nil
}

func (r *TieredRepository) Save(ctx context.Context, key string, state State) error {
	return multierr.Combine(
		r.durable.Save(ctx, key, state),
		r.cache.Save(ctx, key, state),
	)
}

func (r *TieredRepository) Ping(ctx context.Context) error {
	var err error
	for _, tier := range []Repository{r.cache, r.durable} {
		if p, ok := tier.(Pinger); ok {
			err = multierr.Append(err, p.Ping(ctx))
		}
	}
	return err
}
