package cacherepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Repository is a small JSON read-through cache for query views.
type Repository struct {
	rdb redis.UniversalClient
}

func New(rdb redis.UniversalClient) *Repository {
	return &Repository{rdb: rdb}
}

// Get unmarshals the cached value into dest. Returns false on a miss.
// Cache errors are logged and reported as misses so reads fall through to
// the store.
func (r *Repository) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		zap.L().Warn("cache read failed", zap.String("key", key), zap.Error(err))
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Repository) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := r.rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		zap.L().Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
	return nil
}
