package dialogrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/doculuna/wallet/internal/domain"
	"go.uber.org/zap"
)

const keyPrefix = "wallet:dialog:"

// Repository keeps withdrawal dialogue state in Redis. The key TTL doubles
// as the dialogue timeout: an untouched dialogue simply expires and the next
// access observes no state.
type Repository struct {
	rdb redis.UniversalClient
	ttl time.Duration
}

func New(rdb redis.UniversalClient, ttl time.Duration) *Repository {
	return &Repository{
		rdb: rdb,
		ttl: ttl,
	}
}

func key(accountID int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, accountID)
}

// Begin stores the initial state only if no dialogue is active for the
// account. Returns false when one already exists.
func (r *Repository) Begin(ctx context.Context, accountID int64, state *domain.DialogState) (bool, error) {
	raw, err := json.Marshal(state)
	if err != nil {
		return false, err
	}
	ok, err := r.rdb.SetNX(ctx, key(accountID), raw, r.ttl).Result()
	if err != nil {
		zap.L().Error("failed to begin dialog", zap.Error(err))
		return false, err
	}
	return ok, nil
}

func (r *Repository) Get(ctx context.Context, accountID int64) (*domain.DialogState, error) {
	raw, err := r.rdb.Get(ctx, key(accountID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		zap.L().Error("failed to get dialog state", zap.Error(err))
		return nil, err
	}
	var state domain.DialogState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// Update rewrites the state and refreshes the timeout.
func (r *Repository) Update(ctx context.Context, accountID int64, state *domain.DialogState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	if err := r.rdb.Set(ctx, key(accountID), raw, r.ttl).Err(); err != nil {
		zap.L().Error("failed to update dialog state", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Clear(ctx context.Context, accountID int64) error {
	if err := r.rdb.Del(ctx, key(accountID)).Err(); err != nil {
		zap.L().Error("failed to clear dialog state", zap.Error(err))
		return err
	}
	return nil
}
