package service

import (
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/doculuna/wallet/internal/config"
	"github.com/doculuna/wallet/internal/pg"
	"github.com/doculuna/wallet/internal/repo"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	rdb := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	repos := repo.New(mockDB, rdb, 15*time.Minute)
	txManager := pg.NewMockTXManager(ctrl)
	cfg := &config.Config{
		MinWithdrawal: 100000,
		RewardWeekly:  15000,
		RewardMonthly: 35000,
	}

	services := New(repos, txManager, cfg)

	assert.NotNil(t, services.LedgerService)
	assert.NotNil(t, services.ReferralService)
	assert.NotNil(t, services.WithdrawalService)
	assert.NotNil(t, services.ApprovalService)
	assert.NotNil(t, services.QueryService)
}
