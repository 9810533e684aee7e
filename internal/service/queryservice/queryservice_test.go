package queryservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/doculuna/wallet/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockLedgerService, *MockAccountRepo, *MockReferralRepo, *MockWithdrawalRepo, *MockCache) {
	ctrl := gomock.NewController(t)
	ledger := NewMockLedgerService(ctrl)
	accountRepo := NewMockAccountRepo(ctrl)
	referralRepo := NewMockReferralRepo(ctrl)
	withdrawalRepo := NewMockWithdrawalRepo(ctrl)
	cache := NewMockCache(ctrl)
	service := New(ledger, accountRepo, referralRepo, withdrawalRepo, cache)
	defer ctrl.Finish()
	return service, ledger, accountRepo, referralRepo, withdrawalRepo, cache
}

func TestBalanceSummary(t *testing.T) {
	service, ledger, _, referralRepo, _, _ := NewMock(t)
	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Summary assembled",
			prepareMock: func() {
				ledger.EXPECT().GetAccount(gomock.Any(), int64(100)).Return(&domain.Account{
					ID:           100,
					Balance:      215000,
					TotalEarned:  350000,
					ReferralCode: "REF1003",
				}, nil)
				referralRepo.EXPECT().Stats(gomock.Any(), int64(100)).Return(&domain.ReferralStats{
					Pending:     2,
					Completed:   5,
					TotalEarned: 175000,
				}, nil)
			},
		},
		{
			name: "Stats error",
			prepareMock: func() {
				ledger.EXPECT().GetAccount(gomock.Any(), int64(100)).Return(&domain.Account{ID: 100}, nil)
				referralRepo.EXPECT().Stats(gomock.Any(), int64(100)).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			summary, err := service.BalanceSummary(context.Background(), 100)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(215000), summary.Account.Balance)
				assert.Equal(t, 5, summary.Stats.Completed)
			}
		})
	}
}

func TestLeaderboard(t *testing.T) {
	service, _, accountRepo, _, _, cache := NewMock(t)
	top := []domain.Account{
		{ID: 100, TotalEarned: 350000},
		{ID: 200, TotalEarned: 175000},
	}
	tests := []struct {
		name        string
		prepareMock func()
		expectErr   bool
	}{
		{
			name: "Cache miss fetches and caches",
			prepareMock: func() {
				cache.EXPECT().Get(gomock.Any(), "wallet:leaderboard:10", gomock.Any()).Return(false, nil)
				accountRepo.EXPECT().TopAccounts(gomock.Any(), 10).Return(top, nil)
				cache.EXPECT().Set(gomock.Any(), "wallet:leaderboard:10", top, leaderboardTTL).Return(nil)
			},
		},
		{
			name: "Cache hit skips the database",
			prepareMock: func() {
				cache.EXPECT().Get(gomock.Any(), "wallet:leaderboard:10", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, dest interface{}) (bool, error) {
						*dest.(*[]domain.Account) = top
						return true, nil
					})
			},
		},
		{
			name: "Cache write failure is not fatal",
			prepareMock: func() {
				cache.EXPECT().Get(gomock.Any(), "wallet:leaderboard:10", gomock.Any()).Return(false, nil)
				accountRepo.EXPECT().TopAccounts(gomock.Any(), 10).Return(top, nil)
				cache.EXPECT().Set(gomock.Any(), "wallet:leaderboard:10", top, leaderboardTTL).Return(errors.New("redis down"))
			},
		},
		{
			name: "Database error",
			prepareMock: func() {
				cache.EXPECT().Get(gomock.Any(), "wallet:leaderboard:10", gomock.Any()).Return(false, nil)
				accountRepo.EXPECT().TopAccounts(gomock.Any(), 10).Return(nil, errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			accounts, err := service.Leaderboard(context.Background(), 10)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, top, accounts)
			}
		})
	}
}

func TestWithdrawalHistory(t *testing.T) {
	service, _, _, _, withdrawalRepo, _ := NewMock(t)

	withdrawalRepo.EXPECT().ListByAccount(gomock.Any(), int64(100)).Return([]domain.WithdrawalRequest{
		{ID: "req-2", Status: domain.PendingReviewWithdrawalStatus},
		{ID: "req-1", Status: domain.ApprovedWithdrawalStatus},
	}, nil)

	requests, err := service.WithdrawalHistory(context.Background(), 100)
	assert.NoError(t, err)
	assert.Len(t, requests, 2)
	assert.Equal(t, "req-2", requests[0].ID)
}

func TestReferralStats(t *testing.T) {
	service, _, _, referralRepo, _, _ := NewMock(t)

	referralRepo.EXPECT().Stats(gomock.Any(), int64(100)).Return(nil, errors.New("db error"))

	_, err := service.ReferralStats(context.Background(), 100)
	assert.Error(t, err)
}
