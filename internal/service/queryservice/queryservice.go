package queryservice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/doculuna/wallet/internal/domain"
)

type LedgerService interface {
	GetAccount(ctx context.Context, accountID int64) (*domain.Account, error)
}

type AccountRepo interface {
	TopAccounts(ctx context.Context, limit int) ([]domain.Account, error)
}

type ReferralRepo interface {
	Stats(ctx context.Context, referrerID int64) (*domain.ReferralStats, error)
}

type WithdrawalRepo interface {
	ListByAccount(ctx context.Context, accountID int64) ([]domain.WithdrawalRequest, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

const leaderboardTTL = time.Minute

// Summary is the wallet overview rendered by the transport.
type Summary struct {
	Account *domain.Account
	Stats   *domain.ReferralStats
}

type Service struct {
	ledger         LedgerService
	accountRepo    AccountRepo
	referralRepo   ReferralRepo
	withdrawalRepo WithdrawalRepo
	cache          Cache
}

func New(ledger LedgerService, accountRepo AccountRepo, referralRepo ReferralRepo, withdrawalRepo WithdrawalRepo, cache Cache) *Service {
	return &Service{
		ledger:         ledger,
		accountRepo:    accountRepo,
		referralRepo:   referralRepo,
		withdrawalRepo: withdrawalRepo,
		cache:          cache,
	}
}

// BalanceSummary returns balance, lifetime earnings, referral code and
// referral stats for the account, creating the account on first access.
func (s *Service) BalanceSummary(ctx context.Context, accountID int64) (*Summary, error) {
	account, err := s.ledger.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	stats, err := s.referralRepo.Stats(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return &Summary{Account: account, Stats: stats}, nil
}

func (s *Service) ReferralStats(ctx context.Context, accountID int64) (*domain.ReferralStats, error) {
	stats, err := s.referralRepo.Stats(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to fetch referral stats", zap.Error(err))
		return nil, err
	}
	return stats, nil
}

// Leaderboard ranks accounts by lifetime earnings, ties broken by earliest
// creation. Served through a short-lived cache; staleness up to the TTL is
// acceptable for a bragging-rights view.
func (s *Service) Leaderboard(ctx context.Context, topN int) ([]domain.Account, error) {
	key := fmt.Sprintf("wallet:leaderboard:%d", topN)

	var cached []domain.Account
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	accounts, err := s.accountRepo.TopAccounts(ctx, topN)
	if err != nil {
		zap.L().Error("failed to fetch leaderboard", zap.Error(err))
		return nil, err
	}

	if err := s.cache.Set(ctx, key, accounts, leaderboardTTL); err != nil {
		zap.L().Warn("failed to cache leaderboard", zap.Error(err))
	}
	return accounts, nil
}

func (s *Service) WithdrawalHistory(ctx context.Context, accountID int64) ([]domain.WithdrawalRequest, error) {
	requests, err := s.withdrawalRepo.ListByAccount(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawal history", zap.Error(err))
		return nil, err
	}
	return requests, nil
}
