package referralservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/doculuna/wallet/internal/domain"
	"github.com/doculuna/wallet/internal/pg"
	"github.com/doculuna/wallet/pkg/refcode"
)

type Repo interface {
	Create(ctx context.Context, rel *domain.ReferralRelationship) (bool, error)
	GetByReferred(ctx context.Context, referredID int64) (*domain.ReferralRelationship, error)
	LockByReferred(ctx context.Context, referredID int64) (*domain.ReferralRelationship, error)
	Complete(ctx context.Context, id, plan, purchaseID string, rewardAmount int64, completedAt time.Time) (bool, error)
}

type AccountRepo interface {
	GetAccountByReferralCode(ctx context.Context, code string) (*domain.Account, error)
}

type LedgerService interface {
	GetAccount(ctx context.Context, accountID int64) (*domain.Account, error)
	Credit(ctx context.Context, accountID, amount int64, kind, referenceID string) (*domain.LedgerTransaction, error)
}

// RewardSchedule maps a purchased plan to its referral reward in minor
// units. Plans absent from the schedule carry no reward.
type RewardSchedule interface {
	RewardFor(plan string) int64
}

var (
	ErrSelfReferral    = errors.New("self referral")
	ErrAlreadyReferred = errors.New("user already referred")
	ErrUnknownCode     = errors.New("unknown referral code")
)

type Service struct {
	repo        Repo
	accountRepo AccountRepo
	ledger      LedgerService
	rewards     RewardSchedule
	txManager   pg.TXManager
}

func New(repo Repo, accountRepo AccountRepo, ledger LedgerService, rewards RewardSchedule, txManager pg.TXManager) *Service {
	return &Service{
		repo:        repo,
		accountRepo: accountRepo,
		ledger:      ledger,
		rewards:     rewards,
		txManager:   txManager,
	}
}

// RegisterReferral records that referredID was invited by referrerID.
// Registering the same pair again is a no-op; a different referrer for an already
// referred user fails with ErrAlreadyReferred. The uniqueness constraint on
// the referred account decides races between concurrent registrations.
func (s *Service) RegisterReferral(ctx context.Context, referrerID, referredID int64) error {
	if referrerID == referredID {
		return ErrSelfReferral
	}

	// FK target; also backfills the referrer account on first contact
	if _, err := s.ledger.GetAccount(ctx, referrerID); err != nil {
		return err
	}

	rel := &domain.ReferralRelationship{
		ID:         uuid.NewString(),
		ReferrerID: referrerID,
		ReferredID: referredID,
		Status:     domain.PendingReferralStatus,
	}
	inserted, err := s.repo.Create(ctx, rel)
	if err != nil {
		zap.L().Error("can't register referral", zap.Error(err))
		return err
	}
	if inserted {
		zap.L().Info("referral registered", zap.Int64("referrer", referrerID), zap.Int64("referred", referredID))
		return nil
	}

	existing, err := s.repo.GetByReferred(ctx, referredID)
	if err != nil {
		return err
	}
	if existing != nil && existing.ReferrerID == referrerID {
		// same link re-sent
		return nil
	}
	return ErrAlreadyReferred
}

// RegisterByCode resolves a referral code to its owner and registers the
// relationship.
func (s *Service) RegisterByCode(ctx context.Context, referredID int64, code string) error {
	if !refcode.IsValid(code) {
		return ErrUnknownCode
	}
	referrer, err := s.accountRepo.GetAccountByReferralCode(ctx, code)
	if err != nil {
		return err
	}
	if referrer == nil {
		return ErrUnknownCode
	}
	return s.RegisterReferral(ctx, referrer.ID, referredID)
}

// CompleteReferral reacts to a confirmed purchase by the referred user. When
// a pending relationship exists and the plan carries a reward, the status
// flip and the referrer credit commit in one transaction. Missing or already
// completed relationships report rewarded=false, which is the expected path
// for non-referred buyers and redelivered purchase events.
func (s *Service) CompleteReferral(ctx context.Context, referredID int64, plan, purchaseID string) (bool, int64, error) {
	reward := s.rewards.RewardFor(plan)
	if reward <= 0 {
		zap.L().Info("plan carries no referral reward", zap.String("plan", plan), zap.Int64("referred", referredID))
		return false, 0, nil
	}

	var (
		rewarded   bool
		referrerID int64
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		rel, err := s.repo.LockByReferred(ctx, referredID)
		if err != nil {
			return err
		}
		if rel == nil || rel.Status != domain.PendingReferralStatus {
			return nil
		}

		done, err := s.repo.Complete(ctx, rel.ID, plan, purchaseID, reward, time.Now())
		if err != nil {
			return err
		}
		if !done {
			return nil
		}

		if _, err := s.ledger.Credit(ctx, rel.ReferrerID, reward, domain.ReferralRewardKind, rel.ID); err != nil {
			return err
		}
		rewarded = true
		referrerID = rel.ReferrerID
		return nil
	})
	if err != nil {
		zap.L().Error("failed to complete referral", zap.Int64("referred", referredID), zap.Error(err))
		return false, 0, err
	}
	if rewarded {
		zap.L().Info("referral reward credited",
			zap.Int64("referrer", referrerID),
			zap.Int64("referred", referredID),
			zap.String("plan", plan),
			zap.Int64("reward", reward),
		)
	}
	return rewarded, referrerID, nil
}
