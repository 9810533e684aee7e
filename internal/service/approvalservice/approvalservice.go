package approvalservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/doculuna/wallet/internal/domain"
	"github.com/doculuna/wallet/internal/pg"
)

type Repo interface {
	ListPending(ctx context.Context) ([]domain.WithdrawalRequest, error)
	LockByID(ctx context.Context, requestID string) (*domain.WithdrawalRequest, error)
	Decide(ctx context.Context, requestID, status string, operatorID int64, notes string, decidedAt time.Time) error
}

type LedgerService interface {
	Debit(ctx context.Context, accountID, amount int64, kind, referenceID string) (*domain.LedgerTransaction, error)
	ReverseDebit(ctx context.Context, transactionID string) (*domain.LedgerTransaction, error)
}

var (
	ErrRequestNotFound = errors.New("withdrawal request not found")
	ErrAlreadyDecided  = errors.New("withdrawal request already decided")
)

type Service struct {
	repo      Repo
	ledger    LedgerService
	txManager pg.TXManager
}

func New(repo Repo, ledger LedgerService, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		ledger:    ledger,
		txManager: txManager,
	}
}

// ListPending returns the operator queue, oldest request first.
func (s *Service) ListPending(ctx context.Context) ([]domain.WithdrawalRequest, error) {
	requests, err := s.repo.ListPending(ctx)
	if err != nil {
		zap.L().Error("failed to fetch pending withdrawals", zap.Error(err))
		return nil, err
	}
	return requests, nil
}

// Approve debits the requested amount and marks the request approved, in one
// transaction. The row lock makes concurrent decisions resolve to a single
// winner; the loser observes a terminal status and gets ErrAlreadyDecided.
// An insufficient balance fails the approval and leaves the request pending
// for re-review.
func (s *Service) Approve(ctx context.Context, requestID string, operatorID int64) (*domain.WithdrawalRequest, error) {
	var decided *domain.WithdrawalRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		req, err := s.repo.LockByID(ctx, requestID)
		if err != nil {
			return err
		}
		if req == nil {
			return ErrRequestNotFound
		}
		if req.Status != domain.PendingReviewWithdrawalStatus {
			return ErrAlreadyDecided
		}

		if _, err := s.ledger.Debit(ctx, req.AccountID, req.Amount, domain.WithdrawalDebitKind, req.ID); err != nil {
			return err
		}

		now := time.Now()
		if err := s.repo.Decide(ctx, req.ID, domain.ApprovedWithdrawalStatus, operatorID, "", now); err != nil {
			return err
		}
		req.Status = domain.ApprovedWithdrawalStatus
		req.DecidedAt = &now
		req.DecidedBy = &operatorID
		decided = req
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("withdrawal approved",
		zap.String("requestID", requestID),
		zap.Int64("operatorID", operatorID),
		zap.Int64("amount", decided.Amount),
	)
	return decided, nil
}

// Reject marks the request rejected with no ledger effect.
func (s *Service) Reject(ctx context.Context, requestID string, operatorID int64, notes string) (*domain.WithdrawalRequest, error) {
	var decided *domain.WithdrawalRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		req, err := s.repo.LockByID(ctx, requestID)
		if err != nil {
			return err
		}
		if req == nil {
			return ErrRequestNotFound
		}
		if req.Status != domain.PendingReviewWithdrawalStatus {
			return ErrAlreadyDecided
		}

		now := time.Now()
		if err := s.repo.Decide(ctx, req.ID, domain.RejectedWithdrawalStatus, operatorID, notes, now); err != nil {
			return err
		}
		req.Status = domain.RejectedWithdrawalStatus
		req.Notes = notes
		req.DecidedAt = &now
		req.DecidedBy = &operatorID
		decided = req
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("withdrawal rejected", zap.String("requestID", requestID), zap.Int64("operatorID", operatorID))
	return decided, nil
}

// Reverse compensates an approved withdrawal that an operator later found
// invalid. The original debit stays in the log.
func (s *Service) Reverse(ctx context.Context, transactionID string, operatorID int64) (*domain.LedgerTransaction, error) {
	txn, err := s.ledger.ReverseDebit(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	zap.L().Info("withdrawal debit reversed",
		zap.String("transactionID", transactionID),
		zap.Int64("operatorID", operatorID),
	)
	return txn, nil
}
