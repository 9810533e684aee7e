package ledgerservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/doculuna/wallet/internal/domain"
	"github.com/doculuna/wallet/internal/pg"
	"github.com/doculuna/wallet/pkg/refcode"
)

type Repo interface {
	GetAccount(ctx context.Context, accountID int64) (*domain.Account, error)
	CreateAccount(ctx context.Context, accountID int64, referralCode string) error
	LockAccount(ctx context.Context, accountID int64) (*domain.Account, error)
	FindTransaction(ctx context.Context, kind, referenceID string) (*domain.LedgerTransaction, error)
	GetTransaction(ctx context.Context, transactionID string) (*domain.LedgerTransaction, error)
	ApplyTransaction(ctx context.Context, txn *domain.LedgerTransaction) error
}

var (
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrAccountNotFound     = errors.New("account not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrNotReversible       = errors.New("transaction is not a withdrawal debit")
)

type Service struct {
	repo      Repo
	txManager pg.TXManager
}

func New(repo Repo, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
	}
}

// GetAccount returns the account, creating it with a zero balance and a
// derived referral code on first access.
func (s *Service) GetAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	account, err := s.repo.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account != nil {
		return account, nil
	}

	if err := s.repo.CreateAccount(ctx, accountID, refcode.Derive(accountID)); err != nil {
		zap.L().Error("failed to create account", zap.Int64("accountID", accountID), zap.Error(err))
		return nil, err
	}
	account, err = s.repo.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

func (s *Service) GetBalance(ctx context.Context, accountID int64) (int64, error) {
	account, err := s.GetAccount(ctx, accountID)
	if err != nil {
		return 0, err
	}
	return account.Balance, nil
}

// Credit appends a positive ledger transaction and rolls it into the account
// balance. A repeated call with the same (kind, referenceID) returns the
// already-recorded transaction without crediting again.
func (s *Service) Credit(ctx context.Context, accountID, amount int64, kind, referenceID string) (*domain.LedgerTransaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if _, err := s.GetAccount(ctx, accountID); err != nil {
		return nil, err
	}

	var txn *domain.LedgerTransaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.repo.LockAccount(ctx, accountID)
		if err != nil {
			return err
		}
		if account == nil {
			return ErrAccountNotFound
		}

		existing, err := s.repo.FindTransaction(ctx, kind, referenceID)
		if err != nil {
			return err
		}
		if existing != nil {
			txn = existing
			return nil
		}

		txn = &domain.LedgerTransaction{
			ID:          uuid.NewString(),
			AccountID:   accountID,
			Amount:      amount,
			Kind:        kind,
			ReferenceID: referenceID,
		}
		return s.repo.ApplyTransaction(ctx, txn)
	})
	if err != nil {
		zap.L().Error("credit failed", zap.Int64("accountID", accountID), zap.Error(err))
		return nil, err
	}
	return txn, nil
}

// Debit appends a negative ledger transaction. The balance check and the
// write happen under the account row lock, so two concurrent debits can
// never both pass against a stale balance. Idempotent on (kind, referenceID).
func (s *Service) Debit(ctx context.Context, accountID, amount int64, kind, referenceID string) (*domain.LedgerTransaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var txn *domain.LedgerTransaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.repo.LockAccount(ctx, accountID)
		if err != nil {
			return err
		}
		if account == nil {
			return ErrAccountNotFound
		}

		existing, err := s.repo.FindTransaction(ctx, kind, referenceID)
		if err != nil {
			return err
		}
		if existing != nil {
			txn = existing
			return nil
		}

		if account.Balance < amount {
			return ErrInsufficientFunds
		}

		txn = &domain.LedgerTransaction{
			ID:          uuid.NewString(),
			AccountID:   accountID,
			Amount:      -amount,
			Kind:        kind,
			ReferenceID: referenceID,
		}
		return s.repo.ApplyTransaction(ctx, txn)
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientFunds) {
			zap.L().Error("debit failed", zap.Int64("accountID", accountID), zap.Error(err))
		}
		return nil, err
	}
	return txn, nil
}

// ReverseDebit compensates an earlier withdrawal debit with a credit of the
// same magnitude, keeping the original entry for audit. Repeating the call
// is a no-op because the reversal references the debited transaction id.
func (s *Service) ReverseDebit(ctx context.Context, transactionID string) (*domain.LedgerTransaction, error) {
	original, err := s.repo.GetTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if original == nil {
		return nil, ErrTransactionNotFound
	}
	if original.Kind != domain.WithdrawalDebitKind {
		return nil, ErrNotReversible
	}

	return s.Credit(ctx, original.AccountID, -original.Amount, domain.WithdrawalReversalKind, original.ID)
}
