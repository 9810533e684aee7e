package withdrawalservice

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/doculuna/wallet/internal/domain"
	withdrawalrepo "github.com/doculuna/wallet/internal/repo/withdrawal-repo"
)

type DialogRepo interface {
	Begin(ctx context.Context, accountID int64, state *domain.DialogState) (bool, error)
	Get(ctx context.Context, accountID int64) (*domain.DialogState, error)
	Update(ctx context.Context, accountID int64, state *domain.DialogState) error
	Clear(ctx context.Context, accountID int64) error
}

type WithdrawalRepo interface {
	Create(ctx context.Context, req *domain.WithdrawalRequest) error
	GetOpenByAccount(ctx context.Context, accountID int64) (*domain.WithdrawalRequest, error)
}

type LedgerService interface {
	GetAccount(ctx context.Context, accountID int64) (*domain.Account, error)
}

var (
	ErrDuplicateRequestInProgress = errors.New("withdrawal request already in progress")
	ErrBelowMinimum               = errors.New("amount below withdrawal minimum")
	ErrInsufficientFunds          = errors.New("amount exceeds balance")
	ErrInvalidAmount              = errors.New("invalid amount")
	ErrNameTooShort               = errors.New("account name too short")
	ErrBankTooShort               = errors.New("bank name too short")
	ErrBadAccountNumber           = errors.New("account number must be at least 10 digits")
	ErrNoDialog                   = errors.New("no withdrawal dialogue in progress")
)

const (
	minNameLen          = 3
	minAccountNumberLen = 10
)

// StepResult reports where the dialogue stands after an input: the state to
// re-prompt from, or the submitted request once the final step passed.
type StepResult struct {
	State     *domain.DialogState
	Submitted *domain.WithdrawalRequest
}

type Service struct {
	dialogRepo     DialogRepo
	withdrawalRepo WithdrawalRepo
	ledger         LedgerService
	minWithdrawal  int64
}

func New(dialogRepo DialogRepo, withdrawalRepo WithdrawalRepo, ledger LedgerService, minWithdrawal int64) *Service {
	return &Service{
		dialogRepo:     dialogRepo,
		withdrawalRepo: withdrawalRepo,
		ledger:         ledger,
		minWithdrawal:  minWithdrawal,
	}
}

// Start opens the withdrawal dialogue. It refuses when the balance is below
// the minimum, when a pending_review request exists, or when another
// dialogue is already active for the account.
func (s *Service) Start(ctx context.Context, accountID int64) (*domain.DialogState, error) {
	account, err := s.ledger.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.Balance < s.minWithdrawal {
		return nil, ErrBelowMinimum
	}

	open, err := s.withdrawalRepo.GetOpenByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, ErrDuplicateRequestInProgress
	}

	state := &domain.DialogState{
		Step:      domain.CollectAmountStep,
		StartedAt: time.Now(),
	}
	ok, err := s.dialogRepo.Begin(ctx, accountID, state)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrDuplicateRequestInProgress
	}
	return state, nil
}

// Input feeds one user message into the dialogue. Validation failures leave
// the state untouched so the caller can re-prompt with the specific
// violation; valid input advances the state, and the final step submits the
// request for review.
func (s *Service) Input(ctx context.Context, accountID int64, text string) (*StepResult, error) {
	state, err := s.dialogRepo.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, ErrNoDialog
	}

	switch state.Step {
	case domain.CollectAmountStep:
		return s.collectAmount(ctx, accountID, state, text)
	case domain.CollectAccountNameStep:
		name := strings.TrimSpace(text)
		if len(name) < minNameLen {
			return &StepResult{State: state}, ErrNameTooShort
		}
		state.AccountName = name
		state.Step = domain.CollectBankNameStep
		return s.advance(ctx, accountID, state)
	case domain.CollectBankNameStep:
		bank := strings.TrimSpace(text)
		if len(bank) < minNameLen {
			return &StepResult{State: state}, ErrBankTooShort
		}
		state.BankName = bank
		state.Step = domain.CollectAccountNumberStep
		return s.advance(ctx, accountID, state)
	case domain.CollectAccountNumberStep:
		return s.submit(ctx, accountID, state, text)
	default:
		zap.L().Error("unknown dialogue step", zap.String("step", state.Step), zap.Int64("accountID", accountID))
		if err := s.dialogRepo.Clear(ctx, accountID); err != nil {
			return nil, err
		}
		return nil, ErrNoDialog
	}
}

// Cancel discards the dialogue without creating a request. Cancelling when
// nothing is in progress is a no-op.
func (s *Service) Cancel(ctx context.Context, accountID int64) error {
	return s.dialogRepo.Clear(ctx, accountID)
}

func (s *Service) collectAmount(ctx context.Context, accountID int64, state *domain.DialogState, text string) (*StepResult, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	amount, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil || amount <= 0 {
		return &StepResult{State: state}, ErrInvalidAmount
	}
	if amount < s.minWithdrawal {
		return &StepResult{State: state}, ErrBelowMinimum
	}

	account, err := s.ledger.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if amount > account.Balance {
		return &StepResult{State: state}, ErrInsufficientFunds
	}

	state.Amount = amount
	state.Step = domain.CollectAccountNameStep
	return s.advance(ctx, accountID, state)
}

func (s *Service) submit(ctx context.Context, accountID int64, state *domain.DialogState, text string) (*StepResult, error) {
	number := strings.ReplaceAll(strings.TrimSpace(text), " ", "")
	if len(number) < minAccountNumberLen || !isDigits(number) {
		return &StepResult{State: state}, ErrBadAccountNumber
	}

	req := &domain.WithdrawalRequest{
		ID:            uuid.NewString(),
		AccountID:     accountID,
		Amount:        state.Amount,
		AccountName:   state.AccountName,
		BankName:      state.BankName,
		AccountNumber: number,
		Status:        domain.PendingReviewWithdrawalStatus,
	}
	if err := s.withdrawalRepo.Create(ctx, req); err != nil {
		if errors.Is(err, withdrawalrepo.ErrOpenRequestExists) {
			// an open request already exists; the dialogue has nothing left to do
			if clearErr := s.dialogRepo.Clear(ctx, accountID); clearErr != nil {
				zap.L().Warn("failed to clear dialogue after duplicate submit", zap.Int64("accountID", accountID), zap.Error(clearErr))
			}
			return nil, ErrDuplicateRequestInProgress
		}
		zap.L().Error("failed to submit withdrawal request", zap.Int64("accountID", accountID), zap.Error(err))
		return nil, err
	}

	if err := s.dialogRepo.Clear(ctx, accountID); err != nil {
		// request exists; a stale dialogue key only blocks a new one until TTL
		zap.L().Warn("failed to clear dialogue after submit", zap.Int64("accountID", accountID), zap.Error(err))
	}

	zap.L().Info("withdrawal request submitted",
		zap.String("requestID", req.ID),
		zap.Int64("accountID", accountID),
		zap.Int64("amount", req.Amount),
	)
	return &StepResult{Submitted: req}, nil
}

func (s *Service) advance(ctx context.Context, accountID int64, state *domain.DialogState) (*StepResult, error) {
	if err := s.dialogRepo.Update(ctx, accountID, state); err != nil {
		return nil, err
	}
	return &StepResult{State: state}, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
