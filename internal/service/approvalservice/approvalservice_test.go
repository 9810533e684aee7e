package approvalservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/doculuna/wallet/internal/domain"
	"github.com/doculuna/wallet/internal/pg"
	"github.com/doculuna/wallet/internal/service/ledgerservice"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockLedgerService, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	ledger := NewMockLedgerService(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(repo, ledger, txManager)
	defer ctrl.Finish()
	return service, repo, ledger, txManager
}

func passThroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func pendingRequest() *domain.WithdrawalRequest {
	return &domain.WithdrawalRequest{
		ID:        "req-1",
		AccountID: 100,
		Amount:    200000,
		Status:    domain.PendingReviewWithdrawalStatus,
	}
}

func TestListPending(t *testing.T) {
	service, repo, _, _ := NewMock(t)
	tests := []struct {
		name          string
		prepareMock   func()
		expectedCount int
		expectedError error
	}{
		{
			name: "Queue returned",
			prepareMock: func() {
				repo.EXPECT().ListPending(gomock.Any()).Return([]domain.WithdrawalRequest{
					*pendingRequest(),
				}, nil)
			},
			expectedCount: 1,
		},
		{
			name: "Repo error",
			prepareMock: func() {
				repo.EXPECT().ListPending(gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			requests, err := service.ListPending(context.Background())
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Len(t, requests, tt.expectedCount)
			}
		})
	}
}

func TestApprove(t *testing.T) {
	service, repo, ledger, txManager := NewMock(t)
	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Successful approval",
			prepareMock: func() {
				passThroughTx(txManager)
				repo.EXPECT().LockByID(gomock.Any(), "req-1").Return(pendingRequest(), nil)
				ledger.EXPECT().Debit(gomock.Any(), int64(100), int64(200000), domain.WithdrawalDebitKind, "req-1").
					Return(&domain.LedgerTransaction{ID: "txn-1", Amount: -200000}, nil)
				repo.EXPECT().Decide(gomock.Any(), "req-1", domain.ApprovedWithdrawalStatus, int64(555), "", gomock.Any()).Return(nil)
			},
		},
		{
			name: "Request not found",
			prepareMock: func() {
				passThroughTx(txManager)
				repo.EXPECT().LockByID(gomock.Any(), "req-1").Return(nil, nil)
			},
			expectedError: ErrRequestNotFound,
		},
		{
			name: "Second decision loses",
			prepareMock: func() {
				passThroughTx(txManager)
				req := pendingRequest()
				req.Status = domain.ApprovedWithdrawalStatus
				repo.EXPECT().LockByID(gomock.Any(), "req-1").Return(req, nil)
			},
			expectedError: ErrAlreadyDecided,
		},
		{
			name: "Insufficient funds leaves request pending",
			prepareMock: func() {
				passThroughTx(txManager)
				repo.EXPECT().LockByID(gomock.Any(), "req-1").Return(pendingRequest(), nil)
				ledger.EXPECT().Debit(gomock.Any(), int64(100), int64(200000), domain.WithdrawalDebitKind, "req-1").
					Return(nil, ledgerservice.ErrInsufficientFunds)
			},
			expectedError: ledgerservice.ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			decided, err := service.Approve(context.Background(), "req-1", 555)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.ApprovedWithdrawalStatus, decided.Status)
				assert.Equal(t, int64(555), *decided.DecidedBy)
				assert.NotNil(t, decided.DecidedAt)
			}
		})
	}
}

func TestReject(t *testing.T) {
	service, repo, _, txManager := NewMock(t)
	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Successful rejection",
			prepareMock: func() {
				passThroughTx(txManager)
				repo.EXPECT().LockByID(gomock.Any(), "req-1").Return(pendingRequest(), nil)
				repo.EXPECT().Decide(gomock.Any(), "req-1", domain.RejectedWithdrawalStatus, int64(555), "name mismatch", gomock.Any()).Return(nil)
			},
		},
		{
			name: "Already decided",
			prepareMock: func() {
				passThroughTx(txManager)
				req := pendingRequest()
				req.Status = domain.RejectedWithdrawalStatus
				repo.EXPECT().LockByID(gomock.Any(), "req-1").Return(req, nil)
			},
			expectedError: ErrAlreadyDecided,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			decided, err := service.Reject(context.Background(), "req-1", 555, "name mismatch")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.RejectedWithdrawalStatus, decided.Status)
				assert.Equal(t, "name mismatch", decided.Notes)
			}
		})
	}
}

func TestReverse(t *testing.T) {
	service, _, ledger, _ := NewMock(t)
	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Successful reversal",
			prepareMock: func() {
				ledger.EXPECT().ReverseDebit(gomock.Any(), "txn-1").Return(&domain.LedgerTransaction{
					ID:     "txn-2",
					Amount: 200000,
					Kind:   domain.WithdrawalReversalKind,
				}, nil)
			},
		},
		{
			name: "Not a withdrawal debit",
			prepareMock: func() {
				ledger.EXPECT().ReverseDebit(gomock.Any(), "txn-1").Return(nil, ledgerservice.ErrNotReversible)
			},
			expectedError: ledgerservice.ErrNotReversible,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			txn, err := service.Reverse(context.Background(), "txn-1", 555)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.WithdrawalReversalKind, txn.Kind)
			}
		})
	}
}
