package withdrawalservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/doculuna/wallet/internal/domain"
	withdrawalrepo "github.com/doculuna/wallet/internal/repo/withdrawal-repo"
)

const minWithdrawal = 100000

func NewMock(t *testing.T) (*Service, *MockDialogRepo, *MockWithdrawalRepo, *MockLedgerService) {
	ctrl := gomock.NewController(t)
	dialogRepo := NewMockDialogRepo(ctrl)
	withdrawalRepo := NewMockWithdrawalRepo(ctrl)
	ledger := NewMockLedgerService(ctrl)
	service := New(dialogRepo, withdrawalRepo, ledger, minWithdrawal)
	defer ctrl.Finish()
	return service, dialogRepo, withdrawalRepo, ledger
}

func TestStart(t *testing.T) {
	service, dialogRepo, withdrawalRepo, ledger := NewMock(t)
	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Dialogue opened",
			prepareMock: func() {
				ledger.EXPECT().GetAccount(gomock.Any(), int64(100)).Return(&domain.Account{
					ID:      100,
					Balance: 350000,
				}, nil)
				withdrawalRepo.EXPECT().GetOpenByAccount(gomock.Any(), int64(100)).Return(nil, nil)
				dialogRepo.EXPECT().Begin(gomock.Any(), int64(100), gomock.Any()).Return(true, nil)
			},
			expectedError: nil,
		},
		{
			name: "Balance below minimum",
			prepareMock: func() {
				ledger.EXPECT().GetAccount(gomock.Any(), int64(100)).Return(&domain.Account{
					ID:      100,
					Balance: 50000,
				}, nil)
			},
			expectedError: ErrBelowMinimum,
		},
		{
			name: "Pending request blocks a new dialogue",
			prepareMock: func() {
				ledger.EXPECT().GetAccount(gomock.Any(), int64(100)).Return(&domain.Account{
					ID:      100,
					Balance: 350000,
				}, nil)
				withdrawalRepo.EXPECT().GetOpenByAccount(gomock.Any(), int64(100)).Return(&domain.WithdrawalRequest{
					ID:     "req-1",
					Status: domain.PendingReviewWithdrawalStatus,
				}, nil)
			},
			expectedError: ErrDuplicateRequestInProgress,
		},
		{
			name: "Another dialogue already active",
			prepareMock: func() {
				ledger.EXPECT().GetAccount(gomock.Any(), int64(100)).Return(&domain.Account{
					ID:      100,
					Balance: 350000,
				}, nil)
				withdrawalRepo.EXPECT().GetOpenByAccount(gomock.Any(), int64(100)).Return(nil, nil)
				dialogRepo.EXPECT().Begin(gomock.Any(), int64(100), gomock.Any()).Return(false, nil)
			},
			expectedError: ErrDuplicateRequestInProgress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			state, err := service.Start(context.Background(), 100)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.CollectAmountStep, state.Step)
			}
		})
	}
}

func TestInputAmount(t *testing.T) {
	service, dialogRepo, _, ledger := NewMock(t)
	amountState := func() *domain.DialogState {
		return &domain.DialogState{Step: domain.CollectAmountStep, StartedAt: time.Now()}
	}
	tests := []struct {
		name          string
		text          string
		prepareMock   func()
		expectedStep  string
		expectedError error
	}{
		{
			name: "Valid amount advances to account name",
			text: "200,000",
			prepareMock: func() {
				dialogRepo.EXPECT().Get(gomock.Any(), int64(100)).Return(amountState(), nil)
				ledger.EXPECT().GetAccount(gomock.Any(), int64(100)).Return(&domain.Account{
					ID:      100,
					Balance: 350000,
				}, nil)
				dialogRepo.EXPECT().Update(gomock.Any(), int64(100), gomock.Any()).Return(nil)
			},
			expectedStep: domain.CollectAccountNameStep,
		},
		{
			name: "Non-numeric input",
			text: "a lot",
			prepareMock: func() {
				dialogRepo.EXPECT().Get(gomock.Any(), int64(100)).Return(amountState(), nil)
			},
			expectedStep:  domain.CollectAmountStep,
			expectedError: ErrInvalidAmount,
		},
		{
			name: "Below minimum",
			text: "50000",
			prepareMock: func() {
				dialogRepo.EXPECT().Get(gomock.Any(), int64(100)).Return(amountState(), nil)
			},
			expectedStep:  domain.CollectAmountStep,
			expectedError: ErrBelowMinimum,
		},
		{
			name: "Exceeds balance",
			text: "500000",
			prepareMock: func() {
				dialogRepo.EXPECT().Get(gomock.Any(), int64(100)).Return(amountState(), nil)
				ledger.EXPECT().GetAccount(gomock.Any(), int64(100)).Return(&domain.Account{
					ID:      100,
					Balance: 350000,
				}, nil)
			},
			expectedStep:  domain.CollectAmountStep,
			expectedError: ErrInsufficientFunds,
		},
		{
			name: "No dialogue in progress",
			text: "200000",
			prepareMock: func() {
				dialogRepo.EXPECT().Get(gomock.Any(), int64(100)).Return(nil, nil)
			},
			expectedError: ErrNoDialog,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			result, err := service.Input(context.Background(), 100, tt.text)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				if result != nil {
					assert.Equal(t, tt.expectedStep, result.State.Step)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedStep, result.State.Step)
				assert.Equal(t, int64(200000), result.State.Amount)
			}
		})
	}
}

func TestInputNames(t *testing.T) {
	service, dialogRepo, _, _ := NewMock(t)
	tests := []struct {
		name          string
		state         *domain.DialogState
		text          string
		expectUpdate  bool
		expectedStep  string
		expectedError error
	}{
		{
			name:         "Account name accepted",
			state:        &domain.DialogState{Step: domain.CollectAccountNameStep, Amount: 200000},
			text:         " Ada Obi ",
			expectUpdate: true,
			expectedStep: domain.CollectBankNameStep,
		},
		{
			name:          "Account name too short",
			state:         &domain.DialogState{Step: domain.CollectAccountNameStep, Amount: 200000},
			text:          "ab",
			expectedStep:  domain.CollectAccountNameStep,
			expectedError: ErrNameTooShort,
		},
		{
			name:         "Bank name accepted",
			state:        &domain.DialogState{Step: domain.CollectBankNameStep, Amount: 200000, AccountName: "Ada Obi"},
			text:         "GTBank",
			expectUpdate: true,
			expectedStep: domain.CollectAccountNumberStep,
		},
		{
			name:          "Bank name too short",
			state:         &domain.DialogState{Step: domain.CollectBankNameStep, Amount: 200000, AccountName: "Ada Obi"},
			text:          " a ",
			expectedStep:  domain.CollectBankNameStep,
			expectedError: ErrBankTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dialogRepo.EXPECT().Get(gomock.Any(), int64(100)).Return(tt.state, nil)
			if tt.expectUpdate {
				dialogRepo.EXPECT().Update(gomock.Any(), int64(100), gomock.Any()).Return(nil)
			}

			result, err := service.Input(context.Background(), 100, tt.text)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedStep, result.State.Step)
		})
	}
}

func TestInputSubmit(t *testing.T) {
	service, dialogRepo, withdrawalRepo, _ := NewMock(t)
	numberState := func() *domain.DialogState {
		return &domain.DialogState{
			Step:        domain.CollectAccountNumberStep,
			Amount:      200000,
			AccountName: "Ada Obi",
			BankName:    "GTBank",
		}
	}
	tests := []struct {
		name          string
		text          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Valid number submits the request",
			text: "0123 4567 89",
			prepareMock: func() {
				dialogRepo.EXPECT().Get(gomock.Any(), int64(100)).Return(numberState(), nil)
				withdrawalRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, req *domain.WithdrawalRequest) error {
						assert.Equal(t, "0123456789", req.AccountNumber)
						assert.Equal(t, domain.PendingReviewWithdrawalStatus, req.Status)
						return nil
					})
				dialogRepo.EXPECT().Clear(gomock.Any(), int64(100)).Return(nil)
			},
		},
		{
			name: "Number too short",
			text: "12345",
			prepareMock: func() {
				dialogRepo.EXPECT().Get(gomock.Any(), int64(100)).Return(numberState(), nil)
			},
			expectedError: ErrBadAccountNumber,
		},
		{
			name: "Number contains letters",
			text: "01234abcde",
			prepareMock: func() {
				dialogRepo.EXPECT().Get(gomock.Any(), int64(100)).Return(numberState(), nil)
			},
			expectedError: ErrBadAccountNumber,
		},
		{
			name: "Open request already exists",
			text: "0123456789",
			prepareMock: func() {
				dialogRepo.EXPECT().Get(gomock.Any(), int64(100)).Return(numberState(), nil)
				withdrawalRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(withdrawalrepo.ErrOpenRequestExists)
				dialogRepo.EXPECT().Clear(gomock.Any(), int64(100)).Return(nil)
			},
			expectedError: ErrDuplicateRequestInProgress,
		},
		{
			name: "Create failure keeps the dialogue",
			text: "0123456789",
			prepareMock: func() {
				dialogRepo.EXPECT().Get(gomock.Any(), int64(100)).Return(numberState(), nil)
				withdrawalRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			result, err := service.Input(context.Background(), 100, tt.text)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result.Submitted)
				assert.Equal(t, int64(200000), result.Submitted.Amount)
			}
		})
	}
}

func TestCancel(t *testing.T) {
	service, dialogRepo, _, _ := NewMock(t)

	dialogRepo.EXPECT().Clear(gomock.Any(), int64(100)).Return(nil)
	assert.NoError(t, service.Cancel(context.Background(), 100))
}
