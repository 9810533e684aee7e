package dialog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/doculuna/wallet/internal/domain"
	"github.com/doculuna/wallet/internal/dto"
	withdrawalservice "github.com/doculuna/wallet/internal/service/withdrawalservice"
)

func NewMock(t *testing.T) (*DialogHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withAccountID(r *http.Request, accountID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("accountID", accountID)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestStartHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		accountID     string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedStep  string
	}{
		{
			name:      "Dialogue opened",
			accountID: "100",
			prepareMock: func() {
				service.EXPECT().
					Start(gomock.Any(), int64(100)).
					Return(&domain.DialogState{Step: domain.CollectAmountStep}, nil)
			},
			expectedCode: http.StatusOK,
			expectedStep: domain.CollectAmountStep,
		},
		{
			name:      "Balance below minimum",
			accountID: "100",
			prepareMock: func() {
				service.EXPECT().
					Start(gomock.Any(), int64(100)).
					Return(nil, withdrawalservice.ErrBelowMinimum)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: "balance below withdrawal minimum",
		},
		{
			name:      "Request already in progress",
			accountID: "100",
			prepareMock: func() {
				service.EXPECT().
					Start(gomock.Any(), int64(100)).
					Return(nil, withdrawalservice.ErrDuplicateRequestInProgress)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "withdrawal request already in progress",
		},
		{
			name:         "Invalid account id",
			accountID:    "0",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "Internal server error",
			accountID: "100",
			prepareMock: func() {
				service.EXPECT().
					Start(gomock.Any(), int64(100)).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/withdraw/start", nil)
			r = withAccountID(r, tt.accountID)
			w := httptest.NewRecorder()
			handler.Start(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.DialogStateResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedStep, body.Step)
			}
		})
	}
}

func TestInputHandler(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Now()

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Amount accepted",
			body: `{"text":"200,000"}`,
			prepareMock: func() {
				service.EXPECT().
					Input(gomock.Any(), int64(100), "200,000").
					Return(&withdrawalservice.StepResult{
						State: &domain.DialogState{Step: domain.CollectAccountNameStep, Amount: 200000},
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Request submitted",
			body: `{"text":"0123456789"}`,
			prepareMock: func() {
				service.EXPECT().
					Input(gomock.Any(), int64(100), "0123456789").
					Return(&withdrawalservice.StepResult{
						Submitted: &domain.WithdrawalRequest{
							ID:          "req-1",
							Amount:      200000,
							Status:      domain.PendingReviewWithdrawalStatus,
							RequestedAt: now,
						},
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{"text":}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name: "No dialogue in progress",
			body: `{"text":"200000"}`,
			prepareMock: func() {
				service.EXPECT().
					Input(gomock.Any(), int64(100), "200000").
					Return(nil, withdrawalservice.ErrNoDialog)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "no withdrawal dialogue in progress",
		},
		{
			name: "Open request already exists at submit",
			body: `{"text":"0123456789"}`,
			prepareMock: func() {
				service.EXPECT().
					Input(gomock.Any(), int64(100), "0123456789").
					Return(nil, withdrawalservice.ErrDuplicateRequestInProgress)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "withdrawal request already in progress",
		},
		{
			name: "Amount not a number",
			body: `{"text":"plenty"}`,
			prepareMock: func() {
				service.EXPECT().
					Input(gomock.Any(), int64(100), "plenty").
					Return(nil, withdrawalservice.ErrInvalidAmount)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "invalid amount",
		},
		{
			name: "Amount exceeds balance",
			body: `{"text":"900000"}`,
			prepareMock: func() {
				service.EXPECT().
					Input(gomock.Any(), int64(100), "900000").
					Return(nil, withdrawalservice.ErrInsufficientFunds)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: "amount exceeds balance",
		},
		{
			name: "Account number too short",
			body: `{"text":"12345"}`,
			prepareMock: func() {
				service.EXPECT().
					Input(gomock.Any(), int64(100), "12345").
					Return(nil, withdrawalservice.ErrBadAccountNumber)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "account number must be at least 10 digits",
		},
		{
			name: "Internal server error",
			body: `{"text":"200000"}`,
			prepareMock: func() {
				service.EXPECT().
					Input(gomock.Any(), int64(100), "200000").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/withdraw/input", bytes.NewBufferString(tt.body))
			r = withAccountID(r, "100")
			w := httptest.NewRecorder()
			handler.Input(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestInputHandlerSubmittedBody(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Now()

	service.EXPECT().
		Input(gomock.Any(), int64(100), "0123456789").
		Return(&withdrawalservice.StepResult{
			Submitted: &domain.WithdrawalRequest{
				ID:          "req-1",
				Amount:      200000,
				Status:      domain.PendingReviewWithdrawalStatus,
				RequestedAt: now,
			},
		}, nil)

	r := httptest.NewRequest(http.MethodPost, "/withdraw/input", bytes.NewBufferString(`{"text":"0123456789"}`))
	r = withAccountID(r, "100")
	w := httptest.NewRecorder()
	handler.Input(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.DialogStateResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.NotNil(t, body.Submitted)
	assert.Equal(t, "req-1", body.Submitted.ID)
	assert.Equal(t, domain.PendingReviewWithdrawalStatus, body.Submitted.Status)
}

func TestCancelHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Dialogue cancelled",
			prepareMock: func() {
				service.EXPECT().Cancel(gomock.Any(), int64(100)).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().Cancel(gomock.Any(), int64(100)).Return(errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/withdraw/cancel", nil)
			r = withAccountID(r, "100")
			w := httptest.NewRecorder()
			handler.Cancel(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
