package operator

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
	"golang.org/x/crypto/bcrypt"

	"github.com/doculuna/wallet/internal/domain"
	"github.com/doculuna/wallet/internal/dto"
	"github.com/doculuna/wallet/internal/service/approvalservice"
	"github.com/doculuna/wallet/internal/service/ledgerservice"
	"github.com/doculuna/wallet/pkg/auth"
)

const operatorPassword = "s3cret"

func NewMock(t *testing.T) (*OperatorHandler, *MockService, *MockAllowlist) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	allowlist := NewMockAllowlist(ctrl)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(operatorPassword), bcrypt.DefaultCost)
	assert.NoError(t, err)
	handler := New(service, auth.NewJWTService("secret"), &auth.HashService{}, allowlist, string(passwordHash))
	defer ctrl.Finish()
	return handler, service, allowlist
}

func operatorContext(r *http.Request, operatorID int64) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.OperatorIDKey, operatorID))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestLoginHandler(t *testing.T) {
	handler, _, allowlist := NewMock(t)
	jwtService := auth.NewJWTService("secret")

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"operator_id":555,"password":"s3cret"}`,
			prepareMock: func() {
				allowlist.EXPECT().IsOperator(int64(555)).Return(true)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{"operator_id":}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name: "Not an operator",
			body: `{"operator_id":777,"password":"s3cret"}`,
			prepareMock: func() {
				allowlist.EXPECT().IsOperator(int64(777)).Return(false)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Unauthorized",
		},
		{
			name: "Wrong password",
			body: `{"operator_id":555,"password":"guess"}`,
			prepareMock: func() {
				allowlist.EXPECT().IsOperator(int64(555)).Return(true)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Unauthorized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/operator/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Login(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.TokenResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				claims, err := jwtService.ValidateToken(body.Token)
				assert.NoError(t, err)
				assert.Equal(t, int64(555), claims.OperatorID)
			}
		})
	}
}

func TestListPendingHandler(t *testing.T) {
	handler, service, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().ListPending(gomock.Any()).Return([]domain.WithdrawalRequest{
					{
						ID:            "req-1",
						AccountID:     100,
						Amount:        200000,
						AccountName:   "Ada Obi",
						BankName:      "GTBank",
						AccountNumber: "0123456789",
						Status:        domain.PendingReviewWithdrawalStatus,
						RequestedAt:   now,
					},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name: "Empty queue",
			prepareMock: func() {
				service.EXPECT().ListPending(gomock.Any()).Return([]domain.WithdrawalRequest{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  0,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().ListPending(gomock.Any()).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/operator/withdrawals", nil)
			r = operatorContext(r, 555)
			w := httptest.NewRecorder()
			handler.ListPending(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.PendingWithdrawalDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, tt.expectedLen)
			}
		})
	}
}

func TestApproveHandler(t *testing.T) {
	handler, service, _ := NewMock(t)
	now := time.Now()
	operatorID := int64(555)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Request approved",
			prepareMock: func() {
				service.EXPECT().
					Approve(gomock.Any(), "req-1", operatorID).
					Return(&domain.WithdrawalRequest{
						ID:        "req-1",
						Status:    domain.ApprovedWithdrawalStatus,
						DecidedBy: &operatorID,
						DecidedAt: &now,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Request not found",
			prepareMock: func() {
				service.EXPECT().
					Approve(gomock.Any(), "req-1", operatorID).
					Return(nil, approvalservice.ErrRequestNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "withdrawal request not found",
		},
		{
			name: "Already decided",
			prepareMock: func() {
				service.EXPECT().
					Approve(gomock.Any(), "req-1", operatorID).
					Return(nil, approvalservice.ErrAlreadyDecided)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "withdrawal request already decided",
		},
		{
			name: "Insufficient funds",
			prepareMock: func() {
				service.EXPECT().
					Approve(gomock.Any(), "req-1", operatorID).
					Return(nil, ledgerservice.ErrInsufficientFunds)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: "insufficient funds",
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					Approve(gomock.Any(), "req-1", operatorID).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/operator/withdrawals/req-1/approve", nil)
			r = operatorContext(r, operatorID)
			r = withURLParam(r, "requestID", "req-1")
			w := httptest.NewRecorder()
			handler.Approve(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.DecisionResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, domain.ApprovedWithdrawalStatus, body.Status)
				assert.Equal(t, &operatorID, body.DecidedBy)
			}
		})
	}
}

func TestRejectHandler(t *testing.T) {
	handler, service, _ := NewMock(t)
	now := time.Now()
	operatorID := int64(555)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Request rejected with notes",
			body: `{"notes":"name does not match bank records"}`,
			prepareMock: func() {
				service.EXPECT().
					Reject(gomock.Any(), "req-1", operatorID, "name does not match bank records").
					Return(&domain.WithdrawalRequest{
						ID:        "req-1",
						Status:    domain.RejectedWithdrawalStatus,
						Notes:     "name does not match bank records",
						DecidedBy: &operatorID,
						DecidedAt: &now,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Request rejected without notes",
			body: ``,
			prepareMock: func() {
				service.EXPECT().
					Reject(gomock.Any(), "req-1", operatorID, "").
					Return(&domain.WithdrawalRequest{
						ID:        "req-1",
						Status:    domain.RejectedWithdrawalStatus,
						DecidedBy: &operatorID,
						DecidedAt: &now,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Already decided",
			body: `{"notes":"dup"}`,
			prepareMock: func() {
				service.EXPECT().
					Reject(gomock.Any(), "req-1", operatorID, "dup").
					Return(nil, approvalservice.ErrAlreadyDecided)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "withdrawal request already decided",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/operator/withdrawals/req-1/reject", bytes.NewBufferString(tt.body))
			r = operatorContext(r, operatorID)
			r = withURLParam(r, "requestID", "req-1")
			w := httptest.NewRecorder()
			handler.Reject(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestReverseHandler(t *testing.T) {
	handler, service, _ := NewMock(t)
	operatorID := int64(555)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedBody  dto.ReversalResponseDTO
	}{
		{
			name: "Debit reversed",
			prepareMock: func() {
				service.EXPECT().
					Reverse(gomock.Any(), "txn-1", operatorID).
					Return(&domain.LedgerTransaction{
						ID:        "txn-2",
						AccountID: 100,
						Amount:    200000,
						Kind:      domain.WithdrawalReversalKind,
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.ReversalResponseDTO{
				TransactionID: "txn-2",
				AccountID:     100,
				Amount:        200000,
			},
		},
		{
			name: "Transaction not found",
			prepareMock: func() {
				service.EXPECT().
					Reverse(gomock.Any(), "txn-1", operatorID).
					Return(nil, ledgerservice.ErrTransactionNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "transaction not found",
		},
		{
			name: "Not a withdrawal debit",
			prepareMock: func() {
				service.EXPECT().
					Reverse(gomock.Any(), "txn-1", operatorID).
					Return(nil, ledgerservice.ErrNotReversible)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "transaction is not a withdrawal debit",
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					Reverse(gomock.Any(), "txn-1", operatorID).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/operator/transactions/txn-1/reverse", nil)
			r = operatorContext(r, operatorID)
			r = withURLParam(r, "transactionID", "txn-1")
			w := httptest.NewRecorder()
			handler.Reverse(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.ReversalResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}
