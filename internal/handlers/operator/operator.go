package operator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/doculuna/wallet/internal/domain"
	"github.com/doculuna/wallet/internal/dto"
	"github.com/doculuna/wallet/internal/service/approvalservice"
	"github.com/doculuna/wallet/internal/service/ledgerservice"
	"github.com/doculuna/wallet/pkg/auth"
	"github.com/doculuna/wallet/pkg/utils"
)

type Service interface {
	ListPending(ctx context.Context) ([]domain.WithdrawalRequest, error)
	Approve(ctx context.Context, requestID string, operatorID int64) (*domain.WithdrawalRequest, error)
	Reject(ctx context.Context, requestID string, operatorID int64, notes string) (*domain.WithdrawalRequest, error)
	Reverse(ctx context.Context, transactionID string, operatorID int64) (*domain.LedgerTransaction, error)
}

// Allowlist answers whether an account may act as an operator.
type Allowlist interface {
	IsOperator(accountID int64) bool
}

const tokenTTL = 24 * time.Hour

type OperatorHandler struct {
	approvalService Service
	jwtService      auth.JWTServiceInterface
	hashService     auth.PasswordVerifier
	allowlist       Allowlist
	passwordHash    string
}

func New(approvalService Service, jwtService auth.JWTServiceInterface, hashService auth.PasswordVerifier, allowlist Allowlist, passwordHash string) *OperatorHandler {
	return &OperatorHandler{
		approvalService: approvalService,
		jwtService:      jwtService,
		hashService:     hashService,
		allowlist:       allowlist,
		passwordHash:    passwordHash,
	}
}

// Login godoc
//
//	@Summary		Operator login
//	@Description	Issues a bearer token for an allow-listed operator.
//	@Tags			Operator
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.OperatorLoginRequestDTO	true	"Operator credentials"
//	@Success		200		{object}	dto.TokenResponseDTO		"Bearer token"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"Bad credentials or not an operator"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/operator/login [post]
func (h *OperatorHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.OperatorLoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !h.allowlist.IsOperator(req.OperatorID) || !h.hashService.ComparePassword(h.passwordHash, req.Password) {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	token, err := h.jwtService.GenerateJWT(req.OperatorID, time.Now().Add(tokenTTL))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TokenResponseDTO{Token: token})
}

// ListPending godoc
//
//	@Summary		List pending withdrawal requests
//	@Description	Operator review queue, oldest request first.
//	@Tags			Operator
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PendingWithdrawalDTO	"Pending requests"
//	@Failure		401	{object}	utils.Response				"Unauthorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/operator/withdrawals [get]
func (h *OperatorHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	requests, err := h.approvalService.ListPending(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.PendingWithdrawalDTO, len(requests))
	for i, req := range requests {
		response[i] = dto.PendingWithdrawalDTO{
			ID:            req.ID,
			AccountID:     req.AccountID,
			Amount:        req.Amount,
			AccountName:   req.AccountName,
			BankName:      req.BankName,
			AccountNumber: req.AccountNumber,
			RequestedAt:   req.RequestedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Approve godoc
//
//	@Summary		Approve a withdrawal request
//	@Description	Debits the amount and marks the request approved. The first decision wins; a second one observes the terminal state.
//	@Tags			Operator
//	@Security		BearerAuth
//	@Produce		json
//	@Param			requestID	path		string	true	"Request ID"
//	@Success		200			{object}	dto.DecisionResponseDTO	"Approved request"
//	@Failure		401			{object}	utils.Response			"Unauthorized"
//	@Failure		402			{object}	utils.Response			"Insufficient funds at approval time"
//	@Failure		404			{object}	utils.Response			"Request not found"
//	@Failure		409			{object}	utils.Response			"Already decided"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/operator/withdrawals/{requestID}/approve [post]
func (h *OperatorHandler) Approve(w http.ResponseWriter, r *http.Request) {
	operatorID := r.Context().Value(auth.OperatorIDKey).(int64)
	requestID := chi.URLParam(r, "requestID")

	req, err := h.approvalService.Approve(r.Context(), requestID, operatorID)
	if err != nil {
		respondDecisionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, decisionDTO(req))
}

// Reject godoc
//
//	@Summary		Reject a withdrawal request
//	@Description	Marks the request rejected; the balance is untouched.
//	@Tags			Operator
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			requestID	path		string					true	"Request ID"
//	@Param			request		body		dto.RejectRequestDTO	false	"Rejection notes"
//	@Success		200			{object}	dto.DecisionResponseDTO	"Rejected request"
//	@Failure		401			{object}	utils.Response			"Unauthorized"
//	@Failure		404			{object}	utils.Response			"Request not found"
//	@Failure		409			{object}	utils.Response			"Already decided"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/operator/withdrawals/{requestID}/reject [post]
func (h *OperatorHandler) Reject(w http.ResponseWriter, r *http.Request) {
	operatorID := r.Context().Value(auth.OperatorIDKey).(int64)
	requestID := chi.URLParam(r, "requestID")

	var body dto.RejectRequestDTO
	if r.Body != nil {
		// notes are optional
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	req, err := h.approvalService.Reject(r.Context(), requestID, operatorID, body.Notes)
	if err != nil {
		respondDecisionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, decisionDTO(req))
}

// Reverse godoc
//
//	@Summary		Reverse a withdrawal debit
//	@Description	Compensates an approved withdrawal that was later found invalid. The original debit stays in the ledger.
//	@Tags			Operator
//	@Security		BearerAuth
//	@Produce		json
//	@Param			transactionID	path		string	true	"Ledger transaction ID"
//	@Success		200				{object}	dto.ReversalResponseDTO	"Compensating credit"
//	@Failure		401				{object}	utils.Response			"Unauthorized"
//	@Failure		404				{object}	utils.Response			"Transaction not found"
//	@Failure		422				{object}	utils.Response			"Transaction is not a withdrawal debit"
//	@Failure		500				{object}	utils.Response			"Internal server error"
//	@Router			/api/operator/transactions/{transactionID}/reverse [post]
func (h *OperatorHandler) Reverse(w http.ResponseWriter, r *http.Request) {
	operatorID := r.Context().Value(auth.OperatorIDKey).(int64)
	transactionID := chi.URLParam(r, "transactionID")

	txn, err := h.approvalService.Reverse(r.Context(), transactionID, operatorID)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrTransactionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "transaction not found")
		case errors.Is(err, ledgerservice.ErrNotReversible):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "transaction is not a withdrawal debit")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ReversalResponseDTO{
		TransactionID: txn.ID,
		AccountID:     txn.AccountID,
		Amount:        txn.Amount,
	})
}

func respondDecisionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, approvalservice.ErrRequestNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "withdrawal request not found")
	case errors.Is(err, approvalservice.ErrAlreadyDecided):
		utils.RespondWithError(w, http.StatusConflict, "withdrawal request already decided")
	case errors.Is(err, ledgerservice.ErrInsufficientFunds):
		utils.RespondWithError(w, http.StatusPaymentRequired, "insufficient funds")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func decisionDTO(req *domain.WithdrawalRequest) dto.DecisionResponseDTO {
	return dto.DecisionResponseDTO{
		ID:        req.ID,
		Status:    req.Status,
		DecidedBy: req.DecidedBy,
		DecidedAt: req.DecidedAt,
	}
}
