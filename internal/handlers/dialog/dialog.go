package dialog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/doculuna/wallet/internal/domain"
	"github.com/doculuna/wallet/internal/dto"
	withdrawalservice "github.com/doculuna/wallet/internal/service/withdrawalservice"
	"github.com/doculuna/wallet/pkg/utils"
)

type Service interface {
	Start(ctx context.Context, accountID int64) (*domain.DialogState, error)
	Input(ctx context.Context, accountID int64, text string) (*withdrawalservice.StepResult, error)
	Cancel(ctx context.Context, accountID int64) error
}

type DialogHandler struct {
	withdrawalService Service
}

func New(withdrawalService Service) *DialogHandler {
	return &DialogHandler{
		withdrawalService: withdrawalService,
	}
}

// Start godoc
//
//	@Summary		Start a withdrawal dialogue
//	@Description	Opens the step-by-step withdrawal request dialogue for the account.
//	@Tags			Withdrawal
//	@Produce		json
//	@Param			accountID	path		int	true	"Account ID"
//	@Success		200			{object}	dto.DialogStateResponseDTO	"First dialogue step"
//	@Failure		402			{object}	utils.Response				"Balance below withdrawal minimum"
//	@Failure		409			{object}	utils.Response				"Request already in progress"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/wallet/{accountID}/withdraw/start [post]
func (h *DialogHandler) Start(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountIDFromURL(w, r)
	if !ok {
		return
	}

	state, err := h.withdrawalService.Start(r.Context(), accountID)
	if err != nil {
		switch {
		case errors.Is(err, withdrawalservice.ErrBelowMinimum):
			utils.RespondWithError(w, http.StatusPaymentRequired, "balance below withdrawal minimum")
		case errors.Is(err, withdrawalservice.ErrDuplicateRequestInProgress):
			utils.RespondWithError(w, http.StatusConflict, "withdrawal request already in progress")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stateDTO(state))
}

// Input godoc
//
//	@Summary		Feed one message into the withdrawal dialogue
//	@Description	Validation failures keep the dialogue on the same step and name the violation so the transport can re-prompt.
//	@Tags			Withdrawal
//	@Accept			json
//	@Produce		json
//	@Param			accountID	path		int							true	"Account ID"
//	@Param			request		body		dto.DialogInputRequestDTO	true	"User input"
//	@Success		200			{object}	dto.DialogStateResponseDTO	"Next step or submitted request"
//	@Failure		402			{object}	utils.Response				"Amount exceeds balance"
//	@Failure		404			{object}	utils.Response				"No dialogue in progress"
//	@Failure		409			{object}	utils.Response				"Open request already exists"
//	@Failure		422			{object}	utils.Response				"Input failed validation"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/wallet/{accountID}/withdraw/input [post]
func (h *DialogHandler) Input(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountIDFromURL(w, r)
	if !ok {
		return
	}

	var req dto.DialogInputRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.withdrawalService.Input(r.Context(), accountID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, withdrawalservice.ErrNoDialog):
			utils.RespondWithError(w, http.StatusNotFound, "no withdrawal dialogue in progress")
		case errors.Is(err, withdrawalservice.ErrDuplicateRequestInProgress):
			utils.RespondWithError(w, http.StatusConflict, "withdrawal request already in progress")
		case errors.Is(err, withdrawalservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "invalid amount")
		case errors.Is(err, withdrawalservice.ErrBelowMinimum):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "amount below withdrawal minimum")
		case errors.Is(err, withdrawalservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, "amount exceeds balance")
		case errors.Is(err, withdrawalservice.ErrNameTooShort):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "account name too short")
		case errors.Is(err, withdrawalservice.ErrBankTooShort):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "bank name too short")
		case errors.Is(err, withdrawalservice.ErrBadAccountNumber):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "account number must be at least 10 digits")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	if result.Submitted != nil {
		utils.RespondWithJSON(w, http.StatusOK, dto.DialogStateResponseDTO{
			Submitted: &dto.WithdrawalItemDTO{
				ID:          result.Submitted.ID,
				Amount:      result.Submitted.Amount,
				Status:      result.Submitted.Status,
				RequestedAt: result.Submitted.RequestedAt,
			},
		})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stateDTO(result.State))
}

// Cancel godoc
//
//	@Summary		Cancel the withdrawal dialogue
//	@Tags			Withdrawal
//	@Produce		json
//	@Param			accountID	path		int	true	"Account ID"
//	@Success		200			{object}	utils.Response	"Dialogue cancelled"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/{accountID}/withdraw/cancel [post]
func (h *DialogHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountIDFromURL(w, r)
	if !ok {
		return
	}

	if err := h.withdrawalService.Cancel(r.Context(), accountID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "withdrawal cancelled"})
}

func stateDTO(state *domain.DialogState) dto.DialogStateResponseDTO {
	return dto.DialogStateResponseDTO{
		Step:        state.Step,
		Amount:      state.Amount,
		AccountName: state.AccountName,
		BankName:    state.BankName,
	}
}

func accountIDFromURL(w http.ResponseWriter, r *http.Request) (int64, bool) {
	accountID, err := strconv.ParseInt(chi.URLParam(r, "accountID"), 10, 64)
	if err != nil || accountID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid account id")
		return 0, false
	}
	return accountID, true
}
