package events

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/doculuna/wallet/internal/dto"
	referralservice "github.com/doculuna/wallet/internal/service/referralservice"
	"github.com/doculuna/wallet/pkg/utils"
)

type Service interface {
	RegisterReferral(ctx context.Context, referrerID, referredID int64) error
	RegisterByCode(ctx context.Context, referredID int64, code string) error
	CompleteReferral(ctx context.Context, referredID int64, plan, purchaseID string) (bool, int64, error)
}

const (
	retryBase     = 100 * time.Millisecond
	retryAttempts = 3
)

type EventsHandler struct {
	referralService Service
}

func New(referralService Service) *EventsHandler {
	return &EventsHandler{
		referralService: referralService,
	}
}

// PurchaseConfirmed godoc
//
//	@Summary		Consume a purchase-confirmed event
//	@Description	Completes the pending referral of the buyer, if any, and credits the referrer. Safe against event redelivery.
//	@Tags			Events
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PurchaseEventRequestDTO	true	"Purchase confirmation"
//	@Success		200		{object}	dto.PurchaseEventResponseDTO	"Processing outcome"
//	@Failure		400		{object}	utils.Response					"Invalid request body"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/events/purchase [post]
func (h *EventsHandler) PurchaseConfirmed(w http.ResponseWriter, r *http.Request) {
	var req dto.PurchaseEventRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.AccountID <= 0 || req.PurchaseID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "account_id and purchase_id are required")
		return
	}

	var (
		rewarded   bool
		referrerID int64
	)
	// storage hiccups are the one error class worth retrying; the operation
	// itself is idempotent so a replay after a half-failure is safe
	backoff := retry.WithMaxRetries(retryAttempts, retry.NewFibonacci(retryBase))
	err := retry.Do(r.Context(), backoff, func(ctx context.Context) error {
		var err error
		rewarded, referrerID, err = h.referralService.CompleteReferral(ctx, req.AccountID, req.Plan, req.PurchaseID)
		if err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.PurchaseEventResponseDTO{
		Rewarded:   rewarded,
		ReferrerID: referrerID,
	})
}

// RegisterReferral godoc
//
//	@Summary		Register a referral relationship
//	@Description	Links a newly arrived user to their referrer, either by referral code or by explicit referrer id. Re-sending the same link is a no-op.
//	@Tags			Events
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterReferralRequestDTO	true	"Referral registration"
//	@Success		200		{object}	utils.Response	"Referral registered"
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Self referral or already referred"
//	@Failure		422		{object}	utils.Response	"Unknown referral code"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/referrals [post]
func (h *EventsHandler) RegisterReferral(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterReferralRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ReferredAccountID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "referred_account_id is required")
		return
	}

	var err error
	switch {
	case req.ReferralCode != "":
		err = h.referralService.RegisterByCode(r.Context(), req.ReferredAccountID, req.ReferralCode)
	case req.ReferrerAccountID > 0:
		err = h.referralService.RegisterReferral(r.Context(), req.ReferrerAccountID, req.ReferredAccountID)
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "referral_code or referrer_account_id is required")
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, referralservice.ErrSelfReferral):
			utils.RespondWithError(w, http.StatusConflict, "self referral is not allowed")
		case errors.Is(err, referralservice.ErrAlreadyReferred):
			utils.RespondWithError(w, http.StatusConflict, "user already referred")
		case errors.Is(err, referralservice.ErrUnknownCode):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "unknown referral code")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "referral registered"})
}
