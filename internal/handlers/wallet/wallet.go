package wallet

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/doculuna/wallet/internal/domain"
	"github.com/doculuna/wallet/internal/dto"
	"github.com/doculuna/wallet/internal/service/queryservice"
	"github.com/doculuna/wallet/pkg/utils"
)

type Service interface {
	BalanceSummary(ctx context.Context, accountID int64) (*queryservice.Summary, error)
	ReferralStats(ctx context.Context, accountID int64) (*domain.ReferralStats, error)
	Leaderboard(ctx context.Context, topN int) ([]domain.Account, error)
	WithdrawalHistory(ctx context.Context, accountID int64) ([]domain.WithdrawalRequest, error)
}

type WalletHandler struct {
	queryService Service
}

func New(queryService Service) *WalletHandler {
	return &WalletHandler{
		queryService: queryService,
	}
}

const defaultLeaderboardSize = 10

// GetSummary godoc
//
//	@Summary		Get wallet summary
//	@Description	Balance, lifetime earnings, referral code and referral counters for the account. The account is created on first access.
//	@Tags			Wallet
//	@Produce		json
//	@Param			accountID	path		int	true	"Account ID"
//	@Success		200			{object}	dto.BalanceSummaryResponseDTO	"Wallet summary"
//	@Failure		400			{object}	utils.Response					"Invalid account id"
//	@Failure		500			{object}	utils.Response					"Internal server error"
//	@Router			/api/wallet/{accountID} [get]
func (h *WalletHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountIDFromURL(w, r)
	if !ok {
		return
	}

	summary, err := h.queryService.BalanceSummary(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceSummaryResponseDTO{
		Balance:            summary.Account.Balance,
		TotalEarned:        summary.Account.TotalEarned,
		ReferralCode:       summary.Account.ReferralCode,
		PendingReferrals:   summary.Stats.Pending,
		CompletedReferrals: summary.Stats.Completed,
		ReferralEarnings:   summary.Stats.TotalEarned,
	})
}

// GetReferralStats godoc
//
//	@Summary		Get referral statistics
//	@Tags			Wallet
//	@Produce		json
//	@Param			accountID	path		int	true	"Account ID"
//	@Success		200			{object}	dto.ReferralStatsResponseDTO	"Referral counters"
//	@Failure		400			{object}	utils.Response					"Invalid account id"
//	@Failure		500			{object}	utils.Response					"Internal server error"
//	@Router			/api/wallet/{accountID}/referrals [get]
func (h *WalletHandler) GetReferralStats(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountIDFromURL(w, r)
	if !ok {
		return
	}

	stats, err := h.queryService.ReferralStats(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ReferralStatsResponseDTO{
		Pending:     stats.Pending,
		Completed:   stats.Completed,
		TotalEarned: stats.TotalEarned,
	})
}

// GetWithdrawalHistory godoc
//
//	@Summary		Get withdrawal history
//	@Description	All withdrawal requests of the account, newest first.
//	@Tags			Wallet
//	@Produce		json
//	@Param			accountID	path		int	true	"Account ID"
//	@Success		200			{array}		dto.WithdrawalItemDTO	"Withdrawal history"
//	@Success		204			{object}	utils.Response			"No withdrawals yet"
//	@Failure		400			{object}	utils.Response			"Invalid account id"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/wallet/{accountID}/withdrawals [get]
func (h *WalletHandler) GetWithdrawalHistory(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountIDFromURL(w, r)
	if !ok {
		return
	}

	requests, err := h.queryService.WithdrawalHistory(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}

	if len(requests) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Withdrawals not found")
		return
	}

	response := make([]dto.WithdrawalItemDTO, len(requests))
	for i, req := range requests {
		response[i] = dto.WithdrawalItemDTO{
			ID:          req.ID,
			Amount:      req.Amount,
			Status:      req.Status,
			Notes:       req.Notes,
			RequestedAt: req.RequestedAt,
			DecidedAt:   req.DecidedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetLeaderboard godoc
//
//	@Summary		Get referral leaderboard
//	@Description	Accounts ranked by lifetime earnings descending.
//	@Tags			Wallet
//	@Produce		json
//	@Param			limit	query		int	false	"Number of entries"	default(10)
//	@Success		200		{array}		dto.LeaderboardEntryDTO	"Leaderboard"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/leaderboard [get]
func (h *WalletHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := defaultLeaderboardSize
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	accounts, err := h.queryService.Leaderboard(r.Context(), limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.LeaderboardEntryDTO, len(accounts))
	for i, account := range accounts {
		response[i] = dto.LeaderboardEntryDTO{
			AccountID:   account.ID,
			TotalEarned: account.TotalEarned,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func accountIDFromURL(w http.ResponseWriter, r *http.Request) (int64, bool) {
	accountID, err := strconv.ParseInt(chi.URLParam(r, "accountID"), 10, 64)
	if err != nil || accountID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid account id")
		return 0, false
	}
	return accountID, true
}
