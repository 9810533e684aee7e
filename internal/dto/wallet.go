package dto

import "time"

type BalanceSummaryResponseDTO struct {
	Balance            int64  `json:"balance" example:"215000"`
	TotalEarned        int64  `json:"total_earned" example:"350000"`
	ReferralCode       string `json:"referral_code" example:"REF68575502393"`
	PendingReferrals   int    `json:"pending_referrals" example:"2"`
	CompletedReferrals int    `json:"completed_referrals" example:"5"`
	ReferralEarnings   int64  `json:"referral_earnings" example:"175000"`
}

type ReferralStatsResponseDTO struct {
	Pending     int   `json:"pending" example:"2"`
	Completed   int   `json:"completed" example:"5"`
	TotalEarned int64 `json:"total_earned" example:"175000"`
}

type LeaderboardEntryDTO struct {
	AccountID   int64 `json:"account_id" example:"6857550239"`
	TotalEarned int64 `json:"total_earned" example:"350000"`
}

type WithdrawalItemDTO struct {
	ID          string     `json:"id" example:"7cfb2f44-8f23-4a39-9f62-1fc54cbd0244"`
	Amount      int64      `json:"amount" example:"200000"`
	Status      string     `json:"status" example:"pending_review"`
	Notes       string     `json:"notes,omitempty"`
	RequestedAt time.Time  `json:"requested_at"`
	DecidedAt   *time.Time `json:"decided_at,omitempty"`
}
