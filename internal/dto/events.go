package dto

type PurchaseEventRequestDTO struct {
	AccountID  int64  `json:"account_id" example:"5512093847"`
	Plan       string `json:"plan" example:"monthly"`
	PurchaseID string `json:"purchase_id" example:"PSK-9f62-1fc54cbd0244"`
}

type PurchaseEventResponseDTO struct {
	Rewarded   bool  `json:"rewarded" example:"true"`
	ReferrerID int64 `json:"referrer_id,omitempty" example:"6857550239"`
}

type RegisterReferralRequestDTO struct {
	ReferredAccountID int64  `json:"referred_account_id" example:"5512093847"`
	ReferralCode      string `json:"referral_code,omitempty" example:"REF68575502393"`
	ReferrerAccountID int64  `json:"referrer_account_id,omitempty" example:"6857550239"`
}
