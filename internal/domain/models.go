package domain

import "time"

const (
	// ReferralRewardKind начисление вознаграждения за приглашённого пользователя;
	ReferralRewardKind string = "referral_reward"
	// WithdrawalDebitKind списание по одобренной заявке на вывод;
	WithdrawalDebitKind string = "withdrawal_debit"
	// WithdrawalReversalKind компенсирующее начисление после сторно списания.
	WithdrawalReversalKind string = "withdrawal_reversal"
)

const (
	PendingReferralStatus   string = "pending"
	CompletedReferralStatus string = "completed"
)

const (
	PendingReviewWithdrawalStatus string = "pending_review"
	ApprovedWithdrawalStatus      string = "approved"
	RejectedWithdrawalStatus      string = "rejected"
)

type Account struct {
	ID           int64     `db:"id"`
	Balance      int64     `db:"balance"`
	TotalEarned  int64     `db:"total_earned"`
	ReferralCode string    `db:"referral_code"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// LedgerTransaction is immutable once written. Amount is in minor units,
// positive for credits and negative for debits.
type LedgerTransaction struct {
	ID          string    `db:"id"`
	AccountID   int64     `db:"account_id"`
	Amount      int64     `db:"amount"`
	Kind        string    `db:"kind"`
	ReferenceID string    `db:"reference_id"`
	CreatedAt   time.Time `db:"created_at"`
}

type ReferralRelationship struct {
	ID           string     `db:"id"`
	ReferrerID   int64      `db:"referrer_id"`
	ReferredID   int64      `db:"referred_id"`
	Status       string     `db:"status"`
	Plan         string     `db:"plan"`
	PurchaseID   string     `db:"purchase_id"`
	RewardAmount int64      `db:"reward_amount"`
	CreatedAt    time.Time  `db:"created_at"`
	CompletedAt  *time.Time `db:"completed_at"`
}

type WithdrawalRequest struct {
	ID            string     `db:"id"`
	AccountID     int64      `db:"account_id"`
	Amount        int64      `db:"amount"`
	AccountName   string     `db:"account_name"`
	BankName      string     `db:"bank_name"`
	AccountNumber string     `db:"account_number"`
	Status        string     `db:"status"`
	Notes         string     `db:"notes"`
	RequestedAt   time.Time  `db:"requested_at"`
	DecidedAt     *time.Time `db:"decided_at"`
	DecidedBy     *int64     `db:"decided_by"`
	NotifiedAt    *time.Time `db:"notified_at"`
}

const (
	CollectAmountStep        string = "amount"
	CollectAccountNameStep   string = "account_name"
	CollectBankNameStep      string = "bank_name"
	CollectAccountNumberStep string = "account_number"
)

// DialogState is the scratch state of an in-progress withdrawal dialogue.
// Only the fields collected by steps preceding Step are populated.
type DialogState struct {
	Step        string    `json:"step"`
	Amount      int64     `json:"amount,omitempty"`
	AccountName string    `json:"account_name,omitempty"`
	BankName    string    `json:"bank_name,omitempty"`
	StartedAt   time.Time `json:"started_at"`
}

type ReferralStats struct {
	Pending     int   `db:"pending"`
	Completed   int   `db:"completed"`
	TotalEarned int64 `db:"total_earned"`
}
