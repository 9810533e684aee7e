package dto

import "time"

type OperatorLoginRequestDTO struct {
	OperatorID int64  `json:"operator_id" example:"6857550239"`
	Password   string `json:"password" example:"s3cret"`
}

type TokenResponseDTO struct {
	Token string `json:"token"`
}

type PendingWithdrawalDTO struct {
	ID            string    `json:"id" example:"7cfb2f44-8f23-4a39-9f62-1fc54cbd0244"`
	AccountID     int64     `json:"account_id" example:"5512093847"`
	Amount        int64     `json:"amount" example:"200000"`
	AccountName   string    `json:"account_name" example:"Ada Obi"`
	BankName      string    `json:"bank_name" example:"GTBank"`
	AccountNumber string    `json:"account_number" example:"0123456789"`
	RequestedAt   time.Time `json:"requested_at"`
}

type RejectRequestDTO struct {
	Notes string `json:"notes" example:"name does not match bank records"`
}

type DecisionResponseDTO struct {
	ID        string     `json:"id"`
	Status    string     `json:"status" example:"approved"`
	DecidedBy *int64     `json:"decided_by,omitempty"`
	DecidedAt *time.Time `json:"decided_at,omitempty"`
}

type ReversalResponseDTO struct {
	TransactionID string `json:"transaction_id"`
	AccountID     int64  `json:"account_id"`
	Amount        int64  `json:"amount" example:"200000"`
}
