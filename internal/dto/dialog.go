package dto

type DialogInputRequestDTO struct {
	Text string `json:"text" example:"2000"`
}

// DialogStateResponseDTO tells the transport which prompt to render next.
// Fields collected so far are echoed back for confirmation messages.
type DialogStateResponseDTO struct {
	Step        string             `json:"step,omitempty" example:"account_name"`
	Amount      int64              `json:"amount,omitempty" example:"200000"`
	AccountName string             `json:"account_name,omitempty" example:"Ada Obi"`
	BankName    string             `json:"bank_name,omitempty" example:"GTBank"`
	Submitted   *WithdrawalItemDTO `json:"submitted,omitempty"`
}
