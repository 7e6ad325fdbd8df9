package models

// Withdrawal is a payout request from a user wallet to a bank account.
type Withdrawal struct {
	ID             int       `json:"id"`
	UserID         int       `json:"user_id"`
	Amount         int64     `json:"amount"`
	BankName       string    `json:"bank_name"`
	BankAccount    string    `json:"bank_account"`
	AccountHolder  string    `json:"account_holder"`
	Status         string    `json:"status"`
	RejectedReason string    `json:"rejected_reason,omitempty"`
	CreatedAt      string    `json:"created_at"`
	User           *LoanUser `json:"user,omitempty"`
}
