package models

// DashboardStats is the aggregate snapshot shown on the landing page.
// The shape follows the current core platform contract; the older flat
// shape (totalUsers, pendingKYC, ...) is no longer served.
type DashboardStats struct {
	Users       UserStats       `json:"users"`
	KYC         KYCStats        `json:"kyc"`
	Loans       LoanStats       `json:"loans"`
	LoanAmounts LoanAmountStats `json:"loanAmounts"`
	Withdrawals WithdrawalStats `json:"withdrawals"`
	Wallet      WalletStats     `json:"wallet"`
	Today       TodayStats      `json:"today"`
	RecentKYC   []KYCRecord     `json:"recentKYC,omitempty"`
	RecentLoans []Loan          `json:"recentLoans,omitempty"`
}

type UserStats struct {
	Total   int `json:"total"`
	Active  int `json:"active"`
	Blocked int `json:"blocked"`
}

type KYCStats struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

type LoanStats struct {
	Pending   int `json:"pending"`
	Active    int `json:"active"`
	Overdue   int `json:"overdue"`
	Completed int `json:"completed"`
}

type LoanAmountStats struct {
	Disbursed   int64 `json:"disbursed"`
	Outstanding int64 `json:"outstanding"`
	Repaid      int64 `json:"repaid"`
}

type WithdrawalStats struct {
	Pending       int   `json:"pending"`
	PendingAmount int64 `json:"pendingAmount"`
}

type WalletStats struct {
	Balance int64 `json:"balance"`
}

type TodayStats struct {
	NewUsers   int   `json:"newUsers"`
	NewLoans   int   `json:"newLoans"`
	Repayments int64 `json:"repayments"`
}
