package models

// KYC statuses as reported by the core platform.
const (
	KYCNotSubmitted = "not_submitted"
	KYCPending      = "pending"
	KYCApproved     = "approved"
	KYCRejected     = "rejected"
)

// Loan statuses. The dashboard only ever triggers pending -> approved
// and pending -> rejected; everything else is driven by the core platform.
const (
	LoanPending   = "pending"
	LoanApproved  = "approved"
	LoanActive    = "active"
	LoanExtended  = "extended"
	LoanOverdue   = "overdue"
	LoanRejected  = "rejected"
	LoanCompleted = "completed"
)

// Withdrawal statuses.
const (
	WithdrawalPending   = "pending"
	WithdrawalCompleted = "completed"
	WithdrawalRejected  = "rejected"
)

// User account statuses.
const (
	UserActive  = "active"
	UserBlocked = "blocked"
)
