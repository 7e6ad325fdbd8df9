package models

// LoanUser is the borrower reference embedded in a loan detail response.
type LoanUser struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// Loan amounts are integer tugrik, no decimals.
type Loan struct {
	ID              int       `json:"id"`
	LoanNumber      string    `json:"loan_number"`
	UserID          int       `json:"user_id"`
	Principal       int64     `json:"principal"`
	Term            int       `json:"term"` // days
	InterestRate    float64   `json:"interest_rate"`
	InterestAmount  int64     `json:"interest_amount"`
	TotalAmount     int64     `json:"total_amount"`
	Status          string    `json:"status"`
	PaidAmount      int64     `json:"paid_amount"`
	RemainingAmount int64     `json:"remaining_amount"`
	DueDate         string    `json:"due_date,omitempty"`
	ExtensionCount  int       `json:"extension_count"`
	Purpose         string    `json:"purpose,omitempty"`
	RejectedReason  string    `json:"rejected_reason,omitempty"`
	CreatedAt       string    `json:"created_at"`
	ApprovedAt      string    `json:"approved_at,omitempty"`
	DisbursedAt     string    `json:"disbursed_at,omitempty"`
	User            *LoanUser `json:"user,omitempty"`
}

// Disbursed reports whether the loan has left the application phase,
// i.e. repayment figures are meaningful.
func (l Loan) Disbursed() bool {
	switch l.Status {
	case LoanActive, LoanExtended, LoanOverdue, LoanCompleted:
		return true
	}
	return false
}
