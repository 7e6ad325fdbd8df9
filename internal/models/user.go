package models

// Admin is the operator identity returned by the core platform on login.
type Admin struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// User is a platform customer as seen by the admin dashboard.
type User struct {
	ID           int    `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Status       string `json:"status"`
	KYCStatus    string `json:"kyc_status"`
	CreditLimit  int64  `json:"credit_limit"`
	CreditScore  int    `json:"credit_score"`
	RegisteredAt string `json:"registered_at"`
}

// FullName joins the name parts, tolerating records where either is empty.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
