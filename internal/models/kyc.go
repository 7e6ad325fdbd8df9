package models

// KYCRecord is the identity-verification view of a user. The core platform
// historically served two field shapes for this entity; the dashboard
// normalizes everything to this one at the service boundary.
type KYCRecord struct {
	UserID         int    `json:"user_id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	RegisterNumber string `json:"register_number"`
	Address        string `json:"address"`
	Employment     string `json:"employment"`
	BankName       string `json:"bank_name"`
	BankAccount    string `json:"bank_account"`
	KYCStatus      string `json:"kyc_status"`
	SubmittedAt    string `json:"submitted_at"`
	RejectedReason string `json:"rejected_reason,omitempty"`
	IDCardFrontURL string `json:"id_card_front_url,omitempty"`
	IDCardBackURL  string `json:"id_card_back_url,omitempty"`
	SelfieURL      string `json:"selfie_url,omitempty"`
}

func (k KYCRecord) FullName() string {
	switch {
	case k.FirstName == "":
		return k.LastName
	case k.LastName == "":
		return k.FirstName
	}
	return k.FirstName + " " + k.LastName
}
