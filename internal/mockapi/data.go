package mockapi

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/bxcodec/faker/v3"

	"github.com/moncredit/admin-dashboard/internal/models"
)

// seedProfile is the faker template for a generated customer. The numeric
// and status fields are filled in afterwards so their distribution can be
// controlled.
type seedProfile struct {
	FirstName string `faker:"first_name"`
	LastName  string `faker:"last_name"`
	Email     string `faker:"email"`
	Phone     string `faker:"e_164_phone_number"`
}

var (
	kycStatuses  = []string{models.KYCNotSubmitted, models.KYCPending, models.KYCApproved, models.KYCRejected}
	loanStatuses = []string{models.LoanPending, models.LoanActive, models.LoanOverdue, models.LoanCompleted, models.LoanRejected}
	bankNames    = []string{"Хаан банк", "Голомт банк", "Худалдаа хөгжлийн банк", "Төрийн банк"}
)

func (s *Server) seed(users, loans, withdrawals int) {
	now := time.Now()

	for i := 1; i <= users; i++ {
		var p seedProfile
		if err := faker.FakeData(&p); err != nil {
			log.Printf("[MOCKAPI] faker: %v", err)
			continue
		}

		status := models.UserActive
		if i%9 == 0 {
			status = models.UserBlocked
		}

		u := &models.User{
			ID:           i,
			FirstName:    p.FirstName,
			LastName:     p.LastName,
			Email:        p.Email,
			Phone:        p.Phone,
			Status:       status,
			KYCStatus:    kycStatuses[i%len(kycStatuses)],
			CreditLimit:  int64(100_000 * (1 + rand.Intn(20))),
			CreditScore:  300 + rand.Intn(550),
			RegisteredAt: now.AddDate(0, 0, -rand.Intn(365)).Format(time.RFC3339),
		}
		s.users[u.ID] = u

		if u.KYCStatus != models.KYCNotSubmitted {
			s.kyc[u.ID] = &models.KYCRecord{
				UserID:         u.ID,
				FirstName:      u.FirstName,
				LastName:       u.LastName,
				Email:          u.Email,
				Phone:          u.Phone,
				RegisterNumber: fmt.Sprintf("УБ%08d", 10000000+rand.Intn(89999999)),
				Address:        faker.Sentence(),
				Employment:     faker.Word(),
				BankName:       bankNames[rand.Intn(len(bankNames))],
				BankAccount:    fmt.Sprintf("%010d", rand.Intn(1_000_000_000)),
				KYCStatus:      u.KYCStatus,
				SubmittedAt:    now.AddDate(0, 0, -rand.Intn(60)).Format(time.RFC3339),
				IDCardFrontURL: fmt.Sprintf("https://cdn.moncredit.mn/kyc/%d/front.jpg", u.ID),
				IDCardBackURL:  fmt.Sprintf("https://cdn.moncredit.mn/kyc/%d/back.jpg", u.ID),
				SelfieURL:      fmt.Sprintf("https://cdn.moncredit.mn/kyc/%d/selfie.jpg", u.ID),
			}
			if u.KYCStatus == models.KYCRejected {
				s.kyc[u.ID].RejectedReason = "Бичиг баримт тодорхойгүй байна"
			}
		}
	}

	ids := make([]int, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}

	for i := 1; i <= loans; i++ {
		user := s.users[ids[rand.Intn(len(ids))]]
		principal := int64(50_000 * (1 + rand.Intn(40)))
		rate := 2.5
		interest := int64(float64(principal) * rate / 100)
		status := loanStatuses[i%len(loanStatuses)]

		l := &models.Loan{
			ID:             i,
			LoanNumber:     fmt.Sprintf("LN%06d", i),
			UserID:         user.ID,
			Principal:      principal,
			Term:           14 * (1 + rand.Intn(4)),
			InterestRate:   rate,
			InterestAmount: interest,
			TotalAmount:    principal + interest,
			Status:         status,
			CreatedAt:      now.AddDate(0, 0, -rand.Intn(90)).Format(time.RFC3339),
			User:           loanUser(user),
		}
		if l.Disbursed() {
			l.PaidAmount = l.TotalAmount / int64(1+rand.Intn(4))
			l.RemainingAmount = l.TotalAmount - l.PaidAmount
			l.DueDate = now.AddDate(0, 0, rand.Intn(30)).Format("2006-01-02")
			l.ApprovedAt = l.CreatedAt
			l.DisbursedAt = l.CreatedAt
		}
		if status == models.LoanRejected {
			l.RejectedReason = "Зээлийн оноо хүрэлцэхгүй байна"
		}
		s.loans[l.ID] = l
	}

	for i := 1; i <= withdrawals; i++ {
		user := s.users[ids[rand.Intn(len(ids))]]
		status := models.WithdrawalPending
		if i%3 == 0 {
			status = models.WithdrawalCompleted
		}

		s.withdrawals[i] = &models.Withdrawal{
			ID:            i,
			UserID:        user.ID,
			Amount:        int64(10_000 * (1 + rand.Intn(50))),
			BankName:      bankNames[rand.Intn(len(bankNames))],
			BankAccount:   fmt.Sprintf("%010d", rand.Intn(1_000_000_000)),
			AccountHolder: user.FullName(),
			Status:        status,
			CreatedAt:     now.AddDate(0, 0, -rand.Intn(14)).Format(time.RFC3339),
			User:          loanUser(user),
		}
	}
}

func loanUser(u *models.User) *models.LoanUser {
	return &models.LoanUser{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Email:     u.Email,
	}
}
