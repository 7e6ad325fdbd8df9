// Package mockapi is a stand-in for the core lending platform. It serves
// the admin API surface the dashboard consumes from seeded in-memory data,
// so the dashboard can be developed and demoed without the real backend.
package mockapi

import (
	"encoding/json"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/moncredit/admin-dashboard/internal/models"
)

const pageSize = 10

type Server struct {
	mu sync.Mutex

	users       map[int]*models.User
	kyc         map[int]*models.KYCRecord
	loans       map[int]*models.Loan
	withdrawals map[int]*models.Withdrawal

	tokens map[string]bool

	admin       models.Admin
	adminHash   string
	walletTotal int64
}

// New builds a server seeded with the given entity counts. The only
// operator account is admin / the given password.
func New(adminPassword string, users, loans, withdrawals int) (*Server, error) {
	hash, err := hashPassword(adminPassword)
	if err != nil {
		return nil, err
	}

	s := &Server{
		users:       make(map[int]*models.User),
		kyc:         make(map[int]*models.KYCRecord),
		loans:       make(map[int]*models.Loan),
		withdrawals: make(map[int]*models.Withdrawal),
		tokens:      make(map[string]bool),
		admin:       models.Admin{ID: 1, Username: "admin", Name: "Админ", Role: "superadmin"},
		adminHash:   hash,
		walletTotal: 250_000_000,
	}
	s.seed(users, loans, withdrawals)
	return s, nil
}

func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Route("/api/admin", func(r chi.Router) {
		r.Post("/login", s.login)

		r.Group(func(r chi.Router) {
			r.Use(s.requireToken)

			r.Get("/dashboard", s.dashboard)

			r.Get("/pending-kyc", s.listKYC)
			r.Get("/kyc-detail/{userID}", s.kycDetail)
			r.Post("/approve-kyc/{userID}", s.approveKYC)
			r.Post("/reject-kyc/{userID}", s.rejectKYC)

			r.Get("/pending-loans", s.listLoans)
			r.Get("/active-loans", s.listActiveLoans)
			r.Get("/loan-detail/{loanID}", s.loanDetail)
			r.Post("/approve-loan/{loanID}", s.approveLoan)
			r.Post("/reject-loan/{loanID}", s.rejectLoan)

			r.Get("/pending-withdrawals", s.listWithdrawals)
			r.Get("/withdrawal-detail/{withdrawalID}", s.withdrawalDetail)
			r.Post("/approve-withdrawal/{withdrawalID}", s.approveWithdrawal)
			r.Post("/reject-withdrawal/{withdrawalID}", s.rejectWithdrawal)

			r.Get("/users", s.listUsers)
			r.Get("/user/{userID}", s.userDetail)
			r.Put("/user/{userID}/block", s.blockUser)
			r.Put("/user/{userID}/unblock", s.unblockUser)
			r.Post("/set-credit-limit/{userID}", s.setCreditLimit)
		})
	})

	return r
}

func (s *Server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		s.mu.Lock()
		ok := s.tokens[token]
		s.mu.Unlock()
		if !ok {
			writeJSON(w, http.StatusUnauthorized, map[string]any{
				"success": false,
				"message": "unauthorized",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("[MOCKAPI] encode: %v", err)
	}
}

func fail(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": message})
}

func succeed(w http.ResponseWriter, data any) {
	body := map[string]any{"success": true}
	if data != nil {
		body["data"] = data
	}
	writeJSON(w, http.StatusOK, body)
}

func pathID(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	return id, err == nil
}

func page(r *http.Request) int {
	p, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || p < 1 {
		return 1
	}
	return p
}

// slicePage cuts one page out of n items and reports the page count.
func slicePage(n, p int) (lo, hi, pages int) {
	pages = (n + pageSize - 1) / pageSize
	lo = (p - 1) * pageSize
	if lo > n {
		lo = n
	}
	hi = lo + pageSize
	if hi > n {
		hi = n
	}
	return lo, hi, pages
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, "invalid request")
		return
	}

	if req.Username != s.admin.Username || !verifyPassword(req.Password, s.adminHash) {
		fail(w, "Хэрэглэгчийн нэр эсвэл нууц үг буруу байна")
		return
	}

	token := uuid.NewString()
	s.mu.Lock()
	s.tokens[token] = true
	s.mu.Unlock()

	succeed(w, map[string]any{"token": token, "admin": s.admin})
}

func (s *Server) dashboard(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := models.DashboardStats{Wallet: models.WalletStats{Balance: s.walletTotal}}

	for _, u := range s.users {
		stats.Users.Total++
		if u.Status == models.UserBlocked {
			stats.Users.Blocked++
		} else {
			stats.Users.Active++
		}
	}
	for _, k := range s.kyc {
		switch k.KYCStatus {
		case models.KYCPending:
			stats.KYC.Pending++
		case models.KYCApproved:
			stats.KYC.Approved++
		case models.KYCRejected:
			stats.KYC.Rejected++
		}
	}
	for _, l := range s.loans {
		switch l.Status {
		case models.LoanPending:
			stats.Loans.Pending++
		case models.LoanActive, models.LoanExtended:
			stats.Loans.Active++
		case models.LoanOverdue:
			stats.Loans.Overdue++
		case models.LoanCompleted:
			stats.Loans.Completed++
		}
		if l.Disbursed() {
			stats.LoanAmounts.Disbursed += l.TotalAmount
			stats.LoanAmounts.Outstanding += l.RemainingAmount
			stats.LoanAmounts.Repaid += l.PaidAmount
		}
	}
	for _, wd := range s.withdrawals {
		if wd.Status == models.WithdrawalPending {
			stats.Withdrawals.Pending++
			stats.Withdrawals.PendingAmount += wd.Amount
		}
	}

	stats.RecentKYC = s.recentKYC(5)
	stats.RecentLoans = s.recentLoans(5)

	succeed(w, stats)
}

func (s *Server) recentKYC(n int) []models.KYCRecord {
	var out []models.KYCRecord
	for _, k := range s.kyc {
		if k.KYCStatus == models.KYCPending {
			out = append(out, *k)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt > out[j].SubmittedAt })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func (s *Server) recentLoans(n int) []models.Loan {
	var out []models.Loan
	for _, l := range s.loans {
		if l.Status == models.LoanPending {
			out = append(out, *l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func (s *Server) listKYC(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		status = models.KYCPending
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var rows []models.KYCRecord
	for _, k := range s.kyc {
		if k.KYCStatus == status {
			rows = append(rows, *k)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].SubmittedAt > rows[j].SubmittedAt })

	lo, hi, pages := slicePage(len(rows), page(r))
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    map[string]any{"users": rows[lo:hi]},
		"pages":   pages,
		"total":   len(rows),
	})
}

func (s *Server) kycDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "userID")
	if !ok {
		fail(w, "invalid user id")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	k, ok := s.kyc[id]
	if !ok {
		fail(w, "KYC хүсэлт олдсонгүй")
		return
	}
	succeed(w, map[string]any{"user": k})
}

func (s *Server) approveKYC(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "userID")
	if !ok {
		fail(w, "invalid user id")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	k, ok := s.kyc[id]
	if !ok || k.KYCStatus != models.KYCPending {
		fail(w, "KYC хүсэлт хүлээгдэж байгаа төлөвт биш байна")
		return
	}
	k.KYCStatus = models.KYCApproved
	if u := s.users[id]; u != nil {
		u.KYCStatus = models.KYCApproved
	}
	succeed(w, nil)
}

func (s *Server) rejectKYC(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "userID")
	if !ok {
		fail(w, "invalid user id")
		return
	}

	var req struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Reason) == "" {
		fail(w, "Татгалзах шалтгаан шаардлагатай")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	k, ok := s.kyc[id]
	if !ok || k.KYCStatus != models.KYCPending {
		fail(w, "KYC хүсэлт хүлээгдэж байгаа төлөвт биш байна")
		return
	}
	k.KYCStatus = models.KYCRejected
	k.RejectedReason = req.Reason
	if u := s.users[id]; u != nil {
		u.KYCStatus = models.KYCRejected
	}
	succeed(w, nil)
}

func (s *Server) listLoans(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		status = models.LoanPending
	}
	s.writeLoanList(w, r, func(l *models.Loan) bool { return l.Status == status })
}

func (s *Server) listActiveLoans(w http.ResponseWriter, r *http.Request) {
	s.writeLoanList(w, r, func(l *models.Loan) bool {
		switch l.Status {
		case models.LoanActive, models.LoanExtended, models.LoanOverdue:
			return true
		}
		return false
	})
}

func (s *Server) writeLoanList(w http.ResponseWriter, r *http.Request, keep func(*models.Loan) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rows []models.Loan
	for _, l := range s.loans {
		if keep(l) {
			rows = append(rows, *l)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt > rows[j].CreatedAt })

	lo, hi, pages := slicePage(len(rows), page(r))
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    map[string]any{"loans": rows[lo:hi]},
		"pages":   pages,
		"total":   len(rows),
	})
}

func (s *Server) loanDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "loanID")
	if !ok {
		fail(w, "invalid loan id")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.loans[id]
	if !ok {
		fail(w, "Зээл олдсонгүй")
		return
	}
	succeed(w, map[string]any{"loan": l})
}

func (s *Server) approveLoan(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "loanID")
	if !ok {
		fail(w, "invalid loan id")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.loans[id]
	if !ok || l.Status != models.LoanPending {
		fail(w, "Зээл хүлээгдэж байгаа төлөвт биш байна")
		return
	}
	l.Status = models.LoanApproved
	succeed(w, nil)
}

func (s *Server) rejectLoan(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "loanID")
	if !ok {
		fail(w, "invalid loan id")
		return
	}

	var req struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Reason) == "" {
		fail(w, "Татгалзах шалтгаан шаардлагатай")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.loans[id]
	if !ok || l.Status != models.LoanPending {
		fail(w, "Зээл хүлээгдэж байгаа төлөвт биш байна")
		return
	}
	l.Status = models.LoanRejected
	l.RejectedReason = req.Reason
	succeed(w, nil)
}

func (s *Server) listWithdrawals(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		status = models.WithdrawalPending
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var rows []models.Withdrawal
	for _, wd := range s.withdrawals {
		if wd.Status == status {
			rows = append(rows, *wd)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt > rows[j].CreatedAt })

	lo, hi, pages := slicePage(len(rows), page(r))
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    map[string]any{"withdrawals": rows[lo:hi]},
		"pages":   pages,
		"total":   len(rows),
	})
}

func (s *Server) withdrawalDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "withdrawalID")
	if !ok {
		fail(w, "invalid withdrawal id")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	wd, ok := s.withdrawals[id]
	if !ok {
		fail(w, "Татан авалтын хүсэлт олдсонгүй")
		return
	}
	succeed(w, map[string]any{"withdrawal": wd})
}

func (s *Server) approveWithdrawal(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "withdrawalID")
	if !ok {
		fail(w, "invalid withdrawal id")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	wd, ok := s.withdrawals[id]
	if !ok || wd.Status != models.WithdrawalPending {
		fail(w, "Хүсэлт хүлээгдэж байгаа төлөвт биш байна")
		return
	}
	wd.Status = models.WithdrawalCompleted
	s.walletTotal -= wd.Amount
	succeed(w, nil)
}

func (s *Server) rejectWithdrawal(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "withdrawalID")
	if !ok {
		fail(w, "invalid withdrawal id")
		return
	}

	var req struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Reason) == "" {
		fail(w, "Татгалзах шалтгаан шаардлагатай")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	wd, ok := s.withdrawals[id]
	if !ok || wd.Status != models.WithdrawalPending {
		fail(w, "Хүсэлт хүлээгдэж байгаа төлөвт биш байна")
		return
	}
	wd.Status = models.WithdrawalRejected
	wd.RejectedReason = req.Reason
	succeed(w, nil)
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	search := strings.ToLower(strings.TrimSpace(q.Get("search")))
	status := q.Get("status")
	kycStatus := q.Get("kycStatus")

	s.mu.Lock()
	defer s.mu.Unlock()

	var rows []models.User
	for _, u := range s.users {
		if status != "" && u.Status != status {
			continue
		}
		if kycStatus != "" && u.KYCStatus != kycStatus {
			continue
		}
		if search != "" && !matchesSearch(u, search) {
			continue
		}
		rows = append(rows, *u)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })

	lo, hi, pages := slicePage(len(rows), page(r))
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    map[string]any{"users": rows[lo:hi]},
		"pages":   pages,
		"total":   len(rows),
	})
}

func matchesSearch(u *models.User, term string) bool {
	return strings.Contains(strings.ToLower(u.FullName()), term) ||
		strings.Contains(strings.ToLower(u.Email), term) ||
		strings.Contains(u.Phone, term)
}

func (s *Server) userDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "userID")
	if !ok {
		fail(w, "invalid user id")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		fail(w, "Хэрэглэгч олдсонгүй")
		return
	}
	succeed(w, map[string]any{"user": u})
}

func (s *Server) blockUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "userID")
	if !ok {
		fail(w, "invalid user id")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		fail(w, "Хэрэглэгч олдсонгүй")
		return
	}
	u.Status = models.UserBlocked
	succeed(w, nil)
}

func (s *Server) unblockUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "userID")
	if !ok {
		fail(w, "invalid user id")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		fail(w, "Хэрэглэгч олдсонгүй")
		return
	}
	u.Status = models.UserActive
	succeed(w, nil)
}

func (s *Server) setCreditLimit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "userID")
	if !ok {
		fail(w, "invalid user id")
		return
	}

	var req struct {
		CreditLimit int64 `json:"creditLimit"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CreditLimit <= 0 {
		fail(w, "Зээлийн эрхийн хэмжээ буруу байна")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		fail(w, "Хэрэглэгч олдсонгүй")
		return
	}
	u.CreditLimit = req.CreditLimit
	succeed(w, nil)
}
