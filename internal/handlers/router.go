package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/moncredit/admin-dashboard/internal/audit"
	"github.com/moncredit/admin-dashboard/internal/core"
	"github.com/moncredit/admin-dashboard/internal/middleware"
	"github.com/moncredit/admin-dashboard/internal/services"
	"github.com/moncredit/admin-dashboard/internal/session"
)

// Deps wires the handlers to the shared infrastructure built in main.
type Deps struct {
	Renderer *Renderer
	Sessions *session.Store
	Audit    *audit.Logger
	Client   *core.Client
}

// Routes mounts every dashboard page and action. Everything except the
// login screen sits behind the session middleware.
func Routes(d Deps) chi.Router {
	b := base{
		rn:       d.Renderer,
		sessions: d.Sessions,
		audit:    d.Audit,
		vh:       NewValidationHelper(),
	}

	auth := NewAuthHandler(b, services.NewAuthService(d.Client))
	dashboard := NewDashboardHandler(b, services.NewDashboardService(d.Client))
	kyc := NewKYCHandler(b, services.NewKYCService(d.Client))
	loans := NewLoanHandler(b, services.NewLoanService(d.Client))
	withdrawals := NewWithdrawalHandler(b, services.NewWithdrawalService(d.Client))
	users := NewUserHandler(b, services.NewUserService(d.Client))

	r := chi.NewRouter()

	r.Get("/login", auth.LoginForm)
	r.Post("/login", auth.Login)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(d.Sessions))

		r.Post("/logout", auth.Logout)

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		})
		r.Get("/dashboard", dashboard.Show)

		r.Get("/kyc", kyc.List)
		r.Get("/kyc/{userID}", kyc.Detail)
		r.Post("/kyc/{userID}/approve", kyc.Approve)
		r.Post("/kyc/{userID}/reject", kyc.Reject)

		r.Get("/loans", loans.List)
		r.Get("/loans/{loanID}", loans.Detail)
		r.Post("/loans/{loanID}/approve", loans.Approve)
		r.Post("/loans/{loanID}/reject", loans.Reject)

		r.Get("/withdrawals", withdrawals.List)
		r.Get("/withdrawals/{withdrawalID}", withdrawals.Detail)
		r.Post("/withdrawals/{withdrawalID}/approve", withdrawals.Approve)
		r.Post("/withdrawals/{withdrawalID}/reject", withdrawals.Reject)

		r.Get("/users", users.List)
		r.Get("/users/{userID}", users.Detail)
		r.Post("/users/{userID}/block", users.Block)
		r.Post("/users/{userID}/unblock", users.Unblock)
		r.Post("/users/{userID}/credit-limit", users.SetCreditLimit)
	})

	return r
}
