package handlers

import (
	"errors"
	"net/http"

	"github.com/moncredit/admin-dashboard/internal/audit"
	"github.com/moncredit/admin-dashboard/internal/core"
	"github.com/moncredit/admin-dashboard/internal/middleware"
	"github.com/moncredit/admin-dashboard/internal/session"
)

// base carries the pieces every resource handler needs.
type base struct {
	rn       *Renderer
	sessions *session.Store
	audit    *audit.Logger
	vh       *ValidationHelper
}

// forceLogin destroys the current session and sends the operator to the
// login screen. This is the single path for every 401, regardless of which
// page triggered it.
func (b *base) forceLogin(w http.ResponseWriter, r *http.Request) {
	if sess := middleware.SessionFrom(r.Context()); sess != nil {
		// a failed delete just leaves a key to expire on its own
		_ = b.sessions.Destroy(r.Context(), sess.ID)
	}
	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// failRedirect handles an upstream error on an action: 401 forces re-login,
// everything else flashes a message and redirects to the given location.
func (b *base) failRedirect(w http.ResponseWriter, r *http.Request, err error, fallback, to string) {
	if errors.Is(err, core.ErrUnauthorized) {
		b.forceLogin(w, r)
		return
	}
	setFlash(w, flashError, core.UserMessage(err, fallback))
	http.Redirect(w, r, to, http.StatusSeeOther)
}

// fetchFlash builds the in-place notification for a list page whose fetch
// failed. Rendering continues with an explicit error state instead of a
// bare empty table.
func fetchFlash(err error, fallback string) *Flash {
	if err == nil {
		return nil
	}
	return &Flash{Kind: flashError, Message: core.UserMessage(err, fallback)}
}
