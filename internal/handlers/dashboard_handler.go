package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/moncredit/admin-dashboard/internal/audit"
	"github.com/moncredit/admin-dashboard/internal/core"
	"github.com/moncredit/admin-dashboard/internal/middleware"
	"github.com/moncredit/admin-dashboard/internal/models"
	"github.com/moncredit/admin-dashboard/internal/services"
)

type DashboardHandler struct {
	base
	svc *services.DashboardService
}

func NewDashboardHandler(b base, svc *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{base: b, svc: svc}
}

type dashboardData struct {
	Stats       *models.DashboardStats
	RecentAudit []audit.Event
	LoadFailed  bool
}

func (h *DashboardHandler) Show(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())

	stats, err := h.svc.Stats(r.Context(), sess.Token)
	if errors.Is(err, core.ErrUnauthorized) {
		h.forceLogin(w, r)
		return
	}

	flash := popFlash(w, r)
	if err != nil {
		flash = fetchFlash(err, "Статистик татахад алдаа гарлаа")
	}

	recent, auditErr := h.audit.Recent(r.Context(), 10)
	if auditErr != nil {
		log.Printf("[DASHBOARD] audit trail read failed: %v", auditErr)
	}

	h.rn.Render(w, http.StatusOK, "dashboard.html", &pageData{
		Title:  "Dashboard",
		Active: "dashboard",
		Admin:  &sess.Admin,
		Flash:  flash,
		Data: dashboardData{
			Stats:       stats,
			RecentAudit: recent,
			LoadFailed:  err != nil,
		},
	})
}
