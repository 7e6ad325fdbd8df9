package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/moncredit/admin-dashboard/internal/audit"
	"github.com/moncredit/admin-dashboard/internal/core"
	"github.com/moncredit/admin-dashboard/internal/middleware"
	"github.com/moncredit/admin-dashboard/internal/models"
	"github.com/moncredit/admin-dashboard/internal/services"
)

type KYCHandler struct {
	base
	svc *services.KYCService
}

func NewKYCHandler(b base, svc *services.KYCService) *KYCHandler {
	return &KYCHandler{base: b, svc: svc}
}

var kycFilters = []filterOption{
	{Value: models.KYCPending, Label: "Хүлээгдэж байна"},
	{Value: models.KYCApproved, Label: "Зөвшөөрөгдсөн"},
	{Value: models.KYCRejected, Label: "Татгалзсан"},
}

type kycListData struct {
	Rows       []models.KYCRecord
	Filters    []FilterLink
	Pagination Pagination
	LoadFailed bool
}

func (h *KYCHandler) List(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())
	q := parseListQuery(r, kycFilters, models.KYCPending)

	rows, info, err := h.svc.List(r.Context(), sess.Token, q.Page, q.Status)
	if errors.Is(err, core.ErrUnauthorized) {
		h.forceLogin(w, r)
		return
	}

	flash := popFlash(w, r)
	if err != nil {
		flash = fetchFlash(err, "KYC жагсаалт татахад алдаа гарлаа")
	}

	extra := url.Values{"status": {q.Status}}
	h.rn.Render(w, http.StatusOK, "kyc_list.html", &pageData{
		Title:  "KYC Баталгаажуулалт",
		Active: "kyc",
		Admin:  &sess.Admin,
		Flash:  flash,
		Data: kycListData{
			Rows:       rows,
			Filters:    buildFilters("/kyc", nil, q.Status, kycFilters),
			Pagination: paginate("/kyc", extra, q, info),
			LoadFailed: err != nil,
		},
	})
}

type kycDetailData struct {
	Record     *models.KYCRecord
	ShowReject bool
}

func (h *KYCHandler) Detail(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())

	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		setFlash(w, flashError, "KYC мэдээлэл олдсонгүй")
		http.Redirect(w, r, "/kyc", http.StatusSeeOther)
		return
	}

	rec, err := h.svc.Detail(r.Context(), sess.Token, userID)
	if err != nil {
		h.failRedirect(w, r, err, "KYC мэдээлэл татахад алдаа гарлаа", "/kyc")
		return
	}

	h.rn.Render(w, http.StatusOK, "kyc_detail.html", &pageData{
		Title:  "KYC Дэлгэрэнгүй",
		Active: "kyc",
		Admin:  &sess.Admin,
		Flash:  popFlash(w, r),
		Data: kycDetailData{
			Record:     rec,
			ShowReject: r.URL.Query().Get("reject") == "1",
		},
	})
}

func (h *KYCHandler) Approve(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())

	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		http.Redirect(w, r, "/kyc", http.StatusSeeOther)
		return
	}
	detailURL := fmt.Sprintf("/kyc/%d", userID)

	// Re-check the record is still pending; a stale page must not re-fire
	// an approve against a decided record.
	rec, err := h.svc.Detail(r.Context(), sess.Token, userID)
	if err != nil {
		h.failRedirect(w, r, err, "KYC мэдээлэл татахад алдаа гарлаа", "/kyc")
		return
	}
	if rec.KYCStatus != models.KYCPending {
		setFlash(w, flashError, "KYC хүсэлт аль хэдийн шийдэгдсэн байна")
		http.Redirect(w, r, detailURL, http.StatusSeeOther)
		return
	}

	if err := h.svc.Approve(r.Context(), sess.Token, userID); err != nil {
		h.failRedirect(w, r, err, "KYC зөвшөөрөхөд алдаа гарлаа", detailURL)
		return
	}

	h.audit.Record(r.Context(), sess.Admin.Username, audit.ActionApproveKYC, "kyc", strconv.Itoa(userID), "")
	setFlash(w, flashSuccess, "KYC амжилттай зөвшөөрөгдлөө")
	http.Redirect(w, r, "/kyc", http.StatusSeeOther)
}

func (h *KYCHandler) Reject(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())

	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		http.Redirect(w, r, "/kyc", http.StatusSeeOther)
		return
	}
	detailURL := fmt.Sprintf("/kyc/%d", userID)

	r.ParseForm()
	form := rejectForm{Reason: strings.TrimSpace(r.PostFormValue("reason"))}
	if err := h.vh.ValidateStruct(&form); err != nil {
		// validation failure never reaches the core platform
		setFlash(w, flashError, "Татгалзах шалтгаан оруулна уу")
		http.Redirect(w, r, detailURL+"?reject=1", http.StatusSeeOther)
		return
	}

	rec, err := h.svc.Detail(r.Context(), sess.Token, userID)
	if err != nil {
		h.failRedirect(w, r, err, "KYC мэдээлэл татахад алдаа гарлаа", "/kyc")
		return
	}
	if rec.KYCStatus != models.KYCPending {
		setFlash(w, flashError, "KYC хүсэлт аль хэдийн шийдэгдсэн байна")
		http.Redirect(w, r, detailURL, http.StatusSeeOther)
		return
	}

	if err := h.svc.Reject(r.Context(), sess.Token, userID, form.Reason); err != nil {
		// keep the modal open so the operator can correct and resubmit
		h.failRedirect(w, r, err, "KYC татгалзахад алдаа гарлаа", detailURL+"?reject=1")
		return
	}

	h.audit.Record(r.Context(), sess.Admin.Username, audit.ActionRejectKYC, "kyc", strconv.Itoa(userID), form.Reason)
	setFlash(w, flashSuccess, "KYC татгалзлаа")
	http.Redirect(w, r, "/kyc", http.StatusSeeOther)
}
