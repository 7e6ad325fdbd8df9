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

type WithdrawalHandler struct {
	base
	svc *services.WithdrawalService
}

func NewWithdrawalHandler(b base, svc *services.WithdrawalService) *WithdrawalHandler {
	return &WithdrawalHandler{base: b, svc: svc}
}

var withdrawalFilters = []filterOption{
	{Value: models.WithdrawalPending, Label: "Хүлээгдэж байна"},
	{Value: models.WithdrawalCompleted, Label: "Дууссан"},
	{Value: models.WithdrawalRejected, Label: "Татгалзсан"},
}

type withdrawalListData struct {
	Rows       []models.Withdrawal
	Filters    []FilterLink
	Pagination Pagination
	LoadFailed bool
}

func (h *WithdrawalHandler) List(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())
	q := parseListQuery(r, withdrawalFilters, models.WithdrawalPending)

	rows, info, err := h.svc.List(r.Context(), sess.Token, q.Page, q.Status)
	if errors.Is(err, core.ErrUnauthorized) {
		h.forceLogin(w, r)
		return
	}

	flash := popFlash(w, r)
	if err != nil {
		flash = fetchFlash(err, "Мөнгө авах хүсэлтүүд татахад алдаа гарлаа")
	}

	extra := url.Values{"status": {q.Status}}
	h.rn.Render(w, http.StatusOK, "withdrawal_list.html", &pageData{
		Title:  "Мөнгө авалт",
		Active: "withdrawals",
		Admin:  &sess.Admin,
		Flash:  flash,
		Data: withdrawalListData{
			Rows:       rows,
			Filters:    buildFilters("/withdrawals", nil, q.Status, withdrawalFilters),
			Pagination: paginate("/withdrawals", extra, q, info),
			LoadFailed: err != nil,
		},
	})
}

type withdrawalDetailData struct {
	Withdrawal *models.Withdrawal
	ShowReject bool
}

func (h *WithdrawalHandler) Detail(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())

	id, err := strconv.Atoi(chi.URLParam(r, "withdrawalID"))
	if err != nil {
		setFlash(w, flashError, "Хүсэлтийн мэдээлэл олдсонгүй")
		http.Redirect(w, r, "/withdrawals", http.StatusSeeOther)
		return
	}

	wd, err := h.svc.Detail(r.Context(), sess.Token, id)
	if err != nil {
		h.failRedirect(w, r, err, "Хүсэлтийн мэдээлэл татахад алдаа гарлаа", "/withdrawals")
		return
	}

	h.rn.Render(w, http.StatusOK, "withdrawal_detail.html", &pageData{
		Title:  "Мөнгө авах хүсэлт",
		Active: "withdrawals",
		Admin:  &sess.Admin,
		Flash:  popFlash(w, r),
		Data: withdrawalDetailData{
			Withdrawal: wd,
			ShowReject: r.URL.Query().Get("reject") == "1",
		},
	})
}

func (h *WithdrawalHandler) Approve(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())

	id, err := strconv.Atoi(chi.URLParam(r, "withdrawalID"))
	if err != nil {
		http.Redirect(w, r, "/withdrawals", http.StatusSeeOther)
		return
	}
	detailURL := fmt.Sprintf("/withdrawals/%d", id)

	wd, err := h.svc.Detail(r.Context(), sess.Token, id)
	if err != nil {
		h.failRedirect(w, r, err, "Хүсэлтийн мэдээлэл татахад алдаа гарлаа", "/withdrawals")
		return
	}
	if wd.Status != models.WithdrawalPending {
		setFlash(w, flashError, "Хүсэлт аль хэдийн шийдэгдсэн байна")
		http.Redirect(w, r, detailURL, http.StatusSeeOther)
		return
	}

	if err := h.svc.Approve(r.Context(), sess.Token, id); err != nil {
		h.failRedirect(w, r, err, "Хүсэлт зөвшөөрөхөд алдаа гарлаа", detailURL)
		return
	}

	h.audit.Record(r.Context(), sess.Admin.Username, audit.ActionApproveWithdrawal, "withdrawal", strconv.Itoa(id), "")
	setFlash(w, flashSuccess, "Мөнгө авах хүсэлт зөвшөөрөгдлөө")
	http.Redirect(w, r, "/withdrawals", http.StatusSeeOther)
}

func (h *WithdrawalHandler) Reject(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())

	id, err := strconv.Atoi(chi.URLParam(r, "withdrawalID"))
	if err != nil {
		http.Redirect(w, r, "/withdrawals", http.StatusSeeOther)
		return
	}
	detailURL := fmt.Sprintf("/withdrawals/%d", id)

	r.ParseForm()
	form := rejectForm{Reason: strings.TrimSpace(r.PostFormValue("reason"))}
	if err := h.vh.ValidateStruct(&form); err != nil {
		setFlash(w, flashError, "Татгалзах шалтгаан оруулна уу")
		http.Redirect(w, r, detailURL+"?reject=1", http.StatusSeeOther)
		return
	}

	wd, err := h.svc.Detail(r.Context(), sess.Token, id)
	if err != nil {
		h.failRedirect(w, r, err, "Хүсэлтийн мэдээлэл татахад алдаа гарлаа", "/withdrawals")
		return
	}
	if wd.Status != models.WithdrawalPending {
		setFlash(w, flashError, "Хүсэлт аль хэдийн шийдэгдсэн байна")
		http.Redirect(w, r, detailURL, http.StatusSeeOther)
		return
	}

	if err := h.svc.Reject(r.Context(), sess.Token, id, form.Reason); err != nil {
		h.failRedirect(w, r, err, "Хүсэлт татгалзахад алдаа гарлаа", detailURL+"?reject=1")
		return
	}

	h.audit.Record(r.Context(), sess.Admin.Username, audit.ActionRejectWithdrawal, "withdrawal", strconv.Itoa(id), form.Reason)
	setFlash(w, flashSuccess, "Мөнгө авах хүсэлт татгалзлаа")
	http.Redirect(w, r, "/withdrawals", http.StatusSeeOther)
}
