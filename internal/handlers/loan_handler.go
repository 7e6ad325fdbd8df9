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

type LoanHandler struct {
	base
	svc *services.LoanService
}

func NewLoanHandler(b base, svc *services.LoanService) *LoanHandler {
	return &LoanHandler{base: b, svc: svc}
}

var loanFilters = []filterOption{
	{Value: models.LoanPending, Label: "Хүлээгдэж байна"},
	{Value: models.LoanActive, Label: "Идэвхтэй"},
	{Value: models.LoanApproved, Label: "Зөвшөөрөгдсөн"},
	{Value: models.LoanRejected, Label: "Татгалзсан"},
	{Value: models.LoanCompleted, Label: "Дууссан"},
}

type loanListData struct {
	Rows       []models.Loan
	Filters    []FilterLink
	Pagination Pagination
	LoadFailed bool
}

func (h *LoanHandler) List(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())
	q := parseListQuery(r, loanFilters, models.LoanPending)

	// active loans live behind their own endpoint
	var (
		rows []models.Loan
		info services.PageInfo
		err  error
	)
	if q.Status == models.LoanActive {
		rows, info, err = h.svc.ListActive(r.Context(), sess.Token, q.Page)
	} else {
		rows, info, err = h.svc.ListPending(r.Context(), sess.Token, q.Page, q.Status)
	}
	if errors.Is(err, core.ErrUnauthorized) {
		h.forceLogin(w, r)
		return
	}

	flash := popFlash(w, r)
	if err != nil {
		flash = fetchFlash(err, "Зээлийн жагсаалт татахад алдаа гарлаа")
	}

	extra := url.Values{"status": {q.Status}}
	h.rn.Render(w, http.StatusOK, "loan_list.html", &pageData{
		Title:  "Зээлийн хүсэлтүүд",
		Active: "loans",
		Admin:  &sess.Admin,
		Flash:  flash,
		Data: loanListData{
			Rows:       rows,
			Filters:    buildFilters("/loans", nil, q.Status, loanFilters),
			Pagination: paginate("/loans", extra, q, info),
			LoadFailed: err != nil,
		},
	})
}

type loanDetailData struct {
	Loan       *models.Loan
	ShowReject bool
}

func (h *LoanHandler) Detail(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())

	loanID, err := strconv.Atoi(chi.URLParam(r, "loanID"))
	if err != nil {
		setFlash(w, flashError, "Зээлийн мэдээлэл олдсонгүй")
		http.Redirect(w, r, "/loans", http.StatusSeeOther)
		return
	}

	loan, err := h.svc.Detail(r.Context(), sess.Token, loanID)
	if err != nil {
		h.failRedirect(w, r, err, "Зээлийн мэдээлэл татахад алдаа гарлаа", "/loans")
		return
	}

	h.rn.Render(w, http.StatusOK, "loan_detail.html", &pageData{
		Title:  "Зээлийн дэлгэрэнгүй",
		Active: "loans",
		Admin:  &sess.Admin,
		Flash:  popFlash(w, r),
		Data: loanDetailData{
			Loan:       loan,
			ShowReject: r.URL.Query().Get("reject") == "1",
		},
	})
}

func (h *LoanHandler) Approve(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())

	loanID, err := strconv.Atoi(chi.URLParam(r, "loanID"))
	if err != nil {
		http.Redirect(w, r, "/loans", http.StatusSeeOther)
		return
	}
	detailURL := fmt.Sprintf("/loans/%d", loanID)

	loan, err := h.svc.Detail(r.Context(), sess.Token, loanID)
	if err != nil {
		h.failRedirect(w, r, err, "Зээлийн мэдээлэл татахад алдаа гарлаа", "/loans")
		return
	}
	if loan.Status != models.LoanPending {
		setFlash(w, flashError, "Зээлийн хүсэлт аль хэдийн шийдэгдсэн байна")
		http.Redirect(w, r, detailURL, http.StatusSeeOther)
		return
	}

	if err := h.svc.Approve(r.Context(), sess.Token, loanID); err != nil {
		h.failRedirect(w, r, err, "Зээл зөвшөөрөхөд алдаа гарлаа", detailURL)
		return
	}

	h.audit.Record(r.Context(), sess.Admin.Username, audit.ActionApproveLoan, "loan", strconv.Itoa(loanID), "")
	setFlash(w, flashSuccess, "Зээл амжилттай зөвшөөрөгдлөө")
	http.Redirect(w, r, "/loans", http.StatusSeeOther)
}

func (h *LoanHandler) Reject(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())

	loanID, err := strconv.Atoi(chi.URLParam(r, "loanID"))
	if err != nil {
		http.Redirect(w, r, "/loans", http.StatusSeeOther)
		return
	}
	detailURL := fmt.Sprintf("/loans/%d", loanID)

	r.ParseForm()
	form := rejectForm{Reason: strings.TrimSpace(r.PostFormValue("reason"))}
	if err := h.vh.ValidateStruct(&form); err != nil {
		setFlash(w, flashError, "Татгалзах шалтгаан оруулна уу")
		http.Redirect(w, r, detailURL+"?reject=1", http.StatusSeeOther)
		return
	}

	loan, err := h.svc.Detail(r.Context(), sess.Token, loanID)
	if err != nil {
		h.failRedirect(w, r, err, "Зээлийн мэдээлэл татахад алдаа гарлаа", "/loans")
		return
	}
	if loan.Status != models.LoanPending {
		setFlash(w, flashError, "Зээлийн хүсэлт аль хэдийн шийдэгдсэн байна")
		http.Redirect(w, r, detailURL, http.StatusSeeOther)
		return
	}

	if err := h.svc.Reject(r.Context(), sess.Token, loanID, form.Reason); err != nil {
		h.failRedirect(w, r, err, "Зээл татгалзахад алдаа гарлаа", detailURL+"?reject=1")
		return
	}

	h.audit.Record(r.Context(), sess.Admin.Username, audit.ActionRejectLoan, "loan", strconv.Itoa(loanID), form.Reason)
	setFlash(w, flashSuccess, "Зээл татгалзлаа")
	http.Redirect(w, r, "/loans", http.StatusSeeOther)
}
