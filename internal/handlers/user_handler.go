package handlers

import (
	"errors"
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

type UserHandler struct {
	base
	svc *services.UserService
}

func NewUserHandler(b base, svc *services.UserService) *UserHandler {
	return &UserHandler{base: b, svc: svc}
}

var userFilters = []filterOption{
	{Value: "", Label: "Бүгд"},
	{Value: models.UserActive, Label: "Идэвхтэй"},
	{Value: models.UserBlocked, Label: "Блоклогдсон"},
}

var kycStatusValues = map[string]bool{
	models.KYCNotSubmitted: true,
	models.KYCPending:      true,
	models.KYCApproved:     true,
	models.KYCRejected:     true,
}

type userListData struct {
	Rows       []models.User
	Filters    []FilterLink
	Pagination Pagination
	Search     string
	Status     string
	KYCStatus  string
	ListURL    string
	LoadFailed bool
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())
	q := parseListQuery(r, userFilters, "")

	filter := services.UserFilter{
		Search: strings.TrimSpace(r.URL.Query().Get("search")),
		Status: q.Status,
	}
	if v := r.URL.Query().Get("kycStatus"); kycStatusValues[v] {
		filter.KYCStatus = v
	}

	rows, info, err := h.svc.List(r.Context(), sess.Token, q.Page, filter)
	if errors.Is(err, core.ErrUnauthorized) {
		h.forceLogin(w, r)
		return
	}

	flash := popFlash(w, r)
	if err != nil {
		flash = fetchFlash(err, "Хэрэглэгчдийн жагсаалт татахад алдаа гарлаа")
	}

	extra := url.Values{}
	if filter.Search != "" {
		extra.Set("search", filter.Search)
	}
	if filter.KYCStatus != "" {
		extra.Set("kycStatus", filter.KYCStatus)
	}

	pageExtra := cloneValues(extra)
	if q.Status != "" {
		pageExtra.Set("status", q.Status)
	}

	h.rn.Render(w, http.StatusOK, "user_list.html", &pageData{
		Title:  "Хэрэглэгчид",
		Active: "users",
		Admin:  &sess.Admin,
		Flash:  flash,
		Data: userListData{
			Rows:       rows,
			Filters:    buildFilters("/users", extra, q.Status, userFilters),
			Pagination: paginate("/users", pageExtra, q, info),
			Search:     filter.Search,
			Status:     q.Status,
			KYCStatus:  filter.KYCStatus,
			ListURL:    currentListURL(pageExtra, q.Page),
			LoadFailed: err != nil,
		},
	})
}

// currentListURL rebuilds the list URL the action forms return to, so a
// block/unblock lands back on the same page with the same filters and the
// row list re-fetched from the server.
func currentListURL(extra url.Values, page int) string {
	params := cloneValues(extra)
	if page > 1 {
		params.Set("page", strconv.Itoa(page))
	}
	if len(params) == 0 {
		return "/users"
	}
	return "/users?" + params.Encode()
}

type userDetailData struct {
	User *models.User
}

func (h *UserHandler) Detail(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())

	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		setFlash(w, flashError, "Хэрэглэгч олдсонгүй")
		http.Redirect(w, r, "/users", http.StatusSeeOther)
		return
	}

	user, err := h.svc.Detail(r.Context(), sess.Token, userID)
	if err != nil {
		h.failRedirect(w, r, err, "Хэрэглэгчийн мэдээлэл татахад алдаа гарлаа", "/users")
		return
	}

	h.rn.Render(w, http.StatusOK, "user_detail.html", &pageData{
		Title:  "Хэрэглэгчийн дэлгэрэнгүй",
		Active: "users",
		Admin:  &sess.Admin,
		Flash:  popFlash(w, r),
		Data:   userDetailData{User: user},
	})
}

func (h *UserHandler) Block(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())

	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		http.Redirect(w, r, "/users", http.StatusSeeOther)
		return
	}

	r.ParseForm()
	returnURL := safeUserListURL(r.PostFormValue("return"))
	reason := strings.TrimSpace(r.PostFormValue("reason"))

	if err := h.svc.Block(r.Context(), sess.Token, userID, reason); err != nil {
		h.failRedirect(w, r, err, "Хэрэглэгч блоклоход алдаа гарлаа", returnURL)
		return
	}

	h.audit.Record(r.Context(), sess.Admin.Username, audit.ActionBlockUser, "user", strconv.Itoa(userID), reason)
	setFlash(w, flashSuccess, "Хэрэглэгч блоклогдлоо")
	http.Redirect(w, r, returnURL, http.StatusSeeOther)
}

func (h *UserHandler) Unblock(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())

	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		http.Redirect(w, r, "/users", http.StatusSeeOther)
		return
	}

	r.ParseForm()
	returnURL := safeUserListURL(r.PostFormValue("return"))

	if err := h.svc.Unblock(r.Context(), sess.Token, userID); err != nil {
		h.failRedirect(w, r, err, "Хэрэглэгчийн блок гаргахад алдаа гарлаа", returnURL)
		return
	}

	h.audit.Record(r.Context(), sess.Admin.Username, audit.ActionUnblockUser, "user", strconv.Itoa(userID), "")
	setFlash(w, flashSuccess, "Хэрэглэгчийн блок гарлаа")
	http.Redirect(w, r, returnURL, http.StatusSeeOther)
}

func (h *UserHandler) SetCreditLimit(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())

	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		http.Redirect(w, r, "/users", http.StatusSeeOther)
		return
	}
	detailURL := "/users/" + strconv.Itoa(userID)

	r.ParseForm()
	limit, _ := strconv.ParseInt(strings.TrimSpace(r.PostFormValue("creditLimit")), 10, 64)
	form := creditLimitForm{CreditLimit: limit}
	if err := h.vh.ValidateStruct(&form); err != nil {
		setFlash(w, flashError, "Зээлийн эрхийн хэмжээ буруу байна")
		http.Redirect(w, r, detailURL, http.StatusSeeOther)
		return
	}

	if err := h.svc.SetCreditLimit(r.Context(), sess.Token, userID, form.CreditLimit); err != nil {
		h.failRedirect(w, r, err, "Зээлийн эрх тохируулахад алдаа гарлаа", detailURL)
		return
	}

	h.audit.Record(r.Context(), sess.Admin.Username, audit.ActionSetCreditLimit, "user", strconv.Itoa(userID), strconv.FormatInt(form.CreditLimit, 10))
	setFlash(w, flashSuccess, "Зээлийн эрх шинэчлэгдлээ")
	http.Redirect(w, r, detailURL, http.StatusSeeOther)
}

// safeUserListURL only ever redirects within the user pages, a posted
// return target cannot point anywhere else.
func safeUserListURL(raw string) string {
	if strings.HasPrefix(raw, "/users") && !strings.Contains(raw, "//") {
		return raw
	}
	return "/users"
}
