package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/spf13/viper"

	"github.com/moncredit/admin-dashboard/internal/audit"
	"github.com/moncredit/admin-dashboard/internal/core"
	"github.com/moncredit/admin-dashboard/internal/middleware"
	"github.com/moncredit/admin-dashboard/internal/services"
)

type AuthHandler struct {
	base
	svc *services.AuthService
}

func NewAuthHandler(b base, svc *services.AuthService) *AuthHandler {
	return &AuthHandler{base: b, svc: svc}
}

type loginData struct {
	Username string
	Error    string
}

func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.rn.Render(w, http.StatusOK, "login.html", &pageData{
		Title: "Нэвтрэх",
		Flash: popFlash(w, r),
		Data:  loginData{},
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLoginError(w, "", "Нэвтрэхэд алдаа гарлаа")
		return
	}

	form := loginForm{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}
	if err := h.vh.ValidateStruct(&form); err != nil {
		h.renderLoginError(w, form.Username, "Хэрэглэгчийн нэр болон нууц үг оруулна уу")
		return
	}

	admin, token, err := h.svc.Login(r.Context(), form.Username, form.Password)
	if err != nil {
		log.Printf("[AUTH] login failed for %s: %v", form.Username, err)
		h.renderLoginError(w, form.Username, core.UserMessage(err, "Нэвтрэхэд алдаа гарлаа"))
		return
	}

	cookieToken, err := h.sessions.Create(r.Context(), token, *admin)
	if err != nil {
		log.Printf("[AUTH] session create failed for %s: %v", form.Username, err)
		h.renderLoginError(w, form.Username, "Нэвтрэхэд алдаа гарлаа")
		return
	}

	ttl := time.Duration(viper.GetInt("session.expiry_hours")) * time.Hour
	middleware.SetSessionCookie(w, cookieToken, ttl)
	h.audit.Record(r.Context(), admin.Username, audit.ActionLogin, "session", "", "")

	log.Printf("[AUTH] operator %s logged in", admin.Username)
	setFlash(w, flashSuccess, "Амжилттай нэвтэрлээ")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r.Context())
	if sess != nil {
		if err := h.sessions.Destroy(r.Context(), sess.ID); err != nil {
			log.Printf("[AUTH] session destroy failed: %v", err)
		}
		h.audit.Record(r.Context(), sess.Admin.Username, audit.ActionLogout, "session", "", "")
	}

	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) renderLoginError(w http.ResponseWriter, username, message string) {
	h.rn.Render(w, http.StatusOK, "login.html", &pageData{
		Title: "Нэвтрэх",
		Data:  loginData{Username: username, Error: message},
	})
}
