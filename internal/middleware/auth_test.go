package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moncredit/admin-dashboard/internal/models"
	"github.com/moncredit/admin-dashboard/internal/session"
)

func TestRequireSession(t *testing.T) {
	viper.Set("session.secret_key", "test-secret")
	viper.Set("session.expiry_hours", 24)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFrom(r.Context())
		require.NotNil(t, sess)
		w.Write([]byte(sess.Admin.Username))
	})

	t.Run("no cookie redirects to login", func(t *testing.T) {
		rdb, _ := redismock.NewClientMock()
		guard := RequireSession(session.NewStore(rdb))

		rec := httptest.NewRecorder()
		guard(next).ServeHTTP(rec, httptest.NewRequest("GET", "/dashboard", nil))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
	})

	t.Run("unresolvable cookie is cleared", func(t *testing.T) {
		rdb, _ := redismock.NewClientMock()
		guard := RequireSession(session.NewStore(rdb))

		r := httptest.NewRequest("GET", "/dashboard", nil)
		r.AddCookie(&http.Cookie{Name: session.CookieName, Value: "garbage"})
		rec := httptest.NewRecorder()
		guard(next).ServeHTTP(rec, r)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))

		var cleared bool
		for _, c := range rec.Result().Cookies() {
			if c.Name == session.CookieName && c.MaxAge < 0 {
				cleared = true
			}
		}
		assert.True(t, cleared)
	})

	t.Run("valid session passes through", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := session.NewStore(rdb)

		mock.Regexp().ExpectHSet(`session:.+`, "adminToken", "tok-1", "admin", `\{.+\}`).SetVal(2)
		mock.Regexp().ExpectExpire(`session:.+`, 24*time.Hour).SetVal(true)
		cookieToken, err := store.Create(context.Background(), "tok-1", models.Admin{ID: 1, Username: "admin"})
		require.NoError(t, err)

		mock.Regexp().ExpectHGetAll(`session:.+`).SetVal(map[string]string{
			"adminToken": "tok-1",
			"admin":      `{"id":1,"username":"admin"}`,
		})

		guard := RequireSession(store)
		r := httptest.NewRequest("GET", "/dashboard", nil)
		r.AddCookie(&http.Cookie{Name: session.CookieName, Value: cookieToken})
		rec := httptest.NewRecorder()
		guard(next).ServeHTTP(rec, r)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "admin", rec.Body.String())
	})
}
