package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-redis/redismock/v8"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/moncredit/admin-dashboard/internal/audit"
	"github.com/moncredit/admin-dashboard/internal/core"
	"github.com/moncredit/admin-dashboard/internal/middleware"
	"github.com/moncredit/admin-dashboard/internal/models"
	"github.com/moncredit/admin-dashboard/internal/session"
)

// testEnv wires a handler base against a fake core platform and a mocked
// session backend.
type testEnv struct {
	b         base
	redisMock redismock.ClientMock
	sess      *session.Session
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	viper.Set("session.secret_key", "test-secret")

	rdb, redisMock := redismock.NewClientMock()
	store := session.NewStore(rdb)

	rn, err := NewRenderer("../../web/templates")
	require.NoError(t, err)

	return &testEnv{
		b: base{
			rn:       rn,
			sessions: store,
			audit:    audit.NewLogger(nil),
			vh:       NewValidationHelper(),
		},
		redisMock: redisMock,
		sess: &session.Session{
			ID:    "sess-1",
			Token: "core-token",
			Admin: models.Admin{ID: 1, Username: "admin", Name: "Админ"},
		},
	}
}

func (e *testEnv) client(t *testing.T, baseURL string) *core.Client {
	t.Helper()
	return core.NewClientWithBase(baseURL, time.Second)
}

// authedRequest builds a request carrying the test session and the given
// chi route parameters.
func (e *testEnv) authedRequest(method, target string, form url.Values, params map[string]string) *http.Request {
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}

	r := httptest.NewRequest(method, target, body)
	if form != nil {
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	ctx := middleware.WithSession(r.Context(), e.sess)
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return r.WithContext(ctx)
}

func flashCookieValue(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == flashCookie && c.MaxAge > 0 {
			raw, err := url.QueryUnescape(c.Value)
			require.NoError(t, err)
			return raw
		}
	}
	return ""
}

func sessionCookieCleared(rec *httptest.ResponseRecorder) bool {
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName && c.MaxAge < 0 {
			return true
		}
	}
	return false
}
