package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moncredit/admin-dashboard/internal/models"
	"github.com/moncredit/admin-dashboard/internal/services"
)

func TestUserListPassesFilters(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "1", q.Get("page"))
		assert.Equal(t, "bat", q.Get("search"))
		assert.Equal(t, "blocked", q.Get("status"))
		assert.Equal(t, "approved", q.Get("kycStatus"))

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"users": []models.User{{ID: 3, FirstName: "Бат", Status: models.UserBlocked}},
			},
			"pages": 1,
			"total": 1,
		})
	})

	env := newTestEnv(t)
	ts := httptest.NewServer(upstream)
	t.Cleanup(ts.Close)

	h := NewUserHandler(env.b, services.NewUserService(env.client(t, ts.URL)))

	req := env.authedRequest(http.MethodGet, "/users?search=bat&status=blocked&kycStatus=approved", nil, nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Бат")
}

func TestUserListIgnoresUnknownKYCFilter(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.Query().Get("kycStatus"))
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"users": []models.User{}},
		})
	})

	env := newTestEnv(t)
	ts := httptest.NewServer(upstream)
	t.Cleanup(ts.Close)

	h := NewUserHandler(env.b, services.NewUserService(env.client(t, ts.URL)))

	req := env.authedRequest(http.MethodGet, "/users?kycStatus=bogus", nil, nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserBlockRedirectsToReturnURL(t *testing.T) {
	var blocked bool
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/admin/user/3/block", r.URL.Path)
		blocked = true
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	})

	env := newTestEnv(t)
	ts := httptest.NewServer(upstream)
	t.Cleanup(ts.Close)

	h := NewUserHandler(env.b, services.NewUserService(env.client(t, ts.URL)))

	form := url.Values{"return": {"/users?page=2&status=active"}}
	req := env.authedRequest(http.MethodPost, "/users/3/block", form, map[string]string{"userID": "3"})
	rec := httptest.NewRecorder()
	h.Block(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/users?page=2&status=active", rec.Header().Get("Location"))
	assert.True(t, blocked)
	assert.Contains(t, flashCookieValue(t, rec), "success|")
}

func TestUserBlockRejectsForeignReturnURL(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	})

	env := newTestEnv(t)
	ts := httptest.NewServer(upstream)
	t.Cleanup(ts.Close)

	h := NewUserHandler(env.b, services.NewUserService(env.client(t, ts.URL)))

	form := url.Values{"return": {"https://evil.example/phish"}}
	req := env.authedRequest(http.MethodPost, "/users/3/block", form, map[string]string{"userID": "3"})
	rec := httptest.NewRecorder()
	h.Block(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/users", rec.Header().Get("Location"))
}

func TestUserSetCreditLimit(t *testing.T) {
	t.Run("invalid amount never calls upstream", func(t *testing.T) {
		env := newTestEnv(t)

		var calls int
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
		}))
		t.Cleanup(ts.Close)

		h := NewUserHandler(env.b, services.NewUserService(env.client(t, ts.URL)))

		form := url.Values{"creditLimit": {"-50"}}
		req := env.authedRequest(http.MethodPost, "/users/3/credit-limit", form, map[string]string{"userID": "3"})
		rec := httptest.NewRecorder()
		h.SetCreditLimit(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/users/3", rec.Header().Get("Location"))
		assert.Zero(t, calls)
		assert.Contains(t, flashCookieValue(t, rec), "error|")
	})

	t.Run("valid amount posted through", func(t *testing.T) {
		env := newTestEnv(t)

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/admin/set-credit-limit/3", r.URL.Path)
			var body map[string]int64
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, int64(500000), body["creditLimit"])
			json.NewEncoder(w).Encode(map[string]any{"success": true})
		}))
		t.Cleanup(ts.Close)

		h := NewUserHandler(env.b, services.NewUserService(env.client(t, ts.URL)))

		form := url.Values{"creditLimit": {"500000"}}
		req := env.authedRequest(http.MethodPost, "/users/3/credit-limit", form, map[string]string{"userID": "3"})
		rec := httptest.NewRecorder()
		h.SetCreditLimit(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Contains(t, flashCookieValue(t, rec), "success|")
	})
}
