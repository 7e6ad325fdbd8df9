package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moncredit/admin-dashboard/internal/models"
	"github.com/moncredit/admin-dashboard/internal/services"
)

func TestKYCRejectEmptyReasonNeverCallsUpstream(t *testing.T) {
	var calls int64
	env := newTestEnv(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
	}))
	t.Cleanup(ts.Close)

	h := NewKYCHandler(env.b, services.NewKYCService(env.client(t, ts.URL)))

	form := url.Values{"reason": {"   "}}
	req := env.authedRequest(http.MethodPost, "/kyc/5/reject", form, map[string]string{"userID": "5"})
	rec := httptest.NewRecorder()
	h.Reject(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/kyc/5?reject=1", rec.Header().Get("Location"), "redirect must keep the modal open")
	assert.Zero(t, atomic.LoadInt64(&calls), "a blank reason must not reach the core platform")
	assert.Contains(t, flashCookieValue(t, rec), "error|")
}

func TestKYCApprove(t *testing.T) {
	pendingRecord := models.KYCRecord{UserID: 5, FirstName: "Бат", KYCStatus: models.KYCPending}

	var approved bool
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/admin/kyc-detail/5":
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data":    map[string]any{"user": pendingRecord},
			})
		case r.Method == http.MethodPost && r.URL.Path == "/admin/approve-kyc/5":
			approved = true
			json.NewEncoder(w).Encode(map[string]any{"success": true})
		default:
			t.Errorf("unexpected upstream call %s %s", r.Method, r.URL.Path)
		}
	})

	env := newTestEnv(t)
	ts := httptest.NewServer(upstream)
	t.Cleanup(ts.Close)

	h := NewKYCHandler(env.b, services.NewKYCService(env.client(t, ts.URL)))

	req := env.authedRequest(http.MethodPost, "/kyc/5/approve", nil, map[string]string{"userID": "5"})
	rec := httptest.NewRecorder()
	h.Approve(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/kyc", rec.Header().Get("Location"))
	assert.True(t, approved)
	assert.Contains(t, flashCookieValue(t, rec), "success|")
}

func TestKYCApproveAlreadyDecided(t *testing.T) {
	decided := models.KYCRecord{UserID: 7, KYCStatus: models.KYCApproved}

	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			t.Errorf("approve must not be sent for a decided record")
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"user": decided},
		})
	})

	env := newTestEnv(t)
	ts := httptest.NewServer(upstream)
	t.Cleanup(ts.Close)

	h := NewKYCHandler(env.b, services.NewKYCService(env.client(t, ts.URL)))

	req := env.authedRequest(http.MethodPost, "/kyc/7/approve", nil, map[string]string{"userID": "7"})
	rec := httptest.NewRecorder()
	h.Approve(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/kyc/7", rec.Header().Get("Location"))
	assert.Contains(t, flashCookieValue(t, rec), "error|")
}

func TestKYCListUnauthorizedForcesLogin(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	env := newTestEnv(t)
	ts := httptest.NewServer(upstream)
	t.Cleanup(ts.Close)

	env.redisMock.ExpectDel("session:sess-1").SetVal(1)

	h := NewKYCHandler(env.b, services.NewKYCService(env.client(t, ts.URL)))

	req := env.authedRequest(http.MethodGet, "/kyc", nil, nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.True(t, sessionCookieCleared(rec), "session cookie must be cleared")
	require.NoError(t, env.redisMock.ExpectationsWereMet())
}

func TestKYCListRendersRowsAndFilters(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "approved", r.URL.Query().Get("status"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"users": []models.KYCRecord{
					{UserID: 1, FirstName: "Сараа", LastName: "Дорж", KYCStatus: models.KYCApproved},
				},
			},
			"pages": 3,
			"total": 25,
		})
	})

	env := newTestEnv(t)
	ts := httptest.NewServer(upstream)
	t.Cleanup(ts.Close)

	h := NewKYCHandler(env.b, services.NewKYCService(env.client(t, ts.URL)))

	req := env.authedRequest(http.MethodGet, "/kyc?status=approved&page=2", nil, nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Сараа Дорж")
	assert.Contains(t, body, "2 / 3 хуудас")
}
