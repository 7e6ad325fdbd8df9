package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moncredit/admin-dashboard/internal/core"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *core.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return core.NewClientWithBase(srv.URL, 5*time.Second)
}

func TestKYCService_List(t *testing.T) {
	t.Run("passes page and status through and unwraps envelope", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/admin/pending-kyc", r.URL.Path)
			assert.Equal(t, "3", r.URL.Query().Get("page"))
			assert.Equal(t, "approved", r.URL.Query().Get("status"))
			w.Write([]byte(`{
				"success": true,
				"data": {"users": [
					{"user_id": 7, "first_name": "Бат", "last_name": "Болд", "kyc_status": "approved"}
				]},
				"pages": 4,
				"total": 31
			}`))
		})

		svc := NewKYCService(client)
		rows, info, err := svc.List(context.Background(), "tok", 3, "approved")

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, 7, rows[0].UserID)
		assert.Equal(t, "Бат Болд", rows[0].FullName())
		assert.Equal(t, 4, info.Pages)
		assert.Equal(t, 31, info.Total)
	})

	t.Run("success false becomes api error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success": false, "message": "Хандах эрхгүй"}`))
		})

		svc := NewKYCService(client)
		_, _, err := svc.List(context.Background(), "tok", 1, "pending")

		var apiErr *core.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Хандах эрхгүй", apiErr.Message)
	})
}

func TestKYCService_Detail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/kyc-detail/42", r.URL.Path)
		w.Write([]byte(`{"success": true, "data": {"user": {"user_id": 42, "kyc_status": "pending", "register_number": "АБ99112233"}}}`))
	})

	svc := NewKYCService(client)
	rec, err := svc.Detail(context.Background(), "tok", 42)

	require.NoError(t, err)
	assert.Equal(t, 42, rec.UserID)
	assert.Equal(t, "АБ99112233", rec.RegisterNumber)
}

func TestKYCService_Actions(t *testing.T) {
	t.Run("approve posts empty body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/admin/approve-kyc/42", r.URL.Path)
			w.Write([]byte(`{"success": true}`))
		})

		assert.NoError(t, NewKYCService(client).Approve(context.Background(), "tok", 42))
	})

	t.Run("reject carries the reason", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/admin/reject-kyc/42", r.URL.Path)
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Зураг тод биш байна", body["reason"])
			w.Write([]byte(`{"success": true}`))
		})

		err := NewKYCService(client).Reject(context.Background(), "tok", 42, "Зураг тод биш байна")
		assert.NoError(t, err)
	})

	t.Run("business failure surfaces server message", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success": false, "message": "KYC аль хэдийн зөвшөөрөгдсөн"}`))
		})

		err := NewKYCService(client).Approve(context.Background(), "tok", 42)
		assert.Equal(t, "KYC аль хэдийн зөвшөөрөгдсөн", core.UserMessage(err, "x"))
	})
}
