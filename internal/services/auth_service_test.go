package services

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moncredit/admin-dashboard/internal/core"
)

func TestAuthService_Login(t *testing.T) {
	t.Run("successful login returns admin and token", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/admin/login", r.URL.Path)
			assert.Empty(t, r.Header.Get("Authorization"))

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "admin", body["username"])
			assert.Equal(t, "secret", body["password"])

			w.Write([]byte(`{"success": true, "data": {"admin": {"id": 1, "username": "admin", "name": "Админ"}, "token": "tok-abc"}}`))
		})

		admin, token, err := NewAuthService(client).Login(context.Background(), "admin", "secret")

		require.NoError(t, err)
		assert.Equal(t, "tok-abc", token)
		assert.Equal(t, "Админ", admin.Name)
	})

	t.Run("bad credentials return the server message", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success": false, "message": "Нэвтрэх нэр эсвэл нууц үг буруу"}`))
		})

		_, _, err := NewAuthService(client).Login(context.Background(), "admin", "wrong")
		assert.Equal(t, "Нэвтрэх нэр эсвэл нууц үг буруу", core.UserMessage(err, "x"))
	})
}

func TestLoanService_ActiveListUsesOwnEndpoint(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/active-loans", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.False(t, r.URL.Query().Has("status"))
		w.Write([]byte(`{"success": true, "data": {"loans": [{"id": 11, "status": "active", "remaining_amount": 120000}]}, "pages": 2, "total": 14}`))
	})

	rows, info, err := NewLoanService(client).ListActive(context.Background(), "tok", 2)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Disbursed())
	assert.Equal(t, 2, info.Pages)
}
