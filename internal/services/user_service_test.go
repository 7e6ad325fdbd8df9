package services

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_List(t *testing.T) {
	t.Run("empty filter fields are omitted", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/admin/users", r.URL.Path)
			assert.Equal(t, "1", r.URL.Query().Get("page"))
			assert.False(t, r.URL.Query().Has("search"))
			assert.False(t, r.URL.Query().Has("status"))
			assert.False(t, r.URL.Query().Has("kycStatus"))
			w.Write([]byte(`{"success": true, "data": {"users": []}, "pages": 0, "total": 0}`))
		})

		rows, info, err := NewUserService(client).List(context.Background(), "tok", 1, UserFilter{})
		require.NoError(t, err)
		assert.Empty(t, rows)
		assert.Equal(t, 0, info.Total)
	})

	t.Run("all filters pass through", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "99112233", r.URL.Query().Get("search"))
			assert.Equal(t, "blocked", r.URL.Query().Get("status"))
			assert.Equal(t, "approved", r.URL.Query().Get("kycStatus"))
			w.Write([]byte(`{"success": true, "data": {"users": [{"id": 5, "status": "blocked"}]}, "pages": 1, "total": 1}`))
		})

		filter := UserFilter{Search: "99112233", Status: "blocked", KYCStatus: "approved"}
		rows, _, err := NewUserService(client).List(context.Background(), "tok", 1, filter)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "blocked", rows[0].Status)
	})
}

func TestUserService_BlockUnblock(t *testing.T) {
	t.Run("block is a PUT carrying the reason", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/admin/user/5/block", r.URL.Path)
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "", body["reason"])
			w.Write([]byte(`{"success": true}`))
		})

		assert.NoError(t, NewUserService(client).Block(context.Background(), "tok", 5, ""))
	})

	t.Run("unblock is a bare PUT", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/admin/user/5/unblock", r.URL.Path)
			w.Write([]byte(`{"success": true}`))
		})

		assert.NoError(t, NewUserService(client).Unblock(context.Background(), "tok", 5))
	})
}

func TestUserService_SetCreditLimit(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/set-credit-limit/5", r.URL.Path)
		var body map[string]int64
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, int64(500000), body["creditLimit"])
		w.Write([]byte(`{"success": true}`))
	})

	err := NewUserService(client).SetCreditLimit(context.Background(), "tok", 5, 500000)
	assert.NoError(t, err)
}
