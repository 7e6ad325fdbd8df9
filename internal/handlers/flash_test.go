package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlashRoundTrip(t *testing.T) {
	rec := httptest.NewRecorder()
	setFlash(rec, flashSuccess, "Амжилттай хадгаллаа")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	r := httptest.NewRequest("GET", "/dashboard", nil)
	r.AddCookie(cookies[0])

	rec2 := httptest.NewRecorder()
	flash := popFlash(rec2, r)
	require.NotNil(t, flash)
	assert.Equal(t, flashSuccess, flash.Kind)
	assert.Equal(t, "Амжилттай хадгаллаа", flash.Message)

	// pop must also clear the cookie
	var cleared bool
	for _, c := range rec2.Result().Cookies() {
		if c.Name == flashCookie && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func TestPopFlashNoCookie(t *testing.T) {
	r := httptest.NewRequest("GET", "/dashboard", nil)
	assert.Nil(t, popFlash(httptest.NewRecorder(), r))
}

func TestPopFlashGarbage(t *testing.T) {
	r := httptest.NewRequest("GET", "/dashboard", nil)
	r.AddCookie(&http.Cookie{Name: flashCookie, Value: "no-separator"})
	assert.Nil(t, popFlash(httptest.NewRecorder(), r))
}
