package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecurityHeaders(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	t.Run("plain http", func(t *testing.T) {
		rr := httptest.NewRecorder()
		SecurityHeaders(false, APIContentSecurityPolicy)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/cards", nil))

		assert.Equal(t, http.StatusTeapot, rr.Code)
		assert.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
		assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, APIContentSecurityPolicy, rr.Header().Get("Content-Security-Policy"))
		assert.Empty(t, rr.Header().Get("Strict-Transport-Security"))
	})

	t.Run("hsts without csp", func(t *testing.T) {
		rr := httptest.NewRecorder()
		SecurityHeaders(true, "")(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/cards", nil))

		assert.NotEmpty(t, rr.Header().Get("Strict-Transport-Security"))
		assert.Empty(t, rr.Header().Get("Content-Security-Policy"))
	})
}
