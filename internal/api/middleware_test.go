package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newRequest(t *testing.T, method, path string) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()
	return httptest.NewRequest(method, path, nil), httptest.NewRecorder()
}

func TestRateLimitMiddleware(t *testing.T) {
	limited := RateLimitMiddleware(3)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 3; i++ {
		req, rec := newRequest(t, http.MethodGet, "/api/v1/status")
		req.RemoteAddr = "10.0.0.1:1234"
		limited.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, "request %d should pass", i+1)
	}

	req, rec := newRequest(t, http.MethodGet, "/api/v1/status")
	req.RemoteAddr = "10.0.0.1:1234"
	limited.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// A different client keeps its own budget.
	req, rec = newRequest(t, http.MethodGet, "/api/v1/status")
	req.RemoteAddr = "10.0.0.2:1234"
	limited.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestLogger_PassesThrough(t *testing.T) {
	handler := RequestLogger(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req, rec := newRequest(t, http.MethodGet, "/api/v1/status")
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
