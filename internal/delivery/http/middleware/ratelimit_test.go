package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("allows within burst", func(t *testing.T) {
		rl := NewRateLimiter(1, 3)
		handler := rl.Wrap(next)
		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodGet, "http://test/events/upcoming", nil)
			req.RemoteAddr = "10.0.0.1:5000"
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			require.Equal(t, http.StatusOK, rr.Code, "request %d", i)
		}
	})

	t.Run("rejects over burst with 429", func(t *testing.T) {
		rl := NewRateLimiter(1, 2)
		handler := rl.Wrap(next)
		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodGet, "http://test/events/upcoming", nil)
			req.RemoteAddr = "10.0.0.2:5000"
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			codes = append(codes, rr.Code)
		}
		assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	})

	t.Run("limits are per client IP", func(t *testing.T) {
		rl := NewRateLimiter(1, 1)
		handler := rl.Wrap(next)

		first := httptest.NewRequest(http.MethodGet, "http://test/events/upcoming", nil)
		first.RemoteAddr = "10.0.0.3:5000"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, first)
		require.Equal(t, http.StatusOK, rr.Code)

		blocked := httptest.NewRequest(http.MethodGet, "http://test/events/upcoming", nil)
		blocked.RemoteAddr = "10.0.0.3:5001"
		rr = httptest.NewRecorder()
		handler.ServeHTTP(rr, blocked)
		require.Equal(t, http.StatusTooManyRequests, rr.Code, "same IP different port shares the bucket")

		other := httptest.NewRequest(http.MethodGet, "http://test/events/upcoming", nil)
		other.RemoteAddr = "10.0.0.4:5000"
		rr = httptest.NewRecorder()
		handler.ServeHTTP(rr, other)
		require.Equal(t, http.StatusOK, rr.Code, "different IP has its own bucket")
	})
}
