package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"celebrity-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded chain uses first hop", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, "10.0.0.2:1234", "203.0.113.7"},
		{"real ip header", map[string]string{"X-Real-IP": "198.51.100.3"}, "10.0.0.2:1234", "198.51.100.3"},
		{"remote addr", nil, "192.0.2.10:5555", "192.0.2.10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			h := ClientIP(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = utils.GetClientIPFromContext(r.Context())
			}))
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRateLimiter_Limit(t *testing.T) {
	rl := NewRateLimiter(0.001, 2, zap.NewNop())
	h := ClientIP(rl.Limit(okHandler()))

	send := func(remote string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = remote
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("192.0.2.1:1000"))
	assert.Equal(t, http.StatusOK, send("192.0.2.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, send("192.0.2.1:1002"))

	// other clients keep their own bucket
	assert.Equal(t, http.StatusOK, send("192.0.2.2:1000"))
}

func TestRateLimiter_Evict(t *testing.T) {
	rl := NewRateLimiter(1, 1, zap.NewNop())
	rl.getLimiter("a")
	rl.getLimiter("b")
	rl.visitors["a"].lastSeen = time.Now().Add(-2 * visitorIdleTTL)

	assert.Equal(t, 1, rl.evict(time.Now()))
	assert.Contains(t, rl.visitors, "b")
	assert.NotContains(t, rl.visitors, "a")
}

func TestRecover(t *testing.T) {
	h := Recover(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Status)
	assert.Equal(t, "Internal server error", body.Message)
}

func TestLoggerCapturesStatus(t *testing.T) {
	h := Logger(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw, ok := w.(*responseWriter)
		require.True(t, ok)
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
		assert.Equal(t, http.StatusTeapot, rw.statusCode)
		assert.Equal(t, len("short and stout"), rw.bytesWritten)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestMetricsUsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/api/events/{slug}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/events/summer-gala", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCORS(t *testing.T) {
	h := CORS([]string{"https://app.example.com"})(okHandler())
	req := httptest.NewRequest(http.MethodOptions, "/api/events", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}
