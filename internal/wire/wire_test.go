package wire

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"celebrity-booking/internal/data/repository"
	"celebrity-booking/internal/usecase"
	"celebrity-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestApp(probes map[string]Probe) *App {
	config := &utils.Config{
		App:       utils.AppConfig{Name: "celebrity-booking-test", CORSOrigins: []string{"*"}},
		JWT:       utils.JWTConfig{Secret: "wire-secret", ExpiryHours: 1, CookieName: "token"},
		Upload:    utils.UploadConfig{Dir: "testdata", PublicURL: "/uploads", MaxBytes: 1 << 20},
		RateLimit: utils.RateLimitConfig{RPS: 1, Burst: 1},
	}

	return Wiring(usecase.Deps{
		Repo:   &repository.Repository{},
		Config: config,
		Tokens: utils.NewTokenManager(config.JWT, config.App.Name),
		Log:    zap.NewNop(),
	}, nil, probes)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp(nil)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/auth/me"},
		{http.MethodGet, "/api/bookings"},
		{http.MethodPost, "/api/deposits"},
		{http.MethodGet, "/api/notifications/ws"},
		{http.MethodGet, "/api/admin/stats"},
		{http.MethodGet, "/api/admin/users"},
		{http.MethodPut, "/api/admin/platform"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			app.Router.ServeHTTP(rec, httptest.NewRequest(rt.method, rt.path, nil))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestHealth(t *testing.T) {
	t.Run("all probes up", func(t *testing.T) {
		app := newTestApp(map[string]Probe{
			"postgres": func(context.Context) error { return nil },
			"redis":    func(context.Context) error { return nil },
		})
		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"postgres":"up"`)
	})

	t.Run("one probe down", func(t *testing.T) {
		app := newTestApp(map[string]Probe{
			"postgres": func(context.Context) error { return nil },
			"mongo":    func(context.Context) error { return errors.New("no reachable servers") },
		})
		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), `"mongo":"down"`)
	})
}

func TestAuthRoutesAreRateLimited(t *testing.T) {
	app := newTestApp(nil)

	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = "203.0.113.9:4000"
		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, req)
		return rec.Code
	}

	// the empty body fails decoding, which still spends a token
	assert.Equal(t, http.StatusBadRequest, send())
	assert.Equal(t, http.StatusTooManyRequests, send())
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApp(nil)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
