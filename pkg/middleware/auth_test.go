package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"celebrity-booking/internal/data/entity"
	"celebrity-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSessions struct {
	session *entity.Session
	err     error
}

func (s *stubSessions) Create(context.Context, *entity.Session) error { return nil }
func (s *stubSessions) FindValidSession(_ context.Context, token uuid.UUID) (*entity.Session, error) {
	if s.err != nil || s.session == nil || s.session.Token != token {
		return nil, s.err
	}
	return s.session, nil
}
func (s *stubSessions) Revoke(context.Context, uuid.UUID) error                { return nil }
func (s *stubSessions) RevokeAllUserSessions(context.Context, uuid.UUID) error { return nil }
func (s *stubSessions) CleanExpiredSessions(context.Context) (int64, error)    { return 0, nil }

type stubUsers struct {
	user *entity.User
}

func (s *stubUsers) Create(context.Context, *entity.User) error { return nil }
func (s *stubUsers) FindByID(context.Context, uuid.UUID) (*entity.User, error) {
	return s.user, nil
}
func (s *stubUsers) FindByEmail(context.Context, string) (*entity.User, error)    { return nil, nil }
func (s *stubUsers) FindByUsername(context.Context, string) (*entity.User, error) { return nil, nil }
func (s *stubUsers) FindAll(context.Context, entity.UserFilter, int, int) ([]*entity.User, error) {
	return nil, nil
}
func (s *stubUsers) Count(context.Context, entity.UserFilter) (int64, error) { return 0, nil }
func (s *stubUsers) Update(context.Context, *entity.User) error              { return nil }
func (s *stubUsers) UpdatePassword(context.Context, uuid.UUID, string) error { return nil }
func (s *stubUsers) MarkEmailVerified(context.Context, uuid.UUID) error      { return nil }
func (s *stubUsers) Delete(context.Context, uuid.UUID) error                 { return nil }
func (s *stubUsers) AdjustBalance(context.Context, uuid.UUID, decimal.Decimal) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func newTokens() *utils.TokenManager {
	return utils.NewTokenManager(utils.JWTConfig{Secret: "middleware-secret", ExpiryHours: 1, CookieName: "token"}, "test")
}

func echoUser(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := utils.GetUserIDFromContext(r.Context())
		require.True(t, ok)
		role, _ := utils.GetRoleFromContext(r.Context())
		w.Header().Set("X-User", id.String())
		w.Header().Set("X-Role", role)
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthSession(t *testing.T) {
	tokens := newTokens()
	userID := uuid.New()
	session := &entity.Session{UserID: userID, Token: uuid.New(), ExpiresAt: time.Now().Add(time.Hour), Role: entity.RoleCustomer}

	// a stale admin claim must not outrank the stored role
	valid, err := tokens.Generate(userID, session.Token, "admin", session.ExpiresAt)
	require.NoError(t, err)
	expired, err := tokens.Generate(userID, session.Token, "customer", time.Now().Add(-time.Minute))
	require.NoError(t, err)
	orphan, err := tokens.Generate(userID, uuid.New(), "customer", session.ExpiresAt)
	require.NoError(t, err)

	tests := []struct {
		name     string
		sessions *stubSessions
		prepare  func(r *http.Request)
		wantCode int
	}{
		{
			name:     "bearer token",
			sessions: &stubSessions{session: session},
			prepare:  func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+valid) },
			wantCode: http.StatusNoContent,
		},
		{
			name:     "cookie token",
			sessions: &stubSessions{session: session},
			prepare:  func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "token", Value: valid}) },
			wantCode: http.StatusNoContent,
		},
		{
			name:     "missing token",
			sessions: &stubSessions{session: session},
			prepare:  func(r *http.Request) {},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "non bearer scheme",
			sessions: &stubSessions{session: session},
			prepare:  func(r *http.Request) { r.Header.Set("Authorization", "Basic abc") },
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "expired token",
			sessions: &stubSessions{session: session},
			prepare:  func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+expired) },
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "revoked session",
			sessions: &stubSessions{session: session},
			prepare:  func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+orphan) },
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "session lookup failure",
			sessions: &stubSessions{err: errors.New("db down")},
			prepare:  func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+valid) },
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := AuthSession(tokens, tt.sessions, "token", zap.NewNop())(echoUser(t))
			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			tt.prepare(req)
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusNoContent {
				assert.Equal(t, userID.String(), rec.Header().Get("X-User"))
				assert.Equal(t, "customer", rec.Header().Get("X-Role"))
			}
		})
	}
}

func TestAdmin(t *testing.T) {
	userID := uuid.New()
	withUser := func(r *http.Request) *http.Request {
		return r.WithContext(utils.SetUserContext(r.Context(), userID, "admin"))
	}

	t.Run("admin passes", func(t *testing.T) {
		users := &stubUsers{user: &entity.User{Role: entity.RoleAdmin, IsActive: true}}
		rec := httptest.NewRecorder()
		Admin(users, zap.NewNop())(echoUser(t)).ServeHTTP(rec, withUser(httptest.NewRequest(http.MethodGet, "/", nil)))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("demoted user is forbidden despite token role", func(t *testing.T) {
		users := &stubUsers{user: &entity.User{Role: entity.RoleCustomer, IsActive: true}}
		rec := httptest.NewRecorder()
		Admin(users, zap.NewNop())(echoUser(t)).ServeHTTP(rec, withUser(httptest.NewRequest(http.MethodGet, "/", nil)))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("no user in context", func(t *testing.T) {
		rec := httptest.NewRecorder()
		Admin(&stubUsers{}, zap.NewNop())(echoUser(t)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
