package middleware

import (
	"errors"
	"net/http"
	"strings"

	"celebrity-booking/internal/data/repository"
	"celebrity-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthSession validates the access token (Bearer header or cookie) and the
// session it is bound to.
func AuthSession(tokens *utils.TokenManager, sessionRepo repository.SessionRepository, cookieName string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 1. Extract token
			raw := extractToken(r, cookieName)
			if raw == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			// 2. Verify signature and expiry
			claims, err := tokens.Parse(raw)
			if err != nil {
				msg := "Invalid token"
				if errors.Is(err, utils.ErrTokenExpired) {
					msg = "Token expired"
				}
				logger.Warn("Rejected token", zap.Error(err), zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, msg)
				return
			}

			sessionID, err := uuid.Parse(claims.ID)
			if err != nil {
				utils.ResponseUnauthorized(w, "Invalid token")
				return
			}

			// 3. Session must still be live
			session, err := sessionRepo.FindValidSession(r.Context(), sessionID)
			if err != nil {
				logger.Error("Failed to validate session",
					zap.String("session_id", sessionID.String()),
					zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil {
				logger.Warn("Invalid or expired session", zap.String("session_id", sessionID.String()))
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			// the stored role wins over the claim so demotions apply immediately
			ctx := utils.SetUserContext(r.Context(), session.UserID, string(session.Role))
			ctx = utils.SetSessionContext(ctx, session.Token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractToken(r *http.Request, cookieName string) string {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			return ""
		}
		return strings.TrimSpace(token)
	}

	if cookieName != "" {
		if c, err := r.Cookie(cookieName); err == nil {
			return c.Value
		}
	}
	return ""
}

// Admin rechecks the role against the database, so a demoted admin loses
// access before their token expires.
func Admin(userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 1. Get user ID from context (set by AuthSession)
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			// 2. Load user
			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Admin check: failed to get user",
					zap.Error(err), zap.String("user_id", userID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			// 3. Check role
			if user == nil || !user.IsActive || !user.IsAdmin() {
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("user_id", userID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			ctx := utils.SetUserContext(r.Context(), userID, string(user.Role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
