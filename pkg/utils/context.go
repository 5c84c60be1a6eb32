package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	RoleKey      contextKey = "role"
	SessionIDKey contextKey = "session_id"
	ClientIPKey  contextKey = "client_ip"
)

func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userIDVal := ctx.Value(UserIDKey)
	if userIDVal == nil {
		return uuid.Nil, false
	}

	userIDStr, ok := userIDVal.(string)
	if !ok {
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, false
	}

	return userID, true
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	roleVal := ctx.Value(RoleKey)
	if roleVal == nil {
		return "", false
	}

	role, ok := roleVal.(string)
	return role, ok
}

func SetUserContext(ctx context.Context, userID uuid.UUID, role string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID.String())
	ctx = context.WithValue(ctx, RoleKey, role)
	return ctx
}

// GetSessionIDFromContext returns the session bound to the request token.
func GetSessionIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(SessionIDKey).(uuid.UUID)
	return id, ok
}

func SetSessionContext(ctx context.Context, sessionID uuid.UUID) context.Context {
	return context.WithValue(ctx, SessionIDKey, sessionID)
}

func SetClientIPContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, ClientIPKey, ip)
}

func GetClientIPFromContext(ctx context.Context) string {
	ip, _ := ctx.Value(ClientIPKey).(string)
	return ip
}

// IsAdmin reports whether the request was authenticated as an admin.
func IsAdmin(ctx context.Context) bool {
	role, ok := GetRoleFromContext(ctx)
	return ok && role == "admin"
}
