package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is one login. Token is the JWT jti; access tokens die with it.
type Session struct {
	BaseSimple
	UserID    uuid.UUID  `db:"user_id"`
	Token     uuid.UUID  `db:"token"`
	UserAgent *string    `db:"user_agent"`
	IPAddress *string    `db:"ip_address"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`

	// Role is the owner's current role, loaded with the session.
	Role UserRole `db:"-"`
}

func NewSession(userID uuid.UUID, ttl time.Duration, userAgent, ip string) *Session {
	s := &Session{
		BaseSimple: NewBaseSimple(),
		UserID:     userID,
		Token:      uuid.New(),
	}
	s.ExpiresAt = s.CreatedAt.Add(ttl)
	if userAgent != "" {
		s.UserAgent = &userAgent
	}
	if ip != "" {
		s.IPAddress = &ip
	}
	return s
}

func (s *Session) Active(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
