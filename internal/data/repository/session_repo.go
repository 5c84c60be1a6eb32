package repository

import (
	"context"
	"errors"
	"fmt"

	"celebrity-booking/internal/data/entity"
	"celebrity-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// sessionRetention keeps dead sessions around for a week so logins stay auditable.
const sessionRetention = "7 days"

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	FindValidSession(ctx context.Context, token uuid.UUID) (*entity.Session, error)
	Revoke(ctx context.Context, token uuid.UUID) error
	RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) error
	CleanExpiredSessions(ctx context.Context) (int64, error)
}

type sessionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSessionRepository(db database.PgxIface, log *zap.Logger) SessionRepository {
	return &sessionRepository{
		db:  db,
		log: log.With(zap.String("repository", "session")),
	}
}

func (r *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	_, err := database.Conn(ctx, r.db).Exec(ctx, `
		INSERT INTO sessions (id, user_id, token, user_agent, ip_address, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		session.ID, session.UserID, session.Token,
		session.UserAgent, session.IPAddress,
		session.ExpiresAt, session.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create session", zap.Error(err), zap.Stringer("user_id", session.UserID))
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// FindValidSession returns nil when the token is unknown, revoked, expired,
// or belongs to a deactivated or deleted account.
func (r *sessionRepository) FindValidSession(ctx context.Context, token uuid.UUID) (*entity.Session, error) {
	var s entity.Session
	err := r.db.QueryRow(ctx, `
		SELECT s.id, s.user_id, s.token, s.user_agent, s.ip_address,
		       s.expires_at, s.revoked_at, s.created_at, u.role
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.token = $1
		  AND s.revoked_at IS NULL
		  AND s.expires_at > NOW()
		  AND u.is_active
		  AND u.deleted_at IS NULL`, token,
	).Scan(
		&s.ID, &s.UserID, &s.Token, &s.UserAgent, &s.IPAddress,
		&s.ExpiresAt, &s.RevokedAt, &s.CreatedAt, &s.Role,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find valid session", zap.Error(err))
		return nil, fmt.Errorf("failed to find session: %w", err)
	}
	return &s, nil
}

func (r *sessionRepository) Revoke(ctx context.Context, token uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE sessions SET revoked_at = NOW() WHERE token = $1 AND revoked_at IS NULL`, token)
	if err != nil {
		r.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("session: %w", ErrNotFound)
	}
	return nil
}

// RevokeAllUserSessions joins the caller's transaction when there is one.
func (r *sessionRepository) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	tag, err := database.Conn(ctx, r.db).Exec(ctx,
		`UPDATE sessions SET revoked_at = NOW() WHERE user_id = $1 AND revoked_at IS NULL`, userID)
	if err != nil {
		r.log.Error("Failed to revoke user sessions", zap.Error(err), zap.Stringer("user_id", userID))
		return fmt.Errorf("failed to revoke sessions: %w", err)
	}
	r.log.Debug("Revoked user sessions", zap.Stringer("user_id", userID), zap.Int64("count", tag.RowsAffected()))
	return nil
}

func (r *sessionRepository) CleanExpiredSessions(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM sessions
		WHERE expires_at < NOW() - $1::interval
		   OR revoked_at < NOW() - $1::interval`, sessionRetention)
	if err != nil {
		r.log.Error("Failed to clean expired sessions", zap.Error(err))
		return 0, fmt.Errorf("failed to clean sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
