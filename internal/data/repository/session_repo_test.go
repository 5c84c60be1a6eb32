package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"celebrity-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var sessionCols = []string{"id", "user_id", "token", "user_agent", "ip_address",
	"expires_at", "revoked_at", "created_at", "role"}

func TestSessionRepository_FindValidSession(t *testing.T) {
	mock := newMock(t)
	repo := NewSessionRepository(mock, zap.NewNop())

	token := uuid.New()
	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery("FROM sessions s\\s+JOIN users u").
		WithArgs(token).
		WillReturnRows(pgxmock.NewRows(sessionCols).AddRow(
			uuid.New(), userID, token, (*string)(nil), (*string)(nil),
			now.Add(time.Hour), (*time.Time)(nil), now, entity.RoleAdmin,
		))

	session, err := repo.FindValidSession(context.Background(), token)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, userID, session.UserID)
	assert.Equal(t, entity.RoleAdmin, session.Role)
	assert.True(t, session.Active(now))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_FindValidSession_Missing(t *testing.T) {
	mock := newMock(t)
	repo := NewSessionRepository(mock, zap.NewNop())

	token := uuid.New()
	mock.ExpectQuery("FROM sessions").WithArgs(token).WillReturnError(pgx.ErrNoRows)

	session, err := repo.FindValidSession(context.Background(), token)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSessionRepository_Revoke(t *testing.T) {
	mock := newMock(t)
	repo := NewSessionRepository(mock, zap.NewNop())
	token := uuid.New()

	mock.ExpectExec("UPDATE sessions SET revoked_at").WithArgs(token).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, repo.Revoke(context.Background(), token))

	mock.ExpectExec("UPDATE sessions SET revoked_at").WithArgs(token).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	err := repo.Revoke(context.Background(), token)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_CleanExpiredSessions(t *testing.T) {
	mock := newMock(t)
	repo := NewSessionRepository(mock, zap.NewNop())

	mock.ExpectExec("DELETE FROM sessions").WithArgs(sessionRetention).
		WillReturnResult(pgxmock.NewResult("DELETE", 4))

	n, err := repo.CleanExpiredSessions(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 4, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSession_Active(t *testing.T) {
	s := entity.NewSession(uuid.New(), time.Hour, "curl", "")
	assert.True(t, s.Active(time.Now()))
	assert.Nil(t, s.IPAddress)
	assert.False(t, s.Active(s.ExpiresAt.Add(time.Second)))

	revoked := time.Now()
	s.RevokedAt = &revoked
	assert.False(t, s.Active(time.Now()))
}
