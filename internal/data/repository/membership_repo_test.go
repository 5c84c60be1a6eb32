package repository

import (
	"context"
	"testing"
	"time"

	"celebrity-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMembershipRepository_Create_OpenExists(t *testing.T) {
	mock := newMock(t)
	repo := NewMembershipRepository(mock, zap.NewNop())

	mock.ExpectExec("INSERT INTO memberships").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "memberships_one_open_uq"})

	m := &entity.Membership{BaseNoDelete: entity.NewBaseNoDelete(), UserID: uuid.New(), PlanID: uuid.New(), Status: entity.MembershipStatusPending}
	assert.ErrorIs(t, repo.Create(context.Background(), m), ErrDuplicate)
}

func TestMembershipRepository_FindOpenByUserID_None(t *testing.T) {
	mock := newMock(t)
	repo := NewMembershipRepository(mock, zap.NewNop())

	userID := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM memberships WHERE user_id = \\$1 AND status IN").
		WithArgs(userID).
		WillReturnError(pgx.ErrNoRows)

	m, err := repo.FindOpenByUserID(context.Background(), userID)
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestMembershipRepository_FindByIDForUpdate_Locks(t *testing.T) {
	mock := newMock(t)
	repo := NewMembershipRepository(mock, zap.NewNop())

	id := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM memberships WHERE id = \\$1 FOR UPDATE").
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	m, err := repo.FindByIDForUpdate(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, m)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMembershipRepository_ExpireDue(t *testing.T) {
	mock := newMock(t)
	repo := NewMembershipRepository(mock, zap.NewNop())

	now := time.Now()
	mock.ExpectExec("UPDATE memberships SET status = 'expired'").
		WithArgs(now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))

	n, err := repo.ExpireDue(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_FindValidSession_Revoked(t *testing.T) {
	mock := newMock(t)
	repo := NewSessionRepository(mock, zap.NewNop())

	token := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM sessions").
		WithArgs(token).
		WillReturnError(pgx.ErrNoRows)

	s, err := repo.FindValidSession(context.Background(), token)
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestOTPRepository_InvalidateAll(t *testing.T) {
	mock := newMock(t)
	repo := NewOTPRepository(mock, zap.NewNop())

	mock.ExpectExec("UPDATE otps SET is_used = true").
		WithArgs("a@example.com", entity.OTPTypeEmailVerification).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))

	require.NoError(t, repo.InvalidateAll(context.Background(), "a@example.com", entity.OTPTypeEmailVerification))
	assert.NoError(t, mock.ExpectationsWereMet())
}
