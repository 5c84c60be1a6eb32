package repository

import (
	"context"
	"testing"
	"time"

	"celebrity-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var bookingCols = []string{"id", "reference", "user_id", "celebrity_id", "booking_type_id", "event_id", "quantity",
	"scheduled_at", "location", "message", "amount", "status", "payment_status", "admin_note",
	"created_at", "updated_at"}

func TestBookingRepository_FindByIDForUpdate(t *testing.T) {
	mock := newMock(t)
	repo := NewBookingRepository(mock, zap.NewNop())

	id, userID, celebID, eventID := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id = \\$1 FOR UPDATE").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(bookingCols).AddRow(
			id, "BKG-20260101-ABCD", userID, celebID, (*uuid.UUID)(nil), &eventID, 3,
			(*time.Time)(nil), (*string)(nil), (*string)(nil), decimal.NewFromInt(90),
			entity.BookingStatusPending, entity.PaymentStatusUnpaid, (*string)(nil), now, now,
		))

	b, err := repo.FindByIDForUpdate(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.True(t, b.IsEventBooking())
	assert.Equal(t, 3, b.Quantity)
	assert.Equal(t, entity.PaymentStatusUnpaid, b.PaymentStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_FindAll_StatusFilter(t *testing.T) {
	mock := newMock(t)
	repo := NewBookingRepository(mock, zap.NewNop())

	status := "approved"
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE status = \\$1 ORDER BY created_at DESC LIMIT \\$2 OFFSET \\$3").
		WithArgs("approved", 20, 40).
		WillReturnRows(pgxmock.NewRows(bookingCols))

	bookings, err := repo.FindAll(context.Background(), &status, 20, 40)
	require.NoError(t, err)
	assert.Empty(t, bookings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Update(t *testing.T) {
	mock := newMock(t)
	repo := NewBookingRepository(mock, zap.NewNop())

	b := &entity.Booking{BaseNoDelete: entity.NewBaseNoDelete(), Status: entity.BookingStatusApproved, PaymentStatus: entity.PaymentStatusPaid}
	mock.ExpectExec("UPDATE bookings").
		WithArgs(b.ID, b.Status, b.PaymentStatus, b.AdminNote, b.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.Update(context.Background(), b))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_ReserveTickets(t *testing.T) {
	id := uuid.New()

	t.Run("reserved", func(t *testing.T) {
		mock := newMock(t)
		repo := NewEventRepository(mock, zap.NewNop())
		mock.ExpectExec("UPDATE events").WithArgs(id, 2).WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.ReserveTickets(context.Background(), id, 2))
	})

	t.Run("sold out", func(t *testing.T) {
		mock := newMock(t)
		repo := NewEventRepository(mock, zap.NewNop())
		mock.ExpectExec("UPDATE events").WithArgs(id, 5).WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		assert.ErrorIs(t, repo.ReserveTickets(context.Background(), id, 5), ErrCapacityExceeded)
	})
}
