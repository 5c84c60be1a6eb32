package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"celebrity-booking/internal/data/entity"
	"celebrity-booking/internal/data/repository"
	"celebrity-booking/internal/dto/request"
	"celebrity-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type bookingFixture struct {
	svc      *bookingService
	bookings *MockBookingRepo
	events   *MockEventRepo
	users    *MockUserRepo
	txns     *MockTransactionRepo
	audit    *stubAudit
	notify   *stubNotify
}

func newBookingFixture() *bookingFixture {
	f := &bookingFixture{
		bookings: &MockBookingRepo{},
		events:   &MockEventRepo{},
		users:    &MockUserRepo{},
		txns:     &MockTransactionRepo{},
		audit:    &stubAudit{},
		notify:   &stubNotify{},
	}
	repo := &repository.Repository{
		Booking:     f.bookings,
		Event:       f.events,
		User:        f.users,
		Transaction: f.txns,
	}
	f.svc = NewBookingService(repo, &fakeTx{}, &stubPlatform{}, f.notify, f.audit, zap.NewNop()).(*bookingService)
	return f
}

func upcomingEvent(capacity, sold int) *entity.Event {
	return &entity.Event{
		Base:        entity.NewBase(),
		CelebrityID: uuid.New(),
		Title:       "Meet & Greet",
		Venue:       "Arena",
		Location:    "Lagos",
		StartsAt:    time.Now().Add(48 * time.Hour),
		EndsAt:      time.Now().Add(50 * time.Hour),
		TicketPrice: decimal.RequireFromString("25.50"),
		Capacity:    capacity,
		TicketsSold: sold,
		Status:      entity.EventStatusScheduled,
	}
}

func TestCreateEventBooking(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()
	userID := uuid.New()
	event := upcomingEvent(100, 10)
	eventID := event.ID.String()

	f.events.On("FindByID", ctx, event.ID).Return(event, nil)
	f.events.On("ReserveTickets", ctx, event.ID, 3).Return(nil)
	f.bookings.On("Create", ctx, mock.AnythingOfType("*entity.Booking")).Return(nil)

	resp, err := f.svc.Create(ctx, userID, &request.CreateBookingRequest{EventID: &eventID, Quantity: 3})
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("76.50").Equal(resp.Amount))
	assert.Equal(t, entity.BookingStatusPending, resp.Status)
	assert.Regexp(t, `^BKG-\d{8}-[A-Z0-9]{4}$`, resp.Reference)
	require.Len(t, f.notify.calls, 1)
	assert.Equal(t, userID, f.notify.calls[0].UserID)
}

func TestCreateEventBooking_CapacityExceeded(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()
	event := upcomingEvent(10, 9)
	eventID := event.ID.String()

	f.events.On("FindByID", ctx, event.ID).Return(event, nil)
	f.events.On("ReserveTickets", ctx, event.ID, 2).Return(repository.ErrCapacityExceeded)

	_, err := f.svc.Create(ctx, uuid.New(), &request.CreateBookingRequest{EventID: &eventID, Quantity: 2})
	assert.Equal(t, http.StatusConflict, utils.StatusCode(err))
	f.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateEventBooking_AlreadyStarted(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()
	event := upcomingEvent(10, 0)
	event.StartsAt = time.Now().Add(-time.Hour)
	eventID := event.ID.String()

	f.events.On("FindByID", ctx, event.ID).Return(event, nil)

	_, err := f.svc.Create(ctx, uuid.New(), &request.CreateBookingRequest{EventID: &eventID, Quantity: 1})
	assert.Equal(t, http.StatusBadRequest, utils.StatusCode(err))
}

func TestCreateCelebrityBooking_PastDate(t *testing.T) {
	f := newBookingFixture()
	celebrityID := uuid.NewString()
	typeID := uuid.NewString()
	past := time.Now().Add(-time.Hour)

	_, err := f.svc.Create(context.Background(), uuid.New(), &request.CreateBookingRequest{
		CelebrityID:   &celebrityID,
		BookingTypeID: &typeID,
		ScheduledAt:   &past,
	})
	assert.Equal(t, http.StatusBadRequest, utils.StatusCode(err))
}

func pendingBooking(userID uuid.UUID) *entity.Booking {
	b := newBooking(userID, uuid.New(), decimal.NewFromInt(100))
	return b
}

func TestCancelBooking_RefundsPaidEventBooking(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()
	userID := uuid.New()
	eventID := uuid.New()

	booking := pendingBooking(userID)
	booking.EventID = &eventID
	booking.Quantity = 2
	booking.PaymentStatus = entity.PaymentStatusPaid

	f.bookings.On("FindByIDForUpdate", ctx, booking.ID).Return(booking, nil)
	f.users.On("AdjustBalance", ctx, userID, decEq(decimal.NewFromInt(100))).Return(decimal.NewFromInt(150), nil)
	f.txns.On("Create", ctx, mock.MatchedBy(func(tx *entity.Transaction) bool {
		return tx.Type == entity.TransactionTypeRefund && tx.Direction == entity.DirectionCredit &&
			tx.BalanceAfter.Equal(decimal.NewFromInt(150))
	})).Return(nil)
	f.events.On("ReleaseTickets", ctx, eventID, 2).Return(nil)
	f.bookings.On("Update", ctx, booking).Return(nil)

	resp, err := f.svc.Cancel(ctx, userID, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, resp.Status)
	assert.Equal(t, entity.PaymentStatusRefunded, resp.PaymentStatus)
	f.txns.AssertExpectations(t)
	f.events.AssertExpectations(t)
}

func TestCancelBooking_NotOwner(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()
	booking := pendingBooking(uuid.New())

	f.bookings.On("FindByIDForUpdate", ctx, booking.ID).Return(booking, nil)

	_, err := f.svc.Cancel(ctx, uuid.New(), booking.ID)
	assert.Equal(t, http.StatusForbidden, utils.StatusCode(err))
	f.bookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCancelBooking_OnlyPending(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()
	userID := uuid.New()
	booking := pendingBooking(userID)
	booking.Status = entity.BookingStatusApproved

	f.bookings.On("FindByIDForUpdate", ctx, booking.ID).Return(booking, nil)

	_, err := f.svc.Cancel(ctx, userID, booking.ID)
	assert.Equal(t, http.StatusBadRequest, utils.StatusCode(err))
}

func TestPayBooking(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()
	userID := uuid.New()
	booking := pendingBooking(userID)

	f.bookings.On("FindByIDForUpdate", ctx, booking.ID).Return(booking, nil)
	f.users.On("AdjustBalance", ctx, userID, decEq(decimal.NewFromInt(-100))).Return(decimal.NewFromInt(20), nil)
	f.txns.On("Create", ctx, mock.MatchedBy(func(tx *entity.Transaction) bool {
		return tx.Type == entity.TransactionTypeBooking && tx.Direction == entity.DirectionDebit
	})).Return(nil)
	f.bookings.On("Update", ctx, booking).Return(nil)

	resp, err := f.svc.Pay(ctx, userID, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, resp.PaymentStatus)
}

func TestPayBooking_InsufficientBalance(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()
	userID := uuid.New()
	booking := pendingBooking(userID)

	f.bookings.On("FindByIDForUpdate", ctx, booking.ID).Return(booking, nil)
	f.users.On("AdjustBalance", ctx, userID, decEq(decimal.NewFromInt(-100))).Return(decimal.Zero, repository.ErrInsufficientBalance)

	_, err := f.svc.Pay(ctx, userID, booking.ID)
	assert.Equal(t, http.StatusBadRequest, utils.StatusCode(err))
	f.bookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestPayBooking_AlreadyPaid(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()
	userID := uuid.New()
	booking := pendingBooking(userID)
	booking.PaymentStatus = entity.PaymentStatusPaid

	f.bookings.On("FindByIDForUpdate", ctx, booking.ID).Return(booking, nil)

	_, err := f.svc.Pay(ctx, userID, booking.ID)
	assert.Equal(t, http.StatusConflict, utils.StatusCode(err))
}

func TestUpdateBookingStatus(t *testing.T) {
	tests := []struct {
		name       string
		from       entity.BookingStatus
		to         string
		wantStatus int
	}{
		{"approve pending", entity.BookingStatusPending, "approved", 0},
		{"complete approved", entity.BookingStatusApproved, "completed", 0},
		{"complete pending", entity.BookingStatusPending, "completed", http.StatusBadRequest},
		{"reopen cancelled", entity.BookingStatusCancelled, "approved", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBookingFixture()
			ctx := context.Background()
			booking := pendingBooking(uuid.New())
			booking.Status = tt.from

			f.bookings.On("FindByIDForUpdate", ctx, booking.ID).Return(booking, nil)
			f.bookings.On("Update", ctx, booking).Return(nil)

			resp, err := f.svc.UpdateStatus(ctx, booking.ID, &request.UpdateBookingStatusRequest{Status: tt.to})
			if tt.wantStatus != 0 {
				assert.Equal(t, tt.wantStatus, utils.StatusCode(err))
				assert.Empty(t, f.audit.calls)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entity.BookingStatus(tt.to), resp.Status)
			require.Len(t, f.audit.calls, 1)
			assert.Equal(t, entity.AuditActionStatusChange, f.audit.calls[0].Action)
			require.Len(t, f.notify.calls, 1)
			assert.Equal(t, booking.UserID, f.notify.calls[0].UserID)
		})
	}
}

func TestGetBooking_Ownership(t *testing.T) {
	f := newBookingFixture()
	owner := uuid.New()
	booking := pendingBooking(owner)

	f.bookings.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)

	strangerCtx := utils.SetUserContext(context.Background(), uuid.New(), "customer")
	_, err := f.svc.Get(strangerCtx, booking.ID)
	assert.Equal(t, http.StatusForbidden, utils.StatusCode(err))

	adminCtx := utils.SetUserContext(context.Background(), uuid.New(), "admin")
	resp, err := f.svc.Get(adminCtx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.Reference, resp.Reference)

	ownerCtx := utils.SetUserContext(context.Background(), owner, "customer")
	_, err = f.svc.Get(ownerCtx, booking.ID)
	assert.NoError(t, err)
}
