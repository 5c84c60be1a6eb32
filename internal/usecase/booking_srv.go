package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"celebrity-booking/internal/data/entity"
	"celebrity-booking/internal/data/repository"
	"celebrity-booking/internal/dto/request"
	"celebrity-booking/internal/dto/response"
	"celebrity-booking/pkg/database"
	"celebrity-booking/pkg/metrics"
	"celebrity-booking/pkg/ticket"
	"celebrity-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const bookingRefPrefix = "BKG"

type BookingService interface {
	Create(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	ListMine(ctx context.Context, userID uuid.UUID, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	Get(ctx context.Context, id uuid.UUID) (*response.BookingResponse, error)
	Cancel(ctx context.Context, userID, id uuid.UUID) (*response.BookingResponse, error)
	Pay(ctx context.Context, userID, id uuid.UUID) (*response.BookingResponse, error)
	Ticket(ctx context.Context, id uuid.UUID) ([]byte, string, error)

	// Admin
	AdminList(ctx context.Context, req *request.StatusListRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
}

type bookingService struct {
	repo     *repository.Repository
	tx       database.TxManager
	ledger   ledger
	platform PlatformService
	notify   NotificationService
	audit    AuditService
	log      *zap.Logger
}

func NewBookingService(
	repo *repository.Repository,
	tx database.TxManager,
	platform PlatformService,
	notify NotificationService,
	audit AuditService,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		repo:     repo,
		tx:       tx,
		ledger:   newLedger(repo),
		platform: platform,
		notify:   notify,
		audit:    audit,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) Create(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	var (
		booking *entity.Booking
		err     error
		kind    string
	)

	if req.EventID != nil {
		kind = "event"
		booking, err = s.createEventBooking(ctx, userID, req)
	} else {
		kind = "celebrity"
		booking, err = s.createCelebrityBooking(ctx, userID, req)
	}
	if err != nil {
		return nil, err
	}

	metrics.BookingsCreated.WithLabelValues(kind).Inc()
	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("reference", booking.Reference),
		zap.String("user_id", userID.String()),
		zap.String("kind", kind),
	)

	s.notify.Notify(ctx, userID, entity.NotificationBooking,
		"Booking received",
		fmt.Sprintf("Your booking %s has been received and is awaiting confirmation.", booking.Reference),
		bookingLink(booking.ID))

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) createCelebrityBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*entity.Booking, error) {
	// 1. Parse IDs
	celebrityID, err := parseID(*req.CelebrityID, "celebrity")
	if err != nil {
		return nil, err
	}
	typeID, err := parseID(*req.BookingTypeID, "booking type")
	if err != nil {
		return nil, err
	}

	// 2. Date must be in the future
	if !req.ScheduledAt.After(time.Now()) {
		return nil, utils.ErrBadRequest("cannot book a date in the past")
	}

	// 3. Celebrity must be bookable
	celebrity, err := s.repo.Celebrity.FindByID(ctx, celebrityID)
	if err != nil {
		s.log.Error("Failed to find celebrity", zap.Error(err), zap.String("celebrity_id", celebrityID.String()))
		return nil, utils.ErrInternal(err, "failed to create booking")
	}
	if celebrity == nil {
		return nil, utils.ErrNotFound("celebrity not found")
	}
	if !celebrity.IsAvailable {
		return nil, utils.ErrBadRequest("celebrity is not available for bookings")
	}

	// 4. Booking type must belong to the celebrity
	bt, err := s.repo.BookingType.FindByID(ctx, typeID)
	if err != nil {
		s.log.Error("Failed to find booking type", zap.Error(err), zap.String("booking_type_id", typeID.String()))
		return nil, utils.ErrInternal(err, "failed to create booking")
	}
	if bt == nil || bt.CelebrityID != celebrityID || !bt.IsActive {
		return nil, utils.ErrNotFound("booking type not found")
	}

	booking := newBooking(userID, celebrityID, bt.Price)
	booking.BookingTypeID = &typeID
	booking.ScheduledAt = req.ScheduledAt
	booking.Location = req.Location
	booking.Message = req.Message

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, utils.ErrInternal(err, "failed to create booking")
	}
	return booking, nil
}

func (s *bookingService) createEventBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*entity.Booking, error) {
	eventID, err := parseID(*req.EventID, "event")
	if err != nil {
		return nil, err
	}
	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	event, err := s.repo.Event.FindByID(ctx, eventID)
	if err != nil {
		s.log.Error("Failed to find event", zap.Error(err), zap.String("event_id", eventID.String()))
		return nil, utils.ErrInternal(err, "failed to create booking")
	}
	if event == nil {
		return nil, utils.ErrNotFound("event not found")
	}
	if event.Status != entity.EventStatusScheduled {
		return nil, utils.ErrBadRequest("event is %s", event.Status)
	}
	if !event.StartsAt.After(time.Now()) {
		return nil, utils.ErrBadRequest("event has already started")
	}

	booking := newBooking(userID, event.CelebrityID, event.TicketPrice.Mul(decimal.NewFromInt(int64(quantity))))
	booking.EventID = &eventID
	booking.Quantity = quantity
	booking.ScheduledAt = &event.StartsAt
	booking.Location = &event.Location
	booking.Message = req.Message

	// tickets are reserved in the same transaction as the booking row
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.Event.ReserveTickets(ctx, eventID, quantity); err != nil {
			return err
		}
		return s.repo.Booking.Create(ctx, booking)
	})
	if err != nil {
		if errors.Is(err, repository.ErrCapacityExceeded) {
			return nil, utils.ErrConflict("only %d tickets remaining", event.RemainingTickets())
		}
		s.log.Error("Failed to create event booking", zap.Error(err), zap.String("event_id", eventID.String()))
		return nil, utils.ErrInternal(err, "failed to create booking")
	}
	return booking, nil
}

func (s *bookingService) ListMine(ctx context.Context, userID uuid.UUID, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindByUserID(ctx, userID, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, utils.ErrInternal(err, "failed to list bookings")
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, utils.ErrInternal(err, "failed to list bookings")
	}

	return paginate(bookings, response.BookingToResponse, *page, total), nil
}

// Get returns the booking to its owner or an admin.
func (s *bookingService) Get(ctx context.Context, id uuid.UUID) (*response.BookingResponse, error) {
	booking, err := s.findVisible(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// Cancel lets the owner withdraw a pending booking. Paid bookings are refunded.
func (s *bookingService) Cancel(ctx context.Context, userID, id uuid.UUID) (*response.BookingResponse, error) {
	var booking *entity.Booking

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		booking, err = s.lockBooking(ctx, id)
		if err != nil {
			return err
		}
		if booking.UserID != userID {
			return utils.ErrForbidden("you do not have access to this booking")
		}
		if booking.Status != entity.BookingStatusPending {
			return utils.ErrBadRequest("only pending bookings can be cancelled")
		}
		return s.close(ctx, booking, entity.BookingStatusCancelled)
	})
	if err != nil {
		return nil, appOrInternal(s.log, err, "failed to cancel booking", zap.String("booking_id", id.String()))
	}

	s.notify.Notify(ctx, userID, entity.NotificationBooking,
		"Booking cancelled",
		fmt.Sprintf("Your booking %s has been cancelled.", booking.Reference),
		bookingLink(booking.ID))

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// Pay debits the owner's wallet for the booking amount.
func (s *bookingService) Pay(ctx context.Context, userID, id uuid.UUID) (*response.BookingResponse, error) {
	var booking *entity.Booking

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		booking, err = s.lockBooking(ctx, id)
		if err != nil {
			return err
		}
		if booking.UserID != userID {
			return utils.ErrForbidden("you do not have access to this booking")
		}
		if booking.PaymentStatus != entity.PaymentStatusUnpaid {
			return utils.ErrConflict("booking is already paid")
		}
		if booking.Status != entity.BookingStatusPending && booking.Status != entity.BookingStatusApproved {
			return utils.ErrBadRequest("cannot pay for a %s booking", booking.Status)
		}

		if _, err := s.ledger.post(ctx, userID, entity.TransactionTypeBooking, entity.DirectionDebit,
			booking.Amount, booking.Reference, "Payment for booking "+booking.Reference); err != nil {
			return err
		}

		booking.PaymentStatus = entity.PaymentStatusPaid
		booking.UpdatedAt = time.Now()
		return s.repo.Booking.Update(ctx, booking)
	})
	if err != nil {
		return nil, appOrInternal(s.log, err, "failed to pay booking", zap.String("booking_id", id.String()))
	}

	s.log.Info("Booking paid", zap.String("booking_id", id.String()), zap.String("amount", booking.Amount.String()))
	s.notify.Notify(ctx, userID, entity.NotificationPayment,
		"Payment received",
		fmt.Sprintf("We received %s for booking %s.", booking.Amount.StringFixed(2), booking.Reference),
		bookingLink(booking.ID))

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// Ticket renders a PDF for a paid booking.
func (s *bookingService) Ticket(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	booking, err := s.findVisible(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if booking.PaymentStatus != entity.PaymentStatusPaid {
		return nil, "", utils.ErrBadRequest("ticket is available once the booking is paid")
	}
	if booking.Status == entity.BookingStatusCancelled || booking.Status == entity.BookingStatusRejected {
		return nil, "", utils.ErrBadRequest("booking is %s", booking.Status)
	}

	data := ticket.Data{
		Reference:   booking.Reference,
		ScheduledAt: booking.ScheduledAt,
		Quantity:    booking.Quantity,
		Amount:      booking.Amount.StringFixed(2),
		IssuedAt:    time.Now(),
	}
	if booking.Location != nil {
		data.Venue = *booking.Location
	}

	if holder, err := s.repo.User.FindByID(ctx, booking.UserID); err == nil && holder != nil {
		data.HolderName = holder.Username
		if holder.FullName != nil {
			data.HolderName = *holder.FullName
		}
	}
	if celebrity, err := s.repo.Celebrity.FindByID(ctx, booking.CelebrityID); err == nil && celebrity != nil {
		data.Celebrity = celebrity.Name
	}
	if booking.EventID != nil {
		if event, err := s.repo.Event.FindByID(ctx, *booking.EventID); err == nil && event != nil {
			data.Title = event.Title
			data.Venue = event.Venue + ", " + event.Location
		}
	} else if booking.BookingTypeID != nil {
		if bt, err := s.repo.BookingType.FindByID(ctx, *booking.BookingTypeID); err == nil && bt != nil {
			data.Title = bt.Name
		}
	}
	if p, err := s.platform.Get(ctx); err == nil {
		data.Currency = p.Currency
	}

	pdf, err := ticket.Render(data)
	if err != nil {
		s.log.Error("Failed to render ticket", zap.Error(err), zap.String("booking_id", id.String()))
		return nil, "", utils.ErrInternal(err, "failed to render ticket")
	}
	return pdf, fmt.Sprintf("ticket-%s.pdf", booking.Reference), nil
}

func (s *bookingService) AdminList(ctx context.Context, req *request.StatusListRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindAll(ctx, req.Status, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, utils.ErrInternal(err, "failed to list bookings")
	}

	total, err := s.repo.Booking.Count(ctx, req.Status)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, utils.ErrInternal(err, "failed to list bookings")
	}

	return paginate(bookings, response.BookingToResponse, req.PaginatedRequest, total), nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, id uuid.UUID, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	next := entity.BookingStatus(req.Status)
	var (
		booking *entity.Booking
		prev    entity.BookingStatus
	)

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		booking, err = s.lockBooking(ctx, id)
		if err != nil {
			return err
		}
		prev = booking.Status
		if !prev.CanTransitionTo(next) {
			return utils.ErrBadRequest("cannot change booking status from %s to %s", prev, next)
		}
		if req.Note != nil {
			booking.AdminNote = req.Note
		}

		if next == entity.BookingStatusCancelled || next == entity.BookingStatusRejected {
			return s.close(ctx, booking, next)
		}
		booking.Status = next
		booking.UpdatedAt = time.Now()
		return s.repo.Booking.Update(ctx, booking)
	})
	if err != nil {
		return nil, appOrInternal(s.log, err, "failed to update booking status", zap.String("booking_id", id.String()))
	}

	s.audit.Record(ctx, entity.AuditActionStatusChange, "booking", id.String(), map[string]any{
		"from": string(prev),
		"to":   string(next),
	})
	s.notify.Notify(ctx, booking.UserID, entity.NotificationBooking,
		"Booking "+string(next),
		fmt.Sprintf("Your booking %s is now %s.", booking.Reference, next),
		bookingLink(booking.ID))

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// close moves a booking to a terminal status, refunding and releasing tickets.
func (s *bookingService) close(ctx context.Context, booking *entity.Booking, status entity.BookingStatus) error {
	if booking.PaymentStatus == entity.PaymentStatusPaid {
		if _, err := s.ledger.post(ctx, booking.UserID, entity.TransactionTypeRefund, entity.DirectionCredit,
			booking.Amount, booking.Reference, "Refund for booking "+booking.Reference); err != nil {
			return err
		}
		booking.PaymentStatus = entity.PaymentStatusRefunded
	}

	if booking.IsEventBooking() {
		if err := s.repo.Event.ReleaseTickets(ctx, *booking.EventID, booking.Quantity); err != nil {
			return err
		}
	}

	booking.Status = status
	booking.UpdatedAt = time.Now()
	return s.repo.Booking.Update(ctx, booking)
}

func (s *bookingService) lockBooking(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	booking, err := s.repo.Booking.FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, utils.ErrNotFound("booking not found")
	}
	return booking, nil
}

func (s *bookingService) findVisible(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", id.String()))
		return nil, utils.ErrInternal(err, "failed to load booking")
	}
	if booking == nil {
		return nil, utils.ErrNotFound("booking not found")
	}
	if !isOwnerOrAdmin(ctx, booking.UserID) {
		return nil, utils.ErrForbidden("you do not have access to this booking")
	}
	return booking, nil
}

func newBooking(userID, celebrityID uuid.UUID, amount decimal.Decimal) *entity.Booking {
	return &entity.Booking{
		BaseNoDelete:  entity.NewBaseNoDelete(),
		Reference:     utils.GenerateReference(bookingRefPrefix),
		UserID:        userID,
		CelebrityID:   celebrityID,
		Quantity:      1,
		Amount:        amount,
		Status:        entity.BookingStatusPending,
		PaymentStatus: entity.PaymentStatusUnpaid,
	}
}

func bookingLink(id uuid.UUID) string {
	return "/bookings/" + id.String()
}
