package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusApproved  BookingStatus = "approved"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:  {BookingStatusApproved, BookingStatusRejected, BookingStatusCancelled},
	BookingStatusApproved: {BookingStatusCompleted, BookingStatusCancelled},
}

// CanTransitionTo reports whether a booking may move from s to next.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Booking struct {
	BaseNoDelete
	Reference     string          `db:"reference"`
	UserID        uuid.UUID       `db:"user_id"`
	CelebrityID   uuid.UUID       `db:"celebrity_id"`
	BookingTypeID *uuid.UUID      `db:"booking_type_id"`
	EventID       *uuid.UUID      `db:"event_id"`
	Quantity      int             `db:"quantity"`
	ScheduledAt   *time.Time      `db:"scheduled_at"`
	Location      *string         `db:"location"`
	Message       *string         `db:"message"`
	Amount        decimal.Decimal `db:"amount"`
	Status        BookingStatus   `db:"status"`
	PaymentStatus PaymentStatus   `db:"payment_status"`
	AdminNote     *string         `db:"admin_note"`
}

func (b *Booking) IsEventBooking() bool {
	return b.EventID != nil
}
