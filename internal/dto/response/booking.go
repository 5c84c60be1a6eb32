package response

import (
	"time"

	"celebrity-booking/internal/data/entity"

	"github.com/shopspring/decimal"
)

type BookingResponse struct {
	ID            string               `json:"id"`
	Reference     string               `json:"reference"`
	UserID        string               `json:"user_id"`
	CelebrityID   string               `json:"celebrity_id"`
	BookingTypeID *string              `json:"booking_type_id,omitempty"`
	EventID       *string              `json:"event_id,omitempty"`
	Quantity      int                  `json:"quantity"`
	ScheduledAt   *time.Time           `json:"scheduled_at,omitempty"`
	Location      *string              `json:"location,omitempty"`
	Message       *string              `json:"message,omitempty"`
	Amount        decimal.Decimal      `json:"amount"`
	Status        entity.BookingStatus `json:"status"`
	PaymentStatus entity.PaymentStatus `json:"payment_status"`
	AdminNote     *string              `json:"admin_note,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

func BookingToResponse(b *entity.Booking) BookingResponse {
	resp := BookingResponse{
		ID:            b.ID.String(),
		Reference:     b.Reference,
		UserID:        b.UserID.String(),
		CelebrityID:   b.CelebrityID.String(),
		Quantity:      b.Quantity,
		ScheduledAt:   b.ScheduledAt,
		Location:      b.Location,
		Message:       b.Message,
		Amount:        b.Amount,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		AdminNote:     b.AdminNote,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
	if b.BookingTypeID != nil {
		id := b.BookingTypeID.String()
		resp.BookingTypeID = &id
	}
	if b.EventID != nil {
		id := b.EventID.String()
		resp.EventID = &id
	}
	return resp
}
