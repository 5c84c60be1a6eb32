package request

import "time"

// CreateBookingRequest is either a celebrity booking (celebrity_id,
// booking_type_id, scheduled_at) or an event ticket booking (event_id, quantity).
type CreateBookingRequest struct {
	CelebrityID   *string    `json:"celebrity_id,omitempty" validate:"required_without=EventID,excluded_with=EventID,omitempty,uuid"`
	BookingTypeID *string    `json:"booking_type_id,omitempty" validate:"required_with=CelebrityID,omitempty,uuid"`
	ScheduledAt   *time.Time `json:"scheduled_at,omitempty" validate:"required_with=CelebrityID"`
	Location      *string    `json:"location,omitempty" validate:"omitempty,max=255"`
	Message       *string    `json:"message,omitempty" validate:"omitempty,max=1000"`
	EventID       *string    `json:"event_id,omitempty" validate:"required_without=CelebrityID,omitempty,uuid"`
	Quantity      int        `json:"quantity" validate:"omitempty,min=1,max=20"`
}

type UpdateBookingStatusRequest struct {
	Status string  `json:"status" validate:"required,oneof=approved rejected completed cancelled"`
	Note   *string `json:"note,omitempty" validate:"omitempty,max=500"`
}

type StatusListRequest struct {
	PaginatedRequest
	Status *string
}
