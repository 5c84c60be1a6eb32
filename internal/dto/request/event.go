package request

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateEventRequest struct {
	CelebrityID string          `json:"celebrity_id" validate:"required,uuid"`
	Title       string          `json:"title" validate:"required,max=200"`
	Description *string         `json:"description,omitempty" validate:"omitempty,max=5000"`
	Venue       string          `json:"venue" validate:"required,max=200"`
	Location    string          `json:"location" validate:"required,max=200"`
	StartsAt    time.Time       `json:"starts_at" validate:"required"`
	EndsAt      time.Time       `json:"ends_at" validate:"required,gtfield=StartsAt"`
	TicketPrice decimal.Decimal `json:"ticket_price" validate:"gte=0,money"`
	Capacity    int             `json:"capacity" validate:"required,min=1"`
	Status      *string         `json:"status,omitempty" validate:"omitempty,oneof=scheduled cancelled completed"`
	ImageURL    *string         `json:"image_url,omitempty" validate:"omitempty,url"`
}

type UpdateEventRequest struct {
	Title       *string          `json:"title,omitempty" validate:"omitempty,max=200"`
	Description *string          `json:"description,omitempty" validate:"omitempty,max=5000"`
	Venue       *string          `json:"venue,omitempty" validate:"omitempty,max=200"`
	Location    *string          `json:"location,omitempty" validate:"omitempty,max=200"`
	StartsAt    *time.Time       `json:"starts_at,omitempty"`
	EndsAt      *time.Time       `json:"ends_at,omitempty"`
	TicketPrice *decimal.Decimal `json:"ticket_price,omitempty" validate:"omitempty,gte=0,money"`
	Capacity    *int             `json:"capacity,omitempty" validate:"omitempty,min=1"`
	Status      *string          `json:"status,omitempty" validate:"omitempty,oneof=scheduled cancelled completed"`
	ImageURL    *string          `json:"image_url,omitempty" validate:"omitempty,url"`
}

type EventListRequest struct {
	PaginatedRequest
	CelebrityID *string `validate:"omitempty,uuid"`
	Upcoming    bool
}
