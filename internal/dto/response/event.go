package response

import (
	"time"

	"celebrity-booking/internal/data/entity"

	"github.com/shopspring/decimal"
)

type EventResponse struct {
	ID               string             `json:"id"`
	CelebrityID      string             `json:"celebrity_id"`
	Title            string             `json:"title"`
	Slug             string             `json:"slug"`
	Description      *string            `json:"description,omitempty"`
	Venue            string             `json:"venue"`
	Location         string             `json:"location"`
	StartsAt         time.Time          `json:"starts_at"`
	EndsAt           time.Time          `json:"ends_at"`
	TicketPrice      decimal.Decimal    `json:"ticket_price"`
	Capacity         int                `json:"capacity"`
	RemainingTickets int                `json:"remaining_tickets"`
	Status           entity.EventStatus `json:"status"`
	ImageURL         *string            `json:"image_url,omitempty"`
}

func EventToResponse(e *entity.Event) EventResponse {
	return EventResponse{
		ID:               e.ID.String(),
		CelebrityID:      e.CelebrityID.String(),
		Title:            e.Title,
		Slug:             e.Slug,
		Description:      e.Description,
		Venue:            e.Venue,
		Location:         e.Location,
		StartsAt:         e.StartsAt,
		EndsAt:           e.EndsAt,
		TicketPrice:      e.TicketPrice,
		Capacity:         e.Capacity,
		RemainingTickets: e.RemainingTickets(),
		Status:           e.Status,
		ImageURL:         e.ImageURL,
	}
}
