package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EventStatus string

const (
	EventStatusScheduled EventStatus = "scheduled"
	EventStatusCancelled EventStatus = "cancelled"
	EventStatusCompleted EventStatus = "completed"
)

type Event struct {
	Base
	CelebrityID uuid.UUID       `db:"celebrity_id"`
	Title       string          `db:"title"`
	Slug        string          `db:"slug"`
	Description *string         `db:"description"`
	Venue       string          `db:"venue"`
	Location    string          `db:"location"`
	StartsAt    time.Time       `db:"starts_at"`
	EndsAt      time.Time       `db:"ends_at"`
	TicketPrice decimal.Decimal `db:"ticket_price"`
	Capacity    int             `db:"capacity"`
	TicketsSold int             `db:"tickets_sold"`
	Status      EventStatus     `db:"status"`
	ImageURL    *string         `db:"image_url"`
}

func (e *Event) RemainingTickets() int {
	if left := e.Capacity - e.TicketsSold; left > 0 {
		return left
	}
	return 0
}

type EventFilter struct {
	CelebrityID *uuid.UUID
	Upcoming    bool
}
