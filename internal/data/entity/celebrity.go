package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Celebrity struct {
	Base
	Name        string          `db:"name"`
	Slug        string          `db:"slug"`
	Category    string          `db:"category"`
	Bio         *string         `db:"bio"`
	ImageURL    *string         `db:"image_url"`
	Country     *string         `db:"country"`
	Rating      decimal.Decimal `db:"rating"`
	IsFeatured  bool            `db:"is_featured"`
	IsAvailable bool            `db:"is_available"`
}

// BookingType is a bookable offer of a celebrity (shout-out, meet & greet, ...).
type BookingType struct {
	BaseNoDelete
	CelebrityID     uuid.UUID       `db:"celebrity_id"`
	Name            string          `db:"name"`
	Description     *string         `db:"description"`
	Price           decimal.Decimal `db:"price"`
	DurationMinutes int             `db:"duration_minutes"`
	IsActive        bool            `db:"is_active"`
}

type CelebrityReview struct {
	BaseNoDelete
	CelebrityID uuid.UUID `db:"celebrity_id"`
	UserID      uuid.UUID `db:"user_id"`
	Rating      int       `db:"rating"` // 1-5
	Comment     *string   `db:"comment"`
}

// CelebrityFilter narrows catalogue listings.
type CelebrityFilter struct {
	Category *string
	Search   *string
	Featured *bool
}

type RatingStats struct {
	Average decimal.Decimal
	Count   int64
}
