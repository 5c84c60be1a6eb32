package response

import (
	"time"

	"celebrity-booking/internal/data/entity"

	"github.com/shopspring/decimal"
)

type BookingTypeResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     *string         `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"duration_minutes"`
}

type CelebrityResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Slug         string                `json:"slug"`
	Category     string                `json:"category"`
	Bio          *string               `json:"bio,omitempty"`
	ImageURL     *string               `json:"image_url,omitempty"`
	Country      *string               `json:"country,omitempty"`
	Rating       decimal.Decimal       `json:"rating"`
	IsFeatured   bool                  `json:"is_featured"`
	IsAvailable  bool                  `json:"is_available"`
	BookingTypes []BookingTypeResponse `json:"booking_types,omitempty"`
	ReviewCount  *int64                `json:"review_count,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
}

type ReviewResponse struct {
	ID          string    `json:"id"`
	CelebrityID string    `json:"celebrity_id"`
	UserID      string    `json:"user_id"`
	Rating      int       `json:"rating"`
	Comment     *string   `json:"comment,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func BookingTypeToResponse(bt *entity.BookingType) BookingTypeResponse {
	return BookingTypeResponse{
		ID:              bt.ID.String(),
		Name:            bt.Name,
		Description:     bt.Description,
		Price:           bt.Price,
		DurationMinutes: bt.DurationMinutes,
	}
}

func CelebrityToResponse(c *entity.Celebrity) CelebrityResponse {
	return CelebrityResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Slug:        c.Slug,
		Category:    c.Category,
		Bio:         c.Bio,
		ImageURL:    c.ImageURL,
		Country:     c.Country,
		Rating:      c.Rating,
		IsFeatured:  c.IsFeatured,
		IsAvailable: c.IsAvailable,
		CreatedAt:   c.CreatedAt,
	}
}

func ReviewToResponse(r *entity.CelebrityReview) ReviewResponse {
	return ReviewResponse{
		ID:          r.ID.String(),
		CelebrityID: r.CelebrityID.String(),
		UserID:      r.UserID.String(),
		Rating:      r.Rating,
		Comment:     r.Comment,
		CreatedAt:   r.CreatedAt,
	}
}
