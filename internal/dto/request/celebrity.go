package request

import "github.com/shopspring/decimal"

type BookingTypeRequest struct {
	Name            string          `json:"name" validate:"required,max=100"`
	Description     *string         `json:"description,omitempty" validate:"omitempty,max=1000"`
	Price           decimal.Decimal `json:"price" validate:"gte=0,money"`
	DurationMinutes int             `json:"duration_minutes" validate:"required,min=1,max=1440"`
}

type CreateCelebrityRequest struct {
	Name         string               `json:"name" validate:"required,min=2,max=150"`
	Category     string               `json:"category" validate:"required,max=50"`
	Bio          *string              `json:"bio,omitempty" validate:"omitempty,max=5000"`
	ImageURL     *string              `json:"image_url,omitempty" validate:"omitempty,url"`
	Country      *string              `json:"country,omitempty" validate:"omitempty,max=80"`
	IsFeatured   bool                 `json:"is_featured"`
	IsAvailable  *bool                `json:"is_available,omitempty"`
	BookingTypes []BookingTypeRequest `json:"booking_types" validate:"omitempty,dive"`
}

type UpdateCelebrityRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=150"`
	Category    *string `json:"category,omitempty" validate:"omitempty,max=50"`
	Bio         *string `json:"bio,omitempty" validate:"omitempty,max=5000"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,url"`
	Country     *string `json:"country,omitempty" validate:"omitempty,max=80"`
	IsFeatured  *bool   `json:"is_featured,omitempty"`
	IsAvailable *bool   `json:"is_available,omitempty"`
}

type CelebrityListRequest struct {
	PaginatedRequest
	Category *string
	Search   *string
	Featured *bool
}

type CreateReviewRequest struct {
	Rating  int     `json:"rating" validate:"required,min=1,max=5"`
	Comment *string `json:"comment,omitempty" validate:"omitempty,max=1000"`
}
