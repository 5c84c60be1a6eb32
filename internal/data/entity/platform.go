package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Platform is the singleton settings row (id = 1).
type Platform struct {
	SiteName          string            `db:"site_name" json:"site_name"`
	SupportEmail      string            `db:"support_email" json:"support_email"`
	Currency          string            `db:"currency" json:"currency"`
	MinDeposit        decimal.Decimal   `db:"min_deposit" json:"min_deposit"`
	BookingFeePercent decimal.Decimal   `db:"booking_fee_percent" json:"booking_fee_percent"`
	MaintenanceMode   bool              `db:"maintenance_mode" json:"maintenance_mode"`
	SocialLinks       map[string]string `db:"social_links" json:"social_links"`
	UpdatedBy         *uuid.UUID        `db:"updated_by" json:"updated_by,omitempty"`
	UpdatedAt         time.Time         `db:"updated_at" json:"updated_at"`
}

// DefaultPlatform is served until an admin saves settings.
func DefaultPlatform() *Platform {
	return &Platform{
		SiteName:          "Celebrity Booking",
		SupportEmail:      "support@example.com",
		Currency:          "USD",
		MinDeposit:        decimal.NewFromInt(10),
		BookingFeePercent: decimal.Zero,
		SocialLinks:       map[string]string{},
	}
}
