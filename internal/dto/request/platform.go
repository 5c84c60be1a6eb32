package request

import "github.com/shopspring/decimal"

type UpdatePlatformRequest struct {
	SiteName          string            `json:"site_name" validate:"required,max=100"`
	SupportEmail      string            `json:"support_email" validate:"required,email,max=255"`
	Currency          string            `json:"currency" validate:"required,len=3"`
	MinDeposit        decimal.Decimal   `json:"min_deposit" validate:"gte=0,money"`
	BookingFeePercent decimal.Decimal   `json:"booking_fee_percent" validate:"gte=0,lte=100,money"`
	MaintenanceMode   bool              `json:"maintenance_mode"`
	SocialLinks       map[string]string `json:"social_links,omitempty" validate:"omitempty,dive,url"`
}
