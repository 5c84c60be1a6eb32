package request

import "github.com/shopspring/decimal"

type MembershipPlanRequest struct {
	Name         string          `json:"name" validate:"required,max=100"`
	Description  *string         `json:"description,omitempty" validate:"omitempty,max=2000"`
	Price        decimal.Decimal `json:"price" validate:"gte=0,money"`
	DurationDays int             `json:"duration_days" validate:"required,min=1,max=3650"`
	Benefits     []string        `json:"benefits" validate:"omitempty,dive,required,max=200"`
	IsActive     *bool           `json:"is_active,omitempty"`
}

type CreateMembershipRequest struct {
	PlanID          string  `json:"plan_id" validate:"required,uuid"`
	PaymentMethodID *string `json:"payment_method_id,omitempty" validate:"omitempty,uuid"`
	PayWithWallet   bool    `json:"pay_with_wallet"`
}

type UpdateMembershipStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active rejected cancelled expired"`
}
