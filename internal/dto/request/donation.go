package request

import "github.com/shopspring/decimal"

type CreateDonationRequest struct {
	CelebrityID     string          `json:"celebrity_id" validate:"required,uuid"`
	Amount          decimal.Decimal `json:"amount" validate:"gt=0,money"`
	Message         *string         `json:"message,omitempty" validate:"omitempty,max=500"`
	Anonymous       bool            `json:"anonymous"`
	PaymentMethodID *string         `json:"payment_method_id,omitempty" validate:"omitempty,uuid"`
	PayWithWallet   bool            `json:"pay_with_wallet"`
}

type UpdateDonationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=completed rejected"`
}
