package request

import "github.com/shopspring/decimal"

type CreateDepositRequest struct {
	Amount          decimal.Decimal `json:"amount" validate:"gt=0,money"`
	PaymentMethodID string          `json:"payment_method_id" validate:"required,uuid"`
	ProofURL        *string         `json:"proof_url,omitempty" validate:"omitempty,url"`
}

type ReviewDepositRequest struct {
	Status string  `json:"status" validate:"required,oneof=approved rejected"`
	Note   *string `json:"note,omitempty" validate:"omitempty,max=500"`
}
