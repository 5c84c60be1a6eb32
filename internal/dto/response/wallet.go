package response

import (
	"time"

	"celebrity-booking/internal/data/entity"

	"github.com/shopspring/decimal"
)

type DonationResponse struct {
	ID          string                `json:"id"`
	UserID      string                `json:"user_id,omitempty"`
	CelebrityID string                `json:"celebrity_id"`
	Amount      decimal.Decimal       `json:"amount"`
	Message     *string               `json:"message,omitempty"`
	Anonymous   bool                  `json:"anonymous"`
	Status      entity.DonationStatus `json:"status"`
	CreatedAt   time.Time             `json:"created_at"`
}

type DonationSummaryResponse struct {
	CelebrityID string          `json:"celebrity_id"`
	Total       decimal.Decimal `json:"total"`
	DonorCount  int64           `json:"donor_count"`
	Donations   int64           `json:"donations"`
}

type DepositResponse struct {
	ID              string               `json:"id"`
	UserID          string               `json:"user_id"`
	PaymentMethodID string               `json:"payment_method_id"`
	Amount          decimal.Decimal      `json:"amount"`
	Status          entity.DepositStatus `json:"status"`
	ProofURL        *string              `json:"proof_url,omitempty"`
	ProviderRef     *string              `json:"provider_ref,omitempty"`
	ClientSecret    string               `json:"client_secret,omitempty"`
	AdminNote       *string              `json:"admin_note,omitempty"`
	ReviewedAt      *time.Time           `json:"reviewed_at,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
}

type TransactionResponse struct {
	ID           string                      `json:"id"`
	UserID       string                      `json:"user_id"`
	Type         entity.TransactionType      `json:"type"`
	Direction    entity.TransactionDirection `json:"direction"`
	Amount       decimal.Decimal             `json:"amount"`
	BalanceAfter decimal.Decimal             `json:"balance_after"`
	Reference    *string                     `json:"reference,omitempty"`
	Description  *string                     `json:"description,omitempty"`
	Status       string                      `json:"status"`
	CreatedAt    time.Time                   `json:"created_at"`
}

type PaymentMethodResponse struct {
	ID           string                   `json:"id"`
	Name         string                   `json:"name"`
	Type         entity.PaymentMethodType `json:"type"`
	Instructions *string                  `json:"instructions,omitempty"`
	Details      map[string]any           `json:"details,omitempty"`
	IsActive     bool                     `json:"is_active"`
}

// DonationToResponse hides the donor on anonymous donations unless showDonor is set.
func DonationToResponse(d *entity.Donation, showDonor bool) DonationResponse {
	resp := DonationResponse{
		ID:          d.ID.String(),
		CelebrityID: d.CelebrityID.String(),
		Amount:      d.Amount,
		Message:     d.Message,
		Anonymous:   d.IsAnonymous,
		Status:      d.Status,
		CreatedAt:   d.CreatedAt,
	}
	if showDonor || !d.IsAnonymous {
		resp.UserID = d.UserID.String()
	}
	return resp
}

func DepositToResponse(d *entity.Deposit) DepositResponse {
	return DepositResponse{
		ID:              d.ID.String(),
		UserID:          d.UserID.String(),
		PaymentMethodID: d.PaymentMethodID.String(),
		Amount:          d.Amount,
		Status:          d.Status,
		ProofURL:        d.ProofURL,
		ProviderRef:     d.ProviderRef,
		AdminNote:       d.AdminNote,
		ReviewedAt:      d.ReviewedAt,
		CreatedAt:       d.CreatedAt,
	}
}

func TransactionToResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           t.ID.String(),
		UserID:       t.UserID.String(),
		Type:         t.Type,
		Direction:    t.Direction,
		Amount:       t.Amount,
		BalanceAfter: t.BalanceAfter,
		Reference:    t.Reference,
		Description:  t.Description,
		Status:       t.Status,
		CreatedAt:    t.CreatedAt,
	}
}

func PaymentMethodToResponse(pm *entity.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		ID:           pm.ID.String(),
		Name:         pm.Name,
		Type:         pm.Type,
		Instructions: pm.Instructions,
		Details:      pm.Details,
		IsActive:     pm.IsActive,
	}
}
