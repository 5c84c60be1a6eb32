package response

import (
	"time"

	"celebrity-booking/internal/data/entity"

	"github.com/shopspring/decimal"
)

type MembershipPlanResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  *string         `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	DurationDays int             `json:"duration_days"`
	Benefits     []string        `json:"benefits"`
	IsActive     bool            `json:"is_active"`
}

type MembershipResponse struct {
	ID        string                  `json:"id"`
	UserID    string                  `json:"user_id"`
	PlanID    string                  `json:"plan_id"`
	Plan      *MembershipPlanResponse `json:"plan,omitempty"`
	Status    entity.MembershipStatus `json:"status"`
	Amount    decimal.Decimal         `json:"amount"`
	StartsAt  *time.Time              `json:"starts_at,omitempty"`
	EndsAt    *time.Time              `json:"ends_at,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
}

func MembershipPlanToResponse(p *entity.MembershipPlan) MembershipPlanResponse {
	benefits := p.Benefits
	if benefits == nil {
		benefits = []string{}
	}
	return MembershipPlanResponse{
		ID:           p.ID.String(),
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		DurationDays: p.DurationDays,
		Benefits:     benefits,
		IsActive:     p.IsActive,
	}
}

func MembershipToResponse(m *entity.Membership) MembershipResponse {
	return MembershipResponse{
		ID:        m.ID.String(),
		UserID:    m.UserID.String(),
		PlanID:    m.PlanID.String(),
		Status:    m.Status,
		Amount:    m.Amount,
		StartsAt:  m.StartsAt,
		EndsAt:    m.EndsAt,
		CreatedAt: m.CreatedAt,
	}
}
