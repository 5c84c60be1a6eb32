package request

import "github.com/shopspring/decimal"

type UpdateProfileRequest struct {
	Username  *string `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
	FullName  *string `json:"full_name,omitempty" validate:"omitempty,max=100"`
	AvatarURL *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
}

type AdminUpdateUserRequest struct {
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=customer admin"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type UserListRequest struct {
	PaginatedRequest
	Search *string
	Role   *string `validate:"omitempty,oneof=customer admin"`
}

// AdjustBalanceRequest is a manual wallet correction by an admin.
type AdjustBalanceRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"gt=0,money"`
	Direction   string          `json:"direction" validate:"required,oneof=credit debit"`
	Description string          `json:"description" validate:"required,max=255"`
}
