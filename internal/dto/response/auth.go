package response

import (
	"time"

	"celebrity-booking/internal/data/entity"

	"github.com/shopspring/decimal"
)

type AuthResponse struct {
	Token     string       `json:"token,omitempty"`
	ExpiresAt *time.Time   `json:"expires_at,omitempty"`
	User      UserResponse `json:"user"`
}

type UserResponse struct {
	ID         string          `json:"id"`
	Username   string          `json:"username"`
	Email      string          `json:"email"`
	Phone      *string         `json:"phone,omitempty"`
	FullName   *string         `json:"full_name,omitempty"`
	AvatarURL  *string         `json:"avatar_url,omitempty"`
	Role       entity.UserRole `json:"role"`
	IsVerified bool            `json:"is_verified"`
	IsActive   bool            `json:"is_active"`
	Balance    decimal.Decimal `json:"balance"`
	CreatedAt  time.Time       `json:"created_at"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:         user.ID.String(),
		Username:   user.Username,
		Email:      user.Email,
		Phone:      user.Phone,
		FullName:   user.FullName,
		AvatarURL:  user.AvatarURL,
		Role:       user.Role,
		IsVerified: user.EmailVerified,
		IsActive:   user.IsActive,
		Balance:    user.Balance,
		CreatedAt:  user.CreatedAt,
	}
}

type WalletResponse struct {
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
}
