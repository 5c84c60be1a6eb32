package entity

import "github.com/shopspring/decimal"

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

type User struct {
	Base
	Username      string          `db:"username"`
	Email         string          `db:"email"`
	PasswordHash  string          `db:"password"`
	Phone         *string         `db:"phone"`
	FullName      *string         `db:"full_name"`
	AvatarURL     *string         `db:"avatar_url"`
	Role          UserRole        `db:"role"`
	EmailVerified bool            `db:"email_verified"`
	IsActive      bool            `db:"is_active"`
	Balance       decimal.Decimal `db:"balance"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type UserFilter struct {
	Search *string
	Role   *string
}
