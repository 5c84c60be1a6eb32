package entity

import (
	"time"

	"github.com/google/uuid"
)

type OTPType string

const (
	OTPTypeEmailVerification OTPType = "email_verification"
	OTPTypePasswordReset     OTPType = "password_reset"
)

func (t OTPType) Valid() bool {
	return t == OTPTypeEmailVerification || t == OTPTypePasswordReset
}

// OTP is a single-use code mailed to a user. Only the newest code of a type is live.
type OTP struct {
	BaseSimple
	UserID    uuid.UUID `db:"user_id"`
	Email     string    `db:"email"`
	OTPCode   string    `db:"otp_code"`
	OTPType   OTPType   `db:"otp_type"`
	ExpiresAt time.Time `db:"expires_at"`
	IsUsed    bool      `db:"is_used"`
}

func NewOTP(user *User, otpType OTPType, code string, ttl time.Duration) *OTP {
	o := &OTP{
		BaseSimple: NewBaseSimple(),
		UserID:     user.ID,
		Email:      user.Email,
		OTPCode:    code,
		OTPType:    otpType,
	}
	o.ExpiresAt = o.CreatedAt.Add(ttl)
	return o
}

func (o *OTP) Usable(now time.Time) bool {
	return !o.IsUsed && now.Before(o.ExpiresAt)
}
