package request

type RegisterRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Email    string  `json:"email" validate:"required,email,max=255"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
}

// LoginRequest accepts either an email or a username as identifier.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type SendOTPRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
	Type  string `json:"type" validate:"required,oneof=email_verification password_reset"`
}

type VerifyEmailRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
	OTP   string `json:"otp" validate:"required,numeric,min=4,max=10"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email,max=255"`
	OTP         string `json:"otp" validate:"required,numeric,min=4,max=10"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72,nefield=CurrentPassword"`
}
