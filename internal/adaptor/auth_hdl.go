package adaptor

import (
	"net/http"
	"time"

	"celebrity-booking/internal/dto/request"
	"celebrity-booking/internal/dto/response"
	"celebrity-booking/internal/usecase"
	"celebrity-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service      usecase.AuthService
	cookieName   string
	secureCookie bool
	log          *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, cookieName string, secureCookie bool, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service:      service,
		cookieName:   cookieName,
		secureCookie: secureCookie,
		log:          log.With(zap.String("handler", "auth")),
	}
}

func sessionMeta(r *http.Request) usecase.SessionMeta {
	return usecase.SessionMeta{
		UserAgent: r.UserAgent(),
		IP:        utils.GetClientIPFromContext(r.Context()),
	}
}

func (h *AuthHandler) setTokenCookie(w http.ResponseWriter, auth *response.AuthResponse) {
	if h.cookieName == "" || auth.Token == "" {
		return
	}
	cookie := &http.Cookie{
		Name:     h.cookieName,
		Value:    auth.Token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
	if auth.ExpiresAt != nil {
		cookie.Expires = *auth.ExpiresAt
	}
	http.SetCookie(w, cookie)
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.service.Register(r.Context(), &req, sessionMeta(r))
	if err != nil {
		handleServiceError(w, h.log, err, "register")
		return
	}

	h.setTokenCookie(w, resp)
	utils.ResponseCreated(w, "Registration successful. Check your email for the verification code.", resp)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), &req, sessionMeta(r))
	if err != nil {
		handleServiceError(w, h.log, err, "login")
		return
	}

	h.setTokenCookie(w, resp)
	utils.ResponseSuccess(w, "Login successful", resp)
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := utils.GetSessionIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.Logout(r.Context(), sessionID); err != nil {
		handleServiceError(w, h.log, err, "logout")
		return
	}

	if h.cookieName != "" {
		http.SetCookie(w, &http.Cookie{
			Name:     h.cookieName,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			Secure:   h.secureCookie,
			MaxAge:   -1,
			Expires:  time.Unix(0, 0),
		})
	}
	utils.ResponseSuccess(w, "Logout successful", nil)
}

// SendOTP handles POST /api/auth/send-otp
func (h *AuthHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req request.SendOTPRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.SendOTP(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "send OTP")
		return
	}

	utils.ResponseSuccess(w, "OTP sent successfully", nil)
}

// VerifyEmail handles POST /api/auth/verify-email
func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyEmailRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.VerifyEmail(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "verify email")
		return
	}

	utils.ResponseSuccess(w, "Email verified successfully", nil)
}

// ForgotPassword handles POST /api/auth/forgot-password
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ForgotPasswordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.ForgotPassword(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "forgot password")
		return
	}

	utils.ResponseSuccess(w, "If the email is registered, a reset code has been sent", nil)
}

// ResetPassword handles POST /api/auth/reset-password
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ResetPasswordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.ResetPassword(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "reset password")
		return
	}

	utils.ResponseSuccess(w, "Password reset successfully. Please log in again.", nil)
}

// ChangePassword handles PUT /api/auth/change-password
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.ChangePasswordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.ChangePassword(r.Context(), userID, &req); err != nil {
		handleServiceError(w, h.log, err, "change password")
		return
	}

	utils.ResponseSuccess(w, "Password changed successfully", nil)
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	user, err := h.service.Me(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "me")
		return
	}

	utils.ResponseSuccess(w, "success", user)
}
