package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"celebrity-booking/internal/data/cache"
	"celebrity-booking/internal/data/entity"
	"celebrity-booking/internal/data/repository"
	"celebrity-booking/internal/dto/request"
	"celebrity-booking/internal/dto/response"
	"celebrity-booking/pkg/database"
	"celebrity-booking/pkg/mailer"
	"celebrity-booking/pkg/metrics"
	"celebrity-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const otpMailTimeout = 30 * time.Second

var errInvalidOTP = utils.ErrBadRequest("invalid or expired OTP")

// SessionMeta describes the client a session is opened for.
type SessionMeta struct {
	UserAgent string
	IP        string
}

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest, meta SessionMeta) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest, meta SessionMeta) (*response.AuthResponse, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
	SendOTP(ctx context.Context, req *request.SendOTPRequest) error
	VerifyEmail(ctx context.Context, req *request.VerifyEmailRequest) error
	ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error
	ChangePassword(ctx context.Context, userID uuid.UUID, req *request.ChangePasswordRequest) error
	Me(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
}

type authService struct {
	repo   *repository.Repository
	tx     database.TxManager
	tokens *utils.TokenManager
	mailer mailer.Mailer
	guard  cache.OTPGuard
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	tx database.TxManager,
	tokens *utils.TokenManager,
	mail mailer.Mailer,
	guard cache.OTPGuard,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		tx:     tx,
		tokens: tokens,
		mailer: mail,
		guard:  guard,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest, meta SessionMeta) (*response.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	// 1. Email and username must be free
	existing, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", email))
		return nil, utils.ErrInternal(err, "failed to create account")
	}
	if existing != nil {
		return nil, utils.ErrConflict("email already registered")
	}

	existing, err = s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to check username", zap.Error(err), zap.String("username", req.Username))
		return nil, utils.ErrInternal(err, "failed to create account")
	}
	if existing != nil {
		return nil, utils.ErrConflict("username already taken")
	}

	// 2. Hash password
	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, utils.ErrInternal(err, "failed to process password")
	}

	// 3. Save user
	user := &entity.User{
		Base:         entity.NewBase(),
		Username:     strings.TrimSpace(req.Username),
		Email:        email,
		PasswordHash: hashed,
		Phone:        req.Phone,
		Role:         entity.RoleCustomer,
		IsActive:     true,
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, utils.ErrConflict("email or username already registered")
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", email))
		return nil, utils.ErrInternal(err, "failed to create account")
	}

	// 4. Verification code goes out in the background
	go s.sendVerificationOTP(user)

	// 5. Auto login
	resp, err := s.openSession(ctx, user, meta)
	if err != nil {
		s.log.Warn("Failed to create session after register", zap.Error(err), zap.String("user_id", user.ID.String()))
		return &response.AuthResponse{User: response.UserToResponse(user)}, nil
	}

	s.log.Info("User registered", zap.String("user_id", user.ID.String()), zap.String("email", user.Email))
	return resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest, meta SessionMeta) (*response.AuthResponse, error) {
	identifier := strings.TrimSpace(req.Identifier)

	// 1. Find by email, then by username
	user, err := s.repo.User.FindByEmail(ctx, identifier)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("identifier", identifier))
		return nil, utils.ErrInternal(err, "failed to login")
	}
	if user == nil {
		user, err = s.repo.User.FindByUsername(ctx, identifier)
		if err != nil {
			s.log.Error("Failed to find user by username", zap.Error(err), zap.String("identifier", identifier))
			return nil, utils.ErrInternal(err, "failed to login")
		}
	}

	// 2. Check credentials
	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid login attempt", zap.String("identifier", identifier))
		return nil, utils.ErrUnauthorized("invalid credentials")
	}

	// 3. Check if user is active
	if !user.IsActive {
		s.log.Warn("Inactive user tried to login", zap.String("user_id", user.ID.String()))
		return nil, utils.ErrForbidden("account is deactivated")
	}

	// 4. Create session
	resp, err := s.openSession(ctx, user, meta)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, utils.ErrInternal(err, "failed to create session")
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()), zap.String("username", user.Username))
	return resp, nil
}

func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.repo.Session.Revoke(ctx, sessionID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		s.log.Error("Failed to revoke session", zap.Error(err), zap.String("session_id", sessionID.String()))
		return utils.ErrInternal(err, "failed to logout")
	}

	s.log.Info("User logged out", zap.String("session_id", sessionID.String()))
	return nil
}

func (s *authService) SendOTP(ctx context.Context, req *request.SendOTPRequest) error {
	otpType := entity.OTPType(req.Type)
	if !otpType.Valid() {
		return utils.ErrBadRequest("unknown OTP type")
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for OTP", zap.Error(err), zap.String("email", req.Email))
		return utils.ErrInternal(err, "failed to send OTP")
	}
	if user == nil {
		return utils.ErrNotFound("user not found")
	}
	if otpType == entity.OTPTypeEmailVerification && user.EmailVerified {
		return utils.ErrBadRequest("email already verified")
	}

	return s.issueOTP(ctx, user, otpType)
}

func (s *authService) VerifyEmail(ctx context.Context, req *request.VerifyEmailRequest) error {
	otp, err := s.consumeOTP(ctx, req.Email, req.OTP, entity.OTPTypeEmailVerification)
	if err != nil {
		return err
	}

	if err := s.repo.User.MarkEmailVerified(ctx, otp.UserID); err != nil {
		s.log.Error("Failed to mark email verified", zap.Error(err), zap.String("user_id", otp.UserID.String()))
		return notFound(err, "user not found")
	}

	s.log.Info("Email verified", zap.String("email", otp.Email), zap.String("user_id", otp.UserID.String()))
	return nil
}

// ForgotPassword always succeeds from the caller's point of view so unknown
// emails cannot be probed.
func (s *authService) ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) error {
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for password reset", zap.Error(err), zap.String("email", req.Email))
		return nil
	}
	if user == nil || !user.IsActive {
		s.log.Info("Password reset requested for unknown account", zap.String("email", req.Email))
		return nil
	}

	if err := s.issueOTP(ctx, user, entity.OTPTypePasswordReset); err != nil {
		s.log.Warn("Password reset OTP not issued", zap.Error(err), zap.String("user_id", user.ID.String()))
	}
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	otp, err := s.consumeOTP(ctx, req.Email, req.OTP, entity.OTPTypePasswordReset)
	if err != nil {
		return err
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return utils.ErrInternal(err, "failed to process password")
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.User.UpdatePassword(ctx, otp.UserID, hashed); err != nil {
			return err
		}
		return s.repo.Session.RevokeAllUserSessions(ctx, otp.UserID)
	})
	if err != nil {
		s.log.Error("Failed to reset password", zap.Error(err), zap.String("user_id", otp.UserID.String()))
		return notFound(err, "user not found")
	}

	s.log.Info("Password reset", zap.String("user_id", otp.UserID.String()))
	return nil
}

func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, req *request.ChangePasswordRequest) error {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return utils.ErrInternal(err, "failed to change password")
	}
	if user == nil {
		return utils.ErrNotFound("user not found")
	}

	if !utils.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return utils.ErrBadRequest("current password is incorrect")
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return utils.ErrInternal(err, "failed to process password")
	}

	if err := s.repo.User.UpdatePassword(ctx, userID, hashed); err != nil {
		s.log.Error("Failed to update password", zap.Error(err), zap.String("user_id", userID.String()))
		return utils.ErrInternal(err, "failed to change password")
	}

	s.log.Info("Password changed", zap.String("user_id", userID.String()))
	return nil
}

func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, utils.ErrInternal(err, "failed to load account")
	}
	if user == nil {
		return nil, utils.ErrNotFound("user not found")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

// ==================== HELPER METHODS ====================

func (s *authService) openSession(ctx context.Context, user *entity.User, meta SessionMeta) (*response.AuthResponse, error) {
	session := entity.NewSession(user.ID, s.tokens.Expiry(), meta.UserAgent, meta.IP)

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	token, err := s.tokens.Generate(user.ID, session.Token, string(user.Role), session.ExpiresAt)
	if err != nil {
		return nil, err
	}

	return &response.AuthResponse{
		Token:     token,
		ExpiresAt: &session.ExpiresAt,
		User:      response.UserToResponse(user),
	}, nil
}

// issueOTP replaces any live code of the same type and mails the new one.
func (s *authService) issueOTP(ctx context.Context, user *entity.User, otpType entity.OTPType) error {
	// 1. Resend cooldown. Redis being down must not lock users out.
	ok, err := s.guard.AcquireCooldown(ctx, user.Email, otpType)
	if err != nil {
		s.log.Warn("OTP cooldown check failed", zap.Error(err), zap.String("email", user.Email))
	} else if !ok {
		return utils.ErrTooManyRequests("please wait before requesting another code")
	}

	// 2. Replace previous codes
	if err := s.repo.OTP.InvalidateAll(ctx, user.Email, otpType); err != nil {
		s.log.Error("Failed to invalidate old OTPs", zap.Error(err), zap.String("email", user.Email))
		return utils.ErrInternal(err, "failed to generate OTP")
	}

	code := utils.GenerateOTP(s.config.OTP.Length)
	otp := entity.NewOTP(user, otpType, code, time.Duration(s.config.OTP.ExpiryMinutes)*time.Minute)
	if err := s.repo.OTP.Create(ctx, otp); err != nil {
		s.log.Error("Failed to save OTP", zap.Error(err), zap.String("email", user.Email))
		return utils.ErrInternal(err, "failed to generate OTP")
	}

	if err := s.guard.Reset(ctx, user.Email, otpType); err != nil {
		s.log.Warn("Failed to reset OTP attempts", zap.Error(err), zap.String("email", user.Email))
	}
	metrics.OTPsIssued.WithLabelValues(string(otpType)).Inc()

	// 3. Deliver. A mail failure leaves the code valid for a resend.
	subject, body := otpMail(otpType, code, s.config.OTP.ExpiryMinutes)
	if err := s.mailer.Send(ctx, user.Email, subject, body); err != nil {
		s.log.Error("Failed to mail OTP", zap.Error(err), zap.String("email", user.Email))
	}

	s.log.Info("OTP issued",
		zap.String("email", user.Email),
		zap.String("otp_type", string(otpType)),
		zap.Time("expires_at", otp.ExpiresAt),
	)
	return nil
}

// consumeOTP checks code and marks it used. Too many wrong codes burn every
// live code for that email and type.
func (s *authService) consumeOTP(ctx context.Context, email, code string, otpType entity.OTPType) (*entity.OTP, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	otp, err := s.repo.OTP.FindValidOTP(ctx, email, code, otpType)
	if err != nil {
		s.log.Error("Failed to find OTP", zap.Error(err), zap.String("email", email))
		return nil, utils.ErrInternal(err, "failed to verify OTP")
	}

	if otp == nil || !otp.Usable(time.Now()) {
		attempts, err := s.guard.RegisterFailure(ctx, email, otpType)
		if err != nil {
			s.log.Warn("Failed to count OTP attempt", zap.Error(err), zap.String("email", email))
			return nil, errInvalidOTP
		}
		if attempts >= int64(s.config.OTP.MaxAttempts) {
			s.log.Warn("OTP attempts exhausted", zap.String("email", email), zap.Int64("attempts", attempts))
			if err := s.repo.OTP.InvalidateAll(ctx, email, otpType); err != nil {
				s.log.Error("Failed to invalidate OTPs", zap.Error(err), zap.String("email", email))
			}
			if err := s.guard.Reset(ctx, email, otpType); err != nil {
				s.log.Warn("Failed to reset OTP attempts", zap.Error(err), zap.String("email", email))
			}
		}
		return nil, errInvalidOTP
	}

	if err := s.repo.OTP.MarkAsUsed(ctx, otp.ID); err != nil {
		// lost a race with a concurrent verification
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errInvalidOTP
		}
		s.log.Error("Failed to mark OTP used", zap.Error(err), zap.String("otp_id", otp.ID.String()))
		return nil, utils.ErrInternal(err, "failed to verify OTP")
	}

	if err := s.guard.Reset(ctx, email, otpType); err != nil {
		s.log.Warn("Failed to reset OTP attempts", zap.Error(err), zap.String("email", email))
	}
	return otp, nil
}

func (s *authService) sendVerificationOTP(user *entity.User) {
	ctx, cancel := context.WithTimeout(context.Background(), otpMailTimeout)
	defer cancel()

	if err := s.issueOTP(ctx, user, entity.OTPTypeEmailVerification); err != nil {
		s.log.Error("Failed to send verification OTP", zap.Error(err), zap.String("email", user.Email))
	}
}

func otpMail(otpType entity.OTPType, code string, expiryMinutes int) (string, string) {
	subject := "Verify your email"
	action := "verify your email address"
	if otpType == entity.OTPTypePasswordReset {
		subject = "Reset your password"
		action = "reset your password"
	}
	body := fmt.Sprintf("Use the code %s to %s.\n\nThe code expires in %d minutes. If you did not request it, ignore this message.\n",
		code, action, expiryMinutes)
	return subject, body
}
