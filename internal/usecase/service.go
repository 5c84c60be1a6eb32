package usecase

import (
	"celebrity-booking/internal/data/cache"
	"celebrity-booking/internal/data/repository"
	"celebrity-booking/pkg/database"
	"celebrity-booking/pkg/mailer"
	"celebrity-booking/pkg/payment"
	"celebrity-booking/pkg/storage"
	"celebrity-booking/pkg/utils"

	"go.uber.org/zap"
)

// Deps groups the infrastructure every service is built from.
type Deps struct {
	Repo     *repository.Repository
	Tx       database.TxManager
	Config   *utils.Config
	Tokens   *utils.TokenManager
	Mailer   mailer.Mailer
	OTPGuard cache.OTPGuard
	Settings cache.SettingsCache
	Gateway  payment.Gateway
	Store    storage.Store
	Hub      Publisher
	Log      *zap.Logger
}

type Service struct {
	Auth          AuthService
	User          UserService
	Celebrity     CelebrityService
	Event         EventService
	Booking       BookingService
	Membership    MembershipService
	Donation      DonationService
	Deposit       DepositService
	Transaction   TransactionService
	PaymentMethod PaymentMethodService
	Support       SupportService
	Notification  NotificationService
	Audit         AuditService
	Blog          BlogService
	Media         MediaService
	Platform      PlatformService
	Stats         StatsService
}

func NewService(d Deps) *Service {
	audit := NewAuditService(d.Repo.Audit, d.Log)
	notify := NewNotificationService(d.Repo.Notification, d.Repo.User, d.Hub, d.Log)
	platform := NewPlatformService(d.Repo.Platform, d.Settings, d.Tx, audit, d.Log)

	return &Service{
		Auth:          NewAuthService(d.Repo, d.Tx, d.Tokens, d.Mailer, d.OTPGuard, d.Config, d.Log),
		User:          NewUserService(d.Repo, d.Tx, audit, d.Log),
		Celebrity:     NewCelebrityService(d.Repo, d.Tx, audit, d.Log),
		Event:         NewEventService(d.Repo, d.Tx, audit, d.Log),
		Booking:       NewBookingService(d.Repo, d.Tx, platform, notify, audit, d.Log),
		Membership:    NewMembershipService(d.Repo, d.Tx, notify, audit, d.Log),
		Donation:      NewDonationService(d.Repo, d.Tx, notify, audit, d.Log),
		Deposit:       NewDepositService(d.Repo, d.Tx, d.Gateway, platform, notify, audit, d.Log),
		Transaction:   NewTransactionService(d.Repo, d.Tx, platform, notify, audit, d.Log),
		PaymentMethod: NewPaymentMethodService(d.Repo.PaymentMethod, audit, d.Log),
		Support:       NewSupportService(d.Repo, d.Tx, notify, audit, d.Log),
		Notification:  notify,
		Audit:         audit,
		Blog:          NewBlogService(d.Repo.BlogPost, audit, d.Log),
		Media:         NewMediaService(d.Repo.Media, d.Store, audit, d.Log),
		Platform:      platform,
		Stats:         NewStatsService(d.Repo.Stats, d.Log),
	}
}
