package repository

import (
	"celebrity-booking/pkg/database"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Repository struct {
	User           UserRepository
	Session        SessionRepository
	OTP            OTPRepository
	Celebrity      CelebrityRepository
	BookingType    BookingTypeRepository
	Review         ReviewRepository
	Event          EventRepository
	Booking        BookingRepository
	MembershipPlan MembershipPlanRepository
	Membership     MembershipRepository
	Donation       DonationRepository
	Deposit        DepositRepository
	Transaction    TransactionRepository
	PaymentMethod  PaymentMethodRepository
	SupportTicket  SupportTicketRepository
	BlogPost       BlogPostRepository
	Media          MediaRepository
	Platform       PlatformRepository
	Stats          StatsRepository
	Audit          AuditRepository
	Notification   NotificationRepository
}

func NewRepository(db database.PgxIface, docs *mongo.Database, log *zap.Logger) *Repository {
	return &Repository{
		User:           NewUserRepository(db, log),
		Session:        NewSessionRepository(db, log),
		OTP:            NewOTPRepository(db, log),
		Celebrity:      NewCelebrityRepository(db, log),
		BookingType:    NewBookingTypeRepository(db, log),
		Review:         NewReviewRepository(db, log),
		Event:          NewEventRepository(db, log),
		Booking:        NewBookingRepository(db, log),
		MembershipPlan: NewMembershipPlanRepository(db, log),
		Membership:     NewMembershipRepository(db, log),
		Donation:       NewDonationRepository(db, log),
		Deposit:        NewDepositRepository(db, log),
		Transaction:    NewTransactionRepository(db, log),
		PaymentMethod:  NewPaymentMethodRepository(db, log),
		SupportTicket:  NewSupportTicketRepository(db, log),
		BlogPost:       NewBlogPostRepository(db, log),
		Media:          NewMediaRepository(db, log),
		Platform:       NewPlatformRepository(db, log),
		Stats:          NewStatsRepository(db, log),
		Audit:          NewAuditRepository(docs.Collection(database.CollectionAudits), log),
		Notification:   NewNotificationRepository(docs.Collection(database.CollectionNotifications), log),
	}
}
