package usecase

import (
	"context"
	"time"

	"celebrity-booking/internal/data/entity"
	"celebrity-booking/internal/dto/request"
	"celebrity-booking/internal/dto/response"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// ==================== INFRASTRUCTURE ====================

// fakeTx runs fn inline.
type fakeTx struct{ calls int }

func (f *fakeTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type auditCall struct {
	Action   entity.AuditAction
	Entity   string
	EntityID string
	Changes  map[string]any
}

type stubAudit struct{ calls []auditCall }

func (s *stubAudit) Record(_ context.Context, action entity.AuditAction, entityName, entityID string, changes map[string]any) {
	s.calls = append(s.calls, auditCall{action, entityName, entityID, changes})
}

func (s *stubAudit) List(context.Context, *request.AuditListRequest) (*response.PaginatedResponse[response.AuditResponse], error) {
	return nil, nil
}

type notifyCall struct {
	UserID uuid.UUID
	Type   entity.NotificationType
	Title  string
}

type stubNotify struct{ calls []notifyCall }

func (s *stubNotify) Notify(_ context.Context, userID uuid.UUID, nType entity.NotificationType, title, _, _ string) {
	s.calls = append(s.calls, notifyCall{userID, nType, title})
}

func (s *stubNotify) List(context.Context, uuid.UUID, *request.NotificationListRequest) (*response.PaginatedResponse[response.NotificationResponse], error) {
	return nil, nil
}

func (s *stubNotify) UnreadCount(context.Context, uuid.UUID) (*response.CountResponse, error) {
	return nil, nil
}

func (s *stubNotify) MarkRead(context.Context, uuid.UUID, string) error { return nil }

func (s *stubNotify) MarkAllRead(context.Context, uuid.UUID) (*response.CountResponse, error) {
	return nil, nil
}

func (s *stubNotify) Delete(context.Context, uuid.UUID, string) error { return nil }

func (s *stubNotify) Broadcast(context.Context, *request.BroadcastNotificationRequest) (*response.CountResponse, error) {
	return nil, nil
}

type stubPlatform struct{ settings *entity.Platform }

func (s *stubPlatform) Get(context.Context) (*entity.Platform, error) {
	if s.settings == nil {
		return entity.DefaultPlatform(), nil
	}
	return s.settings, nil
}

func (s *stubPlatform) Update(context.Context, *request.UpdatePlatformRequest) (*entity.Platform, error) {
	return s.settings, nil
}

type MockMailer struct{ mock.Mock }

func (m *MockMailer) Send(ctx context.Context, to, subject, body string) error {
	return m.Called(ctx, to, subject, body).Error(0)
}

type MockOTPGuard struct{ mock.Mock }

func (m *MockOTPGuard) AcquireCooldown(ctx context.Context, email string, otpType entity.OTPType) (bool, error) {
	args := m.Called(ctx, email, otpType)
	return args.Bool(0), args.Error(1)
}

func (m *MockOTPGuard) RegisterFailure(ctx context.Context, email string, otpType entity.OTPType) (int64, error) {
	args := m.Called(ctx, email, otpType)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOTPGuard) Reset(ctx context.Context, email string, otpType entity.OTPType) error {
	return m.Called(ctx, email, otpType).Error(0)
}

// ==================== REPOSITORIES ====================

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *MockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *MockUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *MockUserRepo) FindAll(ctx context.Context, f entity.UserFilter, limit, offset int) ([]*entity.User, error) {
	args := m.Called(ctx, f, limit, offset)
	users, _ := args.Get(0).([]*entity.User)
	return users, args.Error(1)
}

func (m *MockUserRepo) Count(ctx context.Context, f entity.UserFilter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	return m.Called(ctx, id, hash).Error(0)
}

func (m *MockUserRepo) MarkEmailVerified(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepo) AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, id, delta)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockTransactionRepo struct{ mock.Mock }

func (m *MockTransactionRepo) Create(ctx context.Context, tx *entity.Transaction) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockTransactionRepo) FindAll(ctx context.Context, f entity.TransactionFilter, limit, offset int) ([]*entity.Transaction, error) {
	args := m.Called(ctx, f, limit, offset)
	txns, _ := args.Get(0).([]*entity.Transaction)
	return txns, args.Error(1)
}

func (m *MockTransactionRepo) Count(ctx context.Context, f entity.TransactionFilter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

type MockSessionRepo struct{ mock.Mock }

func (m *MockSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MockSessionRepo) FindValidSession(ctx context.Context, token uuid.UUID) (*entity.Session, error) {
	args := m.Called(ctx, token)
	s, _ := args.Get(0).(*entity.Session)
	return s, args.Error(1)
}

func (m *MockSessionRepo) Revoke(ctx context.Context, token uuid.UUID) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockSessionRepo) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockSessionRepo) CleanExpiredSessions(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockOTPRepo struct{ mock.Mock }

func (m *MockOTPRepo) Create(ctx context.Context, otp *entity.OTP) error {
	return m.Called(ctx, otp).Error(0)
}

func (m *MockOTPRepo) FindValidOTP(ctx context.Context, email, otpCode string, otpType entity.OTPType) (*entity.OTP, error) {
	args := m.Called(ctx, email, otpCode, otpType)
	o, _ := args.Get(0).(*entity.OTP)
	return o, args.Error(1)
}

func (m *MockOTPRepo) MarkAsUsed(ctx context.Context, otpID uuid.UUID) error {
	return m.Called(ctx, otpID).Error(0)
}

func (m *MockOTPRepo) InvalidateAll(ctx context.Context, email string, otpType entity.OTPType) error {
	return m.Called(ctx, email, otpType).Error(0)
}

func (m *MockOTPRepo) DeleteStale(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockBookingRepo struct{ mock.Mock }

func (m *MockBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *MockBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*entity.Booking)
	return b, args.Error(1)
}

func (m *MockBookingRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*entity.Booking)
	return b, args.Error(1)
}

func (m *MockBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	args := m.Called(ctx, userID, limit, offset)
	b, _ := args.Get(0).([]*entity.Booking)
	return b, args.Error(1)
}

func (m *MockBookingRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepo) FindAll(ctx context.Context, status *string, limit, offset int) ([]*entity.Booking, error) {
	args := m.Called(ctx, status, limit, offset)
	b, _ := args.Get(0).([]*entity.Booking)
	return b, args.Error(1)
}

func (m *MockBookingRepo) Count(ctx context.Context, status *string) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepo) Update(ctx context.Context, booking *entity.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

type MockEventRepo struct{ mock.Mock }

func (m *MockEventRepo) Create(ctx context.Context, event *entity.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*entity.Event)
	return e, args.Error(1)
}

func (m *MockEventRepo) FindBySlug(ctx context.Context, slug string) (*entity.Event, error) {
	args := m.Called(ctx, slug)
	e, _ := args.Get(0).(*entity.Event)
	return e, args.Error(1)
}

func (m *MockEventRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockEventRepo) FindAll(ctx context.Context, f entity.EventFilter, limit, offset int) ([]*entity.Event, error) {
	args := m.Called(ctx, f, limit, offset)
	e, _ := args.Get(0).([]*entity.Event)
	return e, args.Error(1)
}

func (m *MockEventRepo) Count(ctx context.Context, f entity.EventFilter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEventRepo) Update(ctx context.Context, event *entity.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventRepo) ReserveTickets(ctx context.Context, id uuid.UUID, quantity int) error {
	return m.Called(ctx, id, quantity).Error(0)
}

func (m *MockEventRepo) ReleaseTickets(ctx context.Context, id uuid.UUID, quantity int) error {
	return m.Called(ctx, id, quantity).Error(0)
}

func (m *MockEventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockDepositRepo struct{ mock.Mock }

func (m *MockDepositRepo) Create(ctx context.Context, d *entity.Deposit) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDepositRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Deposit, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*entity.Deposit)
	return d, args.Error(1)
}

func (m *MockDepositRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Deposit, error) {
	args := m.Called(ctx, userID, limit, offset)
	d, _ := args.Get(0).([]*entity.Deposit)
	return d, args.Error(1)
}

func (m *MockDepositRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDepositRepo) FindAll(ctx context.Context, status *string, limit, offset int) ([]*entity.Deposit, error) {
	args := m.Called(ctx, status, limit, offset)
	d, _ := args.Get(0).([]*entity.Deposit)
	return d, args.Error(1)
}

func (m *MockDepositRepo) Count(ctx context.Context, status *string) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDepositRepo) Update(ctx context.Context, d *entity.Deposit) error {
	return m.Called(ctx, d).Error(0)
}

type MockPaymentMethodRepo struct{ mock.Mock }

func (m *MockPaymentMethodRepo) Create(ctx context.Context, pm *entity.PaymentMethod) error {
	return m.Called(ctx, pm).Error(0)
}

func (m *MockPaymentMethodRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentMethod, error) {
	args := m.Called(ctx, id)
	pm, _ := args.Get(0).(*entity.PaymentMethod)
	return pm, args.Error(1)
}

func (m *MockPaymentMethodRepo) FindAll(ctx context.Context, activeOnly bool) ([]*entity.PaymentMethod, error) {
	args := m.Called(ctx, activeOnly)
	pms, _ := args.Get(0).([]*entity.PaymentMethod)
	return pms, args.Error(1)
}

func (m *MockPaymentMethodRepo) Update(ctx context.Context, pm *entity.PaymentMethod) error {
	return m.Called(ctx, pm).Error(0)
}

func (m *MockPaymentMethodRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockMembershipRepo struct{ mock.Mock }

func (m *MockMembershipRepo) Create(ctx context.Context, ms *entity.Membership) error {
	return m.Called(ctx, ms).Error(0)
}

func (m *MockMembershipRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Membership, error) {
	args := m.Called(ctx, id)
	ms, _ := args.Get(0).(*entity.Membership)
	return ms, args.Error(1)
}

func (m *MockMembershipRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Membership, error) {
	args := m.Called(ctx, id)
	ms, _ := args.Get(0).(*entity.Membership)
	return ms, args.Error(1)
}

func (m *MockMembershipRepo) FindOpenByUserID(ctx context.Context, userID uuid.UUID) (*entity.Membership, error) {
	args := m.Called(ctx, userID)
	ms, _ := args.Get(0).(*entity.Membership)
	return ms, args.Error(1)
}

func (m *MockMembershipRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Membership, error) {
	args := m.Called(ctx, userID)
	ms, _ := args.Get(0).([]*entity.Membership)
	return ms, args.Error(1)
}

func (m *MockMembershipRepo) FindAll(ctx context.Context, status *string, limit, offset int) ([]*entity.Membership, error) {
	args := m.Called(ctx, status, limit, offset)
	ms, _ := args.Get(0).([]*entity.Membership)
	return ms, args.Error(1)
}

func (m *MockMembershipRepo) Count(ctx context.Context, status *string) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMembershipRepo) Update(ctx context.Context, ms *entity.Membership) error {
	return m.Called(ctx, ms).Error(0)
}

func (m *MockMembershipRepo) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockMembershipPlanRepo struct{ mock.Mock }

func (m *MockMembershipPlanRepo) Create(ctx context.Context, plan *entity.MembershipPlan) error {
	return m.Called(ctx, plan).Error(0)
}

func (m *MockMembershipPlanRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.MembershipPlan, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*entity.MembershipPlan)
	return p, args.Error(1)
}

func (m *MockMembershipPlanRepo) FindAll(ctx context.Context, activeOnly bool) ([]*entity.MembershipPlan, error) {
	args := m.Called(ctx, activeOnly)
	p, _ := args.Get(0).([]*entity.MembershipPlan)
	return p, args.Error(1)
}

func (m *MockMembershipPlanRepo) Update(ctx context.Context, plan *entity.MembershipPlan) error {
	return m.Called(ctx, plan).Error(0)
}

func (m *MockMembershipPlanRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockCelebrityRepo struct{ mock.Mock }

func (m *MockCelebrityRepo) Create(ctx context.Context, celebrity *entity.Celebrity) error {
	return m.Called(ctx, celebrity).Error(0)
}

func (m *MockCelebrityRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Celebrity, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*entity.Celebrity)
	return c, args.Error(1)
}

func (m *MockCelebrityRepo) FindBySlug(ctx context.Context, slug string) (*entity.Celebrity, error) {
	args := m.Called(ctx, slug)
	c, _ := args.Get(0).(*entity.Celebrity)
	return c, args.Error(1)
}

func (m *MockCelebrityRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockCelebrityRepo) FindAll(ctx context.Context, f entity.CelebrityFilter, limit, offset int) ([]*entity.Celebrity, error) {
	args := m.Called(ctx, f, limit, offset)
	c, _ := args.Get(0).([]*entity.Celebrity)
	return c, args.Error(1)
}

func (m *MockCelebrityRepo) Count(ctx context.Context, f entity.CelebrityFilter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCelebrityRepo) Update(ctx context.Context, celebrity *entity.Celebrity) error {
	return m.Called(ctx, celebrity).Error(0)
}

func (m *MockCelebrityRepo) RefreshRating(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCelebrityRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockBookingTypeRepo struct{ mock.Mock }

func (m *MockBookingTypeRepo) Create(ctx context.Context, bt *entity.BookingType) error {
	return m.Called(ctx, bt).Error(0)
}

func (m *MockBookingTypeRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.BookingType, error) {
	args := m.Called(ctx, id)
	bt, _ := args.Get(0).(*entity.BookingType)
	return bt, args.Error(1)
}

func (m *MockBookingTypeRepo) FindByCelebrity(ctx context.Context, celebrityID uuid.UUID) ([]*entity.BookingType, error) {
	args := m.Called(ctx, celebrityID)
	bt, _ := args.Get(0).([]*entity.BookingType)
	return bt, args.Error(1)
}

func (m *MockBookingTypeRepo) Delete(ctx context.Context, celebrityID, id uuid.UUID) error {
	return m.Called(ctx, celebrityID, id).Error(0)
}

type MockReviewRepo struct{ mock.Mock }

func (m *MockReviewRepo) Create(ctx context.Context, review *entity.CelebrityReview) error {
	return m.Called(ctx, review).Error(0)
}

func (m *MockReviewRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.CelebrityReview, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*entity.CelebrityReview)
	return r, args.Error(1)
}

func (m *MockReviewRepo) FindByCelebrity(ctx context.Context, celebrityID uuid.UUID, limit, offset int) ([]*entity.CelebrityReview, error) {
	args := m.Called(ctx, celebrityID, limit, offset)
	r, _ := args.Get(0).([]*entity.CelebrityReview)
	return r, args.Error(1)
}

func (m *MockReviewRepo) Stats(ctx context.Context, celebrityID uuid.UUID) (*entity.RatingStats, error) {
	args := m.Called(ctx, celebrityID)
	st, _ := args.Get(0).(*entity.RatingStats)
	return st, args.Error(1)
}

func (m *MockReviewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockDonationRepo struct{ mock.Mock }

func (m *MockDonationRepo) Create(ctx context.Context, d *entity.Donation) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDonationRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Donation, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*entity.Donation)
	return d, args.Error(1)
}

func (m *MockDonationRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Donation, error) {
	args := m.Called(ctx, userID, limit, offset)
	d, _ := args.Get(0).([]*entity.Donation)
	return d, args.Error(1)
}

func (m *MockDonationRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDonationRepo) FindAll(ctx context.Context, status *string, limit, offset int) ([]*entity.Donation, error) {
	args := m.Called(ctx, status, limit, offset)
	d, _ := args.Get(0).([]*entity.Donation)
	return d, args.Error(1)
}

func (m *MockDonationRepo) Count(ctx context.Context, status *string) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDonationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.DonationStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockDonationRepo) SummaryByCelebrity(ctx context.Context, celebrityID uuid.UUID) (*entity.DonationSummary, error) {
	args := m.Called(ctx, celebrityID)
	sum, _ := args.Get(0).(*entity.DonationSummary)
	return sum, args.Error(1)
}

type MockSupportTicketRepo struct{ mock.Mock }

func (m *MockSupportTicketRepo) Create(ctx context.Context, ticket *entity.SupportTicket) error {
	return m.Called(ctx, ticket).Error(0)
}

func (m *MockSupportTicketRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.SupportTicket, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*entity.SupportTicket)
	return t, args.Error(1)
}

func (m *MockSupportTicketRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.SupportTicket, error) {
	args := m.Called(ctx, userID, limit, offset)
	t, _ := args.Get(0).([]*entity.SupportTicket)
	return t, args.Error(1)
}

func (m *MockSupportTicketRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSupportTicketRepo) FindAll(ctx context.Context, status *string, limit, offset int) ([]*entity.SupportTicket, error) {
	args := m.Called(ctx, status, limit, offset)
	t, _ := args.Get(0).([]*entity.SupportTicket)
	return t, args.Error(1)
}

func (m *MockSupportTicketRepo) Count(ctx context.Context, status *string) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSupportTicketRepo) UpdateStatus(ctx context.Context, ticket *entity.SupportTicket) error {
	return m.Called(ctx, ticket).Error(0)
}

func (m *MockSupportTicketRepo) CreateReply(ctx context.Context, reply *entity.TicketReply) error {
	return m.Called(ctx, reply).Error(0)
}

func (m *MockSupportTicketRepo) FindReplies(ctx context.Context, ticketID uuid.UUID) ([]*entity.TicketReply, error) {
	args := m.Called(ctx, ticketID)
	r, _ := args.Get(0).([]*entity.TicketReply)
	return r, args.Error(1)
}

type MockBlogPostRepo struct{ mock.Mock }

func (m *MockBlogPostRepo) Create(ctx context.Context, post *entity.BlogPost) error {
	return m.Called(ctx, post).Error(0)
}

func (m *MockBlogPostRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.BlogPost, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*entity.BlogPost)
	return p, args.Error(1)
}

func (m *MockBlogPostRepo) FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*entity.BlogPost, error) {
	args := m.Called(ctx, slug, publishedOnly)
	p, _ := args.Get(0).(*entity.BlogPost)
	return p, args.Error(1)
}

func (m *MockBlogPostRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockBlogPostRepo) FindAll(ctx context.Context, f entity.BlogFilter, limit, offset int) ([]*entity.BlogPost, error) {
	args := m.Called(ctx, f, limit, offset)
	p, _ := args.Get(0).([]*entity.BlogPost)
	return p, args.Error(1)
}

func (m *MockBlogPostRepo) Count(ctx context.Context, f entity.BlogFilter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBlogPostRepo) Update(ctx context.Context, post *entity.BlogPost) error {
	return m.Called(ctx, post).Error(0)
}

func (m *MockBlogPostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockPlatformRepo struct{ mock.Mock }

func (m *MockPlatformRepo) Get(ctx context.Context) (*entity.Platform, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).(*entity.Platform)
	return p, args.Error(1)
}

func (m *MockPlatformRepo) Upsert(ctx context.Context, p *entity.Platform) error {
	return m.Called(ctx, p).Error(0)
}

type MockSettingsCache struct{ mock.Mock }

func (m *MockSettingsCache) Get(ctx context.Context) (*entity.Platform, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).(*entity.Platform)
	return p, args.Error(1)
}

func (m *MockSettingsCache) Set(ctx context.Context, p *entity.Platform) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockSettingsCache) Fill(ctx context.Context, p *entity.Platform) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockSettingsCache) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// decEq matches a decimal argument by value rather than representation.
func decEq(want decimal.Decimal) any {
	return mock.MatchedBy(func(got decimal.Decimal) bool { return got.Equal(want) })
}
