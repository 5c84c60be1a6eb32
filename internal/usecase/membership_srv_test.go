package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"celebrity-booking/internal/data/entity"
	"celebrity-booking/internal/data/repository"
	"celebrity-booking/internal/dto/request"
	"celebrity-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type membershipFixture struct {
	svc         MembershipService
	plans       *MockMembershipPlanRepo
	memberships *MockMembershipRepo
	users       *MockUserRepo
	txns        *MockTransactionRepo
	audit       *stubAudit
	tx          *fakeTx
}

func newMembershipFixture() *membershipFixture {
	f := &membershipFixture{
		plans:       &MockMembershipPlanRepo{},
		memberships: &MockMembershipRepo{},
		users:       &MockUserRepo{},
		txns:        &MockTransactionRepo{},
		audit:       &stubAudit{},
		tx:          &fakeTx{},
	}
	repo := &repository.Repository{
		MembershipPlan: f.plans,
		Membership:     f.memberships,
		User:           f.users,
		Transaction:    f.txns,
	}
	f.svc = NewMembershipService(repo, f.tx, &stubNotify{}, f.audit, zap.NewNop())
	return f
}

func goldPlan(price int64) *entity.MembershipPlan {
	return &entity.MembershipPlan{
		Base:         entity.NewBase(),
		Name:         "Gold",
		Price:        decimal.NewFromInt(price),
		DurationDays: 30,
		IsActive:     true,
	}
}

func TestSubscribe_WalletActivatesImmediately(t *testing.T) {
	f := newMembershipFixture()
	ctx := context.Background()
	userID := uuid.New()
	plan := goldPlan(20)

	f.plans.On("FindByID", ctx, plan.ID).Return(plan, nil)
	f.memberships.On("FindOpenByUserID", ctx, userID).Return(nil, nil)
	f.users.On("AdjustBalance", ctx, userID, decEq(decimal.NewFromInt(-20))).Return(decimal.NewFromInt(80), nil)
	f.txns.On("Create", ctx, mock.MatchedBy(func(tx *entity.Transaction) bool {
		return tx.Type == entity.TransactionTypeMembership && tx.Direction == entity.DirectionDebit
	})).Return(nil)
	f.memberships.On("Create", ctx, mock.AnythingOfType("*entity.Membership")).Return(nil)

	resp, err := f.svc.Subscribe(ctx, userID, &request.CreateMembershipRequest{PlanID: plan.ID.String(), PayWithWallet: true})
	require.NoError(t, err)
	assert.Equal(t, entity.MembershipStatusActive, resp.Status)
	require.NotNil(t, resp.StartsAt)
	require.NotNil(t, resp.EndsAt)
	assert.WithinDuration(t, resp.StartsAt.AddDate(0, 0, 30), *resp.EndsAt, time.Second)
	require.NotNil(t, resp.Plan)
	assert.Equal(t, "Gold", resp.Plan.Name)
}

func TestSubscribe_PendingWithoutWallet(t *testing.T) {
	f := newMembershipFixture()
	ctx := context.Background()
	userID := uuid.New()
	plan := goldPlan(20)

	f.plans.On("FindByID", ctx, plan.ID).Return(plan, nil)
	f.memberships.On("FindOpenByUserID", ctx, userID).Return(nil, nil)
	f.memberships.On("Create", ctx, mock.AnythingOfType("*entity.Membership")).Return(nil)

	resp, err := f.svc.Subscribe(ctx, userID, &request.CreateMembershipRequest{PlanID: plan.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, entity.MembershipStatusPending, resp.Status)
	assert.Nil(t, resp.StartsAt)
	f.users.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubscribe_OpenMembershipConflicts(t *testing.T) {
	f := newMembershipFixture()
	ctx := context.Background()
	userID := uuid.New()
	plan := goldPlan(20)
	open := &entity.Membership{BaseNoDelete: entity.NewBaseNoDelete(), UserID: userID, Status: entity.MembershipStatusActive}

	f.plans.On("FindByID", ctx, plan.ID).Return(plan, nil)
	f.memberships.On("FindOpenByUserID", ctx, userID).Return(open, nil)

	_, err := f.svc.Subscribe(ctx, userID, &request.CreateMembershipRequest{PlanID: plan.ID.String(), PayWithWallet: true})
	assert.Equal(t, http.StatusConflict, utils.StatusCode(err))
	f.memberships.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubscribe_InactivePlan(t *testing.T) {
	f := newMembershipFixture()
	ctx := context.Background()
	plan := goldPlan(20)
	plan.IsActive = false

	f.plans.On("FindByID", ctx, plan.ID).Return(plan, nil)

	_, err := f.svc.Subscribe(ctx, uuid.New(), &request.CreateMembershipRequest{PlanID: plan.ID.String()})
	assert.Equal(t, http.StatusBadRequest, utils.StatusCode(err))
}

func TestMembershipUpdateStatus(t *testing.T) {
	tests := []struct {
		name       string
		from       entity.MembershipStatus
		to         string
		wantActive bool
		wantStatus int
	}{
		{"activate pending", entity.MembershipStatusPending, "active", true, 0},
		{"expire active", entity.MembershipStatusActive, "expired", false, 0},
		{"expire pending", entity.MembershipStatusPending, "expired", false, http.StatusBadRequest},
		{"revive rejected", entity.MembershipStatusRejected, "active", false, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newMembershipFixture()
			ctx := context.Background()
			plan := goldPlan(20)
			m := &entity.Membership{BaseNoDelete: entity.NewBaseNoDelete(), UserID: uuid.New(), PlanID: plan.ID, Status: tt.from}

			f.memberships.On("FindByIDForUpdate", ctx, m.ID).Return(m, nil)
			f.plans.On("FindByID", ctx, plan.ID).Return(plan, nil)
			f.memberships.On("Update", ctx, m).Return(nil)

			resp, err := f.svc.UpdateStatus(ctx, m.ID, &request.UpdateMembershipStatusRequest{Status: tt.to})
			if tt.wantStatus != 0 {
				assert.Equal(t, tt.wantStatus, utils.StatusCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entity.MembershipStatus(tt.to), resp.Status)
			assert.Equal(t, tt.wantActive, resp.EndsAt != nil)
			require.Len(t, f.audit.calls, 1)
		})
	}
}

func TestCancelMembership_NotOwner(t *testing.T) {
	f := newMembershipFixture()
	ctx := context.Background()
	m := &entity.Membership{BaseNoDelete: entity.NewBaseNoDelete(), UserID: uuid.New(), Status: entity.MembershipStatusPending}

	f.memberships.On("FindByIDForUpdate", ctx, m.ID).Return(m, nil)

	_, err := f.svc.Cancel(ctx, uuid.New(), m.ID)
	assert.Equal(t, http.StatusForbidden, utils.StatusCode(err))
}

func TestCancelMembership_LocksRowInTx(t *testing.T) {
	f := newMembershipFixture()
	ctx := context.Background()
	userID := uuid.New()
	m := &entity.Membership{BaseNoDelete: entity.NewBaseNoDelete(), UserID: userID, Status: entity.MembershipStatusPending}
	m.UpdatedAt = time.Now().Add(-time.Hour)
	before := m.UpdatedAt

	f.memberships.On("FindByIDForUpdate", ctx, m.ID).Return(m, nil)
	f.memberships.On("Update", ctx, m).Return(nil)

	resp, err := f.svc.Cancel(ctx, userID, m.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.MembershipStatusCancelled, resp.Status)
	assert.True(t, m.UpdatedAt.After(before))
	assert.Equal(t, 1, f.tx.calls)
	f.memberships.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestCancelMembership_AlreadyActivated(t *testing.T) {
	f := newMembershipFixture()
	ctx := context.Background()
	userID := uuid.New()
	m := &entity.Membership{BaseNoDelete: entity.NewBaseNoDelete(), UserID: userID, Status: entity.MembershipStatusExpired}

	f.memberships.On("FindByIDForUpdate", ctx, m.ID).Return(m, nil)

	_, err := f.svc.Cancel(ctx, userID, m.ID)
	assert.Equal(t, http.StatusBadRequest, utils.StatusCode(err))
	f.memberships.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestMembershipUpdateStatus_Missing(t *testing.T) {
	f := newMembershipFixture()
	ctx := context.Background()
	id := uuid.New()

	f.memberships.On("FindByIDForUpdate", ctx, id).Return(nil, nil)

	_, err := f.svc.UpdateStatus(ctx, id, &request.UpdateMembershipStatusRequest{Status: "active"})
	assert.Equal(t, http.StatusNotFound, utils.StatusCode(err))
}

func TestUpdatePlan_StampsUpdatedAt(t *testing.T) {
	f := newMembershipFixture()
	ctx := context.Background()
	plan := goldPlan(20)
	old := time.Now().Add(-30 * 24 * time.Hour)
	plan.UpdatedAt = old

	f.plans.On("FindByID", ctx, plan.ID).Return(plan, nil)
	f.plans.On("Update", ctx, mock.MatchedBy(func(p *entity.MembershipPlan) bool {
		return p.UpdatedAt.After(old) && p.Price.Equal(decimal.NewFromInt(25))
	})).Return(nil)

	_, err := f.svc.UpdatePlan(ctx, plan.ID, &request.MembershipPlanRequest{Name: "Gold", Price: decimal.NewFromInt(25), DurationDays: 30})
	require.NoError(t, err)
	f.plans.AssertExpectations(t)
}
