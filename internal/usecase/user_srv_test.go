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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUpdateProfile_StampsUpdatedAt(t *testing.T) {
	users := &MockUserRepo{}
	svc := NewUserService(&repository.Repository{User: users}, &fakeTx{}, &stubAudit{}, zap.NewNop())
	ctx := context.Background()

	old := time.Now().Add(-30 * 24 * time.Hour)
	user := &entity.User{Base: entity.NewBase(), Username: "ada", Email: "ada@example.com", Role: entity.RoleCustomer}
	user.UpdatedAt = old
	name := "Ada Lovelace"

	users.On("FindByID", ctx, user.ID).Return(user, nil)
	users.On("Update", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.UpdatedAt.After(old) && u.FullName != nil && *u.FullName == name
	})).Return(nil)

	_, err := svc.UpdateProfile(ctx, user.ID, &request.UpdateProfileRequest{FullName: &name})
	require.NoError(t, err)
	users.AssertExpectations(t)
}

func TestUpdateProfile_UsernameTaken(t *testing.T) {
	users := &MockUserRepo{}
	svc := NewUserService(&repository.Repository{User: users}, &fakeTx{}, &stubAudit{}, zap.NewNop())
	ctx := context.Background()

	user := &entity.User{Base: entity.NewBase(), Username: "ada", Email: "ada@example.com", Role: entity.RoleCustomer}
	other := &entity.User{Base: entity.NewBase(), Username: "grace"}
	username := "grace"

	users.On("FindByID", ctx, user.ID).Return(user, nil)
	users.On("FindByUsername", ctx, username).Return(other, nil)

	_, err := svc.UpdateProfile(ctx, user.ID, &request.UpdateProfileRequest{Username: &username})
	assert.Equal(t, http.StatusConflict, utils.StatusCode(err))
	users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	users := &MockUserRepo{}
	svc := NewUserService(&repository.Repository{User: users}, &fakeTx{}, &stubAudit{}, zap.NewNop())
	ctx := context.Background()
	id := uuid.New()

	users.On("FindByID", ctx, id).Return(nil, nil)

	_, err := svc.UpdateProfile(ctx, id, &request.UpdateProfileRequest{})
	assert.Equal(t, http.StatusNotFound, utils.StatusCode(err))
}
