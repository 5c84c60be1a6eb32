package usecase

import (
	"context"
	"errors"
	"time"

	"celebrity-booking/internal/data/entity"
	"celebrity-booking/internal/data/repository"
	"celebrity-booking/internal/dto/request"
	"celebrity-booking/internal/dto/response"
	"celebrity-booking/pkg/database"
	"celebrity-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error)

	// Admin
	List(ctx context.Context, req *request.UserListRequest) (*response.PaginatedResponse[response.UserResponse], error)
	GetByID(ctx context.Context, id uuid.UUID) (*response.UserResponse, error)
	AdminUpdate(ctx context.Context, id uuid.UUID, req *request.AdminUpdateUserRequest) (*response.UserResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	repo  *repository.Repository
	tx    database.TxManager
	audit AuditService
	log   *zap.Logger
}

func NewUserService(repo *repository.Repository, tx database.TxManager, audit AuditService, log *zap.Logger) UserService {
	return &userService{
		repo:  repo,
		tx:    tx,
		audit: audit,
		log:   log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	return s.GetByID(ctx, userID)
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	user, err := s.find(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Username != nil && *req.Username != user.Username {
		taken, err := s.repo.User.FindByUsername(ctx, *req.Username)
		if err != nil {
			s.log.Error("Failed to check username", zap.Error(err))
			return nil, utils.ErrInternal(err, "failed to update profile")
		}
		if taken != nil && taken.ID != user.ID {
			return nil, utils.ErrConflict("username already taken")
		}
		user.Username = *req.Username
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.FullName != nil {
		user.FullName = req.FullName
	}
	if req.AvatarURL != nil {
		user.AvatarURL = req.AvatarURL
	}

	user.UpdatedAt = time.Now()
	if err := s.repo.User.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, utils.ErrConflict("username already taken")
		}
		s.log.Error("Failed to update profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, utils.ErrInternal(err, "failed to update profile")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) List(ctx context.Context, req *request.UserListRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	f := entity.UserFilter{Search: req.Search, Role: req.Role}

	users, err := s.repo.User.FindAll(ctx, f, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list users", zap.Error(err))
		return nil, utils.ErrInternal(err, "failed to list users")
	}

	total, err := s.repo.User.Count(ctx, f)
	if err != nil {
		s.log.Error("Failed to count users", zap.Error(err))
		return nil, utils.ErrInternal(err, "failed to list users")
	}

	return paginate(users, response.UserToResponse, req.PaginatedRequest, total), nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*response.UserResponse, error) {
	user, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) AdminUpdate(ctx context.Context, id uuid.UUID, req *request.AdminUpdateUserRequest) (*response.UserResponse, error) {
	if actor, ok := utils.GetUserIDFromContext(ctx); ok && actor == id {
		return nil, utils.ErrBadRequest("admins cannot change their own role or status")
	}

	user, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := map[string]any{}
	if req.Role != nil && entity.UserRole(*req.Role) != user.Role {
		changes["role"] = *req.Role
		user.Role = entity.UserRole(*req.Role)
	}
	if req.IsActive != nil && *req.IsActive != user.IsActive {
		changes["is_active"] = *req.IsActive
		user.IsActive = *req.IsActive
	}

	user.UpdatedAt = time.Now()
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.User.Update(ctx, user); err != nil {
			return err
		}
		if !user.IsActive {
			return s.repo.Session.RevokeAllUserSessions(ctx, user.ID)
		}
		return nil
	})
	if err != nil {
		s.log.Error("Failed to update user", zap.Error(err), zap.String("user_id", id.String()))
		return nil, utils.ErrInternal(err, "failed to update user")
	}

	if len(changes) > 0 {
		s.audit.Record(ctx, entity.AuditActionUpdate, "user", id.String(), changes)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	if actor, ok := utils.GetUserIDFromContext(ctx); ok && actor == id {
		return utils.ErrBadRequest("admins cannot delete their own account")
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.User.Delete(ctx, id); err != nil {
			return err
		}
		return s.repo.Session.RevokeAllUserSessions(ctx, id)
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ErrNotFound("user not found")
		}
		s.log.Error("Failed to delete user", zap.Error(err), zap.String("user_id", id.String()))
		return utils.ErrInternal(err, "failed to delete user")
	}

	s.audit.Record(ctx, entity.AuditActionDelete, "user", id.String(), nil)
	s.log.Info("User deleted", zap.String("user_id", id.String()))
	return nil
}

func (s *userService) find(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", id.String()))
		return nil, utils.ErrInternal(err, "failed to load user")
	}
	if user == nil {
		return nil, utils.ErrNotFound("user not found")
	}
	return user, nil
}
