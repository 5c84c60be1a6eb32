package usecase

import (
	"context"
	"time"

	"celebrity-booking/internal/data/entity"
	"celebrity-booking/internal/data/repository"
	"celebrity-booking/internal/dto/request"
	"celebrity-booking/internal/dto/response"
	"celebrity-booking/pkg/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const broadcastBatch = 500

// Publisher pushes an event to a user's live connections.
type Publisher interface {
	Publish(userID string, v any)
}

type NotificationService interface {
	// Notify stores and pushes a notification; failures are logged only.
	Notify(ctx context.Context, userID uuid.UUID, nType entity.NotificationType, title, message, link string)
	List(ctx context.Context, userID uuid.UUID, req *request.NotificationListRequest) (*response.PaginatedResponse[response.NotificationResponse], error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (*response.CountResponse, error)
	MarkRead(ctx context.Context, userID uuid.UUID, id string) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (*response.CountResponse, error)
	Delete(ctx context.Context, userID uuid.UUID, id string) error
	Broadcast(ctx context.Context, req *request.BroadcastNotificationRequest) (*response.CountResponse, error)
}

type notificationService struct {
	repo  repository.NotificationRepository
	users repository.UserRepository
	hub   Publisher
	log   *zap.Logger
}

func NewNotificationService(repo repository.NotificationRepository, users repository.UserRepository, hub Publisher, log *zap.Logger) NotificationService {
	return &notificationService{
		repo:  repo,
		users: users,
		hub:   hub,
		log:   log.With(zap.String("service", "notification")),
	}
}

func (s *notificationService) Notify(ctx context.Context, userID uuid.UUID, nType entity.NotificationType, title, message, link string) {
	n := &entity.Notification{
		UserID:    userID.String(),
		Title:     title,
		Message:   message,
		Type:      nType,
		Link:      link,
		CreatedAt: time.Now(),
	}

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sideEffectTimeout)
	defer cancel()

	if err := s.repo.Create(writeCtx, n); err != nil {
		s.log.Error("Failed to store notification", zap.Error(err), zap.String("user_id", n.UserID))
		return
	}
	s.publish(n)
}

func (s *notificationService) publish(n *entity.Notification) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(n.UserID, response.NotificationToResponse(n))
}

func (s *notificationService) List(ctx context.Context, userID uuid.UUID, req *request.NotificationListRequest) (*response.PaginatedResponse[response.NotificationResponse], error) {
	items, err := s.repo.FindByUser(ctx, userID.String(), req.UnreadOnly, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list notifications", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, utils.ErrInternal(err, "failed to list notifications")
	}

	total, err := s.repo.CountByUser(ctx, userID.String(), req.UnreadOnly)
	if err != nil {
		s.log.Error("Failed to count notifications", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, utils.ErrInternal(err, "failed to list notifications")
	}

	return paginate(items, response.NotificationToResponse, req.PaginatedRequest, total), nil
}

func (s *notificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (*response.CountResponse, error) {
	n, err := s.repo.CountByUser(ctx, userID.String(), true)
	if err != nil {
		s.log.Error("Failed to count unread notifications", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, utils.ErrInternal(err, "failed to count notifications")
	}
	return &response.CountResponse{Count: n}, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID uuid.UUID, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.ErrNotFound("notification not found")
	}

	found, err := s.repo.MarkRead(ctx, oid, userID.String())
	if err != nil {
		s.log.Error("Failed to mark notification read", zap.Error(err), zap.String("id", id))
		return utils.ErrInternal(err, "failed to update notification")
	}
	if !found {
		return utils.ErrNotFound("notification not found")
	}
	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) (*response.CountResponse, error) {
	n, err := s.repo.MarkAllRead(ctx, userID.String())
	if err != nil {
		s.log.Error("Failed to mark all notifications read", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, utils.ErrInternal(err, "failed to update notifications")
	}
	return &response.CountResponse{Count: n}, nil
}

func (s *notificationService) Delete(ctx context.Context, userID uuid.UUID, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.ErrNotFound("notification not found")
	}

	found, err := s.repo.Delete(ctx, oid, userID.String())
	if err != nil {
		s.log.Error("Failed to delete notification", zap.Error(err), zap.String("id", id))
		return utils.ErrInternal(err, "failed to delete notification")
	}
	if !found {
		return utils.ErrNotFound("notification not found")
	}
	return nil
}

func (s *notificationService) Broadcast(ctx context.Context, req *request.BroadcastNotificationRequest) (*response.CountResponse, error) {
	nType := entity.NotificationType(req.Type)
	if nType == "" {
		nType = entity.NotificationSystem
	}

	recipients := req.UserIDs
	if req.All {
		ids, err := s.activeUserIDs(ctx)
		if err != nil {
			return nil, err
		}
		recipients = ids
	}

	now := time.Now()
	batch := make([]*entity.Notification, 0, len(recipients))
	for _, id := range recipients {
		batch = append(batch, &entity.Notification{
			UserID:    id,
			Title:     req.Title,
			Message:   req.Message,
			Type:      nType,
			Link:      req.Link,
			CreatedAt: now,
		})
	}
	if len(batch) == 0 {
		return &response.CountResponse{}, nil
	}

	if err := s.repo.CreateMany(ctx, batch); err != nil {
		s.log.Error("Failed to broadcast notifications", zap.Error(err), zap.Int("recipients", len(batch)))
		return nil, utils.ErrInternal(err, "failed to send notifications")
	}
	for _, n := range batch {
		s.publish(n)
	}

	s.log.Info("Notifications broadcast", zap.Int("recipients", len(batch)), zap.String("type", string(nType)))
	return &response.CountResponse{Count: int64(len(batch))}, nil
}

func (s *notificationService) activeUserIDs(ctx context.Context) ([]string, error) {
	var ids []string
	for offset := 0; ; offset += broadcastBatch {
		users, err := s.users.FindAll(ctx, entity.UserFilter{}, broadcastBatch, offset)
		if err != nil {
			s.log.Error("Failed to load broadcast recipients", zap.Error(err))
			return nil, utils.ErrInternal(err, "failed to load recipients")
		}
		for _, u := range users {
			if u.IsActive {
				ids = append(ids, u.ID.String())
			}
		}
		if len(users) < broadcastBatch {
			return ids, nil
		}
	}
}
