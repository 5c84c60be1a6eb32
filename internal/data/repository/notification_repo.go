package repository

import (
	"context"
	"fmt"
	"time"

	"celebrity-booking/internal/data/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	CreateMany(ctx context.Context, ns []*entity.Notification) error
	FindByUser(ctx context.Context, userID string, unreadOnly bool, limit, offset int) ([]*entity.Notification, error)
	CountByUser(ctx context.Context, userID string, unreadOnly bool) (int64, error)
	MarkRead(ctx context.Context, id primitive.ObjectID, userID string) (bool, error)
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID, userID string) (bool, error)
}

type notificationRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewNotificationRepository(coll *mongo.Collection, log *zap.Logger) NotificationRepository {
	return &notificationRepository{
		coll: coll,
		log:  log.With(zap.String("repository", "notification")),
	}
}

// Create fills in ID and CreatedAt when unset.
func (r *notificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	if n.ID.IsZero() {
		n.ID = primitive.NewObjectID()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, n); err != nil {
		r.log.Error("Failed to insert notification", zap.Error(err), zap.String("user_id", n.UserID))
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

func (r *notificationRepository) CreateMany(ctx context.Context, ns []*entity.Notification) error {
	if len(ns) == 0 {
		return nil
	}

	now := time.Now()
	docs := make([]any, 0, len(ns))
	for _, n := range ns {
		if n.ID.IsZero() {
			n.ID = primitive.NewObjectID()
		}
		if n.CreatedAt.IsZero() {
			n.CreatedAt = now
		}
		docs = append(docs, n)
	}

	if _, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false)); err != nil {
		r.log.Error("Failed to insert notifications", zap.Error(err), zap.Int("count", len(docs)))
		return fmt.Errorf("insert notifications: %w", err)
	}
	return nil
}

func userQuery(userID string, unreadOnly bool) bson.M {
	q := bson.M{"user_id": userID}
	if unreadOnly {
		q["read"] = false
	}
	return q
}

func (r *notificationRepository) FindByUser(ctx context.Context, userID string, unreadOnly bool, limit, offset int) ([]*entity.Notification, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cursor, err := r.coll.Find(ctx, userQuery(userID, unreadOnly), opts)
	if err != nil {
		r.log.Error("Failed to list notifications", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*entity.Notification
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode notifications: %w", err)
	}
	return out, nil
}

func (r *notificationRepository) CountByUser(ctx context.Context, userID string, unreadOnly bool) (int64, error) {
	total, err := r.coll.CountDocuments(ctx, userQuery(userID, unreadOnly))
	if err != nil {
		r.log.Error("Failed to count notifications", zap.Error(err), zap.String("user_id", userID))
		return 0, fmt.Errorf("count notifications: %w", err)
	}
	return total, nil
}

// MarkRead reports false when no notification of the user has that id.
func (r *notificationRepository) MarkRead(ctx context.Context, id primitive.ObjectID, userID string) (bool, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "user_id": userID},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		r.log.Error("Failed to mark notification read", zap.Error(err), zap.String("id", id.Hex()))
		return false, fmt.Errorf("mark notification read: %w", err)
	}
	return res.MatchedCount > 0, nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	res, err := r.coll.UpdateMany(ctx,
		bson.M{"user_id": userID, "read": false},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		r.log.Error("Failed to mark all notifications read", zap.Error(err), zap.String("user_id", userID))
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}
	return res.ModifiedCount, nil
}

func (r *notificationRepository) Delete(ctx context.Context, id primitive.ObjectID, userID string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		r.log.Error("Failed to delete notification", zap.Error(err), zap.String("id", id.Hex()))
		return false, fmt.Errorf("delete notification: %w", err)
	}
	return res.DeletedCount > 0, nil
}
