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

type AuditRepository interface {
	Create(ctx context.Context, audit *entity.Audit) error
	FindAll(ctx context.Context, f entity.AuditFilter, limit, offset int) ([]*entity.Audit, error)
	Count(ctx context.Context, f entity.AuditFilter) (int64, error)
}

type auditRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewAuditRepository(coll *mongo.Collection, log *zap.Logger) AuditRepository {
	return &auditRepository{
		coll: coll,
		log:  log.With(zap.String("repository", "audit")),
	}
}

func (r *auditRepository) Create(ctx context.Context, audit *entity.Audit) error {
	if audit.ID.IsZero() {
		audit.ID = primitive.NewObjectID()
	}
	if audit.CreatedAt.IsZero() {
		audit.CreatedAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, audit); err != nil {
		r.log.Error("Failed to insert audit",
			zap.Error(err),
			zap.String("entity", audit.Entity),
			zap.String("action", string(audit.Action)),
		)
		return fmt.Errorf("insert audit: %w", err)
	}
	return nil
}

func auditQuery(f entity.AuditFilter) bson.M {
	q := bson.M{}
	if f.Entity != nil && *f.Entity != "" {
		q["entity"] = *f.Entity
	}
	if f.Action != nil && *f.Action != "" {
		q["action"] = *f.Action
	}
	if f.ActorID != nil && *f.ActorID != "" {
		q["actor_id"] = *f.ActorID
	}
	return q
}

func (r *auditRepository) FindAll(ctx context.Context, f entity.AuditFilter, limit, offset int) ([]*entity.Audit, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cursor, err := r.coll.Find(ctx, auditQuery(f), opts)
	if err != nil {
		r.log.Error("Failed to list audits", zap.Error(err))
		return nil, fmt.Errorf("list audits: %w", err)
	}
	defer cursor.Close(ctx)

	var audits []*entity.Audit
	if err := cursor.All(ctx, &audits); err != nil {
		r.log.Error("Failed to decode audits", zap.Error(err))
		return nil, fmt.Errorf("decode audits: %w", err)
	}
	return audits, nil
}

func (r *auditRepository) Count(ctx context.Context, f entity.AuditFilter) (int64, error) {
	total, err := r.coll.CountDocuments(ctx, auditQuery(f))
	if err != nil {
		r.log.Error("Failed to count audits", zap.Error(err))
		return 0, fmt.Errorf("count audits: %w", err)
	}
	return total, nil
}
