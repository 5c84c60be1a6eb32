package database

import (
	"context"
	"fmt"
	"time"

	"celebrity-booking/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionAudits        = "audits"
	CollectionNotifications = "notifications"
)

// InitMongo connects, pings and makes sure the indexes used by the
// document repositories exist.
func InitMongo(ctx context.Context, config utils.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().
		ApplyURI(config.URI).
		SetMaxPoolSize(50).
		SetServerSelectionTimeout(5*time.Second))
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}

	db := client.Database(config.Database)
	if err := ensureIndexes(connectCtx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}

	return client, db, nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(CollectionNotifications).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "read", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create notification indexes: %w", err)
	}

	_, err = db.Collection(CollectionAudits).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "entity", Value: 1}, {Key: "entity_id", Value: 1}}},
		{Keys: bson.D{{Key: "actor_id", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create audit indexes: %w", err)
	}

	return nil
}
