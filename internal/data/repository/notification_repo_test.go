package repository

import (
	"context"
	"testing"
	"time"

	"celebrity-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.uber.org/zap"
)

func TestNotificationRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create assigns id", func(mt *mtest.T) {
		repo := NewNotificationRepository(mt.Coll, zap.NewNop())
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		n := &entity.Notification{UserID: "u1", Title: "Booking approved", Type: entity.NotificationBooking}
		require.NoError(mt, repo.Create(context.Background(), n))
		assert.False(mt, n.ID.IsZero())
		assert.False(mt, n.CreatedAt.IsZero())
	})

	mt.Run("find by user", func(mt *mtest.T) {
		repo := NewNotificationRepository(mt.Coll, zap.NewNop())
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()

		first := mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "user_id", Value: "u1"},
			{Key: "title", Value: "Welcome"},
			{Key: "type", Value: "info"},
			{Key: "read", Value: false},
			{Key: "created_at", Value: time.Now()},
		})
		end := mtest.CreateCursorResponse(0, ns, mtest.NextBatch)
		mt.AddMockResponses(first, end)

		out, err := repo.FindByUser(context.Background(), "u1", true, 10, 0)
		require.NoError(mt, err)
		require.Len(mt, out, 1)
		assert.Equal(mt, "Welcome", out[0].Title)
		assert.Equal(mt, entity.NotificationInfo, out[0].Type)
	})

	mt.Run("mark read of another user", func(mt *mtest.T) {
		repo := NewNotificationRepository(mt.Coll, zap.NewNop())
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		ok, err := repo.MarkRead(context.Background(), primitive.NewObjectID(), "u2")
		require.NoError(mt, err)
		assert.False(mt, ok)
	})

	mt.Run("delete", func(mt *mtest.T) {
		repo := NewNotificationRepository(mt.Coll, zap.NewNop())
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		ok, err := repo.Delete(context.Background(), primitive.NewObjectID(), "u1")
		require.NoError(mt, err)
		assert.True(mt, ok)
	})

	mt.Run("reads are scoped to the owner", func(mt *mtest.T) {
		repo := NewNotificationRepository(mt.Coll, zap.NewNop())
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.FindByUser(context.Background(), "u1", true, 10, 0)
		require.NoError(mt, err)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "find", evt.CommandName)
		assert.Equal(mt, "u1", evt.Command.Lookup("filter", "user_id").StringValue())
		assert.False(mt, evt.Command.Lookup("filter", "read").Boolean())
	})

	mt.Run("count is scoped to the owner", func(mt *mtest.T) {
		repo := NewNotificationRepository(mt.Coll, zap.NewNop())
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(2)}}))

		n, err := repo.CountByUser(context.Background(), "u1", false)
		require.NoError(mt, err)
		assert.Equal(mt, int64(2), n)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "u1", evt.Command.Lookup("pipeline", "0", "$match", "user_id").StringValue())
	})

	mt.Run("writes are scoped to the owner", func(mt *mtest.T) {
		repo := NewNotificationRepository(mt.Coll, zap.NewNop())
		id := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 3}, bson.E{Key: "nModified", Value: 3}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
		)

		ok, err := repo.MarkRead(context.Background(), id, "u1")
		require.NoError(mt, err)
		assert.True(mt, ok)
		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "u1", evt.Command.Lookup("updates", "0", "q", "user_id").StringValue())
		assert.Equal(mt, id, evt.Command.Lookup("updates", "0", "q", "_id").ObjectID())

		n, err := repo.MarkAllRead(context.Background(), "u1")
		require.NoError(mt, err)
		assert.Equal(mt, int64(3), n)
		evt = mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "u1", evt.Command.Lookup("updates", "0", "q", "user_id").StringValue())

		ok, err = repo.Delete(context.Background(), id, "u1")
		require.NoError(mt, err)
		assert.True(mt, ok)
		evt = mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "delete", evt.CommandName)
		assert.Equal(mt, "u1", evt.Command.Lookup("deletes", "0", "q", "user_id").StringValue())
	})

	mt.Run("insert failure", func(mt *mtest.T) {
		repo := NewNotificationRepository(mt.Coll, zap.NewNop())
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key"}))

		err := repo.Create(context.Background(), &entity.Notification{UserID: "u1"})
		assert.Error(mt, err)
	})
}

func TestAuditRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create", func(mt *mtest.T) {
		repo := NewAuditRepository(mt.Coll, zap.NewNop())
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		a := &entity.Audit{ActorID: "admin", Action: entity.AuditActionStatusChange, Entity: "booking", EntityID: "b1"}
		require.NoError(mt, repo.Create(context.Background(), a))
		assert.False(mt, a.ID.IsZero())
	})

	mt.Run("find all filtered", func(mt *mtest.T) {
		repo := NewAuditRepository(mt.Coll, zap.NewNop())
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "actor_id", Value: "admin"},
				{Key: "action", Value: "delete"},
				{Key: "entity", Value: "celebrity"},
				{Key: "entity_id", Value: "c1"},
				{Key: "created_at", Value: time.Now()},
			}),
			mtest.CreateCursorResponse(0, ns, mtest.NextBatch),
		)

		entityName := "celebrity"
		out, err := repo.FindAll(context.Background(), entity.AuditFilter{Entity: &entityName}, 20, 0)
		require.NoError(mt, err)
		require.Len(mt, out, 1)
		assert.Equal(mt, entity.AuditActionDelete, out[0].Action)
	})
}
