package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationType string

const (
	NotificationInfo       NotificationType = "info"
	NotificationBooking    NotificationType = "booking"
	NotificationPayment    NotificationType = "payment"
	NotificationMembership NotificationType = "membership"
	NotificationSupport    NotificationType = "support"
	NotificationSystem     NotificationType = "system"
)

type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Title     string             `bson:"title"`
	Message   string             `bson:"message"`
	Type      NotificationType   `bson:"type"`
	Link      string             `bson:"link,omitempty"`
	Read      bool               `bson:"read"`
	CreatedAt time.Time          `bson:"created_at"`
}
