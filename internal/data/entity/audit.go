package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AuditAction string

const (
	AuditActionCreate         AuditAction = "create"
	AuditActionUpdate         AuditAction = "update"
	AuditActionDelete         AuditAction = "delete"
	AuditActionStatusChange   AuditAction = "status_change"
	AuditActionLoginAs        AuditAction = "login_as"
	AuditActionSettingsUpdate AuditAction = "settings_update"
)

// Audit records one admin action. Stored in the audits collection.
type Audit struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ActorID   string             `bson:"actor_id"`
	Action    AuditAction        `bson:"action"`
	Entity    string             `bson:"entity"`
	EntityID  string             `bson:"entity_id"`
	Changes   map[string]any     `bson:"changes,omitempty"`
	IP        string             `bson:"ip,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

type AuditFilter struct {
	Entity  *string
	Action  *string
	ActorID *string
}
