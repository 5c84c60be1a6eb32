package request

// BroadcastNotificationRequest targets user_ids, or every active user when all is set.
type BroadcastNotificationRequest struct {
	UserIDs []string `json:"user_ids,omitempty" validate:"required_without=All,omitempty,dive,uuid"`
	All     bool     `json:"all"`
	Title   string   `json:"title" validate:"required,max=200"`
	Message string   `json:"message" validate:"required,max=2000"`
	Type    string   `json:"type" validate:"omitempty,oneof=info booking payment membership support system"`
	Link    string   `json:"link,omitempty" validate:"omitempty,max=500"`
}

type NotificationListRequest struct {
	PaginatedRequest
	UnreadOnly bool
}
