package request

type AuditListRequest struct {
	PaginatedRequest
	Entity  *string
	Action  *string `validate:"omitempty,oneof=create update delete status_change login_as settings_update"`
	ActorID *string `validate:"omitempty,uuid"`
}
