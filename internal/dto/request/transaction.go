package request

type TransactionListRequest struct {
	PaginatedRequest
	UserID *string `validate:"omitempty,uuid"`
	Type   *string `validate:"omitempty,oneof=deposit booking donation membership refund adjustment"`
}
