package response

// PaginatedResponse is the envelope every list endpoint returns as data.
type PaginatedResponse[T any] struct {
	Items      []T            `json:"items"`
	Pagination PaginationMeta `json:"pagination"`
}

type PaginationMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

func NewPaginatedResponse[T any](items []T, page, perPage int, total int64) *PaginatedResponse[T] {
	if items == nil {
		items = []T{}
	}
	meta := PaginationMeta{Total: total, Page: page, PerPage: perPage}
	if perPage > 0 {
		meta.TotalPages = int((total + int64(perPage) - 1) / int64(perPage))
	}
	meta.HasNext = page < meta.TotalPages
	return &PaginatedResponse[T]{Items: items, Pagination: meta}
}
