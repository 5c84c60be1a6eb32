package request

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

type PaginatedRequest struct {
	Page    int `json:"page" validate:"min=1"`
	PerPage int `json:"per_page" validate:"min=1,max=100"`
}

// Normalize clamps out-of-range query values instead of rejecting them.
func (p PaginatedRequest) Normalize() PaginatedRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	p.PerPage = p.Limit()
	return p
}

func (p PaginatedRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit()
}

func (p PaginatedRequest) Limit() int {
	switch {
	case p.PerPage < 1:
		return DefaultPerPage
	case p.PerPage > MaxPerPage:
		return MaxPerPage
	}
	return p.PerPage
}
