package request

type BlogPostRequest struct {
	Title      string   `json:"title" validate:"required,max=200"`
	Excerpt    *string  `json:"excerpt,omitempty" validate:"omitempty,max=500"`
	Content    string   `json:"content" validate:"required"`
	CoverImage *string  `json:"cover_image,omitempty" validate:"omitempty,url"`
	Tags       []string `json:"tags" validate:"omitempty,max=20,dive,required,max=30"`
	Status     string   `json:"status" validate:"required,oneof=draft published"`
}

type BlogListRequest struct {
	PaginatedRequest
	Tag *string
}
