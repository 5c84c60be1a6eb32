package entity

import (
	"time"

	"github.com/google/uuid"
)

type BlogStatus string

const (
	BlogStatusDraft     BlogStatus = "draft"
	BlogStatusPublished BlogStatus = "published"
)

type BlogPost struct {
	Base
	AuthorID    uuid.UUID  `db:"author_id"`
	Title       string     `db:"title"`
	Slug        string     `db:"slug"`
	Excerpt     *string    `db:"excerpt"`
	Content     string     `db:"content"`
	CoverImage  *string    `db:"cover_image"`
	Tags        []string   `db:"tags"`
	Status      BlogStatus `db:"status"`
	PublishedAt *time.Time `db:"published_at"`
}

type BlogFilter struct {
	Tag           *string
	PublishedOnly bool
}
