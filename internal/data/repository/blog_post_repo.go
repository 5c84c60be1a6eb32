package repository

import (
	"context"
	"errors"
	"fmt"

	"celebrity-booking/internal/data/entity"
	"celebrity-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BlogPostRepository interface {
	Create(ctx context.Context, post *entity.BlogPost) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BlogPost, error)
	FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*entity.BlogPost, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	FindAll(ctx context.Context, f entity.BlogFilter, limit, offset int) ([]*entity.BlogPost, error)
	Count(ctx context.Context, f entity.BlogFilter) (int64, error)
	Update(ctx context.Context, post *entity.BlogPost) error
	Delete(ctx context.Context, id uuid.UUID) error
}

const blogColumns = `id, author_id, title, slug, excerpt, content, cover_image, tags, status, published_at,
		       created_at, updated_at, deleted_at`

type blogPostRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBlogPostRepository(db database.PgxIface, log *zap.Logger) BlogPostRepository {
	return &blogPostRepository{
		db:  db,
		log: log.With(zap.String("repository", "blog_post")),
	}
}

func scanBlogPost(row pgx.Row) (*entity.BlogPost, error) {
	var p entity.BlogPost
	err := row.Scan(
		&p.ID,
		&p.AuthorID,
		&p.Title,
		&p.Slug,
		&p.Excerpt,
		&p.Content,
		&p.CoverImage,
		&p.Tags,
		&p.Status,
		&p.PublishedAt,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *blogPostRepository) Create(ctx context.Context, p *entity.BlogPost) error {
	query := `
		INSERT INTO blog_posts (id, author_id, title, slug, excerpt, content, cover_image, tags, status,
		                        published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		p.ID, p.AuthorID, p.Title, p.Slug, p.Excerpt, p.Content, p.CoverImage, p.Tags, p.Status,
		p.PublishedAt, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		r.log.Error("Failed to create blog post", zap.Error(err), zap.String("slug", p.Slug))
		return fmt.Errorf("create blog post %s: %w", p.Slug, err)
	}
	return nil
}

func (r *blogPostRepository) findOne(ctx context.Context, where string, args ...any) (*entity.BlogPost, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts WHERE ` + where + ` AND deleted_at IS NULL`

	p, err := scanBlogPost(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find blog post", zap.Error(err))
		return nil, fmt.Errorf("find blog post: %w", err)
	}
	return p, nil
}

func (r *blogPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BlogPost, error) {
	return r.findOne(ctx, "id = $1", id)
}

func (r *blogPostRepository) FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*entity.BlogPost, error) {
	return r.findOne(ctx, "slug = $1 AND (status = 'published' OR NOT $2)", slug, publishedOnly)
}

func (r *blogPostRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM blog_posts WHERE slug = $1)`, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("check blog slug %s: %w", slug, err)
	}
	return exists, nil
}

func blogFilter(f entity.BlogFilter) *filter {
	fb := newFilter("deleted_at IS NULL")
	if f.PublishedOnly {
		fb.clauses = append(fb.clauses, "status = 'published'")
	}
	if f.Tag != nil && *f.Tag != "" {
		fb.add("? = ANY(tags)", *f.Tag)
	}
	return fb
}

func (r *blogPostRepository) FindAll(ctx context.Context, f entity.BlogFilter, limit, offset int) ([]*entity.BlogPost, error) {
	fb := blogFilter(f)
	suffix, args := fb.page(limit, offset)

	rows, err := r.db.Query(ctx, `SELECT `+blogColumns+` FROM blog_posts`+fb.where()+
		` ORDER BY COALESCE(published_at, created_at) DESC`+suffix, args...)
	if err != nil {
		r.log.Error("Failed to list blog posts", zap.Error(err))
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	defer rows.Close()

	var posts []*entity.BlogPost
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan blog post row: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *blogPostRepository) Count(ctx context.Context, f entity.BlogFilter) (int64, error) {
	fb := blogFilter(f)

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM blog_posts`+fb.where(), fb.args...).Scan(&total); err != nil {
		r.log.Error("Failed to count blog posts", zap.Error(err))
		return 0, fmt.Errorf("count blog posts: %w", err)
	}
	return total, nil
}

func (r *blogPostRepository) Update(ctx context.Context, p *entity.BlogPost) error {
	query := `
		UPDATE blog_posts
		SET title = $2, excerpt = $3, content = $4, cover_image = $5, tags = $6, status = $7,
		    published_at = $8, updated_at = $9
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		p.ID, p.Title, p.Excerpt, p.Content, p.CoverImage, p.Tags, p.Status, p.PublishedAt, p.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to update blog post", zap.Error(err), zap.String("id", p.ID.String()))
		return fmt.Errorf("update blog post %s: %w", p.ID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("blog post %s: %w", p.ID.String(), ErrNotFound)
	}
	return nil
}

func (r *blogPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `UPDATE blog_posts SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		r.log.Error("Failed to delete blog post", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("delete blog post %s: %w", id.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("blog post %s: %w", id.String(), ErrNotFound)
	}
	return nil
}
