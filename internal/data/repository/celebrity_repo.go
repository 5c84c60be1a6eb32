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

type CelebrityRepository interface {
	Create(ctx context.Context, celebrity *entity.Celebrity) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Celebrity, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Celebrity, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	FindAll(ctx context.Context, f entity.CelebrityFilter, limit, offset int) ([]*entity.Celebrity, error)
	Count(ctx context.Context, f entity.CelebrityFilter) (int64, error)
	Update(ctx context.Context, celebrity *entity.Celebrity) error
	RefreshRating(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

const celebrityColumns = `id, name, slug, category, bio, image_url, country, rating,
		       is_featured, is_available, created_at, updated_at, deleted_at`

type celebrityRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCelebrityRepository(db database.PgxIface, log *zap.Logger) CelebrityRepository {
	return &celebrityRepository{
		db:  db,
		log: log.With(zap.String("repository", "celebrity")),
	}
}

func scanCelebrity(row pgx.Row) (*entity.Celebrity, error) {
	var c entity.Celebrity
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Slug,
		&c.Category,
		&c.Bio,
		&c.ImageURL,
		&c.Country,
		&c.Rating,
		&c.IsFeatured,
		&c.IsAvailable,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *celebrityRepository) Create(ctx context.Context, c *entity.Celebrity) error {
	query := `
		INSERT INTO celebrities (id, name, slug, category, bio, image_url, country, rating,
		                         is_featured, is_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := database.Conn(ctx, r.db).Exec(ctx, query,
		c.ID,
		c.Name,
		c.Slug,
		c.Category,
		c.Bio,
		c.ImageURL,
		c.Country,
		c.Rating,
		c.IsFeatured,
		c.IsAvailable,
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		r.log.Error("Failed to create celebrity", zap.Error(err), zap.String("slug", c.Slug))
		return fmt.Errorf("create celebrity %s: %w", c.Slug, err)
	}

	return nil
}

func (r *celebrityRepository) findOne(ctx context.Context, where string, arg any) (*entity.Celebrity, error) {
	query := `SELECT ` + celebrityColumns + ` FROM celebrities WHERE ` + where + ` AND deleted_at IS NULL`

	c, err := scanCelebrity(database.Conn(ctx, r.db).QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find celebrity", zap.Error(err), zap.Any("key", arg))
		return nil, fmt.Errorf("find celebrity %v: %w", arg, err)
	}
	return c, nil
}

func (r *celebrityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Celebrity, error) {
	return r.findOne(ctx, "id = $1", id)
}

func (r *celebrityRepository) FindBySlug(ctx context.Context, slug string) (*entity.Celebrity, error) {
	return r.findOne(ctx, "slug = $1", slug)
}

// SlugExists also sees soft-deleted rows since the unique index does.
func (r *celebrityRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := database.Conn(ctx, r.db).QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM celebrities WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check celebrity slug %s: %w", slug, err)
	}
	return exists, nil
}

func celebrityFilter(f entity.CelebrityFilter) *filter {
	fb := newFilter("deleted_at IS NULL")
	if f.Category != nil && *f.Category != "" {
		fb.add("category = ?", *f.Category)
	}
	if f.Search != nil && *f.Search != "" {
		fb.add("(name ILIKE ? OR bio ILIKE ?)", "%"+*f.Search+"%")
	}
	if f.Featured != nil {
		fb.add("is_featured = ?", *f.Featured)
	}
	return fb
}

func (r *celebrityRepository) FindAll(ctx context.Context, f entity.CelebrityFilter, limit, offset int) ([]*entity.Celebrity, error) {
	fb := celebrityFilter(f)
	suffix, args := fb.page(limit, offset)
	query := `SELECT ` + celebrityColumns + ` FROM celebrities` + fb.where() +
		` ORDER BY is_featured DESC, rating DESC, name ASC` + suffix

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list celebrities", zap.Error(err))
		return nil, fmt.Errorf("list celebrities: %w", err)
	}
	defer rows.Close()

	var celebrities []*entity.Celebrity
	for rows.Next() {
		c, err := scanCelebrity(rows)
		if err != nil {
			r.log.Error("Failed to scan celebrity row", zap.Error(err))
			return nil, fmt.Errorf("scan celebrity row: %w", err)
		}
		celebrities = append(celebrities, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate celebrity rows: %w", err)
	}

	return celebrities, nil
}

func (r *celebrityRepository) Count(ctx context.Context, f entity.CelebrityFilter) (int64, error) {
	fb := celebrityFilter(f)

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM celebrities`+fb.where(), fb.args...).Scan(&total); err != nil {
		r.log.Error("Failed to count celebrities", zap.Error(err))
		return 0, fmt.Errorf("count celebrities: %w", err)
	}
	return total, nil
}

func (r *celebrityRepository) Update(ctx context.Context, c *entity.Celebrity) error {
	query := `
		UPDATE celebrities
		SET name = $2, category = $3, bio = $4, image_url = $5, country = $6,
		    is_featured = $7, is_available = $8, updated_at = $9
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query,
		c.ID,
		c.Name,
		c.Category,
		c.Bio,
		c.ImageURL,
		c.Country,
		c.IsFeatured,
		c.IsAvailable,
		c.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update celebrity", zap.Error(err), zap.String("id", c.ID.String()))
		return fmt.Errorf("update celebrity %s: %w", c.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("celebrity %s: %w", c.ID.String(), ErrNotFound)
	}
	return nil
}

// RefreshRating recomputes the cached average from the reviews table.
func (r *celebrityRepository) RefreshRating(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE celebrities
		SET rating = COALESCE((SELECT ROUND(AVG(rating)::numeric, 2) FROM celebrity_reviews WHERE celebrity_id = $1), 0),
		    updated_at = NOW()
		WHERE id = $1
	`

	if _, err := database.Conn(ctx, r.db).Exec(ctx, query, id); err != nil {
		r.log.Error("Failed to refresh rating", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("refresh rating %s: %w", id.String(), err)
	}
	return nil
}

func (r *celebrityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE celebrities SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete celebrity", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("delete celebrity %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("celebrity %s: %w", id.String(), ErrNotFound)
	}
	return nil
}
