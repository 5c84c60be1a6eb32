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

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.CelebrityReview) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CelebrityReview, error)
	FindByCelebrity(ctx context.Context, celebrityID uuid.UUID, limit, offset int) ([]*entity.CelebrityReview, error)
	Stats(ctx context.Context, celebrityID uuid.UUID) (*entity.RatingStats, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func scanReview(row pgx.Row) (*entity.CelebrityReview, error) {
	var rv entity.CelebrityReview
	if err := row.Scan(&rv.ID, &rv.CelebrityID, &rv.UserID, &rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
		return nil, err
	}
	return &rv, nil
}

// Create returns ErrDuplicate when the user already reviewed the celebrity.
func (r *reviewRepository) Create(ctx context.Context, review *entity.CelebrityReview) error {
	query := `
		INSERT INTO celebrity_reviews (id, celebrity_id, user_id, rating, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := database.Conn(ctx, r.db).Exec(ctx, query,
		review.ID,
		review.CelebrityID,
		review.UserID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
		review.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("celebrity_id", review.CelebrityID.String()),
			zap.String("user_id", review.UserID.String()),
		)
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CelebrityReview, error) {
	query := `
		SELECT id, celebrity_id, user_id, rating, comment, created_at, updated_at
		FROM celebrity_reviews WHERE id = $1
	`

	rv, err := scanReview(database.Conn(ctx, r.db).QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review", zap.Error(err), zap.String("id", id.String()))
		return nil, fmt.Errorf("find review %s: %w", id.String(), err)
	}
	return rv, nil
}

func (r *reviewRepository) FindByCelebrity(ctx context.Context, celebrityID uuid.UUID, limit, offset int) ([]*entity.CelebrityReview, error) {
	query := `
		SELECT id, celebrity_id, user_id, rating, comment, created_at, updated_at
		FROM celebrity_reviews
		WHERE celebrity_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, celebrityID, limit, offset)
	if err != nil {
		r.log.Error("Failed to list reviews", zap.Error(err))
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*entity.CelebrityReview
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

func (r *reviewRepository) Stats(ctx context.Context, celebrityID uuid.UUID) (*entity.RatingStats, error) {
	query := `
		SELECT COALESCE(ROUND(AVG(rating)::numeric, 2), 0), COUNT(*)
		FROM celebrity_reviews WHERE celebrity_id = $1
	`

	var stats entity.RatingStats
	if err := r.db.QueryRow(ctx, query, celebrityID).Scan(&stats.Average, &stats.Count); err != nil {
		r.log.Error("Failed to compute rating stats", zap.Error(err))
		return nil, fmt.Errorf("rating stats %s: %w", celebrityID.String(), err)
	}
	return &stats, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := database.Conn(ctx, r.db).Exec(ctx, `DELETE FROM celebrity_reviews WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete review", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("delete review %s: %w", id.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s: %w", id.String(), ErrNotFound)
	}
	return nil
}
