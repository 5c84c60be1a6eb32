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

type MediaRepository interface {
	Create(ctx context.Context, m *entity.Media) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Media, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Media, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

const mediaColumns = `id, uploaded_by, file_name, original_name, mime_type, size_bytes, url, thumbnail_url, created_at`

type mediaRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMediaRepository(db database.PgxIface, log *zap.Logger) MediaRepository {
	return &mediaRepository{
		db:  db,
		log: log.With(zap.String("repository", "media")),
	}
}

func scanMedia(row pgx.Row) (*entity.Media, error) {
	var m entity.Media
	err := row.Scan(&m.ID, &m.UploadedBy, &m.FileName, &m.OriginalName, &m.MimeType, &m.SizeBytes, &m.URL, &m.ThumbnailURL, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *mediaRepository) Create(ctx context.Context, m *entity.Media) error {
	query := `
		INSERT INTO media (id, uploaded_by, file_name, original_name, mime_type, size_bytes, url, thumbnail_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		m.ID, m.UploadedBy, m.FileName, m.OriginalName, m.MimeType, m.SizeBytes, m.URL, m.ThumbnailURL, m.CreatedAt)
	if err != nil {
		r.log.Error("Failed to create media", zap.Error(err), zap.String("file_name", m.FileName))
		return fmt.Errorf("create media %s: %w", m.FileName, err)
	}
	return nil
}

func (r *mediaRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Media, error) {
	m, err := scanMedia(r.db.QueryRow(ctx, `SELECT `+mediaColumns+` FROM media WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find media", zap.Error(err), zap.String("id", id.String()))
		return nil, fmt.Errorf("find media %s: %w", id.String(), err)
	}
	return m, nil
}

func (r *mediaRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Media, error) {
	rows, err := r.db.Query(ctx, `SELECT `+mediaColumns+` FROM media ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		r.log.Error("Failed to list media", zap.Error(err))
		return nil, fmt.Errorf("list media: %w", err)
	}
	defer rows.Close()

	var items []*entity.Media
	for rows.Next() {
		m, err := scanMedia(rows)
		if err != nil {
			return nil, fmt.Errorf("scan media row: %w", err)
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *mediaRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM media`).Scan(&total); err != nil {
		r.log.Error("Failed to count media", zap.Error(err))
		return 0, fmt.Errorf("count media: %w", err)
	}
	return total, nil
}

func (r *mediaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM media WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete media", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("delete media %s: %w", id.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("media %s: %w", id.String(), ErrNotFound)
	}
	return nil
}
