package usecase

import (
	"context"
	"errors"
	"io"
	"path/filepath"

	"celebrity-booking/internal/data/entity"
	"celebrity-booking/internal/data/repository"
	"celebrity-booking/internal/dto/request"
	"celebrity-booking/internal/dto/response"
	"celebrity-booking/pkg/storage"
	"celebrity-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MediaService interface {
	Upload(ctx context.Context, uploaderID uuid.UUID, originalName string, r io.Reader) (*response.MediaResponse, error)
	List(ctx context.Context, page *request.PaginatedRequest) (*response.PaginatedResponse[response.MediaResponse], error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type mediaService struct {
	repo  repository.MediaRepository
	store storage.Store
	audit AuditService
	log   *zap.Logger
}

func NewMediaService(repo repository.MediaRepository, store storage.Store, audit AuditService, log *zap.Logger) MediaService {
	return &mediaService{
		repo:  repo,
		store: store,
		audit: audit,
		log:   log.With(zap.String("service", "media")),
	}
}

func (s *mediaService) Upload(ctx context.Context, uploaderID uuid.UUID, originalName string, r io.Reader) (*response.MediaResponse, error) {
	stored, err := s.store.Save(r)
	switch {
	case errors.Is(err, storage.ErrTooLarge):
		return nil, utils.ErrBadRequest("file is too large")
	case errors.Is(err, storage.ErrUnsupportedType):
		return nil, utils.ErrBadRequest("unsupported file type")
	case err != nil:
		s.log.Error("Failed to store upload", zap.Error(err), zap.String("original_name", originalName))
		return nil, utils.ErrInternal(err, "failed to store file")
	}

	media := &entity.Media{
		BaseSimple:   entity.NewBaseSimple(),
		UploadedBy:   uploaderID,
		FileName:     stored.FileName,
		OriginalName: filepath.Base(originalName),
		MimeType:     stored.MimeType,
		SizeBytes:    stored.Size,
		URL:          stored.URL,
		ThumbnailURL: stored.ThumbnailURL,
	}

	if err := s.repo.Create(ctx, media); err != nil {
		s.log.Error("Failed to save media", zap.Error(err), zap.String("file", stored.FileName))
		if rmErr := s.store.Remove(stored); rmErr != nil {
			s.log.Warn("Failed to remove orphaned upload", zap.Error(rmErr), zap.String("file", stored.FileName))
		}
		return nil, utils.ErrInternal(err, "failed to save media")
	}

	s.log.Info("Media uploaded",
		zap.String("media_id", media.ID.String()),
		zap.String("mime", media.MimeType),
		zap.Int64("size", media.SizeBytes),
	)
	s.audit.Record(ctx, entity.AuditActionCreate, "media", media.ID.String(), map[string]any{
		"file_name": media.FileName,
		"mime_type": media.MimeType,
	})

	resp := response.MediaToResponse(media)
	return &resp, nil
}

func (s *mediaService) List(ctx context.Context, page *request.PaginatedRequest) (*response.PaginatedResponse[response.MediaResponse], error) {
	items, err := s.repo.FindAll(ctx, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to list media", zap.Error(err))
		return nil, utils.ErrInternal(err, "failed to list media")
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count media", zap.Error(err))
		return nil, utils.ErrInternal(err, "failed to list media")
	}

	return paginate(items, response.MediaToResponse, *page, total), nil
}

// Delete removes the row first; a file left behind is only logged.
func (s *mediaService) Delete(ctx context.Context, id uuid.UUID) error {
	media, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find media", zap.Error(err), zap.String("id", id.String()))
		return utils.ErrInternal(err, "failed to delete media")
	}
	if media == nil {
		return utils.ErrNotFound("media not found")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete media", zap.Error(err), zap.String("id", id.String()))
		return notFound(err, "media not found")
	}

	if err := s.store.Remove(&storage.StoredFile{FileName: media.FileName, ThumbnailURL: media.ThumbnailURL}); err != nil {
		s.log.Warn("Failed to remove media files", zap.Error(err), zap.String("file", media.FileName))
	}

	s.audit.Record(ctx, entity.AuditActionDelete, "media", id.String(), map[string]any{"file_name": media.FileName})
	return nil
}
