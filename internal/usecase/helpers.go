package usecase

import (
	"context"
	"errors"
	"fmt"

	"celebrity-booking/internal/data/repository"
	"celebrity-booking/internal/dto/request"
	"celebrity-booking/internal/dto/response"
	"celebrity-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxSlugAttempts = 5

func parseID(raw, what string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, utils.ErrBadRequest("invalid %s id", what)
	}
	return id, nil
}

func parseOptionalID(raw *string, what string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := parseID(*raw, what)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// uniqueSlug derives a slug from title, adding a random suffix while it is taken.
func uniqueSlug(ctx context.Context, title, fallback string, exists func(context.Context, string) (bool, error)) (string, error) {
	slug := utils.Slugify(title)
	if slug == "" {
		slug = fallback
	}

	candidate := slug
	for i := 0; i < maxSlugAttempts; i++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = utils.SlugWithSuffix(slug)
	}
	return "", fmt.Errorf("no free slug for %q", title)
}

// notFound maps repository.ErrNotFound to a 404, leaving other errors as they are.
func notFound(err error, format string, args ...any) error {
	if errors.Is(err, repository.ErrNotFound) {
		return utils.ErrNotFound(format, args...)
	}
	return err
}

func paginate[E any, R any](items []E, convert func(E) R, page request.PaginatedRequest, total int64) *response.PaginatedResponse[R] {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, convert(item))
	}
	return response.NewPaginatedResponse(out, page.Page, page.Limit(), total)
}

func strPtr(s string) *string {
	return &s
}

func isOwnerOrAdmin(ctx context.Context, ownerID uuid.UUID) bool {
	if utils.IsAdmin(ctx) {
		return true
	}
	userID, ok := utils.GetUserIDFromContext(ctx)
	return ok && userID == ownerID
}

// appOrInternal passes AppErrors through and logs anything else as a 500 with message.
func appOrInternal(log *zap.Logger, err error, message string, fields ...zap.Field) error {
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		return err
	}
	log.Error(message, append(fields, zap.Error(err))...)
	return utils.ErrInternal(err, message)
}
