package usecase

import (
	"context"
	"errors"
	"time"

	"celebrity-booking/internal/data/entity"
	"celebrity-booking/internal/data/repository"
	"celebrity-booking/internal/dto/request"
	"celebrity-booking/internal/dto/response"
	"celebrity-booking/pkg/database"
	"celebrity-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CelebrityService interface {
	List(ctx context.Context, req *request.CelebrityListRequest) (*response.PaginatedResponse[response.CelebrityResponse], error)
	GetBySlug(ctx context.Context, slug string) (*response.CelebrityResponse, error)

	// Admin
	Create(ctx context.Context, req *request.CreateCelebrityRequest) (*response.CelebrityResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *request.UpdateCelebrityRequest) (*response.CelebrityResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddBookingType(ctx context.Context, celebrityID uuid.UUID, req *request.BookingTypeRequest) (*response.BookingTypeResponse, error)
	RemoveBookingType(ctx context.Context, celebrityID, typeID uuid.UUID) error

	// Reviews
	ListReviews(ctx context.Context, celebrityID uuid.UUID, page *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	CreateReview(ctx context.Context, userID, celebrityID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, reviewID uuid.UUID) error
}

type celebrityService struct {
	repo  *repository.Repository
	tx    database.TxManager
	audit AuditService
	log   *zap.Logger
}

func NewCelebrityService(repo *repository.Repository, tx database.TxManager, audit AuditService, log *zap.Logger) CelebrityService {
	return &celebrityService{
		repo:  repo,
		tx:    tx,
		audit: audit,
		log:   log.With(zap.String("service", "celebrity")),
	}
}

func (s *celebrityService) List(ctx context.Context, req *request.CelebrityListRequest) (*response.PaginatedResponse[response.CelebrityResponse], error) {
	f := entity.CelebrityFilter{Category: req.Category, Search: req.Search, Featured: req.Featured}

	celebrities, err := s.repo.Celebrity.FindAll(ctx, f, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list celebrities", zap.Error(err))
		return nil, utils.ErrInternal(err, "failed to list celebrities")
	}

	total, err := s.repo.Celebrity.Count(ctx, f)
	if err != nil {
		s.log.Error("Failed to count celebrities", zap.Error(err))
		return nil, utils.ErrInternal(err, "failed to list celebrities")
	}

	return paginate(celebrities, response.CelebrityToResponse, req.PaginatedRequest, total), nil
}

func (s *celebrityService) GetBySlug(ctx context.Context, slug string) (*response.CelebrityResponse, error) {
	celebrity, err := s.repo.Celebrity.FindBySlug(ctx, slug)
	if err != nil {
		s.log.Error("Failed to find celebrity", zap.Error(err), zap.String("slug", slug))
		return nil, utils.ErrInternal(err, "failed to load celebrity")
	}
	if celebrity == nil {
		return nil, utils.ErrNotFound("celebrity not found")
	}

	types, err := s.repo.BookingType.FindByCelebrity(ctx, celebrity.ID)
	if err != nil {
		s.log.Error("Failed to load booking types", zap.Error(err), zap.String("celebrity_id", celebrity.ID.String()))
		return nil, utils.ErrInternal(err, "failed to load celebrity")
	}

	stats, err := s.repo.Review.Stats(ctx, celebrity.ID)
	if err != nil {
		s.log.Error("Failed to load rating stats", zap.Error(err), zap.String("celebrity_id", celebrity.ID.String()))
		return nil, utils.ErrInternal(err, "failed to load celebrity")
	}

	resp := response.CelebrityToResponse(celebrity)
	resp.BookingTypes = make([]response.BookingTypeResponse, 0, len(types))
	for _, bt := range types {
		resp.BookingTypes = append(resp.BookingTypes, response.BookingTypeToResponse(bt))
	}
	resp.Rating = stats.Average
	resp.ReviewCount = &stats.Count
	return &resp, nil
}

// Create inserts the celebrity and its booking types atomically.
func (s *celebrityService) Create(ctx context.Context, req *request.CreateCelebrityRequest) (*response.CelebrityResponse, error) {
	slug, err := uniqueSlug(ctx, req.Name, "celebrity", s.repo.Celebrity.SlugExists)
	if err != nil {
		s.log.Error("Failed to generate slug", zap.Error(err), zap.String("name", req.Name))
		return nil, utils.ErrInternal(err, "failed to create celebrity")
	}

	celebrity := &entity.Celebrity{
		Base:        entity.NewBase(),
		Name:        req.Name,
		Slug:        slug,
		Category:    req.Category,
		Bio:         req.Bio,
		ImageURL:    req.ImageURL,
		Country:     req.Country,
		IsFeatured:  req.IsFeatured,
		IsAvailable: req.IsAvailable == nil || *req.IsAvailable,
	}

	types := make([]*entity.BookingType, 0, len(req.BookingTypes))
	for _, bt := range req.BookingTypes {
		types = append(types, newBookingType(celebrity.ID, &bt))
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.Celebrity.Create(ctx, celebrity); err != nil {
			return err
		}
		for _, bt := range types {
			if err := s.repo.BookingType.Create(ctx, bt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, utils.ErrConflict("celebrity slug already exists")
		}
		s.log.Error("Failed to create celebrity", zap.Error(err), zap.String("name", req.Name))
		return nil, utils.ErrInternal(err, "failed to create celebrity")
	}

	s.audit.Record(ctx, entity.AuditActionCreate, "celebrity", celebrity.ID.String(), map[string]any{
		"name":          celebrity.Name,
		"slug":          celebrity.Slug,
		"booking_types": len(types),
	})
	s.log.Info("Celebrity created", zap.String("id", celebrity.ID.String()), zap.String("slug", slug))

	resp := response.CelebrityToResponse(celebrity)
	for _, bt := range types {
		resp.BookingTypes = append(resp.BookingTypes, response.BookingTypeToResponse(bt))
	}
	return &resp, nil
}

func (s *celebrityService) Update(ctx context.Context, id uuid.UUID, req *request.UpdateCelebrityRequest) (*response.CelebrityResponse, error) {
	celebrity, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := map[string]any{}
	if req.Name != nil {
		celebrity.Name = *req.Name
		changes["name"] = *req.Name
	}
	if req.Category != nil {
		celebrity.Category = *req.Category
		changes["category"] = *req.Category
	}
	if req.Bio != nil {
		celebrity.Bio = req.Bio
	}
	if req.ImageURL != nil {
		celebrity.ImageURL = req.ImageURL
	}
	if req.Country != nil {
		celebrity.Country = req.Country
	}
	if req.IsFeatured != nil {
		celebrity.IsFeatured = *req.IsFeatured
		changes["is_featured"] = *req.IsFeatured
	}
	if req.IsAvailable != nil {
		celebrity.IsAvailable = *req.IsAvailable
		changes["is_available"] = *req.IsAvailable
	}

	celebrity.UpdatedAt = time.Now()
	if err := s.repo.Celebrity.Update(ctx, celebrity); err != nil {
		s.log.Error("Failed to update celebrity", zap.Error(err), zap.String("id", id.String()))
		return nil, notFound(err, "celebrity not found")
	}

	s.audit.Record(ctx, entity.AuditActionUpdate, "celebrity", id.String(), changes)
	resp := response.CelebrityToResponse(celebrity)
	return &resp, nil
}

func (s *celebrityService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Celebrity.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete celebrity", zap.Error(err), zap.String("id", id.String()))
		return notFound(err, "celebrity not found")
	}

	s.audit.Record(ctx, entity.AuditActionDelete, "celebrity", id.String(), nil)
	return nil
}

func (s *celebrityService) AddBookingType(ctx context.Context, celebrityID uuid.UUID, req *request.BookingTypeRequest) (*response.BookingTypeResponse, error) {
	if _, err := s.find(ctx, celebrityID); err != nil {
		return nil, err
	}

	bt := newBookingType(celebrityID, req)
	if err := s.repo.BookingType.Create(ctx, bt); err != nil {
		s.log.Error("Failed to create booking type", zap.Error(err), zap.String("celebrity_id", celebrityID.String()))
		return nil, utils.ErrInternal(err, "failed to create booking type")
	}

	s.audit.Record(ctx, entity.AuditActionCreate, "booking_type", bt.ID.String(), map[string]any{
		"celebrity_id": celebrityID.String(),
		"name":         bt.Name,
		"price":        bt.Price.String(),
	})
	resp := response.BookingTypeToResponse(bt)
	return &resp, nil
}

func (s *celebrityService) RemoveBookingType(ctx context.Context, celebrityID, typeID uuid.UUID) error {
	if err := s.repo.BookingType.Delete(ctx, celebrityID, typeID); err != nil {
		s.log.Error("Failed to delete booking type", zap.Error(err), zap.String("id", typeID.String()))
		return notFound(err, "booking type not found")
	}

	s.audit.Record(ctx, entity.AuditActionDelete, "booking_type", typeID.String(), map[string]any{
		"celebrity_id": celebrityID.String(),
	})
	return nil
}

func (s *celebrityService) ListReviews(ctx context.Context, celebrityID uuid.UUID, page *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	reviews, err := s.repo.Review.FindByCelebrity(ctx, celebrityID, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to list reviews", zap.Error(err), zap.String("celebrity_id", celebrityID.String()))
		return nil, utils.ErrInternal(err, "failed to list reviews")
	}

	stats, err := s.repo.Review.Stats(ctx, celebrityID)
	if err != nil {
		s.log.Error("Failed to count reviews", zap.Error(err), zap.String("celebrity_id", celebrityID.String()))
		return nil, utils.ErrInternal(err, "failed to list reviews")
	}

	return paginate(reviews, response.ReviewToResponse, *page, stats.Count), nil
}

func (s *celebrityService) CreateReview(ctx context.Context, userID, celebrityID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if _, err := s.find(ctx, celebrityID); err != nil {
		return nil, err
	}

	review := &entity.CelebrityReview{
		BaseNoDelete: entity.NewBaseNoDelete(),
		CelebrityID:  celebrityID,
		UserID:       userID,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, utils.ErrConflict("you have already reviewed this celebrity")
		}
		s.log.Error("Failed to create review", zap.Error(err), zap.String("celebrity_id", celebrityID.String()))
		return nil, utils.ErrInternal(err, "failed to create review")
	}

	s.refreshRating(ctx, celebrityID)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *celebrityService) DeleteReview(ctx context.Context, reviewID uuid.UUID) error {
	review, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		s.log.Error("Failed to find review", zap.Error(err), zap.String("id", reviewID.String()))
		return utils.ErrInternal(err, "failed to delete review")
	}
	if review == nil {
		return utils.ErrNotFound("review not found")
	}

	if err := s.repo.Review.Delete(ctx, reviewID); err != nil {
		s.log.Error("Failed to delete review", zap.Error(err), zap.String("id", reviewID.String()))
		return notFound(err, "review not found")
	}

	s.refreshRating(ctx, review.CelebrityID)
	s.audit.Record(ctx, entity.AuditActionDelete, "review", reviewID.String(), map[string]any{
		"celebrity_id": review.CelebrityID.String(),
		"user_id":      review.UserID.String(),
	})
	return nil
}

// refreshRating recomputes the cached average; the review itself is already saved.
func (s *celebrityService) refreshRating(ctx context.Context, celebrityID uuid.UUID) {
	if err := s.repo.Celebrity.RefreshRating(ctx, celebrityID); err != nil {
		s.log.Error("Failed to refresh rating", zap.Error(err), zap.String("celebrity_id", celebrityID.String()))
	}
}

func (s *celebrityService) find(ctx context.Context, id uuid.UUID) (*entity.Celebrity, error) {
	celebrity, err := s.repo.Celebrity.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find celebrity", zap.Error(err), zap.String("id", id.String()))
		return nil, utils.ErrInternal(err, "failed to load celebrity")
	}
	if celebrity == nil {
		return nil, utils.ErrNotFound("celebrity not found")
	}
	return celebrity, nil
}

func newBookingType(celebrityID uuid.UUID, req *request.BookingTypeRequest) *entity.BookingType {
	return &entity.BookingType{
		BaseNoDelete:    entity.NewBaseNoDelete(),
		CelebrityID:     celebrityID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		IsActive:        true,
	}
}
